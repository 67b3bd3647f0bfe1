// Package otelaxon maps message identity and correlation metadata to
// OpenTelemetry attributes, for callers instrumenting their message
// processing stages.
//
// The package performs pure value mapping only: it does not create
// spans, record metrics, or require a configured SDK.
package otelaxon

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/get-axon/go-axon/ddd"
	"github.com/get-axon/go-axon/message"
)

var (
	// MessageIDAttribute contains the id of the Entity identifying a message.
	MessageIDAttribute = attribute.Key("message.id")

	// MessageNameAttribute contains the name of the Entity identifying a message.
	MessageNameAttribute = attribute.Key("message.name")

	// CorrelationIDAttribute contains the causal chain identifier of a message.
	CorrelationIDAttribute = attribute.Key("correlation.id")

	// TraceIDAttribute contains the trace identifier of a message.
	TraceIDAttribute = attribute.Key("trace.id")
)

// MessageAttributes returns the OpenTelemetry attributes describing the
// given message: its identity, plus the correlation entries found in
// its metadata, if any.
func MessageAttributes(msg message.Message) []attribute.KeyValue {
	identifier := msg.Identifier()

	attributes := []attribute.KeyValue{
		MessageIDAttribute.String(identifier.ID()),
		MessageNameAttribute.String(identifier.Name()),
	}

	return append(attributes, MetadataAttributes(msg.Metadata())...)
}

// MetadataAttributes returns the OpenTelemetry attributes for the
// correlation entries of the given MetaData, if any.
func MetadataAttributes(md ddd.MetaData) []attribute.KeyValue {
	var attributes []attribute.KeyValue

	if id, ok := md.Get(ddd.CorrelationIDKey); ok {
		attributes = append(attributes, CorrelationIDAttribute.String(attributeString(id)))
	}

	if id, ok := md.Get(ddd.TraceIDKey); ok {
		attributes = append(attributes, TraceIDAttribute.String(attributeString(id)))
	}

	return attributes
}

func attributeString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", value)
}
