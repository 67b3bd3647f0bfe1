package correlation

import (
	"context"

	"github.com/get-axon/go-axon/ddd"
	"github.com/get-axon/go-axon/message"
)

// Provider computes the MetaData from a source message that should be
// attached as correlation data to the messages generated while
// processing it.
//
// Implementations must be pure functions of the message content, aside
// from fresh identifier generation, and safe for concurrent use: one
// configured Provider instance is expected to be shared across many
// messages and goroutines. Providers return new MetaData instances and
// never mutate the source message.
type Provider[M message.Message] interface {
	// CorrelationFor returns the MetaData entries to attach as
	// correlation data to the messages generated while processing msg.
	CorrelationFor(msg M) ddd.MetaData
}

// ProviderFunc is a functional Provider implementation.
type ProviderFunc[M message.Message] func(msg M) ddd.MetaData

// CorrelationFor implements the correlation.Provider interface.
func (fn ProviderFunc[M]) CorrelationFor(msg M) ddd.MetaData { return fn(msg) }

type (
	correlationCtxKey struct{}
	traceCtxKey       struct{}
)

// WithCorrelationID returns a context carrying the given correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationCtxKey{}, id)
}

// WithTraceID returns a context carrying the given trace id.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceCtxKey{}, id)
}

// CorrelationIDFromContext returns the correlation id carried by the
// given context, if any.
func CorrelationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(correlationCtxKey{}).(string)
	return id, ok && id != ""
}

// TraceIDFromContext returns the trace id carried by the given
// context, if any.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(traceCtxKey{}).(string)
	return id, ok && id != ""
}
