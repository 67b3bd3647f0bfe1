package message

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/get-axon/go-axon/ddd"
	"github.com/get-axon/go-axon/serde"
)

// EventMessageJSONSerde returns a serde mapping EventMessages to and
// from their canonical JSON byte form.
func EventMessageJSONSerde() serde.Fused[EventMessage, []byte] {
	return serde.NewJSON(func() EventMessage { return EventMessage{} })
}

// EntityJSONSerde returns a serde mapping Entities to and from their
// canonical JSON byte form.
func EntityJSONSerde() serde.Fused[ddd.Entity, []byte] {
	return serde.NewJSON(func() ddd.Entity { return ddd.Entity{} })
}

// MetaDataJSONSerde returns a serde mapping MetaData to and from their
// canonical JSON byte form, preserving entry order.
func MetaDataJSONSerde() serde.Fused[ddd.MetaData, []byte] {
	return serde.NewJSON(func() ddd.MetaData { return ddd.NewMetaData() })
}

// PayloadProtoSerde returns a serde mapping Payloads to and from the
// Protobuf Struct well-known type, so that payloads can cross a
// Protobuf boundary without a dedicated message definition.
//
// Chain it with serde.NewProto to obtain the binary wire form:
//
//	wire := serde.Chain(
//		message.PayloadProtoSerde(),
//		serde.NewProto(func() *structpb.Value { return new(structpb.Value) }),
//	)
func PayloadProtoSerde() serde.Fused[Payload, *structpb.Value] {
	return serde.Fuse[Payload, *structpb.Value](
		serde.AsSerializerFunc(func(payload Payload) (*structpb.Value, error) {
			value, err := structpb.NewValue(payload.Value())
			if err != nil {
				return nil, fmt.Errorf("message.PayloadProtoSerde: failed to map payload, %w", err)
			}

			return value, nil
		}),
		serde.AsInfallibleDeserializerFunc(func(value *structpb.Value) Payload {
			return NewPayload(value.AsInterface())
		}),
	)
}
