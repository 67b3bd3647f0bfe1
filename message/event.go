package message

import (
	"encoding/json"
	"fmt"

	"github.com/get-axon/go-axon/ddd"
)

// EventMessage is a generic event message.
//
// It can be used to represent event messages that are not domain
// specific. Domain-specific event messages should define their own
// type implementing the Message capability instead.
type EventMessage struct {
	identifier ddd.Entity
	metadata   ddd.MetaData
	payload    Payload
}

var _ Message = EventMessage{}

// NewEventMessage creates an EventMessage with the given event name
// and payload.
//
// The message identity is a fresh Entity named after the event, and the
// message metadata is seeded from that Entity, plus the event name
// recorded under ddd.EventNameKey.
func NewEventMessage(eventName string, payload any) EventMessage {
	identifier := ddd.EntityFromName(eventName)

	return EventMessage{
		identifier: identifier,
		metadata:   identifier.AsMetadata().Add(ddd.EventNameKey, eventName),
		payload:    NewPayload(payload),
	}
}

// SetIdentifier returns the EventMessage with its identity replaced.
//
// Note: metadata entries previously seeded from the old identity are
// NOT re-derived. Callers that need the two to stay consistent must
// merge Identifier().AsMetadata() back in themselves.
func (m EventMessage) SetIdentifier(identifier ddd.Entity) EventMessage {
	m.identifier = identifier
	return m
}

// AddMeta returns the EventMessage with the given metadata entry added,
// following the overwrite semantics of ddd.MetaData.Add.
func (m EventMessage) AddMeta(key string, value any) EventMessage {
	m.metadata = m.metadata.Add(key, value)
	return m
}

// Identifier implements the message.Message capability.
func (m EventMessage) Identifier() ddd.Entity { return m.identifier }

// Metadata implements the message.Message capability.
func (m EventMessage) Metadata() ddd.MetaData { return m.metadata }

// Payload implements the message.Message capability.
func (m EventMessage) Payload() Payload { return m.payload }

// String renders the message through its identity Entity.
func (m EventMessage) String() string {
	return m.identifier.String()
}

type eventMessageJSON struct {
	Identifier ddd.Entity   `json:"identifier"`
	Metadata   ddd.MetaData `json:"metadata"`
	Payload    Payload      `json:"payload"`
}

// MarshalJSON implements the json.Marshaler interface.
func (m EventMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventMessageJSON{
		Identifier: m.identifier,
		Metadata:   m.metadata,
		Payload:    m.payload,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *EventMessage) UnmarshalJSON(data []byte) error {
	var decoded eventMessageJSON

	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("message.EventMessage: failed to unmarshal, %w", err)
	}

	m.identifier = decoded.Identifier
	m.metadata = decoded.Metadata
	m.payload = decoded.Payload

	return nil
}
