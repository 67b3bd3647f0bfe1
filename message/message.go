package message

import "github.com/get-axon/go-axon/ddd"

// Message is the capability shared by every message kind in the
// system, such as Commands and Events: an identity, a set of
// cross-cutting attributes, and a structured body.
//
// Accessors return owned values: mutating what they return does not
// affect the message they came from.
type Message interface {
	// Identifier returns the Entity identifying this message instance.
	Identifier() ddd.Entity

	// Metadata returns the cross-cutting attributes attached to the message.
	Metadata() ddd.MetaData

	// Payload returns the structured body of the message.
	Payload() Payload
}
