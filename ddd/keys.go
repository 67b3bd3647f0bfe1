package ddd

// Well-known MetaData keys with reserved semantics.
//
// MetaData accepts arbitrary additional keys, but the ones below are
// used by the library itself when deriving metadata from an Entity or
// when propagating correlation data between messages. Their literal
// values are part of the serialization contract and must not change.
const (
	// EventNameKey addresses the name of the event a message carries.
	EventNameKey = "axon:event:name"

	// EntityKey addresses a whole Entity recorded as a MetaData entry.
	EntityKey = "axon:entity"
	// EntityIDKey addresses the unique id of a message's own Entity.
	EntityIDKey = "axon:entity:id"
	// EntityNameKey addresses the name of a message's own Entity.
	EntityNameKey = "axon:entity:name"

	// CorrelationIDKey addresses the identifier shared by all messages
	// belonging to the same causal chain.
	CorrelationIDKey = "axon:correlation:id"
	// TraceIDKey addresses the identifier used for end-to-end tracing
	// of a chain of message processing.
	TraceIDKey = "axon:trace:id"
)

// AnonymousEntityName is the name given to Entities created without an
// explicit name.
const AnonymousEntityName = "axon:event:name/anonymous"
