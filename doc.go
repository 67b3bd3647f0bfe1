// Package axon contains the building blocks for event-driven,
// Domain-driven Design architectures: Messages carrying an identity
// (ddd.Entity), cross-cutting attributes (ddd.MetaData) and a typed
// body (message.Payload), together with the correlation strategies
// used to propagate causal lineage from one message onto the messages
// generated while processing it.
//
// The library contains multiple packages, you might want to start from
// `message` to model your Messages, and `correlation` to configure how
// correlation data flows between them.
//
// The library does not dispatch, deliver or persist messages: it only
// defines the in-process value types and propagation policies that a
// bus or store implementation can build upon.
package axon
