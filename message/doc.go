// Package message defines the Message capability shared by every
// message kind flowing through the system, the Payload wrapper for
// their structured body, and a generic EventMessage implementation for
// events that do not warrant a domain-specific type.
package message
