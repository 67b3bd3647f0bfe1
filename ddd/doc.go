// Package ddd contains the identity and metadata primitives shared by
// every message kind: the Entity identity value, the MetaData attribute
// carrier, and the well-known metadata keys with reserved semantics.
package ddd
