package message

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// Payload wraps the structured body of a Message.
//
// The wrapped value is opaque to the library: any JSON-representable
// value (object, array, string, number, bool or null) is accepted.
type Payload struct {
	value any
}

// NewPayload wraps the given value into a Payload.
func NewPayload(value any) Payload {
	return Payload{value: value}
}

// Value returns the wrapped value.
func (p Payload) Value() any { return p.value }

// Equal reports whether two Payloads wrap the same structured value.
//
// Values are compared through their canonical JSON form, so equivalent
// representations of the same value, like int64(1) and the float64(1)
// obtained after a JSON round-trip, compare equal.
func (p Payload) Equal(other Payload) bool {
	data, err := json.Marshal(p.value)
	otherData, otherErr := json.Marshal(other.value)

	if err != nil || otherErr != nil {
		return reflect.DeepEqual(p.value, other.value)
	}

	return bytes.Equal(data, otherData)
}

// String renders the wrapped value in its canonical JSON text form,
// e.g. NewPayload("Some value").String() == `"Some value"`.
func (p Payload) String() string {
	data, err := json.Marshal(p.value)
	if err != nil {
		return fmt.Sprintf("%v", p.value)
	}

	return string(data)
}

// MarshalJSON implements the json.Marshaler interface, serializing the
// wrapped value directly with no additional nesting.
func (p Payload) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(p.value)
	if err != nil {
		return nil, fmt.Errorf("message.Payload: failed to marshal value, %w", err)
	}

	return data, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var value any

	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("message.Payload: failed to unmarshal value, %w", err)
	}

	p.value = value

	return nil
}
