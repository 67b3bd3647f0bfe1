package ddd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// MetaData carries the cross-cutting attributes of a Message as an
// ordered set of key/value entries. Keys are unique; values can be any
// JSON-representable structured value.
//
// MetaData is copy-on-write: Add and Merge leave the receiver untouched
// and return the extended MetaData, so instances can be shared freely
// across goroutines once built.
//
// Insertion order is preserved, and drives both iteration and JSON
// serialization. Content equality (Equal) ignores it: two MetaData
// holding the same entries in a different order are equal.
type MetaData struct {
	keys   []string
	values map[string]any
}

// NewMetaData creates an empty MetaData.
func NewMetaData() MetaData {
	return MetaData{values: make(map[string]any)}
}

// Add returns a MetaData extended with the given entry.
//
// Re-adding an existing key overwrites its value, keeping the key's
// original position.
func (m MetaData) Add(key string, value any) MetaData {
	next := m.clone(1)

	if _, ok := next.values[key]; !ok {
		next.keys = append(next.keys, key)
	}

	next.values[key] = value

	return next
}

// Get returns the value recorded under the given key, if any.
func (m MetaData) Get(key string) (any, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Keys returns the entry keys in insertion order.
func (m MetaData) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)

	return keys
}

// Len returns the number of entries recorded.
func (m MetaData) Len() int { return len(m.keys) }

// Merge returns a MetaData containing the union of the entries of the
// receiver and other. On key collision the entry from other wins; keys
// found only in other are appended in other's own insertion order.
//
// This is the precedence rule correlation.MultiProvider relies on when
// combining the output of multiple providers.
func (m MetaData) Merge(other MetaData) MetaData {
	next := m.clone(other.Len())

	for _, key := range other.keys {
		if _, ok := next.values[key]; !ok {
			next.keys = append(next.keys, key)
		}

		next.values[key] = other.values[key]
	}

	return next
}

// Equal reports whether two MetaData hold the same entries, regardless
// of insertion order.
//
// Values are compared through their canonical JSON form, so equivalent
// representations of the same structured value, like int64(1) and the
// float64(1) obtained after a JSON round-trip, compare equal.
func (m MetaData) Equal(other MetaData) bool {
	if len(m.keys) != len(other.keys) {
		return false
	}

	for key, value := range m.values {
		otherValue, ok := other.values[key]
		if !ok || !jsonEqual(value, otherValue) {
			return false
		}
	}

	return true
}

func jsonEqual(a, b any) bool {
	aData, aErr := json.Marshal(a)
	bData, bErr := json.Marshal(b)

	if aErr != nil || bErr != nil {
		return reflect.DeepEqual(a, b)
	}

	return bytes.Equal(aData, bData)
}

func (m MetaData) clone(extraCapacity int) MetaData {
	next := MetaData{
		keys:   make([]string, len(m.keys), len(m.keys)+extraCapacity),
		values: make(map[string]any, len(m.values)+extraCapacity),
	}

	copy(next.keys, m.keys)

	for key, value := range m.values {
		next.values[key] = value
	}

	return next
}

// MarshalJSON implements the json.Marshaler interface, rendering the
// entries as a JSON object in insertion order.
func (m MetaData) MarshalJSON() ([]byte, error) {
	buffer := new(bytes.Buffer)
	buffer.WriteByte('{')

	for i, key := range m.keys {
		if i > 0 {
			buffer.WriteByte(',')
		}

		keyData, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("ddd.MetaData: failed to marshal key %q, %w", key, err)
		}

		valueData, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, fmt.Errorf("ddd.MetaData: failed to marshal value for key %q, %w", key, err)
		}

		buffer.Write(keyData)
		buffer.WriteByte(':')
		buffer.Write(valueData)
	}

	buffer.WriteByte('}')

	return buffer.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface, decoding a
// JSON object and preserving the document order of its keys.
func (m *MetaData) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("ddd.MetaData: failed to unmarshal, %w", err)
	}

	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("ddd.MetaData: expected a JSON object, got %v", token)
	}

	decoded := NewMetaData()

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return fmt.Errorf("ddd.MetaData: failed to unmarshal key, %w", err)
		}

		key, ok := token.(string)
		if !ok {
			return fmt.Errorf("ddd.MetaData: expected a string key, got %v", token)
		}

		var value any
		if err := decoder.Decode(&value); err != nil {
			return fmt.Errorf("ddd.MetaData: failed to unmarshal value for key %q, %w", key, err)
		}

		decoded = decoded.Add(key, value)
	}

	*m = decoded

	return nil
}
