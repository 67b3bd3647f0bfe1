package ddd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Arn is the capability of a resource to describe itself through an
// Axon Resource Name, similar in structure to Amazon Resource Names.
//
// Implement it on a resource, such as a Message type, to encode its
// identity as addressable parts.
type Arn interface {
	// ArnString returns the full textual representation of the resource name.
	ArnString() string

	// ArnName returns the plain name of the resource.
	ArnName() string
}

// Entity identifies a unique element, such as a Message instance,
// through a unique id and a name.
//
// Entities are immutable values, compared and ordered by (id, name),
// which makes them usable as map keys or in sorted collections.
type Entity struct {
	id   string
	name string
}

var _ Arn = Entity{}

// NewEntity creates an Entity from the given id and name.
//
// No validation is applied: callers are expected to provide a non-empty
// id and name. Use EntityFromName when the id does not need to be
// externally specified.
func NewEntity(id, name string) Entity {
	return Entity{id: id, name: name}
}

// EntityFromName creates an Entity with the given name and a freshly
// generated unique id.
func EntityFromName(name string) Entity {
	return Entity{id: uuid.NewString(), name: name}
}

// AnonymousEntity creates an Entity with a freshly generated unique id
// and AnonymousEntityName as name.
func AnonymousEntity() Entity {
	return Entity{id: uuid.NewString(), name: AnonymousEntityName}
}

// ID returns the unique id of the Entity.
func (e Entity) ID() string { return e.id }

// Name returns the name of the Entity.
func (e Entity) Name() string { return e.name }

// Compare returns an integer comparing two Entities, ordering by id
// first, then by name. The result is 0 if the two Entities are equal,
// negative if e sorts before other, positive otherwise.
func (e Entity) Compare(other Entity) int {
	if v := strings.Compare(e.id, other.id); v != 0 {
		return v
	}

	return strings.Compare(e.name, other.name)
}

// String renders the Entity as "name:id".
func (e Entity) String() string {
	return e.name + ":" + e.id
}

// ArnString implements the ddd.Arn capability, rendering the Entity
// as "arn:{name}/{id}".
func (e Entity) ArnString() string {
	return fmt.Sprintf("arn:%s/%s", e.name, e.id)
}

// ArnName implements the ddd.Arn capability.
func (e Entity) ArnName() string { return e.name }

// AsMetadata returns a MetaData recording the Entity id and name under
// the EntityIDKey and EntityNameKey entries. Used to seed a message's
// own metadata at construction time.
func (e Entity) AsMetadata() MetaData {
	return NewMetaData().
		Add(EntityIDKey, e.id).
		Add(EntityNameKey, e.name)
}

// AsCorrelation returns a MetaData recording the Entity id under both
// the CorrelationIDKey and TraceIDKey entries. Used by the Origin
// correlation strategy when a message roots a new causal chain.
func (e Entity) AsCorrelation() MetaData {
	return NewMetaData().
		Add(CorrelationIDKey, e.id).
		Add(TraceIDKey, e.id)
}

type entityJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MarshalJSON implements the json.Marshaler interface.
func (e Entity) MarshalJSON() ([]byte, error) {
	return json.Marshal(entityJSON{ID: e.id, Name: e.name})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (e *Entity) UnmarshalJSON(data []byte) error {
	var decoded entityJSON

	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("ddd.Entity: failed to unmarshal, %w", err)
	}

	e.id = decoded.ID
	e.name = decoded.Name

	return nil
}
