package domain

import "strings"

// Well-known property keys.
const (
	PropertyClassname  = "classname"
	PropertyTargetname = "targetname"
	PropertyModel      = "model"
)

// Property is one named value of an entity. Entities keep properties as an
// ordered sequence so display and export emit keys in source order.
type Property struct {
	Key   string
	Value PropertyValue
}

// Entity is a read-only view over one map entity: its ordered properties,
// optional outgoing connections, and the name of the lump it was read from.
// Entities are immutable values; derived attributes (classname, targetname,
// point/mesh classification) are computed from the properties on demand.
type Entity struct {
	properties  []Property
	connections []Connection
	sourceLump  string
}

// NewEntity creates an entity from ordered properties. The slice is copied
// to keep the entity immutable with respect to the caller.
func NewEntity(properties []Property) Entity {
	return Entity{properties: copyProperties(properties)}
}

// WithConnections returns a new entity carrying the given ordered
// connections.
func (e Entity) WithConnections(connections ...Connection) Entity {
	return Entity{
		properties:  e.properties,
		connections: append([]Connection(nil), connections...),
		sourceLump:  e.sourceLump,
	}
}

// WithSourceLump returns a new entity tagged with the lump it came from.
func (e Entity) WithSourceLump(name string) Entity {
	return Entity{
		properties:  e.properties,
		connections: e.connections,
		sourceLump:  name,
	}
}

// WithProperty returns a new entity with the property appended, or replaced
// in place when the key already exists.
func (e Entity) WithProperty(key string, value PropertyValue) Entity {
	properties := copyProperties(e.properties)
	replaced := false
	for i := range properties {
		if properties[i].Key == key {
			properties[i].Value = value
			replaced = true
			break
		}
	}
	if !replaced {
		properties = append(properties, Property{Key: key, Value: value})
	}
	return Entity{
		properties:  properties,
		connections: e.connections,
		sourceLump:  e.sourceLump,
	}
}

// Classname returns the entity's classname property, or "" when unset.
func (e Entity) Classname() string {
	return e.Property(PropertyClassname, "")
}

// Targetname returns the entity's targetname property, or "" when unset.
func (e Entity) Targetname() string {
	return e.Property(PropertyTargetname, "")
}

// Property returns the stringified value of the named property, or
// fallback when the property is absent. Lookup prefers the exact stored
// key and falls back to a case-insensitive scan in property order.
func (e Entity) Property(name, fallback string) string {
	if value, ok := e.lookup(name); ok {
		return value.Display()
	}
	return fallback
}

// HasProperty reports whether the named property exists with a present
// value.
func (e Entity) HasProperty(name string) bool {
	_, ok := e.lookup(name)
	return ok
}

// IsMeshEntity reports whether the entity carries a model property. The
// classification is derived, never stored.
func (e Entity) IsMeshEntity() bool {
	return e.HasProperty(PropertyModel)
}

// IsPointEntity reports whether the entity has no model property.
func (e Entity) IsPointEntity() bool {
	return !e.IsMeshEntity()
}

// Properties returns the ordered properties as a copy.
func (e Entity) Properties() []Property {
	return copyProperties(e.properties)
}

// Connections returns the ordered outgoing connections as a copy. Entities
// without connections return nil; an empty and an absent connection list
// behave identically.
func (e Entity) Connections() []Connection {
	if len(e.connections) == 0 {
		return nil
	}
	return append([]Connection(nil), e.connections...)
}

// HasConnections reports whether the entity has at least one connection.
func (e Entity) HasConnections() bool {
	return len(e.connections) > 0
}

// SourceLump returns the name of the lump the entity came from and whether
// it is known.
func (e Entity) SourceLump() (string, bool) {
	return e.sourceLump, e.sourceLump != ""
}

func (e Entity) lookup(name string) (PropertyValue, bool) {
	for _, property := range e.properties {
		if property.Key == name && !property.Value.IsAbsent() {
			return property.Value, true
		}
	}
	for _, property := range e.properties {
		if strings.EqualFold(property.Key, name) && !property.Value.IsAbsent() {
			return property.Value, true
		}
	}
	return PropertyValue{}, false
}

// copyProperties copies the ordered property slice so entities stay
// immutable with respect to their callers.
func copyProperties(properties []Property) []Property {
	if properties == nil {
		return nil
	}
	return append([]Property(nil), properties...)
}
