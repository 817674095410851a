package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PropertyKind discriminates the shapes an entity property value can take.
type PropertyKind int

const (
	PropertyAbsent PropertyKind = iota
	PropertyScalar
	PropertyArray
)

// PropertyValue is a tagged union over the three value shapes: absent,
// scalar, or an ordered sequence of scalars. Consumers switch on Kind
// exhaustively instead of inspecting runtime types.
type PropertyValue struct {
	kind   PropertyKind
	scalar string
	items  []string
}

// AbsentValue returns the absent property value.
func AbsentValue() PropertyValue {
	return PropertyValue{kind: PropertyAbsent}
}

// ScalarValue wraps a single stringified value.
func ScalarValue(value string) PropertyValue {
	return PropertyValue{kind: PropertyScalar, scalar: value}
}

// ArrayValue wraps an ordered sequence of stringified values.
func ArrayValue(items ...string) PropertyValue {
	copied := append([]string(nil), items...)
	return PropertyValue{kind: PropertyArray, items: copied}
}

// ValueOf converts a raw decoded value into a PropertyValue. It never fails:
// nil maps to absent, slices map to array values with each element
// stringified, everything else is stringified best-effort.
func ValueOf(raw any) PropertyValue {
	switch v := raw.(type) {
	case nil:
		return AbsentValue()
	case PropertyValue:
		return v
	case []string:
		return ArrayValue(v...)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = stringifyScalar(item)
		}
		return PropertyValue{kind: PropertyArray, items: items}
	default:
		return ScalarValue(stringifyScalar(raw))
	}
}

// Kind reports the value shape.
func (v PropertyValue) Kind() PropertyKind {
	return v.kind
}

// IsAbsent reports whether the value is absent.
func (v PropertyValue) IsAbsent() bool {
	return v.kind == PropertyAbsent
}

// Display renders the value for inline display: the scalar itself, array
// elements joined with single spaces, or the empty string when absent.
func (v PropertyValue) Display() string {
	switch v.kind {
	case PropertyScalar:
		return v.scalar
	case PropertyArray:
		return strings.Join(v.items, " ")
	default:
		return ""
	}
}

// Export renders the value for structured export: a string for scalar and
// absent values, an ordered []string for array values. The array projection
// preserves element order and is never joined.
func (v PropertyValue) Export() any {
	switch v.kind {
	case PropertyScalar:
		return v.scalar
	case PropertyArray:
		return append([]string(nil), v.items...)
	default:
		return ""
	}
}

// Items returns a copy of the array elements, or nil for non-array values.
func (v PropertyValue) Items() []string {
	if v.kind != PropertyArray {
		return nil
	}
	return append([]string(nil), v.items...)
}

func stringifyScalar(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case json.Number:
		return v.String()
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%v", v)
	case map[string]any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	default:
		return fmt.Sprintf("%v", v)
	}
}
