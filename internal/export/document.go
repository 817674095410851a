// Package export projects a selection of entities into a self-contained,
// serializable document and writes it out as indented JSON or an XLSX
// workbook.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is the export payload: a count, the export timestamp, and one
// record per exported entity. Given identical inputs and clock it is
// deterministic, and by construction it contains only strings, numbers, and
// nested mappings/sequences.
type Document struct {
	EntityCount int            `json:"entityCount"`
	ExportDate  string         `json:"exportDate"`
	Entities    []EntityRecord `json:"entities"`
}

// EntityRecord is one exported entity. Properties are always present and
// fully populated; connections and sourceLump are omitted entirely when the
// entity has none, never emitted as null.
type EntityRecord struct {
	Properties  PropertyMap        `json:"properties"`
	Connections []ConnectionRecord `json:"connections,omitempty"`
	SourceLump  string             `json:"sourceLump,omitempty"`
}

// ConnectionRecord is one exported connection with every field populated,
// falling back to empty strings and zeroes.
type ConnectionRecord struct {
	Output      string  `json:"output"`
	Target      string  `json:"target"`
	Input       string  `json:"input"`
	Parameter   string  `json:"parameter"`
	Delay       float64 `json:"delay"`
	TimesToFire int     `json:"timesToFire"`
}

// PropertyEntry is one key with its export-shaped value: a string for
// scalars, an ordered []string for array properties.
type PropertyEntry struct {
	Key   string
	Value any
}

// PropertyMap marshals as a JSON object whose keys appear in entity
// property order. A plain map would lose that order to Go's sorted map
// marshalling.
type PropertyMap []PropertyEntry

// UnmarshalJSON implements json.Unmarshaler, reading keys back in document
// order so a re-read export round-trips.
func (m *PropertyMap) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("properties: expected object, got %v", token)
	}
	entries := make(PropertyMap, 0)
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return err
		}
		key, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("properties: expected key, got %v", keyToken)
		}
		var value any
		if err := decoder.Decode(&value); err != nil {
			return fmt.Errorf("properties: value for %q: %w", key, err)
		}
		entries = append(entries, PropertyEntry{Key: key, Value: value})
	}
	if _, err := decoder.Token(); err != nil {
		return err
	}
	*m = entries
	return nil
}

// MarshalJSON implements json.Marshaler, emitting keys in slice order.
func (m PropertyMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
