// Package entjson loads entity dumps: JSON arrays of objects carrying
// ordered properties, optional connections, and an optional source lump
// name. Property order inside each object is significant for display and
// export, so the loader walks decoder tokens instead of unmarshalling
// objects into maps, which would lose the order.
package entjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rpattn/entlens/internal/domain"
)

// ErrInvalidDump is returned when the input is not a JSON entity dump.
var ErrInvalidDump = errors.New("invalid entity dump")

type connectionJSON struct {
	Output      string  `json:"output"`
	Target      string  `json:"target"`
	Input       string  `json:"input"`
	Parameter   string  `json:"parameter"`
	Delay       float64 `json:"delay"`
	TimesToFire int     `json:"timesToFire"`

	// Raw carries the undigested keyvalue form
	// ("target,input,parameter,delay,timesToFire"); when set it wins over
	// the structured fields.
	Raw string `json:"raw"`
}

// LoadFile reads and parses the entity dump at path.
func LoadFile(path string) ([]domain.Entity, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open entity dump: %w", err)
	}
	defer file.Close()
	entities, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return entities, nil
}

// Load parses an entity dump from r, preserving entity order and each
// entity's property order.
func Load(r io.Reader) ([]domain.Entity, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	if err := expectDelim(decoder, '['); err != nil {
		return nil, err
	}
	entities := make([]domain.Entity, 0)
	for decoder.More() {
		entity, err := decodeEntity(decoder)
		if err != nil {
			return nil, fmt.Errorf("entity %d: %w", len(entities), err)
		}
		entities = append(entities, entity)
	}
	if err := expectDelim(decoder, ']'); err != nil {
		return nil, err
	}
	return entities, nil
}

func decodeEntity(decoder *json.Decoder) (domain.Entity, error) {
	if err := expectDelim(decoder, '{'); err != nil {
		return domain.Entity{}, err
	}

	var properties []domain.Property
	var connections []domain.Connection
	var sourceLump string

	for decoder.More() {
		key, err := decodeKey(decoder)
		if err != nil {
			return domain.Entity{}, err
		}
		switch key {
		case "properties":
			properties, err = decodeProperties(decoder)
		case "connections":
			connections, err = decodeConnections(decoder)
		case "sourceLump":
			err = decoder.Decode(&sourceLump)
		default:
			var skipped json.RawMessage
			err = decoder.Decode(&skipped)
		}
		if err != nil {
			return domain.Entity{}, fmt.Errorf("field %q: %w", key, err)
		}
	}
	if err := expectDelim(decoder, '}'); err != nil {
		return domain.Entity{}, err
	}

	entity := domain.NewEntity(properties)
	if len(connections) > 0 {
		entity = entity.WithConnections(connections...)
	}
	if sourceLump != "" {
		entity = entity.WithSourceLump(sourceLump)
	}
	return entity, nil
}

func decodeProperties(decoder *json.Decoder) ([]domain.Property, error) {
	if err := expectDelim(decoder, '{'); err != nil {
		return nil, err
	}
	properties := make([]domain.Property, 0)
	for decoder.More() {
		key, err := decodeKey(decoder)
		if err != nil {
			return nil, err
		}
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("property %q: %w", key, err)
		}
		properties = append(properties, domain.Property{Key: key, Value: valueFromRaw(raw)})
	}
	if err := expectDelim(decoder, '}'); err != nil {
		return nil, err
	}
	return properties, nil
}

func decodeConnections(decoder *json.Decoder) ([]domain.Connection, error) {
	var raw []connectionJSON
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}
	connections := make([]domain.Connection, len(raw))
	for i, c := range raw {
		if c.Raw != "" {
			connections[i] = domain.ParseConnection(c.Output, c.Raw)
			continue
		}
		connections[i] = domain.Connection{
			Output:      c.Output,
			TargetName:  c.Target,
			Input:       c.Input,
			Parameter:   c.Parameter,
			Delay:       c.Delay,
			TimesToFire: c.TimesToFire,
		}
	}
	return connections, nil
}

// valueFromRaw converts one raw property value into the tagged union shape.
// Malformed fragments degrade to absent rather than failing a whole load.
func valueFromRaw(raw json.RawMessage) domain.PropertyValue {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domain.AbsentValue()
	}
	sub := json.NewDecoder(bytes.NewReader(trimmed))
	sub.UseNumber()
	var decoded any
	if err := sub.Decode(&decoded); err != nil {
		return domain.AbsentValue()
	}
	return domain.ValueOf(decoded)
}

func decodeKey(decoder *json.Decoder) (string, error) {
	token, err := decoder.Token()
	if err != nil {
		return "", err
	}
	key, ok := token.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected object key, got %v", ErrInvalidDump, token)
	}
	return key, nil
}

func expectDelim(decoder *json.Decoder, want json.Delim) error {
	token, err := decoder.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected end of input", ErrInvalidDump)
		}
		return err
	}
	delim, ok := token.(json.Delim)
	if !ok || delim != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrInvalidDump, want, token)
	}
	return nil
}
