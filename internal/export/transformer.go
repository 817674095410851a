package export

import (
	"errors"
	"time"

	"github.com/rpattn/entlens/internal/domain"
)

// ErrEmptySelection is returned when Build is called without any entities.
// Callers are expected to guard this case and surface a "nothing selected"
// notice to the user.
var ErrEmptySelection = errors.New("no entities selected for export")

// Transformer builds export documents from entity selections.
type Transformer struct {
	now func() time.Time
}

// Option customizes a Transformer.
type Option func(*Transformer)

// WithClock overrides the export timestamp source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Transformer) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTransformer creates a Transformer stamping documents with the wall
// clock unless overridden.
func NewTransformer(opts ...Option) *Transformer {
	transformer := &Transformer{now: time.Now}
	for _, opt := range opts {
		opt(transformer)
	}
	return transformer
}

// Build projects the selected entities into a Document, preserving
// selection order. The selection must be non-empty.
func (t *Transformer) Build(entities []domain.Entity) (Document, error) {
	if len(entities) == 0 {
		return Document{}, ErrEmptySelection
	}
	records := make([]EntityRecord, len(entities))
	for i, entity := range entities {
		records[i] = buildRecord(entity)
	}
	return Document{
		EntityCount: len(entities),
		ExportDate:  t.now().UTC().Format(time.RFC3339),
		Entities:    records,
	}, nil
}

func buildRecord(entity domain.Entity) EntityRecord {
	properties := entity.Properties()
	propertyMap := make(PropertyMap, len(properties))
	for i, property := range properties {
		propertyMap[i] = PropertyEntry{Key: property.Key, Value: property.Value.Export()}
	}
	record := EntityRecord{Properties: propertyMap}
	for _, connection := range entity.Connections() {
		record.Connections = append(record.Connections, ConnectionRecord{
			Output:      connection.Output,
			Target:      connection.TargetName,
			Input:       connection.Input,
			Parameter:   connection.Parameter,
			Delay:       connection.Delay,
			TimesToFire: connection.TimesToFire,
		})
	}
	if lump, ok := entity.SourceLump(); ok {
		record.SourceLump = lump
	}
	return record
}
