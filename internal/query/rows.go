package query

import (
	"strconv"

	"github.com/rpattn/entlens/internal/domain"
)

// PropertyRow is one flattened (key, display value) pair for the host's
// properties panel.
type PropertyRow struct {
	Key   string
	Value string
}

// ConnectionRow is one flattened connection for the host's outputs panel.
// Numeric fields are pre-formatted so the host renders strings only.
type ConnectionRow struct {
	Output      string
	TargetName  string
	Input       string
	Parameter   string
	Delay       string
	TimesToFire string
}

// PropertyRows flattens an entity's properties into display rows,
// preserving property order. Absent values render as empty strings.
func PropertyRows(entity domain.Entity) []PropertyRow {
	properties := entity.Properties()
	rows := make([]PropertyRow, len(properties))
	for i, property := range properties {
		rows[i] = PropertyRow{Key: property.Key, Value: property.Value.Display()}
	}
	return rows
}

// ConnectionRows flattens an entity's connections into display rows in
// connection order. Entities without connections yield an empty slice.
func ConnectionRows(entity domain.Entity) []ConnectionRow {
	connections := entity.Connections()
	rows := make([]ConnectionRow, len(connections))
	for i, connection := range connections {
		rows[i] = ConnectionRow{
			Output:      connection.Output,
			TargetName:  connection.TargetName,
			Input:       connection.Input,
			Parameter:   connection.Parameter,
			Delay:       strconv.FormatFloat(connection.Delay, 'g', -1, 64),
			TimesToFire: strconv.Itoa(connection.TimesToFire),
		}
	}
	return rows
}
