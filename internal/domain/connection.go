package domain

import (
	"strconv"
	"strings"
)

// Connection describes one outbound signal from an entity: firing the named
// output sends the named input to the target entity, optionally overriding
// the input's parameter, after a delay, a limited number of times. Delay and
// TimesToFire are carried as opaque domain values and never reinterpreted
// here (-1 conventionally means unlimited).
type Connection struct {
	Output      string
	TargetName  string
	Input       string
	Parameter   string
	Delay       float64
	TimesToFire int
}

// Keyvalue connection strings use ESC as the field separator; older lumps
// use commas.
const connectionUnitSeparator = "\x1b"

// ParseConnection parses the raw keyvalue form of a connection
// ("target,input,parameter,delay,timesToFire", with either separator) for
// the given output name. Missing or malformed numeric fields fall back to
// zero values; parsing never fails.
func ParseConnection(output, raw string) Connection {
	separator := ","
	if strings.Contains(raw, connectionUnitSeparator) {
		separator = connectionUnitSeparator
	}
	fields := strings.Split(raw, separator)
	connection := Connection{Output: output}
	if len(fields) > 0 {
		connection.TargetName = strings.TrimSpace(fields[0])
	}
	if len(fields) > 1 {
		connection.Input = strings.TrimSpace(fields[1])
	}
	if len(fields) > 2 {
		connection.Parameter = fields[2]
	}
	if len(fields) > 3 {
		if delay, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64); err == nil {
			connection.Delay = delay
		}
	}
	if len(fields) > 4 {
		if times, err := strconv.Atoi(strings.TrimSpace(fields[4])); err == nil {
			connection.TimesToFire = times
		}
	}
	return connection
}
