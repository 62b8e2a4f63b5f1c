package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// marshalStrings encodes an ordered string slice as a JSON array for a TEXT
// column. nil encodes as "[]" so the column is never NULL.
func marshalStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encoding string list: %w", err)
	}
	return string(data), nil
}

// unmarshalStrings decodes a JSON array TEXT column back into a slice,
// preserving element order.
func unmarshalStrings(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("decoding string list: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
