// Package jsonutil provides the JSON round-trip helpers used at tool
// boundaries.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// Marshal returns the standard JSON encoding of v as a string.
func Marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to marshal %T: %w", v, err)
	}
	return string(data), nil
}

// Unmarshal decodes data into a fresh value of type T.
func Unmarshal[T any](data string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return v, fmt.Errorf("unable to unmarshal %T: %w", v, err)
	}
	return v, nil
}
