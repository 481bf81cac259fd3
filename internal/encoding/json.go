// Package encoding provides utilities for encoding and decoding data.
package encoding

import (
	"encoding/json"
)

// ToJSONIndent marshals a value to indented JSON bytes.
// Returns an error if marshaling fails.
func ToJSONIndent[T any](value T) ([]byte, error) {
	return json.MarshalIndent(value, "", "  ")
}
