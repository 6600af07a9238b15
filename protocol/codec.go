// Package protocol holds the JSON codec and wire envelopes shared by request
// bodies, service responses and self-signed token payloads.
package protocol

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// api is std-compatible: sorted map keys, HTML escaping, strict validation.
var api = sonic.ConfigStd

// Marshal encodes v as compact JSON.
func Marshal(v interface{}) ([]byte, error) {
	b, err := api.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("protocol: marshal: %w", err)
	}
	return b, nil
}

// MarshalIndent encodes v as two-space indented JSON.
func MarshalIndent(v interface{}) ([]byte, error) {
	b, err := api.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("protocol: marshal: %w", err)
	}
	return b, nil
}

// Unmarshal decodes JSON into v. Unknown object keys are ignored.
func Unmarshal(data []byte, v interface{}) error {
	if err := api.Unmarshal(data, v); err != nil {
		return fmt.Errorf("protocol: unmarshal: %w", err)
	}
	return nil
}

// UnmarshalPayload decodes a raw JSON payload into a typed value.
func UnmarshalPayload[T any](raw []byte) (T, error) {
	var v T
	if err := Unmarshal(raw, &v); err != nil {
		return v, err
	}
	return v, nil
}

// Valid reports whether data is a syntactically valid JSON document.
func Valid(data []byte) bool {
	return api.Valid(data)
}
