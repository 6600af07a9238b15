package properties

import (
	"bytes"
	"dailyco/protocol"
	"encoding/json"
	"fmt"
)

var null = []byte("null")

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), null)
}

// Fill returns data with the documented default inserted for every field
// that is absent or null. Unknown keys pass through untouched.
func (s *Schema) Fill(data []byte) ([]byte, error) {
	var obj map[string]json.RawMessage
	if err := protocol.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("properties: %s: %w", s.name, err)
	}
	if obj == nil {
		obj = make(map[string]json.RawMessage, len(s.fields))
	}
	for _, f := range s.fields {
		if f.Default == nil {
			continue
		}
		if raw, ok := obj[string(f.Key)]; ok && !isNull(raw) {
			continue
		}
		def, err := protocol.Marshal(f.Default)
		if err != nil {
			return nil, fmt.Errorf("properties: %s: default for %s: %w", s.name, f.Key, err)
		}
		obj[string(f.Key)] = def
	}
	return protocol.Marshal(obj)
}

// Decode fills defaults into data and unmarshals the result into v. Entity
// types call it from UnmarshalJSON through an alias type.
func (s *Schema) Decode(data []byte, v interface{}) error {
	filled, err := s.Fill(data)
	if err != nil {
		return err
	}
	return protocol.Unmarshal(filled, v)
}

// FromClaims translates a claim-keyed payload back to JSON keys. Claims that
// are not part of the schema are dropped.
func (s *Schema) FromClaims(claims map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(claims))
	for claim, raw := range claims {
		if f, ok := s.LookupClaim(claim); ok {
			out[string(f.Key)] = raw
		}
	}
	return out
}

// ParseBag decodes a JSON-keyed object into a Bag. Null values and keys
// outside the schema are skipped.
func (s *Schema) ParseBag(data []byte) (*Bag, error) {
	var obj map[string]json.RawMessage
	if err := protocol.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("properties: %s: %w", s.name, err)
	}
	b := NewBag(s)
	for _, f := range s.fields {
		raw, ok := obj[string(f.Key)]
		if !ok || isNull(raw) {
			continue
		}
		v, err := decodeValue(f, raw)
		if err != nil {
			return nil, err
		}
		b.values[f.Key] = v
	}
	return b, nil
}

func decodeValue(f Field, raw json.RawMessage) (interface{}, error) {
	var (
		v   interface{}
		err error
	)
	switch f.Kind {
	case Bool:
		v, err = protocol.UnmarshalPayload[bool](raw)
	case Int:
		v, err = protocol.UnmarshalPayload[int64](raw)
	case Uint:
		v, err = protocol.UnmarshalPayload[uint64](raw)
	case String, Enum:
		v, err = protocol.UnmarshalPayload[string](raw)
	case Object:
		v = append(json.RawMessage(nil), raw...)
	default:
		err = fmt.Errorf("unsupported kind %s", f.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("properties: %s: %w", f.Key, err)
	}
	return v, nil
}
