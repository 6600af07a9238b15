package properties

import (
	"dailyco/protocol"
	"encoding/json"
	"fmt"
	"strconv"
)

// Bag is a sparse set of explicitly-set fields. Unset fields never appear in
// any encoding. Last write wins and a set field never reverts to unset.
type Bag struct {
	schema *Schema
	values map[Key]interface{}
}

// NewBag returns an empty bag over schema.
func NewBag(schema *Schema) *Bag {
	return &Bag{schema: schema, values: make(map[Key]interface{})}
}

// Schema returns the bag's field table.
func (b *Bag) Schema() *Schema { return b.schema }

// Set stores value under key. Object fields are stored as their encoded
// json.RawMessage whatever Go value was passed. It panics when key is not
// part of the schema, value is nil, or an object value cannot be encoded.
func (b *Bag) Set(key Key, value interface{}) *Bag {
	f, ok := b.schema.Lookup(key)
	if !ok {
		panic(fmt.Sprintf("properties: %q is not a %s field", key, b.schema.name))
	}
	if value == nil {
		panic(fmt.Sprintf("properties: nil value for %q", key))
	}
	if f.Kind == Object {
		raw, err := asObject(value)
		if err != nil {
			panic(fmt.Sprintf("properties: %s: %v", key, err))
		}
		value = raw
	}
	b.values[key] = value
	return b
}

func asObject(value interface{}) (json.RawMessage, error) {
	if raw, ok := value.(json.RawMessage); ok {
		return append(json.RawMessage(nil), raw...), nil
	}
	data, err := protocol.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// Get returns the value stored under key. Bool, Int, Uint, String and Enum
// fields hold bool, int64, uint64 and string; Object fields always hold a
// json.RawMessage.
func (b *Bag) Get(key Key) (interface{}, bool) {
	v, ok := b.values[key]
	return v, ok
}

// Has reports whether key was set.
func (b *Bag) Has(key Key) bool {
	_, ok := b.values[key]
	return ok
}

// Len returns the number of set fields.
func (b *Bag) Len() int { return len(b.values) }

// Keys returns the set keys in schema order.
func (b *Bag) Keys() []Key {
	keys := make([]Key, 0, len(b.values))
	for _, f := range b.schema.fields {
		if _, ok := b.values[f.Key]; ok {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// Clone returns an independent copy.
func (b *Bag) Clone() *Bag {
	c := NewBag(b.schema)
	for k, v := range b.values {
		c.values[k] = v
	}
	return c
}

// Map returns the set fields keyed by JSON key.
func (b *Bag) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(b.values))
	for k, v := range b.values {
		out[string(k)] = v
	}
	return out
}

// Claims returns the set fields keyed by claim key.
func (b *Bag) Claims() map[string]interface{} {
	out := make(map[string]interface{}, len(b.values))
	for k, v := range b.values {
		f, _ := b.schema.Lookup(k)
		out[f.ClaimKey()] = v
	}
	return out
}

// MarshalJSON encodes exactly the set fields.
func (b *Bag) MarshalJSON() ([]byte, error) {
	return protocol.Marshal(b.Map())
}

// SetRaw parses a textual value according to the field's kind and stores
// it. Object fields take a JSON object.
func (b *Bag) SetRaw(key, raw string) error {
	f, ok := b.schema.Lookup(Key(key))
	if !ok {
		return fmt.Errorf("properties: unknown %s field %q", b.schema.name, key)
	}
	v, err := ParseRaw(f, raw)
	if err != nil {
		return err
	}
	b.values[f.Key] = v
	return nil
}

// ParseRaw converts text to the Go value stored for field f.
func ParseRaw(f Field, raw string) (interface{}, error) {
	switch f.Kind {
	case Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("properties: %s: %w", f.Key, err)
		}
		return v, nil
	case Int:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("properties: %s: %w", f.Key, err)
		}
		return v, nil
	case Uint:
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("properties: %s: %w", f.Key, err)
		}
		return v, nil
	case String, Enum:
		return raw, nil
	case Object:
		var obj map[string]json.RawMessage
		if err := protocol.Unmarshal([]byte(raw), &obj); err != nil || obj == nil {
			return nil, fmt.Errorf("properties: %s: expected a JSON object", f.Key)
		}
		return json.RawMessage(raw), nil
	default:
		return nil, fmt.Errorf("properties: %s: unsupported kind %s", f.Key, f.Kind)
	}
}
