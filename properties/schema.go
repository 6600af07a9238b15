// Package properties holds the field table shared by room and meeting-token
// configuration. A single Schema per resource drives the JSON request
// encoder, the self-signed claim encoder and the default-filling decoder.
package properties

import (
	"fmt"
)

// Key names one logical field by its full JSON key.
type Key string

func (k Key) String() string { return string(k) }

// Kind is the value type of a field.
type Kind int

const (
	Bool Kind = iota
	Int
	Uint
	String
	Enum
	Object
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case String:
		return "string"
	case Enum:
		return "enum"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field describes one configuration knob.
type Field struct {
	Key   Key
	Claim string // empty: claim key equals Key
	Kind  Kind
	// Default is what the service reports when the key is absent. Nil keeps
	// the field optional in materialized entities.
	Default interface{}
	Values  []string
}

// ClaimKey returns the key used in self-signed token payloads.
func (f Field) ClaimKey() string {
	if f.Claim == "" {
		return string(f.Key)
	}
	return f.Claim
}

// Optional reports whether the field has no documented default.
func (f Field) Optional() bool {
	return f.Default == nil
}

// Schema is an ordered, immutable field table.
type Schema struct {
	name    string
	fields  []Field
	byKey   map[Key]int
	byClaim map[string]int
}

// NewSchema builds a schema. It panics on duplicate keys or claim keys, which
// can only come from a broken table literal.
func NewSchema(name string, fields ...Field) *Schema {
	s := &Schema{
		name:    name,
		fields:  make([]Field, len(fields)),
		byKey:   make(map[Key]int, len(fields)),
		byClaim: make(map[string]int, len(fields)),
	}
	copy(s.fields, fields)
	for i, f := range s.fields {
		if f.Key == "" {
			panic(fmt.Sprintf("properties: %s schema: empty key at index %d", name, i))
		}
		if _, dup := s.byKey[f.Key]; dup {
			panic(fmt.Sprintf("properties: %s schema: duplicate key %q", name, f.Key))
		}
		claim := f.ClaimKey()
		if prev, dup := s.byClaim[claim]; dup {
			panic(fmt.Sprintf("properties: %s schema: claim %q used by %q and %q",
				name, claim, s.fields[prev].Key, f.Key))
		}
		s.byKey[f.Key] = i
		s.byClaim[claim] = i
	}
	return s
}

// Name returns the schema name ("room" or "token").
func (s *Schema) Name() string { return s.name }

// Fields returns the fields in table order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Lookup finds a field by JSON key.
func (s *Schema) Lookup(key Key) (Field, bool) {
	i, ok := s.byKey[key]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// LookupClaim finds a field by claim key.
func (s *Schema) LookupClaim(claim string) (Field, bool) {
	i, ok := s.byClaim[claim]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Defaults returns the documented default of every non-optional field,
// keyed by JSON key.
func (s *Schema) Defaults() map[Key]interface{} {
	out := make(map[Key]interface{})
	for _, f := range s.fields {
		if f.Default != nil {
			out[f.Key] = f.Default
		}
	}
	return out
}

func enumValues[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
