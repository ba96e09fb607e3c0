// Package schema provides the JSON Schema subset used to describe tool
// parameters, and the central type coercion applied to incoming
// arguments.
package schema

// Type is a declared parameter type.
type Type string

// Supported parameter types.
const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
)

// Valid reports whether t is a supported parameter type.
func Valid(t Type) bool {
	switch t {
	case TypeString, TypeInteger, TypeNumber, TypeBoolean:
		return true
	}
	return false
}

// Schema represents the JSON Schema subset emitted for tool
// descriptors.
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Description string             `json:"description,omitempty"`
	Default     any                `json:"default,omitempty"`
}

// Object creates an empty object schema.
func Object() *Schema {
	return &Schema{
		Type:       "object",
		Properties: make(map[string]*Schema),
	}
}
