package model

type Schema struct {
	Name        string
	Description string
	Type        SchemaType
	Format      string
	Nullable    bool
	Deprecated  bool

	// Object properties
	Properties []Property
	Required   []string

	// Array items
	Items *Schema

	// Enum values
	Enum []any

	// Reference
	Ref string
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
)

type Property struct {
	Name   string
	Schema *Schema
}

// RequiresProperty reports whether the named property is listed as required.
func (s Schema) RequiresProperty(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}
