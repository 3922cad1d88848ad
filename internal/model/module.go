package model

// Module is one generated unit: every endpoint sharing a tag, plus the
// schema records those endpoints reference. A module is never empty.
type Module struct {
	// Name is the PascalCase form of the tag ("User Management" ->
	// "UserManagement") and names the generated file and symbols.
	Name string
	// Tag is the tag that produced this module, verbatim.
	Tag       string
	Endpoints []Endpoint
	// Schemas holds the catalog records referenced by the endpoints'
	// request and response types, in first-seen order.
	Schemas []Schema
}

// SchemaNames returns the names of the module's referenced schemas.
func (m Module) SchemaNames() []string {
	names := make([]string, 0, len(m.Schemas))
	for _, s := range m.Schemas {
		names = append(names, s.Name)
	}
	return names
}
