// Package catalog builds the name-keyed table of schema definitions a
// document declares.
package catalog

import "github.com/statekit/storegen/internal/model"

// Catalog is an immutable view over every named schema in a document. It is
// built in one pass and never changes afterwards; lookups are read-only.
type Catalog struct {
	byName map[string]*model.Schema
	names  []string
}

// Build merges a document's component schemas (OpenAPI 3.x) and definitions
// (Swagger 2.0) into one flat table. Components are scanned first; a
// definition reusing a name replaces the record but keeps the original
// position. Records are normalized so Properties and Required are never
// nil. Either container may be absent; both absent yields an empty catalog.
func Build(doc *model.Document) *Catalog {
	c := &Catalog{byName: make(map[string]*model.Schema)}
	for _, container := range [][]model.Schema{doc.ComponentSchemas, doc.Definitions} {
		for i := range container {
			s := container[i]
			normalize(&s)
			if _, seen := c.byName[s.Name]; !seen {
				c.names = append(c.names, s.Name)
			}
			c.byName[s.Name] = &s
		}
	}
	return c
}

func normalize(s *model.Schema) {
	if s.Properties == nil {
		s.Properties = []model.Property{}
	}
	if s.Required == nil {
		s.Required = []string{}
	}
}

// Lookup returns the record registered under a schema name.
func (c *Catalog) Lookup(name string) (*model.Schema, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// Names returns every schema name in insertion order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

func (c *Catalog) Len() int {
	return len(c.byName)
}
