// Package group assembles endpoints into modules, one per tag.
package group

import (
	"github.com/statekit/storegen/internal/catalog"
	"github.com/statekit/storegen/internal/extract"
	"github.com/statekit/storegen/internal/model"
	"github.com/statekit/storegen/internal/typescript"
)

// Modules groups endpoints into one module per tag, ordered by the tag's
// first occurrence. An endpoint carrying several tags lands in every one of
// those modules; untagged endpoints group under a tag inferred from their
// path. When filter is non-empty only its member tags (matched exactly,
// case-sensitive) produce modules, and endpoints whose tags are all
// filtered out are dropped.
func Modules(endpoints []model.Endpoint, cat *catalog.Catalog, filter []string) []model.Module {
	allowed := make(map[string]bool, len(filter))
	for _, t := range filter {
		allowed[t] = true
	}

	var order []string
	byTag := make(map[string]*model.Module)

	for _, e := range endpoints {
		tags := e.Tags
		if len(tags) == 0 {
			tags = []string{extract.InferTag(e.Path)}
		}
		for _, tag := range tags {
			if len(filter) > 0 && !allowed[tag] {
				continue
			}
			m, ok := byTag[tag]
			if !ok {
				m = &model.Module{
					Name: typescript.PascalCase(tag),
					Tag:  tag,
				}
				byTag[tag] = m
				order = append(order, tag)
			}
			appendEndpoint(m, e)
		}
	}

	modules := make([]model.Module, 0, len(order))
	for _, tag := range order {
		m := byTag[tag]
		m.Schemas = referencedSchemas(m.Endpoints, cat)
		modules = append(modules, *m)
	}
	return modules
}

// appendEndpoint adds an endpoint to a module. A repeated call name
// replaces the earlier endpoint in place, keeping its position.
func appendEndpoint(m *model.Module, e model.Endpoint) {
	for i := range m.Endpoints {
		if m.Endpoints[i].CallName == e.CallName {
			m.Endpoints[i] = e
			return
		}
	}
	m.Endpoints = append(m.Endpoints, e)
}

// referencedSchemas resolves the catalog records named by the endpoints'
// parameter, request and response types, in first-seen order with array
// suffixes stripped. Names the catalog does not know are skipped.
func referencedSchemas(endpoints []model.Endpoint, cat *catalog.Catalog) []model.Schema {
	seen := make(map[string]bool)
	var schemas []model.Schema

	add := func(typeName string) {
		name := typescript.BaseTypeName(typeName)
		if name == "" || seen[name] {
			return
		}
		if s, ok := cat.Lookup(name); ok {
			seen[name] = true
			schemas = append(schemas, *s)
		}
	}

	for _, e := range endpoints {
		for _, p := range e.Parameters {
			add(p.Type)
		}
		if e.RequestBody != nil {
			add(e.RequestBody.SchemaRef)
		}
		for _, r := range e.Responses {
			add(r.SchemaRef)
		}
	}
	return schemas
}
