// Package codegen wires the pipeline together: catalog, extraction,
// grouping, rendering and output planning.
package codegen

import (
	"fmt"

	"github.com/statekit/storegen/internal/catalog"
	"github.com/statekit/storegen/internal/config"
	"github.com/statekit/storegen/internal/extract"
	"github.com/statekit/storegen/internal/group"
	"github.com/statekit/storegen/internal/model"
	"github.com/statekit/storegen/internal/output"
	"github.com/statekit/storegen/internal/render"
	"github.com/statekit/storegen/internal/templates"
	"github.com/statekit/storegen/internal/typescript"
	embeddedtmpl "github.com/statekit/storegen/templates"
)

type Generator struct {
	config   *config.Config
	renderer *render.Renderer
}

// Stats summarizes a run for reporting.
type Stats struct {
	Modules   int
	Endpoints int
	Schemas   int
}

// Result is the planned outcome of a run. Generate performs no I/O; the
// caller writes Outputs or prints them for a dry run.
type Result struct {
	Outputs []output.File
	Modules []model.Module
	Stats   Stats
	// EmptySelection marks a run whose tag filter matched nothing.
	EmptySelection bool
}

func New(cfg *config.Config) (*Generator, error) {
	registry := render.NewRegistry()
	if !registry.Supports(cfg.Library) {
		return nil, fmt.Errorf("%w: %s", render.ErrUnknownLibrary, cfg.Library)
	}

	engine, err := templates.NewEngine(embeddedtmpl.FS, cfg.Templates.Dir, typescript.TemplateFuncs())
	if err != nil {
		return nil, fmt.Errorf("creating template engine: %w", err)
	}

	return &Generator{
		config:   cfg,
		renderer: render.New(engine, registry),
	}, nil
}

func (g *Generator) Generate(doc *model.Document) (*Result, error) {
	cat := catalog.Build(doc)
	endpoints := extract.Document(doc)
	modules := group.Modules(endpoints, cat, g.config.Tags)

	if len(modules) == 0 {
		return &Result{EmptySelection: len(g.config.Tags) > 0}, nil
	}

	js := g.config.Language == config.LanguageJavaScript
	ext := output.Extension(g.config.Language)

	result := &Result{Modules: modules}
	var entries []render.IndexEntry
	referenced := make(map[string]bool)

	for _, m := range modules {
		content, err := g.renderer.Module(m, g.config.Library, g.config.Language)
		if err != nil {
			return nil, err
		}
		if js {
			content = typescript.Downgrade(content)
		}

		folder := output.FolderName(m)
		base := output.FileBase(m, g.config.Library)
		result.Outputs = append(result.Outputs, output.File{
			Dir:     folder,
			Name:    base + ext,
			Content: content,
		})
		entries = append(entries, render.IndexEntry{Module: m, Folder: folder, File: base})

		for _, s := range m.Schemas {
			referenced[s.Name] = true
		}

		result.Stats.Modules++
		result.Stats.Endpoints += len(m.Endpoints)
	}

	var shared []model.Schema
	if !js {
		shared = sharedSchemas(cat, referenced)
	}

	indexContent, err := g.renderer.Index(render.IndexData{
		Library:  g.config.Library,
		Entries:  entries,
		HasTypes: len(shared) > 0,
	})
	if err != nil {
		return nil, err
	}
	if js {
		indexContent = typescript.Downgrade(indexContent)
	}
	result.Outputs = append(result.Outputs, output.File{
		Name:    output.IndexFileName(g.config.Language),
		Content: indexContent,
	})

	if len(shared) > 0 {
		typesContent, err := g.renderer.Types(render.TypesData{Schemas: shared})
		if err != nil {
			return nil, err
		}
		result.Outputs = append(result.Outputs, output.File{
			Name:    output.TypesFileName,
			Content: typesContent,
		})
		result.Stats.Schemas = len(shared)
	}

	return result, nil
}

// sharedSchemas resolves the referenced names to catalog records, pulling
// in the schemas those records mention through properties and items so the
// emitted declarations stay self-contained. Catalog insertion order is
// preserved.
func sharedSchemas(cat *catalog.Catalog, referenced map[string]bool) []model.Schema {
	closed := make(map[string]bool)
	var visit func(name string)
	visit = func(name string) {
		if closed[name] {
			return
		}
		s, ok := cat.Lookup(name)
		if !ok {
			return
		}
		closed[name] = true
		for _, ref := range schemaRefs(s) {
			visit(ref)
		}
	}
	for name := range referenced {
		visit(name)
	}

	var out []model.Schema
	for _, name := range cat.Names() {
		if !closed[name] {
			continue
		}
		if s, ok := cat.Lookup(name); ok {
			out = append(out, *s)
		}
	}
	return out
}

// schemaRefs lists the reference names a schema node reaches through its
// properties and items.
func schemaRefs(s *model.Schema) []string {
	if s == nil {
		return nil
	}
	if s.Ref != "" {
		return []string{typescript.RefName(s.Ref)}
	}
	var refs []string
	for _, p := range s.Properties {
		refs = append(refs, schemaRefs(p.Schema)...)
	}
	if s.Items != nil {
		refs = append(refs, schemaRefs(s.Items)...)
	}
	return refs
}
