// Package render turns modules into source text through the library
// templates.
package render

import (
	"errors"
	"fmt"

	"github.com/statekit/storegen/internal/config"
	"github.com/statekit/storegen/internal/model"
	"github.com/statekit/storegen/internal/templates"
)

// ErrUnknownLibrary reports a library identifier with no registered
// template.
var ErrUnknownLibrary = errors.New("unknown library")

// RenderError wraps a template execution failure with the module that was
// being rendered.
type RenderError struct {
	Module string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering module %s: %v", e.Module, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Registry maps library identifiers to their template names. It is built
// once at startup and handed to the renderer; nothing mutates it afterwards.
type Registry map[config.Library]string

// NewRegistry returns the registry of built-in library templates.
func NewRegistry() Registry {
	return Registry{
		config.LibraryReactQuery: "react-query.tmpl",
		config.LibrarySWR:        "swr.tmpl",
		config.LibraryZustand:    "zustand.tmpl",
		config.LibraryRedux:      "redux.tmpl",
	}
}

// Supports reports whether the registry carries a template for a library.
func (r Registry) Supports(lib config.Library) bool {
	_, ok := r[lib]
	return ok
}

type Renderer struct {
	engine   templates.Engine
	registry Registry
}

func New(engine templates.Engine, registry Registry) *Renderer {
	return &Renderer{engine: engine, registry: registry}
}

// ModuleData is the payload every library template receives.
type ModuleData struct {
	Module   model.Module
	Library  config.Library
	Language config.Language
}

// Module renders one module in the requested library style. The rendering
// is always statically typed; the caller downgrades it for the dynamic
// language target.
func (r *Renderer) Module(m model.Module, lib config.Library, lang config.Language) (string, error) {
	name, ok := r.registry[lib]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownLibrary, lib)
	}
	out, err := r.engine.Execute(name, ModuleData{Module: m, Library: lib, Language: lang})
	if err != nil {
		return "", &RenderError{Module: m.Name, Err: err}
	}
	return out, nil
}

// IndexEntry describes one module line in the aggregate index.
type IndexEntry struct {
	Module model.Module
	Folder string
	// File is the module file base name, without extension.
	File string
}

type IndexData struct {
	Library config.Library
	Entries []IndexEntry
	// HasTypes adds the shared types re-export; set only for TypeScript
	// runs that emitted a types file.
	HasTypes bool
}

// Index renders the aggregate index that re-exports every generated module.
func (r *Renderer) Index(data IndexData) (string, error) {
	out, err := r.engine.Execute("index.tmpl", data)
	if err != nil {
		return "", &RenderError{Module: "index", Err: err}
	}
	return out, nil
}

type TypesData struct {
	Schemas []model.Schema
}

// Types renders the shared type declarations file.
func (r *Renderer) Types(data TypesData) (string, error) {
	out, err := r.engine.Execute("types.tmpl", data)
	if err != nil {
		return "", &RenderError{Module: "types", Err: err}
	}
	return out, nil
}
