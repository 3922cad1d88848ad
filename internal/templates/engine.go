package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"text/template"
)

type Engine interface {
	Execute(name string, data any) (string, error)
}

// TextTemplateEngine parses every template up front into one set, so
// {{define}} blocks in one file are visible from the others.
type TextTemplateEngine struct {
	templates *template.Template
}

// NewEngine parses the embedded template set and overlays the custom
// directory when one is configured. A custom template replaces the
// embedded one with the same name.
func NewEngine(embedded fs.FS, customDir string, funcs template.FuncMap) (*TextTemplateEngine, error) {
	root := template.New("").Funcs(funcs)

	if err := parseAll(root, embedded, "embedded"); err != nil {
		return nil, err
	}

	if customDir != "" {
		err := parseAll(root, os.DirFS(customDir), "custom")
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &TextTemplateEngine{templates: root}, nil
}

func parseAll(root *template.Template, fsys fs.FS, kind string) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".tmpl" {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s template %s: %w", kind, p, err)
		}
		if _, err := root.New(p).Parse(string(content)); err != nil {
			return fmt.Errorf("parsing %s template %s: %w", kind, p, err)
		}
		return nil
	})
}

func (e *TextTemplateEngine) Execute(name string, data any) (string, error) {
	tmpl := e.templates.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.String(), nil
}
