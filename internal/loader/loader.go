// Package loader reads an OpenAPI or Swagger document and turns it into
// the internal document model.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pb33f/libopenapi"
	validator "github.com/pb33f/libopenapi-validator"
	"github.com/pb33f/libopenapi/datamodel"
	"go.yaml.in/yaml/v4"

	"github.com/statekit/storegen/internal/model"
)

// Options control how strictly a document is checked during load.
type Options struct {
	// Strict fails the load on validation findings instead of recording
	// them as warnings.
	Strict bool
}

type Result struct {
	Document *model.Document
	Version  string
	Warnings []string
	RawData  []byte
}

// versionProbe reads just the top-level version keys, so unsupported
// documents fail with a precise message before the full parse.
type versionProbe struct {
	OpenAPI string `yaml:"openapi"`
	Swagger string `yaml:"swagger"`
}

func LoadFile(path string, opts Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	config := &datamodel.DocumentConfiguration{
		BasePath:            filepath.Dir(absPath),
		AllowFileReferences: true,
	}

	return loadWithConfig(data, config, opts)
}

func loadWithConfig(data []byte, config *datamodel.DocumentConfiguration, opts Options) (*Result, error) {
	var probe versionProbe
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	switch {
	case probe.OpenAPI == "" && probe.Swagger == "":
		return nil, fmt.Errorf("document declares neither an openapi nor a swagger version")
	case probe.OpenAPI != "" && !strings.HasPrefix(probe.OpenAPI, "3."):
		return nil, fmt.Errorf("unsupported OpenAPI version: %s (supported: 3.x)", probe.OpenAPI)
	case probe.Swagger != "" && probe.Swagger != "2.0":
		return nil, fmt.Errorf("unsupported Swagger version: %s (supported: 2.0)", probe.Swagger)
	}

	var doc libopenapi.Document
	var err error
	if config != nil {
		doc, err = libopenapi.NewDocumentWithConfiguration(data, config)
	} else {
		doc, err = libopenapi.NewDocument(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing OpenAPI document: %w", err)
	}

	if probe.Swagger != "" {
		return loadV2(doc, data, opts)
	}
	return loadV3(doc, data, opts)
}

func loadV3(doc libopenapi.Document, data []byte, opts Options) (*Result, error) {
	result := &Result{
		Version: "OpenAPI " + doc.GetVersion(),
		RawData: data,
	}

	findings := validate(doc)
	if opts.Strict && len(findings) > 0 {
		return nil, fmt.Errorf("document failed validation: %s", strings.Join(findings, "; "))
	}
	result.Warnings = append(result.Warnings, findings...)

	m, err := doc.BuildV3Model()
	if err != nil {
		return nil, fmt.Errorf("building OpenAPI model: %w", err)
	}

	result.Document = transformV3(&m.Model)
	return result, nil
}

func loadV2(doc libopenapi.Document, data []byte, opts Options) (*Result, error) {
	result := &Result{
		Version: "Swagger 2.0",
		RawData: data,
	}

	// The document validator only understands 3.x.
	if opts.Strict {
		result.Warnings = append(result.Warnings, "strict validation unavailable for Swagger 2.0 documents; structural checks only")
	}

	m, err := doc.BuildV2Model()
	if err != nil {
		return nil, fmt.Errorf("building Swagger model: %w", err)
	}

	result.Document = transformV2(&m.Model)
	return result, nil
}

// validate runs document validation and flattens the findings into
// messages.
func validate(doc libopenapi.Document) []string {
	v, errs := validator.NewValidator(doc)
	if len(errs) > 0 {
		out := make([]string, 0, len(errs))
		for _, err := range errs {
			out = append(out, err.Error())
		}
		return out
	}

	ok, findings := v.ValidateDocument()
	if ok {
		return nil
	}
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Message)
	}
	return out
}
