package loader

import (
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"go.yaml.in/yaml/v4"

	"github.com/statekit/storegen/internal/model"
)

type transformer struct {
	// componentSchemas recovers the reference name of a schema that the
	// parser resolved in place.
	componentSchemas map[*base.Schema]string
}

func transformV3(doc *v3.Document) *model.Document {
	t := &transformer{componentSchemas: make(map[*base.Schema]string)}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, proxy := range doc.Components.Schemas.FromOldest() {
			t.componentSchemas[proxy.Schema()] = "#/components/schemas/" + name
		}
	}

	out := &model.Document{
		Info: transformInfo(doc.Info),
		Tags: transformTags(doc.Tags),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, proxy := range doc.Components.Schemas.FromOldest() {
			if s := t.transformSchema(name, proxy.Schema()); s != nil {
				out.ComponentSchemas = append(out.ComponentSchemas, *s)
			}
		}
	}

	if doc.Paths != nil {
		for pathStr, pathItem := range doc.Paths.PathItems.FromOldest() {
			out.Paths = append(out.Paths, t.transformPath(pathStr, pathItem))
		}
	}

	return out
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	return model.Info{
		Title:       info.Title,
		Description: info.Description,
		Version:     info.Version,
	}
}

func transformTags(tags []*base.Tag) []model.Tag {
	var result []model.Tag
	for _, t := range tags {
		result = append(result, model.Tag{
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return result
}

func (t *transformer) transformPath(pathStr string, pathItem *v3.PathItem) model.Path {
	path := model.Path{Path: pathStr}

	shared := make([]model.Parameter, 0, len(pathItem.Parameters))
	for _, p := range pathItem.Parameters {
		shared = append(shared, t.transformParameter(p))
	}

	// Use a slice for deterministic ordering
	methods := []struct {
		method model.Method
		op     *v3.Operation
	}{
		{model.MethodGet, pathItem.Get},
		{model.MethodPost, pathItem.Post},
		{model.MethodPut, pathItem.Put},
		{model.MethodDelete, pathItem.Delete},
		{model.MethodPatch, pathItem.Patch},
	}

	for _, m := range methods {
		if m.op == nil {
			continue
		}
		path.Operations = append(path.Operations, t.transformOperation(m.method, pathStr, shared, m.op))
	}

	return path
}

func (t *transformer) transformOperation(method model.Method, path string, shared []model.Parameter, op *v3.Operation) model.Operation {
	operation := model.Operation{
		ID:          op.OperationId,
		Method:      method,
		Path:        path,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
		Deprecated:  boolPtr(op.Deprecated),
	}

	declared := make([]model.Parameter, 0, len(op.Parameters))
	for _, p := range op.Parameters {
		declared = append(declared, t.transformParameter(p))
	}
	operation.Parameters = mergeParameters(shared, declared)

	if op.RequestBody != nil {
		operation.RequestBody = t.transformRequestBody(op.RequestBody)
	}

	if op.Responses != nil {
		if op.Responses.Codes != nil {
			for code, resp := range op.Responses.Codes.FromOldest() {
				operation.Responses = append(operation.Responses, t.transformResponse(code, resp))
			}
		}
		if op.Responses.Default != nil {
			operation.Responses = append(operation.Responses, t.transformResponse("default", op.Responses.Default))
		}
	}

	return operation
}

// mergeParameters layers operation parameters over the path item's shared
// ones. An operation parameter replaces the shared parameter with the same
// (in, name) pair in place; the rest append after.
func mergeParameters(shared, declared []model.Parameter) []model.Parameter {
	if len(shared) == 0 {
		return declared
	}
	merged := make([]model.Parameter, len(shared), len(shared)+len(declared))
	copy(merged, shared)
	for _, p := range declared {
		replaced := false
		for i := range merged {
			if merged[i].In == p.In && merged[i].Name == p.Name {
				merged[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, p)
		}
	}
	return merged
}

func (t *transformer) transformParameter(p *v3.Parameter) model.Parameter {
	param := model.Parameter{
		Name:        p.Name,
		In:          model.ParameterLocation(strings.ToLower(p.In)),
		Description: p.Description,
		Required:    boolPtr(p.Required),
		Deprecated:  p.Deprecated,
	}

	if p.Schema != nil {
		param.Schema = t.transformSchemaProxy(p.Schema)
	} else if p.Content != nil {
		// OpenAPI 3.2: querystring parameters use content instead of schema
		for _, content := range p.Content.FromOldest() {
			if content.Schema != nil {
				param.Schema = t.transformSchemaProxy(content.Schema)
				break
			}
		}
	}

	return param
}

func (t *transformer) transformRequestBody(rb *v3.RequestBody) *model.RequestBody {
	body := &model.RequestBody{
		Description: rb.Description,
		Required:    boolPtr(rb.Required),
	}

	if rb.Content != nil {
		for mediaType, content := range rb.Content.FromOldest() {
			mtc := model.MediaTypeContent{MediaType: mediaType}
			if content.Schema != nil {
				mtc.Schema = t.transformSchemaProxy(content.Schema)
			}
			body.Content = append(body.Content, mtc)
		}
	}

	return body
}

func (t *transformer) transformResponse(code string, resp *v3.Response) model.Response {
	response := model.Response{
		StatusCode:  code,
		Description: resp.Description,
	}

	if resp.Content != nil {
		for mediaType, content := range resp.Content.FromOldest() {
			mtc := model.MediaTypeContent{MediaType: mediaType}
			if content.Schema != nil {
				mtc.Schema = t.transformSchemaProxy(content.Schema)
			}
			response.Content = append(response.Content, mtc)
		}
	}

	return response
}

func (t *transformer) transformSchemaProxy(proxy *base.SchemaProxy) *model.Schema {
	if proxy == nil {
		return nil
	}

	ref := proxy.GetReference()
	if ref == "" {
		if resolved, ok := t.componentSchemas[proxy.Schema()]; ok {
			return &model.Schema{Ref: resolved}
		}
	}

	schema := t.transformSchema("", proxy.Schema())
	if schema != nil && ref != "" {
		schema.Ref = ref
	}
	return schema
}

func (t *transformer) transformSchema(name string, s *base.Schema) *model.Schema {
	if s == nil {
		return nil
	}

	schema := &model.Schema{
		Name:        name,
		Description: s.Description,
		Format:      s.Format,
		Nullable:    boolPtr(s.Nullable),
		Deprecated:  boolPtr(s.Deprecated),
	}

	if len(s.Type) > 0 {
		schema.Type = model.SchemaType(s.Type[0])
	}

	for _, e := range s.Enum {
		schema.Enum = append(schema.Enum, decodeScalar(e))
	}

	if s.Properties != nil {
		for propName, propProxy := range s.Properties.FromOldest() {
			propSchema := t.transformSchemaProxy(propProxy)
			if propSchema != nil && propSchema.Name == "" {
				propSchema.Name = propName
			}
			schema.Properties = append(schema.Properties, model.Property{
				Name:   propName,
				Schema: propSchema,
			})
		}
	}

	schema.Required = s.Required

	if s.Items != nil && s.Items.A != nil {
		schema.Items = t.transformSchemaProxy(s.Items.A)
	}

	return schema
}

func decodeScalar(n *yaml.Node) any {
	if n == nil {
		return nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return n.Value
	}
	return v
}

func boolPtr(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
