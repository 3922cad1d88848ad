package loader

import (
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	v2 "github.com/pb33f/libopenapi/datamodel/high/v2"

	"github.com/statekit/storegen/internal/model"
)

// transformV2 maps a Swagger 2.0 model onto the same internal shape the
// 3.x transform produces: body and formData parameters become the request
// body, response schemas become single content entries.
func transformV2(doc *v2.Swagger) *model.Document {
	t := &transformer{componentSchemas: make(map[*base.Schema]string)}

	out := &model.Document{
		Info: transformInfo(doc.Info),
		Tags: transformTags(doc.Tags),
	}

	if doc.Definitions != nil && doc.Definitions.Definitions != nil {
		for name, proxy := range doc.Definitions.Definitions.FromOldest() {
			t.componentSchemas[proxy.Schema()] = "#/definitions/" + name
		}
		for name, proxy := range doc.Definitions.Definitions.FromOldest() {
			if s := t.transformSchema(name, proxy.Schema()); s != nil {
				out.Definitions = append(out.Definitions, *s)
			}
		}
	}

	consumes := firstOr(doc.Consumes, "application/json")
	produces := firstOr(doc.Produces, "application/json")

	if doc.Paths != nil {
		for pathStr, item := range doc.Paths.PathItems.FromOldest() {
			out.Paths = append(out.Paths, t.transformV2Path(pathStr, item, consumes, produces))
		}
	}

	return out
}

func firstOr(values []string, fallback string) string {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}

func (t *transformer) transformV2Path(pathStr string, item *v2.PathItem, consumes, produces string) model.Path {
	path := model.Path{Path: pathStr}

	sharedParams, sharedBody := t.transformV2Parameters(item.Parameters, consumes)

	methods := []struct {
		method model.Method
		op     *v2.Operation
	}{
		{model.MethodGet, item.Get},
		{model.MethodPost, item.Post},
		{model.MethodPut, item.Put},
		{model.MethodDelete, item.Delete},
		{model.MethodPatch, item.Patch},
	}

	for _, m := range methods {
		if m.op == nil {
			continue
		}
		path.Operations = append(path.Operations, t.transformV2Operation(m.method, pathStr, sharedParams, sharedBody, m.op, consumes, produces))
	}

	return path
}

func (t *transformer) transformV2Operation(method model.Method, path string, shared []model.Parameter, sharedBody *model.RequestBody, op *v2.Operation, consumes, produces string) model.Operation {
	operation := model.Operation{
		ID:          op.OperationId,
		Method:      method,
		Path:        path,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
	}

	if len(op.Consumes) > 0 {
		consumes = op.Consumes[0]
	}
	if len(op.Produces) > 0 {
		produces = op.Produces[0]
	}

	declared, body := t.transformV2Parameters(op.Parameters, consumes)
	operation.Parameters = mergeParameters(shared, declared)
	if body == nil {
		body = sharedBody
	}
	operation.RequestBody = body

	if op.Responses != nil {
		if op.Responses.Codes != nil {
			for code, resp := range op.Responses.Codes.FromOldest() {
				operation.Responses = append(operation.Responses, t.transformV2Response(code, resp, produces))
			}
		}
		if op.Responses.Default != nil {
			operation.Responses = append(operation.Responses, t.transformV2Response("default", op.Responses.Default, produces))
		}
	}

	return operation
}

// transformV2Parameters splits a Swagger 2.0 parameter list into regular
// parameters and the request body: a body parameter carries its schema,
// formData parameters fold into an urlencoded body object.
func (t *transformer) transformV2Parameters(params []*v2.Parameter, consumes string) ([]model.Parameter, *model.RequestBody) {
	var out []model.Parameter
	var body *model.RequestBody
	var form []model.Property

	for _, p := range params {
		if p == nil {
			continue
		}
		switch strings.ToLower(p.In) {
		case "body":
			rb := &model.RequestBody{
				Description: p.Description,
				Required:    boolPtr(p.Required),
			}
			mtc := model.MediaTypeContent{MediaType: consumes}
			if p.Schema != nil {
				mtc.Schema = t.transformSchemaProxy(p.Schema)
			}
			rb.Content = []model.MediaTypeContent{mtc}
			body = rb
		case "formdata":
			form = append(form, model.Property{
				Name:   p.Name,
				Schema: t.transformV2ParameterSchema(p),
			})
		default:
			out = append(out, model.Parameter{
				Name:        p.Name,
				In:          model.ParameterLocation(strings.ToLower(p.In)),
				Description: p.Description,
				Required:    boolPtr(p.Required),
				Schema:      t.transformV2ParameterSchema(p),
			})
		}
	}

	if len(form) > 0 && body == nil {
		body = &model.RequestBody{
			Content: []model.MediaTypeContent{{
				MediaType: "application/x-www-form-urlencoded",
				Schema:    &model.Schema{Type: model.TypeObject, Properties: form},
			}},
		}
	}

	return out, body
}

// Swagger 2.0 non-body parameters carry their type inline rather than as a
// schema node.
func (t *transformer) transformV2ParameterSchema(p *v2.Parameter) *model.Schema {
	if p.Schema != nil {
		return t.transformSchemaProxy(p.Schema)
	}
	if p.Type == "" {
		return nil
	}
	s := &model.Schema{
		Type:   model.SchemaType(p.Type),
		Format: p.Format,
	}
	if p.Items != nil {
		s.Items = &model.Schema{
			Type:   model.SchemaType(p.Items.Type),
			Format: p.Items.Format,
		}
	}
	return s
}

func (t *transformer) transformV2Response(code string, resp *v2.Response, produces string) model.Response {
	response := model.Response{
		StatusCode:  code,
		Description: resp.Description,
	}

	if resp.Schema != nil {
		response.Content = []model.MediaTypeContent{{
			MediaType: produces,
			Schema:    t.transformSchemaProxy(resp.Schema),
		}}
	}

	return response
}
