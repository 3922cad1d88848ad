// Package extract resolves raw operations into endpoint records: call
// names, typed parameters and request/response type strings.
package extract

import (
	"strings"

	"github.com/statekit/storegen/internal/model"
	"github.com/statekit/storegen/internal/typescript"
)

// Document returns the endpoint records of every operation in the
// document, in declaration order.
func Document(doc *model.Document) []model.Endpoint {
	var endpoints []model.Endpoint
	for _, p := range doc.Paths {
		for _, op := range p.Operations {
			endpoints = append(endpoints, Operation(op))
		}
	}
	return endpoints
}

// Operation resolves one raw operation into an endpoint record.
func Operation(op model.Operation) model.Endpoint {
	e := model.Endpoint{
		CallName:    CallName(op.Method, op.Path),
		Method:      op.Method,
		Path:        op.Path,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
	}

	e.OperationID = op.ID
	if e.OperationID == "" {
		e.OperationID = e.CallName
	}

	for _, p := range op.Parameters {
		e.Parameters = append(e.Parameters, model.EndpointParameter{
			Name:        p.Name,
			In:          p.In,
			Required:    p.Required,
			Type:        typescript.ResolveType(p.Schema),
			Description: p.Description,
		})
	}

	if op.RequestBody != nil {
		e.RequestBody = extractBody(op.RequestBody)
	}

	for _, r := range op.Responses {
		e.Responses = append(e.Responses, extractResponse(r))
	}

	return e
}

func extractBody(rb *model.RequestBody) *model.EndpointBody {
	body := &model.EndpointBody{
		Required:    rb.Required,
		ContentType: "application/json",
		SchemaRef:   "any",
	}
	if len(rb.Content) > 0 {
		first := rb.Content[0]
		if first.MediaType != "" {
			body.ContentType = first.MediaType
		}
		body.SchemaRef = typescript.ResolveType(first.Schema)
	}
	return body
}

func extractResponse(r model.Response) model.EndpointResponse {
	resp := model.EndpointResponse{
		StatusCode:  r.StatusCode,
		Description: r.Description,
	}
	if content := pickContent(r.Content); content != nil {
		resp.SchemaRef = typescript.ResolveType(content.Schema)
	}
	return resp
}

// pickContent prefers the application/json entry and falls back to the
// first declared content type.
func pickContent(contents []model.MediaTypeContent) *model.MediaTypeContent {
	for i := range contents {
		if contents[i].MediaType == "application/json" {
			return &contents[i]
		}
	}
	if len(contents) > 0 {
		return &contents[0]
	}
	return nil
}

// CallName derives the generated function name from an endpoint's method
// and path. Literal segments are camelCased and capitalized, parameter
// segments become By-prefixed tokens, and the lowercase method leads:
// GET /order-history/{id} -> getOrderHistoryById.
func CallName(method model.Method, path string) string {
	name := strings.ToLower(string(method))
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			param := strings.Trim(seg, "{}")
			name += "By" + typescript.Capitalize(typescript.CamelCase(param))
		} else {
			name += typescript.Capitalize(typescript.CamelCase(seg))
		}
	}
	return typescript.Identifier(name)
}

// InferTag derives a grouping tag for an untagged operation: the
// capitalized first non-empty path segment, braces stripped. Paths with no
// usable segment fall back to "Default".
func InferTag(path string) string {
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		seg = strings.ReplaceAll(strings.ReplaceAll(seg, "{", ""), "}", "")
		if seg == "" {
			continue
		}
		return typescript.Capitalize(seg)
	}
	return "Default"
}
