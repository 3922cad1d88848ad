package typescript

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/statekit/storegen/internal/model"
)

// TemplateFuncs returns the helper functions the generation templates use.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"camelCase":  CamelCase,
		"pascalCase": PascalCase,
		"kebabCase":  KebabCase,
		"capitalize": Capitalize,
		"lower":      strings.ToLower,
		"upper":      strings.ToUpper,
		"join":       strings.Join,
		"tsType":     ResolveType,
		"refName":    RefName,
		"propName":   PropName,
		"paramVar":   ParamVar,
		"paramSig":   ParamSignature,
		"argList":    ArgList,
		"argCount":   ArgCount,
		"pathExpr":   PathExpr,
		"queryKey":   QueryKey,
		"rootKey":    RootKey,
		"hookName":   HookName,
		"jsDoc":      JSDoc,
		"isGet": func(e model.Endpoint) bool {
			return e.Method == model.MethodGet
		},
		"pathParams": func(e model.Endpoint) []model.EndpointParameter {
			return e.ParametersIn(model.LocationPath)
		},
		"queryParams": func(e model.Endpoint) []model.EndpointParameter {
			return e.ParametersIn(model.LocationQuery)
		},
		"headerParams": func(e model.Endpoint) []model.EndpointParameter {
			return e.ParametersIn(model.LocationHeader)
		},
		"successType":    SuccessType,
		"bodyType":       BodyType,
		"dataType":       DataType,
		"requestInit":    RequestInit,
		"needsVariables": NeedsVariables,
		"variablesName":  VariablesName,
		"variablesFields": func(e model.Endpoint) []Arg {
			return endpointArgs(e)
		},
		"variablesCall": VariablesCall,
		"schemaType": func(s model.Schema) string {
			return ResolveType(&s)
		},
		"enumUnion": EnumUnion,
		"hasQueries": func(m model.Module) bool {
			for _, e := range m.Endpoints {
				if e.Method == model.MethodGet {
					return true
				}
			}
			return false
		},
		"hasMutations": func(m model.Module) bool {
			for _, e := range m.Endpoints {
				if e.Method != model.MethodGet {
					return true
				}
			}
			return false
		},
	}
}

// Arg is one positional argument of a generated api function.
type Arg struct {
	Name string
	Type string
}

// endpointArgs returns the positional arguments of an endpoint's api
// function: declared parameters in order (cookie parameters are
// browser-managed and skipped), then the request body.
func endpointArgs(e model.Endpoint) []Arg {
	var args []Arg
	for _, p := range e.Parameters {
		if p.In == model.LocationCookie {
			continue
		}
		args = append(args, Arg{Name: ParamVar(p), Type: p.Type})
	}
	if e.RequestBody != nil {
		args = append(args, Arg{Name: "body", Type: BodyType(e)})
	}
	return args
}

// ParamVar returns the identifier a parameter binds to in generated code:
// the camelCase form of its declared name, escaped when it collides with a
// reserved word.
func ParamVar(p model.EndpointParameter) string {
	return EscapeReserved(CamelCase(p.Name))
}

// ParamSignature renders the annotated argument list of an endpoint's api
// function: "id: number, body: UserCreate".
func ParamSignature(e model.Endpoint) string {
	args := endpointArgs(e)
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, a.Name+": "+a.Type)
	}
	return strings.Join(parts, ", ")
}

// ArgList renders the same arguments without annotations: "id, body".
func ArgList(e model.Endpoint) string {
	args := endpointArgs(e)
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, a.Name)
	}
	return strings.Join(parts, ", ")
}

func ArgCount(e model.Endpoint) int {
	return len(endpointArgs(e))
}

// DataType renders the stored-result type of an endpoint for state
// containers: the success type with a null alternative, or plain any.
func DataType(e model.Endpoint) string {
	t := SuccessType(e)
	if t == "any" {
		return t
	}
	return t + " | null"
}

// RequestInit renders the options argument of a request call, or "" when
// the endpoint needs none: `, { method: "POST", body: JSON.stringify(body) }`.
func RequestInit(e model.Endpoint) string {
	var parts []string
	if e.Method != model.MethodGet {
		parts = append(parts, fmt.Sprintf("method: %q", string(e.Method)))
	}
	if headers := e.ParametersIn(model.LocationHeader); len(headers) > 0 {
		entries := make([]string, 0, len(headers))
		for _, p := range headers {
			entries = append(entries, fmt.Sprintf("%q: %s", p.Name, ParamVar(p)))
		}
		parts = append(parts, "headers: { "+strings.Join(entries, ", ")+" }")
	}
	if e.RequestBody != nil {
		parts = append(parts, "body: JSON.stringify(body)")
	}
	if len(parts) == 0 {
		return ""
	}
	return ", { " + strings.Join(parts, ", ") + " }"
}

// EnumUnion renders a schema's enum values as a literal union:
// "active" | "inactive".
func EnumUnion(s model.Schema) string {
	parts := make([]string, 0, len(s.Enum))
	for _, v := range s.Enum {
		if sv, ok := v.(string); ok {
			parts = append(parts, fmt.Sprintf("%q", sv))
		} else {
			parts = append(parts, fmt.Sprintf("%v", v))
		}
	}
	if len(parts) == 0 {
		return "any"
	}
	return strings.Join(parts, " | ")
}

var pathParamRe = regexp.MustCompile(`\{([^}]+)\}`)

// PathExpr rewrites a path template into a template-literal body:
// "/users/{id}" -> "/users/${id}".
func PathExpr(path string) string {
	return pathParamRe.ReplaceAllStringFunc(path, func(m string) string {
		name := strings.Trim(m, "{}")
		return "${" + EscapeReserved(CamelCase(name)) + "}"
	})
}

// QueryKey renders the cache key of an endpoint: literal path segments as
// strings, path parameters and query parameters as identifiers.
// GET /users/{id} -> ["users", id].
func QueryKey(e model.Endpoint) string {
	var parts []string
	for _, seg := range strings.Split(e.Path, "/") {
		if seg == "" {
			continue
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			parts = append(parts, EscapeReserved(CamelCase(strings.Trim(seg, "{}"))))
		} else {
			parts = append(parts, fmt.Sprintf("%q", seg))
		}
	}
	for _, p := range e.ParametersIn(model.LocationQuery) {
		parts = append(parts, ParamVar(p))
	}
	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%q", strings.ToLower(string(e.Method))))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// RootKey renders the invalidation key shared by every endpoint under the
// same first path segment, always as a quoted literal so it is valid in any
// scope: "/users/{id}" -> "users".
func RootKey(e model.Endpoint) string {
	for _, seg := range strings.Split(e.Path, "/") {
		if seg == "" {
			continue
		}
		seg = strings.ReplaceAll(strings.ReplaceAll(seg, "{", ""), "}", "")
		if seg == "" {
			continue
		}
		return fmt.Sprintf("%q", seg)
	}
	return fmt.Sprintf("%q", strings.ToLower(string(e.Method)))
}

// SuccessType returns the type of the first 2xx response, or "any" when the
// endpoint declares none.
func SuccessType(e model.Endpoint) string {
	if r, ok := e.SuccessResponse(); ok && r.SchemaRef != "" {
		return r.SchemaRef
	}
	return "any"
}

// BodyType returns the request body type, or "any" when the endpoint has no
// body schema.
func BodyType(e model.Endpoint) string {
	if e.RequestBody != nil && e.RequestBody.SchemaRef != "" {
		return e.RequestBody.SchemaRef
	}
	return "any"
}

// HookName returns the hook identifier for an endpoint:
// getUsersById -> useGetUsersById.
func HookName(e model.Endpoint) string {
	return "use" + Capitalize(e.CallName)
}

// NeedsVariables reports whether a mutation endpoint takes enough arguments
// to warrant a named variables type. Single-argument mutations pass the
// argument straight through.
func NeedsVariables(e model.Endpoint) bool {
	return e.Method != model.MethodGet && len(endpointArgs(e)) >= 2
}

// VariablesName returns the name of the variables type for a mutation:
// postUsers -> PostUsersVariables.
func VariablesName(e model.Endpoint) string {
	return PascalCase(e.CallName) + "Variables"
}

// VariablesCall renders the api call arguments read off a variables object:
// "vars.id, vars.body".
func VariablesCall(e model.Endpoint) string {
	args := endpointArgs(e)
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, "vars."+a.Name)
	}
	return strings.Join(parts, ", ")
}

var identRe = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)

// PropName renders an object property key, quoting names that are not
// plain identifiers.
func PropName(name string) string {
	if identRe.MatchString(name) {
		return name
	}
	return fmt.Sprintf("%q", name)
}

// JSDoc renders a single-line doc comment from an operation's summary and
// description, preferring the summary. Blank input yields an empty string,
// which templates treat as "no comment".
func JSDoc(summary, description string) string {
	text := strings.TrimSpace(summary)
	if text == "" {
		text = strings.TrimSpace(description)
	}
	if text == "" {
		return ""
	}
	text = strings.Join(strings.Fields(text), " ")
	text = strings.ReplaceAll(text, "*/", "*\\/")
	return "/** " + text + " */"
}
