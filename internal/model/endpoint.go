package model

// Endpoint is the fully resolved form of an operation: parameter, body and
// response schemas are replaced by type strings, and the call name is fixed.
type Endpoint struct {
	// OperationID is the declared operationId, or the call name when the
	// document declares none.
	OperationID string
	// CallName is derived from the method and path and names the generated
	// function (GET /users/{id} -> getUsersById).
	CallName    string
	Method      Method
	Path        string
	Summary     string
	Description string
	Parameters  []EndpointParameter
	RequestBody *EndpointBody
	Responses   []EndpointResponse
	Tags        []string
}

type EndpointParameter struct {
	Name        string
	In          ParameterLocation
	Required    bool
	Type        string
	Description string
}

type EndpointBody struct {
	Required    bool
	ContentType string
	SchemaRef   string
}

type EndpointResponse struct {
	StatusCode  string
	Description string
	SchemaRef   string
}

// ParametersIn returns the endpoint's parameters for one location, in
// declaration order.
func (e Endpoint) ParametersIn(loc ParameterLocation) []EndpointParameter {
	var out []EndpointParameter
	for _, p := range e.Parameters {
		if p.In == loc {
			out = append(out, p)
		}
	}
	return out
}

// SuccessResponse returns the first 2xx response, if any.
func (e Endpoint) SuccessResponse() (EndpointResponse, bool) {
	for _, r := range e.Responses {
		if len(r.StatusCode) == 3 && r.StatusCode[0] == '2' {
			return r, true
		}
	}
	return EndpointResponse{}, false
}
