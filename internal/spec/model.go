package spec

import "strconv"

// OpenAPIVersion represents the version of OpenAPI being used
type OpenAPIVersion int

const (
	OpenAPI30 OpenAPIVersion = iota + 1
	OpenAPI31
)

// SchemeKind identifies the supported security scheme variants. The set is
// closed: anything the contract declares outside it parses to SchemeUnsupported
// and surfaces as a configuration error when an operation relying on it is hit.
type SchemeKind int

const (
	SchemeAPIKey SchemeKind = iota + 1
	SchemeHTTPBasic
	SchemeHTTPBearer
	SchemeUnsupported
)

// SecurityScheme is the parsed form of a components.securitySchemes entry.
type SecurityScheme struct {
	Kind SchemeKind

	// apiKey only
	In   string // query, header or cookie
	Name string

	// http bearer only; non-empty when the contract declares a bearerFormat
	BearerFormat string

	// retained for unsupported kinds so errors can name the offending config
	RawType   string
	RawScheme string
}

// SecurityRequirement is a set of scheme names that must all be satisfied
// together. An empty set is trivially satisfiable.
type SecurityRequirement struct {
	Schemes []string
}

// Parameter describes a single declared request parameter.
type Parameter struct {
	Name     string
	In       string // path, query, header or cookie
	Required bool
	Enum     []string // nil means any value is accepted
}

// RequestBody captures only the required flag; body content is never
// validated against the schema.
type RequestBody struct {
	Required bool
}

// NamedExample is one entry of a media type's examples collection, in
// declared order.
type NamedExample struct {
	Name  string
	Value string
}

// MediaType holds the example material for one response content type. Example
// fields are nil when the contract does not declare them; the distinction
// between absent and empty drives the selector's priority order.
type MediaType struct {
	ContentType   string
	SchemaExample *string
	Example       *string
	Examples      []NamedExample
}

// Response holds the content entries of one status code, in declared order.
type Response struct {
	Content []MediaType
}

// Operation is the unit of contract-driven behaviour: one HTTP method on one
// path, with its parameters, security requirements and canned responses.
type Operation struct {
	Name        string // e.g. "GET /pets/{petId}"
	Method      string
	Path        string
	Parameters  []Parameter
	RequestBody *RequestBody
	Security    []SecurityRequirement
	Responses   map[string]*Response
}

// Contract is the immutable in-memory form of the specification. It is built
// once at startup and shared by all concurrent requests without locking.
type Contract struct {
	Version    OpenAPIVersion
	Operations []Operation
	Schemes    map[string]SecurityScheme
}

// Scheme looks up a security scheme by name.
func (c *Contract) Scheme(name string) (SecurityScheme, bool) {
	s, ok := c.Schemes[name]
	return s, ok
}

// Response returns the response declared for the given status code, or nil.
// Lookup is exact; "default" and range codes are not consulted.
func (o *Operation) Response(status int) *Response {
	return o.Responses[strconv.Itoa(status)]
}

// JSONContent returns the first declared JSON media type of the response, or
// nil if the response declares none.
func (r *Response) JSONContent() *MediaType {
	for i := range r.Content {
		if isJSONContentType(r.Content[i].ContentType) {
			return &r.Content[i]
		}
	}
	return nil
}

// NamedExample returns the value of the named example, if declared.
func (m *MediaType) NamedExample(name string) (string, bool) {
	for _, ex := range m.Examples {
		if ex.Name == name {
			return ex.Value, true
		}
	}
	return "", false
}
