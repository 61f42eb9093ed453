package spec

import (
	"fmt"
	"strings"

	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"github.com/specmock-project/specmock-go/pkg/logger"
)

// parse builds a Contract from raw specification bytes.
func parse(data []byte) (*Contract, error) {
	document, err := libopenapi.NewDocument(data)
	if err != nil {
		return nil, fmt.Errorf("cannot create document from specification: %w", err)
	}

	specVersion := document.GetSpecInfo().Version
	if strings.HasPrefix(specVersion, "2") {
		return nil, fmt.Errorf("unsupported specification version %q: only OpenAPI 3.x is supported", specVersion)
	}

	v3Model, errs := document.BuildV3Model()
	if len(errs) > 0 {
		var errorMessages string
		for i := range errs {
			errorMessages += fmt.Sprintf("error: %v\n", errs[i])
		}
		return nil, fmt.Errorf("cannot build model from document: %d errors reported: %v", len(errs), errorMessages)
	}

	var version OpenAPIVersion
	if strings.HasPrefix(specVersion, "3.1") {
		version = OpenAPI31
	} else {
		version = OpenAPI30
	}

	contract := &Contract{
		Version: version,
		Schemes: parseSecuritySchemes(&v3Model.Model),
	}
	if err := contract.parseOperations(&v3Model.Model); err != nil {
		return nil, fmt.Errorf("cannot parse operations: %w", err)
	}
	return contract, nil
}

// parseSecuritySchemes converts components.securitySchemes into the closed
// scheme variant. Unrecognised types are retained as SchemeUnsupported rather
// than rejected, so only operations that depend on them fail.
func parseSecuritySchemes(model *v3.Document) map[string]SecurityScheme {
	schemes := make(map[string]SecurityScheme)
	if model.Components == nil || model.Components.SecuritySchemes == nil {
		return schemes
	}

	for name, ss := range model.Components.SecuritySchemes.FromOldest() {
		var scheme SecurityScheme
		switch strings.ToLower(ss.Type) {
		case "apikey":
			scheme = SecurityScheme{
				Kind: SchemeAPIKey,
				In:   ss.In,
				Name: ss.Name,
			}
		case "http":
			switch strings.ToLower(ss.Scheme) {
			case "basic":
				scheme = SecurityScheme{Kind: SchemeHTTPBasic}
			case "bearer":
				scheme = SecurityScheme{
					Kind:         SchemeHTTPBearer,
					BearerFormat: ss.BearerFormat,
				}
			default:
				scheme = SecurityScheme{
					Kind:      SchemeUnsupported,
					RawType:   ss.Type,
					RawScheme: ss.Scheme,
				}
			}
		default:
			scheme = SecurityScheme{
				Kind:    SchemeUnsupported,
				RawType: ss.Type,
			}
		}
		schemes[name] = scheme
	}
	return schemes
}

// parseOperations extracts every method+path pair from the document.
func (c *Contract) parseOperations(model *v3.Document) error {
	if model.Paths == nil {
		return fmt.Errorf("specification declares no paths")
	}

	logger.Debugf("found %d paths in the specification", model.Paths.PathItems.Len())

	for path, pathItem := range model.Paths.PathItems.FromOldest() {
		operations := pathItem.GetOperations()
		for method, operation := range operations.FromOldest() {
			httpMethod := strings.ToUpper(method)
			op := Operation{
				Name:        fmt.Sprintf("%s %s", httpMethod, path),
				Method:      httpMethod,
				Path:        path,
				Parameters:  parseParameters(pathItem, operation),
				RequestBody: parseRequestBody(operation),
				Security:    parseSecurity(model, operation),
				Responses:   parseResponses(operation),
			}
			c.Operations = append(c.Operations, op)
		}
	}

	if len(c.Operations) == 0 {
		return fmt.Errorf("specification declares no operations")
	}
	return nil
}

// parseParameters merges path-level and operation-level parameters, with the
// operation's declarations taking precedence on name+location collisions.
// Declaration order is preserved because the verifier stops at the first
// failing parameter.
func parseParameters(pathItem *v3.PathItem, operation *v3.Operation) []Parameter {
	var params []Parameter
	for _, p := range operation.Parameters {
		params = append(params, convertParameter(p))
	}
	for _, p := range pathItem.Parameters {
		if hasParameter(params, p.Name, p.In) {
			continue
		}
		params = append(params, convertParameter(p))
	}
	return params
}

func hasParameter(params []Parameter, name, in string) bool {
	for _, p := range params {
		if p.Name == name && p.In == in {
			return true
		}
	}
	return false
}

func convertParameter(p *v3.Parameter) Parameter {
	param := Parameter{
		Name:     p.Name,
		In:       p.In,
		Required: p.Required != nil && *p.Required,
	}
	// path parameters are always required, whatever the declaration says
	if param.In == "path" {
		param.Required = true
	}
	if p.Schema != nil {
		if schema := p.Schema.Schema(); schema != nil && len(schema.Enum) > 0 {
			for _, n := range schema.Enum {
				if n != nil {
					param.Enum = append(param.Enum, n.Value)
				}
			}
		}
	}
	return param
}

func parseRequestBody(operation *v3.Operation) *RequestBody {
	if operation.RequestBody == nil {
		return nil
	}
	required := operation.RequestBody.Required != nil && *operation.RequestBody.Required
	return &RequestBody{Required: required}
}

// parseSecurity resolves the operation's effective security requirements,
// falling back to the document-level declaration when the operation has none.
// An empty requirement entry is kept as-is: it makes authentication optional
// for the whole operation even alongside non-empty requirements, which is
// surprising enough to warrant a warning.
func parseSecurity(model *v3.Document, operation *v3.Operation) []SecurityRequirement {
	source := operation.Security
	if source == nil {
		source = model.Security
	}

	var requirements []SecurityRequirement
	var hasEmpty, hasNonEmpty bool
	for _, req := range source {
		var schemes []string
		if req.Requirements != nil {
			for name := range req.Requirements.FromOldest() {
				schemes = append(schemes, name)
			}
		}
		if len(schemes) == 0 {
			hasEmpty = true
		} else {
			hasNonEmpty = true
		}
		requirements = append(requirements, SecurityRequirement{Schemes: schemes})
	}

	if hasEmpty && hasNonEmpty {
		logger.Warnf("operation mixes empty and non-empty security requirements; authentication is treated as optional")
	}
	return requirements
}

func parseResponses(operation *v3.Operation) map[string]*Response {
	responses := make(map[string]*Response)
	if operation.Responses == nil || operation.Responses.Codes == nil {
		return responses
	}
	for code, resp := range operation.Responses.Codes.FromOldest() {
		responses[code] = convertResponse(resp)
	}
	return responses
}

// convertResponse renders all example material for a response up front, so the
// model holds only immutable strings by the time requests are served.
func convertResponse(resp *v3.Response) *Response {
	response := &Response{}
	if resp.Content == nil {
		return response
	}
	for contentType, content := range resp.Content.FromOldest() {
		mt := MediaType{ContentType: contentType}
		if content.Schema != nil {
			if schema := content.Schema.Schema(); schema != nil {
				mt.SchemaExample = renderExample(schema.Example)
			}
		}
		mt.Example = renderExample(content.Example)
		if content.Examples != nil {
			for name, ex := range content.Examples.FromOldest() {
				mt.Examples = append(mt.Examples, NamedExample{
					Name:  name,
					Value: renderNamedExample(ex),
				})
			}
		}
		response.Content = append(response.Content, mt)
	}
	return response
}

func renderNamedExample(ex *base.Example) string {
	if ex == nil {
		return ""
	}
	if rendered := renderExample(ex.Value); rendered != nil {
		return *rendered
	}
	return ex.ExternalValue
}
