// Package verify implements the request verification pipeline: authentication,
// declared parameters, then required-body presence, stopping at the first
// failing check. Client-visible failures propagate as a Failure value;
// contract inconsistencies propagate as errors and must never be downgraded
// to a client error.
package verify

import (
	"net/http"
	"strings"

	"github.com/specmock-project/specmock-go/internal/exchange"
	"github.com/specmock-project/specmock-go/internal/spec"
)

// Failure is a client-visible verification failure mapped to an HTTP status.
type Failure struct {
	StatusCode int
}

// Request runs the verification pipeline for an operation. A nil Failure and
// nil error means the request passed every check.
func Request(contract *spec.Contract, op *spec.Operation, req *exchange.RequestContext) (*Failure, error) {
	if failure, err := checkAuth(contract, op, req); failure != nil || err != nil {
		return failure, err
	}
	if failure := checkParameters(op, req); failure != nil {
		return failure, nil
	}
	return checkBody(op, req), nil
}

// checkParameters validates each declared parameter in declaration order.
func checkParameters(op *spec.Operation, req *exchange.RequestContext) *Failure {
	for _, param := range op.Parameters {
		if !parameterValid(param, req) {
			return &Failure{StatusCode: http.StatusBadRequest}
		}
	}
	return nil
}

func parameterValid(param spec.Parameter, req *exchange.RequestContext) bool {
	var value string
	switch param.In {
	case "path":
		value = req.PathParam(param.Name)
	case "query":
		value = req.QueryParam(param.Name)
	case "header":
		value = req.Header(param.Name)
	case "cookie":
		value = req.Cookie(param.Name)
	default:
		// unknown locations are not matchable against the request
		return !param.Required
	}

	if isBlank(value) {
		return !param.Required
	}
	if param.Enum != nil && !contains(param.Enum, value) {
		return false
	}
	return true
}

// checkBody enforces presence of a required request body. Content is never
// validated against the schema.
func checkBody(op *spec.Operation, req *exchange.RequestContext) *Failure {
	if op.RequestBody == nil || !op.RequestBody.Required {
		return nil
	}
	if isBlank(string(req.Body)) {
		return &Failure{StatusCode: http.StatusBadRequest}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
