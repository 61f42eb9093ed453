package verify

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/specmock-project/specmock-go/internal/exchange"
	"github.com/specmock-project/specmock-go/internal/spec"
	"github.com/specmock-project/specmock-go/pkg/logger"
)

// checkAuth evaluates the operation's security requirements. Requirements are
// OR-ed: one fully satisfied requirement authenticates the request. Within a
// requirement every scheme must be satisfied.
//
// An operation with no requirements, or with any empty requirement, treats
// authentication as optional and always passes.
func checkAuth(contract *spec.Contract, op *spec.Operation, req *exchange.RequestContext) (*Failure, error) {
	if len(op.Security) == 0 {
		return nil, nil
	}
	for _, requirement := range op.Security {
		if len(requirement.Schemes) == 0 {
			return nil, nil
		}
	}

	for _, requirement := range op.Security {
		satisfied, err := requirementSatisfied(contract, requirement, req)
		if err != nil {
			return nil, err
		}
		if satisfied {
			return nil, nil
		}
	}
	return &Failure{StatusCode: http.StatusUnauthorized}, nil
}

func requirementSatisfied(contract *spec.Contract, requirement spec.SecurityRequirement, req *exchange.RequestContext) (bool, error) {
	for _, name := range requirement.Schemes {
		scheme, ok := contract.Scheme(name)
		if !ok {
			return false, fmt.Errorf("security requirement references undeclared scheme %q", name)
		}
		satisfied, err := schemeSatisfied(name, scheme, req)
		if err != nil {
			return false, err
		}
		if !satisfied {
			return false, nil
		}
	}
	return true, nil
}

func schemeSatisfied(name string, scheme spec.SecurityScheme, req *exchange.RequestContext) (bool, error) {
	switch scheme.Kind {
	case spec.SchemeAPIKey:
		return apiKeyPresent(scheme, req)

	case spec.SchemeHTTPBasic:
		return authorizationHasPrefix(req, "Basic"), nil

	case spec.SchemeHTTPBearer:
		if !authorizationHasPrefix(req, "Bearer") {
			return false, nil
		}
		if strings.EqualFold(scheme.BearerFormat, "JWT") {
			return bearerTokenIsJWT(req), nil
		}
		return true, nil

	case spec.SchemeUnsupported:
		return false, fmt.Errorf("security scheme %q has unsupported type %q (scheme %q)",
			name, scheme.RawType, scheme.RawScheme)

	default:
		return false, fmt.Errorf("security scheme %q has unknown kind %d", name, scheme.Kind)
	}
}

func apiKeyPresent(scheme spec.SecurityScheme, req *exchange.RequestContext) (bool, error) {
	var value string
	switch scheme.In {
	case "query":
		value = req.QueryParam(scheme.Name)
	case "header":
		value = req.Header(scheme.Name)
	case "cookie":
		value = req.Cookie(scheme.Name)
	default:
		return false, fmt.Errorf("apiKey scheme %q has unsupported location %q", scheme.Name, scheme.In)
	}
	return !isBlank(value), nil
}

func authorizationHasPrefix(req *exchange.RequestContext, prefix string) bool {
	value := req.Header("Authorization")
	return !isBlank(value) && strings.HasPrefix(value, prefix)
}

// bearerTokenIsJWT checks the token is structurally a JWT when the contract
// declares bearerFormat JWT. The signature is not verified; a mock has no key
// material to verify against.
func bearerTokenIsJWT(req *exchange.RequestContext) bool {
	token := strings.TrimSpace(strings.TrimPrefix(req.Header("Authorization"), "Bearer"))
	if token == "" {
		return false
	}
	if _, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{}); err != nil {
		logger.Debugf("bearer token is not a well-formed JWT: %v", err)
		return false
	}
	return true
}
