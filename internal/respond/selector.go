// Package respond resolves the canned response body for an operation and
// status code from the contract's declared examples.
package respond

import (
	"fmt"

	"github.com/specmock-project/specmock-go/internal/spec"
	"github.com/specmock-project/specmock-go/pkg/logger"
)

// Select resolves the response body text for the given status. When
// exampleName is non-empty it must name a declared example; otherwise
// resolution tries, in order, the schema-level example, the media type's own
// example, then the first named example in declared order. Every unresolvable
// step is a configuration error: the mock never invents a body.
func Select(op *spec.Operation, status int, exampleName string) (string, error) {
	resp := op.Response(status)
	if resp == nil {
		return "", fmt.Errorf("operation %s declares no response for status %d", op.Name, status)
	}

	content := resp.JSONContent()
	if content == nil {
		return "", fmt.Errorf("operation %s declares no JSON content for status %d", op.Name, status)
	}

	if exampleName != "" {
		value, ok := content.NamedExample(exampleName)
		if !ok {
			return "", fmt.Errorf("operation %s has no example named %q for status %d", op.Name, exampleName, status)
		}
		logger.Debugf("selected named example %q for %s status %d", exampleName, op.Name, status)
		return value, nil
	}

	// precedence: schema example, then media type example, then first named
	if content.SchemaExample != nil {
		return *content.SchemaExample, nil
	}
	if content.Example != nil {
		return *content.Example, nil
	}
	if len(content.Examples) > 0 {
		return content.Examples[0].Value, nil
	}

	return "", fmt.Errorf("operation %s has no resolvable example for status %d", op.Name, status)
}
