package spec

import (
	"encoding/json"
	"strings"

	"github.com/specmock-project/specmock-go/pkg/logger"
	"gopkg.in/yaml.v3"
)

// renderExample converts an example YAML node into response body text.
// Scalar nodes pass through verbatim; structured nodes are decoded and
// re-marshalled as JSON. A nil result means the example is absent.
func renderExample(node *yaml.Node) *string {
	if node == nil {
		return nil
	}

	if len(node.Content) == 0 {
		value := node.Value
		return &value
	}

	var decoded interface{}
	if err := node.Decode(&decoded); err != nil {
		logger.Warnf("failed to decode example: %v", err)
		return nil
	}
	rendered, err := json.Marshal(decoded)
	if err != nil {
		logger.Warnf("failed to marshal example: %v", err)
		return nil
	}
	text := string(rendered)
	return &text
}

// isJSONContentType reports whether a declared content type carries JSON,
// including structured-syntax suffixes such as application/hal+json.
func isJSONContentType(contentType string) bool {
	mediaType := contentType
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
