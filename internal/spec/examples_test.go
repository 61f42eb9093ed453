package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func yamlNode(t *testing.T, doc string) *yaml.Node {
	t.Helper()
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(doc), &node))
	// unwrap the document node
	require.NotEmpty(t, node.Content)
	return node.Content[0]
}

func TestRenderExample(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "scalar string passes through verbatim",
			doc:  `hello`,
			want: "hello",
		},
		{
			name: "scalar number",
			doc:  `42`,
			want: "42",
		},
		{
			name: "mapping rendered as JSON",
			doc:  `{name: test, id: 7}`,
			want: `{"id":7,"name":"test"}`,
		},
		{
			name: "sequence rendered as JSON",
			doc:  `[1, 2, 3]`,
			want: `[1,2,3]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderExample(yamlNode(t, tt.doc))
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestRenderExample_NilNode(t *testing.T) {
	assert.Nil(t, renderExample(nil))
}

func TestIsJSONContentType(t *testing.T) {
	assert.True(t, isJSONContentType("application/json"))
	assert.True(t, isJSONContentType("application/json; charset=utf-8"))
	assert.True(t, isJSONContentType("application/hal+json"))
	assert.True(t, isJSONContentType("Application/JSON"))
	assert.False(t, isJSONContentType("text/plain"))
	assert.False(t, isJSONContentType("application/xml"))
}
