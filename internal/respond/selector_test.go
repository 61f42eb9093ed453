package respond

import (
	"testing"

	"github.com/specmock-project/specmock-go/internal/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func operationWith(responses map[string]*spec.Response) *spec.Operation {
	return &spec.Operation{Name: "GET /pets", Responses: responses}
}

func TestSelect_SchemaExampleWins(t *testing.T) {
	op := operationWith(map[string]*spec.Response{
		"200": {Content: []spec.MediaType{{
			ContentType:   "application/json",
			SchemaExample: strPtr(`{"source":"schema"}`),
			Example:       strPtr(`{"source":"media"}`),
			Examples:      []spec.NamedExample{{Name: "first", Value: `{"source":"named"}`}},
		}}},
	})

	body, err := Select(op, 200, "")
	require.NoError(t, err)
	assert.Equal(t, `{"source":"schema"}`, body)
}

func TestSelect_MediaExampleBeforeNamed(t *testing.T) {
	op := operationWith(map[string]*spec.Response{
		"200": {Content: []spec.MediaType{{
			ContentType: "application/json",
			Example:     strPtr(`{"source":"media"}`),
			Examples:    []spec.NamedExample{{Name: "first", Value: `{"source":"named"}`}},
		}}},
	})

	body, err := Select(op, 200, "")
	require.NoError(t, err)
	assert.Equal(t, `{"source":"media"}`, body)
}

func TestSelect_FirstNamedExampleAsFallback(t *testing.T) {
	op := operationWith(map[string]*spec.Response{
		"200": {Content: []spec.MediaType{{
			ContentType: "application/json",
			Examples: []spec.NamedExample{
				{Name: "first", Value: `{"order":1}`},
				{Name: "second", Value: `{"order":2}`},
			},
		}}},
	})

	body, err := Select(op, 200, "")
	require.NoError(t, err)
	assert.Equal(t, `{"order":1}`, body)
}

func TestSelect_NamedOverrideBeatsEverything(t *testing.T) {
	op := operationWith(map[string]*spec.Response{
		"200": {Content: []spec.MediaType{{
			ContentType:   "application/json",
			SchemaExample: strPtr(`{"source":"schema"}`),
			Example:       strPtr(`{"source":"media"}`),
			Examples:      []spec.NamedExample{{Name: "foo", Value: `{"source":"foo"}`}},
		}}},
	})

	body, err := Select(op, 200, "foo")
	require.NoError(t, err)
	assert.Equal(t, `{"source":"foo"}`, body)
}

func TestSelect_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name        string
		op          *spec.Operation
		status      int
		exampleName string
		wantErr     string
	}{
		{
			name:    "no response for status",
			op:      operationWith(map[string]*spec.Response{}),
			status:  200,
			wantErr: "declares no response for status 200",
		},
		{
			name: "no JSON content",
			op: operationWith(map[string]*spec.Response{
				"200": {Content: []spec.MediaType{{ContentType: "text/plain", Example: strPtr("hi")}}},
			}),
			status:  200,
			wantErr: "declares no JSON content",
		},
		{
			name: "no resolvable example",
			op: operationWith(map[string]*spec.Response{
				"200": {Content: []spec.MediaType{{ContentType: "application/json"}}},
			}),
			status:  200,
			wantErr: "no resolvable example",
		},
		{
			name: "named example missing",
			op: operationWith(map[string]*spec.Response{
				"200": {Content: []spec.MediaType{{
					ContentType: "application/json",
					Example:     strPtr(`{}`),
				}}},
			}),
			status:      200,
			exampleName: "ghost",
			wantErr:     `no example named "ghost"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Select(tt.op, tt.status, tt.exampleName)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSelect_ErrorStatusBodyFromContract(t *testing.T) {
	op := operationWith(map[string]*spec.Response{
		"401": {Content: []spec.MediaType{{
			ContentType: "application/json",
			Example:     strPtr(`{"error":"unauthorised"}`),
		}}},
	})

	body, err := Select(op, 401, "")
	require.NoError(t, err)
	assert.Equal(t, `{"error":"unauthorised"}`, body)
}
