package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var verseSchema = &Schema{
	Name: "test-verse",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reference": map[string]any{"type": "string"},
			"chapter":   map[string]any{"type": "integer", "minimum": 1},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 2,
			},
		},
		"required":             []any{"reference", "chapter"},
		"additionalProperties": false,
	},
}

func validated(content string) (Provider, *MockProvider) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(content)})
	return WithValidation(mock, "gemini"), mock
}

func TestValidationAcceptsConformingJSON(t *testing.T) {
	p, _ := validated(`{"reference":"Psalm 23:1","chapter":23,"options":["a","b"]}`)

	resp, err := p.Generate(context.Background(), Request{Schema: verseSchema})
	require.NoError(t, err)
	assert.Contains(t, string(resp.Content), "Psalm 23:1")
}

func TestValidationRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing required", `{"reference":"Psalm 23:1"}`},
		{"wrong type", `{"reference":"Psalm 23:1","chapter":"twenty-three"}`},
		{"below minimum", `{"reference":"Psalm 23:1","chapter":0}`},
		{"too few items", `{"reference":"Psalm 23:1","chapter":23,"options":["a"]}`},
		{"extra property", `{"reference":"Psalm 23:1","chapter":23,"book":"Psalms"}`},
		{"not json", `Psalm 23:1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := validated(tt.content)
			_, err := p.Generate(context.Background(), Request{Schema: verseSchema})
			require.ErrorIs(t, err, ErrInvalidOutput)

			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.content, string(e.Content))
			assert.Equal(t, "gemini", e.Provider)
		})
	}
}

func TestValidationSkipsUnstructuredRequests(t *testing.T) {
	p, _ := validated(`plain text`)
	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "plain text", string(resp.Content))
}

func TestValidationFlagsTruncation(t *testing.T) {
	p := WithValidation(truncating{}, "openai")
	_, err := p.Generate(context.Background(), Request{Schema: verseSchema})
	assert.ErrorIs(t, err, ErrTruncated)
	assert.Equal(t, "truncating", p.ModelID())
}

type truncating struct{}

func (truncating) Generate(context.Context, Request) (*Response, error) {
	return &Response{Content: json.RawMessage(`{"reference":"Ps`), StopReason: StopMaxTokens}, nil
}

func (truncating) ModelID() string { return "truncating" }

func TestSchemaSetCachesByName(t *testing.T) {
	set := &schemaSet{compiled: map[string]*jsonschema.Schema{}}
	a, err := set.get(verseSchema)
	require.NoError(t, err)
	b, err := set.get(verseSchema)
	require.NoError(t, err)
	assert.Same(t, a, b)
}
