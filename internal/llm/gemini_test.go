package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "a drill batch",
		"properties": map[string]any{
			"reference": map[string]any{"type": "string"},
			"verse":     map[string]any{"type": "integer", "minimum": 1, "maximum": 176},
			"kind":      map[string]any{"type": "string", "enum": []any{"cloze", "order"}},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 2,
				"maxItems": float64(4),
			},
		},
		"required":             []any{"reference", "verse"},
		"additionalProperties": false,
	}

	s := geminiSchema(def)
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, "a drill batch", s.Description)
	assert.ElementsMatch(t, []string{"reference", "verse"}, s.Required)
	require.Len(t, s.Properties, 4)

	assert.Equal(t, genai.TypeString, s.Properties["reference"].Type)

	verse := s.Properties["verse"]
	assert.Equal(t, genai.TypeInteger, verse.Type)
	require.NotNil(t, verse.Minimum)
	assert.Equal(t, 1.0, *verse.Minimum)
	require.NotNil(t, verse.Maximum)
	assert.Equal(t, 176.0, *verse.Maximum)

	assert.Equal(t, []string{"cloze", "order"}, s.Properties["kind"].Enum)

	opts := s.Properties["options"]
	assert.Equal(t, genai.TypeArray, opts.Type)
	require.NotNil(t, opts.Items)
	assert.Equal(t, genai.TypeString, opts.Items.Type)
	require.NotNil(t, opts.MinItems)
	assert.Equal(t, int64(2), *opts.MinItems)
	require.NotNil(t, opts.MaxItems)
	assert.Equal(t, int64(4), *opts.MaxItems)
}

func TestGeminiSchemaTypeNames(t *testing.T) {
	for name, want := range map[string]string{
		"string": "STRING", "number": "NUMBER", "integer": "INTEGER",
		"boolean": "BOOLEAN", "array": "ARRAY", "object": "OBJECT",
	} {
		assert.Equal(t, want, string(geminiSchema(map[string]any{"type": name}).Type), name)
	}
	assert.Equal(t, genai.TypeString, geminiSchema(map[string]any{}).Type)
}

func TestGeminiRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiConfig{Model: "gemini-flash"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGeminiModel(t *testing.T) {
	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "g-test", Model: "gemini-pro"})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", p.ModelID())
}
