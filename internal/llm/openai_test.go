package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return newChatProvider(ProviderOpenAI, "test-key", srv.URL+"/v1", "gpt-4o-mini")
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1767225600,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAIGenerate(t *testing.T) {
	var body map[string]any
	p := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion(`{"reference":"John 11:35","text":"Jesus wept."}`, "stop"))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a Bible teacher.",
		Messages:  []Message{{Role: RoleUser, Content: "Suggest a short verse."}},
		MaxTokens: 256,
		Schema:    &Schema{Name: "verse", Definition: map[string]any{"type": "object"}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"reference":"John 11:35","text":"Jesus wept."}`, string(resp.Content))
	assert.Equal(t, Usage{InputTokens: 40, OutputTokens: 25, TotalTokens: 65}, resp.Usage)
	assert.Equal(t, StopEnd, resp.StopReason)

	msgs, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])

	format, ok := body["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_schema", format["type"])
	assert.Equal(t, "verse", format["json_schema"].(map[string]any)["name"])
}

func TestOpenAILengthFinish(t *testing.T) {
	p := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion(`{"reference":"Jo`, "length"))
	})

	resp, err := p.Generate(context.Background(), userPrompt("", "test"))
	require.NoError(t, err)
	assert.Equal(t, StopMaxTokens, resp.StopReason)
}

func TestOpenAINoChoices(t *testing.T) {
	p := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "chatcmpl-empty", "choices": []any{}})
	})

	_, err := p.Generate(context.Background(), userPrompt("", "test"))
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestOpenAIErrors(t *testing.T) {
	tests := []struct {
		status int
		kind   error
	}{
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusInternalServerError, ErrUnavailable},
		{http.StatusServiceUnavailable, ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			p := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"message": "nope", "type": "server_error"},
				})
			})

			_, err := p.Generate(context.Background(), userPrompt("", "test"))
			assert.ErrorIs(t, err, tt.kind)

			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, ProviderOpenAI, e.Provider)
		})
	}
}

func TestOpenRouterProvider(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "google/gemini-2.5-flash"})
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.5-flash", p.ModelID())
	assert.Equal(t, ProviderOpenRouter, p.name)
}

func TestOpenRouterErrorsNameProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "slow down"}})
	}))
	t.Cleanup(srv.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "openai/gpt-4o-mini", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), userPrompt("", "test"))
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ProviderOpenRouter, e.Provider)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestOpenAIRequiresKey(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-mini"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = NewOpenRouterProvider(OpenRouterConfig{Model: "openai/gpt-4o"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
