package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProviderReplaysScript(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: newUsage(10, 5)},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	first, err := mock.Generate(context.Background(), userPrompt("", "first"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(first.Content))
	assert.Equal(t, 15, first.Usage.TotalTokens)
	assert.Equal(t, StopEnd, first.StopReason)
	assert.Equal(t, 1, mock.Remaining())

	second, err := mock.Generate(context.Background(), userPrompt("", "second"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":2}`, string(second.Content))

	_, err = mock.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrUnavailable)

	require.Equal(t, 3, mock.CallCount())
	assert.Equal(t, "second", mock.Calls[1].Messages[0].Content)
}

func TestMockProviderScriptedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &Error{Kind: ErrRateLimited}})
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{}`)})

	_, err := mock.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrRateLimited)
	_, err = mock.Generate(context.Background(), Request{})
	assert.NoError(t, err)
	assert.Equal(t, "mock", mock.ModelID())
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, UnknownPurpose, PurposeFrom(ctx))
	assert.Equal(t, "themed-workout", PurposeFrom(WithPurpose(ctx, "themed-workout")))
	assert.Equal(t, UnknownPurpose, PurposeFrom(WithPurpose(ctx, "")))
}

func TestResponseDecode(t *testing.T) {
	var out struct {
		Reference string `json:"reference"`
	}
	resp := &Response{Content: json.RawMessage(`{"reference":"John 11:35"}`)}
	require.NoError(t, resp.Decode(&out))
	assert.Equal(t, "John 11:35", out.Reference)

	err := (&Response{Content: json.RawMessage(`not json`)}).Decode(&out)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	err = (&Response{}).Decode(&out)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("429 Too Many Requests")
	err := &Error{Kind: ErrRateLimited, Provider: "gemini", RetryAfter: 2 * time.Second, Err: cause}

	assert.Equal(t, "gemini: rate limited (retry after 2s): 429 Too Many Requests", err.Error())
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUnavailable)

	bare := &Error{Kind: ErrTruncated}
	assert.Equal(t, "response truncated at max tokens", bare.Error())
}

func TestFromStatus(t *testing.T) {
	assert.ErrorIs(t, fromStatus("openai", 429, nil), ErrRateLimited)
	assert.ErrorIs(t, fromStatus("openai", 503, nil), ErrUnavailable)
	assert.ErrorIs(t, fromStatus("openai", 400, nil), ErrUnavailable)
}
