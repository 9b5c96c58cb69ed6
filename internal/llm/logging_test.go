package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/biblegym/internal/store"
)

// llmEventRecorder captures LLM events; the decorator touches no other
// EventRepo method.
type llmEventRecorder struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *llmEventRecorder) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"passages":[]}`),
		Usage:   newUsage(120, 40),
	})
	rec := &llmEventRecorder{}
	p := WithLogging(mock, "gemini", rec).(*LoggingProvider)
	tick := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	p.now = func() time.Time {
		tick = tick.Add(250 * time.Millisecond)
		return tick
	}

	ctx := WithPurpose(context.Background(), "themed-workout")
	_, err := p.Generate(ctx, Request{
		System:   "You are a Bible teacher.",
		Messages: []Message{{Role: RoleUser, Content: "Theme: hope"}},
		Schema:   &Schema{Name: "themed-passages", Definition: map[string]any{"type": "object"}},
	})
	require.NoError(t, err)

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, "gemini", ev.Provider)
	assert.Equal(t, "mock", ev.Model)
	assert.Equal(t, "themed-workout", ev.Purpose)
	assert.True(t, ev.Success)
	assert.Equal(t, 120, ev.InputTokens)
	assert.Equal(t, 40, ev.OutputTokens)
	assert.Equal(t, int64(250), ev.LatencyMs)
	assert.Equal(t, `{"passages":[]}`, ev.ResponseBody)
	assert.Equal(t,
		"[system]\nYou are a Bible teacher.\n\n[user]\nTheme: hope\n\n[schema: themed-passages]\n{\"type\":\"object\"}\n",
		ev.RequestBody)
}

func TestLoggingRecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &Error{Kind: ErrInvalidOutput, Content: json.RawMessage(`{"passages":1}`)}})
	rec := &llmEventRecorder{}
	p := WithLogging(mock, "openai", rec)

	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrInvalidOutput)

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.False(t, ev.Success)
	assert.NotEmpty(t, ev.ErrorMessage)
	assert.Equal(t, UnknownPurpose, ev.Purpose)
	assert.Equal(t, `{"passages":1}`, ev.ResponseBody)
}

func TestLoggingStoreErrorDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "gemini", &llmEventRecorder{err: errors.New("database is locked")})

	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
}

func TestLoggingWithoutRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "gemini", nil)

	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}
