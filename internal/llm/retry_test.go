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

// newTestRetry returns a retrier that records waits instead of sleeping.
func newTestRetry(inner Provider) (*RetryProvider, *[]time.Duration) {
	var waits []time.Duration
	r := WithRetry(inner, RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Second,
		MaxWait:     3 * time.Second,
		Multiplier:  2,
	}).(*RetryProvider)
	r.jitter = func() float64 { return 0.5 }
	r.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return r, &waits
}

func unavailable() MockResponse {
	return MockResponse{Err: &Error{Kind: ErrUnavailable, Err: errors.New("503")}}
}

func okResponse() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"ok":true}`)}
}

func TestRetrySucceedsFirstTime(t *testing.T) {
	mock := NewMockProvider(okResponse())
	r, waits := newTestRetry(mock)

	resp, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
	assert.Equal(t, 1, mock.CallCount())
	assert.Empty(t, *waits)
}

func TestRetryBacksOffExponentially(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable(), okResponse())
	r, waits := newTestRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, 3, mock.CallCount())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *waits)
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable(), unavailable(), okResponse())
	r, waits := newTestRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 3, mock.CallCount())
	assert.Len(t, *waits, 2)
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &Error{Kind: ErrRateLimited, RetryAfter: 7 * time.Second}},
		okResponse(),
	)
	r, waits := newTestRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{7 * time.Second}, *waits)
}

func TestRetryInvalidOutputOnlyOnce(t *testing.T) {
	invalid := MockResponse{Err: &Error{Kind: ErrInvalidOutput, Content: json.RawMessage(`{}`)}}
	mock := NewMockProvider(invalid, invalid, okResponse())
	r, _ := newTestRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetrySkipsPermanentErrors(t *testing.T) {
	for _, kind := range []error{ErrTruncated, ErrMissingAPIKey, context.Canceled} {
		t.Run(kind.Error(), func(t *testing.T) {
			mock := NewMockProvider(MockResponse{Err: kind}, okResponse())
			r, waits := newTestRetry(mock)

			_, err := r.Generate(context.Background(), Request{})
			assert.ErrorIs(t, err, kind)
			assert.Equal(t, 1, mock.CallCount())
			assert.Empty(t, *waits)
		})
	}
}

func TestRetryStopsWhenContextDone(t *testing.T) {
	mock := NewMockProvider(unavailable(), okResponse())
	r, _ := newTestRetry(mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetryDelay(t *testing.T) {
	cfg := RetryConfig{InitialWait: time.Second, MaxWait: 10 * time.Second, Multiplier: 2}

	assert.Equal(t, time.Second, cfg.delay(0, 0.5))
	assert.Equal(t, 4*time.Second, cfg.delay(2, 0.5))
	assert.Equal(t, 10*time.Second, cfg.delay(6, 0.5))
	assert.Equal(t, 800*time.Millisecond, cfg.delay(0, 0))
	assert.Equal(t, 1200*time.Millisecond, cfg.delay(0, 1))
}
