package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// RetryConfig is an exponential backoff policy.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// delay is the jittered (±20%) wait after the given zero-based attempt.
func (c RetryConfig) delay(attempt int, jitter float64) time.Duration {
	wait := float64(c.InitialWait)
	for range attempt {
		wait *= c.Multiplier
		if wait >= float64(c.MaxWait) {
			wait = float64(c.MaxWait)
			break
		}
	}
	wait *= 1 + 0.2*(2*jitter-1)
	return max(time.Duration(wait), 0)
}

// RetryProvider retries transient failures. An invalid response is retried
// once; truncation, missing keys and context errors are not retried.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	sleep  func(context.Context, time.Duration) error
	jitter func() float64
}

func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg, sleep: sleepCtx, jitter: rand.Float64}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.config.MaxAttempts, 1)
	retriedInvalid := false

	var err error
	for attempt := range attempts {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		if errors.Is(err, ErrInvalidOutput) {
			if retriedInvalid {
				return nil, err
			}
			retriedInvalid = true
		} else if !retryable(err) {
			return nil, err
		}
		if attempt == attempts-1 {
			break
		}

		wait := r.config.delay(attempt, r.jitter())
		var e *Error
		if errors.As(err, &e) && e.RetryAfter > 0 {
			wait = e.RetryAfter
		}
		if serr := r.sleep(ctx, wait); serr != nil {
			return nil, serr
		}
	}
	return nil, err
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func retryable(err error) bool {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, ErrTruncated), errors.Is(err, ErrMissingAPIKey):
		return false
	}
	// Rate limits, outages and unclassified network errors.
	return true
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
