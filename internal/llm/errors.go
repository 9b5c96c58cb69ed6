package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Error kinds. Match them with errors.Is.
var (
	ErrRateLimited   = errors.New("rate limited")
	ErrUnavailable   = errors.New("provider unavailable")
	ErrInvalidOutput = errors.New("invalid response")
	ErrTruncated     = errors.New("response truncated at max tokens")
	ErrMissingAPIKey = errors.New("API key is required")
)

// Error is the error returned by providers and decorators.
type Error struct {
	Kind       error
	Provider   string
	RetryAfter time.Duration

	// Content is the raw output for ErrInvalidOutput and ErrTruncated.
	Content json.RawMessage
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Provider != "" {
		b.WriteString(e.Provider)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.Error())
	if e.RetryAfter > 0 {
		fmt.Fprintf(&b, " (retry after %s)", e.RetryAfter)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// fromStatus classifies a vendor API error by its HTTP status.
func fromStatus(provider string, status int, err error) error {
	kind := ErrUnavailable
	if status == http.StatusTooManyRequests {
		kind = ErrRateLimited
	}
	return &Error{Kind: kind, Provider: provider, Err: err}
}

func missingKey(provider string) error {
	return &Error{Kind: ErrMissingAPIKey, Provider: provider}
}
