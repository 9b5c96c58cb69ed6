package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Provider generates a completion for a Request. Implementations talk to
// one vendor; decorators (retry, logging, validation) wrap them.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model the provider sends requests to.
	ModelID() string
}

// Request is a single-turn or multi-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks the provider for JSON matching it. The
	// validation decorator rejects responses that do not.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role of a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema definition. Name is kebab-case and doubles as
// the OpenAI schema name and the validator cache key.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason is a provider-neutral finish reason.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Response is the provider output.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason StopReason
}

// Decode unmarshals the response content into v.
func (r *Response) Decode(v any) error {
	if len(r.Content) == 0 {
		return &Error{Kind: ErrInvalidOutput, Err: fmt.Errorf("empty content")}
	}
	if err := json.Unmarshal(r.Content, v); err != nil {
		return &Error{Kind: ErrInvalidOutput, Content: r.Content, Err: err}
	}
	return nil
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func newUsage(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}

// userPrompt builds the common single-turn request shape.
func userPrompt(system, content string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: content}},
	}
}
