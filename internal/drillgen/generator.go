// Package drillgen builds drills from LLM output, with the built-in corpus
// as a fallback.
package drillgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/llm"
	"github.com/abhisek/biblegym/internal/rng"
)

// Purpose labels attached to LLM requests.
const (
	PurposeThemedWorkout = "themed-workout"
	PurposePracticeDrill = "practice-drill"
)

// ErrNoProvider is returned when AI generation is requested without an LLM
// provider configured.
var ErrNoProvider = errors.New("no LLM provider configured")

// PassageLookup resolves a reference to its text.
type PassageLookup interface {
	Lookup(ctx context.Context, reference string) (corpus.Passage, error)
}

// GeneratedQuestion is a context question as returned by the LLM.
type GeneratedQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// GeneratedPassage is one passage as returned by the LLM.
type GeneratedPassage struct {
	Reference       string             `json:"reference"`
	Text            string             `json:"text,omitempty"`
	Book            string             `json:"book"`
	Chapter         int                `json:"chapter"`
	Verses          string             `json:"verses"`
	ContextQuestion *GeneratedQuestion `json:"contextQuestion,omitempty"`
}

// Passage converts to a corpus passage.
func (p GeneratedPassage) Passage() corpus.Passage {
	return corpus.Passage{
		Reference: p.Reference,
		Text:      p.Text,
		Book:      p.Book,
		Chapter:   p.Chapter,
		Verses:    p.Verses,
	}
}

// Batch is the parsed LLM response along with what the request asked for.
type Batch struct {
	Passages []GeneratedPassage `json:"passages"`

	WantText     bool `json:"-"`
	WantQuestion bool `json:"-"`
}

// Generator produces AI drills. A nil provider or lookup is allowed; AI
// paths then fail or fall back.
type Generator struct {
	provider llm.Provider
	lookup   PassageLookup
	corpus   *corpus.Corpus
	config   Config
	src      rng.Source
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource overrides the random source used for blanks and picks.
func WithSource(src rng.Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithClock overrides the time used for drill ids and workout dates.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a Generator.
func New(provider llm.Provider, lookup PassageLookup, c *corpus.Corpus, cfg Config, opts ...Option) *Generator {
	g := &Generator{
		provider: provider,
		lookup:   lookup,
		corpus:   c,
		config:   cfg,
		src:      rng.System(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// HasProvider reports whether AI generation is available.
func (g *Generator) HasProvider() bool {
	return g.provider != nil
}

func (g *Generator) request(ctx context.Context, schema *llm.Schema, userMsg string, wantText, wantQuestion bool) (*Batch, error) {
	if g.provider == nil {
		return nil, ErrNoProvider
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      schema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	batch := &Batch{WantText: wantText, WantQuestion: wantQuestion}
	if err := resp.Decode(batch); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(batch); verr != nil {
			return nil, verr
		}
	}
	return batch, nil
}

func (g *Generator) stamp() int64 {
	return g.now().UnixMilli()
}
