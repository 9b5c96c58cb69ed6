package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidatingProvider rejects responses that do not match the request
// schema with an ErrInvalidOutput error carrying the raw content.
type ValidatingProvider struct {
	inner Provider
	name  string
}

// WithValidation wraps p with JSON Schema validation of structured output.
func WithValidation(p Provider, provider string) Provider {
	return &ValidatingProvider{inner: p, name: provider}
}

func (v *ValidatingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := v.inner.Generate(ctx, req)
	if err != nil || req.Schema == nil {
		return resp, err
	}
	if resp.StopReason == StopMaxTokens {
		return resp, &Error{Kind: ErrTruncated, Provider: v.name, Content: resp.Content}
	}
	if err := schemas.validate(req.Schema, resp.Content); err != nil {
		return resp, &Error{Kind: ErrInvalidOutput, Provider: v.name, Content: resp.Content, Err: err}
	}
	return resp, nil
}

func (v *ValidatingProvider) ModelID() string { return v.inner.ModelID() }

// schemaSet compiles each named schema once.
type schemaSet struct {
	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

var schemas = &schemaSet{compiled: map[string]*jsonschema.Schema{}}

func (s *schemaSet) validate(schema *Schema, raw json.RawMessage) error {
	compiled, err := s.get(schema)
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return compiled.Validate(inst)
}

func (s *schemaSet) get(schema *Schema) (*jsonschema.Schema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.compiled[schema.Name]; ok {
		return c, nil
	}

	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", schema.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", schema.Name, err)
	}

	url := "mem://schemas/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %q: %w", schema.Name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}
	s.compiled[schema.Name] = compiled
	return compiled, nil
}
