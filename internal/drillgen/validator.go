package drillgen

import (
	"fmt"
	"strings"
)

// PassagesPerBatch is how many passages every LLM request asks for.
const PassagesPerBatch = 3

// Validator checks a batch of generated passages.
type Validator interface {
	Name() string
	Validate(b *Batch) *ValidationError
}

// ValidationError describes why a batch failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks counts, required fields and question shape.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(b *Batch) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
	}

	if len(b.Passages) != PassagesPerBatch {
		return fail("expected %d passages, got %d", PassagesPerBatch, len(b.Passages))
	}
	for i, p := range b.Passages {
		if strings.TrimSpace(p.Reference) == "" {
			return fail("passage %d: reference is empty", i)
		}
		if b.WantText && strings.TrimSpace(p.Text) == "" {
			return fail("passage %d: text is empty", i)
		}
		if !b.WantQuestion {
			continue
		}
		q := p.ContextQuestion
		if q == nil {
			return fail("passage %d: contextQuestion is missing", i)
		}
		if strings.TrimSpace(q.Question) == "" {
			return fail("passage %d: question is empty", i)
		}
		if len(q.Options) != 4 {
			return fail("passage %d: expected 4 options, got %d", i, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
			return fail("passage %d: correctIndex %d out of range", i, q.CorrectIndex)
		}
	}
	return nil
}

// DistinctValidator rejects batches that repeat a reference.
type DistinctValidator struct{}

func (v *DistinctValidator) Name() string { return "distinct" }

func (v *DistinctValidator) Validate(b *Batch) *ValidationError {
	seen := make(map[string]bool, len(b.Passages))
	for _, p := range b.Passages {
		key := strings.ToLower(strings.TrimSpace(p.Reference))
		if seen[key] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("reference %q appears more than once", p.Reference),
			}
		}
		seen[key] = true
	}
	return nil
}
