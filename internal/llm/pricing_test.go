package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		want  *ModelCost
	}{
		{"gpt-4o-mini", &ModelCost{0.15, 0.6}},
		{"claude-sonnet-4-20250514", &ModelCost{3, 15}},
		{"gpt-4o-2024-08-06", &ModelCost{2.5, 10}},
		{"google/gemini-2.5-flash", &ModelCost{0.3, 2.5}},
		{"models/gemini-2.5-pro", &ModelCost{1.25, 10}},
		{"GPT-4.1", &ModelCost{2, 8}},
		{"palm-2", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupCost(tt.model))
		})
	}
}

func TestModelCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	require.NotNil(t, c)
	assert.InDelta(t, 0.0055, c.Cost(10_000, 1_000), 1e-9)
	assert.Zero(t, c.Cost(0, 0))
}
