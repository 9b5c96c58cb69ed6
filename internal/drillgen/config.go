package drillgen

// Config controls the behavior of the Generator.
type Config struct {
	// Validators run in order on every batch the LLM returns; the first
	// failure rejects the batch.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DistinctValidator{},
		},
		MaxTokens:   2048,
		Temperature: 0.8,
	}
}
