package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures one provider. An empty Provider disables
// AI features.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig also serves OpenAI-compatible endpoints through BaseURL.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// DefaultConfig uses Gemini Flash, which the drill prompts were tuned on.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderGemini,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// envBindings maps BIBLEGYM_* variables onto Config fields.
func (c *Config) envBindings() map[string]*string {
	return map[string]*string{
		"BIBLEGYM_LLM_PROVIDER":       &c.Provider,
		"BIBLEGYM_ANTHROPIC_API_KEY":  &c.Anthropic.APIKey,
		"BIBLEGYM_ANTHROPIC_MODEL":    &c.Anthropic.Model,
		"BIBLEGYM_OPENAI_API_KEY":     &c.OpenAI.APIKey,
		"BIBLEGYM_OPENAI_MODEL":       &c.OpenAI.Model,
		"BIBLEGYM_OPENAI_BASE_URL":    &c.OpenAI.BaseURL,
		"BIBLEGYM_GEMINI_API_KEY":     &c.Gemini.APIKey,
		"BIBLEGYM_GEMINI_MODEL":       &c.Gemini.Model,
		"BIBLEGYM_OPENROUTER_API_KEY": &c.OpenRouter.APIKey,
		"BIBLEGYM_OPENROUTER_MODEL":   &c.OpenRouter.Model,
	}
}

// ConfigFromEnv overlays BIBLEGYM_* variables on DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	for name, field := range cfg.envBindings() {
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}
	return cfg
}

// vendorKeys is the discovery order for vendor-standard key variables.
var vendorKeys = []struct {
	env      string
	provider string
}{
	{"GEMINI_API_KEY", ProviderGemini},
	{"OPENAI_API_KEY", ProviderOpenAI},
	{"ANTHROPIC_API_KEY", ProviderAnthropic},
	{"OPENROUTER_API_KEY", ProviderOpenRouter},
}

// DiscoverConfig picks the first provider whose vendor key variable
// (GEMINI_API_KEY, OPENAI_API_KEY, ...) is set.
func DiscoverConfig() (Config, bool) {
	for _, vk := range vendorKeys {
		key := os.Getenv(vk.env)
		if key == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = vk.provider
		if field := cfg.apiKey(); field != nil {
			*field = key
		}
		return cfg, true
	}
	return Config{}, false
}

func (c Config) Enabled() bool {
	return c.Provider != ""
}

// apiKey points at the key field of the selected provider, nil for mock or
// unknown providers.
func (c *Config) apiKey() *string {
	switch c.Provider {
	case ProviderAnthropic:
		return &c.Anthropic.APIKey
	case ProviderOpenAI:
		return &c.OpenAI.APIKey
	case ProviderGemini:
		return &c.Gemini.APIKey
	case ProviderOpenRouter:
		return &c.OpenRouter.APIKey
	}
	return nil
}

// Validate reports a missing key or an unknown provider.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	key := c.apiKey()
	if key == nil {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *key == "" {
		return fmt.Errorf("%s: %w (set %s_API_KEY or BIBLEGYM_%s_API_KEY)",
			c.Provider, ErrMissingAPIKey, strings.ToUpper(c.Provider), strings.ToUpper(c.Provider))
	}
	return nil
}
