// Package config resolves settings from flags, BIBLEGYM_* environment
// variables and an optional biblegym.{yaml,toml,json} file.
package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/biblegym/internal/bibleapi"
	"github.com/abhisek/biblegym/internal/llm"
)

// EnvPrefix is prepended to every environment key.
const EnvPrefix = "BIBLEGYM"

// Config is the resolved application configuration.
type Config struct {
	DBPath      string
	UserName    string
	UserEmail   string
	LogLevel    string
	LogFormat   string
	Addr        string
	BibleAPIURL string
	LLM         llm.Config
}

// New binds cmd's flags and the environment to a fresh viper instance and
// reads the config file if one exists.
func New(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	if cmd != nil {
		_ = v.BindPFlags(cmd.Flags())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("biblegym")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/biblegym")
	v.AddConfigPath("/etc/biblegym")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}
	return v
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-format", "text")
	v.SetDefault("addr", ":8080")
	v.SetDefault("bible-api-url", bibleapi.DefaultBaseURL)
	v.SetDefault("llm-provider", d.Provider)
	v.SetDefault("anthropic-model", d.Anthropic.Model)
	v.SetDefault("openai-model", d.OpenAI.Model)
	v.SetDefault("gemini-model", d.Gemini.Model)
	v.SetDefault("openrouter-model", d.OpenRouter.Model)
	v.SetDefault("llm-timeout", d.Timeout)
}

// Load resolves the full configuration for cmd.
func Load(cmd *cobra.Command) Config {
	return FromViper(New(cmd))
}

// FromViper reads a Config out of v.
func FromViper(v *viper.Viper) Config {
	return Config{
		DBPath:      v.GetString("db"),
		UserName:    v.GetString("user"),
		UserEmail:   v.GetString("email"),
		LogLevel:    v.GetString("log-level"),
		LogFormat:   v.GetString("log-format"),
		Addr:        v.GetString("addr"),
		BibleAPIURL: v.GetString("bible-api-url"),
		LLM:         llmConfig(v),
	}
}

// llmConfig builds the provider configuration. An empty provider, or a
// selected one without a key, falls back to the first standard *_API_KEY
// variable that is set. "none" disables AI features outright.
func llmConfig(v *viper.Viper) llm.Config {
	cfg := llm.DefaultConfig()
	cfg.Provider = strings.ToLower(strings.TrimSpace(v.GetString("llm-provider")))
	cfg.Timeout = v.GetDuration("llm-timeout")

	cfg.Anthropic.APIKey = v.GetString("anthropic-api-key")
	cfg.Anthropic.Model = v.GetString("anthropic-model")
	cfg.OpenAI.APIKey = v.GetString("openai-api-key")
	cfg.OpenAI.Model = v.GetString("openai-model")
	cfg.OpenAI.BaseURL = v.GetString("openai-base-url")
	cfg.Gemini.APIKey = v.GetString("gemini-api-key")
	cfg.Gemini.Model = v.GetString("gemini-model")
	cfg.OpenRouter.APIKey = v.GetString("openrouter-api-key")
	cfg.OpenRouter.Model = v.GetString("openrouter-model")

	if cfg.Provider == "none" {
		return llm.Config{}
	}
	if cfg.Provider != "" {
		if err := cfg.Validate(); err == nil {
			return cfg
		}
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered
	}
	return llm.Config{}
}

// SetupLogging installs the default slog logger on stderr.
func SetupLogging(c Config) {
	slog.SetDefault(NewLogger(os.Stderr, c.LogLevel, c.LogFormat))
}

// NewLogger builds a text or JSON logger at the named level.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: logLevel}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}
