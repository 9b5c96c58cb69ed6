package config

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/biblegym/internal/bibleapi"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"BIBLEGYM_LLM_PROVIDER", "BIBLEGYM_GEMINI_API_KEY", "BIBLEGYM_OPENAI_API_KEY",
		"BIBLEGYM_ANTHROPIC_API_KEY", "BIBLEGYM_OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func testCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("db", "", "")
	cmd.Flags().String("log-level", "warn", "")
	cmd.Flags().String("llm-provider", "gemini", "")
	return cmd
}

func TestLoadDefaults(t *testing.T) {
	clearLLMEnv(t)

	c := Load(nil)
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, bibleapi.DefaultBaseURL, c.BibleAPIURL)
	assert.Equal(t, "warn", c.LogLevel)
	assert.False(t, c.LLM.Enabled(), "no keys means AI is disabled")
}

func TestLoadFlagsAndEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("BIBLEGYM_GEMINI_API_KEY", "g-key")
	t.Setenv("BIBLEGYM_ADDR", ":9999")

	cmd := testCmd()
	require.NoError(t, cmd.Flags().Set("db", "/tmp/x.db"))

	c := Load(cmd)
	assert.Equal(t, "/tmp/x.db", c.DBPath)
	assert.Equal(t, ":9999", c.Addr)
	assert.Equal(t, "gemini", c.LLM.Provider)
	assert.Equal(t, "g-key", c.LLM.Gemini.APIKey)
	assert.Equal(t, "gemini-flash", c.LLM.Gemini.Model)
	assert.Equal(t, 30*time.Second, c.LLM.Timeout)
}

func TestLoadDiscoversStandardKey(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	c := Load(testCmd())
	assert.Equal(t, "openai", c.LLM.Provider)
	assert.Equal(t, "sk-test", c.LLM.OpenAI.APIKey)
}

func TestLoadProviderNone(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("BIBLEGYM_LLM_PROVIDER", "none")

	c := Load(testCmd())
	assert.False(t, c.LLM.Enabled())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "info", "json")
	log.Debug("hidden")
	log.Info("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), "expected JSON output, got %q", out)
	assert.Contains(t, out, `"k":"v"`)

	buf.Reset()
	NewLogger(&buf, "bogus", "text").Info("below warn")
	assert.Empty(t, buf.String())
}

func TestLoadEmptyProviderDiscovers(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "ak-test")

	cmd := testCmd()
	require.NoError(t, cmd.Flags().Set("llm-provider", ""))

	c := Load(cmd)
	assert.True(t, c.LLM.Enabled())
	assert.Equal(t, "anthropic", c.LLM.Provider)
	assert.Equal(t, "ak-test", c.LLM.Anthropic.APIKey)
}

func TestLoadEmptyProviderWithoutKeys(t *testing.T) {
	clearLLMEnv(t)

	cmd := testCmd()
	require.NoError(t, cmd.Flags().Set("llm-provider", ""))

	c := Load(cmd)
	assert.False(t, c.LLM.Enabled())
}
