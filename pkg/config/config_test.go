package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)

		assert.Equal(t, RoutingKeyword, cfg.Routing)
		assert.Equal(t, LLMProviderMock, cfg.LLM.Provider)
		assert.Equal(t, "https://api.duckduckgo.com", cfg.Search.BaseURL)
		assert.Equal(t, time.Minute, cfg.Search.CacheTTL)
		assert.False(t, cfg.FriendlyOutput)
	})

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agentd.yaml")
		content := `
routing: llm
friendly_output: true
llm:
  provider: openai
  model: gpt-4o
  timeout: 30s
search:
  base_url: http://localhost:9000
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, RoutingLLM, cfg.Routing)
		assert.True(t, cfg.FriendlyOutput)
		assert.Equal(t, LLMProviderOpenAI, cfg.LLM.Provider)
		assert.Equal(t, "gpt-4o", cfg.LLM.Model)
		assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
		assert.Equal(t, "http://localhost:9000", cfg.Search.BaseURL)
	})

	t.Run("invalid routing mode rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agentd.yaml")
		require.NoError(t, os.WriteFile(path, []byte("routing: magic\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid routing mode")
	})

	t.Run("invalid llm provider rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agentd.yaml")
		require.NoError(t, os.WriteFile(path, []byte("llm:\n  provider: gemini\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid llm provider")
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agentd.yaml")
		require.NoError(t, os.WriteFile(path, []byte("routing: keyword\n"), 0o600))

		t.Setenv("ROUTING_MODE", "llm")
		t.Setenv("SEARCH_BASE_URL", "http://search.internal")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, RoutingLLM, cfg.Routing)
		assert.Equal(t, "http://search.internal", cfg.Search.BaseURL)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agentd.yaml")
		require.NoError(t, os.WriteFile(path, []byte("routing: [unclosed\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
	})
}
