// Package config loads and validates service configuration from a YAML
// file, with environment variable overrides for deployment settings.
package config

import (
	"fmt"
	"time"
)

// RoutingMode selects how the coordinator classifies inbound requests.
type RoutingMode string

const (
	// RoutingKeyword routes by fixed keyword sets on the request string.
	RoutingKeyword RoutingMode = "keyword"
	// RoutingLLM asks the language-model capability to classify the request.
	RoutingLLM RoutingMode = "llm"
)

// LLMProviderType identifies a language-model client implementation.
type LLMProviderType string

const (
	LLMProviderMock   LLMProviderType = "mock"
	LLMProviderOpenAI LLMProviderType = "openai"
)

// Config is the full service configuration.
type Config struct {
	// Routing selects the coordinator variant. Keyword routing falls back
	// to the search handler on ambiguous requests; llm routing may run
	// both handlers concurrently.
	Routing RoutingMode `yaml:"routing"`

	// FriendlyOutput re-formats database results through a second LLM call.
	FriendlyOutput bool `yaml:"friendly_output"`

	LLM    LLMConfig    `yaml:"llm"`
	Search SearchConfig `yaml:"search"`
}

// LLMConfig configures the language-model capability.
type LLMConfig struct {
	Provider LLMProviderType `yaml:"provider"`
	// BaseURL is the chat-completions endpoint base, e.g.
	// "https://api.openai.com/v1" or a local llama.cpp server.
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
	// APIKeyEnv names the environment variable holding the bearer token.
	// The key itself never appears in the config file.
	APIKeyEnv string `yaml:"api_key_env"`
}

// SearchConfig configures the instant-answer search client.
type SearchConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// applyDefaults fills zero values with production defaults.
func (c *Config) applyDefaults() {
	if c.Routing == "" {
		c.Routing = RoutingKeyword
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = LLMProviderMock
	}
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = "http://localhost:8081/v1"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.LLM.Timeout <= 0 {
		c.LLM.Timeout = 60 * time.Second
	}
	if c.LLM.APIKeyEnv == "" {
		c.LLM.APIKeyEnv = "LLM_API_KEY"
	}
	if c.Search.BaseURL == "" {
		c.Search.BaseURL = "https://api.duckduckgo.com"
	}
	if c.Search.Timeout <= 0 {
		c.Search.Timeout = 10 * time.Second
	}
	if c.Search.CacheTTL <= 0 {
		c.Search.CacheTTL = time.Minute
	}
}

// validate rejects configurations the service cannot run with.
func (c *Config) validate() error {
	switch c.Routing {
	case RoutingKeyword, RoutingLLM:
	default:
		return fmt.Errorf("invalid routing mode %q (must be %q or %q)",
			c.Routing, RoutingKeyword, RoutingLLM)
	}
	switch c.LLM.Provider {
	case LLMProviderMock, LLMProviderOpenAI:
	default:
		return fmt.Errorf("invalid llm provider %q (must be %q or %q)",
			c.LLM.Provider, LLMProviderMock, LLMProviderOpenAI)
	}
	return nil
}
