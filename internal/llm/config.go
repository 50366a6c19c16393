package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
	ProviderNone       = "none"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use. "none" disables
	// advisory text entirely.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one advisory exchange, retries included. The advisor
	// applies it as the context deadline. Default: 30s.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64

	// MinRemaining is the least time that must be left before the deadline
	// for another attempt to be worth starting.
	MinRemaining time.Duration
}

// DefaultConfig returns a Config with sensible defaults. Gemini is the
// default provider; the advisory prompt was tuned against gemini-2.5-flash.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderGemini,
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		// Worst case inside the 30s budget: three attempts separated by
		// waits of at most 1.2s and 2.4s.
		Retry: RetryConfig{
			MaxAttempts:  3,
			InitialWait:  1 * time.Second,
			MaxWait:      4 * time.Second,
			Multiplier:   2.0,
			MinRemaining: 5 * time.Second,
		},
		Timeout: 30 * time.Second,
	}
}

// providerEnv names the environment variables of one provider. The slice
// order is the discovery order.
type providerEnv struct {
	name     string
	keyEnv   string // CONTENTQUIZ_*_API_KEY
	stdKey   string // the vendor's own variable, used for discovery
	modelEnv string
	key      func(*Config) *string
	model    func(*Config) *string
}

var providerEnvs = []providerEnv{
	{
		name: ProviderGemini, keyEnv: "CONTENTQUIZ_GEMINI_API_KEY", stdKey: "GEMINI_API_KEY", modelEnv: "CONTENTQUIZ_GEMINI_MODEL",
		key:   func(c *Config) *string { return &c.Gemini.APIKey },
		model: func(c *Config) *string { return &c.Gemini.Model },
	},
	{
		name: ProviderOpenAI, keyEnv: "CONTENTQUIZ_OPENAI_API_KEY", stdKey: "OPENAI_API_KEY", modelEnv: "CONTENTQUIZ_OPENAI_MODEL",
		key:   func(c *Config) *string { return &c.OpenAI.APIKey },
		model: func(c *Config) *string { return &c.OpenAI.Model },
	},
	{
		name: ProviderAnthropic, keyEnv: "CONTENTQUIZ_ANTHROPIC_API_KEY", stdKey: "ANTHROPIC_API_KEY", modelEnv: "CONTENTQUIZ_ANTHROPIC_MODEL",
		key:   func(c *Config) *string { return &c.Anthropic.APIKey },
		model: func(c *Config) *string { return &c.Anthropic.Model },
	},
	{
		name: ProviderOpenRouter, keyEnv: "CONTENTQUIZ_OPENROUTER_API_KEY", stdKey: "OPENROUTER_API_KEY", modelEnv: "CONTENTQUIZ_OPENROUTER_MODEL",
		key:   func(c *Config) *string { return &c.OpenRouter.APIKey },
		model: func(c *Config) *string { return &c.OpenRouter.Model },
	},
}

func lookupProviderEnv(name string) (providerEnv, bool) {
	for _, pe := range providerEnvs {
		if pe.name == name {
			return pe, true
		}
	}
	return providerEnv{}, false
}

// ConfigFromEnv builds a Config from CONTENTQUIZ_* environment variables,
// falling back to defaults for unset values. CONTENTQUIZ_LLM_TIMEOUT is a
// Go duration; CONTENTQUIZ_LLM_MAX_ATTEMPTS counts the first try.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setFromEnv(&cfg.Provider, "CONTENTQUIZ_LLM_PROVIDER")
	for _, pe := range providerEnvs {
		setFromEnv(pe.key(&cfg), pe.keyEnv)
		setFromEnv(pe.model(&cfg), pe.modelEnv)
	}
	setFromEnv(&cfg.OpenAI.BaseURL, "CONTENTQUIZ_OPENAI_BASE_URL")

	if d, err := time.ParseDuration(os.Getenv("CONTENTQUIZ_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	if n, err := strconv.Atoi(os.Getenv("CONTENTQUIZ_LLM_MAX_ATTEMPTS")); err == nil && n > 0 {
		cfg.Retry.MaxAttempts = n
	}
	return cfg
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig looks for the vendors' own API key variables (Gemini,
// OpenAI, Anthropic, then OpenRouter) and configures the first provider
// found. The second result is false when there is none.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, pe := range providerEnvs {
		if k := os.Getenv(pe.stdKey); k != "" {
			cfg.Provider = pe.name
			*pe.key(&cfg) = k
			return cfg, true
		}
	}
	return Config{}, false
}

// ResolveConfig returns the CONTENTQUIZ_* configuration when it is usable,
// otherwise the first discovered vendor key. The second result is false
// when no provider can be configured or the provider is "none".
func ResolveConfig() (Config, bool) {
	cfg := ConfigFromEnv()
	if cfg.Provider == ProviderNone {
		return cfg, false
	}
	if cfg.Validate() == nil {
		return cfg, true
	}
	if os.Getenv("CONTENTQUIZ_LLM_PROVIDER") != "" {
		// An explicit choice without its key is not silently replaced.
		return cfg, false
	}
	if d, ok := DiscoverConfig(); ok {
		d.Timeout = cfg.Timeout
		d.Retry = cfg.Retry
		return d, true
	}
	return cfg, false
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderMock, ProviderNone:
		return nil
	}
	pe, ok := lookupProviderEnv(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *pe.key(&c) == "" {
		return fmt.Errorf("%s is required for the %s provider", pe.keyEnv, pe.name)
	}
	return nil
}
