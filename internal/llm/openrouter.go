package llm

import (
	"fmt"
	"net/http"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// App attribution sent with every OpenRouter request, so usage shows up
// under this tool on the OpenRouter dashboard.
const (
	openRouterReferer = "https://github.com/abhisek/contentquiz"
	openRouterTitle   = "contentquiz"
)

// openRouterModels lets the friendly names of the other providers select
// the same model through OpenRouter.
var openRouterModels = map[string]string{
	"gemini-flash":      "google/gemini-2.5-flash",
	"gemini-flash-lite": "google/gemini-2.5-flash-lite",
	"gemini-pro":        "google/gemini-2.5-pro",
	"gpt-4o-mini":       "openai/gpt-4o-mini",
	"claude-haiku":      "anthropic/claude-haiku-4.5",
}

// OpenRouterProvider is an OpenAIProvider pointed at OpenRouter's
// OpenAI-compatible API.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	inner, err := newOpenAICompatible(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   resolveModel(cfg.Model, openRouterModels),
		BaseURL: baseURL,
	}, &http.Client{Transport: attributionTransport{base: http.DefaultTransport}})
	if err != nil {
		return nil, err
	}
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// attributionTransport adds the OpenRouter app headers.
type attributionTransport struct {
	base http.RoundTripper
}

func (t attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("HTTP-Referer", openRouterReferer)
	req.Header.Set("X-Title", openRouterTitle)
	return t.base.RoundTrip(req)
}
