package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider generates one structured completion. The advisor is its only
// consumer: it sends a system prompt, a single user message describing the
// answers and a response schema.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the resolved model, e.g. "gemini-2.5-flash".
	ModelID() string
}

// Generation defaults applied by every provider when a Request leaves the
// field unset.
const (
	DefaultMaxTokens   = 1024
	MaxTemperature     = 1.0
	StopReasonEnd      = "end"
	StopReasonMaxToken = "max_tokens"
)

// Request is one completion request.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, switches the provider to its native JSON output
	// mode. Content is validated against it before Generate returns.
	Schema *Schema

	// MaxTokens defaults to DefaultMaxTokens when zero or negative.
	MaxTokens int

	// Temperature is clamped to [0, MaxTemperature]. Zero leaves the
	// provider default in place.
	Temperature float64
}

// withDefaults returns req with the generation defaults filled in.
func (r Request) withDefaults() Request {
	if r.MaxTokens <= 0 {
		r.MaxTokens = DefaultMaxTokens
	}
	r.Temperature = min(max(r.Temperature, 0), MaxTemperature)
	return r
}

// UserText returns the concatenated user messages. The mock provider
// uses it for token estimates.
func (r Request) UserText() string {
	var b strings.Builder
	for _, m := range r.Messages {
		if m.Role == RoleUser {
			b.WriteString(m.Content)
		}
	}
	return b.String()
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name is sent as the OpenAI schema name. Kebab-case, e.g.
	// "content-analysis".
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the provider output.
type Response struct {
	// Content is validated JSON when the request carried a Schema, raw
	// model text otherwise.
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is StopReasonEnd or StopReasonMaxToken.
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
