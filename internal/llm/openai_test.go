package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// sentChat is the part of the outgoing request the tests look at.
type sentChat struct {
	MaxCompletionTokens int `json:"max_completion_tokens"`
	ResponseFormat      struct {
		JSONSchema struct {
			Name   string `json:"name"`
			Strict bool   `json:"strict"`
		} `json:"json_schema"`
	} `json:"response_format"`
}

// chatServer answers every chat completion with one choice carrying
// content and finish.
func chatServer(t *testing.T, content, finish string, seen *sentChat) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			json.NewDecoder(r.Body).Decode(seen)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"model":   "gpt-4o-mini-2024-07-18",
			"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": content}, "finish_reason": finish}},
			"usage":   map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
		})
	}))
	t.Cleanup(server.Close)

	p, err := newOpenAICompatible(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: server.URL + "/v1"}, server.Client())
	if err != nil {
		t.Fatalf("newOpenAICompatible: %v", err)
	}
	return p
}

// errorServer fails every request with status.
func errorServer(t *testing.T, status int) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"type": "server_error", "message": http.StatusText(status)}})
	}))
	t.Cleanup(server.Close)

	p, err := newOpenAICompatible(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: server.URL + "/v1"}, nil)
	if err != nil {
		t.Fatalf("newOpenAICompatible: %v", err)
	}
	return p
}

func TestOpenAIProvider_Analysis(t *testing.T) {
	var seen sentChat
	p := chatServer(t, string(MockAdvisory), "stop", &seen)

	resp, err := p.Generate(context.Background(), advisoryRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(MockAdvisory) {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage != (Usage{InputTokens: 40, OutputTokens: 25, TotalTokens: 65}) {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.Model != "gpt-4o-mini-2024-07-18" || resp.StopReason != StopReasonEnd {
		t.Errorf("model/stop = %q/%q", resp.Model, resp.StopReason)
	}
	if got := seen.ResponseFormat.JSONSchema; got.Name != "advisory-shape" || !got.Strict {
		t.Errorf("json_schema = %+v", got)
	}
	if seen.MaxCompletionTokens != DefaultMaxTokens {
		t.Errorf("max_completion_tokens = %d", seen.MaxCompletionTokens)
	}
}

func TestOpenAIProvider_FencedAnalysis(t *testing.T) {
	p := chatServer(t, "```json\n"+string(MockAdvisory)+"\n```", "stop", nil)

	resp, err := p.Generate(context.Background(), advisoryRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(MockAdvisory) {
		t.Errorf("content = %s", resp.Content)
	}
}

func TestOpenAIProvider_OffSchemaAnalysis(t *testing.T) {
	p := chatServer(t, `{"summary":"Only a summary"}`, "stop", nil)

	_, err := p.Generate(context.Background(), advisoryRequest())

	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
	if string(invalid.Content) != `{"summary":"Only a summary"}` {
		t.Errorf("rejected content = %s", invalid.Content)
	}
}

func TestOpenAIProvider_Errors(t *testing.T) {
	_, err := errorServer(t, http.StatusTooManyRequests).Generate(context.Background(), advisoryRequest())
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("429: expected ErrRateLimit, got %T (%v)", err, err)
	}

	_, err = errorServer(t, http.StatusBadGateway).Generate(context.Background(), advisoryRequest())
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("502: expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestNewOpenAIProvider(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"}); err == nil {
		t.Error("expected an error without an API key")
	}

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4.1-mini"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4.1-mini" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}

func TestOpenAIChatRequest_Defaults(t *testing.T) {
	req, err := openAIChatRequest("gpt-4o-mini", Request{
		System:      "You are a content consultant.",
		Messages:    []Message{{Role: RoleUser, Content: "answers"}},
		Temperature: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.MaxCompletionTokens != DefaultMaxTokens {
		t.Errorf("MaxCompletionTokens = %d, want %d", req.MaxCompletionTokens, DefaultMaxTokens)
	}
	if req.Temperature != MaxTemperature {
		t.Errorf("Temperature = %v, want clamped to %v", req.Temperature, MaxTemperature)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("messages = %+v", req.Messages)
	}
	if req.ResponseFormat != nil {
		t.Error("no response format without a schema")
	}
}

func TestStrictSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":       "object",
					"properties": map[string]any{"text": map[string]any{"type": "string"}},
				},
			},
		},
		"required": []any{"summary"},
	}

	got := strictSchema(def)

	if got["additionalProperties"] != false {
		t.Error("top level not closed")
	}
	req, _ := got["required"].([]any)
	if len(req) != 2 || req[0] != "steps" || req[1] != "summary" {
		t.Errorf("required = %v, want every property", req)
	}
	items := got["properties"].(map[string]any)["steps"].(map[string]any)["items"].(map[string]any)
	if items["additionalProperties"] != false {
		t.Error("nested object not closed")
	}
	if _, touched := def["additionalProperties"]; touched {
		t.Error("input definition was modified")
	}
	if len(def["required"].([]any)) != 1 {
		t.Error("input required list was modified")
	}
}

func TestOpenAIProvider_TruncatedAnalysis(t *testing.T) {
	p := chatServer(t, `{"summary":"You al`, "length", nil)

	_, err := p.Generate(context.Background(), advisoryRequest())

	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
	if string(maxTok.Content) != `{"summary":"You al` {
		t.Errorf("partial content = %s", maxTok.Content)
	}
}
