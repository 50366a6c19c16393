package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/contentquiz/internal/store"
)

// LoggingProvider records every attempt as an LLM request event. It sits
// below RetryProvider, so a report that needed a retry leaves one row per
// attempt under the same session id.
type LoggingProvider struct {
	inner    Provider
	provider string
	repo     store.EventRepo
}

// WithLogging wraps p. name is the provider label stored with each event
// ("gemini", "openai", ...).
func WithLogging(p Provider, name string, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, provider: name, repo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	elapsed := time.Since(start)

	data := store.LLMRequestEventData{
		SessionID:   SessionFrom(ctx),
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   elapsed.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	switch {
	case err != nil:
		data.ErrorMessage = err.Error()
		data.ResponseBody = string(rejectedContent(err))
	case resp != nil:
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
		if resp.Model != "" {
			data.Model = resp.Model
		}
	}

	slog.Debug("llm call",
		"provider", data.Provider, "model", data.Model, "purpose", data.Purpose,
		"session", data.SessionID, "latency", elapsed, "ok", data.Success)

	// The event is bookkeeping: a failed write never fails the analysis.
	if werr := l.repo.AppendLLMRequest(context.WithoutCancel(ctx), data); werr != nil {
		slog.Warn("record LLM request event", "purpose", data.Purpose, "error", werr)
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// rejectedContent returns what the model said when the answer was refused
// for being truncated or off-schema, so "llm view" can show it.
func rejectedContent(err error) json.RawMessage {
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return invalid.Content
	}
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return truncated.Content
	}
	return nil
}

// transcript renders the request as it is stored in request_body: the
// system prompt, each message, the effective generation settings and the
// schema name.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}

	eff := req.withDefaults()
	fmt.Fprintf(&b, "[max_tokens=%d temperature=%.2f]\n", eff.MaxTokens, eff.Temperature)
	if req.Schema != nil {
		def, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			def = []byte("(unprintable)")
		}
		fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
	}
	return b.String()
}
