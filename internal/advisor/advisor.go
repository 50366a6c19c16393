// Package advisor produces the free-text advisory analysis shown under the
// report. It is best effort: every failure turns into a fixed message and
// the quiz never depends on it.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/contentquiz/internal/catalog"
	"github.com/abhisek/contentquiz/internal/llm"
)

// Fixed texts shown in place of an analysis.
const (
	NotConfiguredText = "AI analysis is not available: no LLM provider is configured."
	NoAnswersText     = "Answer some questions first to get a personalised analysis."
	UnavailableText   = "Sorry, there was an error connecting to the analysis service. Please try again later."
	EmptyText         = "Sorry, we couldn't get an analysis right now."
)

var (
	// ErrNotConfigured is returned when the advisor has no provider.
	ErrNotConfigured = errors.New("advisor: no provider configured")

	// ErrNoAnswers is returned when none of the answers can be described.
	ErrNoAnswers = errors.New("advisor: no answers")

	// ErrEmpty is returned when the provider answered with nothing usable.
	ErrEmpty = errors.New("advisor: empty analysis")
)

// Config holds advisory generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns the defaults used by the terminal UI.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
	}
}

// Analysis is the structured advisory text.
type Analysis struct {
	Summary   string   `json:"summary"`
	Strengths []string `json:"strengths"`
	NextSteps []string `json:"next_steps"`
}

// Text renders the analysis as plain paragraphs with bullet lists.
func (a Analysis) Text() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(a.Summary))
	writeList(&b, "What you do well:", a.Strengths)
	writeList(&b, "Next steps:", a.NextSteps)
	return b.String()
}

func writeList(b *strings.Builder, heading string, items []string) {
	var kept []string
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			kept = append(kept, it)
		}
	}
	if len(kept) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n\n")
	}
	b.WriteString(heading)
	for _, it := range kept {
		b.WriteString("\n• ")
		b.WriteString(it)
	}
}

// Advisor asks an LLM for an analysis of a completed assessment.
type Advisor struct {
	provider llm.Provider
	cfg      Config
}

// New creates an Advisor. A nil provider is allowed; Advise then returns
// NotConfiguredText. Zero MaxTokens and Timeout take the defaults.
func New(provider llm.Provider, cfg Config) *Advisor {
	def := DefaultConfig()
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = def.MaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	return &Advisor{provider: provider, cfg: cfg}
}

// Configured reports whether a provider is set.
func (a *Advisor) Configured() bool {
	return a != nil && a.provider != nil
}

// Advise returns the analysis text, or one of the fixed texts when it
// cannot be produced. It never fails.
func (a *Advisor) Advise(ctx context.Context, cat *catalog.Catalog, answers catalog.Answers) string {
	analysis, err := a.Analyze(ctx, cat, answers)
	switch {
	case err == nil:
		return analysis.Text()
	case errors.Is(err, ErrNotConfigured):
		return NotConfiguredText
	case errors.Is(err, ErrNoAnswers):
		return NoAnswersText
	case errors.Is(err, ErrEmpty):
		slog.Warn("advisory analysis unusable", "error", err)
		return EmptyText
	default:
		slog.Warn("advisory analysis failed", "error", err)
		return UnavailableText
	}
}

// Analyze requests and validates the structured analysis.
func (a *Advisor) Analyze(ctx context.Context, cat *catalog.Catalog, answers catalog.Answers) (*Analysis, error) {
	if !a.Configured() {
		return nil, ErrNotConfigured
	}
	pairs := answeredPairs(cat, answers)
	if len(pairs) == 0 {
		return nil, ErrNoAnswers
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeAdvisory)
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(cat, pairs, answers)},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		var truncated *llm.ErrMaxTokensExceeded
		if errors.As(err, &invalid) || errors.As(err, &truncated) {
			return nil, fmt.Errorf("%w: %w", ErrEmpty, err)
		}
		return nil, fmt.Errorf("advisory generation: %w", err)
	}

	if err := AnalysisSchema.Validate(resp.Content); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmpty, err)
	}

	var out Analysis
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("%w: parse analysis: %w", ErrEmpty, err)
	}
	if strings.TrimSpace(out.Summary) == "" {
		return nil, ErrEmpty
	}
	return &out, nil
}
