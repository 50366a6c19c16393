package advisor

import (
	"context"

	"github.com/abhisek/contentquiz/internal/llm"
)

// purposeProvider records the purpose label of the request context.
type purposeProvider struct {
	seen *string
}

func (p purposeProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	*p.seen = llm.PurposeFrom(ctx)
	return &llm.Response{Content: llm.MockAdvisory, Model: "test"}, nil
}

func (p purposeProvider) ModelID() string { return "test" }

type requestContext struct {
	session     string
	hasDeadline bool
	maxTokens   int
}

// contextProvider records what reaches a provider through the context and
// request.
type contextProvider struct {
	seen *requestContext
}

func (p contextProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	_, ok := ctx.Deadline()
	*p.seen = requestContext{session: llm.SessionFrom(ctx), hasDeadline: ok, maxTokens: req.MaxTokens}
	return &llm.Response{Content: llm.MockAdvisory, Model: "test"}, nil
}

func (p contextProvider) ModelID() string { return "test" }
