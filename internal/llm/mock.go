package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MockModel is the model id reported by MockProvider.
const MockModel = "mock"

// MockAdvisory is a canned analysis in the shape the advisor requests:
// summary, strengths and next_steps. The "mock" provider answers every
// request with it, which makes the report screen usable offline.
var MockAdvisory = json.RawMessage(`{
  "summary": "You already publish with some regularity, which is the hardest habit to build. The biggest gains now come from knowing who you write for and measuring what works.",
  "strengths": ["Publishes on a steady schedule", "Uses more than one content format"],
  "next_steps": ["Write a one-page audience profile", "Track one conversion metric per post", "Repurpose your best post into three formats"]
}`)

// MockResponse is a canned reply.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockJSON returns a reply whose content is v marshalled to JSON.
func MockJSON(v any) MockResponse {
	b, err := json.Marshal(v)
	if err != nil {
		return MockResponse{Err: fmt.Errorf("mock: marshal: %w", err)}
	}
	return MockResponse{Content: b}
}

// MockFailure returns a reply that fails with err.
func MockFailure(err error) MockResponse {
	return MockResponse{Err: err}
}

// MockProvider replays canned replies in FIFO order and records every
// request. When the queue is empty it answers with Fallback, or fails with
// ErrProviderUnavailable when there is none.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Fallback  *MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned replies.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// NewDemoProvider answers every request with MockAdvisory.
func NewDemoProvider() *MockProvider {
	return &MockProvider{Fallback: &MockResponse{Content: MockAdvisory}}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var resp MockResponse
	switch {
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	case m.Fallback != nil:
		resp = *m.Fallback
	default:
		return nil, &ErrProviderUnavailable{}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}

	content, err := structured(req.Schema, resp.Content)
	if err != nil {
		return nil, err
	}

	usage := resp.Usage
	if usage == (Usage{}) {
		usage = estimateUsage(req, content)
	}
	return &Response{
		Content:    content,
		Usage:      usage,
		Model:      MockModel,
		StopReason: StopReasonEnd,
	}, nil
}

func (m *MockProvider) ModelID() string {
	return MockModel
}

// AddResponse appends a canned reply to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent request, or false if there was none.
func (m *MockProvider) LastCall() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}

// estimateUsage approximates tokens at four bytes each so recorded mock
// calls show plausible numbers in "llm stats".
func estimateUsage(req Request, content json.RawMessage) Usage {
	in := (len(req.System) + len(req.UserText())) / 4
	out := len(content) / 4
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}
