package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To

	// SessionID keeps only events of one quiz session. Every event table
	// carries a session_id column.
	SessionID string
}

// Session actions.
const (
	ActionStart   = "start"
	ActionFinish  = "finish"
	ActionRestart = "restart"
)

// SessionEventData captures one quiz lifecycle event.
type SessionEventData struct {
	SessionID      string
	Action         string
	CatalogVersion string
	Answered       int
	Total          int
	ResultCategory string
	ResultTitle    string
}

// SessionEvent is a stored quiz lifecycle event.
type SessionEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// LeadEventData captures one dispatched consultation request.
type LeadEventData struct {
	LeadID       string
	SessionID    string
	Name         string
	WhatsApp     string
	Website      string
	Problems     string
	Endpoint     string
	Delivered    bool
	ErrorMessage string
}

// LeadEvent is a stored consultation request.
type LeadEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LeadEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	SessionID    string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM calls per purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM token usage per model, for cost estimates.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a quiz lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLeadEvent records a lead submission attempt.
	AppendLeadEvent(ctx context.Context, data LeadEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QuerySessionEvents returns session events, newest first.
	QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error)

	// QueryLeadEvents returns lead events, newest first.
	QueryLeadEvents(ctx context.Context, opts QueryOpts) ([]LeadEvent, error)

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates LLM calls per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates LLM token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
