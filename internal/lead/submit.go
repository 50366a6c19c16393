package lead

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/abhisek/contentquiz/internal/store"
)

// ErrNoEndpoint is returned when no lead endpoint is configured.
var ErrNoEndpoint = errors.New("lead endpoint not configured")

// ErrTooSoon is returned when a request follows a delivered one within
// MinSubmitInterval.
var ErrTooSoon = errors.New("lead submitted too recently")

// MinSubmitInterval spaces delivered requests from one process. Failed
// attempts do not count, so the user can retry at once.
const MinSubmitInterval = 30 * time.Second

// Recorder stores submission attempts. store.EventRepo satisfies it.
type Recorder interface {
	AppendLeadEvent(ctx context.Context, data store.LeadEventData) error
}

// Submitter validates a form and dispatches it to a sink.
type Submitter struct {
	sink     Sink
	recorder Recorder
	newID    func() string

	// mu is held from the spacing check until the token is taken, so
	// concurrent submissions queue behind an in-flight one.
	mu      sync.Mutex
	limiter *rate.Limiter
}

// NewSubmitter creates a Submitter. sink and recorder may be nil: without a
// sink every submission fails with ErrNoEndpoint, without a recorder
// attempts are not stored.
func NewSubmitter(sink Sink, recorder Recorder) *Submitter {
	return &Submitter{
		sink:     sink,
		recorder: recorder,
		newID:    uuid.NewString,
		limiter:  rate.NewLimiter(rate.Every(MinSubmitInterval), 1),
	}
}

// Configured reports whether submissions can be dispatched at all.
func (s *Submitter) Configured() bool {
	return s.sink != nil && s.sink.Endpoint() != ""
}

// Submit validates f and, when valid, dispatches exactly one payload. It
// returns FieldErrors for invalid input without touching the sink, and
// ErrNoEndpoint when there is nowhere to send to. Transport errors are
// returned wrapped; the caller may retry. A second delivery within
// MinSubmitInterval is refused with ErrTooSoon, including one that was
// waiting on a concurrent delivery.
func (s *Submitter) Submit(ctx context.Context, sessionID string, f Form) error {
	if errs := f.Validate(); len(errs) > 0 {
		return errs
	}
	if !s.Configured() {
		return ErrNoEndpoint
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.limiter.Tokens() < 1 {
		return ErrTooSoon
	}

	p := f.Payload()
	sendErr := s.sink.Submit(ctx, p)
	s.record(ctx, sessionID, p, sendErr)

	if sendErr != nil {
		return fmt.Errorf("submit lead: %w", sendErr)
	}
	s.limiter.Allow()
	return nil
}

func (s *Submitter) record(ctx context.Context, sessionID string, p Payload, sendErr error) {
	if s.recorder == nil {
		return
	}
	data := store.LeadEventData{
		LeadID:    s.newID(),
		SessionID: sessionID,
		Name:      p.Name,
		WhatsApp:  p.WhatsApp,
		Website:   p.Website,
		Problems:  p.Problems,
		Endpoint:  s.sink.Endpoint(),
		Delivered: sendErr == nil,
	}
	if sendErr != nil {
		data.ErrorMessage = sendErr.Error()
	}
	if err := s.recorder.AppendLeadEvent(context.WithoutCancel(ctx), data); err != nil {
		slog.Warn("failed to record lead event", "error", err)
	}
}
