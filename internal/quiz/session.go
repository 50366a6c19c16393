package quiz

import (
	"sync"
	"time"

	"github.com/abhisek/contentquiz/internal/catalog"
)

// DefaultAdvanceDelay is how long the selected option stays highlighted
// before the quiz moves on.
const DefaultAdvanceDelay = 400 * time.Millisecond

// Ticket identifies one scheduled auto-advance. Only the most recently
// issued ticket can fire.
type Ticket uint64

// Timer is the part of *time.Timer the session needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Options configures a Session.
type Options struct {
	// AdvanceDelay defaults to DefaultAdvanceDelay when zero. A negative
	// value disables auto-advance.
	AdvanceDelay time.Duration

	// AfterFunc defaults to time.AfterFunc.
	AfterFunc AfterFunc

	// OnDue, when set, receives due tickets instead of the session
	// advancing on the timer goroutine. The receiver is expected to call
	// Fire from its own loop.
	OnDue func(Ticket)

	// OnChange is called after every state change, outside the lock.
	OnChange func(State)
}

type pending struct {
	ticket Ticket
	timer  Timer
}

// Session is the controller around a Navigator. It owns the cancellable
// auto-advance timer and serialises access from the timer goroutine.
type Session struct {
	mu      sync.Mutex
	nav     *Navigator
	opts    Options
	pending *pending
	seq     Ticket
}

// NewSession returns a Session in the initial state.
func NewSession(cat *catalog.Catalog, opts Options) *Session {
	if opts.AdvanceDelay == 0 {
		opts.AdvanceDelay = DefaultAdvanceDelay
	}
	if opts.AfterFunc == nil {
		opts.AfterFunc = realAfterFunc
	}
	return &Session{nav: NewNavigator(cat), opts: opts}
}

// SetOnDue replaces the due hook. The terminal UI sets it once the program
// exists.
func (s *Session) SetOnDue(fn func(Ticket)) {
	s.mu.Lock()
	s.opts.OnDue = fn
	s.mu.Unlock()
}

// Catalog returns the catalog being played.
func (s *Session) Catalog() *catalog.Catalog { return s.nav.Catalog() }

// View renders the current state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.View()
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.State()
}

// Pending reports whether an auto-advance is scheduled.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Select answers the current question with optionID and schedules an
// auto-advance, replacing any advance already pending. It reports false
// when the quiz is finished or the option does not belong to the current
// question; the pending advance is left alone in that case.
func (s *Session) Select(optionID string) (Ticket, bool) {
	s.mu.Lock()
	if s.nav.state.Finished {
		s.mu.Unlock()
		return 0, false
	}
	q := s.nav.View().Question
	if !s.nav.RecordAnswer(q.ID, optionID) {
		s.mu.Unlock()
		return 0, false
	}
	s.cancelLocked()
	var t Ticket
	if s.opts.AdvanceDelay > 0 {
		t = s.scheduleLocked()
	}
	st := s.nav.State()
	s.mu.Unlock()

	s.changed(st)
	return t, true
}

func (s *Session) scheduleLocked() Ticket {
	s.seq++
	t := s.seq
	timer := s.opts.AfterFunc(s.opts.AdvanceDelay, func() { s.due(t) })
	s.pending = &pending{ticket: t, timer: timer}
	return t
}

func (s *Session) cancelLocked() {
	if s.pending == nil {
		return
	}
	s.pending.timer.Stop()
	s.pending = nil
}

// due runs on the timer goroutine.
func (s *Session) due(t Ticket) {
	s.mu.Lock()
	onDue := s.opts.OnDue
	current := s.pending != nil && s.pending.ticket == t
	s.mu.Unlock()
	if !current {
		return
	}
	if onDue != nil {
		onDue(t)
		return
	}
	s.Fire(t)
}

// Fire performs the advance scheduled under t. It reports false when t has
// been superseded or cancelled.
func (s *Session) Fire(t Ticket) bool {
	s.mu.Lock()
	if s.pending == nil || s.pending.ticket != t {
		s.mu.Unlock()
		return false
	}
	s.pending = nil
	s.nav.Advance()
	st := s.nav.State()
	s.mu.Unlock()

	s.changed(st)
	return true
}

// Advance moves forward immediately, cancelling any pending auto-advance.
func (s *Session) Advance() {
	s.apply((*Navigator).Advance)
}

// Retreat moves back, cancelling any pending auto-advance.
func (s *Session) Retreat() {
	s.apply((*Navigator).Retreat)
}

// Reset restarts the quiz, cancelling any pending auto-advance.
func (s *Session) Reset() {
	s.apply((*Navigator).Reset)
}

// Cancel drops a pending auto-advance without moving.
func (s *Session) Cancel() {
	s.mu.Lock()
	s.cancelLocked()
	s.mu.Unlock()
}

func (s *Session) apply(fn func(*Navigator)) {
	s.mu.Lock()
	s.cancelLocked()
	fn(s.nav)
	st := s.nav.State()
	s.mu.Unlock()

	s.changed(st)
}

func (s *Session) changed(st State) {
	if s.opts.OnChange != nil {
		s.opts.OnChange(st)
	}
}
