package quiz

import "github.com/abhisek/contentquiz/internal/catalog"

// State is the mutable part of a quiz run.
type State struct {
	// CurrentIndex points into the catalog's question list. It stays in
	// [0, n) and is left on the last question once Finished is set.
	CurrentIndex int

	// Answers maps question id to the chosen option id.
	Answers catalog.Answers

	// Finished is set by advancing past the last question.
	Finished bool
}

// NewState returns the initial state {0, {}, false}.
func NewState() State {
	return State{Answers: catalog.Answers{}}
}

// Navigator owns the quiz state transitions for one catalog. It is not safe
// for concurrent use; Session wraps it with a mutex.
type Navigator struct {
	cat   *catalog.Catalog
	state State
}

// NewNavigator returns a Navigator in the initial state. The catalog must
// hold at least one question; catalog.Parse rejects empty catalogs.
func NewNavigator(cat *catalog.Catalog) *Navigator {
	return &Navigator{cat: cat, state: NewState()}
}

// Catalog returns the catalog being navigated.
func (n *Navigator) Catalog() *catalog.Catalog { return n.cat }

// State returns a copy of the current state. The answer map is cloned.
func (n *Navigator) State() State {
	s := n.state
	s.Answers = n.state.Answers.Clone()
	return s
}

// RecordAnswer stores optionID against questionID, replacing any earlier
// answer. It reports false and changes nothing when the option does not
// belong to the question.
func (n *Navigator) RecordAnswer(questionID int, optionID string) bool {
	q, ok := n.cat.Question(questionID)
	if !ok || !q.HasOption(optionID) {
		return false
	}
	n.state.Answers[questionID] = optionID
	return true
}

// Advance moves to the next question, or finishes the quiz when on the last
// one. It is a no-op once finished. Unanswered questions do not block it.
func (n *Navigator) Advance() {
	if n.state.Finished {
		return
	}
	if n.state.CurrentIndex >= n.cat.Len()-1 {
		n.state.Finished = true
		return
	}
	n.state.CurrentIndex++
}

// Retreat moves to the previous question. It is a no-op on the first
// question and once finished.
func (n *Navigator) Retreat() {
	if n.state.Finished || n.state.CurrentIndex == 0 {
		return
	}
	n.state.CurrentIndex--
}

// Reset returns to the initial state.
func (n *Navigator) Reset() {
	n.state = NewState()
}
