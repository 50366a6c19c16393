package quiz

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/contentquiz/internal/quiz"
	"github.com/abhisek/contentquiz/internal/router"
	"github.com/abhisek/contentquiz/internal/scoring"
	"github.com/abhisek/contentquiz/internal/screen"
	"github.com/abhisek/contentquiz/internal/store"
	"github.com/abhisek/contentquiz/internal/ui/components"
	"github.com/abhisek/contentquiz/internal/ui/layout"
)

// Recorder stores quiz lifecycle events. store.EventRepo satisfies it.
type Recorder interface {
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
}

// FinishFunc builds the screen shown once the quiz is finished.
type FinishFunc func(sessionID string, state qz.State) screen.Screen

// QuizScreen walks the user through the catalog one question at a time.
type QuizScreen struct {
	session   *qz.Session
	sessionID string
	action    string
	recorder  Recorder
	finish    FinishFunc

	options    components.OptionList
	questionID int
	done       bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for session. action is recorded as the start
// event (store.ActionStart or store.ActionRestart); recorder may be nil.
func New(session *qz.Session, sessionID, action string, recorder Recorder, finish FinishFunc) *QuizScreen {
	s := &QuizScreen{
		session:   session,
		sessionID: sessionID,
		action:    action,
		recorder:  recorder,
		finish:    finish,
	}
	s.sync()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.record(s.action, qz.NewState())
}

func (s *QuizScreen) Title() string {
	return s.session.Catalog().Title
}

// Status shows the position in the catalog.
func (s *QuizScreen) Status() string {
	v := s.session.View()
	return questionLabel(v)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	v := s.session.View()
	nav := "↑↓"
	if s.options.Row {
		nav = "Tab"
	}
	hints := []layout.KeyHint{
		{Key: nav, Description: "Move"},
		{Key: "Enter/1-9", Description: "Answer"},
	}
	if v.Index > 0 {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Back"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "→", Description: "Skip"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
	return hints
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}

	switch msg := msg.(type) {
	case DueMsg:
		s.session.Fire(msg.Ticket)
		return s.afterChange()

	case components.OptionPickedMsg:
		if _, ok := s.session.Select(msg.OptionID); !ok {
			return s, nil
		}
		return s.afterChange()

	case recordedMsg:
		if msg.Err != nil {
			slog.Warn("failed to record session event", "session", s.sessionID, "error", msg.Err)
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "backspace":
			s.session.Retreat()
			return s.afterChange()
		case "right":
			s.session.Advance()
			return s.afterChange()
		}
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		return s, cmd
	}

	return s, nil
}

// afterChange refreshes the option list and leaves for the report once the
// quiz is finished.
func (s *QuizScreen) afterChange() (screen.Screen, tea.Cmd) {
	st := s.session.State()
	if !st.Finished {
		s.sync()
		return s, nil
	}

	s.done = true
	next := s.finish(s.sessionID, st)
	return s, tea.Batch(
		s.record(store.ActionFinish, st),
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} },
	)
}

// sync rebuilds the option list when the current question changed and
// keeps the chosen highlight in step with the session.
func (s *QuizScreen) sync() {
	v := s.session.View()
	if v.Question.ID != s.questionID || len(s.options.Options) == 0 {
		s.options = components.NewOptionList(v.Question, v.Selected)
		s.questionID = v.Question.ID
		return
	}
	s.options.Chosen = v.Selected
}

func (s *QuizScreen) record(action string, st qz.State) tea.Cmd {
	if s.recorder == nil {
		return nil
	}
	cat := s.session.Catalog()
	data := store.SessionEventData{
		SessionID:      s.sessionID,
		Action:         action,
		CatalogVersion: cat.Version,
		Answered:       len(st.Answers),
		Total:          cat.Len(),
	}
	if action == store.ActionFinish {
		result := scoring.OverallResult(cat, st.Answers)
		data.ResultCategory = string(result.Category)
		data.ResultTitle = result.Title
	}
	rec := s.recorder
	return func() tea.Msg {
		return recordedMsg{Err: rec.AppendSessionEvent(context.Background(), data)}
	}
}
