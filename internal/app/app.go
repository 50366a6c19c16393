package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/contentquiz/internal/advisor"
	"github.com/abhisek/contentquiz/internal/catalog"
	"github.com/abhisek/contentquiz/internal/lead"
	qz "github.com/abhisek/contentquiz/internal/quiz"
	"github.com/abhisek/contentquiz/internal/router"
	"github.com/abhisek/contentquiz/internal/screen"
	"github.com/abhisek/contentquiz/internal/screens/leadform"
	quizscreen "github.com/abhisek/contentquiz/internal/screens/quiz"
	reportscreen "github.com/abhisek/contentquiz/internal/screens/report"
	"github.com/abhisek/contentquiz/internal/store"
	"github.com/abhisek/contentquiz/internal/ui/layout"
)

// Deps are the collaborators the terminal UI needs. Events, Advisor and
// Leads may be nil.
type Deps struct {
	Catalog   *catalog.Catalog
	Session   qz.Options
	Events    store.EventRepo
	Advisor   *advisor.Advisor
	Leads     *lead.Submitter
	ExportDir string
}

// flow builds screens and carries the one quiz session they share.
type flow struct {
	deps    Deps
	session *qz.Session
	newID   func() string
}

func (f *flow) quiz(action string) screen.Screen {
	var rec quizscreen.Recorder
	if f.deps.Events != nil {
		rec = f.deps.Events
	}
	return quizscreen.New(f.session, f.newID(), action, rec, f.report)
}

func (f *flow) report(sessionID string, st qz.State) screen.Screen {
	opts := reportscreen.Options{
		SessionID: sessionID,
		Advisor:   f.deps.Advisor,
		ExportDir: f.deps.ExportDir,
		Restart: func() screen.Screen {
			f.session.Reset()
			return f.quiz(store.ActionRestart)
		},
	}
	if f.deps.Leads != nil && f.deps.Leads.Configured() {
		leads := f.deps.Leads
		opts.LeadForm = func() screen.Screen { return leadform.New(leads, sessionID) }
	}
	return reportscreen.New(f.session.Catalog(), st.Answers, opts)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *qz.Session
	width   int
	height  int
}

// newAppModel creates the model with the quiz as its first screen.
func newAppModel(deps Deps) AppModel {
	f := &flow{
		deps:    deps,
		session: qz.NewSession(deps.Catalog, deps.Session),
		newID:   uuid.NewString,
	}
	return AppModel{
		router:  router.New(f.quiz(store.ActionStart)),
		session: f.session,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.session.Cancel()
			return m, tea.Quit
		case "esc":
			if eh, ok := m.router.Active().(screen.EscapeHandler); ok && eh.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	var footerHints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = kp.KeyHints()
		}
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(deps Deps) error {
	model := newAppModel(deps)
	p := tea.NewProgram(model)

	// Auto-advance timers fire on their own goroutine; hand the ticket to
	// the event loop so the quiz screen advances in order with key input.
	model.session.SetOnDue(func(t qz.Ticket) {
		p.Send(quizscreen.DueMsg{Ticket: t})
	})

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
