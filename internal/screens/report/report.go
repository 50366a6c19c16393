package report

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/contentquiz/internal/advisor"
	"github.com/abhisek/contentquiz/internal/catalog"
	"github.com/abhisek/contentquiz/internal/llm"
	rpt "github.com/abhisek/contentquiz/internal/report"
	"github.com/abhisek/contentquiz/internal/router"
	"github.com/abhisek/contentquiz/internal/scoring"
	"github.com/abhisek/contentquiz/internal/screen"
	"github.com/abhisek/contentquiz/internal/screens/leadform"
	"github.com/abhisek/contentquiz/internal/ui/components"
	"github.com/abhisek/contentquiz/internal/ui/layout"
)

// Options wires the report screen to the rest of the app.
type Options struct {
	// SessionID tags the advisory call so it can be found with
	// "llm list --session".
	SessionID string
	Advisor   *advisor.Advisor
	ExportDir string

	// LeadForm builds the consultation form. Nil hides the action.
	LeadForm func() screen.Screen

	// Restart builds a fresh quiz screen.
	Restart func() screen.Screen

	Now func() time.Time
}

type adviceMsg struct {
	Text string
}

type exportedMsg struct {
	Path string
	Err  error
}

const adviceSpinnerID = 1

// ReportScreen shows the overall result, the per-question feedback and the
// follow-up actions.
type ReportScreen struct {
	cat     *catalog.Catalog
	answers catalog.Answers
	report  scoring.Report
	opts    Options

	advice        string
	adviceLoading bool
	spinner       components.Spinner

	menu      components.Menu
	leadSent  bool
	exportMsg string
	exportErr bool
	scroll    int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New builds the report for answers. The result is computed here, every
// time the report is shown.
func New(cat *catalog.Catalog, answers catalog.Answers, opts Options) *ReportScreen {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &ReportScreen{
		cat:           cat,
		answers:       answers.Clone(),
		report:        scoring.BuildReport(cat, answers),
		opts:          opts,
		adviceLoading: true,
		spinner:       components.NewSpinner(adviceSpinnerID, "Preparing your personalised analysis..."),
	}
	s.menu = components.NewMenu(s.menuItems())
	return s
}

func (s *ReportScreen) menuItems() []components.MenuItem {
	lead := components.MenuItem{Label: "Request a free consultation", Action: s.leadCmd, Disabled: s.opts.LeadForm == nil}
	if s.leadSent {
		lead = components.MenuItem{Label: "Consultation requested ✓", Disabled: true}
	}
	return []components.MenuItem{
		{Label: "Save report (Markdown)", Action: s.exportCmd(rpt.FormatMarkdown)},
		{Label: "Save report (spreadsheet)", Action: s.exportCmd(rpt.FormatXLSX)},
		lead,
		{Label: "Start over", Action: s.restartCmd},
	}
}

// markLeadSent closes the consultation action and moves the cursor to
// "Start over" if it was resting on it.
func (s *ReportScreen) markLeadSent() {
	s.leadSent = true
	s.menu.SetItems(s.menuItems())
}

func (s *ReportScreen) Init() tea.Cmd {
	cat, answers, adv := s.cat, s.answers, s.opts.Advisor
	ctx := llm.WithSession(context.Background(), s.opts.SessionID)
	return tea.Batch(
		s.spinner.Tick(),
		func() tea.Msg {
			return adviceMsg{Text: adv.Advise(ctx, cat, answers)}
		},
	)
}

func (s *ReportScreen) Title() string {
	return "Your report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case adviceMsg:
		s.advice = msg.Text
		s.adviceLoading = false
		return s, nil

	case leadform.SentMsg:
		s.markLeadSent()
		return s, nil

	case exportedMsg:
		if msg.Err != nil {
			s.exportMsg = "Could not save the report: " + msg.Err.Error()
			s.exportErr = true
		} else {
			s.exportMsg = "Report saved to " + msg.Path
			s.exportErr = false
		}
		return s, nil

	case components.SpinnerTickMsg:
		if !s.adviceLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "pgdown", "ctrl+d":
			s.scroll += 5
			return s, nil
		case "pgup", "ctrl+u":
			s.scroll -= 5
			if s.scroll < 0 {
				s.scroll = 0
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

// Report returns the report being shown.
func (s *ReportScreen) Report() scoring.Report {
	return s.report
}

func (s *ReportScreen) document() rpt.Document {
	return rpt.Document{
		Report:         s.report,
		CatalogVersion: s.cat.Version,
		Advice:         s.advice,
		GeneratedAt:    s.opts.Now(),
	}
}

func (s *ReportScreen) exportCmd(format rpt.Format) func() tea.Cmd {
	return func() tea.Cmd {
		doc := s.document()
		path := filepath.Join(s.opts.ExportDir, rpt.DefaultFileName(format, doc.GeneratedAt))
		return func() tea.Msg {
			if err := rpt.Export(path, format, doc); err != nil {
				return exportedMsg{Err: fmt.Errorf("%s: %w", path, err)}
			}
			return exportedMsg{Path: path}
		}
	}
}

func (s *ReportScreen) leadCmd() tea.Cmd {
	if s.opts.LeadForm == nil {
		return nil
	}
	form := s.opts.LeadForm()
	return func() tea.Msg { return router.PushScreenMsg{Screen: form} }
}

func (s *ReportScreen) restartCmd() tea.Cmd {
	if s.opts.Restart == nil {
		return nil
	}
	next := s.opts.Restart()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
