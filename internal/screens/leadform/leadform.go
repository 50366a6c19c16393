package leadform

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/contentquiz/internal/lead"
	"github.com/abhisek/contentquiz/internal/router"
	"github.com/abhisek/contentquiz/internal/screen"
	"github.com/abhisek/contentquiz/internal/ui/components"
	"github.com/abhisek/contentquiz/internal/ui/layout"
)

// Focus positions, top to bottom.
const (
	focusName = iota
	focusCountry
	focusPhone
	focusWebsite
	focusProblems
	focusSubmit
	focusCount
)

const submitSpinnerID = 2

type submittedMsg struct {
	Err error
}

// SentMsg is emitted once a request has been delivered. Screens below the
// form receive it too and can close their consultation actions.
type SentMsg struct{}

// LeadFormScreen collects a consultation request.
type LeadFormScreen struct {
	submitter *lead.Submitter
	sessionID string

	name     components.TextInput
	phone    components.TextInput
	website  components.TextInput
	problems components.TextArea
	country  string

	focus      int
	submitting bool
	submitted  bool
	notice     string
	spinner    components.Spinner
}

var _ screen.Screen = (*LeadFormScreen)(nil)
var _ screen.KeyHintProvider = (*LeadFormScreen)(nil)
var _ screen.EscapeHandler = (*LeadFormScreen)(nil)

// New creates an empty form that submits through submitter.
func New(submitter *lead.Submitter, sessionID string) *LeadFormScreen {
	s := &LeadFormScreen{
		submitter: submitter,
		sessionID: sessionID,
		name:      components.NewTextInput("Full name", "e.g. Ahmed Ali", false, 80),
		phone:     components.NewTextInput("WhatsApp number", "e.g. 1001234567", true, 20),
		website:   components.NewTextInput("Website or social page", "e.g. www.example.com", false, 200),
		problems:  components.NewTextArea("What would you like help with?", "Describe your main problem or goal", 4, 500),
		country:   lead.DefaultCountryCode,
		spinner:   components.NewSpinner(submitSpinnerID, "Sending your request..."),
	}
	return s
}

func (s *LeadFormScreen) Init() tea.Cmd {
	return s.setFocus(focusName)
}

func (s *LeadFormScreen) Title() string {
	return "Free consultation"
}

func (s *LeadFormScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.submitted:
		return []layout.KeyHint{{Key: "Enter", Description: "Back to report"}}
	case s.notice != "":
		return []layout.KeyHint{{Key: "any key", Description: "Dismiss"}}
	case s.focus == focusCountry:
		return []layout.KeyHint{
			{Key: "←→", Description: "Country code"},
			{Key: "Tab", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	case s.focus == focusProblems:
		return []layout.KeyHint{
			{Key: "Enter", Description: "New line"},
			{Key: "Tab", Description: "Next"},
			{Key: "Ctrl+S", Description: "Send"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab/↓", Description: "Next"},
		{Key: "Shift+Tab/↑", Description: "Previous"},
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

// HandlesEscape keeps Esc for dismissing the notice.
func (s *LeadFormScreen) HandlesEscape() bool {
	return s.notice != ""
}

// Form returns the form as currently typed.
func (s *LeadFormScreen) Form() lead.Form {
	return lead.Form{
		Name:        s.name.Value(),
		CountryCode: s.country,
		LocalPhone:  s.phone.Value(),
		Website:     s.website.Value(),
		Problems:    s.problems.Value(),
	}
}

func (s *LeadFormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		return s.handleSubmitted(msg)

	case SentMsg:
		return s, nil

	case components.SpinnerTickMsg:
		if !s.submitting {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s.forward(msg)
}

func (s *LeadFormScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.submitting {
		return s, nil
	}
	if s.submitted {
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}
	if s.notice != "" {
		s.notice = ""
		return s, nil
	}

	key := msg.String()
	if s.focus == focusProblems {
		// Arrows and Enter edit the free text.
		switch key {
		case "up", "down", "enter":
			return s.forward(msg)
		}
	}

	switch key {
	case "ctrl+s":
		return s.submit()
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % focusCount)
	case "shift+tab", "up":
		return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
	case "enter":
		if s.focus == focusSubmit {
			return s.submit()
		}
		return s, s.setFocus(s.focus + 1)
	}

	if s.focus == focusCountry {
		switch msg.String() {
		case "left":
			s.country = lead.NextCountry(s.country, -1)
		case "right", "space":
			s.country = lead.NextCountry(s.country, 1)
		}
		return s, nil
	}

	return s.forward(msg)
}

// forward passes msg to the focused field and clears its stale error.
func (s *LeadFormScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.focus == focusProblems {
		before := s.problems.Value()
		var cmd tea.Cmd
		s.problems, cmd = s.problems.Update(msg)
		if s.problems.Value() != before {
			s.problems.Err = ""
		}
		return s, cmd
	}
	in := s.focusedInput()
	if in == nil {
		return s, nil
	}
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if in.Value() != before {
		in.Err = ""
	}
	return s, cmd
}

func (s *LeadFormScreen) focusedInput() *components.TextInput {
	switch s.focus {
	case focusName:
		return &s.name
	case focusPhone:
		return &s.phone
	case focusWebsite:
		return &s.website
	}
	return nil
}

func (s *LeadFormScreen) setFocus(f int) tea.Cmd {
	for _, in := range []*components.TextInput{&s.name, &s.phone, &s.website} {
		in.Blur()
	}
	s.problems.Blur()
	s.focus = f
	if f == focusProblems {
		return s.problems.Focus()
	}
	if in := s.focusedInput(); in != nil {
		return in.Focus()
	}
	return nil
}

func (s *LeadFormScreen) submit() (screen.Screen, tea.Cmd) {
	form := s.Form()
	errs := form.Validate()
	s.name.Err = errs[lead.FieldName]
	s.phone.Err = errs[lead.FieldWhatsApp]
	s.website.Err = errs[lead.FieldWebsite]
	s.problems.Err = errs[lead.FieldProblems]
	if len(errs) > 0 {
		return s, s.focusFirstError(errs)
	}

	s.submitting = true
	submitter, sessionID := s.submitter, s.sessionID
	return s, tea.Batch(
		s.spinner.Tick(),
		func() tea.Msg {
			return submittedMsg{Err: submitter.Submit(context.Background(), sessionID, form)}
		},
	)
}

func (s *LeadFormScreen) focusFirstError(errs lead.FieldErrors) tea.Cmd {
	order := []struct {
		field lead.Field
		focus int
	}{
		{lead.FieldName, focusName},
		{lead.FieldWhatsApp, focusPhone},
		{lead.FieldWebsite, focusWebsite},
		{lead.FieldProblems, focusProblems},
	}
	for _, o := range order {
		if _, bad := errs[o.field]; bad {
			return s.setFocus(o.focus)
		}
	}
	return nil
}

func (s *LeadFormScreen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	switch {
	case msg.Err == nil:
		s.submitted = true
		return s, func() tea.Msg { return SentMsg{} }
	case errors.Is(msg.Err, lead.ErrNoEndpoint):
		s.notice = "Consultation requests are not set up yet. Please try again later."
	case errors.Is(msg.Err, lead.ErrTooSoon):
		s.notice = "You just sent a request. Please wait a moment before sending another."
	default:
		s.notice = "Sorry, we could not send your request. Check your connection and try again."
	}
	return s, nil
}
