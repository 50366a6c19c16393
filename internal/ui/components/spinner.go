package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/contentquiz/internal/ui/theme"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerTickMsg advances a Spinner.
type SpinnerTickMsg struct {
	ID int
}

// Spinner is a small loading indicator. Several may run at once; each
// only reacts to its own ticks.
type Spinner struct {
	ID    int
	Label string
	frame int
}

// NewSpinner creates a spinner with the given id and label.
func NewSpinner(id int, label string) Spinner {
	return Spinner{ID: id, Label: label}
}

// Tick schedules the next frame.
func (s Spinner) Tick() tea.Cmd {
	id := s.ID
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return SpinnerTickMsg{ID: id}
	})
}

// Update advances the frame on its own tick and schedules the next one.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	if m, ok := msg.(SpinnerTickMsg); ok && m.ID == s.ID {
		s.frame = (s.frame + 1) % len(spinnerFrames)
		return s, s.Tick()
	}
	return s, nil
}

// View renders the current frame and label.
func (s Spinner) View() string {
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(spinnerFrames[s.frame]) +
		" " + theme.Hint.Render(s.Label)
}
