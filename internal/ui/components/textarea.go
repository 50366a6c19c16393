package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/contentquiz/internal/ui/theme"
)

// TextArea is a labelled multi-line bubbles/textarea with an inline error
// line, the free-text sibling of TextInput.
type TextArea struct {
	Label string
	Model textarea.Model
	Err   string
}

// NewTextArea creates a blurred, labelled area of the given visible
// height. charLimit <= 0 means no limit.
func NewTextArea(label, placeholder string, height, charLimit int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = max(charLimit, 0)
	ta.SetHeight(height)
	return TextArea{Label: label, Model: ta}
}

// SetWidth sets the editing width.
func (t *TextArea) SetWidth(w int) {
	t.Model.SetWidth(w)
}

// Focus focuses the area.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// Focused reports whether the area has focus.
func (t TextArea) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages. Enter inserts a line break.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders label, area and error line.
func (t TextArea) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if t.Focused() {
		labelStyle = theme.Selected
	}
	view := labelStyle.Render(t.Label) + "\n" + t.Model.View()
	if t.Err != "" {
		view += "\n" + theme.ErrorText.Render("✗ "+t.Err)
	}
	return view
}

// Value returns the text with lines joined by newlines.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetValue replaces the text.
func (t *TextArea) SetValue(v string) {
	t.Model.SetValue(v)
}
