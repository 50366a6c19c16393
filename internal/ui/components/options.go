package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/contentquiz/internal/catalog"
	"github.com/abhisek/contentquiz/internal/ui/theme"
)

// OptionPickedMsg is emitted when the user picks an option.
type OptionPickedMsg struct {
	OptionID string
}

// OptionList is the answer picker for one question. Questions on a 1-5
// scale render as a single row, others as a vertical list.
type OptionList struct {
	Options []catalog.Option
	Row     bool
	Cursor  int
	Chosen  string // option id already recorded, "" if none
}

// NewOptionList creates a picker for q. The cursor starts on the chosen
// option when there is one.
func NewOptionList(q catalog.Question, chosen string) OptionList {
	l := OptionList{
		Options: q.Options,
		Row:     q.IsNumericScale(),
		Chosen:  chosen,
	}
	for i, o := range q.Options {
		if o.ID == chosen {
			l.Cursor = i
		}
	}
	return l
}

// Update moves the cursor and picks options. Digits 1-9 pick directly.
func (l OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(l.Options) == 0 {
		return l, nil
	}

	prev, next := "up", "down"
	if l.Row {
		prev, next = "shift+tab", "tab"
	}

	switch key := kmsg.String(); key {
	case prev, "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
	case next, "j":
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
	case "enter", "space":
		return l, l.pick(l.Cursor)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(l.Options) {
			l.Cursor = n - 1
			return l, l.pick(l.Cursor)
		}
	}
	return l, nil
}

func (l *OptionList) pick(i int) tea.Cmd {
	id := l.Options[i].ID
	l.Chosen = id
	return func() tea.Msg { return OptionPickedMsg{OptionID: id} }
}

// View renders the options for the given width.
func (l OptionList) View(width int) string {
	if l.Row {
		return l.rowView()
	}

	var b strings.Builder
	for i, o := range l.Options {
		prefix := "  "
		if i == l.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, o.Text)
		style := theme.Unselected
		switch {
		case o.ID == l.Chosen:
			style = theme.Chosen
		case i == l.Cursor:
			style = theme.Selected
		}
		b.WriteString(style.MaxWidth(width).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (l OptionList) rowView() string {
	cells := make([]string, 0, len(l.Options))
	for i, o := range l.Options {
		style := theme.ButtonInactive
		if o.ID == l.Chosen {
			style = theme.ButtonActive
		} else if i == l.Cursor {
			style = style.BorderForeground(theme.Primary)
		}
		cells = append(cells, style.Render(o.Text))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, cells...)
	scale := lipgloss.NewStyle().Foreground(theme.TextDim).Render("1 = weakest   5 = strongest")
	return row + "\n" + scale
}
