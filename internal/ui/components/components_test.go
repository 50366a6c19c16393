package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/contentquiz/internal/catalog"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func listQuestion() catalog.Question {
	return catalog.Question{
		ID:   1,
		Text: "How often do you publish?",
		Options: []catalog.Option{
			{ID: "a", Text: "Rarely", Value: 1},
			{ID: "b", Text: "Monthly", Value: 3},
			{ID: "c", Text: "Weekly", Value: 5},
		},
	}
}

func scaleQuestion() catalog.Question {
	q := catalog.Question{ID: 2, Text: "Rate it"}
	for i := 1; i <= 5; i++ {
		q.Options = append(q.Options, catalog.Option{ID: string(rune('0' + i)), Text: string(rune('0' + i)), Value: i})
	}
	return q
}

func picked(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a pick command")
	}
	msg, ok := cmd().(OptionPickedMsg)
	if !ok {
		t.Fatalf("expected OptionPickedMsg, got %T", cmd())
	}
	return msg.OptionID
}

func TestOptionList_ArrowsAndEnter(t *testing.T) {
	l := NewOptionList(listQuestion(), "")
	if l.Row {
		t.Fatal("text options should render as a list")
	}

	l, _ = l.Update(specialKey(tea.KeyDown))
	l, _ = l.Update(specialKey(tea.KeyDown))
	l, _ = l.Update(specialKey(tea.KeyDown))
	if l.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2 (clamped)", l.Cursor)
	}

	l, cmd := l.Update(specialKey(tea.KeyEnter))
	if id := picked(t, cmd); id != "c" {
		t.Errorf("picked %q, want c", id)
	}
	if l.Chosen != "c" {
		t.Errorf("Chosen = %q, want c", l.Chosen)
	}
}

func TestOptionList_DigitPicks(t *testing.T) {
	l := NewOptionList(listQuestion(), "")

	l, cmd := l.Update(keyPress('2'))
	if id := picked(t, cmd); id != "b" {
		t.Errorf("picked %q, want b", id)
	}
	if l.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", l.Cursor)
	}

	if _, cmd := l.Update(keyPress('9')); cmd != nil {
		t.Error("out-of-range digit should not pick")
	}
}

func TestOptionList_CursorStartsOnChosen(t *testing.T) {
	l := NewOptionList(listQuestion(), "b")
	if l.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", l.Cursor)
	}
}

func TestOptionList_ScaleRendersRow(t *testing.T) {
	l := NewOptionList(scaleQuestion(), "")
	if !l.Row {
		t.Fatal("1-5 scale should render as a row")
	}

	l, _ = l.Update(specialKey(tea.KeyTab))
	if l.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1 after tab", l.Cursor)
	}
	if view := l.View(80); !strings.Contains(view, "weakest") {
		t.Error("scale row should show the scale legend")
	}
}

func TestOptionList_ListView(t *testing.T) {
	view := NewOptionList(listQuestion(), "").View(80)
	for _, want := range []string{"1) Rarely", "2) Monthly", "3) Weekly"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestProgressBar_Filled(t *testing.T) {
	tests := []struct {
		percent float64
		want    int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{150, 20},
		{-5, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar("", tt.percent, false, 20)
		if got := p.Filled(20); got != tt.want {
			t.Errorf("Filled at %v%% = %d, want %d", tt.percent, got, tt.want)
		}
	}
}

func TestProgressBar_View(t *testing.T) {
	view := NewProgressBar("Progress", 40, true, 40).View()
	if !strings.Contains(view, "40%") {
		t.Errorf("view missing percent: %q", view)
	}
}

func TestTextInput_NumericOnly(t *testing.T) {
	in := NewTextInput("Phone", "", true, 0)
	in.Focus()

	for _, r := range "1a2-3" {
		in, _ = in.Update(keyPress(r))
	}
	if got := in.Value(); got != "12-3" {
		t.Errorf("Value = %q, want 12-3", got)
	}
}

func TestTextInput_ErrorLine(t *testing.T) {
	in := NewTextInput("Name", "", false, 0)
	in.Err = "too short"
	if !strings.Contains(in.View(), "too short") {
		t.Error("view should show the error")
	}
}

func TestButton_View(t *testing.T) {
	if !strings.Contains(NewButton("Send", true).View(), "▸ Send") {
		t.Error("active button should show the marker")
	}
}

func TestSpinner_OwnTicksOnly(t *testing.T) {
	s := NewSpinner(1, "Loading")

	s, cmd := s.Update(SpinnerTickMsg{ID: 2})
	if cmd != nil || s.frame != 0 {
		t.Error("spinner should ignore other spinners' ticks")
	}

	s, cmd = s.Update(SpinnerTickMsg{ID: 1})
	if cmd == nil || s.frame != 1 {
		t.Errorf("frame = %d, want 1 with a follow-up tick", s.frame)
	}
	if !strings.Contains(s.View(), "Loading") {
		t.Error("view should include the label")
	}
}

func menuWith(ran *string) []MenuItem {
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Action: func() tea.Cmd {
			*ran = label
			return func() tea.Msg { return nil }
		}}
	}
	closed := item("Request a free consultation")
	closed.Disabled = true
	return []MenuItem{item("Save report"), closed, item("Start over")}
}

func TestMenu_CursorSkipsDisabled(t *testing.T) {
	var ran string
	m := NewMenu(menuWith(&ran))

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 2 {
		t.Fatalf("Selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 2 {
		t.Fatalf("cursor moved past the end: %d", m.Selected)
	}
	m, _ = m.Update(keyPress('k'))
	if m.Selected != 0 {
		t.Fatalf("Selected = %d, want 0", m.Selected)
	}
	if _, cmd := m.Update(specialKey(tea.KeyEnter)); cmd == nil || ran != "Save report" {
		t.Fatalf("Enter ran %q", ran)
	}
}

func TestMenu_DigitShortcuts(t *testing.T) {
	var ran string
	m := NewMenu(menuWith(&ran))

	if _, cmd := m.Update(keyPress('2')); cmd != nil || ran != "" {
		t.Fatalf("disabled item ran: %q", ran)
	}
	m, cmd := m.Update(keyPress('3'))
	if cmd == nil || ran != "Start over" || m.Selected != 2 {
		t.Fatalf("ran %q, Selected %d", ran, m.Selected)
	}
	if _, cmd := m.Update(keyPress('7')); cmd != nil {
		t.Fatal("out-of-range digit should do nothing")
	}
}

func TestMenu_SetItems(t *testing.T) {
	var ran string
	items := menuWith(&ran)
	items[1].Disabled = false

	m := NewMenu(items)
	m.Selected = 2
	m.SetItems(menuWith(&ran))
	if m.Selected != 2 {
		t.Errorf("cursor on an enabled item moved to %d", m.Selected)
	}

	m.Selected = 1
	m.SetItems(menuWith(&ran))
	if m.Selected != 2 {
		t.Errorf("cursor on a closed item went to %d, want the last enabled item", m.Selected)
	}

	view := m.View()
	if !strings.Contains(view, "▸ Start over") || strings.Contains(view, "▸ Request") {
		t.Errorf("view:\n%s", view)
	}
}

func TestTextArea_MultiLine(t *testing.T) {
	ta := NewTextArea("Problems", "Describe", 3, 40)
	ta.Focus()
	for _, r := range "Low reach" {
		ta, _ = ta.Update(keyPress(r))
	}
	ta, _ = ta.Update(specialKey(tea.KeyEnter))
	for _, r := range "no plan" {
		ta, _ = ta.Update(keyPress(r))
	}

	if ta.Value() != "Low reach\nno plan" {
		t.Fatalf("Value = %q", ta.Value())
	}
	ta.Err = "Tell us a little more"
	if view := ta.View(); !strings.Contains(view, "Problems") || !strings.Contains(view, "Tell us a little more") {
		t.Errorf("view:\n%s", view)
	}
}
