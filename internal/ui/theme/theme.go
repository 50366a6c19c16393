package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/contentquiz/internal/catalog"
	"github.com/abhisek/contentquiz/internal/scoring"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Info      = lipgloss.Color("#38BDF8") // Sky
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	// Example is the box under a question that shows an illustration.
	Example = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Secondary).
		Foreground(TextDim).
		Italic(true).
		PaddingLeft(1)

	// Notice is a blocking message box, used for transport failures.
	Notice = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Error).
		Foreground(Text).
		Padding(0, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	// Chosen marks the answer already recorded for a question.
	Chosen = lipgloss.NewStyle().
		Foreground(Text).
		Background(Primary).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// CategoryColor returns the colour of an overall result category.
func CategoryColor(c catalog.Category) color.Color {
	switch c {
	case catalog.CategorySuccess:
		return Success
	case catalog.CategoryWarning:
		return Warning
	case catalog.CategoryDanger:
		return Error
	default:
		return Info
	}
}

// ToneColor returns the badge colour for a per-question score.
func ToneColor(t scoring.Tone) color.Color {
	switch t {
	case scoring.ToneHigh:
		return Success
	case scoring.ToneLow:
		return Error
	default:
		return Warning
	}
}

// Badge renders a "4/5" score badge in the tone colour.
func Badge(text string, t scoring.Tone) string {
	return lipgloss.NewStyle().
		Foreground(BgDark).
		Background(ToneColor(t)).
		Bold(true).
		Padding(0, 1).
		Render(text)
}
