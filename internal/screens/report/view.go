package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/contentquiz/internal/ui/layout"
	"github.com/abhisek/contentquiz/internal/ui/theme"
)

func (s *ReportScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	body := s.renderBody(cw)

	lines := strings.Split(body, "\n")
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	visible := strings.Join(lines[s.scroll:end], "\n")

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Width(cw).Render(visible))
}

// renderBody lays out the whole report; View scrolls through it. The
// actions come first so they are visible without scrolling.
func (s *ReportScreen) renderBody(cw int) string {
	r := s.report
	var b strings.Builder

	resultStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.CategoryColor(r.Result.Category)).
		Padding(0, 2).
		Width(cw)
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.CategoryColor(r.Result.Category)).Render(r.Result.Title)
	summary := fmt.Sprintf("Answered %d of %d questions", r.Tally.Answered, r.Tally.Total)
	if r.Tally.Answered > 0 {
		summary += fmt.Sprintf(" · average %.1f/5", r.Tally.Mean())
	}
	b.WriteString(resultStyle.Render(title + "\n\n" + r.Result.Description + "\n\n" + theme.Subtitle.Render(summary)))
	b.WriteString("\n\n")

	b.WriteString(s.menu.View())
	if s.exportMsg != "" {
		style := theme.Hint
		if s.exportErr {
			style = theme.ErrorText
		}
		b.WriteString(style.Render(s.exportMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Title.Render("Advisor notes"))
	b.WriteString("\n")
	if s.adviceLoading {
		b.WriteString(s.spinner.View())
	} else {
		b.WriteString(layout.Wrap(s.advice, cw, theme.Body))
	}
	b.WriteString("\n\n")

	if len(r.Rows) > 0 {
		b.WriteString(theme.Title.Render("Detailed feedback"))
		b.WriteString("\n\n")
	}
	for i, row := range r.Rows {
		badge := theme.Badge(fmt.Sprintf("%d/5", row.Feedback.Value), row.Tone)
		heading := fmt.Sprintf("%d. %s", i+1, row.Question.Text)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, badge, " ", layout.Wrap(heading, cw-8, theme.Body.Bold(true))))
		b.WriteString("\n")
		b.WriteString(layout.Wrap("Your answer: "+row.Answer.Text, cw, theme.Subtitle))
		b.WriteString("\n")
		b.WriteString(layout.Wrap("Diagnosis: "+row.Feedback.Bracket.Diagnosis, cw, theme.Body))
		b.WriteString("\n")
		b.WriteString(layout.Wrap("Recommendation: "+row.Feedback.Bracket.Recommendation, cw, lipgloss.NewStyle().Foreground(theme.Secondary)))
		b.WriteString("\n\n")
	}

	return b.String()
}
