package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/contentquiz/internal/quiz"
	"github.com/abhisek/contentquiz/internal/ui/components"
	"github.com/abhisek/contentquiz/internal/ui/layout"
	"github.com/abhisek/contentquiz/internal/ui/theme"
)

func questionLabel(v qz.View) string {
	return fmt.Sprintf("Question %d of %d", v.Index+1, v.Total)
}

func (s *QuizScreen) View(width, height int) string {
	v := s.session.View()
	cw := layout.ContentWidth(width)

	var b strings.Builder

	bar := components.NewProgressBar(questionLabel(v), v.ProgressPercent, true, cw)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(layout.Wrap(v.Question.Text, cw, theme.Body.Bold(true)))
	b.WriteString("\n")

	if v.Question.Example != "" {
		b.WriteString("\n")
		b.WriteString(theme.Example.Width(cw).Render("Example: " + v.Question.Example))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.options.View(cw))

	if s.session.Pending() {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Moving on..."))
	}

	content := lipgloss.NewStyle().Width(cw).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
