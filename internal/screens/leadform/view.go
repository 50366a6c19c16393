package leadform

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/contentquiz/internal/lead"
	"github.com/abhisek/contentquiz/internal/ui/components"
	"github.com/abhisek/contentquiz/internal/ui/layout"
	"github.com/abhisek/contentquiz/internal/ui/theme"
)

func (s *LeadFormScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	if cw > 72 {
		cw = 72
	}

	var content string
	switch {
	case s.submitted:
		content = s.renderThanks(cw)
	case s.notice != "":
		content = theme.Notice.Width(cw).Render(s.notice + "\n\n" + theme.Hint.Render("Press any key to go back to the form."))
	default:
		content = s.renderForm(cw)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LeadFormScreen) renderForm(cw int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Get a free consultation"))
	b.WriteString("\n")
	b.WriteString(layout.Wrap("Leave your details and a content specialist will contact you on WhatsApp.", cw, theme.Subtitle))
	b.WriteString("\n\n")

	b.WriteString(s.name.View())
	b.WriteString("\n\n")

	b.WriteString(s.renderCountry())
	b.WriteString("\n")
	b.WriteString(s.phone.View())
	b.WriteString("\n\n")

	b.WriteString(s.website.View())
	b.WriteString("\n\n")

	s.problems.SetWidth(cw)
	b.WriteString(s.problems.View())
	b.WriteString("\n\n")

	if s.submitting {
		b.WriteString(s.spinner.View())
	} else {
		b.WriteString(components.NewButton("Send request", s.focus == focusSubmit).View())
	}

	return lipgloss.NewStyle().Width(cw).Render(b.String())
}

func (s *LeadFormScreen) renderCountry() string {
	c := lead.Countries[lead.CountryIndex(s.country)]
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Country code ")
	value := c.Flag + " " + c.Code + " " + c.Name
	if s.focus == focusCountry {
		return label + theme.Selected.Render("◂ "+value+" ▸")
	}
	return label + theme.Body.Render(value)
}

func (s *LeadFormScreen) renderThanks(cw int) string {
	msg := theme.Title.Render("Thank you!") + "\n\n" +
		layout.Wrap("Your request has been sent. We will reach out on WhatsApp soon.", cw-6, theme.Body) + "\n\n" +
		theme.Hint.Render("Press Enter to go back to your report.")
	return theme.Card.BorderForeground(theme.Success).Width(cw).Render(msg)
}
