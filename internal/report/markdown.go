package report

import (
	"fmt"
	"strings"

	"github.com/abhisek/contentquiz/internal/scoring"
)

var toneLabel = map[scoring.Tone]string{
	scoring.ToneLow:  "needs work",
	scoring.ToneMid:  "fair",
	scoring.ToneHigh: "strong",
}

// Markdown renders doc as a Markdown document.
func Markdown(doc Document) string {
	r := doc.Report
	var b strings.Builder

	title := r.Title
	if title == "" {
		title = "Assessment report"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if !doc.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "_Generated %s", doc.GeneratedAt.Format("2006-01-02 15:04"))
		if doc.CatalogVersion != "" {
			fmt.Fprintf(&b, " · catalog %s", doc.CatalogVersion)
		}
		b.WriteString("_\n\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", r.Result.Title)
	if r.Result.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", r.Result.Description)
	}
	fmt.Fprintf(&b, "Answered %d of %d questions", r.Tally.Answered, r.Tally.Total)
	if r.Tally.Answered > 0 {
		fmt.Fprintf(&b, ", average score %.1f/5", r.Tally.Mean())
	}
	b.WriteString(".\n\n")

	if len(r.Rows) > 0 {
		b.WriteString("## Detailed feedback\n\n")
	}
	for i, row := range r.Rows {
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, row.Question.Text)
		fmt.Fprintf(&b, "- **Your answer:** %s (%d/5, %s)\n", row.Answer.Text, row.Feedback.Value, toneLabel[row.Tone])
		fmt.Fprintf(&b, "- **Diagnosis:** %s\n", row.Feedback.Bracket.Diagnosis)
		fmt.Fprintf(&b, "- **Recommendation:** %s\n\n", row.Feedback.Bracket.Recommendation)
	}

	if advice := strings.TrimSpace(doc.Advice); advice != "" {
		fmt.Fprintf(&b, "## Advisor notes\n\n%s\n", advice)
	}

	return b.String()
}
