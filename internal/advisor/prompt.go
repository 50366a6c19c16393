package advisor

import (
	"fmt"
	"strings"

	"github.com/abhisek/contentquiz/internal/catalog"
	"github.com/abhisek/contentquiz/internal/scoring"
)

const systemPrompt = `You are an experienced content marketing consultant. A business owner has just completed a self-assessment of their content strategy. You give warm, practical advice and never lecture.`

// answered pairs a question with the option chosen for it.
type answered struct {
	Question string
	Answer   string
}

// answeredPairs lists answered questions in catalog order. Answers naming an
// option the question does not have are skipped.
func answeredPairs(cat *catalog.Catalog, answers catalog.Answers) []answered {
	var out []answered
	for _, q := range cat.Questions {
		id, ok := answers[q.ID]
		if !ok {
			continue
		}
		opt, ok := q.Option(id)
		if !ok {
			continue
		}
		out = append(out, answered{Question: q.Text, Answer: opt.Text})
	}
	return out
}

func buildUserMessage(cat *catalog.Catalog, pairs []answered, answers catalog.Answers) string {
	var b strings.Builder

	if cat.Title != "" {
		b.WriteString(fmt.Sprintf("Assessment: %s\n", cat.Title))
	}
	result := scoring.OverallResult(cat, answers)
	b.WriteString(fmt.Sprintf("Overall result: %s\n", result.Title))
	b.WriteString(fmt.Sprintf("Answered %d of %d questions.\n", len(pairs), cat.Len()))

	b.WriteString("\nAnswers:\n")
	for i, p := range pairs {
		b.WriteString(fmt.Sprintf("%d. Question: %s\n   Answer: %s\n", i+1, p.Question, p.Answer))
	}

	b.WriteString("\nWrite a short analysis of about 100 words in total. ")
	b.WriteString("Be encouraging, name what they already do well, ")
	b.WriteString("and give concrete next steps to improve their content strategy.")

	return b.String()
}
