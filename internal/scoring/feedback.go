package scoring

import "github.com/abhisek/contentquiz/internal/catalog"

// Tone buckets an option value for display.
type Tone string

const (
	ToneLow  Tone = "low"  // value <= 2
	ToneMid  Tone = "mid"  // value == 3
	ToneHigh Tone = "high" // value >= 4
)

// ToneFor returns the display tone of an option value.
func ToneFor(value int) Tone {
	switch {
	case value >= 4:
		return ToneHigh
	case value <= 2:
		return ToneLow
	default:
		return ToneMid
	}
}

// Feedback is the resolved diagnosis for one answered question.
type Feedback struct {
	Value   int
	Bracket catalog.Bracket
}

// FeedbackFor resolves the feedback bracket for the answer recorded against q.
// It reports false when q is unanswered, when the recorded option is not one
// of q's options, or when no bracket contains the option's value. The first
// bracket containing the value wins.
func FeedbackFor(q catalog.Question, answers catalog.Answers) (Feedback, bool) {
	optID, ok := answers[q.ID]
	if !ok {
		return Feedback{}, false
	}
	opt, ok := q.Option(optID)
	if !ok {
		return Feedback{}, false
	}
	for _, b := range q.Feedback {
		if b.Contains(opt.Value) {
			return Feedback{Value: opt.Value, Bracket: b}, true
		}
	}
	return Feedback{}, false
}

// Row is one line of the per-question report.
type Row struct {
	Question catalog.Question
	Answer   catalog.Option
	Feedback Feedback
	Tone     Tone
}

// Report is everything the result screen and the exporters render.
type Report struct {
	Title  string
	Result catalog.Result
	Rows   []Row
	Tally  Tally
}

// BuildReport resolves the overall result and the feedback rows in catalog
// order. Questions without feedback are left out.
func BuildReport(c *catalog.Catalog, answers catalog.Answers) Report {
	r := Report{
		Title:  c.Title,
		Result: OverallResult(c, answers),
		Tally:  TallyAnswers(c, answers),
	}
	for _, q := range c.Questions {
		fb, ok := FeedbackFor(q, answers)
		if !ok {
			continue
		}
		opt, _ := q.Option(answers[q.ID])
		r.Rows = append(r.Rows, Row{
			Question: q,
			Answer:   opt,
			Feedback: fb,
			Tone:     ToneFor(fb.Value),
		})
	}
	return r
}
