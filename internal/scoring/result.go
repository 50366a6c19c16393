package scoring

import "github.com/abhisek/contentquiz/internal/catalog"

// DefaultResult is returned when the catalog has neither a matching rule nor
// a fallback.
var DefaultResult = catalog.Result{
	Title:       "Assessment complete",
	Description: "Review the feedback for each question below.",
	Category:    catalog.CategoryInfo,
}

// Tally aggregates an answer set against the catalog. Answers that do not
// name a valid option of a catalog question are ignored.
type Tally struct {
	Total    int // questions in the catalog
	Answered int
	Weak     int // value <= 2
	Strong   int // value >= 4
	Sum      int
}

// AnsweredShare is Answered/Total, or 0 for an empty catalog.
func (t Tally) AnsweredShare() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Answered) / float64(t.Total)
}

// WeakShare is Weak/Answered, or 0 when nothing is answered.
func (t Tally) WeakShare() float64 {
	if t.Answered == 0 {
		return 0
	}
	return float64(t.Weak) / float64(t.Answered)
}

// StrongShare is Strong/Answered, or 0 when nothing is answered.
func (t Tally) StrongShare() float64 {
	if t.Answered == 0 {
		return 0
	}
	return float64(t.Strong) / float64(t.Answered)
}

// Mean is the average answered value, or 0 when nothing is answered.
func (t Tally) Mean() float64 {
	if t.Answered == 0 {
		return 0
	}
	return float64(t.Sum) / float64(t.Answered)
}

// TallyAnswers counts the answer set against the catalog.
func TallyAnswers(c *catalog.Catalog, answers catalog.Answers) Tally {
	t := Tally{Total: c.Len()}
	for _, q := range c.Questions {
		opt, ok := q.Option(answers[q.ID])
		if !ok {
			continue
		}
		t.Answered++
		t.Sum += opt.Value
		switch ToneFor(opt.Value) {
		case ToneLow:
			t.Weak++
		case ToneHigh:
			t.Strong++
		}
	}
	return t
}

// OverallResult classifies the whole answer set with the catalog's rules.
// It never fails: with no matching rule it falls back to the catalog
// fallback, then to DefaultResult.
func OverallResult(c *catalog.Catalog, answers catalog.Answers) catalog.Result {
	t := TallyAnswers(c, answers)
	for _, rule := range c.Results.Rules {
		if Matches(rule.When, t) {
			return rule.Result
		}
	}
	if c.Results.Fallback != nil {
		return *c.Results.Fallback
	}
	return DefaultResult
}

// Matches reports whether every predicate set on cond holds for t.
func Matches(cond catalog.Condition, t Tally) bool {
	if cond.MinAnswered != nil && t.Answered < *cond.MinAnswered {
		return false
	}
	if cond.MaxAnswered != nil && t.Answered > *cond.MaxAnswered {
		return false
	}
	if cond.MaxAnsweredShare != nil && t.AnsweredShare() > *cond.MaxAnsweredShare {
		return false
	}
	if cond.MinWeak != nil && t.Weak < *cond.MinWeak {
		return false
	}
	if cond.MaxWeak != nil && t.Weak > *cond.MaxWeak {
		return false
	}
	if cond.MinWeakShare != nil && t.WeakShare() < *cond.MinWeakShare {
		return false
	}
	if cond.MinStrongShare != nil && t.StrongShare() < *cond.MinStrongShare {
		return false
	}
	if cond.MinMean != nil && t.Mean() < *cond.MinMean {
		return false
	}
	if cond.MaxMean != nil && t.Mean() > *cond.MaxMean {
		return false
	}
	return true
}
