package catalog

import "fmt"

// Severity ranks a lint issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is an authoring defect found by Lint.
type Issue struct {
	QuestionID int // 0 when the issue is catalog-wide
	Severity   Severity
	Message    string
}

func (i Issue) String() string {
	if i.QuestionID == 0 {
		return fmt.Sprintf("%s: %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("%s: question %d: %s", i.Severity, i.QuestionID, i.Message)
}

// Lint reports authoring defects the runtime tolerates silently: bracket
// ranges that leave gaps or overlap, duplicate ids, and a missing fallback
// result.
func Lint(c *Catalog) []Issue {
	var issues []Issue

	seenQ := make(map[int]bool, len(c.Questions))
	for _, q := range c.Questions {
		if seenQ[q.ID] {
			issues = append(issues, Issue{QuestionID: q.ID, Severity: SeverityError, Message: "duplicate question id"})
		}
		seenQ[q.ID] = true
		issues = append(issues, lintQuestion(q)...)
	}

	if c.Results.Fallback == nil {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Message:  "results.fallback is missing; unmatched answer sets get the built-in result",
		})
	}
	return issues
}

func lintQuestion(q Question) []Issue {
	var issues []Issue
	add := func(sev Severity, format string, args ...any) {
		issues = append(issues, Issue{QuestionID: q.ID, Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	seenO := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if seenO[o.ID] {
			add(SeverityError, "duplicate option id %q", o.ID)
		}
		seenO[o.ID] = true
	}

	// owner[v] is the index of the first bracket covering value v.
	owner := make(map[int]int)
	for i, b := range q.Feedback {
		for _, v := range b.Range {
			if v < MinValue || v > MaxValue {
				add(SeverityError, "bracket %d: value %d outside %d..%d", i+1, v, MinValue, MaxValue)
				continue
			}
			if prev, ok := owner[v]; ok {
				add(SeverityError, "value %d is in brackets %d and %d (first wins)", v, prev+1, i+1)
				continue
			}
			owner[v] = i
		}
	}

	var gaps []int
	for v := MinValue; v <= MaxValue; v++ {
		if _, ok := owner[v]; !ok {
			gaps = append(gaps, v)
		}
	}
	if len(gaps) > 0 {
		add(SeverityError, "values %v are not covered by any bracket", gaps)
	}
	return issues
}
