package catalog

import (
	"strings"
	"testing"
)

func TestLint_Clean(t *testing.T) {
	c := &Catalog{
		Questions: []Question{{
			ID:      1,
			Options: []Option{{ID: "a", Value: 1}, {ID: "b", Value: 5}},
			Feedback: []Bracket{
				{Range: []int{1, 2}},
				{Range: []int{3}},
				{Range: []int{4, 5}},
			},
		}},
		Results: ResultRules{Fallback: &Result{Title: "x", Category: CategoryInfo}},
	}

	if issues := Lint(c); len(issues) != 0 {
		t.Errorf("Lint = %v, want no issues", issues)
	}
}

func TestLint_Defects(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		want     string
	}{
		{
			name: "gap",
			question: Question{ID: 1, Feedback: []Bracket{
				{Range: []int{1, 2}},
				{Range: []int{4, 5}},
			}},
			want: "values [3] are not covered",
		},
		{
			name: "overlap",
			question: Question{ID: 2, Feedback: []Bracket{
				{Range: []int{1, 2, 3}},
				{Range: []int{3, 4, 5}},
			}},
			want: "value 3 is in brackets 1 and 2",
		},
		{
			name: "out of range",
			question: Question{ID: 3, Feedback: []Bracket{
				{Range: []int{0, 1, 2, 3, 4, 5}},
			}},
			want: "value 0 outside 1..5",
		},
		{
			name: "duplicate option",
			question: Question{ID: 4,
				Options:  []Option{{ID: "a", Value: 1}, {ID: "a", Value: 2}},
				Feedback: []Bracket{{Range: []int{1, 2, 3, 4, 5}}},
			},
			want: `duplicate option id "a"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Catalog{
				Questions: []Question{tt.question},
				Results:   ResultRules{Fallback: &Result{Title: "x"}},
			}
			issues := Lint(c)
			found := false
			for _, is := range issues {
				if strings.Contains(is.Message, tt.want) {
					found = true
					if is.QuestionID != tt.question.ID {
						t.Errorf("QuestionID = %d, want %d", is.QuestionID, tt.question.ID)
					}
				}
			}
			if !found {
				t.Errorf("Lint = %v, want an issue containing %q", issues, tt.want)
			}
		})
	}
}

func TestLint_DuplicateQuestionAndMissingFallback(t *testing.T) {
	full := []Bracket{{Range: []int{1, 2, 3, 4, 5}}}
	c := &Catalog{Questions: []Question{
		{ID: 7, Feedback: full},
		{ID: 7, Feedback: full},
	}}

	issues := Lint(c)
	if len(issues) != 2 {
		t.Fatalf("got %d issues, want 2: %v", len(issues), issues)
	}
	if issues[0].Message != "duplicate question id" {
		t.Errorf("issues[0] = %q", issues[0].Message)
	}
	if issues[1].Severity != SeverityWarning || issues[1].QuestionID != 0 {
		t.Errorf("issues[1] = %+v, want catalog-wide warning", issues[1])
	}
	if !strings.HasPrefix(issues[1].String(), "warning: results.fallback") {
		t.Errorf("String() = %q", issues[1].String())
	}
}
