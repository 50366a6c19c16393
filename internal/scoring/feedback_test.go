package scoring

import (
	"testing"

	"github.com/abhisek/contentquiz/internal/catalog"
)

func bracketQuestion() catalog.Question {
	return catalog.Question{
		ID:   3,
		Text: "Rate your publishing cadence.",
		Options: []catalog.Option{
			{ID: "q3-1", Text: "1", Value: 1},
			{ID: "q3-2", Text: "2", Value: 2},
			{ID: "q3-3", Text: "3", Value: 3},
			{ID: "q3-4", Text: "4", Value: 4},
			{ID: "q3-5", Text: "5", Value: 5},
		},
		Feedback: []catalog.Bracket{
			{Range: []int{1, 2}, Diagnosis: "low-d", Recommendation: "low-r"},
			{Range: []int{3}, Diagnosis: "mid-d", Recommendation: "mid-r"},
			{Range: []int{4, 5}, Diagnosis: "high-d", Recommendation: "high-r"},
		},
	}
}

func TestFeedbackFor_PicksBracketByValue(t *testing.T) {
	q := bracketQuestion()

	tests := []struct {
		option    string
		wantValue int
		wantDiag  string
		wantRec   string
	}{
		{"q3-1", 1, "low-d", "low-r"},
		{"q3-2", 2, "low-d", "low-r"},
		{"q3-3", 3, "mid-d", "mid-r"},
		{"q3-4", 4, "high-d", "high-r"},
		{"q3-5", 5, "high-d", "high-r"},
	}

	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			fb, ok := FeedbackFor(q, catalog.Answers{3: tt.option})
			if !ok {
				t.Fatal("expected feedback")
			}
			if fb.Value != tt.wantValue {
				t.Errorf("Value = %d, want %d", fb.Value, tt.wantValue)
			}
			if fb.Bracket.Diagnosis != tt.wantDiag || fb.Bracket.Recommendation != tt.wantRec {
				t.Errorf("Bracket = %+v, want %s/%s", fb.Bracket, tt.wantDiag, tt.wantRec)
			}
		})
	}
}

func TestFeedbackFor_Unanswered(t *testing.T) {
	q := bracketQuestion()
	for i := 0; i < 3; i++ {
		if _, ok := FeedbackFor(q, catalog.Answers{}); ok {
			t.Fatal("expected no feedback for an unanswered question")
		}
		if _, ok := FeedbackFor(q, nil); ok {
			t.Fatal("expected no feedback for a nil answer map")
		}
	}
}

func TestFeedbackFor_UnknownOption(t *testing.T) {
	if _, ok := FeedbackFor(bracketQuestion(), catalog.Answers{3: "q9-9"}); ok {
		t.Error("expected no feedback for an option outside the question")
	}
}

func TestFeedbackFor_NoMatchingBracketIsSilent(t *testing.T) {
	q := bracketQuestion()
	q.Feedback = q.Feedback[:2] // drop the 4-5 bracket

	if _, ok := FeedbackFor(q, catalog.Answers{3: "q3-4"}); ok {
		t.Error("expected silent omission when no bracket matches")
	}
	if _, ok := FeedbackFor(q, catalog.Answers{3: "q3-2"}); !ok {
		t.Error("expected feedback for a covered value")
	}
}

func TestFeedbackFor_FirstMatchWins(t *testing.T) {
	q := bracketQuestion()
	q.Feedback = append([]catalog.Bracket{
		{Range: []int{3, 4}, Diagnosis: "overlap-d", Recommendation: "overlap-r"},
	}, q.Feedback...)

	fb, ok := FeedbackFor(q, catalog.Answers{3: "q3-4"})
	if !ok {
		t.Fatal("expected feedback")
	}
	if fb.Bracket.Diagnosis != "overlap-d" {
		t.Errorf("Diagnosis = %q, want the first matching bracket", fb.Bracket.Diagnosis)
	}
}

func TestFeedbackFor_Deterministic(t *testing.T) {
	q := bracketQuestion()
	answers := catalog.Answers{3: "q3-3"}
	first, _ := FeedbackFor(q, answers)
	for i := 0; i < 10; i++ {
		got, _ := FeedbackFor(q, answers)
		if got.Value != first.Value || got.Bracket.Diagnosis != first.Bracket.Diagnosis {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestToneFor(t *testing.T) {
	want := map[int]Tone{1: ToneLow, 2: ToneLow, 3: ToneMid, 4: ToneHigh, 5: ToneHigh}
	for v, tone := range want {
		if got := ToneFor(v); got != tone {
			t.Errorf("ToneFor(%d) = %s, want %s", v, got, tone)
		}
	}
}

func TestBuildReport_SkipsUnansweredAndUnmatched(t *testing.T) {
	broken := bracketQuestion()
	broken.ID = 4
	for i := range broken.Options {
		broken.Options[i].ID = "q4-" + broken.Options[i].Text
	}
	broken.Feedback = nil

	c := &catalog.Catalog{
		Title: "Test",
		Questions: []catalog.Question{
			{ID: 1, Options: []catalog.Option{{ID: "a", Value: 1}, {ID: "b", Value: 5}}},
			bracketQuestion(),
			broken,
		},
	}
	answers := catalog.Answers{3: "q3-5", 4: "q4-1"}

	r := BuildReport(c, answers)
	if len(r.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(r.Rows))
	}
	row := r.Rows[0]
	if row.Question.ID != 3 || row.Answer.ID != "q3-5" || row.Tone != ToneHigh {
		t.Errorf("row = %+v", row)
	}
	if r.Title != "Test" {
		t.Errorf("Title = %q", r.Title)
	}
	if r.Tally.Answered != 2 {
		t.Errorf("Tally.Answered = %d, want 2", r.Tally.Answered)
	}
}
