package quiz

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/abhisek/contentquiz/internal/catalog"
)

// testCatalog returns n labelled questions with ids 1..n and option ids
// "<id>a".."<id>c".
func testCatalog(n int) *catalog.Catalog {
	c := &catalog.Catalog{Version: "v1.0.0", Title: "Test"}
	for id := 1; id <= n; id++ {
		c.Questions = append(c.Questions, catalog.Question{
			ID:   id,
			Text: fmt.Sprintf("Question %d", id),
			Options: []catalog.Option{
				{ID: fmt.Sprintf("%da", id), Text: "low", Value: 1},
				{ID: fmt.Sprintf("%db", id), Text: "mid", Value: 3},
				{ID: fmt.Sprintf("%dc", id), Text: "high", Value: 5},
			},
		})
	}
	return c
}

func TestNewNavigator_InitialState(t *testing.T) {
	nav := NewNavigator(testCatalog(3))
	st := nav.State()

	if st.CurrentIndex != 0 || st.Finished || len(st.Answers) != 0 {
		t.Errorf("initial state = %+v, want {0, {}, false}", st)
	}
	if st.Answers == nil {
		t.Error("Answers should be an empty map, not nil")
	}
}

func TestAdvance_CountsToFinish(t *testing.T) {
	const count = 10
	for n := 0; n < count; n++ {
		nav := NewNavigator(testCatalog(count))
		for i := 0; i < n+1; i++ {
			nav.Advance()
		}
		st := nav.State()
		if n+1 < count {
			if st.CurrentIndex != n+1 || st.Finished {
				t.Errorf("n=%d: state = %+v, want index %d not finished", n, st, n+1)
			}
			continue
		}
		if !st.Finished {
			t.Errorf("n=%d: expected finished", n)
		}
		if st.CurrentIndex != count-1 {
			t.Errorf("n=%d: CurrentIndex = %d, want %d", n, st.CurrentIndex, count-1)
		}
	}
}

func TestAdvance_NoopWhenFinished(t *testing.T) {
	nav := NewNavigator(testCatalog(1))
	nav.Advance()
	nav.Advance()

	st := nav.State()
	if !st.Finished || st.CurrentIndex != 0 {
		t.Errorf("state = %+v, want finished at index 0", st)
	}
}

func TestAdvance_DoesNotRequireAnswer(t *testing.T) {
	nav := NewNavigator(testCatalog(2))
	nav.Advance()
	nav.Advance()

	st := nav.State()
	if !st.Finished {
		t.Error("expected unanswered quiz to finish")
	}
	if len(st.Answers) != 0 {
		t.Errorf("Answers = %v, want empty", st.Answers)
	}
}

func TestRetreat_AtStartIsNoop(t *testing.T) {
	nav := NewNavigator(testCatalog(3))
	nav.RecordAnswer(1, "1b")
	before := nav.State()

	nav.Retreat()

	if after := nav.State(); !reflect.DeepEqual(before, after) {
		t.Errorf("state changed: %+v -> %+v", before, after)
	}
}

func TestRetreat_Decrements(t *testing.T) {
	nav := NewNavigator(testCatalog(3))
	nav.Advance()
	nav.Advance()
	nav.Retreat()

	if got := nav.State().CurrentIndex; got != 1 {
		t.Errorf("CurrentIndex = %d, want 1", got)
	}
}

func TestRetreat_NoopWhenFinished(t *testing.T) {
	nav := NewNavigator(testCatalog(2))
	nav.Advance()
	nav.Advance()
	nav.Retreat()

	st := nav.State()
	if !st.Finished || st.CurrentIndex != 1 {
		t.Errorf("state = %+v, want finished at index 1", st)
	}
}

func TestReset_AfterAnySequence(t *testing.T) {
	sequences := [][]string{
		{},
		{"answer", "advance", "advance"},
		{"advance", "advance", "advance", "advance", "retreat"},
		{"answer", "advance", "answer", "retreat", "answer", "advance", "advance", "advance"},
	}

	for i, seq := range sequences {
		nav := NewNavigator(testCatalog(3))
		for _, op := range seq {
			switch op {
			case "answer":
				q := nav.View().Question
				nav.RecordAnswer(q.ID, q.Options[2].ID)
			case "advance":
				nav.Advance()
			case "retreat":
				nav.Retreat()
			}
		}
		nav.Reset()

		want := State{CurrentIndex: 0, Answers: catalog.Answers{}, Finished: false}
		if got := nav.State(); !reflect.DeepEqual(got, want) {
			t.Errorf("sequence %d: state = %+v, want %+v", i, got, want)
		}
	}
}

func TestRecordAnswer_LastWriteWins(t *testing.T) {
	nav := NewNavigator(testCatalog(3))

	if !nav.RecordAnswer(2, "2a") {
		t.Fatal("first answer rejected")
	}
	if !nav.RecordAnswer(2, "2c") {
		t.Fatal("second answer rejected")
	}

	if got := nav.State().Answers[2]; got != "2c" {
		t.Errorf("Answers[2] = %q, want 2c", got)
	}
}

func TestRecordAnswer_RejectsForeignOption(t *testing.T) {
	nav := NewNavigator(testCatalog(3))

	tests := []struct {
		name     string
		question int
		option   string
	}{
		{"option of another question", 1, "2a"},
		{"unknown option", 1, "zz"},
		{"unknown question", 99, "1a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if nav.RecordAnswer(tt.question, tt.option) {
				t.Error("expected RecordAnswer to reject")
			}
			if n := len(nav.State().Answers); n != 0 {
				t.Errorf("len(Answers) = %d, want 0", n)
			}
		})
	}
}

func TestState_ReturnsCopy(t *testing.T) {
	nav := NewNavigator(testCatalog(2))
	nav.RecordAnswer(1, "1a")

	st := nav.State()
	st.Answers[1] = "1c"
	st.Answers[2] = "2c"

	if got := nav.State().Answers; len(got) != 1 || got[1] != "1a" {
		t.Errorf("navigator answers mutated through copy: %v", got)
	}
}

func TestView_Progress(t *testing.T) {
	nav := NewNavigator(testCatalog(10))
	for i := 0; i < 4; i++ {
		nav.Advance()
	}

	v := nav.View()
	if v.Index != 4 || v.Total != 10 {
		t.Fatalf("Index/Total = %d/%d, want 4/10", v.Index, v.Total)
	}
	if v.ProgressPercent != 50 {
		t.Errorf("ProgressPercent = %v, want 50", v.ProgressPercent)
	}
	if v.Question.ID != 5 {
		t.Errorf("Question.ID = %d, want 5", v.Question.ID)
	}
}

func TestView_Selected(t *testing.T) {
	nav := NewNavigator(testCatalog(2))
	nav.RecordAnswer(1, "1b")

	v := nav.View()
	if v.Selected != "1b" {
		t.Errorf("Selected = %q, want 1b", v.Selected)
	}
	if v.Answered != 1 {
		t.Errorf("Answered = %d, want 1", v.Answered)
	}

	nav.Advance()
	if v := nav.View(); v.Selected != "" {
		t.Errorf("Selected on unanswered question = %q, want empty", v.Selected)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		index, total int
		want         float64
	}{
		{0, 10, 10},
		{4, 10, 50},
		{9, 10, 100},
		{0, 1, 100},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Progress(tt.index, tt.total); got != tt.want {
			t.Errorf("Progress(%d, %d) = %v, want %v", tt.index, tt.total, got, tt.want)
		}
	}
}
