package quiz

import "github.com/abhisek/contentquiz/internal/catalog"

// View is the read-only snapshot a renderer needs for one frame.
type View struct {
	Question        catalog.Question
	Index           int // zero-based
	Total           int
	ProgressPercent float64
	Selected        string // option id answered for Question, "" if none
	Finished        bool
	Answered        int
}

// Progress returns (index+1)/total*100, or 0 for an empty catalog.
func Progress(index, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(index+1) * 100 / float64(total)
}

// View renders the current state.
func (n *Navigator) View() View {
	total := n.cat.Len()
	v := View{
		Index:           n.state.CurrentIndex,
		Total:           total,
		ProgressPercent: Progress(n.state.CurrentIndex, total),
		Finished:        n.state.Finished,
		Answered:        len(n.state.Answers),
	}
	if n.state.CurrentIndex < total {
		v.Question = n.cat.Questions[n.state.CurrentIndex]
		v.Selected = n.state.Answers[v.Question.ID]
	}
	return v
}
