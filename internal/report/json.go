package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/abhisek/contentquiz/internal/catalog"
	"github.com/abhisek/contentquiz/internal/scoring"
)

type jsonDocument struct {
	Title          string         `json:"title"`
	CatalogVersion string         `json:"catalog_version,omitempty"`
	GeneratedAt    *time.Time     `json:"generated_at,omitempty"`
	Result         catalog.Result `json:"result"`
	Answered       int            `json:"answered"`
	Total          int            `json:"total"`
	Mean           float64        `json:"mean"`
	Questions      []jsonRow      `json:"questions"`
	Advice         string         `json:"advice,omitempty"`
}

type jsonRow struct {
	QuestionID     int          `json:"question_id"`
	Question       string       `json:"question"`
	OptionID       string       `json:"option_id"`
	Answer         string       `json:"answer"`
	Value          int          `json:"value"`
	Tone           scoring.Tone `json:"tone"`
	Diagnosis      string       `json:"diagnosis"`
	Recommendation string       `json:"recommendation"`
}

// WriteJSON renders doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	r := doc.Report
	out := jsonDocument{
		Title:          r.Title,
		CatalogVersion: doc.CatalogVersion,
		Result:         r.Result,
		Answered:       r.Tally.Answered,
		Total:          r.Tally.Total,
		Mean:           r.Tally.Mean(),
		Questions:      make([]jsonRow, 0, len(r.Rows)),
		Advice:         doc.Advice,
	}
	if !doc.GeneratedAt.IsZero() {
		t := doc.GeneratedAt.UTC()
		out.GeneratedAt = &t
	}
	for _, row := range r.Rows {
		out.Questions = append(out.Questions, jsonRow{
			QuestionID:     row.Question.ID,
			Question:       row.Question.Text,
			OptionID:       row.Answer.ID,
			Answer:         row.Answer.Text,
			Value:          row.Feedback.Value,
			Tone:           row.Tone,
			Diagnosis:      row.Feedback.Bracket.Diagnosis,
			Recommendation: row.Feedback.Bracket.Recommendation,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
