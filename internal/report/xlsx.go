package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/contentquiz/internal/scoring"
)

// Sheet names of the workbook.
const (
	SummarySheet  = "Summary"
	FeedbackSheet = "Feedback"
)

var feedbackHeader = []any{"#", "Question", "Answer", "Score", "Diagnosis", "Recommendation"}

// Fill colours per tone, matching the terminal report.
var toneFill = map[scoring.Tone]string{
	scoring.ToneLow:  "#FDE2E1",
	scoring.ToneMid:  "#FEF3C7",
	scoring.ToneHigh: "#DCFCE7",
}

// WriteXLSX renders doc as a two-sheet workbook.
func WriteXLSX(w io.Writer, doc Document) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeSummary(f, doc); err != nil {
		return err
	}
	if _, err := f.NewSheet(FeedbackSheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	if err := writeFeedback(f, doc.Report); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, doc Document) error {
	r := doc.Report
	rows := [][]any{
		{"Assessment", r.Title},
		{"Result", r.Result.Title},
		{"Category", string(r.Result.Category)},
		{"Description", r.Result.Description},
		{"Answered", r.Tally.Answered},
		{"Questions", r.Tally.Total},
		{"Average score", r.Tally.Mean()},
	}
	if doc.CatalogVersion != "" {
		rows = append(rows, []any{"Catalog version", doc.CatalogVersion})
	}
	if !doc.GeneratedAt.IsZero() {
		rows = append(rows, []any{"Generated", doc.GeneratedAt.Format("2006-01-02 15:04")})
	}
	if doc.Advice != "" {
		rows = append(rows, []any{"Advisor notes", doc.Advice})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("summary style: %w", err)
	}
	if err := f.SetCellStyle(SummarySheet, "A1", fmt.Sprintf("A%d", len(rows)), bold); err != nil {
		return fmt.Errorf("summary style: %w", err)
	}
	if err := f.SetColWidth(SummarySheet, "A", "A", 18); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheet, "B", "B", 80)
}

func writeFeedback(f *excelize.File, r scoring.Report) error {
	if err := f.SetSheetRow(FeedbackSheet, "A1", &feedbackHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E5E7EB"}},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetCellStyle(FeedbackSheet, "A1", "F1", header); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	styles := map[scoring.Tone]int{}
	for tone, color := range toneFill {
		id, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return fmt.Errorf("tone style: %w", err)
		}
		styles[tone] = id
	}

	for i, row := range r.Rows {
		line := i + 2
		values := []any{
			i + 1,
			row.Question.Text,
			row.Answer.Text,
			row.Feedback.Value,
			row.Feedback.Bracket.Diagnosis,
			row.Feedback.Bracket.Recommendation,
		}
		if err := f.SetSheetRow(FeedbackSheet, fmt.Sprintf("A%d", line), &values); err != nil {
			return fmt.Errorf("write row %d: %w", line, err)
		}
		score := fmt.Sprintf("D%d", line)
		if err := f.SetCellStyle(FeedbackSheet, score, score, styles[row.Tone]); err != nil {
			return fmt.Errorf("score style: %w", err)
		}
	}

	widths := map[string]float64{"A": 5, "B": 60, "C": 40, "D": 8, "E": 60, "F": 60}
	for col, width := range widths {
		if err := f.SetColWidth(FeedbackSheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}
