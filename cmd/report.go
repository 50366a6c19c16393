package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/contentquiz/internal/catalog"
	"github.com/abhisek/contentquiz/internal/report"
	"github.com/abhisek/contentquiz/internal/scoring"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Score a saved answer sheet without the interactive UI",
	Long: `Score an answer sheet and write the report.

The answer sheet is YAML mapping question ids to option ids:

  answers:
    1: 1d
    2: 2b

Answers that do not match the catalog are skipped, as in the interactive quiz.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().String("answers", "", "Answer sheet YAML file (required)")
	reportCmd.Flags().String("format", "", "Output format: md, json or xlsx (default: from --out, else md)")
	reportCmd.Flags().String("out", "", "Output file (default: stdout; xlsx requires a file)")
	reportCmd.Flags().Bool("advice", false, "Ask the configured LLM provider for advisor notes")
	_ = reportCmd.MarkFlagRequired("answers")
}

func runReport(cmd *cobra.Command, args []string) error {
	answersPath, _ := cmd.Flags().GetString("answers")
	formatVal, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	withAdvice, _ := cmd.Flags().GetBool("advice")

	cfg := loadConfig(cmd)
	cat, err := cfg.LoadCatalog()
	if err != nil {
		return err
	}
	answers, err := catalog.LoadAnswers(answersPath)
	if err != nil {
		return err
	}
	if unknown := cat.Unknown(answers); len(unknown) > 0 {
		fmt.Fprintf(os.Stderr, "Skipping answers that do not match catalog %s: questions %v\n", cat.Version, unknown)
	}

	var format report.Format
	switch {
	case formatVal != "":
		if format, err = report.ParseFormat(formatVal); err != nil {
			return err
		}
	case out != "":
		format = report.FormatFromPath(out)
	default:
		format = report.FormatMarkdown
	}

	doc := report.Document{
		Report:         scoring.BuildReport(cat, answers),
		CatalogVersion: cat.Version,
		GeneratedAt:    time.Now(),
	}
	if withAdvice {
		doc.Advice = newAdvisor(cmd.Context(), nil).Advise(cmd.Context(), cat, answers)
	}

	if out == "" {
		if format == report.FormatXLSX {
			return fmt.Errorf("xlsx output needs --out")
		}
		return report.Write(os.Stdout, format, doc)
	}
	if err := report.Export(out, format, doc); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Report written to %s\n", out)
	return nil
}
