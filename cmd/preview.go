package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/contentquiz/internal/quiz"
	"github.com/abhisek/contentquiz/internal/report"
	"github.com/abhisek/contentquiz/internal/scoring"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Walk through the catalog on plain stdin (no database)",
	Long: `Answer the catalog line by line without the full-screen UI.

This is a stateless authoring tool: no database, no events, no lead form.
Useful for checking how a catalog reads and which results it produces.
Type an option number, "b" to go back, or an empty line to skip.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Bool("advice", false, "Ask the configured LLM provider for advisor notes at the end")
}

func runPreview(cmd *cobra.Command, args []string) error {
	withAdvice, _ := cmd.Flags().GetBool("advice")

	cat, err := loadConfig(cmd).LoadCatalog()
	if err != nil {
		return err
	}

	nav := quiz.NewNavigator(cat)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("%s (%s)\n\n", cat.Title, cat.Version)

	for !nav.State().Finished {
		v := nav.View()
		q := v.Question

		fmt.Printf("── Question %d/%d ──\n", v.Index+1, v.Total)
		fmt.Println(q.Text)
		if q.Example != "" {
			fmt.Printf("Example: %s\n", q.Example)
		}
		for j, o := range q.Options {
			mark := " "
			if o.ID == v.Selected {
				mark = "*"
			}
			fmt.Printf(" %s%d) %s\n", mark, j+1, o.Text)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch {
		case input == "":
			fmt.Println("(skipped)")
			nav.Advance()
		case strings.EqualFold(input, "b"):
			nav.Retreat()
		default:
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 || n > len(q.Options) {
				fmt.Printf("Enter a number from 1 to %d.\n\n", len(q.Options))
				continue
			}
			nav.RecordAnswer(q.ID, q.Options[n-1].ID)
			nav.Advance()
		}
		fmt.Println()
	}

	answers := nav.State().Answers
	doc := report.Document{
		Report:         scoring.BuildReport(cat, answers),
		CatalogVersion: cat.Version,
		GeneratedAt:    time.Now(),
	}
	if withAdvice {
		fmt.Println("Preparing advisor notes...")
		doc.Advice = newAdvisor(cmd.Context(), nil).Advise(cmd.Context(), cat, answers)
	}
	fmt.Println(report.Markdown(doc))
	return nil
}
