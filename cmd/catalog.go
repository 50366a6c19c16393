package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/contentquiz/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the question catalog",
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the questions and their options",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadConfig(cmd).LoadCatalog()
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s), %d questions\n", cat.Title, cat.Version, cat.Len())
		fmt.Println(strings.Repeat("─", 80))

		for _, q := range cat.Questions {
			kind := "choice"
			if q.IsNumericScale() {
				kind = "scale"
			}
			fmt.Printf("%3d  [%s]  %s\n", q.ID, kind, q.Text)
			for _, o := range q.Options {
				fmt.Printf("       %-6s  %d  %s\n", o.ID, o.Value, o.Text)
			}
		}

		fmt.Printf("\n%d result rules", len(cat.Results.Rules))
		if cat.Results.Fallback != nil {
			fmt.Printf(", fallback %q", cat.Results.Fallback.Title)
		}
		fmt.Println()
		return nil
	},
}

var catalogLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report authoring defects the quiz would silently tolerate",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		cat, err := cfg.LoadCatalog()
		if err != nil {
			return err
		}

		issues := catalog.Lint(cat)
		if len(issues) == 0 {
			fmt.Printf("%s: no issues\n", cat.Version)
			return nil
		}

		var errCount int
		for _, is := range issues {
			fmt.Println(is.String())
			if is.Severity == catalog.SeverityError {
				errCount++
			}
		}
		fmt.Printf("\n%d issues (%d errors)\n", len(issues), errCount)
		if errCount > 0 {
			return fmt.Errorf("catalog has %d errors", errCount)
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogLintCmd)
}
