package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/contentquiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "contentquiz",
	Short: "Content plan health check",
	Long:  "Content Quiz: a terminal questionnaire that scores your content plan and points at what to fix first.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("env-file")
		return config.LoadEnvFile(path)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", "Load settings from this file; the environment takes priority (default: .env if present)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CONTENTQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a question catalog YAML file (overrides CONTENTQUIZ_CATALOG env var)")
	rootCmd.Flags().String("export-dir", "", "Directory for saved reports (default: current directory)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(leadsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment, then applies the persistent flags,
// which take priority.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.FromEnv()
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		cfg.CatalogPath = p
	}
	return cfg
}
