package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/contentquiz/internal/advisor"
	"github.com/abhisek/contentquiz/internal/app"
	"github.com/abhisek/contentquiz/internal/lead"
	"github.com/abhisek/contentquiz/internal/llm"
	"github.com/abhisek/contentquiz/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := loadConfig(cmd)

	cat, err := cfg.LoadCatalog()
	if err != nil {
		return err
	}

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	logPath, err := cfg.ResolveLogPath()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	logFile, err := app.SetupLogging(logPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	deps := app.Deps{
		Catalog: cat,
		Session: cfg.SessionOptions(),
		Events:  eventRepo,
		Advisor: newAdvisor(ctx, eventRepo),
		Leads:   newSubmitter(cfg.LeadEndpoint, eventRepo),
	}
	if cmd.Flags().Lookup("export-dir") != nil {
		deps.ExportDir, _ = cmd.Flags().GetString("export-dir")
	}

	slog.Info("starting", "catalog", cat.Version, "questions", cat.Len(), "advisor", deps.Advisor.Configured(), "leads", deps.Leads.Configured())
	return app.Run(deps)
}

// newAdvisor builds the advisory client, or returns nil when no provider is
// configured. The app works without it.
func newAdvisor(ctx context.Context, eventRepo store.EventRepo) *advisor.Advisor {
	llmCfg, ok := llm.ResolveConfig()
	if !ok {
		return nil
	}
	provider, err := llm.NewProvider(ctx, llmCfg, eventRepo)
	if errors.Is(err, llm.ErrDisabled) {
		return nil
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Advisor notes will be unavailable.")
		return nil
	}
	cfg := advisor.DefaultConfig()
	cfg.Timeout = llmCfg.Timeout
	return advisor.New(provider, cfg)
}

// newSubmitter wires the lead form. Without an endpoint the submitter
// reports itself unconfigured and the report screen hides the form.
func newSubmitter(endpoint string, rec lead.Recorder) *lead.Submitter {
	if endpoint == "" {
		return lead.NewSubmitter(nil, rec)
	}
	return lead.NewSubmitter(lead.NewHTTPSink(endpoint, nil), rec)
}
