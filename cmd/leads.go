package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/contentquiz/internal/store"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Inspect consultation requests sent from this machine",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent consultation requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		failedOnly, _ := cmd.Flags().GetBool("failed")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLeadEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query leads: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No consultation requests found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-24s  %-16s  %-28s  %s\n",
			"ID", "Timestamp", "Name", "WhatsApp", "Website", "Sent")
		fmt.Println(rule(104))

		for _, e := range events {
			if failedOnly && e.Delivered {
				continue
			}
			sent := "✓"
			if !e.Delivered {
				sent = "✗ " + e.ErrorMessage
			}
			fmt.Printf("%-5d  %-19s  %-24s  %-16s  %-28s  %s\n",
				e.ID,
				e.Timestamp.Local().Format(timeLayout),
				truncate(e.Name, 24),
				e.WhatsApp,
				truncate(e.Website, 28),
				sent,
			)
		}
		return nil
	},
}

func init() {
	leadsListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	leadsListCmd.Flags().Bool("failed", false, "Only show requests that were not delivered")

	leadsCmd.AddCommand(leadsListCmd)
}

// openStore opens the event database selected by flags and environment.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := loadConfig(cmd).ResolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
