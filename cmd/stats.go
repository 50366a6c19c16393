package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/contentquiz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show questionnaire and consultation statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		sessions, err := repo.QuerySessionEvents(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		leads, err := repo.QueryLeadEvents(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query leads: %w", err)
		}

		if len(sessions) == 0 && len(leads) == 0 {
			fmt.Println("No activity recorded yet.")
			return nil
		}

		actions := map[string]int{}
		results := map[string]int{}
		var answered, total int
		for _, e := range sessions {
			actions[e.Action]++
			if e.Action == store.ActionFinish {
				results[e.ResultTitle]++
				answered += e.Answered
				total += e.Total
			}
		}

		fmt.Println("Sessions")
		fmt.Println(rule(48))
		fmt.Printf("%-30s  %8d\n", "Started", actions[store.ActionStart])
		fmt.Printf("%-30s  %8d\n", "Restarted", actions[store.ActionRestart])
		fmt.Printf("%-30s  %8d\n", "Finished", actions[store.ActionFinish])
		if total > 0 {
			fmt.Printf("%-30s  %7.0f%%\n", "Questions answered", float64(answered)*100/float64(total))
		}

		if len(results) > 0 {
			fmt.Println()
			fmt.Println("Results")
			fmt.Println(rule(48))
			titles := make([]string, 0, len(results))
			for t := range results {
				titles = append(titles, t)
			}
			sort.Slice(titles, func(i, j int) bool {
				if results[titles[i]] != results[titles[j]] {
					return results[titles[i]] > results[titles[j]]
				}
				return titles[i] < titles[j]
			})
			for _, t := range titles {
				fmt.Printf("%-30s  %8d\n", truncate(t, 30), results[t])
			}
		}

		var delivered int
		for _, l := range leads {
			if l.Delivered {
				delivered++
			}
		}
		fmt.Println()
		fmt.Println("Consultation requests")
		fmt.Println(rule(48))
		fmt.Printf("%-30s  %8d\n", "Sent", delivered)
		fmt.Printf("%-30s  %8d\n", "Failed", len(leads)-delivered)
		return nil
	},
}
