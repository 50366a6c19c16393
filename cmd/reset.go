package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local event database",
	Long: `Delete the local event database: session history, stored consultation
requests and LLM call logs. Saved reports are not touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		dbPath, err := loadConfig(cmd).ResolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		if !yes {
			fmt.Printf("This deletes %s. Run again with --yes to confirm.\n", dbPath)
			return nil
		}

		// SQLite in WAL mode keeps two side files next to the database.
		var removed int
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			err := os.Remove(p)
			switch {
			case err == nil:
				removed++
			case errors.Is(err, fs.ErrNotExist):
			default:
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}
		if removed == 0 {
			fmt.Println("Nothing to delete.")
			return nil
		}
		fmt.Println("Deleted", dbPath)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
