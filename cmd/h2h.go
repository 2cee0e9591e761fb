package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-atp-stats/internal/report"
	"github.com/pable/go-atp-stats/internal/storage"
)

var h2hCmd = &cobra.Command{
	Use:   "h2h <player> <player>",
	Short: "Head-to-head record between two players",
	Long: `Print every meeting between two players across the whole dataset.
Names must match the source data exactly (e.g. "Federer R."). Requires
'atpstats export' to have populated the query database.`,
	Args: cobra.ExactArgs(2),
	RunE: runH2H,
}

func runH2H(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath())
	if err != nil {
		return fmt.Errorf("open query db: %w", err)
	}
	defer db.Close()

	h, err := db.GetHeadToHead(args[0], args[1])
	if err != nil {
		return fmt.Errorf("query head-to-head: %w", err)
	}
	if len(h.Matches) == 0 {
		fmt.Fprintf(os.Stderr, "No matches found between %q and %q.\n", args[0], args[1])
		return nil
	}

	report.PrintHeadToHead(os.Stdout, h)
	return nil
}
