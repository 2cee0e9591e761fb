package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-atp-stats/internal/report"
	"github.com/pable/go-atp-stats/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <tournament-id-prefix>",
	Short: "Show one tournament's matches by ID prefix",
	Long:  "Show a tournament's matches with derived flags. Requires 'atpstats export' to have populated the query database.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	db, err := storage.Open(dbPath())
	if err != nil {
		return fmt.Errorf("open query db: %w", err)
	}
	defer db.Close()

	t, err := db.GetTournamentByPrefix(prefix)
	if err != nil {
		return fmt.Errorf("query tournament: %w", err)
	}
	if t == nil {
		fmt.Fprintf(os.Stderr, "No tournament found with ID prefix %q. Did you run 'atpstats export'?\n", prefix)
		return nil
	}

	views, err := db.GetTournamentMatches(t.ID)
	if err != nil {
		return fmt.Errorf("query matches: %w", err)
	}

	report.PrintTournamentHeader(os.Stdout, *t)
	report.PrintMatchTable(os.Stdout, views)
	return nil
}
