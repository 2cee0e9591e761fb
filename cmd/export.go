package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-atp-stats/internal/storage"
	"github.com/pable/go-atp-stats/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Load the JSON dataset into the SQLite query database",
	Long: `Copy players, tournaments, matches and derived stats from the JSON
dataset into <data>/atpstats.db so the show, h2h and sql commands can query
them. Re-exporting an unchanged dataset is idempotent.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	st, err := store.Open(dataDir)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	players, err := st.ReadPlayers()
	if err != nil {
		return err
	}
	tournaments, err := st.ReadTournaments()
	if err != nil {
		return err
	}
	matches, err := st.ReadMatches()
	if err != nil {
		return err
	}
	derived, err := st.ReadDerived()
	if err != nil {
		return err
	}

	db, err := storage.Open(dbPath())
	if err != nil {
		return fmt.Errorf("open query db: %w", err)
	}
	defer db.Close()

	if err := db.InsertPlayers(players); err != nil {
		return fmt.Errorf("export players: %w", err)
	}
	if err := db.InsertTournaments(tournaments); err != nil {
		return fmt.Errorf("export tournaments: %w", err)
	}
	if err := db.InsertMatches(matches); err != nil {
		return fmt.Errorf("export matches: %w", err)
	}
	if err := db.InsertDerived(derived); err != nil {
		return fmt.Errorf("export derived: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Exported %d players, %d tournaments, %d matches to %s.\n",
		len(players), len(tournaments), len(matches), dbPath())
	return nil
}
