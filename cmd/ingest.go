package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-atp-stats/internal/ident"
	"github.com/pable/go-atp-stats/internal/ingest"
	"github.com/pable/go-atp-stats/internal/resolve"
	"github.com/pable/go-atp-stats/internal/store"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [dir]",
	Short: "Ingest per-year match CSVs into the JSON dataset",
	Long: `Discover year-named CSV files (2023.csv, 2024.csv, ...) in the given
directory (default "."), normalize and merge them through one shared entity
registry, and write players.json, tournaments.json, matches.json and
derived.json to the dataset directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	files, err := ingest.DiscoverFiles(dir)
	if err != nil {
		return err
	}

	// One resolver for the whole run: IDs stay stable across all batches.
	res := resolve.New(ident.PolyGenerator{})
	ds, err := ingest.Run(files, res, ident.PolyGenerator{})
	if err != nil {
		return err
	}

	st, err := store.Open(dataDir)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	if err := st.WritePlayers(ds.Players); err != nil {
		return fmt.Errorf("write players: %w", err)
	}
	if err := st.WriteTournaments(ds.Tournaments); err != nil {
		return fmt.Errorf("write tournaments: %w", err)
	}
	if err := st.WriteMatches(ds.Matches); err != nil {
		return fmt.Errorf("write matches: %w", err)
	}
	if err := st.WriteDerived(ds.Derived); err != nil {
		return fmt.Errorf("write derived: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Ingested %d files: %d players, %d tournaments, %d matches.\n",
		len(files), len(ds.Players), len(ds.Tournaments), len(ds.Matches))
	return nil
}
