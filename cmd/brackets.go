package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-atp-stats/internal/bracket"
	"github.com/pable/go-atp-stats/internal/model"
	"github.com/pable/go-atp-stats/internal/store"
)

var bracketsCmd = &cobra.Command{
	Use:   "brackets",
	Short: "Reconstruct single-elimination brackets from the dataset",
	Long: `Infer the elimination tree of every tournament in the persisted
dataset and write one bracket JSON file per tournament under
<data>/brackets/. Trees are rebuilt in full on every run. Tournaments without
a Final are skipped; round-robin tournaments are skipped by design.`,
	Args: cobra.NoArgs,
	RunE: runBrackets,
}

func runBrackets(cmd *cobra.Command, args []string) error {
	st, err := store.Open(dataDir)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	tournaments, err := st.ReadTournaments()
	if err != nil {
		return err
	}
	players, err := st.ReadPlayers()
	if err != nil {
		return err
	}
	matches, err := st.ReadMatches()
	if err != nil {
		return err
	}

	playersByID := make(map[string]model.Player, len(players))
	for _, p := range players {
		playersByID[p.ID] = p
	}
	// Per-tournament slices keep the dataset's list order; the reconstructor's
	// first-match tie-breaking depends on it.
	byTournament := make(map[string][]model.Match, len(tournaments))
	for _, m := range matches {
		byTournament[m.TournamentID] = append(byTournament[m.TournamentID], m)
	}

	written, skipped := 0, 0
	for _, t := range tournaments {
		root, ok := bracket.Build(t, byTournament[t.ID], playersByID)
		if !ok {
			skipped++
			continue
		}
		if err := st.WriteBracket(t.ID, root); err != nil {
			return fmt.Errorf("write bracket for %s: %w", t.ID, err)
		}
		written++
	}

	fmt.Fprintf(os.Stdout, "Wrote %d brackets (%d tournaments skipped).\n", written, skipped)
	return nil
}
