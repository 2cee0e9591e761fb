package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-atp-stats/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tournaments in the dataset",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	st, err := store.Open(dataDir)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	tournaments, err := st.ReadTournaments()
	if err != nil {
		return fmt.Errorf("list tournaments: %w", err)
	}
	if len(tournaments) == 0 {
		fmt.Fprintln(os.Stdout, "No tournaments yet. Run 'atpstats ingest <dir>' first.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-12s  %4s  %-32s  %-16s  %-10s  %s\n",
		"ID", "YEAR", "NAME", "LOCATION", "SERIES", "SURFACE")
	fmt.Fprintf(os.Stdout, "%-12s  %4s  %-32s  %-16s  %-10s  %s\n",
		"────────────", "────", "────────────────────────────────", "────────────────", "──────────", "───────")
	for _, t := range tournaments {
		name := t.Name
		if t.CommonName != "" && t.CommonName != t.Name {
			name = fmt.Sprintf("%s (%s)", t.Name, t.CommonName)
		}
		fmt.Fprintf(os.Stdout, "%-12s  %4d  %-32s  %-16s  %-10s  %s\n",
			t.ID, t.Year, name, t.Location, t.Series, t.Surface)
	}
	return nil
}
