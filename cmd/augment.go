package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pable/go-atp-stats/internal/augment"
	"github.com/pable/go-atp-stats/internal/store"
)

var augmentCmd = &cobra.Command{
	Use:   "augment",
	Short: "Merge common tournament names into tournaments.json",
	Long: `Rewrite tournaments.json so each tournament's commonName reflects the
built-in lookup table exactly: mapped tournaments get their common name,
unmapped ones lose any stale value. Running twice with an unchanged table
produces byte-identical output.`,
	Args: cobra.NoArgs,
	RunE: runAugment,
}

func runAugment(cmd *cobra.Command, args []string) error {
	st, err := store.Open(dataDir)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	return augment.Run(st)
}
