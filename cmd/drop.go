package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dropForce bool

// dropCmd deletes everything the tool generated under the dataset directory.
var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete the generated dataset",
	Long:  "Permanently delete the JSON dataset, bracket files and query database. Re-run ingest afterwards to rebuild.",
	Args:  cobra.NoArgs,
	RunE:  runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
}

func runDrop(cmd *cobra.Command, args []string) error {
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete: %s\n", dataDir)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}
	if err := os.RemoveAll(dataDir); err != nil {
		return fmt.Errorf("remove dataset: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Deleted: %s\n", dataDir)
	return nil
}
