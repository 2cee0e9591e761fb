package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "atpstats",
	Short: "ATP match dataset tool",
	Long:  "Ingest per-year ATP match CSVs, build a normalized JSON dataset and reconstruct tournament brackets.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// .env is optional; environment wins for local overrides.
	_ = godotenv.Load()
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(lvl)
	}

	defaultData := os.Getenv("ATPSTATS_DATA")
	if defaultData == "" {
		defaultData = "data"
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", defaultData, "path to the dataset directory")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(bracketsCmd)
	rootCmd.AddCommand(augmentCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(h2hCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dropCmd)
}

func dbPath() string {
	return filepath.Join(dataDir, "atpstats.db")
}
