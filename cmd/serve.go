package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dataset directory over HTTP",
	Long: `Serve the JSON dataset (players, tournaments, matches, derived and
bracket files) read-only over HTTP for the browser UI. The UI only fetches
these files; it never writes back.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8090", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(dataDir); err != nil {
		return fmt.Errorf("dataset directory %s: %w", dataDir, err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}))
	r.Handle("/*", http.FileServer(http.Dir(dataDir)))

	fmt.Fprintf(os.Stdout, "Serving %s on %s\n", dataDir, serveAddr)
	return http.ListenAndServe(serveAddr, r)
}
