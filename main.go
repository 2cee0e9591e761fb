// Package main is the entry point for the atpstats CLI tool, which ingests
// per-year ATP match CSVs and builds a normalized dataset plus reconstructed
// tournament brackets.
package main

import "github.com/pable/go-atp-stats/cmd"

func main() {
	cmd.Execute()
}
