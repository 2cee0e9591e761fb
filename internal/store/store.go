// Package store persists the normalized dataset as JSON files in one
// directory: players.json, tournaments.json, matches.json, derived.json and
// one bracket tree per tournament under brackets/. Marshaling is
// deterministic (stable field order, two-space indent, trailing newline) so
// re-running on unchanged input reproduces every file byte for byte.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pable/go-atp-stats/internal/model"
)

const (
	playersFile     = "players.json"
	tournamentsFile = "tournaments.json"
	matchesFile     = "matches.json"
	derivedFile     = "derived.json"
	bracketsDir     = "brackets"
)

// Dataset is a handle on one dataset directory.
type Dataset struct {
	dir string
}

// Open binds a Dataset to dir, creating the directory if needed.
func Open(dir string) (*Dataset, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Dataset{dir: dir}, nil
}

// Dir returns the dataset directory.
func (d *Dataset) Dir() string { return d.dir }

func (d *Dataset) WritePlayers(v []model.Player) error { return d.write(playersFile, v) }

func (d *Dataset) WriteTournaments(v []model.Tournament) error { return d.write(tournamentsFile, v) }

func (d *Dataset) WriteMatches(v []model.Match) error { return d.write(matchesFile, v) }

func (d *Dataset) WriteDerived(v []model.Derived) error { return d.write(derivedFile, v) }

func (d *Dataset) ReadPlayers() ([]model.Player, error) {
	var v []model.Player
	return v, d.read(playersFile, &v)
}

func (d *Dataset) ReadTournaments() ([]model.Tournament, error) {
	var v []model.Tournament
	return v, d.read(tournamentsFile, &v)
}

func (d *Dataset) ReadMatches() ([]model.Match, error) {
	var v []model.Match
	return v, d.read(matchesFile, &v)
}

func (d *Dataset) ReadDerived() ([]model.Derived, error) {
	var v []model.Derived
	return v, d.read(derivedFile, &v)
}

// WriteBracket persists one tournament's tree under brackets/<id>.json.
func (d *Dataset) WriteBracket(tournamentID string, root *model.BracketNode) error {
	dir := filepath.Join(d.dir, bracketsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create brackets dir: %w", err)
	}
	return writeJSON(filepath.Join(dir, tournamentID+".json"), root)
}

// ReadBracket loads one tournament's tree.
func (d *Dataset) ReadBracket(tournamentID string) (*model.BracketNode, error) {
	var root model.BracketNode
	path := filepath.Join(d.dir, bracketsDir, tournamentID+".json")
	if err := readJSON(path, &root); err != nil {
		return nil, err
	}
	return &root, nil
}

func (d *Dataset) write(name string, v any) error {
	return writeJSON(filepath.Join(d.dir, name), v)
}

func (d *Dataset) read(name string, v any) error {
	return readJSON(filepath.Join(d.dir, name), v)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
