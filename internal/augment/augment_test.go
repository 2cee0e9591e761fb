package augment

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pable/go-atp-stats/internal/model"
	"github.com/pable/go-atp-stats/internal/store"
)

func TestApplySetsAndClears(t *testing.T) {
	ts := []model.Tournament{
		{ID: "t1", Name: "Roland Garros"},
		{ID: "t2", Name: "Unknown Challenger", CommonName: "Stale Name"},
	}
	named := Apply(ts)
	if named != 1 {
		t.Errorf("named = %d, want 1", named)
	}
	if ts[0].CommonName != "French Open" {
		t.Errorf("commonName = %q", ts[0].CommonName)
	}
	// The pass reflects the table exactly: stale names are removed, not kept.
	if ts[1].CommonName != "" {
		t.Errorf("stale commonName should be cleared, got %q", ts[1].CommonName)
	}
}

func TestRunIdempotent(t *testing.T) {
	dir := t.TempDir()
	ds, err := store.Open(dir)
	if err != nil {
		t.Fatalf("open dataset: %v", err)
	}
	seed := []model.Tournament{
		{ID: "t1", Year: 2024, Name: "Roland Garros", Location: "Paris", Series: "Grand Slam", Court: "Outdoor", Surface: "Clay"},
		{ID: "t2", Year: 2024, Name: "Open Sud de France", Location: "Montpellier", Series: "ATP250", Court: "Indoor", Surface: "Hard"},
	}
	if err := ds.WriteTournaments(seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := Run(ds); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(dir, "tournaments.json"))
	if err != nil {
		t.Fatalf("read after first run: %v", err)
	}

	if err := Run(ds); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(dir, "tournaments.json"))
	if err != nil {
		t.Fatalf("read after second run: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("re-running with an unchanged table must produce byte-identical output")
	}

	ts, err := ds.ReadTournaments()
	if err != nil {
		t.Fatalf("read tournaments: %v", err)
	}
	if ts[0].CommonName != "French Open" {
		t.Errorf("commonName = %q", ts[0].CommonName)
	}
	if ts[1].CommonName != "" {
		t.Errorf("unmapped tournament should have no commonName, got %q", ts[1].CommonName)
	}
}
