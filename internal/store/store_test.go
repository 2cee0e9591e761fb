package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pable/go-atp-stats/internal/model"
)

func openDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open dataset: %v", err)
	}
	return ds
}

func TestPlayersRoundTrip(t *testing.T) {
	ds := openDataset(t)
	in := []model.Player{
		{ID: "john-smith", Name: "John Smith"},
		{ID: "john-smith-2", Name: "John  Smith"},
	}
	if err := ds.WritePlayers(in); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := ds.ReadPlayers()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 2 || out[0].ID != "john-smith" || out[1].ID != "john-smith-2" {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestMatchOptionalFieldsOmitted(t *testing.T) {
	ds := openDataset(t)
	m := model.Match{
		ID: "m1", TournamentID: "t1", Date: "2024-01-02", Round: model.Round1R,
		BestOf: 3, WinnerID: "a", LoserID: "b",
		W: []int{6, 6}, L: []int{4, 4}, WSets: 2,
	}
	if err := ds.WriteMatches([]model.Match{m}); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw, err := os.ReadFile(filepath.Join(ds.Dir(), "matches.json"))
	if err != nil {
		t.Fatalf("read raw: %v", err)
	}
	for _, field := range []string{"wRank", "lRank", "wPts", "lPts", "comment"} {
		if bytes.Contains(raw, []byte(field)) {
			t.Errorf("absent field %q must be omitted from JSON", field)
		}
	}
}

// Writing the same dataset twice produces identical bytes; ingestion
// idempotence depends on this.
func TestWriteDeterministic(t *testing.T) {
	ds := openDataset(t)
	ts := []model.Tournament{
		{ID: "t42", Year: 2024, Name: "Open X", Location: "Paris", Series: "ATP250", Court: "Outdoor", Surface: "Clay"},
	}
	write := func() []byte {
		if err := ds.WriteTournaments(ts); err != nil {
			t.Fatalf("write: %v", err)
		}
		b, err := os.ReadFile(filepath.Join(ds.Dir(), "tournaments.json"))
		if err != nil {
			t.Fatalf("read raw: %v", err)
		}
		return b
	}
	if !bytes.Equal(write(), write()) {
		t.Error("identical writes must be byte-identical")
	}
}

func TestBracketRoundTrip(t *testing.T) {
	ds := openDataset(t)
	root := &model.BracketNode{
		Name: "Player a",
		Attributes: model.BracketAttributes{
			Round: "F", WinnerName: "Player a", LoserName: "Player b", Score: "6-4 6-4",
		},
		Children: []*model.BracketNode{
			{Name: "Player a", Attributes: model.BracketAttributes{Round: "SF", WinnerName: "Player a", LoserName: "BYE", Score: "BYE"}},
			{Name: "Player b", Attributes: model.BracketAttributes{Round: "SF", WinnerName: "Player b", LoserName: "BYE", Score: "BYE"}},
		},
	}
	if err := ds.WriteBracket("t42", root); err != nil {
		t.Fatalf("write bracket: %v", err)
	}
	got, err := ds.ReadBracket("t42")
	if err != nil {
		t.Fatalf("read bracket: %v", err)
	}
	if got.Name != "Player a" || len(got.Children) != 2 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Children[0].Attributes.Score != "BYE" {
		t.Errorf("child attrs lost: %+v", got.Children[0])
	}
}

func TestReadMissingFileFails(t *testing.T) {
	ds := openDataset(t)
	if _, err := ds.ReadMatches(); err == nil {
		t.Error("reading an absent dataset file must fail")
	}
}
