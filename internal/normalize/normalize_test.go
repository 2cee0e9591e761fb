package normalize

import (
	"testing"

	"github.com/pable/go-atp-stats/internal/model"
)

func TestValue(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"  Federer R. ", "Federer R.", true},
		{"", "", false},
		{"   ", "", false},
		{"N/A", "", false},
		{"n/a", "", false},
		{"NA", "NA", true}, // only the exact N/A spelling is absent
	}
	for _, c := range cases {
		got, ok := Value(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("Value(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestNumber(t *testing.T) {
	if _, ok := Number("abc"); ok {
		t.Error("Number(abc) should be absent")
	}
	if _, ok := Number(""); ok {
		t.Error("Number of empty should be absent")
	}
	if n, ok := Number(" 1590 "); !ok || n != 1590 {
		t.Errorf("Number(1590) = (%v, %v)", n, ok)
	}
	if n, ok := Int("7.0"); !ok || n != 7 {
		t.Errorf("Int(7.0) = (%v, %v)", n, ok)
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"2024-01-02", "2024-01-02", true},
		{"01/02/2024", "2024-01-02", true},
		{"1/2/24", "2024-01-02", true}, // 2-digit year assumed 20xx
		{"01/02/24", "2024-01-02", true},
		{"02.01.2024", "", false},
		{"yesterday", "", false},
		{"13/40/2024", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := Date(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("Date(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		in   string
		want model.Round
	}{
		{"1st Round", model.Round1R},
		{"2nd Round", model.Round2R},
		{"3rd Round", model.Round3R},
		{"4th Round", model.Round4R},
		{"Quarterfinals", model.RoundQF},
		{"Semifinals", model.RoundSF},
		{"The Final", model.RoundF},
		{"Final", model.RoundF},
		{"Round Robin", model.RoundRR},
		{"Q1", model.RoundQ1},
		{"Q2", model.RoundQ2},
		{"Q3", model.RoundQ3},
	}
	for _, c := range cases {
		if got := Round(c.in); got != c.want {
			t.Errorf("Round(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

// A "Semifinals" label contains "final" as a substring; the ordered rules must
// classify it as SF, never F.
func TestRoundSemifinalBeforeFinal(t *testing.T) {
	if got := Round("Semifinal"); got != model.RoundSF {
		t.Errorf("Round(Semifinal) = %v, want SF", got)
	}
}

// Unrecognized labels fall back to 1R. This is lossy on purpose: malformed
// input is misclassified rather than aborting the run.
func TestRoundLossyFallback(t *testing.T) {
	for _, in := range []string{"", "Fifth Round", "garbage", "R128"} {
		if got := Round(in); got != model.Round1R {
			t.Errorf("Round(%q) = %v, want 1R fallback", in, got)
		}
	}
}

func TestSeries(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Grand Slam", "Grand Slam"},
		{"Masters 1000", "Masters"},
		{"ATP500", "ATP500"},
		{"ATP250", "ATP250"},
		{"International Gold", "ATP250"}, // default
	}
	for _, c := range cases {
		if got := Series(c.in); got != c.want {
			t.Errorf("Series(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSurface(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Hard", "Hard"},
		{"Clay", "Clay"},
		{"Grass", "Grass"},
		{"Carpet", "Carpet"},
		{"Acrylic", "Hard"}, // default
	}
	for _, c := range cases {
		if got := Surface(c.in); got != c.want {
			t.Errorf("Surface(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCourt(t *testing.T) {
	if got := Court("Indoor"); got != "Indoor" {
		t.Errorf("Court(Indoor) = %q", got)
	}
	if got := Court("indoor hard"); got != "Indoor" {
		t.Errorf("Court(indoor hard) = %q", got)
	}
	if got := Court("Outdoor"); got != "Outdoor" {
		t.Errorf("Court(Outdoor) = %q", got)
	}
	if got := Court(""); got != "Outdoor" {
		t.Errorf("Court(empty) = %q, want Outdoor default", got)
	}
}
