// Package normalize canonicalizes raw CSV field values: dates, categorical
// enums and numerics. All functions are pure per-field transforms; unrecognized
// categorical input falls back to a deterministic default with a logged
// warning, it never fails the run.
package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pable/go-atp-stats/internal/model"
)

// Value trims s; empty or a case-insensitive "N/A" counts as absent.
func Value(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "N/A") {
		return "", false
	}
	return s, true
}

// Number parses s as a number after Value cleanup; absent if unparseable.
func Number(s string) (float64, bool) {
	v, ok := Value(s)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int is Number truncated to an integer, for rank/points/games columns.
func Int(s string) (int, bool) {
	f, ok := Number(s)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Date parses YYYY-MM-DD or MM/DD/YYYY (2-digit years assumed 20xx) and
// returns the canonical YYYY-MM-DD form. Any other shape logs a warning and
// returns absent; rows without a date are dropped downstream.
func Date(s string) (string, bool) {
	v, ok := Value(s)
	if !ok {
		return "", false
	}

	if d, ok := parseISO(v); ok {
		return d, true
	}
	if d, ok := parseSlash(v); ok {
		return d, true
	}

	logrus.WithField("value", v).Warn("unparseable date, dropping row")
	return "", false
}

func parseISO(v string) (string, bool) {
	parts := strings.Split(v, "-")
	if len(parts) != 3 {
		return "", false
	}
	y, errY := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	d, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil || len(parts[0]) != 4 {
		return "", false
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), true
}

func parseSlash(v string) (string, bool) {
	parts := strings.Split(v, "/")
	if len(parts) != 3 {
		return "", false
	}
	m, errM := strconv.Atoi(parts[0])
	d, errD := strconv.Atoi(parts[1])
	y, errY := strconv.Atoi(parts[2])
	if errM != nil || errD != nil || errY != nil {
		return "", false
	}
	if len(parts[2]) == 2 {
		y += 2000
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), true
}

// roundRule maps a lowercase substring to its canonical round. Rules are
// ordered; the first match wins, so "semifinal" is tested before "final".
type roundRule struct {
	substr string
	round  model.Round
}

var roundRules = []roundRule{
	{"1st round", model.Round1R},
	{"2nd round", model.Round2R},
	{"3rd round", model.Round3R},
	{"4th round", model.Round4R},
	{"quarter", model.RoundQF},
	{"semifinal", model.RoundSF},
	{"the final", model.RoundF},
	{"final", model.RoundF},
	{"round robin", model.RoundRR},
	{"q1", model.RoundQ1},
	{"q2", model.RoundQ2},
	{"q3", model.RoundQ3},
}

// Round maps a raw round label onto the fixed round vocabulary. Unrecognized
// input defaults to 1R with a warning: a deliberate lossy fallback that can
// misclassify malformed labels rather than abort the run.
func Round(s string) model.Round {
	v, _ := Value(s)
	low := strings.ToLower(v)
	for _, r := range roundRules {
		if strings.Contains(low, r.substr) {
			return r.round
		}
	}
	logrus.WithFields(logrus.Fields{"value": s, "fallback": model.Round1R}).
		Warn("unrecognized round")
	return model.Round1R
}

// Series maps a raw series label onto the tournament tier vocabulary;
// defaults to ATP250.
func Series(s string) string {
	up := strings.ToUpper(s)
	switch {
	case strings.Contains(up, "GRAND SLAM"):
		return "Grand Slam"
	case strings.Contains(up, "MASTERS"):
		return "Masters"
	case strings.Contains(up, "ATP500"):
		return "ATP500"
	case strings.Contains(up, "ATP250"):
		return "ATP250"
	}
	logrus.WithFields(logrus.Fields{"value": s, "fallback": "ATP250"}).
		Warn("unrecognized series")
	return "ATP250"
}

// Surface maps a raw surface label onto {Hard, Clay, Grass, Carpet};
// defaults to Hard.
func Surface(s string) string {
	up := strings.ToUpper(s)
	switch {
	case strings.Contains(up, "HARD"):
		return "Hard"
	case strings.Contains(up, "CLAY"):
		return "Clay"
	case strings.Contains(up, "GRASS"):
		return "Grass"
	case strings.Contains(up, "CARPET"):
		return "Carpet"
	}
	logrus.WithFields(logrus.Fields{"value": s, "fallback": "Hard"}).
		Warn("unrecognized surface")
	return "Hard"
}

// Court returns Indoor if the label contains "indoor", else Outdoor.
func Court(s string) string {
	if strings.Contains(strings.ToUpper(s), "INDOOR") {
		return "Indoor"
	}
	return "Outdoor"
}
