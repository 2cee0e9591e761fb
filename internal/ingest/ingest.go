// Package ingest turns per-year match CSVs into the normalized dataset:
// players, tournaments, matches and derived per-match analytics. Row-level
// defects (missing required field, unparseable date, zero recorded sets
// without a retirement) drop the row and the run continues; only missing
// input and I/O failures are fatal.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pable/go-atp-stats/internal/ident"
	"github.com/pable/go-atp-stats/internal/model"
	"github.com/pable/go-atp-stats/internal/normalize"
	"github.com/pable/go-atp-stats/internal/resolve"
)

var yearFile = regexp.MustCompile(`^\d{4}\.csv$`)

// DiscoverFiles returns the per-year CSV files in dir (names matching
// NNNN.csv), sorted ascending so batches merge in year order. No matching
// files is an error: the pipeline has nothing to do.
func DiscoverFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && yearFile.MatchString(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no year CSV files (NNNN.csv) found in %s", dir)
	}
	sort.Strings(files)
	return files, nil
}

// Row is one raw CSV record, keyed by header name. Unrecognized extra columns
// are carried but ignored.
type Row map[string]string

// ReadFile reads all rows of one CSV file into header-keyed rows.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		row := make(Row, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Dataset is the full output of one ingestion run.
type Dataset struct {
	Players     []model.Player
	Tournaments []model.Tournament
	Matches     []model.Match
	Derived     []model.Derived
}

// Run ingests every file through one shared resolver, so IDs stay stable
// across the whole multi-year merge.
func Run(files []string, res *resolve.Resolver, gen ident.Generator) (*Dataset, error) {
	ds := &Dataset{}
	for _, path := range files {
		rows, err := ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("ingest %s: %w", filepath.Base(path), err)
		}
		kept := 0
		for _, row := range rows {
			m, ok := BuildMatch(row, res, gen)
			if !ok {
				continue
			}
			ds.Matches = append(ds.Matches, *m)
			ds.Derived = append(ds.Derived, BuildDerived(m))
			kept++
		}
		logrus.WithFields(logrus.Fields{
			"file":    filepath.Base(path),
			"rows":    len(rows),
			"matches": kept,
		}).Info("ingested batch")
	}
	ds.Players = res.Players()
	ds.Tournaments = res.Tournaments()
	return ds, nil
}

// BuildMatch assembles one Match from a raw row. It returns false when the
// row must be dropped: tournament, winner, loser or date unresolved, or no
// recorded sets outside a retirement/walkover.
func BuildMatch(row Row, res *resolve.Resolver, gen ident.Generator) (*model.Match, bool) {
	date, ok := normalize.Date(row["Date"])
	if !ok {
		return nil, false
	}
	tname, ok1 := normalize.Value(row["Tournament"])
	location, ok2 := normalize.Value(row["Location"])
	winner, ok3 := normalize.Value(row["Winner"])
	loser, ok4 := normalize.Value(row["Loser"])
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, false
	}

	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return nil, false
	}

	t := res.Tournament(year, tname, location,
		normalize.Series(row["Series"]),
		normalize.Court(row["Court"]),
		normalize.Surface(row["Surface"]),
	)
	wp := res.Player(winner)
	lp := res.Player(loser)

	round := normalize.Round(row["Round"])

	// Compared as a float so a value like "5.9" stays best-of-3 instead of
	// truncating to 5.
	bestOf := 3
	if f, ok := normalize.Number(row["Best of"]); ok && f == 5 {
		bestOf = 5
	}

	w, l := scanSets(row)

	wsets, _ := normalize.Int(row["Wsets"])
	lsets, _ := normalize.Int(row["Lsets"])
	comment, _ := normalize.Value(row["Comment"])

	if len(w) == 0 && !zeroSetException(wsets, lsets, comment) {
		return nil, false
	}
	if w == nil {
		// Walkovers persist as empty arrays, not null.
		w, l = []int{}, []int{}
	}

	key := fmt.Sprintf("%s|%s|%s|%s|%s", t.ID, date, round, wp.ID, lp.ID)
	m := &model.Match{
		ID:           gen.ID("m", key),
		TournamentID: t.ID,
		Date:         date,
		Round:        round,
		BestOf:       bestOf,
		WinnerID:     wp.ID,
		LoserID:      lp.ID,
		WRank:        optInt(row["WRank"]),
		LRank:        optInt(row["LRank"]),
		WPts:         optInt(row["WPts"]),
		LPts:         optInt(row["LPts"]),
		W:            w,
		L:            l,
		WSets:        wsets,
		LSets:        lsets,
		Comment:      comment,
	}
	return m, true
}

// scanSets walks set slots 1..5 and stops at the first slot where both sides
// are absent. Gaps mid-sequence are not supported: the recorded sets are
// assumed to be a contiguous prefix. A slot with only one side present models
// a retirement mid-set; the missing side is coerced to 0.
func scanSets(row Row) (w, l []int) {
	for i := 1; i <= 5; i++ {
		wg, wok := normalize.Int(row["W"+strconv.Itoa(i)])
		lg, lok := normalize.Int(row["L"+strconv.Itoa(i)])
		if !wok && !lok {
			break
		}
		w = append(w, wg)
		l = append(l, lg)
	}
	return w, l
}

// zeroSetException keeps a match that recorded no sets only when the source
// agrees nothing was played: both set counts zero and the match ended by
// retirement or walkover.
func zeroSetException(wsets, lsets int, comment string) bool {
	return wsets == 0 && lsets == 0 && (comment == "Retired" || comment == "Walkover")
}

// BuildDerived computes the per-match analytics for m.
func BuildDerived(m *model.Match) model.Derived {
	d := model.Derived{
		MatchID:      m.ID,
		SetsPlayed:   len(m.W),
		StraightSets: m.LSets == 0,
	}

	if m.WRank != nil && m.LRank != nil {
		diff := *m.WRank - *m.LRank
		d.RankDiff = &diff
		// Lower rank number is the better player; the winner having the
		// larger number means the favourite lost.
		upset := *m.LRank < *m.WRank
		d.Upset = &upset
	}
	if m.WPts != nil && m.LPts != nil {
		diff := *m.WPts - *m.LPts
		d.PtsDiff = &diff
	}

	if len(m.W) > 0 {
		total := 0
		for i := range m.W {
			total += m.W[i] + m.L[i]
		}
		d.TotalGames = &total
	}

	// Tiebreak heuristic: a 7-x set with x >= 5 on either side. Unusual
	// long-deciding-set formats are not covered.
	for i := range m.W {
		wg, lg := m.W[i], m.L[i]
		if (wg == 7 && lg >= 5) || (lg == 7 && wg >= 5) {
			d.HasTiebreak = true
			break
		}
	}
	return d
}

func optInt(s string) *int {
	if n, ok := normalize.Int(s); ok {
		return &n
	}
	return nil
}
