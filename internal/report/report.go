package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-atp-stats/internal/model"
	"github.com/pable/go-atp-stats/internal/storage"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintTournamentHeader prints a one-line summary for the tournament.
func PrintTournamentHeader(w io.Writer, t model.Tournament) {
	name := t.Name
	if t.CommonName != "" && t.CommonName != t.Name {
		name = fmt.Sprintf("%s (%s)", t.Name, t.CommonName)
	}
	fmt.Fprintf(w, "\n%s %d  |  %s  |  %s  |  %s %s  |  ID: %s\n\n",
		name, t.Year, t.Location, t.Series, t.Court, t.Surface, t.ID)
}

// PrintMatchTable prints one tournament's matches with derived flags.
func PrintMatchTable(w io.Writer, views []storage.MatchView) {
	table := newTable(w)
	table.Header("DATE", "ROUND", "WINNER", "LOSER", "WRANK", "LRANK", "SCORE", "TB", "UPSET", "NOTE")

	for _, v := range views {
		table.Append(
			v.Date,
			v.Round,
			v.WinnerName,
			v.LoserName,
			rankStr(v.WRank),
			rankStr(v.LRank),
			v.Score,
			flagStr(v.HasTiebreak),
			optFlagStr(v.Upset),
			v.Comment,
		)
	}
	table.Render()
}

// PrintHeadToHead prints the all-time record between two players followed by
// every meeting.
func PrintHeadToHead(w io.Writer, h *storage.HeadToHead) {
	fmt.Fprintf(w, "\n%s %d – %d %s  (%d matches)\n\n",
		h.PlayerA, h.WinsA, h.WinsB, h.PlayerB, len(h.Matches))

	table := newTable(w)
	table.Header("DATE", "ROUND", "WINNER", "SCORE", "UPSET")
	for _, v := range h.Matches {
		table.Append(v.Date, v.Round, v.WinnerName, v.Score, optFlagStr(v.Upset))
	}
	table.Render()
}

func rankStr(p *int) string {
	if p == nil {
		return "—"
	}
	return strconv.Itoa(*p)
}

func flagStr(b bool) string {
	if b {
		return "✓"
	}
	return ""
}

func optFlagStr(p *bool) string {
	if p == nil {
		return "—"
	}
	return flagStr(*p)
}
