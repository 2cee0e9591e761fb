package model

import (
	"strconv"
	"strings"
)

// Round identifies a tournament round in canonical short form.
type Round string

const (
	RoundQ1 Round = "Q1"
	RoundQ2 Round = "Q2"
	RoundQ3 Round = "Q3"
	Round1R Round = "1R"
	Round2R Round = "2R"
	Round3R Round = "3R"
	Round4R Round = "4R"
	RoundQF Round = "QF"
	RoundSF Round = "SF"
	RoundF  Round = "F"
	RoundRR Round = "RR"
)

func (r Round) String() string { return string(r) }

// ---- Normalized entities ----

// Player is a unique competitor across the whole merged corpus. Created on the
// first encounter of an exact name string and never mutated afterwards. Two
// different people sharing an identical name string collapse into one Player;
// that is a documented limitation of exact-name identity, not a bug.
type Player struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
}

// Tournament is one yearly edition of an event. Recurring editions of the same
// event are distinct entities, one per year. CommonName is the only field ever
// mutated after creation (by the augment pass).
type Tournament struct {
	ID         string `json:"id"`
	Year       int    `json:"year"`
	Name       string `json:"name"`
	CommonName string `json:"commonName,omitempty"`
	Location   string `json:"location"`
	Series     string `json:"series"`
	Court      string `json:"court"`
	Surface    string `json:"surface"`
}

// Match is an immutable record of one completed match.
// Invariant: len(W) == len(L).
type Match struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournamentId"`
	Date         string `json:"date"` // YYYY-MM-DD
	Round        Round  `json:"round"`
	BestOf       int    `json:"bestOf"`
	WinnerID     string `json:"winnerId"`
	LoserID      string `json:"loserId"`
	WRank        *int   `json:"wRank,omitempty"`
	LRank        *int   `json:"lRank,omitempty"`
	WPts         *int   `json:"wPts,omitempty"`
	LPts         *int   `json:"lPts,omitempty"`
	W            []int  `json:"w"`
	L            []int  `json:"l"`
	WSets        int    `json:"wsets"`
	LSets        int    `json:"lsets"`
	Comment      string `json:"comment,omitempty"`
}

// Score renders the per-set "w-l" pairs space-joined, suffixed with " (RET)"
// when the match ended by retirement.
func (m Match) Score() string {
	parts := make([]string, len(m.W))
	for i := range m.W {
		parts[i] = strconv.Itoa(m.W[i]) + "-" + strconv.Itoa(m.L[i])
	}
	s := strings.Join(parts, " ")
	if m.Comment == "Retired" {
		s += " (RET)"
	}
	return s
}

// ---- Derived analytics ----

// Derived holds per-match analytics, 1:1 with Match, computed once.
type Derived struct {
	MatchID      string `json:"matchId"`
	RankDiff     *int   `json:"rankDiff,omitempty"`
	PtsDiff      *int   `json:"ptsDiff,omitempty"`
	TotalGames   *int   `json:"totalGames,omitempty"`
	SetsPlayed   int    `json:"setsPlayed"`
	StraightSets bool   `json:"straightSets"`
	HasTiebreak  bool   `json:"hasTiebreak"`
	Upset        *bool  `json:"upset,omitempty"`
}

// ---- Bracket tree ----

// BracketAttributes annotate a bracket node with the match it represents.
type BracketAttributes struct {
	Round      string `json:"round"`
	WinnerName string `json:"winnerName"`
	LoserName  string `json:"loserName"`
	Score      string `json:"score"`
}

// BracketNode is one node of a reconstructed single-elimination tree, rooted
// at a tournament's Final. A node has zero or exactly two children; when two,
// Children[0] is the winner's previous match and Children[1] the loser's.
type BracketNode struct {
	Name       string            `json:"name"`
	Attributes BracketAttributes `json:"attributes"`
	Children   []*BracketNode    `json:"children,omitempty"`
}
