// Package bracket reconstructs a tournament's single-elimination tree from
// its flat match list. No bracket metadata exists in the source data; the
// tree is inferred backwards from the Final by chasing each participant's
// previous match through the round-precedence chain.
package bracket

import (
	"github.com/sirupsen/logrus"

	"github.com/pable/go-atp-stats/internal/model"
)

// precedence maps each round to the round that feeds into it. Round Robin has
// no entry: round-robin brackets are unsupported by design, not an omission.
// The chain is finite and acyclic (9 hops at most), which bounds the
// recursion depth regardless of input.
var precedence = map[model.Round]model.Round{
	model.RoundF:  model.RoundSF,
	model.RoundSF: model.RoundQF,
	model.RoundQF: model.Round4R,
	model.Round4R: model.Round3R,
	model.Round3R: model.Round2R,
	model.Round2R: model.Round1R,
	model.Round1R: model.RoundQ3,
	model.RoundQ3: model.RoundQ2,
	model.RoundQ2: model.RoundQ1,
}

// Build reconstructs the bracket for one tournament from its match slice and
// the global player registry (keyed by player ID). It returns false when no
// tree can be built: a missing Final is a warning unless the tournament is
// round-robin, which is skipped silently.
func Build(t model.Tournament, matches []model.Match, players map[string]model.Player) (*model.BracketNode, bool) {
	final, ok := firstAtRound(matches, model.RoundF)
	if !ok {
		if hasRound(matches, model.RoundRR) {
			return nil, false
		}
		logrus.WithFields(logrus.Fields{
			"tournament": t.Name,
			"year":       t.Year,
		}).Warn("no final found, skipping bracket")
		return nil, false
	}
	return buildNode(final, matches, players), true
}

// buildNode emits the node for match m and recurses into the two feeding
// matches. Children are always [winner's side, loser's side]. A side with no
// qualifying match at the feeding round becomes a bye leaf.
func buildNode(m model.Match, matches []model.Match, players map[string]model.Player) *model.BracketNode {
	winner := playerName(players, m.WinnerID)
	loser := playerName(players, m.LoserID)

	n := &model.BracketNode{
		Name: winner,
		Attributes: model.BracketAttributes{
			Round:      m.Round.String(),
			WinnerName: winner,
			LoserName:  loser,
			Score:      m.Score(),
		},
	}

	childRound, ok := precedence[m.Round]
	if !ok {
		return n // base of the chain: a leaf
	}

	var winnerSide, loserSide *model.BracketNode
	if prev, ok := previousMatch(matches, childRound, m.WinnerID); ok {
		winnerSide = buildNode(prev, matches, players)
	} else {
		winnerSide = byeLeaf(childRound, winner)
	}
	if prev, ok := previousMatch(matches, childRound, m.LoserID); ok {
		loserSide = buildNode(prev, matches, players)
	} else {
		loserSide = byeLeaf(childRound, loser)
	}
	n.Children = []*model.BracketNode{winnerSide, loserSide}
	return n
}

// previousMatch finds the first match at round whose winner is playerID.
// "First in list order" means duplicate rows sharing a winner and round
// resolve to an arbitrary one; that ambiguity is inherited from the source
// data and deliberately not hardened here.
func previousMatch(matches []model.Match, round model.Round, playerID string) (model.Match, bool) {
	for _, m := range matches {
		if m.Round == round && m.WinnerID == playerID {
			return m, true
		}
	}
	return model.Match{}, false
}

func firstAtRound(matches []model.Match, round model.Round) (model.Match, bool) {
	for _, m := range matches {
		if m.Round == round {
			return m, true
		}
	}
	return model.Match{}, false
}

func hasRound(matches []model.Match, round model.Round) bool {
	_, ok := firstAtRound(matches, round)
	return ok
}

func byeLeaf(round model.Round, player string) *model.BracketNode {
	return &model.BracketNode{
		Name: player,
		Attributes: model.BracketAttributes{
			Round:      round.String(),
			WinnerName: player,
			LoserName:  "BYE",
			Score:      "BYE",
		},
	}
}

func playerName(players map[string]model.Player, id string) string {
	if p, ok := players[id]; ok {
		return p.Name
	}
	return id
}
