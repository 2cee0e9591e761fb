package storage

import (
	"database/sql"
	"fmt"

	"github.com/pable/go-atp-stats/internal/model"
)

// InsertPlayers bulk-inserts players in a transaction. INSERT OR REPLACE keeps
// re-exports idempotent.
func (db *DB) InsertPlayers(players []model.Player) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO players(id, name) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		if _, err := stmt.Exec(p.ID, p.Name); err != nil {
			return fmt.Errorf("insert player %s: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

// InsertTournaments bulk-inserts tournaments in a transaction.
func (db *DB) InsertTournaments(ts []model.Tournament) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO tournaments(id, year, name, common_name, location, series, court, surface)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range ts {
		if _, err := stmt.Exec(t.ID, t.Year, t.Name, t.CommonName, t.Location, t.Series, t.Court, t.Surface); err != nil {
			return fmt.Errorf("insert tournament %s: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

// InsertMatches bulk-inserts matches in a transaction.
func (db *DB) InsertMatches(ms []model.Match) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO matches(
			id, tournament_id, date, round, best_of, winner_id, loser_id,
			w_rank, l_rank, w_pts, l_pts, score, wsets, lsets, comment
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range ms {
		_, err := stmt.Exec(
			m.ID, m.TournamentID, m.Date, m.Round.String(), m.BestOf, m.WinnerID, m.LoserID,
			nullInt(m.WRank), nullInt(m.LRank), nullInt(m.WPts), nullInt(m.LPts),
			m.Score(), m.WSets, m.LSets, m.Comment,
		)
		if err != nil {
			return fmt.Errorf("insert match %s: %w", m.ID, err)
		}
	}
	return tx.Commit()
}

// InsertDerived bulk-inserts derived stats in a transaction.
func (db *DB) InsertDerived(ds []model.Derived) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO derived(
			match_id, rank_diff, pts_diff, total_games, sets_played,
			straight_sets, has_tiebreak, upset
		) VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range ds {
		_, err := stmt.Exec(
			d.MatchID, nullInt(d.RankDiff), nullInt(d.PtsDiff), nullInt(d.TotalGames),
			d.SetsPlayed, boolInt(d.StraightSets), boolInt(d.HasTiebreak), nullBool(d.Upset),
		)
		if err != nil {
			return fmt.Errorf("insert derived %s: %w", d.MatchID, err)
		}
	}
	return tx.Commit()
}

// ListTournaments returns all stored tournaments ordered by year then name.
func (db *DB) ListTournaments() ([]model.Tournament, error) {
	rows, err := db.conn.Query(`
		SELECT id, year, name, common_name, location, series, court, surface
		FROM tournaments ORDER BY year, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Tournament
	for rows.Next() {
		var t model.Tournament
		if err := rows.Scan(&t.ID, &t.Year, &t.Name, &t.CommonName, &t.Location,
			&t.Series, &t.Court, &t.Surface); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetTournamentByPrefix finds the first tournament whose ID starts with the
// given prefix, ordered by year then name. Nil when nothing matches.
func (db *DB) GetTournamentByPrefix(prefix string) (*model.Tournament, error) {
	var t model.Tournament
	err := db.conn.QueryRow(`
		SELECT id, year, name, common_name, location, series, court, surface
		FROM tournaments WHERE id LIKE ? || '%' ORDER BY year, name LIMIT 1`, prefix).
		Scan(&t.ID, &t.Year, &t.Name, &t.CommonName, &t.Location, &t.Series, &t.Court, &t.Surface)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// MatchView is a denormalized match row for display: player names resolved,
// derived flags joined in.
type MatchView struct {
	MatchID      string
	TournamentID string
	Date         string
	Round        string
	WinnerName   string
	LoserName    string
	WRank        *int
	LRank        *int
	Score        string
	Comment      string
	HasTiebreak  bool
	Upset        *bool
}

const matchViewSelect = `
	SELECT m.id, m.tournament_id, m.date, m.round,
	       pw.name, pl.name, m.w_rank, m.l_rank, m.score, m.comment,
	       COALESCE(d.has_tiebreak, 0), d.upset
	FROM matches m
	JOIN players pw ON pw.id = m.winner_id
	JOIN players pl ON pl.id = m.loser_id
	LEFT JOIN derived d ON d.match_id = m.id`

func scanMatchViews(rows *sql.Rows) ([]MatchView, error) {
	defer rows.Close()
	var out []MatchView
	for rows.Next() {
		var v MatchView
		var wRank, lRank, upset sql.NullInt64
		var tiebreak int
		if err := rows.Scan(&v.MatchID, &v.TournamentID, &v.Date, &v.Round,
			&v.WinnerName, &v.LoserName, &wRank, &lRank, &v.Score, &v.Comment,
			&tiebreak, &upset); err != nil {
			return nil, err
		}
		v.WRank = fromNullInt(wRank)
		v.LRank = fromNullInt(lRank)
		v.HasTiebreak = tiebreak != 0
		if upset.Valid {
			b := upset.Int64 != 0
			v.Upset = &b
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// GetTournamentMatches returns the display rows for one tournament in date
// order.
func (db *DB) GetTournamentMatches(tournamentID string) ([]MatchView, error) {
	rows, err := db.conn.Query(matchViewSelect+`
		WHERE m.tournament_id = ? ORDER BY m.date, m.id`, tournamentID)
	if err != nil {
		return nil, err
	}
	return scanMatchViews(rows)
}

// HeadToHead holds the record between two players across the whole dataset.
type HeadToHead struct {
	PlayerA, PlayerB string
	WinsA, WinsB     int
	Matches          []MatchView
}

// GetHeadToHead returns every match between the two exactly named players,
// oldest first, with win totals from A's perspective. Names are compared
// exactly, so two identical names are one player and have no head-to-head.
func (db *DB) GetHeadToHead(nameA, nameB string) (*HeadToHead, error) {
	if nameA == nameB {
		return nil, fmt.Errorf("head-to-head needs two distinct players, got %q twice", nameA)
	}
	rows, err := db.conn.Query(matchViewSelect+`
		WHERE (pw.name = ? AND pl.name = ?) OR (pw.name = ? AND pl.name = ?)
		ORDER BY m.date, m.id`, nameA, nameB, nameB, nameA)
	if err != nil {
		return nil, err
	}
	views, err := scanMatchViews(rows)
	if err != nil {
		return nil, err
	}

	h := &HeadToHead{PlayerA: nameA, PlayerB: nameB, Matches: views}
	for _, v := range views {
		if v.WinnerName == nameA {
			h.WinsA++
		} else {
			h.WinsB++
		}
	}
	return h, nil
}

// QueryRaw runs an arbitrary query and returns columns plus stringified rows.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range raw {
			switch x := v.(type) {
			case nil:
				row[i] = ""
			case []byte:
				row[i] = string(x)
			default:
				row[i] = fmt.Sprintf("%v", x)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullBool(p *bool) any {
	if p == nil {
		return nil
	}
	return boolInt(*p)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func fromNullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
