// Package resolve owns the player and tournament registries for the duration
// of one ingestion run. The Resolver is created by the pipeline, threaded
// through it explicitly, and discarded when the run ends; it is never a
// process-wide singleton. Both maps persist across every input batch of a run,
// so a multi-year merge shares one registry.
package resolve

import (
	"fmt"

	"github.com/pable/go-atp-stats/internal/ident"
	"github.com/pable/go-atp-stats/internal/model"
)

// Resolver deduplicates players and tournaments and assigns their IDs.
type Resolver struct {
	gen   ident.Generator
	slugs *ident.SlugAllocator

	playersByName map[string]*model.Player
	tournByKey    map[string]*model.Tournament

	// Insertion order, for deterministic output.
	players     []*model.Player
	tournaments []*model.Tournament
}

func New(gen ident.Generator) *Resolver {
	return &Resolver{
		gen:           gen,
		slugs:         ident.NewSlugAllocator(),
		playersByName: make(map[string]*model.Player),
		tournByKey:    make(map[string]*model.Tournament),
	}
}

// Player returns the registry entry for the exact normalized name, creating it
// on first encounter. Identity is the exact name string: two real people who
// share a name string are merged into one Player. That limitation is
// documented behavior and must not be silently "fixed" here.
func (r *Resolver) Player(name string) *model.Player {
	if p, ok := r.playersByName[name]; ok {
		return p
	}
	p := &model.Player{
		ID:   r.slugs.Next(ident.Slugify(name)),
		Name: name,
	}
	r.playersByName[name] = p
	r.players = append(r.players, p)
	return p
}

// Tournament returns the registry entry for (year, name, location), creating
// it on first encounter. Yearly editions of the same event are distinct
// entities, one per year.
func (r *Resolver) Tournament(year int, name, location, series, court, surface string) *model.Tournament {
	key := fmt.Sprintf("%d|%s|%s", year, name, location)
	if t, ok := r.tournByKey[key]; ok {
		return t
	}
	t := &model.Tournament{
		ID:       r.gen.ID("t", key),
		Year:     year,
		Name:     name,
		Location: location,
		Series:   series,
		Court:    court,
		Surface:  surface,
	}
	r.tournByKey[key] = t
	r.tournaments = append(r.tournaments, t)
	return t
}

// Players returns all registered players in first-encounter order.
func (r *Resolver) Players() []model.Player {
	out := make([]model.Player, len(r.players))
	for i, p := range r.players {
		out[i] = *p
	}
	return out
}

// Tournaments returns all registered tournaments in first-encounter order.
func (r *Resolver) Tournaments() []model.Tournament {
	out := make([]model.Tournament, len(r.tournaments))
	for i, t := range r.tournaments {
		out[i] = *t
	}
	return out
}
