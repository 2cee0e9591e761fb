// Package augment merges an external common-name lookup into the persisted
// tournament registry. The pass is idempotent and fully reflects the current
// table: a tournament absent from the table loses any commonName it had, so
// re-running with an unchanged table rewrites tournaments.json byte for byte.
package augment

import (
	"github.com/sirupsen/logrus"

	"github.com/pable/go-atp-stats/internal/model"
	"github.com/pable/go-atp-stats/internal/store"
)

// commonNames maps a tournament's formal name to the name fans actually use.
var commonNames = map[string]string{
	"BNP Paribas Open":            "Indian Wells Masters",
	"Internazionali BNL d'Italia": "Italian Open",
	"Mutua Madrid Open":           "Madrid Masters",
	"Rolex Monte-Carlo Masters":   "Monte-Carlo Masters",
	"Western & Southern Open":     "Cincinnati Masters",
	"Rogers Cup":                  "Canadian Open",
	"Roland Garros":               "French Open",
	"Nitto ATP Finals":            "ATP Finals",
	"Qatar Exxon Mobil Open":      "Qatar Open",
}

// Apply rewrites ts in place so commonName matches the table exactly.
// It returns the number of tournaments that received a common name.
func Apply(ts []model.Tournament) int {
	named := 0
	for i := range ts {
		if cn, ok := commonNames[ts[i].Name]; ok {
			ts[i].CommonName = cn
			named++
		} else {
			ts[i].CommonName = ""
		}
	}
	return named
}

// Run loads the persisted tournament registry, applies the table, and writes
// the registry back in place.
func Run(ds *store.Dataset) error {
	ts, err := ds.ReadTournaments()
	if err != nil {
		return err
	}
	named := Apply(ts)
	if err := ds.WriteTournaments(ts); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"tournaments": len(ts),
		"named":       named,
	}).Info("augmented common names")
	return nil
}
