package distance

import (
	"github.com/pkg/errors"
	"github.com/spotify/localeaffinity/internal/cldr"
	"github.com/spotify/localeaffinity/locale"
)

// LSR is a fully maximized (language, script, region) triple (spec §3).
// Unlike locale.Locale it carries no variants: distance and maximization
// are defined purely on the LSR axes.
type LSR = cldr.LSR

// Maximize fills in l's missing script and/or region using CLDR's
// likely-subtags data (spec §4.5). l must not be root.
func Maximize(l locale.Locale) (LSR, error) {
	if l.IsRoot() {
		return LSR{}, errors.New("distance: cannot maximize root locale")
	}
	lsr, err := cldr.Maximize(l.Language(), l.Script(), l.Region())
	if err != nil {
		return LSR{}, errors.Wrapf(err, "distance: maximize %q", l)
	}
	return lsr, nil
}

// Distance returns the CLDR distance between two maximized LSR triples
// (spec §4.6). It is symmetric and 0 exactly when a and b are equal, with
// one hard-coded exception: Croatian and Bosnian are always distance 0,
// regardless of their actual CLDR-table distance (spec §4.6).
func Distance(a, b LSR) int {
	return cldr.Distance(a, b)
}

// MaxDistance is the threshold and denominator of the score formula (spec
// §4.6). Distance can report larger values (unrelated languages do); any
// distance at or above MaxDistance scores 0.
const MaxDistance = cldr.MaxDistance
