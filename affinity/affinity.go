package affinity

import (
	"math"

	"go.uber.org/zap"

	"github.com/spotify/localeaffinity/internal/cldr"
)

// Affinity is a closed, ordered 5-level enum (spec §3): NONE < LOW < HIGH <
// MUTUALLY_INTELLIGIBLE < SAME. Only the spoken-language short circuit in
// the calculators ever produces SAME; the score path tops out at
// MutuallyIntelligible.
type Affinity int

const (
	None Affinity = iota
	Low
	High
	MutuallyIntelligible
	Same
)

func (a Affinity) String() string {
	switch a {
	case None:
		return "NONE"
	case Low:
		return "LOW"
	case High:
		return "HIGH"
	case MutuallyIntelligible:
		return "MUTUALLY_INTELLIGIBLE"
	case Same:
		return "SAME"
	default:
		return "UNKNOWN"
	}
}

// SetLogger installs the internal/cldr logger, whose only use is the
// category-3 data-integrity diagnostic emitted if the CLDR tables are
// internally inconsistent (spec §7). That check runs once, in
// internal/cldr's package init, which completes before any caller can call
// SetLogger; the diagnostic therefore goes to the default no-op logger, and
// a logger installed here is not used by any path. Passing nil restores the
// no-op logger. This module has no other ambient logging: every other path
// is a pure, deterministic computation.
func SetLogger(l *zap.Logger) {
	cldr.SetLogger(l)
}

// scoreFromDistance implements spec §4.6's score formula:
// max(0, floor((MaxDistance - distance) / MaxDistance * 100)).
func scoreFromDistance(d int) int {
	v := math.Floor(float64(cldr.MaxDistance-d) / float64(cldr.MaxDistance) * 100)
	if v < 0 {
		return 0
	}
	return int(v)
}

// bucketFromScore maps a 0-100 score to its affinity bucket (spec §4.6).
// It never returns Same: Same is reserved for the spoken-language dominance
// short circuit in the calculators.
func bucketFromScore(score int) Affinity {
	switch {
	case score > 65:
		return MutuallyIntelligible
	case score > 30:
		return High
	case score > 0:
		return Low
	default:
		return None
	}
}

// affinityFromDistance turns a raw CLDR distance between two locales of the
// given languages into an affinity, applying the C7 linguistic overrides
// (Norwegian family, German/Swiss-German/Luxembourgish family) on top of
// the score (spec §4.6, §2 C7). The Croatian/Bosnian override lives one
// layer down, inside the distance engine itself (spec §4.5), so it is
// already folded into d by the time this function sees it.
func affinityFromDistance(d int, langA, langB string) Affinity {
	aff := bucketFromScore(scoreFromDistance(d))
	if cldr.IsLanguageOverridePair(langA, langB) && aff < MutuallyIntelligible {
		aff = MutuallyIntelligible
	}
	return aff
}
