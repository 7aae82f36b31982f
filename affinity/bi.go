package affinity

import (
	"github.com/spotify/localeaffinity/distance"
	"github.com/spotify/localeaffinity/internal/cldr"
	"github.com/spotify/localeaffinity/locale"
)

// BiCalculator scores the affinity between two individual tags directly
// (spec §4.8, C9), with no precomputed target set. It holds no state and
// is safe for concurrent use; its zero value is ready to use.
type BiCalculator struct{}

// Calculate returns the affinity between a and b. Either being unparseable
// or root yields NONE. Equal spoken-language locales yield SAME; otherwise
// the bucketed score of their distance, with C7's language-pair overrides
// applied.
func (BiCalculator) Calculate(a, b string) Affinity {
	la, ok := locale.Parse(a)
	if !ok || la.IsRoot() {
		return None
	}
	lb, ok := locale.Parse(b)
	if !ok || lb.IsRoot() {
		return None
	}

	spokenA, err := locale.SpokenLanguage(la)
	if err != nil {
		return None
	}
	spokenB, err := locale.SpokenLanguage(lb)
	if err != nil {
		return None
	}
	if spokenA.Equal(spokenB) {
		return Same
	}

	lsrA, err := distance.Maximize(la)
	if err != nil {
		return None
	}
	lsrB, err := distance.Maximize(lb)
	if err != nil {
		return None
	}

	d := distance.Distance(lsrA, lsrB)
	aff := bucketFromScore(scoreFromDistance(d))
	if cldr.IsLanguageOverridePair(la.Language(), lb.Language()) && aff < MutuallyIntelligible {
		aff = MutuallyIntelligible
	}
	return aff
}
