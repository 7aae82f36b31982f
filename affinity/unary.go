package affinity

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/spotify/localeaffinity/acceptlang"
	"github.com/spotify/localeaffinity/distance"
	"github.com/spotify/localeaffinity/internal/cldr"
	"github.com/spotify/localeaffinity/locale"
)

// ErrTargetSetContainsRoot is returned when a UnaryCalculator's target set
// includes the root locale, which spec §4.7 forbids outright.
var ErrTargetSetContainsRoot = errors.New("affinity: target locale set contains root locale")

// UnaryCalculator scores one input tag against a fixed, precomputed set of
// target locales (spec §4.7, C8). Construction does the CLDR filtering and
// maximization once; Calculate is then a cheap lookup plus a min-distance
// scan.
type UnaryCalculator struct {
	spokenSet      map[string]bool
	maximizedSet   []distance.LSR
	targetLanguage map[string]bool
}

// NewUnaryCalculatorFromLocales builds a UnaryCalculator from an explicit
// set of locales (spec §4.7). Containing root is an error; locales whose
// language CLDR does not recognize are silently filtered out.
func NewUnaryCalculatorFromLocales(against []locale.Locale) (*UnaryCalculator, error) {
	for _, l := range against {
		if l.IsRoot() {
			return nil, ErrTargetSetContainsRoot
		}
	}

	c := &UnaryCalculator{
		spokenSet:      make(map[string]bool),
		targetLanguage: make(map[string]bool),
	}
	seen := make(map[distance.LSR]bool)
	for _, l := range against {
		if !cldr.AvailableLanguages[l.Language()] {
			continue
		}
		spoken, err := locale.SpokenLanguage(l)
		if err != nil {
			continue
		}
		c.spokenSet[spoken.String()] = true
		c.targetLanguage[l.Language()] = true

		lsr, err := distance.Maximize(l)
		if err != nil {
			continue
		}
		if !seen[lsr] {
			seen[lsr] = true
			c.maximizedSet = append(c.maximizedSet, lsr)
		}
	}
	slices.SortFunc(c.maximizedSet, func(a, b distance.LSR) int {
		return compareLSR(a, b)
	})
	return c, nil
}

// NewUnaryCalculatorFromTags funnels raw tags through locale.Parse,
// discarding unparseable ones, then delegates to
// NewUnaryCalculatorFromLocales (spec §4.3).
func NewUnaryCalculatorFromTags(tags []string) (*UnaryCalculator, error) {
	var locales []locale.Locale
	for _, tag := range tags {
		if l, ok := locale.Parse(tag); ok {
			locales = append(locales, l)
		}
	}
	return NewUnaryCalculatorFromLocales(locales)
}

// NewUnaryCalculatorFromAcceptLanguage funnels an Accept-Language header
// through acceptlang.Parse and locale.Parse, discarding unparseable ranges,
// then delegates to NewUnaryCalculatorFromLocales (spec §4.3).
func NewUnaryCalculatorFromAcceptLanguage(header string) (*UnaryCalculator, error) {
	var locales []locale.Locale
	for _, lr := range acceptlang.Parse(header) {
		if l, ok := locale.Parse(lr.Range); ok {
			locales = append(locales, l)
		}
	}
	return NewUnaryCalculatorFromLocales(locales)
}

// Calculate returns tag's affinity against c's target set (spec §4.7):
// NONE if the set is empty or tag is unparseable; SAME if tag's
// spoken-language locale matches a target's; otherwise the bucketed score
// of the minimum distance to any target, with C7's language-pair overrides
// applied across the whole target language set.
func (c *UnaryCalculator) Calculate(tag string) Affinity {
	if len(c.maximizedSet) == 0 {
		return None
	}
	l, ok := locale.Parse(tag)
	if !ok || l.IsRoot() {
		return None
	}
	spoken, err := locale.SpokenLanguage(l)
	if err != nil {
		return None
	}
	if c.spokenSet[spoken.String()] {
		return Same
	}

	inputLSR, err := distance.Maximize(l)
	if err != nil {
		return None
	}
	minDist := -1
	for _, target := range c.maximizedSet {
		d := distance.Distance(inputLSR, target)
		if minDist == -1 || d < minDist {
			minDist = d
		}
	}

	aff := bucketFromScore(scoreFromDistance(minDist))
	for targetLang := range c.targetLanguage {
		if cldr.IsLanguageOverridePair(l.Language(), targetLang) && aff < MutuallyIntelligible {
			aff = MutuallyIntelligible
		}
	}
	return aff
}

func compareLSR(a, b distance.LSR) int {
	if a.Language != b.Language {
		if a.Language < b.Language {
			return -1
		}
		return 1
	}
	if a.Script != b.Script {
		if a.Script < b.Script {
			return -1
		}
		return 1
	}
	if a.Region != b.Region {
		if a.Region < b.Region {
			return -1
		}
		return 1
	}
	return 0
}
