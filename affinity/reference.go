package affinity

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/spotify/localeaffinity/distance"
	"github.com/spotify/localeaffinity/internal/cldr"
	"github.com/spotify/localeaffinity/locale"
)

// referenceLocaleException is excluded from the reference-locale set: it is
// a variant for sorting collation behaviour, not a locale any input should
// ever be matched against (spec §6).
const referenceLocaleException = "en-US-POSIX"

// referenceLocales is the engine's fixed reference-locale set (spec §6):
// every CLDR-available locale but ROOT and referenceLocaleException,
// minimized, deduplicated. Computed once; read-only thereafter, like the
// rest of the CLDR tables it derives from.
var referenceLocales = buildReferenceLocales()

func buildReferenceLocales() []locale.Locale {
	byTag := make(map[string]locale.Locale)
	for _, tag := range sortedKeys(cldr.AvailableLocales) {
		if tag == referenceLocaleException {
			continue
		}
		l, ok := locale.Parse(tag)
		if !ok || l.IsRoot() {
			continue
		}
		min, err := minimize(l)
		if err != nil {
			continue
		}
		byTag[min.String()] = min
	}

	tags := maps.Keys(byTag)
	sort.Strings(tags)
	out := make([]locale.Locale, 0, len(tags))
	for _, tag := range tags {
		out = append(out, byTag[tag])
	}
	return out
}

func sortedKeys(m map[string]bool) []string {
	keys := maps.Keys(m)
	sort.Strings(keys)
	return keys
}

// minimize collapses l to the shortest tag that still maximizes back to
// l's own maximization, mirroring golang.org/x/text/language's minimizeTags:
// prefer dropping both script and region, then just the region (keeping
// script, which disambiguates multi-script languages better than region
// does), then just the script, keeping the full triple only if none of
// those round-trip.
func minimize(l locale.Locale) (locale.Locale, error) {
	if l.IsRoot() {
		return l, nil
	}
	max, err := cldr.Maximize(l.Language(), l.Script(), l.Region())
	if err != nil {
		return locale.Locale{}, err
	}

	if bare, err := cldr.Maximize(max.Language, "", ""); err == nil && bare == max {
		return reparse(max.Language)
	}
	if noRegion, err := cldr.Maximize(max.Language, max.Script, ""); err == nil && noRegion == max {
		return reparse(max.Language + "-" + max.Script)
	}
	if noScript, err := cldr.Maximize(max.Language, "", max.Region); err == nil && noScript == max {
		return reparse(max.Language + "-" + max.Region)
	}
	return reparse(max.Language + "-" + max.Script + "-" + max.Region)
}

func reparse(tag string) (locale.Locale, error) {
	l, ok := locale.Parse(tag)
	if !ok {
		return locale.Locale{}, errMinimizeReparse(tag)
	}
	return l, nil
}

type errMinimizeReparse string

func (e errMinimizeReparse) Error() string {
	return "affinity: minimized tag " + string(e) + " failed to re-parse"
}

// RelatedReferenceLocale pairs a reference locale with its affinity to the
// tag it was computed against (spec §3). Affinity is never NONE: the
// reference-locale calculator only reports locales that relate at all.
type RelatedReferenceLocale struct {
	Reference locale.Locale
	Affinity  Affinity
}

// ReferenceLocalesCalculator relates tags to the engine's fixed
// reference-locale set (spec §4.9, C10). Its zero value is ready to use.
type ReferenceLocalesCalculator struct {
	bi BiCalculator
}

// NewReferenceLocalesCalculator returns a ready-to-use
// ReferenceLocalesCalculator.
func NewReferenceLocalesCalculator() *ReferenceLocalesCalculator {
	return &ReferenceLocalesCalculator{}
}

// RelatedReferenceLocales returns every reference locale with a non-NONE
// affinity to tag, most-affine first (spec §4.9). An unparseable tag
// yields nil.
func (c *ReferenceLocalesCalculator) RelatedReferenceLocales(tag string) []RelatedReferenceLocale {
	if _, ok := locale.Parse(tag); !ok {
		return nil
	}
	var out []RelatedReferenceLocale
	for _, ref := range referenceLocales {
		aff := c.bi.Calculate(tag, ref.String())
		if aff == None {
			continue
		}
		out = append(out, RelatedReferenceLocale{Reference: ref, Affinity: aff})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Affinity > out[j].Affinity
	})
	return out
}

// BestMatchingReferenceLocale picks the single closest reference locale to
// tag (spec §4.9): highest affinity first, then smallest raw CLDR distance
// (so a reference locale equal to tag itself always wins its tier), then
// lexicographically smallest tag as a final, deterministic tiebreak. ok is
// false when nothing relates at all.
func (c *ReferenceLocalesCalculator) BestMatchingReferenceLocale(tag string) (locale.Locale, bool) {
	related := c.RelatedReferenceLocales(tag)
	if len(related) == 0 {
		return locale.Root, false
	}
	tagLocale, ok := locale.Parse(tag)
	if !ok {
		return locale.Root, false
	}
	tagLSR, err := distance.Maximize(tagLocale)
	if err != nil {
		return locale.Root, false
	}

	topTier := related[0].Affinity
	best := related[0]
	bestDist := -1
	for _, r := range related {
		if r.Affinity != topTier {
			break
		}
		refLSR, err := distance.Maximize(r.Reference)
		if err != nil {
			continue
		}
		d := distance.Distance(tagLSR, refLSR)
		switch {
		case bestDist == -1, d < bestDist:
			best, bestDist = r, d
		case d == bestDist && r.Reference.String() < best.Reference.String():
			best = r
		}
	}
	return best.Reference, true
}

// Calculate combines tag a's and tag b's relations to the reference-locale
// set into a single "join-ready" affinity (spec §4.9): the best affinity
// attainable through any reference locale both tags relate to at least as
// well. Two tags with no reference locale in common yield NONE.
func (c *ReferenceLocalesCalculator) Calculate(a, b string) Affinity {
	relatedA := c.RelatedReferenceLocales(a)
	if len(relatedA) == 0 {
		return None
	}
	relatedB := make(map[string]Affinity, len(relatedA))
	for _, r := range c.RelatedReferenceLocales(b) {
		relatedB[r.Reference.String()] = r.Affinity
	}

	best := None
	for _, ra := range relatedA {
		affB, ok := relatedB[ra.Reference.String()]
		if !ok {
			continue
		}
		combined := ra.Affinity
		if affB < combined {
			combined = affB
		}
		if combined > best {
			best = combined
		}
	}
	return best
}
