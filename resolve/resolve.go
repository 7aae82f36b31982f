package resolve

import (
	"github.com/pkg/errors"

	"github.com/spotify/localeaffinity/internal/cldr"
	"github.com/spotify/localeaffinity/locale"
)

func isCLDRLocale(l locale.Locale) bool {
	return cldr.AvailableLocales[l.String()]
}

// SupportedLocale pairs the locale a caller should translate into with the
// related locales that should drive its number/date formatting (spec §3).
type SupportedLocale struct {
	localeForTranslations       locale.Locale
	relatedLocalesForFormatting []locale.Locale
}

// LocaleForTranslations returns the locale translated strings should come
// from.
func (s SupportedLocale) LocaleForTranslations() locale.Locale { return s.localeForTranslations }

// RelatedLocalesForFormatting returns the CLDR locales eligible to drive
// this supported locale's formatting.
func (s SupportedLocale) RelatedLocalesForFormatting() []locale.Locale {
	out := make([]locale.Locale, len(s.relatedLocalesForFormatting))
	copy(out, s.relatedLocalesForFormatting)
	return out
}

// NewSupportedLocale validates and builds a SupportedLocale (spec §3):
// forTranslations must be a non-root CLDR locale that appears in
// relatedForFormatting, and every related locale must itself be CLDR and
// either equal to, or a descendant of, forTranslations' highest ancestor.
func NewSupportedLocale(forTranslations locale.Locale, relatedForFormatting []locale.Locale) (SupportedLocale, error) {
	if forTranslations.IsRoot() {
		return SupportedLocale{}, errors.New("resolve: localeForTranslations must not be root")
	}
	if !isCLDRLocale(forTranslations) {
		return SupportedLocale{}, errors.Errorf("resolve: localeForTranslations %q is not a CLDR locale", forTranslations)
	}

	highest, err := locale.HighestAncestor(forTranslations)
	if err != nil {
		return SupportedLocale{}, errors.Wrapf(err, "resolve: highest ancestor of %q", forTranslations)
	}

	foundSelf := false
	for _, related := range relatedForFormatting {
		if related.Equal(forTranslations) {
			foundSelf = true
		}
		if !isCLDRLocale(related) {
			return SupportedLocale{}, errors.Errorf("resolve: related locale %q is not a CLDR locale", related)
		}
		if !related.Equal(highest) && !locale.IsDescendantOf(related, highest) {
			return SupportedLocale{}, errors.Errorf(
				"resolve: related locale %q is not %q or a descendant of it", related, highest,
			)
		}
	}
	if !foundSelf {
		return SupportedLocale{}, errors.Errorf(
			"resolve: localeForTranslations %q must appear in relatedLocalesForFormatting", forTranslations,
		)
	}

	out := make([]locale.Locale, len(relatedForFormatting))
	copy(out, relatedForFormatting)
	return SupportedLocale{localeForTranslations: forTranslations, relatedLocalesForFormatting: out}, nil
}

// ResolvedLocale is the terminal result of resolving a caller's requested
// locale against the supported set (spec §3): the locale to translate
// into, its ordered fallback chain, and the locale its number/date
// formatting should use.
type ResolvedLocale struct {
	localeForTranslations locale.Locale
	fallbacks             []locale.Locale
	localeForFormatting   locale.Locale
}

// LocaleForTranslations returns the primary resolved locale.
func (r ResolvedLocale) LocaleForTranslations() locale.Locale { return r.localeForTranslations }

// Fallbacks returns the ordered fallback chain, excluding the primary.
func (r ResolvedLocale) Fallbacks() []locale.Locale {
	out := make([]locale.Locale, len(r.fallbacks))
	copy(out, r.fallbacks)
	return out
}

// LocaleForFormatting returns the locale formatting should use.
func (r ResolvedLocale) LocaleForFormatting() locale.Locale { return r.localeForFormatting }

// NewResolvedLocale validates and builds a ResolvedLocale (spec §3):
// fallbacks must never contain root or the primary, must all be CLDR
// locales sharing the primary's highest ancestor, and localeForFormatting
// must be the primary or a descendant of the primary's highest ancestor.
func NewResolvedLocale(forTranslations locale.Locale, fallbacks []locale.Locale, forFormatting locale.Locale) (ResolvedLocale, error) {
	if forTranslations.IsRoot() {
		return ResolvedLocale{}, errors.New("resolve: localeForTranslations must not be root")
	}
	if !isCLDRLocale(forTranslations) {
		return ResolvedLocale{}, errors.Errorf("resolve: localeForTranslations %q is not a CLDR locale", forTranslations)
	}

	highest, err := locale.HighestAncestor(forTranslations)
	if err != nil {
		return ResolvedLocale{}, errors.Wrapf(err, "resolve: highest ancestor of %q", forTranslations)
	}

	for _, fb := range fallbacks {
		if fb.IsRoot() {
			return ResolvedLocale{}, errors.New("resolve: fallbacks must not contain root")
		}
		if fb.Equal(forTranslations) {
			return ResolvedLocale{}, errors.Errorf("resolve: fallbacks must not contain the primary locale %q", forTranslations)
		}
		if !isCLDRLocale(fb) {
			return ResolvedLocale{}, errors.Errorf("resolve: fallback %q is not a CLDR locale", fb)
		}
		if !fb.Equal(highest) && !locale.IsDescendantOf(fb, highest) {
			return ResolvedLocale{}, errors.Errorf(
				"resolve: fallback %q does not share highest ancestor %q with the primary locale", fb, highest,
			)
		}
	}

	if !forFormatting.Equal(forTranslations) && !locale.IsDescendantOf(forFormatting, highest) {
		return ResolvedLocale{}, errors.Errorf(
			"resolve: localeForFormatting %q must be the primary locale or a descendant of its highest ancestor %q",
			forFormatting, highest,
		)
	}

	out := make([]locale.Locale, len(fallbacks))
	copy(out, fallbacks)
	return ResolvedLocale{localeForTranslations: forTranslations, fallbacks: out, localeForFormatting: forFormatting}, nil
}
