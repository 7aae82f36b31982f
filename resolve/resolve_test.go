package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spotify/localeaffinity/locale"
	"github.com/spotify/localeaffinity/resolve"
)

func mustParse(t *testing.T, tag string) locale.Locale {
	t.Helper()
	l, ok := locale.Parse(tag)
	require.True(t, ok, "parse %q", tag)
	return l
}

func TestNewSupportedLocaleValid(t *testing.T) {
	frFR := mustParse(t, "fr-FR")
	fr := mustParse(t, "fr")
	frCA := mustParse(t, "fr-CA")

	sl, err := resolve.NewSupportedLocale(frFR, []locale.Locale{frFR, fr, frCA})
	require.NoError(t, err)
	assert.True(t, sl.LocaleForTranslations().Equal(frFR))
	assert.Len(t, sl.RelatedLocalesForFormatting(), 3)
}

func TestNewSupportedLocaleRejectsRoot(t *testing.T) {
	_, err := resolve.NewSupportedLocale(locale.Root, nil)
	assert.Error(t, err)
}

func TestNewSupportedLocaleRejectsNonCLDRPrimary(t *testing.T) {
	bogus := mustParse(t, "en-XX")
	_, err := resolve.NewSupportedLocale(bogus, []locale.Locale{bogus})
	assert.Error(t, err)
}

func TestNewSupportedLocaleRequiresPrimaryInRelatedSet(t *testing.T) {
	frFR := mustParse(t, "fr-FR")
	frCA := mustParse(t, "fr-CA")
	_, err := resolve.NewSupportedLocale(frFR, []locale.Locale{frCA})
	assert.Error(t, err)
}

func TestNewSupportedLocaleRejectsUnrelatedFormatting(t *testing.T) {
	frFR := mustParse(t, "fr-FR")
	deDE := mustParse(t, "de-DE")
	_, err := resolve.NewSupportedLocale(frFR, []locale.Locale{frFR, deDE})
	assert.Error(t, err)
}

func TestNewResolvedLocaleValid(t *testing.T) {
	frCA := mustParse(t, "fr-CA")
	fr := mustParse(t, "fr")
	frFR := mustParse(t, "fr-FR")

	rl, err := resolve.NewResolvedLocale(frCA, []locale.Locale{fr}, frFR)
	require.NoError(t, err)
	assert.True(t, rl.LocaleForTranslations().Equal(frCA))
	assert.Equal(t, []locale.Locale{fr}, rl.Fallbacks())
	assert.True(t, rl.LocaleForFormatting().Equal(frFR))
}

func TestNewResolvedLocaleRejectsRootFallback(t *testing.T) {
	frCA := mustParse(t, "fr-CA")
	_, err := resolve.NewResolvedLocale(frCA, []locale.Locale{locale.Root}, frCA)
	assert.Error(t, err)
}

func TestNewResolvedLocaleRejectsPrimaryInFallbacks(t *testing.T) {
	frCA := mustParse(t, "fr-CA")
	_, err := resolve.NewResolvedLocale(frCA, []locale.Locale{frCA}, frCA)
	assert.Error(t, err)
}

func TestNewResolvedLocaleRejectsUnrelatedFallback(t *testing.T) {
	frCA := mustParse(t, "fr-CA")
	deDE := mustParse(t, "de-DE")
	_, err := resolve.NewResolvedLocale(frCA, []locale.Locale{deDE}, frCA)
	assert.Error(t, err)
}

func TestNewResolvedLocaleRejectsUnrelatedFormatting(t *testing.T) {
	frCA := mustParse(t, "fr-CA")
	deDE := mustParse(t, "de-DE")
	_, err := resolve.NewResolvedLocale(frCA, nil, deDE)
	assert.Error(t, err)
}
