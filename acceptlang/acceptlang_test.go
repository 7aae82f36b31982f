package acceptlang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spotify/localeaffinity/acceptlang"
)

func TestParseBasic(t *testing.T) {
	got := acceptlang.Parse("da, en-gb;q=0.8, en;q=0.7")
	want := []acceptlang.LanguageRange{
		{Range: "da", Weight: 1.0},
		{Range: "en-GB", Weight: 0.8},
		{Range: "en", Weight: 0.7},
	}
	assert.Equal(t, want, got)
}

func TestParseUnderscoreAndExtension(t *testing.T) {
	got := acceptlang.Parse("FR_be, ja-JP@calendar=buddhist")
	want := []acceptlang.LanguageRange{
		{Range: "fr-BE", Weight: 1.0},
		{Range: "ja-JP", Weight: 1.0},
	}
	assert.Equal(t, want, got)
}

func TestParseNegativeWeightClampedToZero(t *testing.T) {
	got := acceptlang.Parse("en;q=-3")
	assert.Equal(t, []acceptlang.LanguageRange{{Range: "en", Weight: 0}}, got)
}

func TestParseUnparseableWeightDiscarded(t *testing.T) {
	got := acceptlang.Parse("en;q=banana, fr;q=0.5")
	assert.Equal(t, []acceptlang.LanguageRange{{Range: "fr", Weight: 0.5}}, got)
}

func TestParseDropsPureWildcard(t *testing.T) {
	got := acceptlang.Parse("*, en")
	assert.Equal(t, []acceptlang.LanguageRange{{Range: "en", Weight: 1.0}}, got)
}

func TestParseTrailingWildcardStrippedNoExpansion(t *testing.T) {
	got := acceptlang.Parse("zh-*")
	assert.Equal(t, []acceptlang.LanguageRange{{Range: "zh", Weight: 1.0}}, got)
}

func TestParseMidWildcardExpandsToCLDRLocales(t *testing.T) {
	got := acceptlang.Parse("zh-*-TW")
	assert.NotEmpty(t, got)
	for _, lr := range got {
		assert.NotContains(t, lr.Range, "*")
		assert.Contains(t, lr.Range, "zh")
		assert.Contains(t, lr.Range, "TW")
	}
}

func TestParseDeduplicatesKeepingFirst(t *testing.T) {
	got := acceptlang.Parse("en;q=0.9, en;q=0.5")
	assert.Equal(t, []acceptlang.LanguageRange{{Range: "en", Weight: 0.9}}, got)
}

func TestParseGarbageInputIsRobust(t *testing.T) {
	assert.NotPanics(t, func() {
		acceptlang.Parse("")
		acceptlang.Parse(",,,")
		acceptlang.Parse(";;;")
		acceptlang.Parse("q=0.5")
		acceptlang.Parse("xx-yy-zz-qq-rr")
	})
}

func TestParseSpecScenarioS10(t *testing.T) {
	got := acceptlang.Parse("JA_jp@calendar=buddhist, FR_be;q=0.3, ZH-Hant;q=0.2, fr-CA")
	want := []acceptlang.LanguageRange{
		{Range: "ja-JP", Weight: 1.0},
		{Range: "fr-CA", Weight: 1.0},
		{Range: "fr-BE", Weight: 0.3},
		{Range: "zh-Hant", Weight: 0.2},
	}
	assert.Equal(t, want, got)
}

func TestParseIdempotent(t *testing.T) {
	header := "en-GB;q=0.9, fr;q=0.5, da"
	first := acceptlang.Parse(header)
	var rebuilt string
	for i, lr := range first {
		if i > 0 {
			rebuilt += ", "
		}
		rebuilt += lr.Range
	}
	second := acceptlang.Parse(rebuilt)
	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Range, second[i].Range)
	}
}
