package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spotify/localeaffinity/locale"
)

func TestParseCanonicalizesCasingAndSeparators(t *testing.T) {
	l, ok := locale.Parse("EN_gb")
	require.True(t, ok)
	assert.Equal(t, "en", l.Language())
	assert.Equal(t, "GB", l.Region())
	assert.Equal(t, "en-GB", l.String())
}

func TestParseStripsExtension(t *testing.T) {
	l, ok := locale.Parse("ja-JP@calendar=buddhist")
	require.True(t, ok)
	assert.Equal(t, "ja-JP", l.String())
}

func TestParseRemapsLegacyLanguageCode(t *testing.T) {
	l, ok := locale.Parse("iw-IL")
	require.True(t, ok)
	assert.Equal(t, "he", l.Language())
}

func TestParseRejectsUnknownLanguage(t *testing.T) {
	_, ok := locale.Parse("xx-US")
	assert.False(t, ok)
}

func TestParseRejectsOtherSingletonExtension(t *testing.T) {
	_, ok := locale.Parse("en-t-en")
	assert.False(t, ok)
}

func TestParseRejectsEmptyAndBlankInput(t *testing.T) {
	_, ok := locale.Parse("")
	assert.False(t, ok)
	_, ok = locale.Parse("   ")
	assert.False(t, ok)
}

func TestParseKeepsVariantSubtags(t *testing.T) {
	l, ok := locale.Parse("ca-ES-valencia")
	require.True(t, ok)
	assert.Equal(t, []string{"valencia"}, l.Variants())
	assert.Equal(t, "ca-ES-valencia", l.String())
}

func TestParseIsRobustOnGarbageInput(t *testing.T) {
	assert.NotPanics(t, func() {
		for _, bad := range []string{"!!!", "-", "--", "a-b-c-d-e-f-g", "123"} {
			locale.Parse(bad)
		}
	})
}

func TestAncestorsZhTw(t *testing.T) {
	zhTW, ok := locale.Parse("zh-TW")
	require.True(t, ok)

	ancestors, err := locale.Ancestors(zhTW)
	require.NoError(t, err)
	require.Len(t, ancestors, 1)
	assert.Equal(t, "zh-Hant", ancestors[0].String())

	highest, err := locale.HighestAncestor(zhTW)
	require.NoError(t, err)
	assert.Equal(t, "zh-Hant", highest.String())
}

func TestAncestorsPlainRegionChain(t *testing.T) {
	enGB, ok := locale.Parse("en-GB")
	require.True(t, ok)

	ancestors, err := locale.Ancestors(enGB)
	require.NoError(t, err)
	require.Len(t, ancestors, 1)
	assert.Equal(t, "en", ancestors[0].String())

	highest, err := locale.HighestAncestor(enGB)
	require.NoError(t, err)
	assert.Equal(t, "en", highest.String())
}

func TestHighestAncestorRejectsRoot(t *testing.T) {
	_, err := locale.HighestAncestor(locale.Root)
	assert.ErrorIs(t, err, locale.ErrRootHasNoParent)
}

func TestIsDescendantOf(t *testing.T) {
	zhTW, ok := locale.Parse("zh-TW")
	require.True(t, ok)
	zhHant, ok := locale.Parse("zh-Hant")
	require.True(t, ok)
	zhHans, ok := locale.Parse("zh-Hans")
	require.True(t, ok)

	assert.True(t, locale.IsDescendantOf(zhTW, zhHant))
	assert.False(t, locale.IsDescendantOf(zhTW, zhHans))
	assert.False(t, locale.IsDescendantOf(zhHant, zhHant), "a locale is not its own proper descendant")
}

func TestWrittenLanguageAttachesScriptForMultiScriptLanguages(t *testing.T) {
	zhCN, ok := locale.Parse("zh-CN")
	require.True(t, ok)
	written, err := locale.WrittenLanguage(zhCN)
	require.NoError(t, err)
	assert.Equal(t, "zh-Hans", written.String())

	zhTW, ok := locale.Parse("zh-TW")
	require.True(t, ok)
	written, err = locale.WrittenLanguage(zhTW)
	require.NoError(t, err)
	assert.Equal(t, "zh-Hant", written.String())
}

func TestWrittenLanguageLeavesSingleScriptLanguagesBare(t *testing.T) {
	enGB, ok := locale.Parse("en-GB")
	require.True(t, ok)
	written, err := locale.WrittenLanguage(enGB)
	require.NoError(t, err)
	assert.Equal(t, "en", written.String())
}

func TestSpokenLanguageFoldsNonPrimaryScript(t *testing.T) {
	srLatn, ok := locale.Parse("sr-Latn")
	require.True(t, ok)
	spoken, err := locale.SpokenLanguage(srLatn)
	require.NoError(t, err)
	assert.Equal(t, "sr", spoken.String())
}
