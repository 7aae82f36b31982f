package affinity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spotify/localeaffinity/affinity"
	"github.com/spotify/localeaffinity/locale"
)

var scenarioTargetSet = []string{"ar", "bs", "es", "fr", "ja", "pt", "sr-Latn", "zh-Hant"}

func mustUnary(t *testing.T, tags []string) *affinity.UnaryCalculator {
	t.Helper()
	c, err := affinity.NewUnaryCalculatorFromTags(tags)
	require.NoError(t, err)
	return c
}

func TestScenarioS1HrHrMutuallyIntelligibleViaBosnianOverride(t *testing.T) {
	c := mustUnary(t, scenarioTargetSet)
	assert.Equal(t, affinity.MutuallyIntelligible, c.Calculate("hr-HR"))
}

func TestScenarioS2ZhTwSameViaSpokenLanguage(t *testing.T) {
	c := mustUnary(t, scenarioTargetSet)
	assert.Equal(t, affinity.Same, c.Calculate("zh-TW"))
}

func TestScenarioS3ZhCnNone(t *testing.T) {
	c := mustUnary(t, scenarioTargetSet)
	assert.Equal(t, affinity.None, c.Calculate("zh-CN"))
}

func TestScenarioS4CaLow(t *testing.T) {
	c := mustUnary(t, scenarioTargetSet)
	assert.Equal(t, affinity.Low, c.Calculate("ca"))
}

func TestScenarioS5DeDeGswAtMutuallyIntelligible(t *testing.T) {
	bi := affinity.BiCalculator{}
	assert.Equal(t, affinity.MutuallyIntelligible, bi.Calculate("de-DE", "gsw-AT"))
}

func TestScenarioS6SrCyrlSrLatnSame(t *testing.T) {
	bi := affinity.BiCalculator{}
	assert.Equal(t, affinity.Same, bi.Calculate("sr-Cyrl", "sr-Latn"))
}

func TestScenarioS7BsCyrlBaHrMkMutuallyIntelligible(t *testing.T) {
	bi := affinity.BiCalculator{}
	assert.Equal(t, affinity.MutuallyIntelligible, bi.Calculate("bs-Cyrl-BA", "hr-MK"))
}

func TestScenarioS8ZhHkZhHantJoinedSame(t *testing.T) {
	c := affinity.NewReferenceLocalesCalculator()
	assert.Equal(t, affinity.Same, c.Calculate("zh-HK", "zh-Hant"))
}

func TestScenarioS9FrChFrCaJoinedSame(t *testing.T) {
	c := affinity.NewReferenceLocalesCalculator()
	assert.Equal(t, affinity.Same, c.Calculate("fr-CH", "fr-CA"))
}

func TestPropertyReflexivityOfSame(t *testing.T) {
	bi := affinity.BiCalculator{}
	for _, tag := range []string{"en-US", "fr", "ja-JP", "zh-Hant", "sr-Cyrl"} {
		assert.Equal(t, affinity.Same, bi.Calculate(tag, tag), "biCalc(%s, %s)", tag, tag)
	}
}

func TestPropertySymmetry(t *testing.T) {
	bi := affinity.BiCalculator{}
	pairs := [][2]string{
		{"en-US", "en-GB"}, {"de-DE", "gsw-AT"}, {"ca", "es"}, {"zh-CN", "ja-JP"},
	}
	for _, p := range pairs {
		assert.Equal(t, bi.Calculate(p[0], p[1]), bi.Calculate(p[1], p[0]))
	}
}

func TestPropertySpokenLanguageDominance(t *testing.T) {
	bi := affinity.BiCalculator{}
	a, ok := locale.Parse("sr-Latn")
	require.True(t, ok)
	b, ok := locale.Parse("sr-Cyrl-RS")
	require.True(t, ok)
	spokenA, err := locale.SpokenLanguage(a)
	require.NoError(t, err)
	spokenB, err := locale.SpokenLanguage(b)
	require.NoError(t, err)
	require.True(t, spokenA.Equal(spokenB))

	assert.Equal(t, affinity.Same, bi.Calculate("sr-Latn", "sr-Cyrl-RS"))
}

func TestPropertyScoreBoundsNeverProduceInvalidAffinity(t *testing.T) {
	bi := affinity.BiCalculator{}
	tags := []string{"en-US", "fr-FR", "zh-Hant", "ar-EG", "hi-IN", "ja-JP", "ru-RU"}
	for _, a := range tags {
		for _, b := range tags {
			aff := bi.Calculate(a, b)
			assert.GreaterOrEqual(t, int(aff), int(affinity.None))
			assert.LessOrEqual(t, int(aff), int(affinity.Same))
		}
	}
}

func TestPropertyAffinityOrdering(t *testing.T) {
	assert.Less(t, int(affinity.None), int(affinity.Low))
	assert.Less(t, int(affinity.Low), int(affinity.High))
	assert.Less(t, int(affinity.High), int(affinity.MutuallyIntelligible))
	assert.Less(t, int(affinity.MutuallyIntelligible), int(affinity.Same))
}

func TestPropertyReferenceRoundTrip(t *testing.T) {
	c := affinity.NewReferenceLocalesCalculator()
	for _, ref := range []string{"en", "fr-CA", "zh-Hant", "de"} {
		best, ok := c.BestMatchingReferenceLocale(ref)
		require.True(t, ok)
		assert.Equal(t, ref, best.String())

		found := false
		for _, rel := range c.RelatedReferenceLocales(ref) {
			if rel.Reference.String() == ref {
				assert.Equal(t, affinity.Same, rel.Affinity)
				found = true
			}
		}
		assert.True(t, found, "reference %q must relate to itself", ref)
	}
}

func TestPropertyRobustnessOnGarbageInput(t *testing.T) {
	bi := affinity.BiCalculator{}
	for _, bad := range []string{"", " Invalid tag ", "!!!", "xx-yy-zz-qq"} {
		assert.Equal(t, affinity.None, bi.Calculate(bad, "en-US"))
		assert.Equal(t, affinity.None, bi.Calculate("en-US", bad))
	}

	c := mustUnary(t, []string{"en-US"})
	for _, bad := range []string{"", " Invalid tag ", "!!!"} {
		assert.Equal(t, affinity.None, c.Calculate(bad))
	}
}

func TestUnaryCalculatorEmptyTargetSetIsNone(t *testing.T) {
	c := mustUnary(t, nil)
	assert.Equal(t, affinity.None, c.Calculate("en-US"))
}

func TestUnaryCalculatorRejectsRootTargetSet(t *testing.T) {
	_, err := affinity.NewUnaryCalculatorFromLocales([]locale.Locale{locale.Root})
	assert.ErrorIs(t, err, affinity.ErrTargetSetContainsRoot)
}

func TestUnaryCalculatorFromAcceptLanguage(t *testing.T) {
	c, err := affinity.NewUnaryCalculatorFromAcceptLanguage("fr-CA, es;q=0.5")
	require.NoError(t, err)
	assert.Equal(t, affinity.Same, c.Calculate("fr-FR"))
}

func TestAffinityString(t *testing.T) {
	assert.Equal(t, "NONE", affinity.None.String())
	assert.Equal(t, "SAME", affinity.Same.String())
	assert.Equal(t, "MUTUALLY_INTELLIGIBLE", affinity.MutuallyIntelligible.String())
}
