package cldr

// MaxDistance is the shift constant used to turn a raw CLDR-style distance
// into a 0-100 score (spec §4.6, THRESHOLD = 224).
const MaxDistance = 224

// unrelatedLanguageDistance is the distance assigned to any language pair
// this table does not otherwise know to be related. It is deliberately
// above MaxDistance so two genuinely unrelated languages always land in
// NONE once combined with any nonzero script/region contribution.
const unrelatedLanguageDistance = 230

// languageDistances holds the hand-curated subset of CLDR's language-plane
// distances this engine needs: well-known close language families where the
// raw metric should read as closer than "unrelated", calibrated against the
// score thresholds in spec §4.6. It is not exhaustive; an unlisted pair
// falls back to unrelatedLanguageDistance.
var languageDistances = map[[2]string]int{
	{"ca", "es"}: 170, {"ca", "fr"}: 195, {"ca", "pt"}: 205,
	{"es", "pt"}: 95, {"es", "it"}: 120, {"fr", "it"}: 125, {"pt", "it"}: 130,
	{"ro", "it"}: 135,
	{"no", "da"}: 50, {"no", "sv"}: 95, {"da", "sv"}: 100,
	{"cs", "sk"}: 40,
	{"mk", "bg"}: 80, {"uk", "ru"}: 100, {"be", "ru"}: 90,
	{"hi", "ur"}: 60, {"ms", "id"}: 55,
}

// languageOverridePairs are language pairs the affinity kernel (not this
// distance engine) elevates to at least MUTUALLY_INTELLIGIBLE regardless of
// the score this package computes: the Norwegian family and the German /
// Swiss German / Luxembourgish family (spec §4.6, §2 C7).
var languageOverridePairs = map[[2]string]bool{
	pairKey("no", "nb"): true, pairKey("no", "nn"): true, pairKey("nb", "nn"): true,
	pairKey("de", "gsw"): true, pairKey("de", "lb"): true, pairKey("gsw", "lb"): true,
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// IsLanguageOverridePair reports whether the affinity kernel should force at
// least MUTUALLY_INTELLIGIBLE for this language pair irrespective of score.
func IsLanguageOverridePair(a, b string) bool {
	if a == b {
		return false
	}
	return languageOverridePairs[pairKey(a, b)]
}

func languageDistance(a, b string) int {
	if a == b {
		return 0
	}
	if d, ok := languageDistances[pairKey(a, b)]; ok {
		return d
	}
	return unrelatedLanguageDistance
}

// scriptDistanceSame holds same-language script-distance overrides for
// writing systems that differ enough to matter even within one language;
// Simplified vs Traditional Chinese is the only pair reachable through the
// calculators in this engine (every other multi-script language's
// alternate-script form folds to SAME via spoken-language dominance before
// distance is ever consulted, see locale.SpokenLanguage).
var scriptDistanceSame = map[[2]string]int{
	pairKey("Hans", "Hant"): unrelatedLanguageDistance,
}

const defaultScriptDistance = 100

func scriptDistance(sameLanguage bool, a, b string) int {
	if a == b {
		return 0
	}
	if sameLanguage {
		if d, ok := scriptDistanceSame[pairKey(a, b)]; ok {
			return d
		}
	}
	return defaultScriptDistance
}

// regionDistance is a flat approximation of CLDR's region-containment
// distance (x/text/language's regionDistance walks a graph of nested region
// groups); a real CLDR table would distinguish e.g. US-CA from US-DE, which
// this curated subset does not attempt (see DESIGN.md).
func regionDistance(a, b string) int {
	if a == b || a == "" || b == "" {
		return 0
	}
	return 6
}

// isCroatianBosnian detects the one hard-coded override inside the distance engine
// itself (spec §4.5): these two languages are treated as identical for
// distance purposes regardless of script or region.
func isCroatianBosnian(a, b string) bool {
	return pairKey(a, b) == pairKey("hr", "bs")
}

// Distance computes the CLDR locale distance between two maximised LSR
// triples. The underlying ICU table is asymmetric by direction, so the
// engine computes both directions and returns the minimum (spec §4.5).
func Distance(a, b LSR) int {
	if isCroatianBosnian(a.Language, b.Language) {
		return 0
	}
	fwd := oneWayDistance(a, b)
	bwd := oneWayDistance(b, a)
	if fwd < bwd {
		return fwd
	}
	return bwd
}

func oneWayDistance(from, to LSR) int {
	sameLang := from.Language == to.Language
	d := languageDistance(from.Language, to.Language)
	d += scriptDistance(sameLang, from.Script, to.Script)
	d += regionDistance(from.Region, to.Region)
	return d
}
