package acceptlang

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/spotify/localeaffinity/internal/cldr"
)

// LanguageRange is a single weighted entry from an Accept-Language header
// (spec §3): Range is a BCP-47 tag with no wildcard left in it (a wildcard
// range is replaced by its expansions, and dropped if it has none), and
// Weight is its parsed q value, clamped to [0, 1].
type LanguageRange struct {
	Range  string
	Weight float64
}

// Parse sanitises, expands, sorts, and deduplicates an Accept-Language
// header value (spec §4.2). It never panics and never returns an error:
// unparseable segments are silently dropped.
func Parse(header string) []LanguageRange {
	var out []LanguageRange
	for _, item := range strings.Split(header, ",") {
		lr, ok := parseSegment(item)
		if !ok {
			continue
		}
		if lr.Range == "*" {
			continue
		}
		if strings.Contains(lr.Range, "*") {
			for _, expanded := range expandWildcard(lr.Range) {
				out = append(out, LanguageRange{Range: expanded, Weight: lr.Weight})
			}
			continue
		}
		out = append(out, lr)
	}

	slices.SortStableFunc(out, func(a, b LanguageRange) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return 0
		}
	})
	return dedupKeepFirst(out)
}

// parseSegment splits one comma-separated item into its range and weight,
// sanitising the range per §4.1 and tolerating a trailing wildcard that
// locale.Parse would otherwise reject outright.
func parseSegment(item string) (LanguageRange, bool) {
	parts := strings.Split(item, ";")
	rawRange := strings.TrimSpace(parts[0])
	if rawRange == "" {
		return LanguageRange{}, false
	}

	weight := 1.0
	for _, param := range parts[1:] {
		param = strings.TrimSpace(param)
		k, v, found := strings.Cut(param, "=")
		if !found || strings.ToLower(strings.TrimSpace(k)) != "q" {
			continue
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return LanguageRange{}, false
		}
		if w < 0 {
			w = 0
		}
		if w > 1 {
			w = 1
		}
		weight = w
	}

	sanitized, ok := sanitizeRange(rawRange)
	if !ok {
		return LanguageRange{}, false
	}
	return LanguageRange{Range: sanitized, Weight: weight}, true
}

// sanitizeRange applies §4.1's normalisation to a single range, preserving
// any wildcard subtags that locale.Parse has no notion of. A trailing
// wildcard subtag (or run of them) is stripped with no expansion; the
// language subtag is validated and canonicalised like locale.Parse does,
// unless it is itself a wildcard.
func sanitizeRange(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "_", "-")
	s = stripUExtension(s)
	if s == "" {
		return "", false
	}
	subtags := strings.Split(s, "-")
	for len(subtags) > 1 && subtags[len(subtags)-1] == "*" {
		subtags = subtags[:len(subtags)-1]
	}
	if len(subtags) == 1 && subtags[0] == "*" {
		return "*", true
	}

	if subtags[0] != "*" {
		lang, ok := canonicalLanguage(subtags[0])
		if !ok {
			return "", false
		}
		subtags[0] = lang
	}
	for i := 1; i < len(subtags); i++ {
		switch {
		case subtags[i] == "*":
			// left as-is; resolved during expansion.
		case isScriptShape(subtags[i]):
			subtags[i] = titleCase(subtags[i])
		case isRegionShape(subtags[i]):
			subtags[i] = strings.ToUpper(subtags[i])
		default:
			subtags[i] = strings.ToLower(subtags[i])
		}
	}
	return strings.Join(subtags, "-"), true
}

func stripUExtension(s string) string {
	if at := strings.IndexByte(s, '@'); at >= 0 {
		ext := s[at+1:]
		if stop := strings.IndexAny(ext, ",;"); stop >= 0 {
			ext = ext[:stop]
		}
		s = s[:at]
		if ext != "" {
			s += "-u-" + ext
		}
	}
	subtags := strings.Split(s, "-")
	for i, t := range subtags {
		if len(t) == 1 && (t[0]|0x20) == 'u' {
			return strings.Join(subtags[:i], "-")
		}
	}
	return s
}

func canonicalLanguage(tag string) (string, bool) {
	if !isAlpha(tag) || (len(tag) != 2 && len(tag) != 3) {
		return "", false
	}
	lang := strings.ToLower(tag)
	if modern, ok := cldr.LegacyLanguageMap[lang]; ok {
		lang = modern
	}
	if !cldr.AvailableLanguages[lang] {
		return "", false
	}
	return lang, true
}

func isScriptShape(s string) bool { return len(s) == 4 && isAlpha(s) }

func isRegionShape(s string) bool {
	if len(s) == 2 && isAlpha(s) {
		return true
	}
	if len(s) == 3 && isDigits(s) {
		return true
	}
	return false
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func titleCase(s string) string {
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}

// expandWildcard expands a range with a non-trailing wildcard subtag into
// the union of CLDR-available locales it could denote (spec §4.2): every
// available locale whose subtags match the range positionally, plus the
// likely-subtags completion of the range's literal subtags, restricted to
// what CLDR actually has.
func expandWildcard(pattern string) []string {
	patternParts := strings.Split(pattern, "-")

	seen := make(map[string]bool)
	var out []string
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}

	for tag := range cldr.AvailableLocales {
		if matchesPattern(tag, patternParts) {
			add(tag)
		}
	}

	if lsr, tag, ok := completeByMaximizing(patternParts); ok {
		if cldr.AvailableLocales[tag] {
			add(tag)
		}
		_ = lsr
	}

	slices.Sort(out)
	return out
}

func matchesPattern(tag string, patternParts []string) bool {
	tagParts := strings.Split(tag, "-")
	if len(tagParts) != len(patternParts) {
		return false
	}
	for i, p := range patternParts {
		if p == "*" {
			continue
		}
		if !strings.EqualFold(p, tagParts[i]) {
			return false
		}
	}
	return true
}

// completeByMaximizing fills in the single wildcard slot in patternParts by
// maximising the literal subtags, guessing the wildcard's role (script or
// region) from what is already present.
func completeByMaximizing(patternParts []string) (cldr.LSR, string, bool) {
	if len(patternParts) == 0 {
		return cldr.LSR{}, "", false
	}
	lang := patternParts[0]
	if lang == "*" {
		lang = ""
	}
	var script, region string
	wildcardIdx := -1
	for i := 1; i < len(patternParts); i++ {
		p := patternParts[i]
		if p == "*" {
			wildcardIdx = i
			continue
		}
		if isScriptShape(p) {
			script = p
		} else if isRegionShape(p) {
			region = p
		}
	}
	if wildcardIdx == -1 {
		return cldr.LSR{}, "", false
	}
	if script == "" {
		// The wildcard most plausibly stands for the script slot when a
		// region is already pinned down; this is the common real-world
		// shape ("zh-*-TW").
		lsr, err := cldr.Maximize(lang, "", region)
		if err != nil {
			return cldr.LSR{}, "", false
		}
		parts := append([]string(nil), patternParts...)
		parts[wildcardIdx] = lsr.Script
		if lang == "" {
			parts[0] = lsr.Language
		}
		return lsr, strings.Join(parts, "-"), true
	}
	lsr, err := cldr.Maximize(lang, script, "")
	if err != nil {
		return cldr.LSR{}, "", false
	}
	parts := append([]string(nil), patternParts...)
	parts[wildcardIdx] = lsr.Region
	if lang == "" {
		parts[0] = lsr.Language
	}
	return lsr, strings.Join(parts, "-"), true
}

func dedupKeepFirst(in []LanguageRange) []LanguageRange {
	seen := make(map[string]bool, len(in))
	out := make([]LanguageRange, 0, len(in))
	for _, lr := range in {
		if seen[lr.Range] {
			continue
		}
		seen[lr.Range] = true
		out = append(out, lr)
	}
	return out
}
