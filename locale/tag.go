package locale

import (
	"strings"

	"github.com/spotify/localeaffinity/internal/cldr"
)

// Locale is an immutable BCP-47 value: language, script, region, and
// variants. Extension subtags are not kept: Parse drops a "-u-" extension
// and rejects a tag carrying any other singleton. Root is the empty Locale.
type Locale struct {
	language string
	script   string
	region   string
	variants []string
}

// Root is the empty "und" locale. It is always illegal as an affinity
// target or as a SupportedLocale/ResolvedLocale member (spec §3).
var Root = Locale{}

// IsRoot reports whether l is the root locale.
func (l Locale) IsRoot() bool {
	return l.language == "" && l.script == "" && l.region == "" && len(l.variants) == 0
}

// Language returns the lower-case language subtag, or "" for root.
func (l Locale) Language() string { return l.language }

// Script returns the title-case script subtag, or "" if unspecified.
func (l Locale) Script() string { return l.script }

// Region returns the upper-case region subtag, or "" if unspecified.
func (l Locale) Region() string { return l.region }

// Variants returns the locale's variant subtags, lower-case, in the order
// they appeared in the original tag.
func (l Locale) Variants() []string {
	if len(l.variants) == 0 {
		return nil
	}
	out := make([]string, len(l.variants))
	copy(out, l.variants)
	return out
}

// withoutVariants returns l with its variant subtags dropped; hierarchy and
// distance computations operate on (language, script, region) only, mapping
// onto the LSR triple of spec §3.
func (l Locale) withoutVariants() Locale {
	if len(l.variants) == 0 {
		return l
	}
	return Locale{language: l.language, script: l.script, region: l.region}
}

// Equal reports whether two locales have the same canonical tag form,
// including variants.
func (l Locale) Equal(o Locale) bool {
	if l.language != o.language || l.script != o.script || l.region != o.region {
		return false
	}
	if len(l.variants) != len(o.variants) {
		return false
	}
	for i, v := range l.variants {
		if o.variants[i] != v {
			return false
		}
	}
	return true
}

// String returns the canonical BCP-47 string form of l ("" for root).
func (l Locale) String() string {
	parts := make([]string, 0, 2+len(l.variants))
	if l.language != "" {
		parts = append(parts, l.language)
	}
	if l.script != "" {
		parts = append(parts, l.script)
	}
	if l.region != "" {
		parts = append(parts, l.region)
	}
	parts = append(parts, l.variants...)
	return strings.Join(parts, "-")
}

// Parse sanitises and canonicalises a possibly-malformed BCP-47 tag
// against the CLDR locale universe, per spec §4.1. It never panics; a
// false second return means the input is unparseable and callers that
// require a locale must treat it as affinity NONE (spec §7 category 1).
func Parse(raw string) (Locale, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Locale{}, false
	}
	s = strings.ReplaceAll(s, "_", "-")
	s = stripUExtension(s)
	if s == "" {
		return Locale{}, false
	}

	subtags := strings.Split(s, "-")
	if len(subtags) == 0 || subtags[0] == "" {
		return Locale{}, false
	}

	lang, ok := canonicalLanguage(subtags[0])
	if !ok {
		return Locale{}, false
	}
	rest := subtags[1:]

	var script, region string
	if len(rest) > 0 && isScriptSubtag(rest[0]) {
		script = titleCase(rest[0])
		rest = rest[1:]
	}
	if len(rest) > 0 && isRegionSubtag(rest[0]) {
		region = upperCase(rest[0])
		rest = rest[1:]
	}

	var variants []string
	for _, v := range rest {
		if v == "" {
			continue
		}
		if len(v) == 1 {
			// A bare singleton here means a non-"u" extension (e.g. -t-,
			// -x-) survived sanitisation; this engine has no use for
			// transform or private-use extensions, so the tag is rejected
			// rather than silently truncated.
			return Locale{}, false
		}
		variants = append(variants, strings.ToLower(v))
	}

	return Locale{language: lang, script: script, region: region, variants: variants}, true
}

// stripUExtension implements spec §4.1 step 3: a leading "@ext" form is
// rewritten as a "-u-" extension and then, along with any "-u-..." sequence
// already present, dropped up to the next comma, semicolon, or end of
// string.
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

func isScriptSubtag(s string) bool {
	return len(s) == 4 && isAlpha(s)
}

func isRegionSubtag(s string) bool {
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

func upperCase(s string) string {
	return strings.ToUpper(s)
}
