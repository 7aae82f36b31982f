package locale

import (
	"github.com/pkg/errors"
	"github.com/spotify/localeaffinity/internal/cldr"
)

// WrittenLanguage derives the written-language locale for l (spec §4.4):
// the highest ancestor, given its language's likely script (no region) if
// no script is already present and the language is written in more than
// one script.
func WrittenLanguage(l Locale) (Locale, error) {
	ha, err := HighestAncestor(l)
	if err != nil {
		return Locale{}, err
	}
	if ha.script != "" {
		return ha, nil
	}
	if cldr.MultiScriptLanguages[ha.language] {
		if lsr, err := cldr.Maximize(ha.language, "", ""); err == nil {
			return Locale{language: ha.language, script: lsr.Script}, nil
		}
	}
	return ha, nil
}

// SpokenLanguage derives the spoken-language locale for l (spec §4.4): the
// highest ancestor, with script-differentiated-but-mutually-spoken
// languages folded down to their bare language. Two locales whose spoken
// languages are equal are declared SAME by the affinity kernel, short
// circuiting distance (spec §4.7, §8 property 3).
func SpokenLanguage(l Locale) (Locale, error) {
	ha, err := HighestAncestor(l)
	if err != nil {
		return Locale{}, err
	}
	if ha.script == "" {
		return ha, nil
	}
	if ha.language == "zh" {
		switch ha.script {
		case "Hant":
			return ha, nil
		case "Hans":
			return Locale{language: "zh"}, nil
		default:
			return Locale{}, errors.Errorf("locale: unexpected script %q on zh highest ancestor %q", ha.script, ha)
		}
	}
	if cldr.MultiScriptLanguages[ha.language] {
		primary, hasPrimary := cldr.PrimaryScript[ha.language]
		if !hasPrimary || ha.script != primary {
			return Locale{language: ha.language}, nil
		}
		return Locale{}, errors.Errorf(
			"locale: primary script %q for %q unexpectedly reached the top of its family",
			ha.script, ha.language,
		)
	}
	return Locale{}, errors.Errorf(
		"locale: unexpected script-bearing highest ancestor %q for non-multi-script language %q",
		ha, ha.language,
	)
}

// init performs the construction-time data-integrity check spec §7
// category 3 requires: every available locale must classify without
// hitting classifier's "unexpected script-bearing highest ancestor" path.
// A failure here means the curated CLDR tables (internal/cldr) are
// internally inconsistent and the engine must refuse to start.
func init() {
	for tag := range cldr.AvailableLocales {
		l, ok := Parse(tag)
		if !ok {
			panic(errors.Errorf("locale: available locale %q failed to parse during table validation", tag))
		}
		if l.IsRoot() {
			continue
		}
		if _, err := SpokenLanguage(l); err != nil {
			panic(errors.Wrapf(err, "locale: data integrity check failed for %q", tag))
		}
		if _, err := WrittenLanguage(l); err != nil {
			panic(errors.Wrapf(err, "locale: data integrity check failed for %q", tag))
		}
	}
}
