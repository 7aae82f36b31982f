package cldr

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger installs the logger for the category-3 data-integrity
// diagnostic emitted just before this package panics on an inconsistent
// table (spec §7). That check runs only in this package's init, which
// completes before any caller can call SetLogger, so the diagnostic is
// written to the default no-op logger; a logger installed here is not used
// by any path. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

func init() {
	if err := validate(); err != nil {
		logger.Error("cldr: data integrity check failed", zap.Error(err))
		panic(err)
	}
}

// validate performs the category-3, construction-time integrity checks
// spec §7 requires: every table cross-reference must resolve, or the
// engine must refuse to start rather than produce silently wrong answers.
func validate() error {
	for lang := range PrimaryScript {
		if !MultiScriptLanguages[lang] {
			return errors.Errorf("cldr: PrimaryScript entry %q is not in MultiScriptLanguages", lang)
		}
	}
	for tag, parent := range ParentOverrides {
		if !AvailableLocales[parent] {
			return errors.Errorf("cldr: parent override %q -> %q: parent is not an available locale", tag, parent)
		}
	}
	for tag := range AvailableLocales {
		lang := strings.SplitN(tag, "-", 2)[0]
		if lang == "" {
			continue
		}
		if !Languages[lang] {
			return errors.Errorf("cldr: available locale %q has unregistered language %q", tag, lang)
		}
	}
	for legacy, modern := range LegacyLanguageMap {
		if !Languages[legacy] {
			return errors.Errorf("cldr: legacy language %q is missing from Languages", legacy)
		}
		if !Languages[modern] {
			return errors.Errorf("cldr: legacy language %q maps to unregistered %q", legacy, modern)
		}
	}
	return nil
}

// DescribeTableSizes is a small diagnostic helper, handy when wiring a new
// CLDR snapshot, reporting how many entries each table carries.
func DescribeTableSizes() string {
	return fmt.Sprintf(
		"languages=%d locales=%d parentOverrides=%d multiScript=%d",
		len(Languages), len(AvailableLocales), len(ParentOverrides), len(MultiScriptLanguages),
	)
}
