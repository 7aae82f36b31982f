// Package distance computes likely-subtags maximization and CLDR distance
// between locales (spec §4.5, §4.6, C6). It is a thin, locale-aware layer
// over the frozen tables in internal/cldr: Maximize fills in a Locale's
// missing script and region the way golang.org/x/text/language's
// addLikelySubtags does, and Distance scores how far apart two maximized
// locales are on CLDR's language/script/region axes.
package distance
