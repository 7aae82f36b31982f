// Package cldr holds the frozen data tables the locale-affinity engine
// consults at runtime: the set of available locales and languages, the
// likely-subtags completion tables, the parent-locale override graph, and
// the language/script/region distance tables that back CLDR locale
// matching.
//
// The tables here are a curated, hand-authored subset of one CLDR version —
// enough to exercise every rule and scenario in the engine's specification
// — rather than a full generated vendor of the CLDR XML corpus, which would
// normally be produced by a gen.go similar to golang.org/x/text/language's,
// run against a downloaded CLDR release. Pin to one CLDR-equivalent version
// of this package per call site; a real CLDR upgrade would regenerate these
// tables and re-run the data-integrity checks performed by this package's
// init, panicking before any caller can observe an inconsistent table.
//
// All exported values are initialized once at package load and are never
// mutated afterwards; it is safe to read them concurrently from any number
// of goroutines.
package cldr
