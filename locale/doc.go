// Package locale implements BCP 47 language-tag parsing and canonicalization
// against the CLDR locale universe (spec §4.1 C2), the CLDR parent-locale
// hierarchy (spec §4.3 C4), and the written-/spoken-language classifier
// (spec §4.4 C5).
//
// The Locale type is an immutable value: equality compares the canonical
// tag form, variants included, and hierarchy operations work on the
// canonical (language, script, region) form only. Unlike
// golang.org/x/text/language.Tag, Locale never silently substitutes a
// default on unparseable input — Parse reports failure explicitly, and
// callers that need an affinity signal treat that as NONE (spec §7).
package locale
