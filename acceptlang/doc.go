// Package acceptlang parses HTTP Accept-Language header values into a
// weight-sorted, deduplicated list of language ranges, including the
// wildcard-expansion rules of spec §4.2 (C3). It is the entry point feeding
// affinity.NewUnaryCalculatorFromAcceptLanguage.
package acceptlang
