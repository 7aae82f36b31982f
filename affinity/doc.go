// Package affinity maps CLDR distance to a 5-level locale affinity and
// exposes the three calculators built on top of it (spec §4.6-§4.9, C7-C10):
// UnaryCalculator scores one tag against a precomputed target set,
// BiCalculator scores two tags directly, and ReferenceLocalesCalculator
// relates a tag to the engine's fixed reference-locale set.
package affinity
