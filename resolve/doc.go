// Package resolve holds the value types consumed and produced by the
// locale-resolution collaborators this engine serves: SupportedLocale and
// ResolvedLocale (spec §3). Both are builder-validated: construction fails
// eagerly with a wrapped error the moment an invariant is violated, rather
// than producing a value callers have to re-check.
package resolve
