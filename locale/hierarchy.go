package locale

import (
	"github.com/pkg/errors"
	"github.com/spotify/localeaffinity/internal/cldr"
)

// ErrRootHasNoParent is returned by Parent, Ancestors, and HighestAncestor
// when called on the root locale (spec §4.3: "highestAncestor(ROOT) is an
// error").
var ErrRootHasNoParent = errors.New("locale: root locale has no parent")

// Parent returns l's immediate parent in the CLDR locale hierarchy (spec
// §4.3). Variants are ignored: hierarchy and distance both operate on the
// (language, script, region) triple only.
func Parent(l Locale) (Locale, error) {
	if l.IsRoot() {
		return Locale{}, ErrRootHasNoParent
	}
	l = l.withoutVariants()

	if parentTag, ok := cldr.ParentOverrides[l.String()]; ok {
		parent, ok := Parse(parentTag)
		if !ok {
			return Locale{}, errors.Errorf("locale: parent override %q -> %q does not parse", l, parentTag)
		}
		return parent, nil
	}
	if l.region != "" {
		return Locale{language: l.language, script: l.script}, nil
	}
	if l.script != "" {
		if cldr.MultiScriptLanguages[l.language] {
			if primary, ok := cldr.PrimaryScript[l.language]; ok && primary == l.script {
				return Locale{language: l.language}, nil
			}
			// A non-primary script for a multi-script language is the root
			// of its own family, e.g. zh-Hant is not a descendant of zh.
			return Locale{}, nil
		}
		return Locale{language: l.language}, nil
	}
	return Locale{}, nil
}

// Ancestors returns l's proper ancestors, leaves-first, up to but excluding
// root (spec §4.3).
func Ancestors(l Locale) ([]Locale, error) {
	if l.IsRoot() {
		return nil, ErrRootHasNoParent
	}
	var out []Locale
	cur := l.withoutVariants()
	for {
		parent, err := Parent(cur)
		if err != nil {
			return nil, err
		}
		if parent.IsRoot() {
			return out, nil
		}
		out = append(out, parent)
		cur = parent
	}
}

// HighestAncestor returns the non-root ancestor of l closest to root, or l
// itself if l is already at the top of its family (spec §4.3).
func HighestAncestor(l Locale) (Locale, error) {
	if l.IsRoot() {
		return Locale{}, ErrRootHasNoParent
	}
	ancestors, err := Ancestors(l)
	if err != nil {
		return Locale{}, err
	}
	if len(ancestors) == 0 {
		return l.withoutVariants(), nil
	}
	return ancestors[len(ancestors)-1], nil
}

// IsDescendantOf reports whether l is a proper descendant of ancestor
// (l != ancestor, and ancestor appears somewhere in l's ancestor chain).
func IsDescendantOf(l, ancestor Locale) bool {
	if l.IsRoot() || l.withoutVariants().Equal(ancestor.withoutVariants()) {
		return false
	}
	ancestors, err := Ancestors(l)
	if err != nil {
		return false
	}
	for _, a := range ancestors {
		if a.Equal(ancestor.withoutVariants()) {
			return true
		}
	}
	return false
}
