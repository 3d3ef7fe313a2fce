// Package namelist turns a snapshot of the host environment's builtin
// identifiers into a comma separated `name=name` listing, applying a
// prefix based allow/disallow rule. The output is meant to be pasted
// into a generated source template by an operator.
package namelist

import (
	"fmt"
	"sort"
	"strings"
)

// Mode selects whether names matching the rule's prefixes are kept
// or discarded.
type Mode string

const (
	ModeAllow    Mode = "allow"
	ModeDisallow Mode = "disallow"
)

var (
	ErrInvalidMode = fmt.Errorf("filter mode must be one of allow|disallow")
	ErrEmptyPrefix = fmt.Errorf("filter prefix cannot be an empty string")
)

// Rule is the prefix filter applied to a registry snapshot. It is
// built once per invocation and never mutated.
type Rule struct {
	Mode     Mode     `koanf:"mode"`
	Prefixes []string `koanf:"prefixes"`
}

// Validate checks the rule before any filtering happens. An empty
// prefix list is legal (allow keeps nothing, disallow keeps
// everything), but an empty prefix element is not, as "" is a prefix
// of every name and would silently invert the rule.
func (r Rule) Validate() error {
	switch r.Mode {
	case ModeAllow, ModeDisallow:
	default:
		return fmt.Errorf("invalid mode '%s': %w", r.Mode, ErrInvalidMode)
	}

	for _, p := range r.Prefixes {
		if p == "" {
			return ErrEmptyPrefix
		}
	}

	return nil
}

// matchesAnyPrefix reports whether any rule prefix is a literal,
// case sensitive prefix of name. No wildcard semantics; a prefix
// equal to the full name matches.
func matchesAnyPrefix(r Rule, name string) bool {
	for _, p := range r.Prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}

	return false
}

// Filter sorts a copy of the snapshot in ascending lexicographic
// order and returns the names that survive the rule. Duplicates are
// filtered per element, so both copies survive or fall together.
// The input slice is not modified.
func Filter(names []string, r Rule) ([]string, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	out := make([]string, 0, len(sorted))
	for _, name := range sorted {
		if matchesAnyPrefix(r, name) == (r.Mode == ModeAllow) {
			out = append(out, name)
		}
	}

	return out, nil
}

// Render formats the surviving names as `name=name` pairs joined by
// commas, with no trailing separator. An empty list renders as "".
func Render(survivors []string) string {
	var b strings.Builder
	for i, name := range survivors {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(name)
	}

	return b.String()
}

// Generate produces the known-names listing for a registry snapshot:
// the `name=name` sequence of all identifiers surviving the rule, in
// ascending order. This is the whole pipeline; it is pure and keeps
// no state between calls.
func Generate(names []string, r Rule) (string, error) {
	survivors, err := Filter(names, r)
	if err != nil {
		return "", err
	}

	return Render(survivors), nil
}
