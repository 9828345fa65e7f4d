package harvest

import (
	"slices"
	"strings"
)

// BoilerplateSet holds text fragments that recur across many pages of a
// site. It is built once per run and treated as read-only afterwards.
type BoilerplateSet map[string]struct{}

// NewBoilerplateSet returns a set containing the trimmed values.
func NewBoilerplateSet(values ...string) BoilerplateSet {
	s := make(BoilerplateSet, len(values))
	for _, v := range values {
		s[strings.TrimSpace(v)] = struct{}{}
	}
	return s
}

// Contains reports whether the trimmed text is boilerplate.
// A nil set contains nothing.
func (s BoilerplateSet) Contains(text string) bool {
	if s == nil {
		return false
	}
	_, ok := s[strings.TrimSpace(text)]
	return ok
}

// Len returns the number of fragments in the set.
func (s BoilerplateSet) Len() int {
	return len(s)
}

// Strings returns the members in sorted order.
func (s BoilerplateSet) Strings() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
