// Package query holds the shared building blocks of the list pipelines:
// permissive filter predicates and stable sorting. Criteria left empty or
// zero never constrain a result.
package query

import (
	"sort"
	"strings"
)

// ContainsFold reports whether s contains substr, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// TextMatches implements the text-search criterion: an empty search matches
// everything, otherwise at least one of the designated fields must contain
// the search text.
func TextMatches(search string, fields ...string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	for _, f := range fields {
		if ContainsFold(f, search) {
			return true
		}
	}
	return false
}

// Equals implements the equality criterion: an empty want matches everything.
func Equals(want, got string) bool {
	return want == "" || want == got
}

// InRange implements the inclusive range criterion. A zero bound imposes no
// constraint on that side.
func InRange(v, min, max float64) bool {
	if min > 0 && v < min {
		return false
	}
	if max > 0 && v > max {
		return false
	}
	return true
}

// SetContains implements the tag/feature criterion: the set must hold an
// element whose text includes want. Empty want matches everything.
func SetContains(set []string, want string) bool {
	want = strings.TrimSpace(want)
	if want == "" {
		return true
	}
	for _, s := range set {
		if ContainsFold(s, want) {
			return true
		}
	}
	return false
}

// SortStable returns a stably sorted copy; the input slice is left untouched
// so callers holding prior references never observe reordering.
func SortStable[T any](in []T, less func(a, b T) bool) []T {
	out := make([]T, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
