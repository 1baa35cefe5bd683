// File: face.go
// Role: Face value type and set-style comparisons.
// Determinism:
//   - Key and CompareFaces depend only on the multiset of labels, never on
//     the order a path stored them in.

package core

import (
	"sort"
	"strings"
)

// keySep joins labels inside a Face key. It cannot occur in printable labels.
const keySep = "\x1f"

// Face is an ordered sequence of vertex labels as stored on a tree path.
// Most comparisons treat it as a set; the order is kept for display.
type Face []string

// Len returns the number of vertices (the face's dimension in this package's
// vertex-count convention).
func (f Face) Len() int { return len(f) }

// Clone returns an independent copy.
func (f Face) Clone() Face {
	out := make(Face, len(f))
	copy(out, f)

	return out
}

// Sorted returns a copy with labels in ascending order.
func (f Face) Sorted() Face {
	out := f.Clone()
	sort.Strings(out)

	return out
}

// Key returns an order-independent identity for the face.
func (f Face) Key() string { return strings.Join(f.Sorted(), keySep) }

// String renders the face in path order, e.g. "(Cow, Rabbit)".
func (f Face) String() string { return "(" + strings.Join(f, ", ") + ")" }

// HasDuplicates reports whether a label occurs more than once.
func (f Face) HasDuplicates() bool {
	seen := make(map[string]struct{}, len(f))
	for _, l := range f {
		if _, ok := seen[l]; ok {
			return true
		}
		seen[l] = struct{}{}
	}

	return false
}

// Has reports whether label belongs to the face.
func (f Face) Has(label string) bool {
	for _, l := range f {
		if l == label {
			return true
		}
	}

	return false
}

// Equal compares two faces as sets.
func (f Face) Equal(o Face) bool { return len(f) == len(o) && f.Key() == o.Key() }

// IsFacetOf reports whether f is o with exactly one vertex omitted.
// Both faces are read as sets; duplicated labels never qualify.
func (f Face) IsFacetOf(o Face) bool {
	if len(f)+1 != len(o) || f.HasDuplicates() || o.HasDuplicates() {
		return false
	}
	for _, l := range f {
		if !o.Has(l) {
			return false
		}
	}

	return true
}

// CompareFaces orders faces by size, then by their sorted labels.
// It returns a negative number, zero or a positive number.
func CompareFaces(a, b Face) int {
	if d := len(a) - len(b); d != 0 {
		return d
	}
	sa, sb := a.Sorted(), b.Sorted()
	for i := range sa {
		if c := strings.Compare(sa[i], sb[i]); c != 0 {
			return c
		}
	}

	return 0
}
