// Package builder provides helper functions and types for configuring vertex
// label schemes in complex constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex label from its zero‐based index.
// It must be pure: given the same idx, it always returns the same label.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A".
// Panics if idx is outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// SymbolNumberIDFn returns a scheme producing prefix + decimal index,
// e.g. "v0", "v1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// NamedIDFn returns a scheme reading labels from names; indices past the end
// fall back to DefaultIDFn so a scheme never yields an empty label.
func NamedIDFn(names ...string) IDFn {
	cp := append([]string(nil), names...)
	return func(idx int) string {
		if idx >= 0 && idx < len(cp) && cp[idx] != "" {
			return cp[idx]
		}
		return DefaultIDFn(idx)
	}
}
