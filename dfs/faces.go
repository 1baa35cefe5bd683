package dfs

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/asctree/core"
)

// pathSep joins labels of an ordered path key.
const pathSep = "\x1f"

// faceComparator adapts core.CompareFaces to the gods comparator contract.
func faceComparator(a, b interface{}) int {
	return core.CompareFaces(a.(core.Face), b.(core.Face))
}

// Faces walks t and collapses the recorded paths into the set of faces,
// reading each path as an unordered set of labels. The result is ordered by
// size, then by sorted labels; each face is returned with sorted labels.
func Faces(t *core.Tree, opts ...Option) ([]core.Face, error) {
	paths, err := Paths(t, opts...)
	if err != nil {
		return nil, err
	}

	return UniqueFaces(paths), nil
}

// UniqueFaces de-duplicates faces by value (as sets) and returns them in
// canonical order with sorted labels.
func UniqueFaces(faces []core.Face) []core.Face {
	set := treeset.NewWith(faceComparator)
	for _, f := range faces {
		set.Add(f.Sorted())
	}
	out := make([]core.Face, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(core.Face))
	}

	return out
}

// FacesOfSize returns the faces with exactly k labels, preserving order.
func FacesOfSize(faces []core.Face, k int) []core.Face {
	out := make([]core.Face, 0)
	for _, f := range faces {
		if f.Len() == k {
			out = append(out, f)
		}
	}

	return out
}

// MaximalPaths keeps the paths that are not a strict prefix of another path
// in the input, preserving order. Applied to Paths output this yields the
// leaf paths.
func MaximalPaths(paths []core.Face) []core.Face {
	prefixes := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		for i := 1; i < len(p); i++ {
			prefixes[strings.Join(p[:i], pathSep)] = struct{}{}
		}
	}
	out := make([]core.Face, 0, len(paths))
	for _, p := range paths {
		if _, ok := prefixes[strings.Join(p, pathSep)]; !ok {
			out = append(out, p)
		}
	}

	return out
}
