// Package builder provides internal helper functions used by Constructor
// implementations to enumerate and insert faces.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with builderErrorf for uniform reporting.
//   - Determinism: subsets and orderings are produced in lexicographic index order.
package builder

import (
	"fmt"

	"github.com/katalvlaran/asctree/core"
)

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>", keeping
// any %w operand in the chain.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}

// insertFace inserts f into t honoring cfg.allOrderings.
// With all orderings every permutation of f is inserted, lexicographic by
// position, starting with f itself.
//
// Complexity: O(|f|) or O(|f|·|f|!) with all orderings.
func insertFace(method string, t *core.Tree, cfg builderConfig, f core.Face) error {
	if !cfg.allOrderings {
		if err := t.Insert(f...); err != nil {
			return builderErrorf(method, "Insert(%s): %w: %w", f, err, ErrConstructFailed)
		}
		return nil
	}
	if len(f) > MaxOrderedFaceSize {
		return builderErrorf(method, "face size %d > max=%d with all orderings: %w",
			len(f), MaxOrderedFaceSize, ErrTooManyVertices)
	}

	var err error
	forEachPermutation(len(f), func(idx []int) bool {
		p := make(core.Face, len(idx))
		for i, j := range idx {
			p[i] = f[j]
		}
		if ierr := t.Insert(p...); ierr != nil {
			err = builderErrorf(method, "Insert(%s): %w: %w", p, ierr, ErrConstructFailed)
			return false
		}
		return true
	})

	return err
}

// forEachPermutation calls fn with every permutation of [0..n-1] in
// lexicographic order. The slice passed to fn is reused between calls.
// Enumeration stops early when fn returns false.
func forEachPermutation(n int, fn func(idx []int) bool) {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return
		}
		// next permutation (Narayana)
		i := n - 2
		for i >= 0 && idx[i] >= idx[i+1] {
			i--
		}
		if i < 0 {
			return
		}
		j := n - 1
		for idx[j] <= idx[i] {
			j--
		}
		idx[i], idx[j] = idx[j], idx[i]
		for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
			idx[l], idx[r] = idx[r], idx[l]
		}
	}
}

// forEachSubset calls fn with every k-subset of [0..n-1] in lexicographic
// order. The slice passed to fn is reused between calls.
func forEachSubset(n, k int, fn func(idx []int) bool) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// labelFace maps vertex indices to labels through cfg.idFn.
func labelFace(cfg builderConfig, idx []int) core.Face {
	f := make(core.Face, len(idx))
	for i, v := range idx {
		f[i] = cfg.idFn(v)
	}

	return f
}
