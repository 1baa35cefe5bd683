// SPDX-License-Identifier: MIT
// Package: asctree/builder
//
// impl_simplex.go - implementations of Simplex(n), Skeleton(n, k) and HollowSimplex(n).
//
// Contract:
//   - Vertices are labeled cfg.idFn(0..n-1).
//   - Subsets are inserted by increasing size, lexicographic by vertex index
//     within a size, so downward closure holds after every insertion.
//   - n ∈ [MinSimplexVertices, MaxSimplexVertices]; 1 ≤ k ≤ n for Skeleton.
//
// Complexity:
//   - Time: O(Σ_{s≤k} C(n,s)·s) insertions work; O(2^n·n) for Simplex.

package builder

import (
	"github.com/katalvlaran/asctree/core"
)

// Simplex returns a Constructor that builds the full simplex on n vertices:
// every non-empty subset of {0..n-1} becomes a face.
func Simplex(n int) Constructor {
	return func(t *core.Tree, cfg builderConfig) error {
		if err := validateRange(MethodSimplex, n, MinSimplexVertices, MaxSimplexVertices); err != nil {
			return err
		}

		return insertSkeleton(MethodSimplex, t, cfg, n, n)
	}
}

// Skeleton returns a Constructor that builds the k-skeleton in face-size terms:
// every subset of {0..n-1} with 1..k vertices.
func Skeleton(n, k int) Constructor {
	return func(t *core.Tree, cfg builderConfig) error {
		if err := validateRange(MethodSkeleton, n, MinSimplexVertices, MaxSimplexVertices); err != nil {
			return err
		}
		if err := validateRange(MethodSkeleton, k, 1, n); err != nil {
			return err
		}

		return insertSkeleton(MethodSkeleton, t, cfg, n, k)
	}
}

// HollowSimplex returns a Constructor that builds the boundary of the
// n-vertex simplex: every proper non-empty subset of {0..n-1}.
func HollowSimplex(n int) Constructor {
	return func(t *core.Tree, cfg builderConfig) error {
		if err := validateRange(MethodHollowSimplex, n, MinHollowVertices, MaxSimplexVertices); err != nil {
			return err
		}

		return insertSkeleton(MethodHollowSimplex, t, cfg, n, n-1)
	}
}

// insertSkeleton inserts all subsets of sizes 1..k drawn from n vertices.
func insertSkeleton(method string, t *core.Tree, cfg builderConfig, n, k int) error {
	var err error
	for s := 1; s <= k && err == nil; s++ {
		forEachSubset(n, s, func(idx []int) bool {
			err = insertFace(method, t, cfg, labelFace(cfg, idx))
			return err == nil
		})
	}

	return err
}
