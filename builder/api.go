// SPDX-License-Identifier: MIT
// Package: asctree/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildTree(topts, bopts, cons...). Creates t, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical trees.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose Faces(...) with Simplex/Skeleton in one BuildTree call to assemble fixtures.
//   - WithAllOrderings() inserts every ordering of each face, the full encoding
//     in which every admissible ordering of a face is a root-to-node path.
//   - WithIDScheme(...) / WithSymbNumb(...) for human-readable vertex labels.

package builder

import (
	"fmt"

	"github.com/katalvlaran/asctree/core"
)

// Constructor applies a deterministic tree mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Insert faces through insertFace so the ordering policy is honored.
//   - Preserve determinism for the same config and call order.
type Constructor func(t *core.Tree, cfg builderConfig) error

// BuildTree creates a new core.Tree with tree options topts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildTree: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrTooManyVertices, ...).
func BuildTree(topts []core.TreeOption, bopts []BuilderOption, cons ...Constructor) (*core.Tree, error) {
	// Create a new tree using the provided core options.
	t := core.NewTree(topts...)

	// Resolve deterministic builder configuration.
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		// Reject a nil constructor (programmer error) without panicking.
		if fn == nil {
			return nil, fmt.Errorf("BuildTree: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("BuildTree: %w", err)
		}
	}

	return t, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Faces inserts the given faces verbatim (subject to WithAllOrderings).
// Complexity: Σ O(len(face)) or Σ O(len(face)·len(face)!) with all orderings.
//func Faces(faces ...core.Face) Constructor

// Simplex builds the full simplex on n vertices: every non-empty subset.
// Complexity: O(2^n · n) insertions work.
//func Simplex(n int) Constructor

// Skeleton builds every subset of n vertices with 1..k members.
// Complexity: O(Σ_{s≤k} C(n,s) · s).
//func Skeleton(n, k int) Constructor

// HollowSimplex builds the boundary of the n-vertex simplex (Skeleton(n, n-1)).
//func HollowSimplex(n int) Constructor
