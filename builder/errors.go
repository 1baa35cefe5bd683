// SPDX-License-Identifier: MIT
// Package: asctree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, k) is smaller than
// the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyVertices indicates that a constructor would enumerate more
// subsets or orderings than the builder is willing to insert.
var ErrTooManyVertices = errors.New("builder: parameter too large")

// ErrConstructFailed indicates that a constructor could not be applied
// (nil constructor, or the tree rejected an insertion).
var ErrConstructFailed = errors.New("builder: construction failed")
