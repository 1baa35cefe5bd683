// Package dfs implements the face enumerator: a depth‑first traversal of a
// core.Tree that reconstructs the faces encoded as root-to-node paths.
//
// What:
//
//   - Walk / Paths: one entry per DFS call frame, recorded in post‑order
//     (a node's own path is appended after all longer paths below it).
//     Every visited node contributes, not only leaves. Root contributes
//     nothing because its path is empty.
//   - A child is recursed into only if its label is not already on the
//     current path, so no recorded path repeats a label.
//   - With core.WithVertexMirror, mirror nodes are visited as extra
//     root‑level children after the real ones.
//   - Faces: collapses the recorded paths into the de‑duplicated set of
//     faces (order‑independent), in canonical order.
//   - MaximalPaths: keeps only paths that are not a strict prefix of another.
//
// Why:
//
//   - The output order is neither by length nor lexicographic; callers that
//     need a set use Faces, callers that need leaves use MaximalPaths.
//   - Each call owns a fresh accumulator, so concurrent or repeated calls
//     never see each other's results.
//
// Complexity:
//
//   - Walk:          Time O(N·L) (N nodes, L = max path length), Memory O(N·L)
//   - Faces:         Time O(P·L·log P) for P recorded paths
//   - MaximalPaths:  Time O(P·L), Memory O(P·L)
//
// Errors:
//
//   - ErrTreeNil          tree pointer is nil
//   - context.Canceled    walk cancelled via WithContext
//   - hook errors         propagated from OnVisit or OnExit
package dfs
