// Package bfs provides a level-order walk over a core.Tree, returning
// depths, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing depth from a start node (usually core.Root).
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual parent→child edges via WithFilterChild.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - WithMirrors treats the vertex mirror index as extra children of Root.
//
// Determinism
//
//	Children are enqueued in insertion order and mirrors in first-seen order,
//	so the visit sequence is fully reproducible.
//
// Complexity (N = nodes)
//
//   - Time:   O(N)
//   - Memory: O(N) for queue, Depth map and Parent map
//
// Usage
//
//	res, err := bfs.BFS(t, core.Root, bfs.WithMirrors(), bfs.WithMaxDepth(2))
//	if err != nil {
//	    // ErrTreeNil, ErrStartNodeNotFound, ErrOptionViolation, ctx or hook errors
//	}
//
// Errors
//
//   - ErrTreeNil             if the tree pointer is nil.
//   - ErrStartNodeNotFound   if the start node does not exist.
//   - ErrOptionViolation     if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
