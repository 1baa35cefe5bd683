// Package core provides the face-path tree: an in-memory, thread-safe encoding
// of an abstract simplicial complex in which every inserted face is a
// root-to-node path of vertex labels.
//
// The Tree T = (ROOT, nodes) has a deliberately simple shape:
//
//   - Nodes live in an arena and are addressed by NodeID; Root is always 0.
//   - A node's children are keyed by label and kept in insertion order
//     (linked hash map), so every traversal is deterministic.
//   - The same label may appear at many unrelated positions. The tree is a
//     collection of chains, not a minimal DAG: insertion only ever asks
//     "is there already a child with this label under this exact parent".
//   - Node identity is the NodeID; label equality is a separate helper
//     (SameLabel) used by traversals for cycle prevention.
//
// Why use core.Tree?
//
//   - Insert is O(len(face)) with no global bookkeeping.
//   - Repeated insertion of a face is idempotent with respect to tree shape.
//   - Mirroring (WithVertexMirror) guarantees every vertex ever seen is
//     individually reachable at root level, via an explicit side index that
//     never mutates the tree itself.
//
// Configuration Options (TreeOption):
//
//	– WithVertexMirror()
//	    Record a shallow mirror node for each label first created below the
//	    root when the root has no direct child with that label.
//
// Core Methods:
//
//	Insert(face ...string) error          // O(len(face))
//	InsertAll(faces []Face) error         // Σ O(len(face))
//	Contains(face Face) bool              // exact ordered path lookup
//	Children(id NodeID) ([]NodeID, error) // insertion order
//	Mirrors() []NodeID                    // mirror index, insertion order
//
// Errors:
//
//	ErrInvalidFace   - empty face passed to Insert.
//	ErrEmptyLabel    - a face contains an empty label.
//	ErrNodeNotFound  - NodeID outside the arena.
//
// Concurrency:
//
//	A single sync.RWMutex guards the arena and the mirror index. Insert takes
//	the write lock; every read accessor takes the read lock.
package core
