// Package core defines the face-path Tree, its Node records and the Face
// value type, and provides the thread-safe primitives for building and
// querying the tree.
//
// This file declares NodeID, Node, Tree, TreeOption, sentinel errors, and the
// NewTree constructor.
package core

import (
	"errors"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Sentinel errors for core tree operations.
var (
	// ErrInvalidFace indicates an empty face was passed to Insert.
	ErrInvalidFace = errors.New("core: face is empty")

	// ErrEmptyLabel indicates that a face contains an empty vertex label.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrNodeNotFound indicates an operation referenced a NodeID outside the arena.
	ErrNodeNotFound = errors.New("core: node not found")
)

// NodeID addresses a node inside a Tree's arena.
type NodeID int

const (
	// Root is the sentinel node present in every Tree. It carries no label
	// and never appears in an emitted path.
	Root NodeID = 0

	// NoParent is reported as the parent of Root.
	NoParent NodeID = -1

	// RootLabel is a display name for Root (renderers only).
	RootLabel = "ROOT"
)

// Node is a snapshot of one tree position.
//
// Two nodes with the same Label are distinct positions; compare IDs for
// identity and use SameLabel for label equality.
type Node struct {
	// ID is the arena index of this node.
	ID NodeID

	// Label is the vertex identifier; empty only for Root.
	Label string

	// Parent is the ID of the node this one hangs from. Mirror nodes report
	// Root even though Root's child map does not reference them.
	Parent NodeID

	// Depth is the number of edges from Root (Root = 0, mirrors = 1).
	Depth int

	// Mirror marks a node that lives only in the vertex mirror index.
	Mirror bool
}

// node is the arena record behind Node.
type node struct {
	Node
	children *linkedhashmap.Map // label → NodeID, insertion order
}

// newChildMap allocates an empty insertion-ordered label → NodeID map.
func newChildMap() *linkedhashmap.Map { return linkedhashmap.New() }

// SameLabel reports whether a and b carry the same vertex label.
func SameLabel(a, b Node) bool { return a.Label == b.Label }

// TreeOption configures behavior of a Tree before creation.
type TreeOption func(t *Tree)

// WithVertexMirror enables the vertex mirror index.
func WithVertexMirror() TreeOption {
	return func(t *Tree) { t.mirror = true }
}

// Tree is the face-path tree.
//
// mu protects nodes and mirrors. nodes[0] is always Root.
type Tree struct {
	mu sync.RWMutex

	// Configuration flags
	mirror bool // maintain the vertex mirror index

	// Storage
	nodes   []*node            // arena; index == NodeID
	mirrors *linkedhashmap.Map // label → mirror NodeID, first-seen order
}

// NewTree creates a Tree holding only Root.
// Complexity: O(1)
func NewTree(opts ...TreeOption) *Tree {
	t := &Tree{
		nodes:   make([]*node, 0, 16),
		mirrors: linkedhashmap.New(),
	}
	t.nodes = append(t.nodes, &node{
		Node:     Node{ID: Root, Parent: NoParent},
		children: newChildMap(),
	})
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Mirrored reports whether the vertex mirror index is enabled.
func (t *Tree) Mirrored() bool { return t.mirror }
