// File: methods.go
// Role: Insertion and read accessors of the face-path tree.
// Determinism:
//   - Children and Mirrors report insertion order.
// Concurrency:
//   - Insert/InsertAll take the write lock; accessors take the read lock.

package core

import (
	"fmt"
)

// Insert adds face as the path ROOT → face[0] → … → face[n-1].
//
// At each step the current parent is searched for a child with the next label;
// if present, Insert descends into it, otherwise a new node is created and
// attached. Inserting the same face twice leaves the tree unchanged.
// When the mirror index is enabled, each node created below the root also
// records a shallow mirror for its label unless the root already has a child
// (or mirror) with that label.
//
// Errors: ErrInvalidFace for an empty face, ErrEmptyLabel for an empty label.
// Complexity: O(len(face)).
func (t *Tree) Insert(face ...string) error {
	if len(face) == 0 {
		return fmt.Errorf("Insert: %w", ErrInvalidFace)
	}
	for i, label := range face {
		if label == "" {
			return fmt.Errorf("Insert: position %d: %w", i, ErrEmptyLabel)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	cur := Root
	for _, label := range face {
		next, ok := t.childLocked(cur, label)
		if !ok {
			next = t.attachLocked(cur, label)
			if t.mirror && cur != Root {
				t.ensureMirrorLocked(label)
			}
		}
		cur = next
	}

	return nil
}

// InsertAll inserts faces in order and stops at the first error.
func (t *Tree) InsertAll(faces []Face) error {
	for i, f := range faces {
		if err := t.Insert(f...); err != nil {
			return fmt.Errorf("InsertAll: face %d: %w", i, err)
		}
	}

	return nil
}

// childLocked looks up the child of parent labelled label. Caller holds mu.
func (t *Tree) childLocked(parent NodeID, label string) (NodeID, bool) {
	v, ok := t.nodes[parent].children.Get(label)
	if !ok {
		return 0, false
	}

	return v.(NodeID), true
}

// attachLocked appends a new node under parent. Caller holds the write lock.
func (t *Tree) attachLocked(parent NodeID, label string) NodeID {
	id := NodeID(len(t.nodes))
	p := t.nodes[parent]
	t.nodes = append(t.nodes, &node{
		Node:     Node{ID: id, Label: label, Parent: parent, Depth: p.Depth + 1},
		children: newChildMap(),
	})
	p.children.Put(label, id)

	return id
}

// ensureMirrorLocked records a detached shallow node for label when neither
// a root child nor an earlier mirror carries it. Caller holds the write lock.
func (t *Tree) ensureMirrorLocked(label string) {
	if _, ok := t.childLocked(Root, label); ok {
		return
	}
	if _, ok := t.mirrors.Get(label); ok {
		return
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &node{
		Node:     Node{ID: id, Label: label, Parent: Root, Depth: 1, Mirror: true},
		children: newChildMap(),
	})
	t.mirrors.Put(label, id)
}

// Contains reports whether face exists as an exact ordered path from Root.
// An empty face is never contained.
func (t *Tree) Contains(face Face) bool {
	if len(face) == 0 {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	cur := Root
	for _, label := range face {
		next, ok := t.childLocked(cur, label)
		if !ok {
			return false
		}
		cur = next
	}

	return true
}

// Len returns the number of nodes in the arena, Root and mirrors included.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.nodes)
}

// Node returns a snapshot of the node at id.
func (t *Tree) Node(id NodeID) (Node, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.validLocked(id) {
		return Node{}, fmt.Errorf("Node(%d): %w", id, ErrNodeNotFound)
	}

	return t.nodes[id].Node, nil
}

// Label returns the label of id ("" for Root).
func (t *Tree) Label(id NodeID) (string, error) {
	n, err := t.Node(id)
	if err != nil {
		return "", err
	}

	return n.Label, nil
}

// Parent returns the parent of id, NoParent for Root.
// A mirror node reports Root as its parent.
func (t *Tree) Parent(id NodeID) (NodeID, error) {
	n, err := t.Node(id)
	if err != nil {
		return NoParent, err
	}

	return n.Parent, nil
}

// Depth returns the number of edges between Root and id.
func (t *Tree) Depth(id NodeID) (int, error) {
	n, err := t.Node(id)
	if err != nil {
		return 0, err
	}

	return n.Depth, nil
}

// Children returns the child IDs of id in insertion order.
// Mirror nodes are not children of Root; see Mirrors.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.validLocked(id) {
		return nil, fmt.Errorf("Children(%d): %w", id, ErrNodeNotFound)
	}
	vals := t.nodes[id].children.Values()
	out := make([]NodeID, len(vals))
	for i, v := range vals {
		out[i] = v.(NodeID)
	}

	return out, nil
}

// ChildByLabel returns the child of id labelled label, if any.
func (t *Tree) ChildByLabel(id NodeID, label string) (NodeID, bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.validLocked(id) {
		return 0, false, fmt.Errorf("ChildByLabel(%d): %w", id, ErrNodeNotFound)
	}
	child, ok := t.childLocked(id, label)

	return child, ok, nil
}

// Mirrors returns the mirror node IDs in first-seen order.
// The slice is empty unless the tree was built WithVertexMirror.
func (t *Tree) Mirrors() []NodeID {
	t.mu.RLock()
	defer t.mu.RUnlock()

	vals := t.mirrors.Values()
	out := make([]NodeID, len(vals))
	for i, v := range vals {
		out[i] = v.(NodeID)
	}

	return out
}

// Labels returns every distinct label present in the tree in first-seen
// (arena) order.
func (t *Tree) Labels() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	seen := make(map[string]struct{}, len(t.nodes))
	out := make([]string, 0, len(t.nodes))
	for _, n := range t.nodes[1:] {
		if _, ok := seen[n.Label]; ok {
			continue
		}
		seen[n.Label] = struct{}{}
		out = append(out, n.Label)
	}

	return out
}

// validLocked reports whether id addresses an arena slot. Caller holds mu.
func (t *Tree) validLocked(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}
