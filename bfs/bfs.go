// Package bfs provides breadth-first search over a core.Tree,
// returning depths, parent links, and level-order visit sequence.
//
// BFS explores nodes in increasing depth from a start node,
// with optional hooks, depth limiting, child filtering and mirror inclusion.
package bfs

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/asctree/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	tree  *core.Tree
	opts  BFSOptions
	ctx   context.Context
	queue *linkedlistqueue.Queue
	res   *BFSResult
}

// BFS runs breadth-first search on t starting from start,
// applying any number of functional Options.
// Returns ErrTreeNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// The tree has no cycles, so every node is enqueued at most once without
// a visited set.
func BFS(t *core.Tree, start core.NodeID, opts ...Option) (*BFSResult, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start node
	if _, err := t.Node(start); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartNodeNotFound, err)
	}

	n := t.Len()
	w := &walker{
		tree:  t,
		opts:  o,
		ctx:   o.Ctx,
		queue: linkedlistqueue.New(),
		res: &BFSResult{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, core.NoParent)
	// Main loop
	return w.res, w.loop()
}

// enqueue records depth and parent for id, calls OnEnqueue and queues it.
func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.res.Depth[id] = d
	if parent != core.NoParent {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue.Enqueue(queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueChildren(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	v, _ := w.queue.Dequeue()
	item := v.(queueItem)
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	return nil
}

// enqueueChildren applies filtering and MaxDepth, then enqueues each child.
// Mirror nodes follow the real children of Root when requested.
func (w *walker) enqueueChildren(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	children, err := w.tree.Children(item.id)
	if err != nil {
		return fmt.Errorf("bfs: children of %d: %w", item.id, err)
	}
	if w.opts.Mirrors && item.id == core.Root {
		children = append(children, w.tree.Mirrors()...)
	}
	for _, child := range children {
		if !w.opts.FilterChild(item.id, child) {
			continue
		}
		w.enqueue(child, nextDepth, item.id)
	}
	return nil
}

// PathLabels returns the labels along the tree path from Root to id,
// Root excluded. For a mirror node this is its single label.
func PathLabels(t *core.Tree, id core.NodeID) (core.Face, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	var rev core.Face
	for cur := id; cur != core.Root; {
		n, err := t.Node(cur)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStartNodeNotFound, err)
		}
		rev = append(rev, n.Label)
		cur = n.Parent
	}
	out := make(core.Face, len(rev))
	for i, l := range rev {
		out[len(rev)-1-i] = l
	}

	return out, nil
}
