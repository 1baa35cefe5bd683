// Package dfs implements the post-order face enumerator over core.Tree.
//
// Key features:
//   - Walk(t, opts...): full result with paths, node order and diagnostics
//   - Paths(t, opts...): recorded paths only
//   - Hooks: OnVisit (pre‑order) & OnExit (post‑order) with error aborts
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(N·L) where N = nodes and L = longest path (label checks and copies).
//   - Memory: O(N·L) for the recorded paths.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/asctree/core"
)

// dfsWalker encapsulates state during one walk.
type dfsWalker struct {
	tree *core.Tree // tree under enumeration
	opts DFSOptions // traversal options
	res  *DFSResult // fresh per call
}

// Walk enumerates t depth-first from Root and returns a fresh DFSResult.
func Walk(t *core.Tree, opts ...Option) (*DFSResult, error) {
	// 1. Validate input tree
	if t == nil {
		return nil, ErrTreeNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Allocate the accumulator owned by this call only
	n := t.Len()
	res := &DFSResult{
		Paths: make([]core.Face, 0, n),
		Order: make([]core.NodeID, 0, n),
	}
	w := &dfsWalker{tree: t, opts: dopts, res: res}

	// 4. Traverse from Root with an empty path
	if err := w.traverse(core.Root, nil, 0); err != nil {
		return res, err
	}

	return res, nil
}

// Paths returns only the recorded paths of Walk.
func Paths(t *core.Tree, opts ...Option) ([]core.Face, error) {
	res, err := Walk(t, opts...)
	if err != nil {
		return nil, err
	}

	return res.Paths, nil
}

// traverse visits id at depth with path being the labels of its ancestors
// (Root excluded). path is owned by this frame.
func (w *dfsWalker) traverse(id core.NodeID, path core.Face, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Extend this frame's path with its own label
	if id != core.Root {
		label, err := w.tree.Label(id)
		if err != nil {
			return fmt.Errorf("dfs: Label(%d): %w", id, err)
		}
		path = append(path, label)
	}

	// 3. Pre‑order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, path.Clone()); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for node %d: %w", id, err)
		}
	}

	// 4. Explore children unless the depth limit is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		kids, err := w.children(id)
		if err != nil {
			return err
		}
		for _, kid := range kids {
			label, err := w.tree.Label(kid)
			if err != nil {
				return fmt.Errorf("dfs: Label(%d): %w", kid, err)
			}
			// a label never repeats within one path
			if path.Has(label) {
				w.res.SkippedRepeats++
				continue
			}
			if err = w.traverse(kid, path.Clone(), depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post‑order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id, path.Clone()); err != nil {
			return fmt.Errorf("dfs: OnExit hook for node %d: %w", id, err)
		}
	}

	// 6. Record this frame
	if len(path) > 0 {
		w.res.Paths = append(w.res.Paths, path)
		w.res.Order = append(w.res.Order, id)
	}

	return nil
}

// children returns the nodes to visit below id. At Root, mirror nodes whose
// label is not already a real root child follow the real children.
func (w *dfsWalker) children(id core.NodeID) ([]core.NodeID, error) {
	kids, err := w.tree.Children(id)
	if err != nil {
		return nil, fmt.Errorf("dfs: Children(%d): %w", id, err)
	}
	if id != core.Root {
		return kids, nil
	}
	for _, m := range w.tree.Mirrors() {
		label, err := w.tree.Label(m)
		if err != nil {
			return nil, fmt.Errorf("dfs: Label(%d): %w", m, err)
		}
		_, shadowed, err := w.tree.ChildByLabel(core.Root, label)
		if err != nil {
			return nil, fmt.Errorf("dfs: ChildByLabel(%q): %w", label, err)
		}
		if !shadowed {
			kids = append(kids, m)
		}
	}

	return kids, nil
}
