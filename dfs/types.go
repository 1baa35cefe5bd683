// Package dfs defines types and options for the face enumerator, including
// cancellation, pre-/post-order hooks, depth limiting and diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/asctree/core"
)

var (
	// ErrTreeNil is returned when a nil *core.Tree is passed to Walk, Paths or Faces.
	ErrTreeNil = errors.New("dfs: tree is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of the enumerator.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for a walk.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is entered (pre-order) with
	// the path accumulated so far. Returning an error aborts the walk.
	OnVisit func(id core.NodeID, path core.Face) error

	// OnExit, if non-nil, is invoked after all descendants of a node have been
	// explored (post-order), before its path is recorded.
	OnExit func(id core.NodeID, path core.Face) error

	// MaxDepth, if non-negative, stops recursion below the given depth.
	// A depth of 1 records only root-level faces. Default is -1 (no limit).
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for the walk.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id core.NodeID, path core.Face) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id core.NodeID, path core.Face) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits the length of recorded paths to limit.
// A negative limit is recorded as ErrOptionViolation; use DefaultOptions
// for an unlimited walk.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of one walk. It is allocated per call and
// never shared.
type DFSResult struct {
	// Paths holds one entry per visited non-root node, in post-order.
	Paths []core.Face

	// Order holds the NodeIDs matching Paths index by index.
	Order []core.NodeID

	// SkippedRepeats counts children not entered because their label was
	// already on the current path.
	SkippedRepeats int
}
