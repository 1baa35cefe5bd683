package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/asctree/bfs"
	"github.com/katalvlaran/asctree/core"
)

// sampleTree builds ROOT→A→B→C, A→D and ROOT→E.
// IDs: A=1, B=2, C=3, D=4, E=5.
func sampleTree(t *testing.T) *core.Tree {
	t.Helper()
	tr := core.NewTree()
	for _, f := range []core.Face{{"A", "B", "C"}, {"A", "D"}, {"E"}} {
		if err := tr.Insert(f...); err != nil {
			t.Fatalf("Insert(%v): %v", f, err)
		}
	}
	return tr
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, core.Root); !errors.Is(err, bfs.ErrTreeNil) {
		t.Errorf("nil tree: want ErrTreeNil, got %v", err)
	}
	tr := core.NewTree()
	if _, err := bfs.BFS(tr, 9); !errors.Is(err, bfs.ErrStartNodeNotFound) {
		t.Errorf("missing start: want ErrStartNodeNotFound, got %v", err)
	}
	if _, err := bfs.BFS(tr, core.Root, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_LevelOrder checks order, depths and parents from Root.
func TestBFS_LevelOrder(t *testing.T) {
	res, err := bfs.BFS(sampleTree(t), core.Root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []core.NodeID{0, 1, 5, 2, 4, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[core.NodeID]int{0: 0, 1: 1, 5: 1, 2: 2, 4: 2, 3: 3}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
	if p := res.Parent[3]; p != 2 {
		t.Errorf("Parent[C] = %d; want 2", p)
	}
	if _, ok := res.Parent[core.Root]; ok {
		t.Error("Root must have no parent entry")
	}
}

// TestBFS_FromInnerNode starts below Root and reconstructs a path.
func TestBFS_FromInnerNode(t *testing.T) {
	res, err := bfs.BFS(sampleTree(t), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []core.NodeID{1, 2, 4, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	path, err := res.PathTo(3)
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if want := []core.NodeID{1, 2, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
	if _, err = res.PathTo(5); err == nil {
		t.Error("PathTo(E): want error for unreached node")
	}
}

// TestBFS_DepthAndFilter covers MaxDepth and WithFilterChild.
func TestBFS_DepthAndFilter(t *testing.T) {
	tr := sampleTree(t)

	res, err := bfs.BFS(tr, core.Root, bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []core.NodeID{0, 1, 5}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth(1) Order = %v; want %v", res.Order, want)
	}

	res, err = bfs.BFS(tr, core.Root, bfs.WithFilterChild(func(_, child core.NodeID) bool {
		return child != 2
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []core.NodeID{0, 1, 5, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Mirrors checks that mirrors are reached only when requested.
func TestBFS_Mirrors(t *testing.T) {
	tr := core.NewTree(core.WithVertexMirror())
	if err := tr.Insert("A", "B"); err != nil {
		t.Fatal(err)
	}
	// A=1, B=2 under A, mirror B=3

	res, err := bfs.BFS(tr, core.Root)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}

	res, err = bfs.BFS(tr, core.Root, bfs.WithMirrors())
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order with mirrors = %v; want %v", res.Order, want)
	}
	if res.Parent[3] != core.Root {
		t.Errorf("mirror parent = %d; want Root", res.Parent[3])
	}
}

// TestBFS_Hooks verifies hook order and abort on OnVisit error.
func TestBFS_Hooks(t *testing.T) {
	var enq, deq []core.NodeID
	stop := errors.New("stop")
	_, err := bfs.BFS(sampleTree(t), core.Root,
		bfs.WithOnEnqueue(func(id core.NodeID, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id core.NodeID, _ int) { deq = append(deq, id) }),
		bfs.WithOnVisit(func(id core.NodeID, _ int) error {
			if id == 5 {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Fatalf("want hook error, got %v", err)
	}
	if want := []core.NodeID{0, 1, 5}; !reflect.DeepEqual(deq, want) {
		t.Errorf("dequeued = %v; want %v", deq, want)
	}
	if want := []core.NodeID{0, 1, 5, 2, 4}; !reflect.DeepEqual(enq, want) {
		t.Errorf("enqueued = %v; want %v", enq, want)
	}
}

// TestBFS_Cancelled stops on a cancelled context.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(sampleTree(t), core.Root, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestPathLabels reads labels back along parent links.
func TestPathLabels(t *testing.T) {
	tr := sampleTree(t)
	got, err := bfs.PathLabels(tr, 3)
	if err != nil {
		t.Fatal(err)
	}
	if want := (core.Face{"A", "B", "C"}); !reflect.DeepEqual(got, want) {
		t.Errorf("PathLabels(C) = %v; want %v", got, want)
	}
	got, err = bfs.PathLabels(tr, core.Root)
	if err != nil || len(got) != 0 {
		t.Errorf("PathLabels(Root) = %v, %v; want empty", got, err)
	}
	if _, err = bfs.PathLabels(tr, 42); !errors.Is(err, bfs.ErrStartNodeNotFound) {
		t.Errorf("unknown node: want ErrStartNodeNotFound, got %v", err)
	}
	if _, err = bfs.PathLabels(nil, 1); !errors.Is(err, bfs.ErrTreeNil) {
		t.Errorf("nil tree: want ErrTreeNil, got %v", err)
	}
}
