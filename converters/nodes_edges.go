package converters

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/asctree/bfs"
	"github.com/katalvlaran/asctree/core"
)

// ErrTreeNil is returned when a nil tree is exported.
var ErrTreeNil = errors.New("converters: tree is nil")

// NodeRecord describes one tree node.
type NodeRecord struct {
	Key    string `yaml:"key" toml:"key"`
	Label  string `yaml:"label" toml:"label"`
	Depth  int    `yaml:"depth" toml:"depth"`
	Mirror bool   `yaml:"mirror,omitempty" toml:"mirror,omitempty"`
}

// EdgeRecord is one parent→child pair, by node key.
type EdgeRecord struct {
	From string `yaml:"from" toml:"from"`
	To   string `yaml:"to" toml:"to"`
}

// NodeKey returns the export key of id.
func NodeKey(id core.NodeID) string { return "n" + strconv.Itoa(int(id)) }

// ToNodeEdgeList walks t from Root in level order, mirrors included, and
// returns one NodeRecord per node and one EdgeRecord per parent–child pair.
// Root is exported with label core.RootLabel.
//
// Complexity: O(N) for N nodes.
func ToNodeEdgeList(t *core.Tree) ([]NodeRecord, []EdgeRecord, error) {
	if t == nil {
		return nil, nil, ErrTreeNil
	}
	res, err := bfs.BFS(t, core.Root, bfs.WithMirrors())
	if err != nil {
		return nil, nil, fmt.Errorf("ToNodeEdgeList: %w", err)
	}

	nodes := make([]NodeRecord, 0, len(res.Order))
	edges := make([]EdgeRecord, 0, len(res.Order))
	for _, id := range res.Order {
		n, err := t.Node(id)
		if err != nil {
			return nil, nil, fmt.Errorf("ToNodeEdgeList: %w", err)
		}
		label := n.Label
		if id == core.Root {
			label = core.RootLabel
		}
		nodes = append(nodes, NodeRecord{
			Key:    NodeKey(id),
			Label:  label,
			Depth:  res.Depth[id],
			Mirror: n.Mirror,
		})
		if parent, ok := res.Parent[id]; ok {
			edges = append(edges, EdgeRecord{From: NodeKey(parent), To: NodeKey(id)})
		}
	}

	return nodes, edges, nil
}
