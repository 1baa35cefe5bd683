package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/asctree/core"
	"github.com/katalvlaran/asctree/dfs"
)

// ExamplePaths shows the post-order emission: a node's path is recorded
// after every path below it.
func ExamplePaths() {
	t := core.NewTree()
	_ = t.Insert("Cow", "Rabbit")
	_ = t.Insert("Cow", "Horse")

	paths, _ := dfs.Paths(t)
	for _, p := range paths {
		fmt.Println(p)
	}

	// Output:
	// (Cow, Rabbit)
	// (Cow, Horse)
	// (Cow)
}

// ExampleWalk uses the pre-order hook to print the tree top-down, while the
// result still carries the post-order paths.
//
//	ROOT
//	└── A
//	    ├── B
//	    │   └── C
//	    └── D
func ExampleWalk() {
	t := core.NewTree()
	_ = t.Insert("A", "B", "C")
	_ = t.Insert("A", "D")

	res, err := dfs.Walk(t, dfs.WithOnVisit(func(id core.NodeID, path core.Face) error {
		if id != core.Root {
			fmt.Println("enter", path)
		}
		return nil
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("recorded:", len(res.Paths))

	// Output:
	// enter (A)
	// enter (A, B)
	// enter (A, B, C)
	// enter (A, D)
	// recorded: 4
}

// ExampleFaces shows how the vertex mirror turns vertices that never lead a
// face into singleton faces.
func ExampleFaces() {
	t := core.NewTree(core.WithVertexMirror())
	_ = t.Insert("Fish", "Dolphin")
	_ = t.Insert("Fish", "Oyster")

	faces, _ := dfs.Faces(t)
	for _, f := range faces {
		fmt.Println(f)
	}

	// Output:
	// (Dolphin)
	// (Fish)
	// (Oyster)
	// (Dolphin, Fish)
	// (Fish, Oyster)
}
