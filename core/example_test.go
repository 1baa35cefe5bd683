package core_test

import (
	"fmt"

	"github.com/katalvlaran/asctree/core"
)

// ExampleTree demonstrates insertion and exact path lookup.
func ExampleTree() {
	// 1) Create a plain tree and insert two orderings of the same edge:
	t := core.NewTree()
	_ = t.Insert("Cow", "Rabbit")
	_ = t.Insert("Rabbit", "Cow")

	// 2) Both orderings are distinct paths; shared labels are distinct nodes:
	fmt.Println("nodes:", t.Len())
	fmt.Println("has (Cow, Rabbit)?", t.Contains(core.Face{"Cow", "Rabbit"}))
	fmt.Println("has (Rabbit, Cow)?", t.Contains(core.Face{"Rabbit", "Cow"}))
	fmt.Println("labels:", t.Labels())

	// Output:
	// nodes: 5
	// has (Cow, Rabbit)? true
	// has (Rabbit, Cow)? true
	// labels: [Cow Rabbit]
}

// ExampleWithVertexMirror shows the mirror index filling in vertices that only
// ever appear below the root.
func ExampleWithVertexMirror() {
	t := core.NewTree(core.WithVertexMirror())
	_ = t.Insert("Fish", "Dolphin", "Oyster")

	for _, id := range t.Mirrors() {
		l, _ := t.Label(id)
		fmt.Println("mirror:", l)
	}

	// Output:
	// mirror: Dolphin
	// mirror: Oyster
}
