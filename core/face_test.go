package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/asctree/core"
)

func TestFace_SetSemantics(t *testing.T) {
	a := core.Face{"Cow", "Rabbit", "Horse"}
	b := core.Face{"Horse", "Cow", "Rabbit"}

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, core.Face{"Cow", "Horse", "Rabbit"}, a.Sorted())
	// Sorted never mutates the receiver
	assert.Equal(t, "Cow", a[0])
	assert.Equal(t, "Rabbit", a[1])
	assert.Equal(t, "(Cow, Rabbit, Horse)", a.String())
	assert.False(t, a.Equal(core.Face{"Cow", "Rabbit"}))
}

func TestFace_IsFacetOf(t *testing.T) {
	tri := core.Face{"Cow", "Rabbit", "Horse"}

	tests := []struct {
		name string
		f    core.Face
		want bool
	}{
		{"one vertex omitted", core.Face{"Rabbit", "Cow"}, true},
		{"other order", core.Face{"Horse", "Rabbit"}, true},
		{"foreign vertex", core.Face{"Cow", "Dog"}, false},
		{"two omitted", core.Face{"Cow"}, false},
		{"same size", core.Face{"Cow", "Rabbit", "Horse"}, false},
		{"duplicates", core.Face{"Cow", "Cow"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.f.IsFacetOf(tri))
		})
	}

	// the empty face is a facet of every vertex
	assert.True(t, core.Face{}.IsFacetOf(core.Face{"Cow"}))
}

func TestFace_Helpers(t *testing.T) {
	f := core.Face{"A", "B", "A"}
	assert.True(t, f.HasDuplicates())
	assert.False(t, core.Face{"A", "B"}.HasDuplicates())
	assert.True(t, f.Has("B"))
	assert.False(t, f.Has("C"))
	assert.Equal(t, 3, f.Len())

	c := f.Clone()
	c[0] = "Z"
	assert.Equal(t, "A", f[0])
}

func TestCompareFaces(t *testing.T) {
	assert.Negative(t, core.CompareFaces(core.Face{"Z"}, core.Face{"A", "B"}))
	assert.Positive(t, core.CompareFaces(core.Face{"B", "C"}, core.Face{"C", "A"}))
	assert.Zero(t, core.CompareFaces(core.Face{"B", "A"}, core.Face{"A", "B"}))
	assert.Zero(t, core.CompareFaces(core.Face{}, core.Face{}))
}
