// Package core_test provides benchmarks for core.Tree operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/asctree/core"
)

// BenchmarkInsert_Fresh measures inserting distinct 3-faces under a shared
// leading vertex, so every call allocates two new nodes.
func BenchmarkInsert_Fresh(b *testing.B) {
	t := core.NewTree()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Insert("Root", fmt.Sprintf("N%d", i), "Leaf")
	}
}

// BenchmarkInsert_Existing measures re-inserting one face; only the
// child lookups run.
func BenchmarkInsert_Existing(b *testing.B) {
	t := core.NewTree()
	face := core.Face{"A", "B", "C", "D", "E"}
	_ = t.Insert(face...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Insert(face...)
	}
}

// BenchmarkInsert_Mirrored measures insertion with the vertex mirror index,
// cycling over 100 labels so mirrors are mostly already present.
func BenchmarkInsert_Mirrored(b *testing.B) {
	t := core.NewTree(core.WithVertexMirror())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Insert("Root", fmt.Sprintf("N%d", i%100))
	}
}

// BenchmarkContains measures a hit on a 5-label path.
func BenchmarkContains(b *testing.B) {
	t := core.NewTree()
	face := core.Face{"A", "B", "C", "D", "E"}
	_ = t.Insert(face...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Contains(face)
	}
}
