// Package asctree stores abstract simplicial complexes in a face-path tree
// and computes their boundary matrices over GF(2).
//
// 🚀 What is asctree?
//
//	A small, thread-safe library that brings together:
//		• Core primitives: a face-path tree where every stored face is a
//		  root-to-node path, with an optional vertex mirror index
//		• Traversals: post-order face enumeration (DFS) and level order (BFS)
//		• Builders: simplices, skeleta, hollow simplices, fixture complexes
//		• Matrices: boundary operators, GF(2) arithmetic and rank
//		• I/O: face-list notation, YAML/TOML complex files, node/edge export
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       : Tree, Node and Face types & thread-safe primitives
//	dfs/        : post-order path walk, face collapse and canonical ordering
//	bfs/        : level-order traversal of the tree
//	builder/    : deterministic constructors and reference fixtures
//	gf2/        : the two-element field
//	matrix/     : Dense matrices, boundary matrices, rank over GF(2) and ℝ
//	converters/ : node/edge list export (YAML, TOML)
//	notation/   : face-list literal parser and formatter
//
// Quick ASCII example, the tree for the faces (A,B), (A,C), (B,C), (A,B,C):
//
//	ROOT
//	├── A
//	│   ├── B
//	│   │   └── C
//	│   └── C
//	└── B
//	    └── C
//
// The cmd/asctree driver loads a complex and prints its faces, boundary
// matrices and ranks.
//
//	go install github.com/katalvlaran/asctree/cmd/asctree@latest
package asctree
