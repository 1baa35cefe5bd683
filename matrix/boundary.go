// SPDX-License-Identifier: MIT
// Package matrix - Boundary Matrix Builder.
//
// Purpose:
//   - Build ∂ₖ: rows are the faces with k-1 vertices, columns the faces with k
//     vertices, entry 1 iff the row face is the column face minus one vertex.
//   - Faces are compared as sets; labels inside each returned face are sorted.
//
// Determinism:
//   - Rows and Cols follow dfs canonical order (size, then sorted labels).
//
// Edge cases:
//   - k == 1: the row set is the single empty face.
//   - A level with no faces yields a zero-sized dimension, never an error.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/asctree/core"
	"github.com/katalvlaran/asctree/dfs"
)

// BoundaryMatrix is ∂ₖ together with the faces labelling its rows and columns.
type BoundaryMatrix struct {
	Mat  *Dense      // len(Rows) × len(Cols), entries 0/1
	Rows []core.Face // faces with K-1 vertices
	Cols []core.Face // faces with K vertices
	K    int
}

// NewBoundaryMatrix enumerates the faces of t and builds ∂ₖ over them.
//
// Errors:
//   - ErrTreeNil for a nil tree, ErrInvalidDimensions for k <= 0.
//   - Enumeration errors from dfs.Faces, wrapped.
func NewBoundaryMatrix(t *core.Tree, k int) (*BoundaryMatrix, error) {
	if t == nil {
		return nil, matrixErrorf(opBoundary, ErrTreeNil)
	}
	if k <= 0 {
		return nil, matrixErrorf(opBoundary, fmt.Errorf("k=%d: %w", k, ErrInvalidDimensions))
	}
	faces, err := dfs.Faces(t)
	if err != nil {
		return nil, matrixErrorf(opBoundary, err)
	}

	return BuildBoundary(faces, k)
}

// BuildBoundary builds ∂ₖ over an explicit face list. Duplicates (as sets)
// are collapsed first, so raw dfs.Paths output is accepted.
//
// Complexity: O(|Rows|·|Cols|·k).
func BuildBoundary(faces []core.Face, k int) (*BoundaryMatrix, error) {
	if k <= 0 {
		return nil, matrixErrorf(opBoundary, fmt.Errorf("k=%d: %w", k, ErrInvalidDimensions))
	}

	uniq := dfs.UniqueFaces(faces)
	cols := dfs.FacesOfSize(uniq, k)
	var rows []core.Face
	if k == 1 {
		rows = []core.Face{{}}
	} else {
		rows = dfs.FacesOfSize(uniq, k-1)
	}

	mat, err := newDenseZeroOK(len(rows), len(cols))
	if err != nil {
		return nil, matrixErrorf(opBoundary, err)
	}
	for i, r := range rows {
		for j, c := range cols {
			if r.IsFacetOf(c) {
				mat.data[i*mat.c+j] = 1
			}
		}
	}

	return &BoundaryMatrix{Mat: mat, Rows: rows, Cols: cols, K: k}, nil
}

// Shape returns (len(Rows), len(Cols)).
func (b *BoundaryMatrix) Shape() (rows, cols int) { return b.Mat.Shape() }

// Empty reports whether the matrix has no entries.
func (b *BoundaryMatrix) Empty() bool { return b.Mat.r == 0 || b.Mat.c == 0 }

// ColumnWeight returns the number of ones in column j, i.e. how many of the
// column face's facets are present in the complex.
func (b *BoundaryMatrix) ColumnWeight(j int) (int, error) {
	if j < 0 || j >= b.Mat.c {
		return 0, denseErrorf(ctxAt, 0, j, ErrOutOfRange)
	}
	w := 0
	for i := 0; i < b.Mat.r; i++ {
		if b.Mat.data[i*b.Mat.c+j] != 0 {
			w++
		}
	}

	return w, nil
}

// RankMod2 returns the rank of ∂ₖ over GF(2).
func (b *BoundaryMatrix) RankMod2() (int, error) { return RankMod2(b.Mat) }

// Rank returns the real-field rank of ∂ₖ (see Rank).
func (b *BoundaryMatrix) Rank(tol float64) (int, error) { return Rank(b.Mat, tol) }
