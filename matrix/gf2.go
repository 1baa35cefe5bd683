// SPDX-License-Identifier: MIT
// Package matrix - GF(2) kernels.
//
// Purpose:
//   - Keep every stored entry inside {0,1}: each combination of entries is
//     reduced through gf2.Element before it is written back.
//   - Provide the rank over GF(2) by Gaussian elimination with row XOR.
//
// Contract:
//   - Inputs are read through the Matrix interface; entries must be finite
//     integers (any parity). Fractions, NaN and ±Inf fail with gf2.ErrNotIntegral.
//   - Results are fresh *Dense values; operands are never mutated.
//   - Zero-sized inputs are legal and yield zero-sized results (rank 0).
//
// Complexity:
//   - ReduceMod2/AddMod2: O(r*c). MulMod2: O(r*n*c). RankMod2: O(r*c*min(r,c)).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/asctree/gf2"
)

// Operation tags for error wrapping.
const (
	opReduceMod2 = "ReduceMod2"
	opAddMod2    = "AddMod2"
	opMulMod2    = "MulMod2"
	opRankMod2   = "RankMod2"
	opRank       = "Rank"
	opBoundary   = "BuildBoundary"
)

// matrixErrorf attaches an operation tag to err. err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elementsOf reads m as a row-major grid of GF(2) elements.
func elementsOf(m Matrix) ([][]gf2.Element, error) {
	rows, cols := m.Rows(), m.Cols()
	out := make([][]gf2.Element, rows)
	var (
		i, j int
		v    float64
		e    gf2.Element
		err  error
	)
	for i = 0; i < rows; i++ {
		out[i] = make([]gf2.Element, cols)
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if e, err = gf2.FromFloat(v); err != nil {
				return nil, fmt.Errorf("(%d,%d): %w", i, j, err)
			}
			out[i][j] = e
		}
	}

	return out, nil
}

// ReduceMod2 returns a copy of m with every entry replaced by its residue
// modulo 2 (negative integers included: -3 → 1).
func ReduceMod2(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReduceMod2, err)
	}
	grid, err := elementsOf(m)
	if err != nil {
		return nil, matrixErrorf(opReduceMod2, err)
	}
	res, err := newDenseZeroOK(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opReduceMod2, err)
	}
	for i, row := range grid {
		for j, e := range row {
			res.data[i*res.c+j] = e.Float()
		}
	}

	return res, nil
}

// AddMod2 returns (a + b) mod 2 element-wise. The raw sum is formed first
// and then reduced, so unreduced operands are accepted.
func AddMod2(a, b Matrix) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAddMod2, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAddMod2, err)
	}

	var (
		va, vb float64
		e      gf2.Element
	)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if va, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAddMod2, err)
			}
			if vb, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAddMod2, err)
			}
			if e, err = gf2.FromFloat(va + vb); err != nil {
				return nil, matrixErrorf(opAddMod2, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = e.Float()
		}
	}

	return res, nil
}

// MulMod2 returns the product a·b over GF(2).
// Errors: ErrDimensionMismatch when a.Cols() != b.Rows().
func MulMod2(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulMod2, err)
	}
	ga, err := elementsOf(a)
	if err != nil {
		return nil, matrixErrorf(opMulMod2, err)
	}
	gb, err := elementsOf(b)
	if err != nil {
		return nil, matrixErrorf(opMulMod2, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMulMod2, err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			acc := gf2.Zero
			for k := 0; k < inner; k++ {
				acc = acc.Add(ga[i][k].Mul(gb[k][j]))
			}
			res.data[i*cols+j] = acc.Float()
		}
	}

	return res, nil
}

// RankMod2 computes the rank of m over GF(2).
// Entries are reduced first, so any integer-valued matrix is accepted.
//
// Implementation:
//   - Stage 1: read entries as gf2.Element.
//   - Stage 2: column sweep; pick the first non-zero pivot at or below the
//     current rank row, swap it up and XOR it into every lower row with a 1.
func RankMod2(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRankMod2, err)
	}
	grid, err := elementsOf(m)
	if err != nil {
		return 0, matrixErrorf(opRankMod2, err)
	}

	rows, cols := m.Rows(), m.Cols()
	rank := 0
	for c := 0; c < cols && rank < rows; c++ {
		pivot := -1
		for i := rank; i < rows; i++ {
			if !grid[i][c].IsZero() {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		grid[rank], grid[pivot] = grid[pivot], grid[rank]
		for i := rank + 1; i < rows; i++ {
			if grid[i][c].IsZero() {
				continue
			}
			for j := c; j < cols; j++ {
				grid[i][j] = grid[i][j].Add(grid[rank][j])
			}
		}
		rank++
	}

	return rank, nil
}
