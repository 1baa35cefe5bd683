// SPDX-License-Identifier: MIT
// Package matrix - real-field rank.
//
// Rank is the generic linear-algebra rank routine: Gaussian elimination over
// float64 with partial pivoting. Applied to a GF(2)-reduced matrix it counts
// independence over the reals, which can exceed the GF(2) rank (a column set
// summing to 2·v is dependent mod 2 but not over ℝ). Use RankMod2 for
// homology over GF(2).

package matrix

import (
	"fmt"
	"math"
)

// Rank returns the numerical rank of m.
//
// A pivot counts when its magnitude exceeds tol. tol == 0 selects the
// automatic tolerance max|a_ij| · max(r, c) · ε.
//
// Errors:
//   - ErrNilMatrix, ErrBadTolerance (tol < 0, NaN or Inf), ErrNaNInf (non-finite entry).
//
// Complexity: O(r*c*min(r,c)) time, O(r*c) space.
func Rank(m Matrix, tol float64) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, matrixErrorf(opRank, fmt.Errorf("tol=%v: %w", tol, ErrBadTolerance))
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return 0, nil
	}

	// Working copy, row-major slices for cheap swaps.
	a := make([][]float64, rows)
	maxAbs := 0.0
	for i := 0; i < rows; i++ {
		a[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opRank, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, matrixErrorf(opRank, denseErrorf(ctxAt, i, j, ErrNaNInf))
			}
			a[i][j] = v
			maxAbs = math.Max(maxAbs, math.Abs(v))
		}
	}
	if tol == 0 {
		tol = maxAbs * float64(max(rows, cols)) * machineEps
	}

	rank := 0
	for c := 0; c < cols && rank < rows; c++ {
		// partial pivoting: largest magnitude at or below the rank row
		pivot, best := rank, math.Abs(a[rank][c])
		for i := rank + 1; i < rows; i++ {
			if v := math.Abs(a[i][c]); v > best {
				pivot, best = i, v
			}
		}
		if best <= tol {
			continue
		}
		a[rank], a[pivot] = a[pivot], a[rank]
		for i := rank + 1; i < rows; i++ {
			f := a[i][c] / a[rank][c]
			if f == 0 {
				continue
			}
			for j := c; j < cols; j++ {
				a[i][j] -= f * a[rank][j]
			}
		}
		rank++
	}

	return rank, nil
}
