package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/asctree/matrix"
)

func TestRank(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want int
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, 2},
		{"scaled row", [][]float64{{1, 2}, {2, 4}}, 1},
		{"wide", [][]float64{{1, 0, 1}, {0, 1, 1}}, 2},
		{"zero", [][]float64{{0, 0}, {0, 0}}, 0},
		// dependent over GF(2), independent over the reals
		{"xor dependent", [][]float64{{1, 1, 0}, {0, 1, 1}, {1, 0, 1}}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Rank(dense(t, tc.rows), 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRank_Tolerance(t *testing.T) {
	m := dense(t, [][]float64{{1, 0}, {0, 1e-6}})
	r, err := matrix.Rank(m, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, r)

	r, err = matrix.Rank(m, 1e-3)
	require.NoError(t, err)
	assert.Equal(t, 1, r)

	for _, tol := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = matrix.Rank(m, tol)
		assert.ErrorIs(t, err, matrix.ErrBadTolerance)
	}
	_, err = matrix.Rank(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
