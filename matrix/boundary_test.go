package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/asctree/builder"
	"github.com/katalvlaran/asctree/core"
	"github.com/katalvlaran/asctree/matrix"
)

func fixtureTree(t *testing.T, faces []core.Face, topts ...core.TreeOption) *core.Tree {
	t.Helper()
	tr, err := builder.BuildTree(topts, nil, builder.Faces(faces...))
	require.NoError(t, err)

	return tr
}

func TestBoundary_MammalTriangles(t *testing.T) {
	tr := fixtureTree(t, builder.MammalFaces())

	b, err := matrix.NewBoundaryMatrix(tr, 3)
	require.NoError(t, err)
	rows, cols := b.Shape()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, 3, b.K)

	// every triangle has exactly three edges
	for j := 0; j < cols; j++ {
		w, err := b.ColumnWeight(j)
		require.NoError(t, err)
		assert.Equal(t, 3, w, "column %v", b.Cols[j])
	}
	_, err = b.ColumnWeight(cols)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	r2, err := b.RankMod2()
	require.NoError(t, err)
	assert.Equal(t, 3, r2)
	r, err := b.Rank(0)
	require.NoError(t, err)
	assert.Equal(t, 4, r)
}

func TestBoundary_KingdomTriangles(t *testing.T) {
	tr := fixtureTree(t, builder.KingdomFaces())

	b, err := matrix.NewBoundaryMatrix(tr, 3)
	require.NoError(t, err)
	rows, cols := b.Shape()
	assert.Equal(t, 15, rows)
	assert.Equal(t, 9, cols)

	// rank of the reduced matrix under the real-field routine
	r, err := b.Rank(0)
	require.NoError(t, err)
	assert.Equal(t, 9, r)

	r2, err := b.RankMod2()
	require.NoError(t, err)
	assert.Equal(t, 7, r2)
}

func TestBoundary_EntriesAreIncidences(t *testing.T) {
	tr := fixtureTree(t, builder.MammalFaces())
	b, err := matrix.NewBoundaryMatrix(tr, 3)
	require.NoError(t, err)

	for i, r := range b.Rows {
		for j, c := range b.Cols {
			v, err := b.Mat.At(i, j)
			require.NoError(t, err)
			if r.IsFacetOf(c) {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Equal(t, 0.0, v)
			}
		}
	}
}

// ∂₂∂₃ vanishes over GF(2).
func TestBoundary_ComposesToZero(t *testing.T) {
	tr := fixtureTree(t, builder.MammalFaces(), core.WithVertexMirror())
	d2, err := matrix.NewBoundaryMatrix(tr, 2)
	require.NoError(t, err)
	d3, err := matrix.NewBoundaryMatrix(tr, 3)
	require.NoError(t, err)
	require.Equal(t, d2.Cols, d3.Rows)

	prod, err := matrix.MulMod2(d2.Mat, d3.Mat)
	require.NoError(t, err)
	r, err := matrix.RankMod2(prod)
	require.NoError(t, err)
	assert.Zero(t, r)
}

func TestBoundary_EmptyDimension(t *testing.T) {
	tr := fixtureTree(t, builder.MammalFaces())

	b, err := matrix.NewBoundaryMatrix(tr, 4)
	require.NoError(t, err)
	rows, cols := b.Shape()
	assert.Equal(t, 4, rows)
	assert.Zero(t, cols)
	assert.True(t, b.Empty())

	b, err = matrix.NewBoundaryMatrix(tr, 6)
	require.NoError(t, err)
	rows, cols = b.Shape()
	assert.Zero(t, rows)
	assert.Zero(t, cols)

	r, err := b.RankMod2()
	require.NoError(t, err)
	assert.Zero(t, r)
	r, err = b.Rank(0)
	require.NoError(t, err)
	assert.Zero(t, r)
}

func TestBoundary_VerticesAgainstEmptyFace(t *testing.T) {
	tr := fixtureTree(t, builder.MammalFaces())

	b, err := matrix.NewBoundaryMatrix(tr, 1)
	require.NoError(t, err)
	require.Len(t, b.Rows, 1)
	assert.Empty(t, b.Rows[0])
	// Dog only appears below the root without mirroring
	assert.Len(t, b.Cols, 3)
	for j := range b.Cols {
		w, err := b.ColumnWeight(j)
		require.NoError(t, err)
		assert.Equal(t, 1, w)
	}

	empty, err := matrix.NewBoundaryMatrix(core.NewTree(), 1)
	require.NoError(t, err)
	rows, cols := empty.Shape()
	assert.Equal(t, 1, rows)
	assert.Zero(t, cols)
}

func TestBuildBoundary_FacesAreSets(t *testing.T) {
	b, err := matrix.BuildBoundary([]core.Face{
		{"B", "A"}, {"A", "B"}, {"A"}, {"B"},
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.Face{{"A", "B"}}, b.Cols)
	assert.Equal(t, []core.Face{{"A"}, {"B"}}, b.Rows)
	assert.Equal(t, "[1]\n[1]\n", b.Mat.String())
}

func TestBoundary_Errors(t *testing.T) {
	_, err := matrix.NewBoundaryMatrix(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrTreeNil)
	_, err = matrix.NewBoundaryMatrix(core.NewTree(), 0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.BuildBoundary(nil, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
