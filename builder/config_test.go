// Package builder contains unit tests for the configuration primitives and
// enumeration helpers.
package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", newBuilderConfig().idFn(7))
	assert.Equal(t, "v3", newBuilderConfig(WithSymbNumb("v")).idFn(3))
	assert.Equal(t, "B", newBuilderConfig(WithIDScheme(SymbolIDFn)).idFn(1))

	// later options override earlier ones
	cfg := newBuilderConfig(WithSymbNumb("v"), WithIDScheme(DefaultIDFn))
	assert.Equal(t, "3", cfg.idFn(3))

	// nil options are ignored
	cfg = newBuilderConfig(nil, WithAllOrderings())
	assert.True(t, cfg.allOrderings)
	assert.False(t, newBuilderConfig().allOrderings)
}

func TestNamedIDFn(t *testing.T) {
	fn := NamedIDFn("Cow", "", "Dog")
	assert.Equal(t, "Cow", fn(0))
	assert.Equal(t, "1", fn(1))
	assert.Equal(t, "Dog", fn(2))
	assert.Equal(t, "3", fn(3))
}

func TestSymbolIDFn_Panics(t *testing.T) {
	assert.Equal(t, "Z", SymbolIDFn(25))
	assert.Panics(t, func() { SymbolIDFn(26) })
	assert.Panics(t, func() { SymbolIDFn(-1) })
}

func join(idx []int) string {
	var sb strings.Builder
	for _, v := range idx {
		sb.WriteByte(byte('0' + v))
	}
	return sb.String()
}

func TestForEachPermutation(t *testing.T) {
	var got []string
	forEachPermutation(3, func(idx []int) bool {
		got = append(got, join(idx))
		return true
	})
	assert.Equal(t, []string{"012", "021", "102", "120", "201", "210"}, got)

	n := 0
	forEachPermutation(4, func([]int) bool {
		n++
		return n < 5
	})
	assert.Equal(t, 5, n)
}

func TestForEachSubset(t *testing.T) {
	var got []string
	forEachSubset(4, 2, func(idx []int) bool {
		got = append(got, join(idx))
		return true
	})
	assert.Equal(t, []string{"01", "02", "03", "12", "13", "23"}, got)

	called := false
	forEachSubset(2, 3, func([]int) bool { called = true; return true })
	assert.False(t, called)
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, validateRange(MethodSimplex, 3, 1, 5))
	assert.ErrorIs(t, validateRange(MethodSimplex, 0, 1, 5), ErrTooFewVertices)
	err := validateRange(MethodSimplex, 6, 1, 5)
	assert.ErrorIs(t, err, ErrTooManyVertices)
	assert.Contains(t, err.Error(), "Simplex: n=6 > max=5")
}
