package nested

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndvec/ndvec/internal/array"
	"github.com/ndvec/ndvec/internal/dense"
)

func TestEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal vectors", []float64{1, 2, 3}, []float64{1, 2, 3}, true},
		{"different length", []float64{1, 2}, []float64{1, 2, 3}, false},
		{"different value", []float64{1, 2, 3}, []float64{1, 2, 4}, false},
		{"equal matrices", [][]float64{{1, 2}, {3, 4}}, [][]float64{{1, 2}, {3, 4}}, true},
		{"matrix mismatch", [][]float64{{1, 2}, {3, 4}}, [][]float64{{1, 2}, {3, 5}}, false},
		{"dims differ", []float64{1, 2}, [][]float64{{1, 2}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustNew(t, tt.a)
			b := mustNew(t, tt.b)
			assert.Equal(t, tt.want, a.Equals(b))
		})
	}
}

func TestEqualsScalarOperand(t *testing.T) {
	a := mustNew(t, []float64{1})
	assert.False(t, a.Equals(1.0), "0-D operand is never equal")
}

func TestEqualsMixedNumericTypes(t *testing.T) {
	a := mustNew(t, []int{1, 2, 3})
	b := mustNew(t, []float64{1, 2, 3})
	assert.True(t, a.Equals(b))
}

func TestEqualsAcrossBackends(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	d, err := dense.FromSlice([]float64{1, 2, 3, 4}, array.Shape{2, 2})
	require.NoError(t, err)

	assert.True(t, a.Equals(d))

	d.SetAt(9.0, 1, 1)
	assert.False(t, a.Equals(d))
}
