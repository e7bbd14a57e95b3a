package nested

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndvec/ndvec/internal/array"
)

func TestBroadcastIdentity(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})

	b, err := a.Broadcast(a.Shape())
	require.NoError(t, err)
	assert.Same(t, a, b, "broadcast to own shape returns the array unchanged")
}

func TestBroadcastWraps(t *testing.T) {
	a := mustNew(t, []float64{1, 2})

	b, err := a.Broadcast(array.Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, array.Shape{3, 2}, b.Shape())
	assert.Equal(t, []float64{1, 2, 1, 2, 1, 2}, b.Float64s())

	// Replicas share the original structure.
	assert.Same(t, b.MajorSlice(0), b.MajorSlice(2))
}

func TestBroadcastMultipleLeadingDims(t *testing.T) {
	a := mustNew(t, []float64{7})

	b, err := a.Broadcast(array.Shape{2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 3, 1}, b.Shape())
	assert.Equal(t, 6, b.NumElements())
}

func TestBroadcastIncompatible(t *testing.T) {
	a := mustNew(t, []float64{1, 2})

	_, err := a.Broadcast(array.Shape{2, 3})
	assert.ErrorIs(t, err, array.ErrShape)

	_, err = a.Broadcast(array.Shape{})
	assert.ErrorIs(t, err, array.ErrShape)

	// The operand is untouched by the failed broadcast.
	assert.Equal(t, []float64{1, 2}, a.Float64s())
}

func TestBroadcastLike(t *testing.T) {
	a := mustNew(t, []float64{1, 2})
	m := mustNew(t, [][]float64{{0, 0}, {0, 0}, {0, 0}})

	b, err := a.BroadcastLike(m)
	require.NoError(t, err)
	assert.Equal(t, m.Shape(), b.Shape())
}

func TestBroadcastCoerce(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})

	b, err := a.BroadcastCoerce([]float64{5, 6})
	require.NoError(t, err)
	assert.Equal(t, a.Shape(), b.Shape())
	assert.Equal(t, []float64{5, 6, 5, 6}, b.Float64s())

	s, err := a.BroadcastCoerce(9.0)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 9, 9, 9}, s.Float64s())

	_, err = a.BroadcastCoerce(nil)
	assert.ErrorIs(t, err, array.ErrShape)
}
