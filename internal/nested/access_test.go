package nested

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndvec/ndvec/internal/array"
)

func TestAt(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	assert.Equal(t, 4.0, a.At(1, 1))
	assert.Equal(t, 1.0, a.At(0, 0))

	row := a.At(1)
	require.IsType(t, (*Array)(nil), row)
	assert.Equal(t, []float64{3, 4}, row.(*Array).Float64s())

	assert.Panics(t, func() { a.At(5, 0) })
}

func TestGetBounds(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3})

	v, err := a.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = a.Get(3)
	assert.ErrorIs(t, err, array.ErrIndex)

	_, err = a.Get(0, 0)
	assert.ErrorIs(t, err, array.ErrIndex)
}

func TestSetReturnsNewArray(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})

	b, err := a.Set(9.0, 0, 1)
	require.NoError(t, err)

	// get(set(a, idx, v), idx) == v
	assert.Equal(t, 9.0, b.At(0, 1))

	// Untouched coordinates are unchanged, in both arrays.
	assert.Equal(t, 2.0, a.At(0, 1))
	assert.Equal(t, 1.0, b.At(0, 0))
	assert.Equal(t, 3.0, b.At(1, 0))
	assert.Equal(t, 4.0, b.At(1, 1))
}

func TestSetStructuralSharing(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b, err := a.Set(9.0, 0, 1)
	require.NoError(t, err)

	// The row not on the update path is shared, not copied.
	assert.Same(t, a.MajorSlice(1), b.MajorSlice(1))
	assert.NotSame(t, a.MajorSlice(0), b.MajorSlice(0))
}

func TestSetErrors(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})

	_, err := a.Set(1.0)
	assert.ErrorIs(t, err, array.ErrUpdate)

	_, err = a.Set(1.0, 5, 0)
	assert.ErrorIs(t, err, array.ErrIndex)

	_, err = a.Set(1.0, 0, 0, 0)
	assert.ErrorIs(t, err, array.ErrIndex)
}

func TestSetSubArray(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	row := mustNew(t, []float64{7, 8})

	b, err := a.Set(row, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8, 3, 4}, b.Float64s())
}
