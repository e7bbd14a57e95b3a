package dense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndvec/ndvec/internal/array"
)

func TestZerosAndShape(t *testing.T) {
	d := Zeros(array.Shape{2, 3})

	assert.Equal(t, 2, d.Dims())
	assert.Equal(t, array.Shape{2, 3}, d.Shape())
	assert.Equal(t, 6, d.NumElements())
	assert.True(t, d.IsMutable())
	assert.False(t, d.IsVector())
}

func TestFromSliceShapeMismatch(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3}, array.Shape{2, 2})
	assert.ErrorIs(t, err, array.ErrShape)
}

func TestAtSetAt(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, 6.0, d.At(1, 2))
	d.SetAt(9.0, 1, 2)
	assert.Equal(t, 9.0, d.At(1, 2))

	assert.Panics(t, func() { d.At(2, 0) })
	assert.Panics(t, func() { d.At(0) })
	assert.Panics(t, func() { d.SetAt("x", 0, 0) })
}

func TestMajorSliceIsView(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3, 4}, array.Shape{2, 2})
	require.NoError(t, err)

	row := d.MajorSlice(1).(*Array)
	assert.Equal(t, array.Shape{2}, row.Shape())
	assert.Equal(t, 3.0, row.At(0))

	// Writes through the view are visible in the parent buffer.
	row.SetAt(9.0, 0)
	assert.Equal(t, 9.0, d.At(1, 0))
}

func TestVectorMajorSliceIsScalar(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3}, array.Shape{3})
	require.NoError(t, err)
	assert.Equal(t, 2.0, d.MajorSlice(1))
}

func TestZeroDim(t *testing.T) {
	d := Zeros(array.Shape{})
	assert.True(t, d.IsScalar())
	assert.Equal(t, 1, d.NumElements())

	d.SetAt(4.5)
	assert.Equal(t, 4.5, d.Item())
}

func TestElemSeqRowMajor(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
	require.NoError(t, err)

	var got []float64
	for leaf := range d.ElemSeq() {
		got = append(got, leaf.(float64))
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, got)
}

func TestSlice(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
	require.NoError(t, err)

	col, err := d.Slice(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, col.(*Array).Float64s())

	row, err := d.Slice(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, row.(*Array).Float64s())

	_, err = d.Slice(1, 3)
	assert.ErrorIs(t, err, array.ErrIndex)
	_, err = d.Slice(2, 0)
	assert.ErrorIs(t, err, array.ErrIndex)
}

func TestSliceEmptyDimension(t *testing.T) {
	d, err := FromSlice(nil, array.Shape{0, 2})
	require.NoError(t, err)

	col, err := d.Slice(1, 0)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{0}, col.(*Array).Shape())
	assert.Empty(t, col.(*Array).Float64s())
}

func TestToNested(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3, 4}, array.Shape{2, 2})
	require.NoError(t, err)

	rows := d.ToNested()
	require.Len(t, rows, 2)
	assert.Equal(t, []float64{3, 4}, rows[1].(*Array).Float64s())

	v, err := FromSlice([]float64{1, 2}, array.Shape{2})
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.0}, v.ToNested())
}

func TestRegistryRegistration(t *testing.T) {
	impl, err := array.Lookup(0)
	require.NoError(t, err)
	assert.Equal(t, "dense", impl.Name)
}
