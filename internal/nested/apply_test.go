package nested

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndvec/ndvec/internal/array"
	"github.com/ndvec/ndvec/internal/dense"
)

func TestElemSeq(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})

	var got []float64
	for leaf := range a.ElemSeq() {
		got = append(got, leaf.(float64))
	}
	assert.Equal(t, []float64{1, 2, 3, 4}, got)

	// Restartable: a second pass yields the same sequence.
	var again []float64
	for leaf := range a.ElemSeq() {
		again = append(again, leaf.(float64))
	}
	assert.Equal(t, got, again)
}

func TestElemSeqEarlyStop(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})

	count := 0
	for range a.ElemSeq() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestMap(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})

	doubled := a.Map(func(v any) any {
		x, _ := array.Float64Of(v)
		return 2 * x
	})

	assert.Equal(t, []float64{2, 4, 6, 8}, doubled.Float64s())
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Float64s(), "original untouched")
}

func TestMapWithMixedBackends(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	d, err := dense.FromSlice([]float64{10, 20, 30, 40}, array.Shape{2, 2})
	require.NoError(t, err)

	sum := a.MapWith(float2("add", func(x, y float64) float64 { return x + y }), d)
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.Float64s())

	// Same result as mapping over two nested operands.
	b := mustNew(t, [][]float64{{10, 20}, {30, 40}})
	sum2 := a.MapWith(float2("add", func(x, y float64) float64 { return x + y }), b)
	assert.True(t, sum.Equals(sum2))
}

func TestMapIndexed(t *testing.T) {
	a := mustNew(t, [][]float64{{0, 0}, {0, 0}})

	indexed := a.MapIndexed(func(coords []int, v any) any {
		return float64(coords[0]*10 + coords[1])
	})

	assert.Equal(t, []float64{0, 1, 10, 11}, indexed.Float64s())
}

func TestMapInPlaceMutatesForeignLeaf(t *testing.T) {
	d, err := dense.FromSlice([]float64{1, 2}, array.Shape{2})
	require.NoError(t, err)
	a := fromElems([]any{
		mustNew(t, []float64{10, 20}),
		d,
	})

	out := a.MapInPlace(func(v any) any {
		x, _ := array.Float64Of(v)
		return x + 1
	})

	assert.Equal(t, []float64{11, 21, 2, 3}, out.Float64s())
	// The mutable foreign leaf was written through...
	assert.Equal(t, []float64{2, 3}, d.Float64s())
	// ...and kept in the rebuilt structure rather than coerced away.
	assert.Same(t, d, out.MajorSlice(1))
}

func TestMapIndexedInPlace(t *testing.T) {
	d, err := dense.FromSlice([]float64{0, 0}, array.Shape{2})
	require.NoError(t, err)
	a := fromElems([]any{d, mustNew(t, []float64{0, 0})})

	out := a.MapIndexedInPlace(func(coords []int, v any) any {
		return float64(coords[0]*10 + coords[1])
	})

	assert.Equal(t, []float64{0, 1, 10, 11}, out.Float64s())
	assert.Equal(t, []float64{0, 1}, d.Float64s())
}

func TestReduce(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})

	sum := a.Reduce(func(acc, v any) any {
		x, _ := array.Float64Of(acc)
		y, _ := array.Float64Of(v)
		return x + y
	})
	assert.Equal(t, 10.0, sum)

	withInit := a.Reduce(func(acc, v any) any {
		x, _ := array.Float64Of(acc)
		y, _ := array.Float64Of(v)
		return x + y
	}, 100.0)
	assert.Equal(t, 110.0, withInit)

	empty := mustNew(t, []float64{})
	assert.Nil(t, empty.Reduce(func(acc, v any) any { return acc }))
}

func TestApplyTable(t *testing.T) {
	a := mustNew(t, []float64{1, 4, 9})

	r, err := a.Apply("sqrt")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, r.Float64s())

	_, err = a.Apply("no-such-fn")
	assert.Error(t, err)

	neg := a.Neg()
	assert.Equal(t, []float64{-1, -4, -9}, neg.Float64s())
}
