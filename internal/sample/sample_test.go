package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndvec/ndvec/internal/array"
)

func TestUniformShapeAndRange(t *testing.T) {
	src := New(1)
	a := src.Uniform(array.Shape{3, 4})

	require.Equal(t, array.Shape{3, 4}, a.Shape())
	for leaf := range a.ElemSeq() {
		v := leaf.(float64)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestDeterministicForSeed(t *testing.T) {
	a := New(42).Uniform(array.Shape{2, 5})
	b := New(42).Uniform(array.Shape{2, 5})
	assert.True(t, a.Equals(b))

	c := New(43).Uniform(array.Shape{2, 5})
	assert.False(t, a.Equals(c))
}

func TestNormalMoments(t *testing.T) {
	src := New(7)
	a := src.Normal(array.Shape{10000}, 2, 0.5)

	sum := 0.0
	for leaf := range a.ElemSeq() {
		sum += leaf.(float64)
	}
	mean := sum / 10000

	assert.InDelta(t, 2.0, mean, 0.05)
}

func TestIntRange(t *testing.T) {
	src := New(3)
	a := src.IntRange(array.Shape{100}, 5)

	for leaf := range a.ElemSeq() {
		v := leaf.(int)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
}
