// Package sample builds arrays of random values. It owns none of the
// array logic: every constructor goes through the nested backend's
// generator entry point, which visits coordinates in row-major order so
// the source is consumed deterministically for a given seed.
package sample

import (
	"math"
	"math/rand"

	"github.com/ndvec/ndvec/internal/array"
	"github.com/ndvec/ndvec/internal/nested"
)

// Source draws random arrays from a seeded generator.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded deterministically.
// math/rand is intentional: samples are statistical, not cryptographic.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // G404: statistical sampling
}

// Uniform builds an array of the given shape with values drawn
// uniformly from [0, 1).
func (s *Source) Uniform(shape array.Shape) *nested.Array {
	return nested.FromFunc(shape, func([]int) any {
		return s.rng.Float64()
	})
}

// Normal builds an array of the given shape with values drawn from a
// normal distribution with the given mean and standard deviation, using
// the Box-Muller transform.
func (s *Source) Normal(shape array.Shape, mean, std float64) *nested.Array {
	return nested.FromFunc(shape, func([]int) any {
		u1 := s.rng.Float64()
		u2 := s.rng.Float64()
		z := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
		return mean + std*z
	})
}

// IntRange builds an array of the given shape with integers drawn
// uniformly from [0, n).
func (s *Source) IntRange(shape array.Shape, n int) *nested.Array {
	return nested.FromFunc(shape, func([]int) any {
		return s.rng.Intn(n)
	})
}
