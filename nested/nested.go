// Copyright 2026 The ndvec Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nested exposes the nested-array backend: an immutable
// N-dimensional array represented as recursively nested sequences, with
// structural sharing on every update.
//
// Example:
//
//	m, err := nested.New([][]float64{{1, 2}, {3, 4}})
//	if err != nil {
//		log.Fatal(err)
//	}
//	p, err := m.MatMul(m)
package nested

import (
	"github.com/ndvec/ndvec/internal/array"
	"github.com/ndvec/ndvec/internal/nested"
)

// Array is an immutable nested N-dimensional array.
type Array = nested.Array

// Compile-time check that the backend satisfies the capability contract.
var _ array.Array = (*Array)(nil)

// New coerces arbitrary input into nested form and validates its
// rectangularity.
func New(x any) (*Array, error) {
	return nested.New(x)
}

// Coerce converts arbitrary input into canonical nested form without
// validating rectangularity; scalars and nil pass through unchanged.
func Coerce(x any) any {
	return nested.Coerce(x)
}

// NewVector builds a zero-filled 1-D array.
func NewVector(length int) *Array {
	return nested.NewVector(length)
}

// NewMatrix builds a zero-filled 2-D array.
func NewMatrix(rows, cols int) *Array {
	return nested.NewMatrix(rows, cols)
}

// NewND builds a zero-filled array of the given shape.
func NewND(shape array.Shape) *Array {
	return nested.NewND(shape)
}

// FromFunc builds an array of the given shape where every leaf is
// f(coords), visited in row-major order.
func FromFunc(shape array.Shape, f func(coords []int) any) *Array {
	return nested.FromFunc(shape, f)
}

// UnaryFuncs is the fixed menu of element-wise math functions consumed
// by Apply and ApplyInPlace.
var UnaryFuncs = nested.UnaryFuncs
