// Copyright 2026 The ndvec Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dense exposes the flat-buffer array backend: a mutable,
// contiguous row-major float64 array. It interoperates with the nested
// backend through the capability contract; a dense array can be a leaf
// of a nested array or an operand of its operations.
//
// Example:
//
//	d, err := dense.FromSlice([]float64{1, 2, 3, 4}, array.Shape{2, 2})
//	if err != nil {
//		log.Fatal(err)
//	}
//	row := d.MajorSlice(0) // zero-copy view
package dense

import (
	"github.com/ndvec/ndvec/internal/array"
	"github.com/ndvec/ndvec/internal/dense"
)

// Array is a dense row-major float64 array.
type Array = dense.Array

// Compile-time check that the backend satisfies the capability contract.
var _ array.Mutable = (*Array)(nil)

// Zeros builds a zero-filled dense array of the given shape.
func Zeros(shape array.Shape) *Array {
	return dense.Zeros(shape)
}

// FromSlice builds a dense array over a copy of data.
func FromSlice(data []float64, shape array.Shape) (*Array, error) {
	return dense.FromSlice(data, shape)
}
