// Copyright 2026 The ndvec Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array exposes the public capability contract for ndvec array
// backends.
//
// Any value satisfying Array can interoperate with every backend in the
// module: it can appear as a leaf inside a nested array, act as an
// operand in element-wise operations, and be coerced across
// representations through ToNested.
//
// Example:
//
//	impl, err := array.Lookup(2)
//	if err != nil {
//		log.Fatal(err)
//	}
//	m := impl.New(array.Shape{3, 4})
package array

import (
	"github.com/ndvec/ndvec/internal/array"
)

// Shape represents the dimensions of an array.
type Shape = array.Shape

// Array is the capability contract every backend implements.
type Array = array.Array

// Mutable extends Array with positional writes.
type Mutable = array.Mutable

// Implementation describes a registered array backend.
type Implementation = array.Implementation

// Error kinds reported by array operations.
var (
	ErrShape      = array.ErrShape
	ErrIndex      = array.ErrIndex
	ErrUpdate     = array.ErrUpdate
	ErrValidation = array.ErrValidation
)

// Register announces a backend to the process-wide registry.
func Register(impl Implementation) {
	array.Register(impl)
}

// Lookup returns the most specific implementation able to represent
// arrays of the given dimensionality.
func Lookup(dims int) (Implementation, error) {
	return array.Lookup(dims)
}

// Implementations returns a snapshot of the registered backends.
func Implementations() []Implementation {
	return array.Implementations()
}

// Float64Of converts a scalar of any Go numeric kind to float64.
func Float64Of(v any) (float64, bool) {
	return array.Float64Of(v)
}
