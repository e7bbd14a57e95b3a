// Package array defines the capability contract shared by all array
// backends, plus the shape type, error kinds and the implementation
// registry used for generic dispatch.
//
// A backend only ever needs the narrow capability set below to
// interoperate with another backend: shape and dimensionality queries,
// major-slice access, the flattened element sequence, and conversion to
// nested-vector form. Nothing here assumes a concrete representation.
package array

import "iter"

// Array is the capability contract every backend implements.
//
// Values satisfying Array may appear as leaves inside other backends'
// structures and as operands in binary operations; callers must use only
// these capabilities on them, never their concrete representation.
type Array interface {
	// Dims returns the dimensionality (length of the shape tuple).
	Dims() int

	// Shape returns the array's shape. Callers must not modify it.
	Shape() Shape

	// DimCount returns the size along the given axis.
	DimCount(axis int) int

	// NumElements returns the total number of scalar elements.
	NumElements() int

	// IsScalar reports whether the array is 0-dimensional.
	IsScalar() bool

	// IsVector reports whether the array is 1-dimensional.
	IsVector() bool

	// IsMutable reports whether the backend permits in-place writes.
	IsMutable() bool

	// Item extracts the value of a 0-D array.
	// Panics if the array is not 0-dimensional.
	Item() any

	// At returns the scalar or sub-array at the given coordinate vector.
	// Out-of-range coordinates fail with the container's native bounds
	// check; they are not pre-validated.
	At(indices ...int) any

	// MajorSlice returns the element at axis-0 position i: a scalar for
	// 1-D arrays, a sub-array otherwise. The result aliases the
	// underlying storage where the backend supports views.
	MajorSlice(i int) any

	// MajorSlices returns all axis-0 elements in order.
	// Callers must not modify the returned slice.
	MajorSlices() []any

	// ElemSeq returns the flattened scalar sequence in row-major order.
	// The sequence is restartable: it is a pure function of the array.
	ElemSeq() iter.Seq[any]

	// Slice extracts the i-th sub-array along the given axis.
	Slice(axis, i int) (any, error)

	// ToNested converts the array to nested-vector form: a slice of
	// top-level elements, each a scalar, an Array, or a nested []any.
	// This is the delegation hook that lets other backends coerce this
	// one without knowing its representation.
	ToNested() []any
}

// Mutable extends Array with positional writes. Backends that expose it
// accept in-place element updates; purely structural backends do not.
type Mutable interface {
	Array

	// SetAt overwrites the scalar at the given coordinate vector.
	SetAt(value any, indices ...int)
}
