// Package nested implements the recursively nested array backend: an
// N-dimensional array represented as an immutable ordered sequence whose
// elements are scalars (1-D), nested arrays of uniform shape (k-D), or
// foreign backend values treated as opaque leaves.
//
// Every capability is derived by structural recursion: an operation peels
// one dimension per level until it reaches scalar leaves, then recomposes
// results into new arrays. "Mutation" always returns a new array sharing
// unmodified substructure with the original.
//
// Rectangularity is validated only where documented (New, ValidateShape).
// Operations that assume it do not re-check; behavior on ragged input is
// undefined there.
package nested

import (
	"fmt"
	"strings"

	"github.com/ndvec/ndvec/internal/array"
)

// Array is an immutable nested N-dimensional array.
//
// The zero value is an empty 1-D array. Elements are never mutated after
// construction; all updates build new arrays with structural sharing.
type Array struct {
	elems []any
}

// Compile-time check that *Array satisfies the capability contract.
var _ array.Array = (*Array)(nil)

func init() {
	array.Register(array.Implementation{
		Name:    "nested",
		MinDims: 1,
		New: func(shape array.Shape) array.Array {
			return NewND(shape)
		},
	})
}

// fromElems wraps an element slice without copying. The caller must not
// retain a mutable reference to elems.
func fromElems(elems []any) *Array {
	return &Array{elems: elems}
}

// Len returns the axis-0 length.
func (a *Array) Len() int {
	return len(a.elems)
}

// Dims returns the dimensionality: 1 for an empty array or an array of
// scalars, one more per nesting level. Foreign leaves report their own
// dimensionality by delegation.
func (a *Array) Dims() int {
	if len(a.elems) == 0 {
		return 1
	}
	d := dimsOf(a.elems[0])
	if d == 0 {
		return 1
	}
	return 1 + d
}

// Shape returns the array's shape: its length followed by the shape of
// its first element. An empty array has shape [0]; no deeper levels are
// knowable. Rectangularity is assumed, not verified.
func (a *Array) Shape() array.Shape {
	if len(a.elems) == 0 {
		return array.Shape{0}
	}
	return append(array.Shape{len(a.elems)}, shapeOf(a.elems[0])...)
}

// DimCount returns the size along the given axis.
func (a *Array) DimCount(axis int) int {
	if axis == 0 {
		return len(a.elems)
	}
	return dimCountOf(a.elems[0], axis-1)
}

// NumElements returns the product of the shape entries.
func (a *Array) NumElements() int {
	if len(a.elems) == 0 {
		return 0
	}
	return len(a.elems) * numElementsOf(a.elems[0])
}

// IsScalar always reports false: the backend has no 0-D representation.
func (a *Array) IsScalar() bool { return false }

// IsVector reports whether the array is 1-dimensional.
func (a *Array) IsVector() bool { return a.Dims() == 1 }

// IsMutable always reports false. Even when a leaf is a mutable foreign
// array, the backend's own structure is immutable.
func (a *Array) IsMutable() bool { return false }

// Item panics: the nested backend has no 0-D arrays.
func (a *Array) Item() any {
	panic(fmt.Sprintf("nested: Item on %d-D array", a.Dims()))
}

// String renders the array in nested-bracket form.
func (a *Array) String() string {
	var b strings.Builder
	writeValue(&b, a)
	return b.String()
}

func writeValue(b *strings.Builder, v any) {
	switch e := v.(type) {
	case *Array:
		b.WriteByte('[')
		for i, el := range e.elems {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeValue(b, el)
		}
		b.WriteByte(']')
	case array.Array:
		fmt.Fprintf(b, "%v", e)
	default:
		fmt.Fprintf(b, "%v", e)
	}
}

// dimsOf returns the dimensionality of any element: 0 for scalars,
// delegated for foreign arrays, recursive for nested ones.
func dimsOf(v any) int {
	switch e := v.(type) {
	case *Array:
		return e.Dims()
	case array.Array:
		return e.Dims()
	default:
		return 0
	}
}

// shapeOf returns the shape of any element; scalars have an empty shape.
func shapeOf(v any) array.Shape {
	switch e := v.(type) {
	case *Array:
		return e.Shape()
	case array.Array:
		return e.Shape()
	default:
		return nil
	}
}

func dimCountOf(v any, axis int) int {
	switch e := v.(type) {
	case *Array:
		return e.DimCount(axis)
	case array.Array:
		return e.DimCount(axis)
	default:
		panic(fmt.Sprintf("nested: axis %d beyond scalar leaf", axis))
	}
}

func numElementsOf(v any) int {
	switch e := v.(type) {
	case *Array:
		return e.NumElements()
	case array.Array:
		return e.NumElements()
	default:
		return 1
	}
}

// lenOf returns the axis-0 length of any array value.
func lenOf(v any) int {
	switch e := v.(type) {
	case *Array:
		return e.Len()
	case array.Array:
		return e.DimCount(0)
	default:
		panic("nested: length of scalar leaf")
	}
}

// majorSliceOf returns the i-th axis-0 element of any array value.
func majorSliceOf(v any, i int) any {
	switch e := v.(type) {
	case *Array:
		return e.elems[i]
	case array.Array:
		return e.MajorSlice(i)
	default:
		panic("nested: major slice of scalar leaf")
	}
}

// scalarOf extracts the scalar from a 0-D operand; plain scalars pass
// through unchanged.
func scalarOf(v any) any {
	if arr, ok := v.(array.Array); ok && arr.Dims() == 0 {
		return arr.Item()
	}
	return v
}
