package nested

import (
	"reflect"

	"github.com/ndvec/ndvec/internal/array"
)

// Coerce converts arbitrary input into canonical nested form:
//
//   - values already in canonical form are returned unchanged,
//   - foreign arrays with dimensionality > 0 are converted through their
//     own ToNested capability and coerced element-wise,
//   - 0-D foreign arrays collapse to their scalar value,
//   - nil passes through unchanged,
//   - Go slices and fixed-size arrays of any element type are coerced
//     element-wise into a new Array,
//   - anything else is treated as an opaque scalar.
//
// Coerce is idempotent and never validates rectangularity; use New or
// ValidateShape when the invariant must be enforced.
func Coerce(x any) any {
	if x == nil {
		return nil
	}
	if a, ok := x.(*Array); ok {
		if isCanonical(a) {
			return a
		}
		return coerceElems(a.elems)
	}
	if arr, ok := x.(array.Array); ok {
		if arr.Dims() == 0 {
			return arr.Item()
		}
		return coerceElems(arr.ToNested())
	}
	rv := reflect.ValueOf(x)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = Coerce(rv.Index(i).Interface())
		}
		return fromElems(elems)
	}
	return x
}

func coerceElems(raw []any) *Array {
	elems := make([]any, len(raw))
	for i, e := range raw {
		elems[i] = Coerce(e)
	}
	return fromElems(elems)
}

// New coerces x into nested form and validates rectangularity. This is
// the construction entry point for foreign input; it rejects ragged
// structure with ErrValidation and scalar input with ErrShape.
func New(x any) (*Array, error) {
	v := Coerce(x)
	a, ok := v.(*Array)
	if !ok {
		return nil, wrapShape("construct: input %v has no dimensions", x)
	}
	if _, err := a.ValidateShape(); err != nil {
		return nil, err
	}
	return a, nil
}

// NewVector builds a 1-D array of the given length filled with zeros.
func NewVector(length int) *Array {
	elems := make([]any, length)
	for i := range elems {
		elems[i] = float64(0)
	}
	return fromElems(elems)
}

// NewMatrix builds a rows x cols array filled with zeros.
func NewMatrix(rows, cols int) *Array {
	elems := make([]any, rows)
	for i := range elems {
		elems[i] = NewVector(cols)
	}
	return fromElems(elems)
}

// NewND builds a zero-filled array of the given shape, recursively for
// nested dimensions.
func NewND(shape array.Shape) *Array {
	if len(shape) <= 1 {
		n := 0
		if len(shape) == 1 {
			n = shape[0]
		}
		return NewVector(n)
	}
	elems := make([]any, shape[0])
	for i := range elems {
		elems[i] = NewND(shape[1:])
	}
	return fromElems(elems)
}

// FromFunc builds an array of the given shape where every scalar leaf is
// f(coords). Coordinates are visited in row-major order, so f may carry
// sequential state (e.g. a random source). The coords slice is reused
// between calls; f must copy it to retain it. An empty shape degrades to
// an empty vector, like NewND.
func FromFunc(shape array.Shape, f func(coords []int) any) *Array {
	if len(shape) == 0 {
		return fromElems(nil)
	}
	coords := make([]int, 0, len(shape))
	return fromFunc(shape, coords, f)
}

func fromFunc(shape array.Shape, prefix []int, f func(coords []int) any) *Array {
	elems := make([]any, shape[0])
	for i := range elems {
		coords := append(prefix, i)
		if len(shape) == 1 {
			elems[i] = f(coords)
		} else {
			elems[i] = fromFunc(shape[1:], coords, f)
		}
	}
	return fromElems(elems)
}
