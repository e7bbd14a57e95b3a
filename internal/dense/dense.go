// Package dense implements a flat-buffer array backend: a contiguous
// row-major []float64 addressed through shape and strides. It is
// mutable, supports 0-D scalars, and exists alongside the nested backend
// so that operations can mix representations through the capability
// contract alone.
package dense

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"

	"github.com/ndvec/ndvec/internal/array"
)

// Array is a dense row-major float64 array.
//
// Views returned by MajorSlice share the underlying buffer; writes
// through SetAt are visible to every view of the same buffer.
type Array struct {
	data   []float64
	shape  array.Shape
	stride []int
	offset int
}

// Compile-time checks against the capability contract.
var (
	_ array.Array   = (*Array)(nil)
	_ array.Mutable = (*Array)(nil)
)

func init() {
	array.Register(array.Implementation{
		Name:    "dense",
		MinDims: 0,
		New: func(shape array.Shape) array.Array {
			return Zeros(shape)
		},
	})
}

// Zeros builds a zero-filled dense array of the given shape. An empty
// shape builds a 0-D scalar holder.
func Zeros(shape array.Shape) *Array {
	return &Array{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}
}

// FromSlice builds a dense array over a copy of data, which must have
// exactly shape.NumElements() values.
func FromSlice(data []float64, shape array.Shape) (*Array, error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(array.ErrShape,
			"dense: shape %v requires %d elements, got %d", shape, shape.NumElements(), len(data))
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return &Array{
		data:   buf,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// Dims returns the dimensionality.
func (d *Array) Dims() int { return len(d.shape) }

// Shape returns the array's shape. Callers must not modify it.
func (d *Array) Shape() array.Shape { return d.shape }

// DimCount returns the size along the given axis.
func (d *Array) DimCount(axis int) int { return d.shape[axis] }

// NumElements returns the total number of elements.
func (d *Array) NumElements() int { return d.shape.NumElements() }

// IsScalar reports whether the array is 0-dimensional.
func (d *Array) IsScalar() bool { return len(d.shape) == 0 }

// IsVector reports whether the array is 1-dimensional.
func (d *Array) IsVector() bool { return len(d.shape) == 1 }

// IsMutable always reports true for the dense backend.
func (d *Array) IsMutable() bool { return true }

// Item returns the value of a 0-D array.
func (d *Array) Item() any {
	if len(d.shape) != 0 {
		panic(fmt.Sprintf("dense: Item on %d-D array", len(d.shape)))
	}
	return d.data[d.offset]
}

// At returns the scalar at the given coordinate vector, computed through
// strides. Out-of-range coordinates hit the buffer's native bounds check.
func (d *Array) At(indices ...int) any {
	return d.data[d.flatIndex(indices)]
}

// SetAt overwrites the scalar at the given coordinate vector. Non-numeric
// values panic: the dense buffer holds float64 only.
func (d *Array) SetAt(value any, indices ...int) {
	f, ok := array.Float64Of(value)
	if !ok {
		panic(fmt.Sprintf("dense: SetAt with non-numeric value %T", value))
	}
	d.data[d.flatIndex(indices)] = f
}

func (d *Array) flatIndex(indices []int) int {
	if len(indices) != len(d.shape) {
		panic(fmt.Sprintf("dense: expected %d indices, got %d", len(d.shape), len(indices)))
	}
	off := d.offset
	for i, idx := range indices {
		if idx < 0 || idx >= d.shape[i] {
			panic(fmt.Sprintf("dense: index %d out of bounds for dimension %d (size %d)", idx, i, d.shape[i]))
		}
		off += idx * d.stride[i]
	}
	return off
}

// MajorSlice returns the i-th axis-0 element: the scalar for 1-D arrays,
// otherwise a zero-copy view into the same buffer.
func (d *Array) MajorSlice(i int) any {
	if len(d.shape) == 0 {
		panic("dense: major slice of 0-D array")
	}
	if i < 0 || i >= d.shape[0] {
		panic(fmt.Sprintf("dense: major slice %d out of bounds (size %d)", i, d.shape[0]))
	}
	if len(d.shape) == 1 {
		return d.data[d.offset+i*d.stride[0]]
	}
	return &Array{
		data:   d.data,
		shape:  d.shape[1:],
		stride: d.stride[1:],
		offset: d.offset + i*d.stride[0],
	}
}

// MajorSlices returns all axis-0 elements as views.
func (d *Array) MajorSlices() []any {
	out := make([]any, d.shape[0])
	for i := range out {
		out[i] = d.MajorSlice(i)
	}
	return out
}

// ElemSeq returns the flattened elements in row-major order.
func (d *Array) ElemSeq() iter.Seq[any] {
	return func(yield func(any) bool) {
		if len(d.shape) == 0 {
			yield(d.data[d.offset])
			return
		}
		d.walk(0, d.offset, yield)
	}
}

func (d *Array) walk(axis, off int, yield func(any) bool) bool {
	last := axis == len(d.shape)-1
	for i := 0; i < d.shape[axis]; i++ {
		pos := off + i*d.stride[axis]
		if last {
			if !yield(d.data[pos]) {
				return false
			}
		} else if !d.walk(axis+1, pos, yield) {
			return false
		}
	}
	return true
}

// Slice extracts the i-th sub-array along the given axis by gathering
// into a fresh buffer; axis 0 returns a zero-copy view instead.
func (d *Array) Slice(axis, i int) (any, error) {
	if axis < 0 || axis >= len(d.shape) {
		return nil, errors.Wrapf(array.ErrIndex, "dense: axis %d out of range for %d-D array", axis, len(d.shape))
	}
	if i < 0 || i >= d.shape[axis] {
		return nil, errors.Wrapf(array.ErrIndex,
			"dense: index %d out of range [0,%d) on axis %d", i, d.shape[axis], axis)
	}
	if axis == 0 {
		return d.MajorSlice(i), nil
	}
	outShape := make(array.Shape, 0, len(d.shape)-1)
	outShape = append(outShape, d.shape[:axis]...)
	outShape = append(outShape, d.shape[axis+1:]...)
	out := Zeros(outShape)
	if len(outShape) == 0 {
		out.data[0] = d.data[d.offset+i*d.stride[axis]]
		return out.Item(), nil
	}
	if out.NumElements() == 0 {
		return out, nil
	}
	coords := make([]int, len(outShape))
	full := make([]int, len(d.shape))
	for pos := 0; ; pos++ {
		copy(full[:axis], coords[:axis])
		full[axis] = i
		copy(full[axis+1:], coords[axis:])
		out.data[pos] = d.data[d.flatIndex(full)]
		k := len(coords) - 1
		for k >= 0 {
			coords[k]++
			if coords[k] < outShape[k] {
				break
			}
			coords[k] = 0
			k--
		}
		if k < 0 {
			return out, nil
		}
	}
}

// ToNested converts to nested-vector form: the major slices for
// higher-dimensional arrays, the raw scalars for vectors. This is the
// delegation hook the nested backend's coercion calls.
func (d *Array) ToNested() []any {
	if len(d.shape) == 0 {
		panic("dense: ToNested on 0-D array")
	}
	return d.MajorSlices()
}

// Float64s copies the flattened elements into a new buffer.
func (d *Array) Float64s() []float64 {
	out := make([]float64, 0, d.NumElements())
	for leaf := range d.ElemSeq() {
		out = append(out, leaf.(float64))
	}
	return out
}

// String returns a short diagnostic representation.
func (d *Array) String() string {
	return fmt.Sprintf("dense%v", []int(d.shape))
}
