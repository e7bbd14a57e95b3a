package nested

import (
	"github.com/pkg/errors"

	"github.com/ndvec/ndvec/internal/array"
)

// MajorSlice returns the i-th top-level element: a scalar for 1-D
// arrays, a sub-array otherwise. The result aliases the original
// structure; it is never a copy.
func (a *Array) MajorSlice(i int) any {
	return a.elems[i]
}

// MajorSlices returns the top-level elements in order.
// Callers must not modify the returned slice.
func (a *Array) MajorSlices() []any {
	return a.elems
}

// ToNested returns the array in nested-vector form. For this backend
// that is simply its own element slice.
func (a *Array) ToNested() []any {
	return a.elems
}

// Slice extracts the i-th sub-array along the given axis: the major
// slice for axis 0, otherwise Slice(axis-1, i) mapped over every
// top-level element.
func (a *Array) Slice(axis, i int) (any, error) {
	if axis == 0 {
		if i < 0 || i >= len(a.elems) {
			return nil, errors.Wrapf(array.ErrIndex,
				"slice: index %d out of range [0,%d)", i, len(a.elems))
		}
		return a.elems[i], nil
	}
	elems := make([]any, len(a.elems))
	for j, e := range a.elems {
		sub, err := sliceOf(e, axis-1, i)
		if err != nil {
			return nil, err
		}
		elems[j] = sub
	}
	return fromElems(elems), nil
}

func sliceOf(v any, axis, i int) (any, error) {
	switch e := v.(type) {
	case *Array:
		return e.Slice(axis, i)
	case array.Array:
		return e.Slice(axis, i)
	default:
		return nil, errors.Wrapf(array.ErrIndex, "slice: axis %d beyond scalar leaf", axis)
	}
}

// Row returns the i-th axis-0 slice of a matrix.
func (a *Array) Row(i int) (any, error) {
	return a.Slice(0, i)
}

// Column returns the j-th axis-1 slice: a new array of the element at
// position j of every row.
func (a *Array) Column(j int) (any, error) {
	return a.Slice(1, j)
}

// Subvector returns the contiguous sub-range [start, start+length) of a
// 1-D array. The result shares storage with the original.
func (a *Array) Subvector(start, length int) (*Array, error) {
	if a.Dims() != 1 {
		return nil, wrapShape("subvector: want 1-D array, got %d-D", a.Dims())
	}
	if start < 0 || length < 0 || start+length > len(a.elems) {
		return nil, errors.Wrapf(array.ErrIndex,
			"subvector: range [%d,%d) out of bounds [0,%d)", start, start+length, len(a.elems))
	}
	return fromElems(a.elems[start : start+length : start+length]), nil
}

// Rotate circularly shifts the elements along axis by places (mod the
// axis length; negative places rotate the other way). Axis 0 reorders
// the top-level slice directly; higher axes recurse per element.
func (a *Array) Rotate(axis, places int) (*Array, error) {
	if axis == 0 {
		n := len(a.elems)
		if n == 0 {
			return a, nil
		}
		k := places % n
		if k < 0 {
			k += n
		}
		elems := make([]any, 0, n)
		elems = append(elems, a.elems[n-k:]...)
		elems = append(elems, a.elems[:n-k]...)
		return fromElems(elems), nil
	}
	elems := make([]any, len(a.elems))
	for i, e := range a.elems {
		child, ok := Coerce(e).(*Array)
		if !ok {
			return nil, errors.Wrapf(array.ErrIndex, "rotate: axis %d beyond scalar leaf", axis)
		}
		sub, err := child.Rotate(axis-1, places)
		if err != nil {
			return nil, err
		}
		elems[i] = sub
	}
	return fromElems(elems), nil
}

// Order gathers the elements along axis in the order given by indices.
// Indices may repeat or omit positions; the result's axis length is
// len(indices).
func (a *Array) Order(axis int, indices []int) (*Array, error) {
	if axis == 0 {
		elems := make([]any, len(indices))
		for j, i := range indices {
			if i < 0 || i >= len(a.elems) {
				return nil, errors.Wrapf(array.ErrIndex,
					"order: index %d out of range [0,%d)", i, len(a.elems))
			}
			elems[j] = a.elems[i]
		}
		return fromElems(elems), nil
	}
	elems := make([]any, len(a.elems))
	for i, e := range a.elems {
		child, ok := Coerce(e).(*Array)
		if !ok {
			return nil, errors.Wrapf(array.ErrIndex, "order: axis %d beyond scalar leaf", axis)
		}
		sub, err := child.Order(axis-1, indices)
		if err != nil {
			return nil, err
		}
		elems[i] = sub
	}
	return fromElems(elems), nil
}

// Select gathers recursively with one index list per axis: the result
// contains, for each index in the first list, the selection of the
// remaining lists applied to that major slice.
func (a *Array) Select(indexLists ...[]int) (any, error) {
	if len(indexLists) == 0 {
		return a, nil
	}
	elems := make([]any, len(indexLists[0]))
	for j, i := range indexLists[0] {
		if i < 0 || i >= len(a.elems) {
			return nil, errors.Wrapf(array.ErrIndex,
				"select: index %d out of range [0,%d)", i, len(a.elems))
		}
		e := a.elems[i]
		if len(indexLists) == 1 {
			elems[j] = e
			continue
		}
		child, ok := Coerce(e).(*Array)
		if !ok {
			return nil, errors.Wrapf(array.ErrIndex,
				"select: %d surplus index lists descend past a scalar", len(indexLists)-1)
		}
		sub, err := child.Select(indexLists[1:]...)
		if err != nil {
			return nil, err
		}
		elems[j] = sub
	}
	return fromElems(elems), nil
}

// Join concatenates along axis 0 when a and b share dimensionality. When
// b's dimensionality is exactly one less than a's, b is appended as one
// more top-level element. Anything else fails with ErrShape.
func (a *Array) Join(b any) (*Array, error) {
	bd := dimsOf(b)
	ad := a.Dims()
	switch {
	case bd == ad:
		bn := lenOf(b)
		elems := make([]any, 0, len(a.elems)+bn)
		elems = append(elems, a.elems...)
		for i := 0; i < bn; i++ {
			elems = append(elems, majorSliceOf(b, i))
		}
		return fromElems(elems), nil
	case bd == ad-1:
		elems := make([]any, 0, len(a.elems)+1)
		elems = append(elems, a.elems...)
		elems = append(elems, b)
		return fromElems(elems), nil
	default:
		return nil, wrapShape("join: incompatible size: %d-D with %d-D", ad, bd)
	}
}
