package nested

import (
	"github.com/pkg/errors"

	"github.com/ndvec/ndvec/internal/array"
)

func wrapShape(format string, args ...any) error {
	return errors.Wrapf(array.ErrShape, format, args...)
}

// At descends one index per level and returns the scalar or sub-array at
// that position. Out-of-range indices fail with the slice's native
// bounds panic; they are not pre-validated.
func (a *Array) At(indices ...int) any {
	var cur any = a
	for _, i := range indices {
		cur = majorSliceOf(cur, i)
	}
	return cur
}

// Get is At with an explicit bounds check, returning ErrIndex instead of
// panicking.
func (a *Array) Get(indices ...int) (any, error) {
	var cur any = a
	for depth, i := range indices {
		if dimsOf(cur) == 0 {
			return nil, errors.Wrapf(array.ErrIndex,
				"get: %d indices descend past a scalar at depth %d", len(indices), depth)
		}
		if n := lenOf(cur); i < 0 || i >= n {
			return nil, errors.Wrapf(array.ErrIndex,
				"get: index %d out of range [0,%d) at depth %d", i, n, depth)
		}
		cur = majorSliceOf(cur, i)
	}
	return cur, nil
}

// Set returns a new array identical to a except that the position named
// by indices holds value. Each level copies only its own element slice;
// untouched substructure is shared with the original. Supplying no
// indices fails with ErrUpdate; descending into a scalar leaf fails with
// ErrIndex. A foreign sub-array on the update path is coerced into
// nested form first, so the update never mutates the foreign value.
func (a *Array) Set(value any, indices ...int) (*Array, error) {
	if len(indices) == 0 {
		return nil, errors.Wrap(array.ErrUpdate, "set: no indices")
	}
	return a.setRec(value, indices)
}

func (a *Array) setRec(value any, indices []int) (*Array, error) {
	i := indices[0]
	if i < 0 || i >= len(a.elems) {
		return nil, errors.Wrapf(array.ErrIndex,
			"set: index %d out of range [0,%d)", i, len(a.elems))
	}
	elems := make([]any, len(a.elems))
	copy(elems, a.elems)
	if len(indices) == 1 {
		elems[i] = value
		return fromElems(elems), nil
	}
	child, ok := elems[i].(*Array)
	if !ok {
		coerced, isArr := Coerce(elems[i]).(*Array)
		if !isArr {
			return nil, errors.Wrapf(array.ErrIndex,
				"set: %d surplus indices descend past a scalar", len(indices)-1)
		}
		child = coerced
	}
	updated, err := child.setRec(value, indices[1:])
	if err != nil {
		return nil, err
	}
	elems[i] = updated
	return fromElems(elems), nil
}
