package nested

import (
	"github.com/pkg/errors"

	"github.com/ndvec/ndvec/internal/array"
)

// isCanonical reports whether x is a scalar or a nested array whose
// elements are all canonical and share the shape of the first element.
// Foreign array leaves count as canonical; their shape is delegated.
func isCanonical(x any) bool {
	a, ok := x.(*Array)
	if !ok {
		_, foreign := x.(array.Array)
		return foreign || array.IsScalarValue(x)
	}
	if len(a.elems) == 0 {
		return true
	}
	first := shapeOf(a.elems[0])
	for _, e := range a.elems {
		if !isCanonical(e) || !shapeOf(e).Equal(first) {
			return false
		}
	}
	return true
}

// ValidateShape returns the array's shape after confirming every nesting
// level is uniform. Ragged structure fails with ErrValidation.
func (a *Array) ValidateShape() (array.Shape, error) {
	if len(a.elems) == 0 {
		return array.Shape{0}, nil
	}
	first, err := validateElem(a.elems[0])
	if err != nil {
		return nil, err
	}
	for i, e := range a.elems[1:] {
		s, err := validateElem(e)
		if err != nil {
			return nil, err
		}
		if !s.Equal(first) {
			return nil, errors.Wrapf(array.ErrValidation,
				"element %d has shape %v, want %v", i+1, s, first)
		}
	}
	return append(array.Shape{len(a.elems)}, first...), nil
}

func validateElem(v any) (array.Shape, error) {
	switch e := v.(type) {
	case *Array:
		return e.ValidateShape()
	case array.Array:
		return e.Shape(), nil
	default:
		return nil, nil
	}
}
