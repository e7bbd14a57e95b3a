package nested

import "github.com/ndvec/ndvec/internal/array"

// Float64s linearizes the array into a contiguous numeric buffer in
// row-major recursive order. Rectangularity is assumed, not checked:
// ragged input produces undefined buffer contents, never an error.
func (a *Array) Float64s() []float64 {
	buf := make([]float64, a.NumElements())
	fillFloats(a, buf)
	return buf
}

func fillFloats(v any, buf []float64) {
	n := lenOf(v)
	if n == len(buf) && flatLevel(v) {
		for i := 0; i < n; i++ {
			buf[i], _ = array.Float64Of(majorSliceOf(v, i))
		}
		return
	}
	if n == 0 {
		return
	}
	// Equal contiguous chunks per major slice; assumes uniform shape.
	chunk := len(buf) / n
	for i := 0; i < n; i++ {
		fillFloats(majorSliceOf(v, i), buf[i*chunk:(i+1)*chunk])
	}
}

// Values linearizes the array into a generic-object buffer with the same
// layout and the same unchecked assumptions as Float64s.
func (a *Array) Values() []any {
	buf := make([]any, a.NumElements())
	fillValues(a, buf)
	return buf
}

func fillValues(v any, buf []any) {
	n := lenOf(v)
	if n == len(buf) && flatLevel(v) {
		for i := 0; i < n; i++ {
			buf[i] = majorSliceOf(v, i)
		}
		return
	}
	if n == 0 {
		return
	}
	chunk := len(buf) / n
	for i := 0; i < n; i++ {
		fillValues(majorSliceOf(v, i), buf[i*chunk:(i+1)*chunk])
	}
}

// flatLevel reports whether every top-level element of v is a scalar
// leaf, so leaves can be copied without further recursion. Interior
// dimensions contributed by foreign leaves force the chunked path.
func flatLevel(v any) bool {
	if a, ok := v.(*Array); ok {
		for _, e := range a.elems {
			if dimsOf(e) != 0 {
				return false
			}
		}
		return true
	}
	if arr, ok := v.(array.Array); ok {
		return arr.Dims() == 1
	}
	return false
}
