package nested

import "github.com/ndvec/ndvec/internal/array"

// Equals reports structural numeric equality with b, which may be any
// backend. The comparison short-circuits on the first mismatch: false
// when b has dimensionality <= 0 or a different axis-0 length; 1-D
// arrays compare element-by-element with mixed-numeric-type equality;
// higher dimensions compare major slices pairwise and recursively.
func (a *Array) Equals(b any) bool {
	bd := dimsOf(b)
	if bd <= 0 {
		return false
	}
	if lenOf(b) != len(a.elems) {
		return false
	}
	if a.Dims() == 1 {
		if bd != 1 {
			return false
		}
		for i, e := range a.elems {
			if !array.ScalarsEqual(e, majorSliceOf(b, i)) {
				return false
			}
		}
		return true
	}
	for i, e := range a.elems {
		sub, ok := Coerce(e).(*Array)
		if !ok {
			return false
		}
		if !sub.Equals(majorSliceOf(b, i)) {
			return false
		}
	}
	return true
}
