package nested

import "github.com/ndvec/ndvec/internal/array"

// Broadcast expands a to target by wrapping it in new outer dimensions.
// The target must have at least as many dimensions as a's shape and a's
// shape must match its trailing dimensions elementwise; otherwise the
// call fails with ErrShape. Replication shares the original structure:
// every replica is the same value, wrapped from the dimension closest to
// a's own shape outward.
func (a *Array) Broadcast(target array.Shape) (*Array, error) {
	s := a.Shape()
	if !s.IsSuffixOf(target) {
		return nil, wrapShape("broadcast: shape %v does not match trailing dimensions of %v", s, target)
	}
	cur := a
	for i := len(target) - len(s) - 1; i >= 0; i-- {
		elems := make([]any, target[i])
		for j := range elems {
			elems[j] = cur
		}
		cur = fromElems(elems)
	}
	return cur, nil
}

// BroadcastLike broadcasts a to the shape of b.
func (a *Array) BroadcastLike(b any) (*Array, error) {
	return a.Broadcast(shapeOf(b))
}

// BroadcastCoerce coerces b to canonical nested form, then broadcasts it
// to a's shape. Scalars broadcast to a fresh zero-dimension wrap of a's
// full shape. A nil operand has nothing to replicate and fails with
// ErrShape.
func (a *Array) BroadcastCoerce(b any) (*Array, error) {
	v := Coerce(b)
	if v == nil {
		return nil, wrapShape("broadcast: nil operand")
	}
	arr, ok := v.(*Array)
	if !ok {
		// Scalar: replicate it across a's whole shape.
		shape := a.Shape()
		return FromFunc(shape, func([]int) any { return v }), nil
	}
	return arr.Broadcast(a.Shape())
}
