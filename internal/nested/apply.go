package nested

import (
	"fmt"
	"iter"

	"github.com/ndvec/ndvec/internal/array"
)

// ElemSeq returns the flattened scalar leaves in row-major order: a 1-D
// array is its own element sequence, a higher-dimensional array chains
// the sequences of its major slices. The sequence is restartable; it
// holds no consumed state.
func (a *Array) ElemSeq() iter.Seq[any] {
	return func(yield func(any) bool) {
		walkLeaves(a, yield)
	}
}

func walkLeaves(v any, yield func(any) bool) bool {
	switch e := v.(type) {
	case *Array:
		for _, el := range e.elems {
			if !walkLeaves(el, yield) {
				return false
			}
		}
		return true
	case array.Array:
		for leaf := range e.ElemSeq() {
			if !yield(leaf) {
				return false
			}
		}
		return true
	default:
		return yield(e)
	}
}

func elemSeqOf(v any) iter.Seq[any] {
	switch e := v.(type) {
	case *Array:
		return e.ElemSeq()
	case array.Array:
		return e.ElemSeq()
	default:
		return func(yield func(any) bool) { yield(e) }
	}
}

// mapValues is the recursive primitive underlying nearly all arithmetic:
// it applies f across the matching structure of the operands, one
// dimension per level.
//
// The first operand drives the recursion. At dimensionality 0 the scalar
// values are combined directly; at dimensionality 1 the operands'
// flattened element sequences are consumed pairwise; above that the
// major-slice sequences are combined recursively. Operands are accessed
// through capabilities only, never assumed to be nested arrays.
// Shape agreement is assumed, not checked.
func mapValues(f func(vals []any) any, ops []any) any {
	switch dimsOf(ops[0]) {
	case 0:
		vals := make([]any, len(ops))
		for i, op := range ops {
			vals[i] = scalarOf(op)
		}
		return f(vals)
	case 1:
		pulls := make([]func() (any, bool), len(ops)-1)
		for i, op := range ops[1:] {
			next, stop := iter.Pull(elemSeqOf(op))
			defer stop()
			pulls[i] = next
		}
		elems := make([]any, 0, lenOf(ops[0]))
		for leaf := range elemSeqOf(ops[0]) {
			vals := make([]any, len(ops))
			vals[0] = leaf
			for i, next := range pulls {
				vals[i+1], _ = next()
			}
			elems = append(elems, f(vals))
		}
		return fromElems(elems)
	default:
		n := lenOf(ops[0])
		elems := make([]any, n)
		for i := 0; i < n; i++ {
			sub := make([]any, len(ops))
			for j, op := range ops {
				sub[j] = majorSliceOf(op, i)
			}
			elems[i] = mapValues(f, sub)
		}
		return fromElems(elems)
	}
}

// Map returns a new array with f applied to every scalar leaf.
func (a *Array) Map(f func(v any) any) *Array {
	return mapValues(func(vals []any) any { return f(vals[0]) }, []any{a}).(*Array)
}

// MapWith applies f across the scalar leaves of a and the additional
// operands, which must share a's shape (unchecked; mismatched operands
// produce undefined results). Operands may be any backend.
func (a *Array) MapWith(f func(vals ...any) any, others ...any) *Array {
	ops := append([]any{a}, others...)
	return mapValues(func(vals []any) any { return f(vals...) }, ops).(*Array)
}

// MapInPlace applies f to every scalar leaf, writing through to leaves
// held in mutable foreign arrays. The nested structure itself cannot be
// mutated, so it is rebuilt around the updated leaves; the returned
// array is the result, and mutation is observable only inside mutable
// foreign leaves reachable from a.
func (a *Array) MapInPlace(f func(v any) any) *Array {
	return mapLeavesInPlace(a, f).(*Array)
}

func mapLeavesInPlace(v any, f func(v any) any) any {
	switch e := v.(type) {
	case *Array:
		elems := make([]any, len(e.elems))
		for i, el := range e.elems {
			elems[i] = mapLeavesInPlace(el, f)
		}
		return fromElems(elems)
	case array.Mutable:
		mutateLeaves(e, f)
		return e
	case array.Array:
		return mapLeavesInPlace(Coerce(e), f)
	default:
		return f(e)
	}
}

// mutateLeaves rewrites every element of a mutable foreign array through
// its positional capabilities.
func mutateLeaves(m array.Mutable, f func(v any) any) {
	shape := m.Shape()
	if len(shape) == 0 {
		m.SetAt(f(m.Item()))
		return
	}
	coords := make([]int, len(shape))
	for {
		m.SetAt(f(m.At(coords...)), coords...)
		axis := len(coords) - 1
		for axis >= 0 {
			coords[axis]++
			if coords[axis] < shape[axis] {
				break
			}
			coords[axis] = 0
			axis--
		}
		if axis < 0 {
			return
		}
	}
}

// MapIndexed is Map with f additionally receiving the full coordinate
// path of each leaf, built by prefixing the axis index at every level of
// the descent. The coords slice is reused between calls; f must copy it
// to retain it.
func (a *Array) MapIndexed(f func(coords []int, v any) any) *Array {
	return mapIndexedValue(a, make([]int, 0, a.Dims()), f).(*Array)
}

func mapIndexedValue(v any, prefix []int, f func(coords []int, v any) any) any {
	switch e := v.(type) {
	case *Array:
		elems := make([]any, len(e.elems))
		for i, el := range e.elems {
			elems[i] = mapIndexedValue(el, append(prefix, i), f)
		}
		return fromElems(elems)
	case array.Array:
		return mapIndexedValue(Coerce(e), prefix, f)
	default:
		return f(prefix, e)
	}
}

// MapIndexedInPlace is MapIndexed writing through to mutable foreign
// leaves, with the same rebuild semantics as MapInPlace.
func (a *Array) MapIndexedInPlace(f func(coords []int, v any) any) *Array {
	return mapIndexedInPlaceValue(a, make([]int, 0, a.Dims()), f).(*Array)
}

func mapIndexedInPlaceValue(v any, prefix []int, f func(coords []int, v any) any) any {
	switch e := v.(type) {
	case *Array:
		elems := make([]any, len(e.elems))
		for i, el := range e.elems {
			elems[i] = mapIndexedInPlaceValue(el, append(prefix, i), f)
		}
		return fromElems(elems)
	case array.Mutable:
		shape := e.Shape()
		if len(shape) == 0 {
			e.SetAt(f(prefix, e.Item()))
			return e
		}
		coords := make([]int, len(shape))
		for {
			full := append(prefix, coords...)
			e.SetAt(f(full, e.At(coords...)), coords...)
			axis := len(coords) - 1
			for axis >= 0 {
				coords[axis]++
				if coords[axis] < shape[axis] {
					break
				}
				coords[axis] = 0
				axis--
			}
			if axis < 0 {
				return e
			}
		}
	case array.Array:
		return mapIndexedInPlaceValue(Coerce(e), prefix, f)
	default:
		return f(prefix, e)
	}
}

// Reduce left-folds f over the flattened scalar sequence. With an init
// value the fold starts there; without one the first leaf seeds the
// accumulator and an empty array reduces to nil.
func (a *Array) Reduce(f func(acc, v any) any, init ...any) any {
	var acc any
	seeded := false
	if len(init) > 0 {
		acc = init[0]
		seeded = true
	}
	for leaf := range a.ElemSeq() {
		if !seeded {
			acc = leaf
			seeded = true
			continue
		}
		acc = f(acc, leaf)
	}
	return acc
}

// float1 adapts a float64 function to an any-valued leaf function,
// rejecting non-numeric leaves.
func float1(name string, f func(float64) float64) func(v any) any {
	return func(v any) any {
		x, ok := array.Float64Of(v)
		if !ok {
			panic(fmt.Sprintf("nested: %s on non-numeric leaf %T", name, v))
		}
		return f(x)
	}
}

// float2 adapts a binary float64 function to a leaf-pair function.
func float2(name string, f func(a, b float64) float64) func(vals ...any) any {
	return func(vals ...any) any {
		x, xok := array.Float64Of(vals[0])
		y, yok := array.Float64Of(vals[1])
		if !xok || !yok {
			panic(fmt.Sprintf("nested: %s on non-numeric leaves %T, %T", name, vals[0], vals[1]))
		}
		return f(x, y)
	}
}
