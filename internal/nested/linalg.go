package nested

import (
	"math"

	"github.com/ndvec/ndvec/internal/array"
)

// Dot computes the inner product of two 1-D operands of equal length
// with a tight numeric loop. A 0-D right operand degenerates to scaling.
// Mismatched lengths fail with ErrShape.
func (a *Array) Dot(b any) (any, error) {
	bd := dimsOf(b)
	if bd == 0 {
		return a.Scale(scalarOf(b))
	}
	if a.Dims() != 1 || bd != 1 {
		return nil, wrapShape("dot: want 1-D operands, got %d-D and %d-D", a.Dims(), bd)
	}
	if lenOf(b) != len(a.elems) {
		return nil, wrapShape("dot: length %d vs %d", len(a.elems), lenOf(b))
	}
	bs := floatsOf(b)
	sum := 0.0
	for i, e := range a.elems {
		x, _ := array.Float64Of(e)
		sum += x * bs[i]
	}
	return sum, nil
}

func floatsOf(v any) []float64 {
	out := make([]float64, 0, numElementsOf(v))
	for leaf := range elemSeqOf(v) {
		x, _ := array.Float64Of(leaf)
		out = append(out, x)
	}
	return out
}

// NormSquared returns the sum of squared elements of a 1-D array.
func (a *Array) NormSquared() (float64, error) {
	if a.Dims() != 1 {
		return 0, wrapShape("norm: want 1-D array, got %d-D", a.Dims())
	}
	sum := 0.0
	for _, e := range a.elems {
		x, _ := array.Float64Of(e)
		sum += x * x
	}
	return sum, nil
}

// Norm returns the Euclidean norm of a 1-D array.
func (a *Array) Norm() (float64, error) {
	sq, err := a.NormSquared()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sq), nil
}

// Normalise divides a 1-D array by its Euclidean norm. The result for a
// zero vector is not an error: division by zero follows IEEE semantics
// and yields NaN elements.
func (a *Array) Normalise() (*Array, error) {
	n, err := a.Norm()
	if err != nil {
		return nil, err
	}
	return a.Map(float1("normalise", func(x float64) float64 { return x / n })), nil
}

// Scale multiplies every element by the scalar k.
func (a *Array) Scale(k any) (*Array, error) {
	f, ok := array.Float64Of(scalarOf(k))
	if !ok {
		return nil, wrapShape("scale: non-numeric factor %T", k)
	}
	return a.Map(float1("scale", func(x float64) float64 { return x * f })), nil
}

// PreScale multiplies every element by the scalar k on the left. For
// float64 leaves this is Scale; the distinction matters only for
// non-commutative leaf types, which the numeric path does not carry.
func (a *Array) PreScale(k any) (*Array, error) {
	return a.Scale(k)
}

// MatMul dispatches matrix multiplication on the combined
// dimensionality of the operands:
//
//	m 0-D or b 0-D        -> scaling
//	1-D x 2-D             -> row vector times matrix (per-column dots)
//	2-D x 1-D             -> per-row dot products
//	2-D x 2-D             -> standard triple-loop matrix product
//	anything else         -> element-wise product on aligned operands
//
// The fallback broadcasts the operands to a common shape first, so
// non-alignable combinations still fail with ErrShape.
func (a *Array) MatMul(b any) (any, error) {
	bd := dimsOf(b)
	if bd == 0 {
		return a.Scale(scalarOf(b))
	}
	ad := a.Dims()
	switch {
	case ad == 1 && bd == 2:
		return vecMat(a, b)
	case ad == 2 && bd == 1:
		return matVec(a, b)
	case ad == 2 && bd == 2:
		return matMat(a, b)
	default:
		out, err := a.ElemMul(b)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// vecMat computes v*M for a row vector v: one dot product per column.
func vecMat(v *Array, m any) (*Array, error) {
	ms := shapeOf(m)
	if len(v.elems) != ms[0] {
		return nil, wrapShape("matmul: vector length %d vs %d rows", len(v.elems), ms[0])
	}
	vf := floatsOf(v)
	rows := make([][]float64, ms[0])
	for i := range rows {
		rows[i] = floatsOf(majorSliceOf(m, i))
	}
	elems := make([]any, ms[1])
	for j := 0; j < ms[1]; j++ {
		sum := 0.0
		for i, row := range rows {
			sum += vf[i] * row[j]
		}
		elems[j] = sum
	}
	return fromElems(elems), nil
}

// matVec computes M*v: one dot product per row.
func matVec(m *Array, v any) (*Array, error) {
	vf := floatsOf(v)
	elems := make([]any, len(m.elems))
	for i, row := range m.elems {
		rf := floatsOf(row)
		if len(rf) != len(vf) {
			return nil, wrapShape("matmul: row length %d vs vector length %d", len(rf), len(vf))
		}
		sum := 0.0
		for k := range rf {
			sum += rf[k] * vf[k]
		}
		elems[i] = sum
	}
	return fromElems(elems), nil
}

// matMat is the standard O(rows*cols*inner) matrix product.
func matMat(a *Array, b any) (any, error) {
	bs := shapeOf(b)
	if a.DimCount(1) != bs[0] {
		return nil, wrapShape("matmul: inner dimensions %d vs %d", a.DimCount(1), bs[0])
	}
	inner, cols := bs[0], bs[1]
	brows := make([][]float64, inner)
	for k := range brows {
		brows[k] = floatsOf(majorSliceOf(b, k))
	}
	rows := make([]any, len(a.elems))
	for i, row := range a.elems {
		rf := floatsOf(row)
		out := make([]any, cols)
		for j := 0; j < cols; j++ {
			sum := 0.0
			for k := 0; k < inner; k++ {
				sum += rf[k] * brows[k][j]
			}
			out[j] = sum
		}
		rows[i] = fromElems(out)
	}
	return fromElems(rows), nil
}

// Add returns the element-wise sum after broadcasting the operands to a
// common shape.
func (a *Array) Add(b any) (*Array, error) {
	lhs, rhs, err := a.alignWith(b)
	if err != nil {
		return nil, err
	}
	return lhs.MapWith(float2("add", func(x, y float64) float64 { return x + y }), rhs), nil
}

// Sub returns the element-wise difference after broadcasting the
// operands to a common shape.
func (a *Array) Sub(b any) (*Array, error) {
	lhs, rhs, err := a.alignWith(b)
	if err != nil {
		return nil, err
	}
	return lhs.MapWith(float2("sub", func(x, y float64) float64 { return x - y }), rhs), nil
}

// ElemMul returns the element-wise (Hadamard) product after
// broadcasting the operands to a common shape.
func (a *Array) ElemMul(b any) (*Array, error) {
	lhs, rhs, err := a.alignWith(b)
	if err != nil {
		return nil, err
	}
	return lhs.MapWith(float2("mul", func(x, y float64) float64 { return x * y }), rhs), nil
}

// Square returns the element-wise product of a with itself.
func (a *Array) Square() *Array {
	return a.MapWith(float2("square", func(x, y float64) float64 { return x * y }), a)
}

// alignWith broadcasts a and b to a common shape: whichever operand has
// fewer dimensions is expanded towards the other.
func (a *Array) alignWith(b any) (*Array, any, error) {
	v := Coerce(b)
	arr, ok := v.(*Array)
	if !ok {
		rhs, err := a.BroadcastCoerce(v)
		if err != nil {
			return nil, nil, err
		}
		return a, rhs, nil
	}
	as, bs := a.Shape(), arr.Shape()
	switch {
	case as.Equal(bs):
		return a, arr, nil
	case len(as) < len(bs):
		lhs, err := a.Broadcast(bs)
		if err != nil {
			return nil, nil, err
		}
		return lhs, arr, nil
	default:
		rhs, err := arr.Broadcast(as)
		if err != nil {
			return nil, nil, err
		}
		return a, rhs, nil
	}
}

// SwapRows returns a new matrix with rows i and j exchanged. The
// untouched rows are shared with the original.
func (a *Array) SwapRows(i, j int) (*Array, error) {
	ri, err := a.Get(i)
	if err != nil {
		return nil, err
	}
	rj, err := a.Get(j)
	if err != nil {
		return nil, err
	}
	out, err := a.Set(rj, i)
	if err != nil {
		return nil, err
	}
	return out.Set(ri, j)
}

// MultiplyRow returns a new matrix with row i scaled by factor.
func (a *Array) MultiplyRow(i int, factor float64) (*Array, error) {
	row, err := a.Get(i)
	if err != nil {
		return nil, err
	}
	r, ok := Coerce(row).(*Array)
	if !ok {
		return nil, wrapShape("multiply-row: row %d is a scalar", i)
	}
	scaled, err := r.Scale(factor)
	if err != nil {
		return nil, err
	}
	return a.Set(scaled, i)
}

// AddRow returns a new matrix with factor*row(j) added to row(i).
func (a *Array) AddRow(i, j int, factor float64) (*Array, error) {
	ri, err := a.Get(i)
	if err != nil {
		return nil, err
	}
	rj, err := a.Get(j)
	if err != nil {
		return nil, err
	}
	target, ok := Coerce(ri).(*Array)
	if !ok {
		return nil, wrapShape("add-row: row %d is a scalar", i)
	}
	source, ok := Coerce(rj).(*Array)
	if !ok {
		return nil, wrapShape("add-row: row %d is a scalar", j)
	}
	scaled, err := source.Scale(factor)
	if err != nil {
		return nil, err
	}
	sum, err := target.Add(scaled)
	if err != nil {
		return nil, err
	}
	return a.Set(sum, i)
}
