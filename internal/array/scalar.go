package array

// Float64Of converts a scalar value of any Go numeric kind to float64.
// The second return is false for non-numeric values.
func Float64Of(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// IsScalarValue reports whether v is treated as an opaque scalar leaf:
// anything that is not an Array. Numeric leaves are the common case but
// arbitrary objects are allowed; only numeric operations reject them.
func IsScalarValue(v any) bool {
	if v == nil {
		return true
	}
	_, isArr := v.(Array)
	return !isArr
}

// ScalarsEqual compares two scalar leaves. Numeric values compare by
// value across mixed numeric types; everything else compares with ==.
func ScalarsEqual(a, b any) bool {
	fa, aok := Float64Of(a)
	fb, bok := Float64Of(b)
	if aok && bok {
		return fa == fb
	}
	if aok != bok {
		return false
	}
	return a == b
}
