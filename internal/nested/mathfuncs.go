package nested

import (
	"math"

	"github.com/pkg/errors"
)

// UnaryFuncs is the fixed menu of element-wise scalar math functions.
// Each entry is consumed by Apply/ApplyInPlace, which map the scalar
// function over every leaf; the named methods below instantiate the
// common entries directly.
var UnaryFuncs = map[string]func(float64) float64{
	"abs":   math.Abs,
	"ceil":  math.Ceil,
	"cos":   math.Cos,
	"exp":   math.Exp,
	"floor": math.Floor,
	"log":   math.Log,
	"neg":   func(x float64) float64 { return -x },
	"recip": func(x float64) float64 { return 1 / x },
	"round": math.Round,
	"sign": func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	},
	"sin":  math.Sin,
	"sqrt": math.Sqrt,
	"tan":  math.Tan,
	"tanh": math.Tanh,
}

// Apply maps the named unary function from UnaryFuncs over every leaf,
// returning a new array.
func (a *Array) Apply(name string) (*Array, error) {
	f, ok := UnaryFuncs[name]
	if !ok {
		return nil, errors.Errorf("nested: unknown unary function %q", name)
	}
	return a.Map(float1(name, f)), nil
}

// ApplyInPlace is Apply writing through to mutable foreign leaves, with
// MapInPlace's rebuild semantics.
func (a *Array) ApplyInPlace(name string) (*Array, error) {
	f, ok := UnaryFuncs[name]
	if !ok {
		return nil, errors.Errorf("nested: unknown unary function %q", name)
	}
	return a.MapInPlace(float1(name, f)), nil
}

// Exp returns e**x per element.
func (a *Array) Exp() *Array { return a.Map(float1("exp", math.Exp)) }

// Log returns the natural logarithm per element.
func (a *Array) Log() *Array { return a.Map(float1("log", math.Log)) }

// Sqrt returns the square root per element.
func (a *Array) Sqrt() *Array { return a.Map(float1("sqrt", math.Sqrt)) }

// Sin returns the sine per element.
func (a *Array) Sin() *Array { return a.Map(float1("sin", math.Sin)) }

// Cos returns the cosine per element.
func (a *Array) Cos() *Array { return a.Map(float1("cos", math.Cos)) }

// Tanh returns the hyperbolic tangent per element.
func (a *Array) Tanh() *Array { return a.Map(float1("tanh", math.Tanh)) }

// Abs returns the absolute value per element.
func (a *Array) Abs() *Array { return a.Map(float1("abs", math.Abs)) }

// Neg returns the negation per element.
func (a *Array) Neg() *Array { return a.Map(float1("neg", UnaryFuncs["neg"])) }
