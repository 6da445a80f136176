package cpu

import (
	"math"

	"github.com/ndkit/ndkit/internal/ndarray"
)

// Unary elementwise operations. Domain violations (sqrt of a negative, log
// of zero) propagate as NaN/Inf per IEEE-754 rather than failing the call.

// Neg computes element-wise negation.
func (cpu *CPUBackend) Neg(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, func(v float64) float64 { return -v })
}

// Abs computes element-wise absolute value.
func (cpu *CPUBackend) Abs(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Abs)
}

// Sqrt computes element-wise square root.
func (cpu *CPUBackend) Sqrt(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Sqrt)
}

// Exp computes element-wise exponential.
func (cpu *CPUBackend) Exp(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Exp)
}

// Log computes the element-wise natural logarithm.
func (cpu *CPUBackend) Log(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Log)
}

// Sin computes element-wise sine.
func (cpu *CPUBackend) Sin(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Sin)
}

// Cos computes element-wise cosine.
func (cpu *CPUBackend) Cos(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Cos)
}

// Tan computes element-wise tangent.
func (cpu *CPUBackend) Tan(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Tan)
}

// Sinh computes element-wise hyperbolic sine.
func (cpu *CPUBackend) Sinh(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Sinh)
}

// Cosh computes element-wise hyperbolic cosine.
func (cpu *CPUBackend) Cosh(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Cosh)
}

// Tanh computes element-wise hyperbolic tangent.
func (cpu *CPUBackend) Tanh(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Tanh)
}

// Asin computes element-wise arcsine.
func (cpu *CPUBackend) Asin(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Asin)
}

// Acos computes element-wise arccosine.
func (cpu *CPUBackend) Acos(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Acos)
}

// Atan computes element-wise arctangent.
func (cpu *CPUBackend) Atan(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Atan)
}

// Asinh computes element-wise inverse hyperbolic sine.
func (cpu *CPUBackend) Asinh(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Asinh)
}

// Acosh computes element-wise inverse hyperbolic cosine.
func (cpu *CPUBackend) Acosh(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Acosh)
}

// Atanh computes element-wise inverse hyperbolic tangent.
func (cpu *CPUBackend) Atanh(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Atanh)
}

// Floor computes the element-wise floor.
func (cpu *CPUBackend) Floor(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Floor)
}

// Ceil computes the element-wise ceiling.
func (cpu *CPUBackend) Ceil(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Ceil)
}

// Round rounds element-wise to the nearest integer, half away from zero.
func (cpu *CPUBackend) Round(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, math.Round)
}

// Sign computes the element-wise sign: exactly -1, 0, or 1 for every finite
// input. Sign(NaN) is NaN.
func (cpu *CPUBackend) Sign(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.applyScalar(x, func(v float64) float64 {
		switch {
		case math.IsNaN(v):
			return math.NaN()
		case v > 0:
			return 1
		case v < 0:
			return -1
		default:
			return 0
		}
	})
}

// Clip limits every element to the interval [lo, hi].
func (cpu *CPUBackend) Clip(x *ndarray.Array, lo, hi float64) (*ndarray.Array, error) {
	return cpu.applyScalar(x, func(v float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	})
}
