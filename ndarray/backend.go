// Copyright 2025 NDKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

// Backend defines the interface a compute backend must implement. The
// engine specifies what must be computed; a backend decides how.
//
// Implementations:
//   - backend/cpu: pure Go, eager, allocate-and-copy
//
// Every operation either fully succeeds and returns a valid Array or fails
// with one of the exported error kinds; there are no partial results. The
// one exception is floating-point domain issues inside elementwise math,
// which propagate as NaN/Inf per IEEE-754 rather than erroring.
type Backend interface {
	// Name identifies the backend.
	Name() string

	// Element-wise binary operations under NumPy broadcasting.
	Add(a, b *Array) (*Array, error)
	Sub(a, b *Array) (*Array, error)
	Mul(a, b *Array) (*Array, error)
	Div(a, b *Array) (*Array, error)
	Pow(a, b *Array) (*Array, error)
	Mod(a, b *Array) (*Array, error)  // Floor-mod, sign of divisor.
	Fmod(a, b *Array) (*Array, error) // Truncated mod, sign of dividend.

	// Element-wise comparisons producing 1/0 masks.
	Equal(a, b *Array) (*Array, error)
	Greater(a, b *Array) (*Array, error)
	Less(a, b *Array) (*Array, error)

	// Where selects x where cond != 0, else y, under mutual broadcasting.
	Where(cond, x, y *Array) (*Array, error)

	// Scalar fast paths (element-wise with a scalar operand).
	AddScalar(x *Array, scalar float64) (*Array, error)
	SubScalar(x *Array, scalar float64) (*Array, error)
	MulScalar(x *Array, scalar float64) (*Array, error)
	DivScalar(x *Array, scalar float64) (*Array, error)

	// Element-wise unary operations.
	Neg(x *Array) (*Array, error)
	Abs(x *Array) (*Array, error)
	Sqrt(x *Array) (*Array, error)
	Exp(x *Array) (*Array, error)
	Log(x *Array) (*Array, error)
	Sin(x *Array) (*Array, error)
	Cos(x *Array) (*Array, error)
	Tan(x *Array) (*Array, error)
	Sinh(x *Array) (*Array, error)
	Cosh(x *Array) (*Array, error)
	Tanh(x *Array) (*Array, error)
	Asin(x *Array) (*Array, error)
	Acos(x *Array) (*Array, error)
	Atan(x *Array) (*Array, error)
	Asinh(x *Array) (*Array, error)
	Acosh(x *Array) (*Array, error)
	Atanh(x *Array) (*Array, error)
	Floor(x *Array) (*Array, error)
	Ceil(x *Array) (*Array, error)
	Round(x *Array) (*Array, error)
	Sign(x *Array) (*Array, error)
	Clip(x *Array, lo, hi float64) (*Array, error)

	// Whole-array reductions.
	Sum(x *Array) float64
	Prod(x *Array) float64
	Mean(x *Array) float64
	Var(x *Array) float64 // Population (divide-by-N) variance.
	Std(x *Array) float64
	Min(x *Array) float64
	Max(x *Array) float64
	Argmin(x *Array) int // Flat index; ties resolve to the lowest.
	Argmax(x *Array) int

	// Axis reductions: the axis is removed, and a rank-1 input reduces to
	// a length-1 array, never rank-0.
	SumAxis(x *Array, axis int) (*Array, error)
	ProdAxis(x *Array, axis int) (*Array, error)
	MeanAxis(x *Array, axis int) (*Array, error)
	VarAxis(x *Array, axis int) (*Array, error)
	StdAxis(x *Array, axis int) (*Array, error)
	MinAxis(x *Array, axis int) (*Array, error)
	MaxAxis(x *Array, axis int) (*Array, error)
	ArgminAxis(x *Array, axis int) (*Array, error) // Positions within the axis.
	ArgmaxAxis(x *Array, axis int) (*Array, error)

	// Broadcasting.
	BroadcastTo(x *Array, shape Shape) (*Array, error)

	// Structural manipulation.
	Reshape(x *Array, newShape Shape) (*Array, error)
	Flatten(x *Array) (*Array, error)
	Squeeze(x *Array) (*Array, error)
	ExpandDims(x *Array, axis int) (*Array, error)
	Transpose(x *Array, perm ...int) (*Array, error)
	Concat(arrays []*Array, axis int) (*Array, error)
	Stack(arrays []*Array, axis int) (*Array, error)
	Split(x *Array, sections, axis int) ([]*Array, error)
	SplitAt(x *Array, indices []int, axis int) ([]*Array, error)

	// Linear algebra.
	Dot(a, b *Array) (*Array, error)
}
