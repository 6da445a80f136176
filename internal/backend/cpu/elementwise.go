package cpu

import (
	"math"

	"github.com/ndkit/ndkit/internal/ndarray"
)

// Binary elementwise operations. Operand shapes are combined under NumPy
// broadcasting rules; the result owns a fresh buffer of the broadcast
// shape. Floating-point domain issues (zero divisors, overflow) propagate
// as NaN/Inf per IEEE-754 instead of failing the call.

// Add computes element-wise a + b.
func (cpu *CPUBackend) Add(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.apply2(a, b, func(x, y float64) float64 { return x + y })
}

// Sub computes element-wise a - b.
func (cpu *CPUBackend) Sub(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.apply2(a, b, func(x, y float64) float64 { return x - y })
}

// Mul computes element-wise a * b.
func (cpu *CPUBackend) Mul(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.apply2(a, b, func(x, y float64) float64 { return x * y })
}

// Div computes element-wise a / b. A zero divisor yields Inf or NaN at that
// element, never an error.
func (cpu *CPUBackend) Div(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.apply2(a, b, func(x, y float64) float64 { return x / y })
}

// Pow computes element-wise a raised to the power b.
func (cpu *CPUBackend) Pow(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.apply2(a, b, math.Pow)
}

// Mod computes element-wise floor-mod: a - floor(a/b)*b. The result takes
// the sign of the divisor. A zero divisor yields NaN at that element.
func (cpu *CPUBackend) Mod(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.apply2(a, b, func(x, y float64) float64 {
		return x - math.Floor(x/y)*y
	})
}

// Fmod computes element-wise truncated mod. The result takes the sign of
// the dividend. A zero divisor yields NaN at that element.
func (cpu *CPUBackend) Fmod(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.apply2(a, b, math.Mod)
}

// Equal compares element-wise, producing 1 where a == b and 0 elsewhere.
func (cpu *CPUBackend) Equal(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.apply2(a, b, func(x, y float64) float64 { return boolToFloat(x == y) })
}

// Greater compares element-wise, producing 1 where a > b and 0 elsewhere.
func (cpu *CPUBackend) Greater(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.apply2(a, b, func(x, y float64) float64 { return boolToFloat(x > y) })
}

// Less compares element-wise, producing 1 where a < b and 0 elsewhere.
func (cpu *CPUBackend) Less(a, b *ndarray.Array) (*ndarray.Array, error) {
	return cpu.apply2(a, b, func(x, y float64) float64 { return boolToFloat(x < y) })
}

// Where selects x where cond != 0 and y elsewhere. All three operands are
// broadcast to a common shape.
func (cpu *CPUBackend) Where(cond, x, y *ndarray.Array) (*ndarray.Array, error) {
	outShape, _, err := ndarray.BroadcastShapes(cond.Shape(), x.Shape())
	if err != nil {
		return nil, err
	}
	outShape, _, err = ndarray.BroadcastShapes(outShape, y.Shape())
	if err != nil {
		return nil, err
	}

	result, err := ndarray.New(outShape)
	if err != nil {
		return nil, err
	}

	dst := result.Data()
	outStrides := outShape.ComputeStrides()
	condStrides := broadcastStrides(cond.Shape(), outShape)
	xStrides := broadcastStrides(x.Shape(), outShape)
	yStrides := broadcastStrides(y.Shape(), outShape)
	condData, xData, yData := cond.Data(), x.Data(), y.Data()
	for i := range dst {
		if condData[mapIndex(i, outStrides, condStrides)] != 0 {
			dst[i] = xData[mapIndex(i, outStrides, xStrides)]
		} else {
			dst[i] = yData[mapIndex(i, outStrides, yStrides)]
		}
	}
	return result, nil
}

// Scalar fast paths: the generic broadcast machinery handles these too, but
// the common array-op-scalar case avoids the index mapping entirely.

// AddScalar adds a scalar to every element.
func (cpu *CPUBackend) AddScalar(x *ndarray.Array, scalar float64) (*ndarray.Array, error) {
	return cpu.applyScalar(x, func(v float64) float64 { return v + scalar })
}

// SubScalar subtracts a scalar from every element.
func (cpu *CPUBackend) SubScalar(x *ndarray.Array, scalar float64) (*ndarray.Array, error) {
	return cpu.applyScalar(x, func(v float64) float64 { return v - scalar })
}

// MulScalar multiplies every element by a scalar.
func (cpu *CPUBackend) MulScalar(x *ndarray.Array, scalar float64) (*ndarray.Array, error) {
	return cpu.applyScalar(x, func(v float64) float64 { return v * scalar })
}

// DivScalar divides every element by a scalar.
func (cpu *CPUBackend) DivScalar(x *ndarray.Array, scalar float64) (*ndarray.Array, error) {
	return cpu.applyScalar(x, func(v float64) float64 { return v / scalar })
}

// apply2 dispatches a binary scalar function over two arrays, materializing
// broadcast reads through stride-0 index mapping when shapes differ.
func (cpu *CPUBackend) apply2(a, b *ndarray.Array, op func(x, y float64) float64) (*ndarray.Array, error) {
	outShape, needsBroadcast, err := ndarray.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, err
	}

	result, err := ndarray.New(outShape)
	if err != nil {
		return nil, err
	}

	dst := result.Data()
	aData, bData := a.Data(), b.Data()

	if !needsBroadcast {
		// Equal element counts in identical row-major order.
		for i := range dst {
			dst[i] = op(aData[i], bData[i])
		}
		return result, nil
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)
	for i := range dst {
		dst[i] = op(aData[mapIndex(i, outStrides, aStrides)], bData[mapIndex(i, outStrides, bStrides)])
	}
	return result, nil
}

func (cpu *CPUBackend) applyScalar(x *ndarray.Array, op func(v float64) float64) (*ndarray.Array, error) {
	result, err := ndarray.New(x.Shape())
	if err != nil {
		return nil, err
	}
	src := x.Data()
	dst := result.Data()
	for i := range dst {
		dst[i] = op(src[i])
	}
	return result, nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
