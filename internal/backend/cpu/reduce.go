package cpu

import (
	"math"

	"github.com/pkg/errors"

	"github.com/ndkit/ndkit/internal/ndarray"
)

// Whole-array reductions fold the entire buffer to a single scalar. Arrays
// are never empty (every shape dimension is >= 1), so these cannot fail.

// Sum returns the sum of all elements.
func (cpu *CPUBackend) Sum(x *ndarray.Array) float64 {
	var sum float64
	for _, v := range x.Data() {
		sum += v
	}
	return sum
}

// Prod returns the product of all elements.
func (cpu *CPUBackend) Prod(x *ndarray.Array) float64 {
	prod := 1.0
	for _, v := range x.Data() {
		prod *= v
	}
	return prod
}

// Mean returns the arithmetic mean of all elements.
func (cpu *CPUBackend) Mean(x *ndarray.Array) float64 {
	return cpu.Sum(x) / float64(x.Size())
}

// Var returns the population variance (divide-by-N) of all elements.
func (cpu *CPUBackend) Var(x *ndarray.Array) float64 {
	data := x.Data()
	mean := cpu.Mean(x)
	var acc float64
	for _, v := range data {
		d := v - mean
		acc += d * d
	}
	return acc / float64(len(data))
}

// Std returns the population standard deviation of all elements.
func (cpu *CPUBackend) Std(x *ndarray.Array) float64 {
	return math.Sqrt(cpu.Var(x))
}

// Min returns the smallest element.
func (cpu *CPUBackend) Min(x *ndarray.Array) float64 {
	data := x.Data()
	m := data[0]
	for _, v := range data[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest element.
func (cpu *CPUBackend) Max(x *ndarray.Array) float64 {
	data := x.Data()
	m := data[0]
	for _, v := range data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Argmin returns the flat index of the smallest element. Ties resolve to
// the lowest flat index.
func (cpu *CPUBackend) Argmin(x *ndarray.Array) int {
	data := x.Data()
	idx := 0
	for i, v := range data {
		if v < data[idx] {
			idx = i
		}
	}
	return idx
}

// Argmax returns the flat index of the largest element. Ties resolve to
// the lowest flat index.
func (cpu *CPUBackend) Argmax(x *ndarray.Array) int {
	data := x.Data()
	idx := 0
	for i, v := range data {
		if v > data[idx] {
			idx = i
		}
	}
	return idx
}

// Axis reductions remove the given axis from the shape and fold over its
// full extent for every remaining coordinate. The result rank is input
// rank - 1, except that reducing a rank-1 array yields a length-1 array,
// never a rank-0 value. Total work is O(product(shape)) for any axis.

// SumAxis sums along the given axis.
func (cpu *CPUBackend) SumAxis(x *ndarray.Array, axis int) (*ndarray.Array, error) {
	return cpu.reduceAxis(x, axis, foldSum)
}

// ProdAxis multiplies along the given axis.
func (cpu *CPUBackend) ProdAxis(x *ndarray.Array, axis int) (*ndarray.Array, error) {
	return cpu.reduceAxis(x, axis, func(data []float64, base, n, stride int) float64 {
		prod := 1.0
		for i := 0; i < n; i++ {
			prod *= data[base+i*stride]
		}
		return prod
	})
}

// MeanAxis averages along the given axis.
func (cpu *CPUBackend) MeanAxis(x *ndarray.Array, axis int) (*ndarray.Array, error) {
	return cpu.reduceAxis(x, axis, func(data []float64, base, n, stride int) float64 {
		return foldSum(data, base, n, stride) / float64(n)
	})
}

// VarAxis computes the population variance along the given axis.
func (cpu *CPUBackend) VarAxis(x *ndarray.Array, axis int) (*ndarray.Array, error) {
	return cpu.reduceAxis(x, axis, foldVar)
}

// StdAxis computes the population standard deviation along the given axis.
func (cpu *CPUBackend) StdAxis(x *ndarray.Array, axis int) (*ndarray.Array, error) {
	return cpu.reduceAxis(x, axis, func(data []float64, base, n, stride int) float64 {
		return math.Sqrt(foldVar(data, base, n, stride))
	})
}

// MinAxis takes the minimum along the given axis.
func (cpu *CPUBackend) MinAxis(x *ndarray.Array, axis int) (*ndarray.Array, error) {
	return cpu.reduceAxis(x, axis, func(data []float64, base, n, stride int) float64 {
		m := data[base]
		for i := 1; i < n; i++ {
			if v := data[base+i*stride]; v < m {
				m = v
			}
		}
		return m
	})
}

// MaxAxis takes the maximum along the given axis.
func (cpu *CPUBackend) MaxAxis(x *ndarray.Array, axis int) (*ndarray.Array, error) {
	return cpu.reduceAxis(x, axis, func(data []float64, base, n, stride int) float64 {
		m := data[base]
		for i := 1; i < n; i++ {
			if v := data[base+i*stride]; v > m {
				m = v
			}
		}
		return m
	})
}

// ArgminAxis returns, per remaining coordinate, the 0-based position of the
// smallest element within the reduced axis only (not a flat index). Ties
// resolve to the lowest position.
func (cpu *CPUBackend) ArgminAxis(x *ndarray.Array, axis int) (*ndarray.Array, error) {
	return cpu.reduceAxis(x, axis, func(data []float64, base, n, stride int) float64 {
		best := data[base]
		idx := 0
		for i := 1; i < n; i++ {
			if v := data[base+i*stride]; v < best {
				best = v
				idx = i
			}
		}
		return float64(idx)
	})
}

// ArgmaxAxis returns, per remaining coordinate, the 0-based position of the
// largest element within the reduced axis only (not a flat index). Ties
// resolve to the lowest position.
func (cpu *CPUBackend) ArgmaxAxis(x *ndarray.Array, axis int) (*ndarray.Array, error) {
	return cpu.reduceAxis(x, axis, func(data []float64, base, n, stride int) float64 {
		best := data[base]
		idx := 0
		for i := 1; i < n; i++ {
			if v := data[base+i*stride]; v > best {
				best = v
				idx = i
			}
		}
		return float64(idx)
	})
}

// reduceAxis iterates every coordinate of the remaining axes and applies
// fold to the slice addressed along the removed axis via flat-index
// arithmetic: element i of a slice lives at base + i*stride.
func (cpu *CPUBackend) reduceAxis(x *ndarray.Array, axis int,
	fold func(data []float64, base, n, stride int) float64) (*ndarray.Array, error) {
	shape := x.Shape()
	if axis < 0 || axis >= len(shape) {
		return nil, errors.Wrapf(ndarray.ErrAxisOutOfBounds,
			"axis %d out of range for rank-%d array", axis, len(shape))
	}

	kept := make(ndarray.Shape, 0, len(shape)-1)
	for i, dim := range shape {
		if i != axis {
			kept = append(kept, dim)
		}
	}
	outShape := kept
	if len(outShape) == 0 {
		outShape = ndarray.Shape{1}
	}

	result, err := ndarray.New(outShape)
	if err != nil {
		return nil, err
	}

	inStrides := shape.ComputeStrides()
	keptStrides := make([]int, 0, len(shape)-1)
	for i := range shape {
		if i != axis {
			keptStrides = append(keptStrides, inStrides[i])
		}
	}
	keptOutStrides := kept.ComputeStrides()

	data := x.Data()
	dst := result.Data()
	for o := range dst {
		base := 0
		rem := o
		for d := range keptStrides {
			coord := rem / keptOutStrides[d]
			rem %= keptOutStrides[d]
			base += coord * keptStrides[d]
		}
		dst[o] = fold(data, base, shape[axis], inStrides[axis])
	}
	return result, nil
}

func foldSum(data []float64, base, n, stride int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		sum += data[base+i*stride]
	}
	return sum
}

// foldVar makes two passes over the slice: mean first, then squared
// deviations. Population formula (divide by N).
func foldVar(data []float64, base, n, stride int) float64 {
	mean := foldSum(data, base, n, stride) / float64(n)
	var acc float64
	for i := 0; i < n; i++ {
		d := data[base+i*stride] - mean
		acc += d * d
	}
	return acc / float64(n)
}
