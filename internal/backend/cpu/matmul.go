package cpu

import (
	"github.com/pkg/errors"

	"github.com/ndkit/ndkit/internal/ndarray"
)

// Dot computes the product of two arrays by rank:
//
//	1-D · 1-D  inner product, returned as a length-1 array
//	2-D · 1-D  matrix-vector product, shape [m]
//	2-D · 2-D  matrix-matrix product, shape [m, n]
//
// Any other rank combination fails with ErrUnsupportedOperands. The inner
// dimensions must agree or the call fails with ErrShapeMismatch.
func (cpu *CPUBackend) Dot(a, b *ndarray.Array) (*ndarray.Array, error) {
	aShape, bShape := a.Shape(), b.Shape()

	switch {
	case len(aShape) == 1 && len(bShape) == 1:
		return cpu.dotVecVec(a, b)
	case len(aShape) == 2 && len(bShape) == 1:
		return cpu.dotMatVec(a, b)
	case len(aShape) == 2 && len(bShape) == 2:
		return cpu.dotMatMat(a, b)
	default:
		return nil, errors.Wrapf(ndarray.ErrUnsupportedOperands,
			"dot: rank %d and rank %d", len(aShape), len(bShape))
	}
}

func (cpu *CPUBackend) dotVecVec(a, b *ndarray.Array) (*ndarray.Array, error) {
	if a.Size() != b.Size() {
		return nil, errors.Wrapf(ndarray.ErrShapeMismatch,
			"dot: vector lengths %d and %d", a.Size(), b.Size())
	}
	aData, bData := a.Data(), b.Data()
	var sum float64
	for i := range aData {
		sum += aData[i] * bData[i]
	}
	return ndarray.FromSlice([]float64{sum}, ndarray.Shape{1})
}

func (cpu *CPUBackend) dotMatVec(a, b *ndarray.Array) (*ndarray.Array, error) {
	aShape := a.Shape()
	m, k := aShape[0], aShape[1]
	if k != b.Size() {
		return nil, errors.Wrapf(ndarray.ErrShapeMismatch,
			"dot: matrix %v with vector of length %d", aShape, b.Size())
	}

	result, err := ndarray.New(ndarray.Shape{m})
	if err != nil {
		return nil, err
	}
	aData, bData, dst := a.Data(), b.Data(), result.Data()
	for i := 0; i < m; i++ {
		var sum float64
		for j := 0; j < k; j++ {
			sum += aData[i*k+j] * bData[j]
		}
		dst[i] = sum
	}
	return result, nil
}

// dotMatMat is the standard naive O(m*k*n) triple loop:
// C[i,j] = sum_k A[i,k] * B[k,j].
func (cpu *CPUBackend) dotMatMat(a, b *ndarray.Array) (*ndarray.Array, error) {
	aShape, bShape := a.Shape(), b.Shape()
	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		return nil, errors.Wrapf(ndarray.ErrShapeMismatch,
			"dot: [%d,%d] with [%d,%d]", m, k, kAlt, n)
	}

	result, err := ndarray.New(ndarray.Shape{m, n})
	if err != nil {
		return nil, err
	}
	aData, bData, dst := a.Data(), b.Data(), result.Data()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += aData[i*k+kIdx] * bData[kIdx*n+j]
			}
			dst[i*n+j] = sum
		}
	}
	return result, nil
}
