package cpu

import (
	"github.com/pkg/errors"

	"github.com/ndkit/ndkit/internal/ndarray"
)

// BroadcastTo materializes x into outShape under NumPy broadcasting rules:
// a source axis is indexed only if it exists and has size > 1, otherwise
// index 0 is used (the broadcast "stretch" over size-1 or absent axes).
// Runs in O(product(outShape) * rank).
func (cpu *CPUBackend) BroadcastTo(x *ndarray.Array, outShape ndarray.Shape) (*ndarray.Array, error) {
	if err := outShape.Validate(); err != nil {
		return nil, err
	}

	xShape := x.Shape()
	if len(outShape) < len(xShape) {
		return nil, errors.Wrapf(ndarray.ErrBroadcast,
			"target shape %v has fewer dimensions than %v", outShape, xShape)
	}
	offset := len(outShape) - len(xShape)
	for i := 0; i < len(xShape); i++ {
		if xShape[i] != 1 && xShape[i] != outShape[offset+i] {
			return nil, errors.Wrapf(ndarray.ErrBroadcast,
				"cannot broadcast dimension %d from %d to %d", i, xShape[i], outShape[offset+i])
		}
	}

	result, err := ndarray.New(outShape)
	if err != nil {
		return nil, err
	}

	src := x.Data()
	dst := result.Data()
	outStrides := outShape.ComputeStrides()
	inStrides := broadcastStrides(xShape, outShape)
	for i := range dst {
		dst[i] = src[mapIndex(i, outStrides, inStrides)]
	}
	return result, nil
}

// broadcastStrides computes strides for reading a shape as if it had been
// stretched to outShape: padded and size-1 axes get stride 0.
func broadcastStrides(inShape, outShape ndarray.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// mapIndex converts an output flat index into a source flat index by
// decomposing it along outStrides and recomposing along inStrides.
func mapIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}
