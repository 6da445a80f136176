package cpu

import (
	"github.com/pkg/errors"

	"github.com/ndkit/ndkit/internal/ndarray"
)

// Reshape copies x into a new Array with newShape. The row-major flat
// ordering is unchanged; only the shape descriptor differs.
func (cpu *CPUBackend) Reshape(x *ndarray.Array, newShape ndarray.Shape) (*ndarray.Array, error) {
	if err := newShape.Validate(); err != nil {
		return nil, err
	}
	if newShape.NumElements() != x.Size() {
		return nil, errors.Wrapf(ndarray.ErrSizeMismatch,
			"cannot reshape %v (%d elements) to %v (%d elements)",
			x.Shape(), x.Size(), newShape, newShape.NumElements())
	}
	return ndarray.FromSlice(x.Data(), newShape)
}

// Flatten reshapes x to a rank-1 array of the same size.
func (cpu *CPUBackend) Flatten(x *ndarray.Array) (*ndarray.Array, error) {
	return cpu.Reshape(x, ndarray.Shape{x.Size()})
}

// Squeeze removes every axis of size 1. If that would remove all axes, the
// result keeps shape [1]; rank never drops to 0.
func (cpu *CPUBackend) Squeeze(x *ndarray.Array) (*ndarray.Array, error) {
	shape := x.Shape()
	newShape := make(ndarray.Shape, 0, len(shape))
	for _, dim := range shape {
		if dim != 1 {
			newShape = append(newShape, dim)
		}
	}
	if len(newShape) == 0 {
		newShape = ndarray.Shape{1}
	}
	return cpu.Reshape(x, newShape)
}

// ExpandDims inserts a size-1 axis at the given position. A negative axis
// counts from rank+1, so -1 appends a trailing axis. Valid positions are
// [0, rank] inclusive.
func (cpu *CPUBackend) ExpandDims(x *ndarray.Array, axis int) (*ndarray.Array, error) {
	shape := x.Shape()
	rank := len(shape)
	if axis < 0 {
		axis = rank + 1 + axis
	}
	if axis < 0 || axis > rank {
		return nil, errors.Wrapf(ndarray.ErrAxisOutOfBounds,
			"axis %d out of range for expand_dims on rank-%d array (valid: [0, %d])", axis, rank, rank)
	}

	newShape := make(ndarray.Shape, rank+1)
	copy(newShape[:axis], shape[:axis])
	newShape[axis] = 1
	copy(newShape[axis+1:], shape[axis:])
	return cpu.Reshape(x, newShape)
}

// Transpose permutes the axes of x. With no explicit permutation all axes
// are reversed. An explicit perm must be a bijection over [0, rank). The
// result is a full data copy, not a view.
func (cpu *CPUBackend) Transpose(x *ndarray.Array, perm ...int) (*ndarray.Array, error) {
	shape := x.Shape()
	rank := len(shape)

	if len(perm) == 0 {
		perm = make([]int, rank)
		for i := range perm {
			perm[i] = rank - 1 - i
		}
	}

	if len(perm) != rank {
		return nil, errors.Wrapf(ndarray.ErrInvalidPermutation,
			"permutation %v has length %d for rank-%d array", perm, len(perm), rank)
	}
	seen := make([]bool, rank)
	for _, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			return nil, errors.Wrapf(ndarray.ErrInvalidPermutation,
				"permutation %v is not a bijection over [0, %d)", perm, rank)
		}
		seen[p] = true
	}

	outShape := make(ndarray.Shape, rank)
	for d := range perm {
		outShape[d] = shape[perm[d]]
	}

	result, err := ndarray.New(outShape)
	if err != nil {
		return nil, err
	}

	src := x.Data()
	dst := result.Data()
	inStrides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	for outIdx := range dst {
		inIdx := 0
		rem := outIdx
		for d := 0; d < rank; d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			inIdx += coord * inStrides[perm[d]]
		}
		dst[outIdx] = src[inIdx]
	}
	return result, nil
}

// Concat concatenates arrays along the given axis. All arrays must share
// rank and agree on every dimension except the concatenation axis; the
// result dimension there is the sum of the inputs'. Relative element order
// is preserved segment by segment.
func (cpu *CPUBackend) Concat(arrays []*ndarray.Array, axis int) (*ndarray.Array, error) {
	if len(arrays) == 0 {
		return nil, errors.Wrap(ndarray.ErrInvalidArgument, "concat: at least one array required")
	}

	shape := arrays[0].Shape()
	rank := len(shape)
	if axis < 0 || axis >= rank {
		return nil, errors.Wrapf(ndarray.ErrAxisOutOfBounds,
			"axis %d out of range for rank-%d array", axis, rank)
	}

	totalDim := 0
	for i, a := range arrays {
		aShape := a.Shape()
		if len(aShape) != rank {
			return nil, errors.Wrapf(ndarray.ErrShapeMismatch,
				"array %d has rank %d, expected %d", i, len(aShape), rank)
		}
		for d := 0; d < rank; d++ {
			if d == axis {
				totalDim += aShape[d]
			} else if aShape[d] != shape[d] {
				return nil, errors.Wrapf(ndarray.ErrShapeMismatch,
					"array %d dimension %d is %d, expected %d", i, d, aShape[d], shape[d])
			}
		}
	}

	outShape := shape.Clone()
	outShape[axis] = totalDim
	result, err := ndarray.New(outShape)
	if err != nil {
		return nil, err
	}

	dst := result.Data()
	outStrides := outShape.ComputeStrides()
	offset := 0
	for _, a := range arrays {
		src := a.Data()
		aShape := a.Shape()
		strides := aShape.ComputeStrides()
		for i := range src {
			outIdx := 0
			rem := i
			for d := 0; d < rank; d++ {
				coord := rem / strides[d]
				rem %= strides[d]
				if d == axis {
					coord += offset
				}
				outIdx += coord * outStrides[d]
			}
			dst[outIdx] = src[i]
		}
		offset += aShape[axis]
	}
	return result, nil
}

// Stack joins arrays of identical shape along a new axis of size
// len(arrays) inserted at the given position.
func (cpu *CPUBackend) Stack(arrays []*ndarray.Array, axis int) (*ndarray.Array, error) {
	if len(arrays) == 0 {
		return nil, errors.Wrap(ndarray.ErrInvalidArgument, "stack: at least one array required")
	}
	shape := arrays[0].Shape()
	for i, a := range arrays[1:] {
		if !a.Shape().Equal(shape) {
			return nil, errors.Wrapf(ndarray.ErrShapeMismatch,
				"array %d has shape %v, expected %v", i+1, a.Shape(), shape)
		}
	}

	expanded := make([]*ndarray.Array, len(arrays))
	for i, a := range arrays {
		e, err := cpu.ExpandDims(a, axis)
		if err != nil {
			return nil, err
		}
		expanded[i] = e
	}
	return cpu.Concat(expanded, axis)
}

// Split divides x into equally sized sections along the given axis. The
// axis length must divide evenly.
func (cpu *CPUBackend) Split(x *ndarray.Array, sections, axis int) ([]*ndarray.Array, error) {
	shape := x.Shape()
	if axis < 0 || axis >= len(shape) {
		return nil, errors.Wrapf(ndarray.ErrAxisOutOfBounds,
			"axis %d out of range for rank-%d array", axis, len(shape))
	}
	if sections <= 0 {
		return nil, errors.Wrapf(ndarray.ErrInvalidArgument, "split: sections %d must be positive", sections)
	}
	dim := shape[axis]
	if dim%sections != 0 {
		return nil, errors.Wrapf(ndarray.ErrNotDivisible,
			"axis %d length %d into %d sections", axis, dim, sections)
	}

	size := dim / sections
	cuts := make([]int, sections-1)
	for i := range cuts {
		cuts[i] = (i + 1) * size
	}
	return cpu.SplitAt(x, cuts, axis)
}

// SplitAt partitions x along the given axis at the given cut points; the
// last segment runs to the axis end. Cut points must be strictly increasing
// within (0, axis length) so that no segment is empty. Concatenating the
// segments along the axis reconstructs x.
func (cpu *CPUBackend) SplitAt(x *ndarray.Array, indices []int, axis int) ([]*ndarray.Array, error) {
	shape := x.Shape()
	rank := len(shape)
	if axis < 0 || axis >= rank {
		return nil, errors.Wrapf(ndarray.ErrAxisOutOfBounds,
			"axis %d out of range for rank-%d array", axis, rank)
	}
	dim := shape[axis]
	prev := 0
	for _, cut := range indices {
		if cut <= prev || cut >= dim {
			return nil, errors.Wrapf(ndarray.ErrInvalidArgument,
				"cut points %v must be strictly increasing within (0, %d)", indices, dim)
		}
		prev = cut
	}

	// Segment starts, including the leading zero.
	starts := make([]int, 0, len(indices)+1)
	starts = append(starts, 0)
	starts = append(starts, indices...)

	results := make([]*ndarray.Array, len(starts))
	resultData := make([][]float64, len(starts))
	for s := range starts {
		end := dim
		if s+1 < len(starts) {
			end = starts[s+1]
		}
		segShape := shape.Clone()
		segShape[axis] = end - starts[s]
		seg, err := ndarray.New(segShape)
		if err != nil {
			return nil, err
		}
		results[s] = seg
		resultData[s] = seg.Data()
	}

	segStrides := make([][]int, len(results))
	for s, seg := range results {
		segStrides[s] = seg.Shape().ComputeStrides()
	}

	src := x.Data()
	strides := shape.ComputeStrides()
	for i := range src {
		axisCoord := (i / strides[axis]) % dim
		seg := len(starts) - 1
		for s := 0; s+1 < len(starts); s++ {
			if axisCoord < starts[s+1] {
				seg = s
				break
			}
		}

		rem := i
		outIdx := 0
		for d := 0; d < rank; d++ {
			coord := rem / strides[d]
			rem %= strides[d]
			if d == axis {
				coord -= starts[seg]
			}
			outIdx += coord * segStrides[seg][d]
		}
		resultData[seg][outIdx] = src[i]
	}
	return results, nil
}
