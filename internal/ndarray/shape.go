package ndarray

import "github.com/pkg/errors"

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has rank >= 1 and every dimension > 0.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return errors.Wrap(ErrInvalidShape, "shape must have at least one dimension")
	}
	for i, dim := range s {
		if dim <= 0 {
			return errors.Wrapf(ErrInvalidShape, "dimension %d is %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// FlatIndex maps a multi-dimensional index to its row-major buffer offset.
// Every index must lie in [0, shape[i]) for its axis.
func FlatIndex(shape Shape, indices []int) (int, error) {
	if len(indices) != len(shape) {
		return 0, errors.Wrapf(ErrIndexOutOfBounds,
			"got %d indices for rank-%d array", len(indices), len(shape))
	}
	strides := shape.ComputeStrides()
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			return 0, errors.Wrapf(ErrIndexOutOfBounds,
				"index %d out of range [0, %d) on axis %d", idx, shape[i], i)
		}
		offset += idx * strides[i]
	}
	return offset, nil
}

// Unflatten maps a row-major buffer offset back to a multi-dimensional index.
func Unflatten(shape Shape, offset int) ([]int, error) {
	if offset < 0 || offset >= shape.NumElements() {
		return nil, errors.Wrapf(ErrIndexOutOfBounds,
			"flat offset %d out of range [0, %d)", offset, shape.NumElements())
	}
	strides := shape.ComputeStrides()
	indices := make([]int, len(shape))
	for i := range shape {
		indices[i] = offset / strides[i]
		offset %= strides[i]
	}
	return indices, nil
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Returns the broadcast shape and a flag indicating whether either operand
// needs materializing into it.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(1, 5) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, Error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)
	needsBroadcast := false

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
			needsBroadcast = true
		case bDim == 1:
			result[maxLen-1-i] = aDim
			needsBroadcast = true
		default:
			return nil, false, errors.Wrapf(ErrBroadcast,
				"shapes %v and %v (dimension %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, needsBroadcast, nil
}
