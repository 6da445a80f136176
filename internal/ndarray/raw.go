package ndarray

import "github.com/pkg/errors"

// Array is the core value of the engine: an owned, immutable-size flat
// buffer of float64 elements in row-major order, paired with its shape.
// Invariant: len(data) == shape.NumElements(), checked at every
// construction point. No operation aliases another Array's buffer.
type Array struct {
	data  []float64
	shape Shape
}

// New creates a zero-filled Array with the given shape.
func New(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Array{
		data:  make([]float64, shape.NumElements()),
		shape: shape.Clone(),
	}, nil
}

// FromSlice creates an Array by copying data into the given shape.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, errors.Wrapf(ErrSizeMismatch,
			"%d elements for shape %v (needs %d)", len(data), shape, shape.NumElements())
	}
	a := &Array{
		data:  make([]float64, len(data)),
		shape: shape.Clone(),
	}
	copy(a.data, data)
	return a, nil
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's row-major strides.
func (a *Array) Strides() []int {
	return a.shape.ComputeStrides()
}

// Data returns the backing buffer.
// WARNING: direct access to underlying memory. Use with caution.
func (a *Array) Data() []float64 {
	return a.data
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return a.shape.NumElements()
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Clone creates a deep copy with its own buffer.
func (a *Array) Clone() *Array {
	clone := &Array{
		data:  make([]float64, len(a.data)),
		shape: a.shape.Clone(),
	}
	copy(clone.data, a.data)
	return clone
}

// At returns the element at the given multi-dimensional index.
func (a *Array) At(indices ...int) (float64, error) {
	offset, err := FlatIndex(a.shape, indices)
	if err != nil {
		return 0, err
	}
	return a.data[offset], nil
}

// Set returns a new Array with one element replaced. The receiver is never
// mutated, so holders of other references cannot observe the write.
func (a *Array) Set(value float64, indices ...int) (*Array, error) {
	offset, err := FlatIndex(a.shape, indices)
	if err != nil {
		return nil, err
	}
	result := a.Clone()
	result.data[offset] = value
	return result, nil
}

// Equal reports whether two arrays have the same shape and bitwise-equal
// elements. NaN elements compare unequal, following float64 semantics.
func (a *Array) Equal(other *Array) bool {
	if !a.shape.Equal(other.shape) {
		return false
	}
	for i, v := range a.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether two arrays have the same shape and every element
// pair differs by at most tol.
func (a *Array) AllClose(other *Array, tol float64) bool {
	if !a.shape.Equal(other.shape) {
		return false
	}
	for i, v := range a.data {
		diff := v - other.data[i]
		if diff < -tol || diff > tol {
			return false
		}
	}
	return true
}
