// Copyright 2025 NDKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"math/rand/v2"

	"github.com/ndkit/ndkit/internal/ndarray"
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} describes a 3D array with dimensions 2×3×4.
type Shape = ndarray.Shape

// Array is an owned flat buffer of float64 elements paired with its shape.
type Array = ndarray.Array

// Source yields independent uniform draws on [0, 1), for injecting a
// seeded generator into RandFrom/RandnFrom.
type Source = ndarray.Source

// Error kinds, re-exported for callers matching with errors.Is.
var (
	ErrInvalidShape        = ndarray.ErrInvalidShape
	ErrShapeMismatch       = ndarray.ErrShapeMismatch
	ErrSizeMismatch        = ndarray.ErrSizeMismatch
	ErrBroadcast           = ndarray.ErrBroadcast
	ErrAxisOutOfBounds     = ndarray.ErrAxisOutOfBounds
	ErrIndexOutOfBounds    = ndarray.ErrIndexOutOfBounds
	ErrInvalidPermutation  = ndarray.ErrInvalidPermutation
	ErrNotDivisible        = ndarray.ErrNotDivisible
	ErrUnsupportedOperands = ndarray.ErrUnsupportedOperands
	ErrInvalidArgument     = ndarray.ErrInvalidArgument
	ErrInvalidElement      = ndarray.ErrInvalidElement
)

// Creation functions

// Zeros creates an array filled with zeros.
func Zeros(shape Shape) (*Array, error) {
	return ndarray.Zeros(shape)
}

// Ones creates an array filled with ones.
func Ones(shape Shape) (*Array, error) {
	return ndarray.Ones(shape)
}

// Full creates an array filled with a specific value.
func Full(shape Shape, value float64) (*Array, error) {
	return ndarray.Full(shape, value)
}

// Arange creates a 1D array with values from start toward stop (exclusive)
// in increments of step.
func Arange(start, stop, step float64) (*Array, error) {
	return ndarray.Arange(start, stop, step)
}

// Linspace creates a 1D array of num evenly spaced samples, inclusive of
// both start and stop.
func Linspace(start, stop float64, num int) (*Array, error) {
	return ndarray.Linspace(start, stop, num)
}

// FromSlice creates an array by copying data into the given shape.
func FromSlice(data []float64, shape Shape) (*Array, error) {
	return ndarray.FromSlice(data, shape)
}

// FromNested builds an array from a numeric scalar, a flat sequence, or a
// nested sequence-of-sequences, inferring the shape from the nesting.
func FromNested(value any) (*Array, error) {
	return ndarray.FromNested(value)
}

// ToNested reconstructs the nested structure of an array. Inverse of
// FromNested.
func ToNested(a *Array) any {
	return ndarray.ToNested(a)
}

// Rand creates an array with elements drawn from the uniform distribution
// on [0, 1), using the process-global generator.
func Rand(shape Shape) (*Array, error) {
	return ndarray.Rand(shape, globalSource{})
}

// Randn creates an array with elements drawn from the standard normal
// distribution, using the process-global generator.
func Randn(shape Shape) (*Array, error) {
	return ndarray.Randn(shape, globalSource{})
}

// RandFrom is Rand with an injected uniform source.
func RandFrom(src Source, shape Shape) (*Array, error) {
	return ndarray.Rand(shape, src)
}

// RandnFrom is Randn with an injected uniform source.
func RandnFrom(src Source, shape Shape) (*Array, error) {
	return ndarray.Randn(shape, src)
}

// Shape/stride helpers

// FlatIndex maps a multi-dimensional index to its row-major buffer offset.
func FlatIndex(shape Shape, indices []int) (int, error) {
	return ndarray.FlatIndex(shape, indices)
}

// Unflatten maps a row-major buffer offset back to a multi-dimensional index.
func Unflatten(shape Shape, offset int) ([]int, error) {
	return ndarray.Unflatten(shape, offset)
}

// BroadcastShapes computes the broadcast shape for two shapes following
// NumPy broadcasting rules. The flag reports whether either operand needs
// materializing into the result shape.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return ndarray.BroadcastShapes(a, b)
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
