// Copyright 2025 NDKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides an N-dimensional numeric array over a flat
// float64 buffer, with NumPy-style broadcasting, axis-wise reductions, and
// structural manipulation.
//
// # Overview
//
// An Array pairs an owned, immutable-size buffer of float64 elements with
// its shape; row-major strides are derived, never stored. Every operation
// is eager and produces new storage — no operation aliases or mutates its
// inputs, which makes concurrent use on independent arrays safe without
// locking.
//
// # Basic Usage
//
//	import (
//	    "github.com/ndkit/ndkit/backend/cpu"
//	    "github.com/ndkit/ndkit/ndarray"
//	)
//
//	func main() {
//	    be := cpu.New()
//
//	    a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
//	    b, _ := ndarray.Ones(ndarray.Shape{2, 3})
//
//	    sum, _ := be.Add(a, b)       // element-wise, broadcast as needed
//	    total := be.Sum(sum)          // whole-array reduction
//	    cols, _ := be.SumAxis(sum, 0) // axis reduction, shape [3]
//	}
//
// # Broadcasting
//
// Binary operations combine operand shapes under NumPy broadcasting rules:
// shapes are right-aligned, missing leading axes are treated as size 1, and
// each aligned dimension pair must be equal or contain a 1. A scalar is a
// rank-1, length-1 array and broadcasts across any shape.
//
// # Errors
//
// Failures are reported as wrapped sentinel kinds (ErrInvalidShape,
// ErrBroadcast, ErrAxisOutOfBounds, ...) that callers match with errors.Is.
// Floating-point domain issues inside elementwise math propagate as NaN or
// Inf per IEEE-754 instead of failing the call.
package ndarray
