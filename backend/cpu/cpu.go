// Copyright 2025 NDKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for ndarray operations.
//
// The backend is eager and allocation-based: every operation produces new
// storage and never mutates its inputs, so it is safe for concurrent use
// on independent arrays.
package cpu

import (
	internalcpu "github.com/ndkit/ndkit/internal/backend/cpu"
	"github.com/ndkit/ndkit/ndarray"
)

// Backend is the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements ndarray.Backend.
var _ ndarray.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/ndkit/ndkit/backend/cpu"
//	    "github.com/ndkit/ndkit/ndarray"
//	)
//
//	func main() {
//	    be := cpu.New()
//	    x, _ := ndarray.Zeros(ndarray.Shape{2, 3})
//	    y, _ := be.AddScalar(x, 1)
//	}
func New() *Backend {
	return internalcpu.New()
}
