// Package cpu implements the ndarray compute backend in pure Go.
//
// Every operation is eager, runs to completion on the calling goroutine,
// and allocates a fresh result buffer; no operation mutates its inputs.
// That makes the backend safe to call concurrently on independent arrays
// without locking.
package cpu

// CPUBackend computes ndarray operations on the host CPU.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name identifies the backend.
func (cpu *CPUBackend) Name() string {
	return "cpu"
}
