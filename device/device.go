// Package device specifies the host side of the optional data-parallel
// matmul back end's device contract. The device-side kernel program
// itself is an external collaborator: this package specifies only the
// host/device data-flow it requires (capacity queries at open, a launch
// call carrying the three flat buffers and the dimensions triple, and
// the error surface a real accelerator's driver would report) and
// provides Reference, a concrete in-process implementation of that
// contract for testing against without real accelerator hardware.
package device

import "context"

// Capabilities describes the device properties a host must query
// before issuing work, mirroring what a real accelerator driver reports
// at initialization.
type Capabilities struct {
	// MaxAllocBytes is the largest single buffer the device will admit.
	MaxAllocBytes int64
	// GlobalMemBytes is the device's total addressable memory.
	GlobalMemBytes int64
	// MaxWorkGroupSize bounds the output grid a single kernel launch
	// may cover along either dimension.
	MaxWorkGroupSize int
}

// Device is the host-side handle to a data-parallel matmul back end.
// Implementations need not support cancellation mid-flight: Matmul may
// block the caller until the device completes and the result buffer has
// been copied back, as spec'd for the offloaded path.
type Device interface {
	// Open queries and returns the device's capabilities. It must be
	// called, and must succeed, before Matmul.
	Open(ctx context.Context) (Capabilities, error)

	// Matmul computes C = A*B for A: m x k, B: k x n, C: m x n, flat and
	// row-major, using the identical encode/decode and accumulation
	// semantics as the host kernel package.
	Matmul(ctx context.Context, a, b, c []byte, m, k, n int) error

	// Close releases any device-side resources.
	Close() error
}
