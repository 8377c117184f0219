package device

import "fmt"

// UnavailableError reports that the device could not be used for the
// requested call, e.g. it was never opened or its context was already
// done.
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("posit8/device: device unavailable: %s", e.Reason)
}

// CapacityError reports that a call requested more device memory than
// the device's capacity allows.
type CapacityError struct {
	Requested int64
	Limit     int64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("posit8/device: capacity exceeded: requested %d bytes, limit %d bytes",
		e.Requested, e.Limit)
}

// LaunchError reports that a kernel launch could not proceed, e.g. the
// requested work-group shape exceeds the device's maximum.
type LaunchError struct {
	Reason string
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("posit8/device: kernel launch failed: %s", e.Reason)
}

// TransferError reports that a result buffer could not be read back
// from the device.
type TransferError struct {
	Reason string
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("posit8/device: buffer transfer failed: %s", e.Reason)
}
