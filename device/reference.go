package device

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"github.com/rs/xid"
	akitacache "github.com/sarchlab/akita/v4/mem/cache"

	"github.com/sarchlab/posit8/kernel"
	"github.com/sarchlab/posit8/plog"
)

// admissionBlockSize and admissionAssociativity shape the set-associative
// table Reference uses to model device global memory. They have no
// numerical meaning for P8 itself; they only bound how finely Reference
// can admit or reject an allocation against GlobalMemBytes.
const (
	admissionBlockSize     = 64
	admissionAssociativity = 4
)

// Reference is an in-process Device implementation. It runs the same
// kernel.Matmul the host package exposes directly, after admitting the
// call's buffers against its configured Capabilities through a
// set-associative directory — akita's cache directory component —
// standing in for a real
// accelerator's memory allocator. It exists so the host/device contract
// has something concrete to drive in tests without real accelerator
// hardware, whose kernel program is out of scope for this module.
type Reference struct {
	caps Capabilities

	mu     sync.Mutex
	opened bool
	dir    *akitacache.DirectoryImpl
}

// NewReference creates a Reference device with the given capabilities.
func NewReference(caps Capabilities) *Reference {
	return &Reference{caps: caps}
}

// Open reports the device's capabilities and builds its admission
// table. It must succeed before Matmul will accept calls.
func (r *Reference) Open(ctx context.Context) (Capabilities, error) {
	if err := ctx.Err(); err != nil {
		return Capabilities{}, &UnavailableError{Reason: err.Error()}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	numSets := int(r.caps.GlobalMemBytes) / (admissionBlockSize * admissionAssociativity)
	if numSets < 1 {
		numSets = 1
	}
	r.dir = akitacache.NewDirectory(numSets, admissionAssociativity, admissionBlockSize,
		akitacache.NewLRUVictimFinder())
	r.opened = true

	plog.L().V(1).Info("posit8 device opened",
		"maxAllocBytes", r.caps.MaxAllocBytes,
		"globalMemBytes", r.caps.GlobalMemBytes,
		"maxWorkGroupSize", r.caps.MaxWorkGroupSize)

	return r.caps, nil
}

// Close releases the admission table.
func (r *Reference) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.opened = false
	r.dir = nil
	plog.L().V(1).Info("posit8 device closed")
	return nil
}

// Matmul admits the call's buffers against the device's capacity, runs
// kernel.Matmul, and simulates a device-to-host buffer readback. It
// blocks the caller until the simulated launch completes.
func (r *Reference) Matmul(ctx context.Context, a, b, c []byte, m, k, n int) error {
	launch := xid.New()
	log := plog.L().WithValues("launch", launch.String())

	if err := ctx.Err(); err != nil {
		return &UnavailableError{Reason: err.Error()}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.opened {
		return &UnavailableError{Reason: "device not opened"}
	}

	if m > r.caps.MaxWorkGroupSize || n > r.caps.MaxWorkGroupSize {
		log.V(1).Info("posit8 device launch rejected: work-group too large", "m", m, "n", n)
		return &LaunchError{Reason: fmt.Sprintf("grid %dx%d exceeds max work-group size %d",
			m, n, r.caps.MaxWorkGroupSize)}
	}

	if err := r.admit(log, a, b, c); err != nil {
		return err
	}
	defer r.dir.Reset()

	log.V(1).Info("posit8 device launch", "m", m, "k", k, "n", n)

	if err := kernel.Matmul(a, b, c, m, k, n); err != nil {
		log.Error(err, "posit8 device kernel failed")
		return err
	}

	readback := make([]byte, len(c))
	if copied := copy(readback, c); copied != len(c) {
		return &TransferError{Reason: "short readback of result buffer"}
	}

	log.V(1).Info("posit8 device launch complete")
	return nil
}

// admit checks each buffer against MaxAllocBytes and the combined
// working set against GlobalMemBytes, then reserves blocks for each
// buffer in the admission table. It returns a *CapacityError without
// reserving anything if any check fails.
func (r *Reference) admit(log logr.Logger, a, b, c []byte) error {
	buffers := []struct {
		name string
		data []byte
	}{{"a", a}, {"b", b}, {"c", c}}
	for _, buf := range buffers {
		if int64(len(buf.data)) > r.caps.MaxAllocBytes {
			log.V(1).Info("posit8 device capacity rejected", "buffer", buf.name, "bytes", len(buf.data))
			return &CapacityError{Requested: int64(len(buf.data)), Limit: r.caps.MaxAllocBytes}
		}
	}

	total := int64(len(a) + len(b) + len(c))
	if total > r.caps.GlobalMemBytes {
		log.V(1).Info("posit8 device capacity rejected", "totalBytes", total)
		return &CapacityError{Requested: total, Limit: r.caps.GlobalMemBytes}
	}

	needed := (int(total) + admissionBlockSize - 1) / admissionBlockSize
	for i := 0; i < needed; i++ {
		block := r.dir.FindVictim(uint64(i * admissionBlockSize))
		if block == nil {
			return &CapacityError{Requested: total, Limit: r.caps.GlobalMemBytes}
		}
		block.Tag = uint64(i * admissionBlockSize)
		block.IsValid = true
		r.dir.Visit(block)
	}

	return nil
}
