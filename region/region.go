// File: region/region.go
// Author: momentics <momentics@gmail.com>
//
// Caller-owned raw memory regions for external-storage lists. A Region
// is allocated outside the Go heap where the platform allows (mmap on
// Linux, VirtualAlloc on Windows) and handed to list.WrapBytes; the
// list borrows it and the caller releases it after the list's last use.

package region

import (
	"sync"

	"github.com/momentics/hioload-list/api"
)

// Options selects platform allocation behavior. The zero value asks
// for a plain anonymous mapping.
type Options struct {
	// HugePages requests huge-page backing where the platform supports
	// it. Falls back to regular pages when the request cannot be met.
	HugePages bool

	// Locked pins the region into physical memory (mlock/VirtualLock).
	// Lock failures are not fatal; the region stays usable.
	Locked bool
}

// Region is a contiguous byte block with explicit lifetime. Not safe
// for concurrent Release.
type Region struct {
	mu       sync.Mutex
	mem      []byte
	free     func([]byte) error
	released bool
}

// Alloc obtains a region of exactly size bytes.
func Alloc(size int, opts Options) (*Region, error) {
	if size <= 0 {
		return nil, api.ErrRegionSize
	}
	mem, free, err := sysAlloc(size, opts)
	if err != nil {
		return nil, err
	}
	return &Region{mem: mem, free: free}, nil
}

// Bytes returns the full block. Valid until Release.
func (r *Region) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		panic("region: use after release")
	}
	return r.mem
}

// Len returns the region size in bytes.
func (r *Region) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.mem)
}

// Release returns the memory to the platform. Any list still wrapping
// the region must not be used afterwards.
func (r *Region) Release() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return api.ErrRegionReleased
	}
	r.released = true
	mem := r.mem
	r.mem = nil
	if r.free == nil {
		return nil
	}
	return r.free(mem)
}
