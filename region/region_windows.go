//go:build windows
// +build windows

// File: region/region_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows region allocation via VirtualAlloc, optional large pages.

package region

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func sysAlloc(size int, opts Options) ([]byte, func([]byte) error, error) {
	alloc := uint32(windows.MEM_COMMIT | windows.MEM_RESERVE)

	var addr uintptr
	var err error
	if opts.HugePages {
		addr, err = windows.VirtualAlloc(0, uintptr(size),
			alloc|windows.MEM_LARGE_PAGES, windows.PAGE_READWRITE)
	}
	if addr == 0 {
		// Large pages need SeLockMemoryPrivilege; regular pages serve
		// the same contract.
		addr, err = windows.VirtualAlloc(0, uintptr(size), alloc, windows.PAGE_READWRITE)
	}
	if err != nil {
		return nil, nil, err
	}
	mem := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	if opts.Locked {
		_ = windows.VirtualLock(addr, uintptr(size))
	}
	free := func(b []byte) error {
		return windows.VirtualFree(uintptr(unsafe.Pointer(&b[0])), 0, windows.MEM_RELEASE)
	}
	return mem, free, nil
}
