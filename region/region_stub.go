//go:build !linux && !windows
// +build !linux,!windows

// File: region/region_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback region allocation for platforms without a native path:
// plain heap slices, GC handles reclamation on Release.

package region

func sysAlloc(size int, _ Options) ([]byte, func([]byte) error, error) {
	return make([]byte, size), nil, nil
}
