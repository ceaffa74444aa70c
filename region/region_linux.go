//go:build linux
// +build linux

// File: region/region_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux region allocation via anonymous mmap, optional MAP_HUGETLB.

package region

import "golang.org/x/sys/unix"

func sysAlloc(size int, opts Options) ([]byte, func([]byte) error, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_PRIVATE | unix.MAP_ANONYMOUS

	var mem []byte
	var err error
	if opts.HugePages {
		mem, err = unix.Mmap(-1, 0, size, prot, flags|unix.MAP_HUGETLB)
	}
	if mem == nil {
		// No huge pages requested, or the hugetlb pool is empty;
		// regular pages serve the same contract.
		mem, err = unix.Mmap(-1, 0, size, prot, flags)
	}
	if err != nil {
		return nil, nil, err
	}
	if opts.Locked {
		_ = unix.Mlock(mem)
	}
	return mem, unix.Munmap, nil
}
