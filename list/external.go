// File: list/external.go
// Author: momentics <momentics@gmail.com>
//
// Borrowed-storage bounded list: the backing region is supplied by the
// caller, who keeps ownership of its lifetime. The container never
// allocates, extends, or frees it.

package list

import (
	"unsafe"

	"github.com/momentics/hioload-list/api"
)

// External is a bounded list over caller-supplied storage. The region
// must stay valid and exclusively referenced by this container for the
// container's entire usage window; violating that is undefined
// behavior, not a checked error.
type External[T any] struct {
	core[T]
}

var _ api.List[byte] = (*External[byte])(nil)

// Wrap borrows a typed region. Capacity is len(slots), fixed for the
// lifetime of the container. Seed values are bulk-pushed with silent
// truncation.
func Wrap[T any](slots []T, seed ...T) *External[T] {
	return &External[T]{core: newCore(slots, seed)}
}

// WrapBytes reinterprets an untyped block as a region of
// len(block) / sizeof(T) elements. Trailing bytes that do not fill a
// whole slot are unused. Zero-sized element types yield capacity 0.
func WrapBytes[T any](block []byte, seed ...T) *External[T] {
	var zero T
	size := int(unsafe.Sizeof(zero))
	n := 0
	if size > 0 {
		n = len(block) / size
	}
	var slots []T
	if n > 0 {
		slots = unsafe.Slice((*T)(unsafe.Pointer(&block[0])), n)
	}
	return Wrap(slots, seed...)
}

// WrapRaw borrows byteLen bytes starting at ptr and reinterprets them
// as a typed region, with the same capacity arithmetic as WrapBytes.
func WrapRaw[T any](ptr unsafe.Pointer, byteLen int, seed ...T) *External[T] {
	if byteLen < 0 || (ptr == nil && byteLen > 0) {
		panic("list: invalid external region")
	}
	var block []byte
	if byteLen > 0 {
		block = unsafe.Slice((*byte)(ptr), byteLen)
	}
	return WrapBytes(block, seed...)
}

// WrapPointer borrows count elements starting at ptr. The caller
// asserts the region actually spans count elements; the container
// cannot verify it.
func WrapPointer[T any](ptr unsafe.Pointer, count int, seed ...T) *External[T] {
	if count < 0 || (ptr == nil && count > 0) {
		panic("list: invalid external region")
	}
	var slots []T
	if count > 0 {
		slots = unsafe.Slice((*T)(ptr), count)
	}
	return Wrap(slots, seed...)
}
