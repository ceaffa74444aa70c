// File: list/fixed.go
// Author: momentics <momentics@gmail.com>
//
// Owned-storage bounded list: backing slots are allocated once at
// construction, owned by the container, and never reallocated.

package list

import "github.com/momentics/hioload-list/api"

// Fixed is a bounded list over container-owned storage.
type Fixed[T any] struct {
	core[T]
}

var (
	_ api.List[int]  = (*Fixed[int])(nil)
	_ api.Debuggable = (*Fixed[int])(nil)
)

// New creates a Fixed list with the given capacity. Seed values are
// inserted via the bulk-push algorithm: values past capacity are
// silently truncated, exactly as a runtime push would reject them.
func New[T any](capacity int, seed ...T) *Fixed[T] {
	if capacity < 0 {
		panic("list: negative capacity")
	}
	return &Fixed[T]{core: newCore(make([]T, capacity), seed)}
}
