// File: list/core.go
// Author: momentics <momentics@gmail.com>
//
// Shared live-prefix machinery for both ownership modes. This
// implementation is NOT thread-safe and avoids locks in hot-path.

package list

import (
	"reflect"

	"github.com/momentics/hioload-list/api"
)

// core tracks the live prefix of a contiguous slot region.
// Invariant: 0 <= used <= len(slots) after every mutation.
type core[T any] struct {
	slots []T
	used  int
	reset bool // zero vacated slots so dead references are not pinned
}

func newCore[T any](slots []T, seed []T) core[T] {
	c := core[T]{
		slots: slots,
		reset: holdsReferences(reflect.TypeOf((*T)(nil)).Elem()),
	}
	c.Append(seed...)
	return c
}

// Cap returns the size of the backing region.
func (c *core[T]) Cap() int { return len(c.slots) }

// Len returns the number of live elements.
func (c *core[T]) Len() int { return c.used }

// Free returns the remaining slot count.
func (c *core[T]) Free() int { return len(c.slots) - c.used }

// Empty reports whether no live elements exist.
func (c *core[T]) Empty() bool { return c.used == 0 }

// Full reports whether every slot is live.
func (c *core[T]) Full() bool { return c.used == len(c.slots) }

// View returns the live prefix. Invalidated by any mutation.
func (c *core[T]) View() []T { return c.slots[:c.used] }

// Slice returns the half-open sub-range [from, to) of the live prefix.
func (c *core[T]) Slice(from, to int) []T {
	if from < 0 || to > c.used || from > to {
		panic("list: slice bounds out of range")
	}
	return c.slots[from:to]
}

// SliceFrom returns the live prefix from offset to end.
func (c *core[T]) SliceFrom(from int) []T {
	return c.Slice(from, c.used)
}

// At returns the element at index i within the live prefix.
func (c *core[T]) At(i int) T {
	if i < 0 || i >= c.used {
		panic("list: index out of range")
	}
	return c.slots[i]
}

// Set replaces the element at index i within the live prefix.
func (c *core[T]) Set(i int, v T) {
	if i < 0 || i >= c.used {
		panic("list: index out of range")
	}
	c.slots[i] = v
}

// First returns the first live element.
func (c *core[T]) First() T {
	if c.used == 0 {
		panic("list: First on empty list")
	}
	return c.slots[0]
}

// Last returns the last live element.
func (c *core[T]) Last() T {
	if c.used == 0 {
		panic("list: Last on empty list")
	}
	return c.slots[c.used-1]
}

// Push appends one value; returns false if full.
func (c *core[T]) Push(v T) bool {
	if c.used == len(c.slots) {
		return false
	}
	c.slots[c.used] = v
	c.used++
	return true
}

// Append pushes vals in order, truncating at capacity. Returns the
// count of values that did not fit.
func (c *core[T]) Append(vals ...T) int {
	take := len(vals)
	if free := c.Free(); take > free {
		take = free
	}
	copy(c.slots[c.used:], vals[:take])
	c.used += take
	return len(vals) - take
}

// PushMany consumes src left-to-right until src is exhausted or the
// container is full. See api.List for the remainder contract.
func (c *core[T]) PushMany(src api.Source[T]) int {
	if sized, ok := src.(api.Sized); ok {
		return c.pushSized(src, sized.Len())
	}
	for c.used < len(c.slots) {
		v, ok := src.Next()
		if !ok {
			return 0
		}
		c.slots[c.used] = v
		c.used++
	}
	// Full with src not confirmed exhausted; remainder is unknowable
	// without consuming, so it stays unread.
	return api.UnknownRemainder
}

// pushSized copies exactly min(total, Free()) values; the rest of src
// is left unread.
func (c *core[T]) pushSized(src api.Source[T], total int) int {
	take := total
	if free := c.Free(); take > free {
		take = free
	}
	inserted := 0
	for ; inserted < take; inserted++ {
		v, ok := src.Next()
		if !ok {
			// src overstated its length; treat as drained
			break
		}
		c.slots[c.used] = v
		c.used++
	}
	if rem := total - inserted; rem > 0 && inserted == take {
		return rem
	}
	return 0
}

// Pop removes the last live element. No-op when empty.
func (c *core[T]) Pop() {
	c.PopN(1)
}

// PopN removes min(n, Len()) elements from the back; never errors.
func (c *core[T]) PopN(n int) {
	if n > c.used {
		n = c.used
	}
	if n <= 0 {
		return
	}
	if c.reset {
		var zero T
		for i := c.used - n; i < c.used; i++ {
			c.slots[i] = zero
		}
	}
	c.used -= n
}

// Clear removes all live elements. Idempotent.
func (c *core[T]) Clear() {
	c.PopN(c.used)
}

// DumpState emits a snapshot of container state for diagnostics.
func (c *core[T]) DumpState() map[string]any {
	return map[string]any{
		"cap":          len(c.slots),
		"len":          c.used,
		"free":         len(c.slots) - c.used,
		"reset_on_pop": c.reset,
	}
}

// holdsReferences reports whether values of t transitively carry
// pointers the garbage collector follows. Only such types need their
// vacated slots zeroed on removal.
func holdsReferences(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.String, reflect.UnsafePointer:
		return true
	case reflect.Array:
		return t.Len() > 0 && holdsReferences(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if holdsReferences(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
