// File: api/list.go
// Author: momentics <momentics@gmail.com>
//
// Bounded list contract: a fixed-capacity sequence container over
// contiguous storage. Implementations never reallocate; overflow is
// reported, not raised.

package api

// UnknownRemainder is returned by PushMany when the container filled
// while an unsized source still had values available. Callers must
// treat any negative return as "at least one element not inserted,
// count unknown", never as a literal count.
const UnknownRemainder = -1

// List is a bounded sequence container. The live region is always the
// prefix storage[0:Len()]; the free region is storage[Len():Cap()].
// Capacity is fixed for the lifetime of an instance.
//
// Implementations are not safe for concurrent mutation. Views returned
// by View and Slice are invalidated whenever the used region changes.
type List[T any] interface {
	// Cap returns the size of the backing region.
	Cap() int

	// Len returns the number of live elements, always in [0, Cap()].
	Len() int

	// Free returns Cap() - Len().
	Free() int

	// Empty reports Len() == 0.
	Empty() bool

	// Full reports Len() == Cap().
	Full() bool

	// View returns the live prefix as a read/write slice of length Len().
	// It is the canonical indexing and iteration target.
	View() []T

	// Slice returns the half-open sub-range [from, to) of the live prefix.
	// Panics if the range is outside [0, Len()].
	Slice(from, to int) []T

	// SliceFrom returns the live prefix from offset to end.
	SliceFrom(from int) []T

	// At returns the element at index i. Panics if i >= Len().
	At(i int) T

	// Set replaces the element at index i. Panics if i >= Len().
	Set(i int, v T)

	// First returns the first live element. Panics when empty.
	First() T

	// Last returns the last live element. Panics when empty.
	Last() T

	// Push appends one value. Returns false and leaves the container
	// unchanged when full; no reallocation ever occurs.
	Push(v T) bool

	// PushMany consumes src left-to-right, at most once, appending
	// values until src is exhausted or the container is full.
	//
	// If src implements Sized with length L: min(L, Free()) values are
	// copied and L - copied is returned; values beyond the copied
	// prefix are left unread. Otherwise values are consumed one at a
	// time; the return is 0 when src drained first, or
	// UnknownRemainder when the container filled while src had not
	// reported exhaustion.
	PushMany(src Source[T]) int

	// Append pushes the given values in order and returns the count
	// that did not fit. Equivalent to PushMany over a sized source.
	Append(vals ...T) int

	// Pop removes the last live element. No-op when empty.
	Pop()

	// PopN removes min(n, Len()) elements from the back. Never errors;
	// popping past the current length clamps to clearing everything.
	PopN(n int)

	// Clear removes all live elements. Idempotent.
	Clear()
}

// Source produces a finite or unbounded in-order sequence of values.
// Next returns the next value and true, or a zero value and false once
// the source is exhausted. Sources are consumed at most once.
type Source[T any] interface {
	Next() (T, bool)
}

// Sized is implemented by sources whose total length is known upfront,
// enabling the exact-remainder branch of List.PushMany.
type Sized interface {
	Len() int
}
