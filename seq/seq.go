// File: seq/seq.go
// Author: momentics <momentics@gmail.com>
//
// Value sources feeding api.List.PushMany. Sized sources enable the
// exact-remainder branch; the rest are consumed value by value.

package seq

import "github.com/momentics/hioload-list/api"

// sliceSource walks a slice left to right. It reports its length, so
// PushMany can compute an exact remainder without reading past the
// copied prefix.
type sliceSource[T any] struct {
	vals []T
	pos  int
}

// FromSlice returns a sized source over vals. The slice is not copied;
// callers must not mutate it while the source is being consumed.
func FromSlice[T any](vals []T) api.Source[T] {
	return &sliceSource[T]{vals: vals}
}

// Of returns a sized source over the given values in order.
func Of[T any](vals ...T) api.Source[T] {
	return &sliceSource[T]{vals: vals}
}

func (s *sliceSource[T]) Next() (T, bool) {
	if s.pos >= len(s.vals) {
		var zero T
		return zero, false
	}
	v := s.vals[s.pos]
	s.pos++
	return v, true
}

// Len reports the total sequence length upfront.
func (s *sliceSource[T]) Len() int { return len(s.vals) }

// repeatSource yields the same value forever. Deliberately unsized.
type repeatSource[T any] struct {
	val T
}

// Repeat returns an unbounded source producing val on every call.
// Pushing it into a list always ends with the list full and an
// unknown-remainder result.
func Repeat[T any](val T) api.Source[T] {
	return &repeatSource[T]{val: val}
}

func (s *repeatSource[T]) Next() (T, bool) { return s.val, true }

// limitSource caps an inner source at n values. It stays unsized: the
// inner source may drain before the cap is reached, so the true length
// is unknown upfront.
type limitSource[T any] struct {
	inner api.Source[T]
	left  int
}

// Limit returns a source yielding at most n values from src.
func Limit[T any](src api.Source[T], n int) api.Source[T] {
	return &limitSource[T]{inner: src, left: n}
}

func (s *limitSource[T]) Next() (T, bool) {
	if s.left <= 0 {
		var zero T
		return zero, false
	}
	v, ok := s.inner.Next()
	if ok {
		s.left--
	}
	return v, ok
}

// chanSource drains a channel until it is closed. Unsized by nature.
type chanSource[T any] struct {
	ch <-chan T
}

// FromChan returns a source reading from ch. Next blocks on an open,
// empty channel; close ch to mark the source exhausted.
func FromChan[T any](ch <-chan T) api.Source[T] {
	return &chanSource[T]{ch: ch}
}

func (s *chanSource[T]) Next() (T, bool) {
	v, ok := <-s.ch
	return v, ok
}

// funcSource adapts a closure. Unsized.
type funcSource[T any] func() (T, bool)

// Func adapts fn into a source. fn must keep returning false once
// exhausted.
func Func[T any](fn func() (T, bool)) api.Source[T] {
	return funcSource[T](fn)
}

func (f funcSource[T]) Next() (T, bool) { return f() }
