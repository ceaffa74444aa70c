// File: adapters/spill.go
// Author: momentics <momentics@gmail.com>
//
// SpillList composes a bounded list with an unbounded FIFO so
// producers that must not drop values can overflow past the fixed
// region. The bounded core keeps its exact contract; only the adapter
// allocates. Not thread-safe.

package adapters

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-list/api"
)

// SpillList forwards pushes to a bounded list and queues whatever the
// list rejects. Pending values re-enter the list in FIFO order when
// space frees.
type SpillList[T any] struct {
	list    api.List[T]
	pending *queue.Queue
}

var _ api.Debuggable = (*SpillList[int])(nil)

// NewSpillList wraps an existing bounded list. The adapter does not
// take ownership of the list's backing storage.
func NewSpillList[T any](list api.List[T]) *SpillList[T] {
	return &SpillList[T]{
		list:    list,
		pending: queue.New(),
	}
}

// Push inserts v into the bounded list, or queues it when the list is
// full. Never rejects.
func (s *SpillList[T]) Push(v T) {
	// Preserve FIFO order: once anything is pending, new values must
	// queue behind it.
	if s.pending.Length() == 0 && s.list.Push(v) {
		return
	}
	s.pending.Add(v)
}

// Drain moves pending values into the bounded list until it fills or
// the queue empties. Returns the number of values moved.
func (s *SpillList[T]) Drain() int {
	moved := 0
	for s.pending.Length() > 0 {
		if !s.list.Push(s.pending.Peek().(T)) {
			break
		}
		s.pending.Remove()
		moved++
	}
	return moved
}

// Pending returns the count of values waiting outside the bounded list.
func (s *SpillList[T]) Pending() int {
	return s.pending.Length()
}

// List exposes the bounded core for reads and removal.
func (s *SpillList[T]) List() api.List[T] {
	return s.list
}

// DumpState emits a snapshot for diagnostics.
func (s *SpillList[T]) DumpState() map[string]any {
	return map[string]any{
		"cap":     s.list.Cap(),
		"len":     s.list.Len(),
		"pending": s.pending.Length(),
	}
}
