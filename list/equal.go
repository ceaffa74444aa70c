// File: list/equal.go
// Author: momentics <momentics@gmail.com>

package list

import "github.com/momentics/hioload-list/api"

// Equal reports whether the live prefixes of a and b have equal length
// and elementwise-equal values. Capacity is not part of equality.
func Equal[T comparable](a, b api.List[T]) bool {
	return EqualSlice(a, b.View())
}

// EqualSlice compares a list's live prefix against a plain sequence.
func EqualSlice[T comparable](a api.List[T], vals []T) bool {
	view := a.View()
	if len(view) != len(vals) {
		return false
	}
	for i := range view {
		if view[i] != vals[i] {
			return false
		}
	}
	return true
}
