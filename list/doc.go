// Package list
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity sequence containers over contiguous storage.
// Two ownership modes behind the api.List contract: Fixed owns its
// backing slots (allocated once at construction), External borrows a
// caller-supplied region and never allocates or frees it.
// No operation reallocates; overflow is reported through remainder
// counts instead of errors. Not safe for concurrent mutation.
// See core.go, fixed.go, external.go for implementation details.
package list
