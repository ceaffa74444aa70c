// Package api
// Author: momentics
//
// Live introspection support for production diagnostics.

package api

// Debuggable exposes a state snapshot for diagnostics. Containers and
// adapters implement it so embedding code can register them as probes.
type Debuggable interface {
	// DumpState emits a snapshot of internal state.
	DumpState() map[string]any
}
