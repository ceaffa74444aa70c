// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for the hioload-list library. Capacity overflow
// is never an error (see List.PushMany); these cover region allocation
// and argument validation only.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrRegionSize        = fmt.Errorf("region size must be positive")
	ErrRegionUnsupported = fmt.Errorf("region kind not supported on this platform")
	ErrRegionReleased    = fmt.Errorf("region already released")
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
)
