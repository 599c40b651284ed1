// Package grow implements the capacity growth policy shared by the storage
// engines: geometric growth by a factor of 1.5, saturating at the largest
// representable capacity instead of wrapping.
package grow

import (
	"math"

	"github.com/growkit/growkit/internal/buf"
)

// Next returns the capacity an engine should allocate to hold at least
// required item slots.
//
// If current already satisfies required it is returned unchanged and the
// caller must not reallocate. Otherwise the result is the smallest capacity
// reachable from max(current, floor) by repeated application of
// next = next*3/2 + 1 that is >= required. Growing by 1.5 wastes less memory
// than doubling and gives previously freed blocks a chance to be reused by
// the allocator.
//
// Negative inputs are clamped to zero. When the geometric sequence would
// overflow, Next returns math.MaxInt.
func Next(current, required, floor int) int {
	current = max(current, 0)
	required = max(required, 0)
	floor = max(floor, 0)
	if current >= required {
		return current
	}
	next := max(current, floor)
	for next < required {
		// next*3/2 + 1, written so the intermediate product cannot wrap.
		step, ok := buf.AddOverflowSafe(next, next/2)
		if ok {
			step, ok = buf.AddOverflowSafe(step, 1)
		}
		if !ok {
			return math.MaxInt
		}
		next = step
	}
	return next
}
