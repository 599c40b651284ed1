// Package buf provides overflow-safe size arithmetic and bounds checks for
// the byte-oriented storage engines. Capacities and item sizes are multiplied
// and added all over the growth paths; these helpers keep that arithmetic
// from silently wrapping.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when either operand is
// negative or the sum would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// MulOverflowSafe multiplies a and b, returning ok = false when either
// operand is negative or the product would overflow int. This guards every
// count * itemSize calculation in the growth paths.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
