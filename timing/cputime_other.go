//go:build !unix && !windows

package timing

import "time"

// cpuTime is unavailable on this platform; wall-clock tracking still works
// and CPU totals stay at zero.
func cpuTime() (time.Duration, error) { return 0, nil }
