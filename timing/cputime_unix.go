//go:build unix

package timing

import (
	"time"

	"golang.org/x/sys/unix"
)

// cpuTime returns the process CPU time (user plus system) consumed so far.
func cpuTime() (time.Duration, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	return timevalDuration(ru.Utime) + timevalDuration(ru.Stime), nil
}

func timevalDuration(tv unix.Timeval) time.Duration {
	return time.Duration(tv.Sec)*time.Second + time.Duration(tv.Usec)*time.Microsecond
}
