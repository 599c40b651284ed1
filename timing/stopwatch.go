// Package timing provides a stopwatch that accumulates elapsed wall-clock
// and process CPU time across start/stop intervals.
package timing

import "time"

// Stopwatch accumulates elapsed time over any number of start/stop
// intervals. The zero value is a stopped stopwatch with no accumulated time.
// Not safe for concurrent use.
type Stopwatch struct {
	startWall   time.Time
	startCPU    time.Duration
	elapsedWall time.Duration
	elapsedCPU  time.Duration
	running     bool
}

// New returns a stopped Stopwatch with no accumulated time.
func New() *Stopwatch { return &Stopwatch{} }

// Start begins a new interval. Starting a running stopwatch is a no-op.
func (s *Stopwatch) Start() error {
	if s.running {
		return nil
	}
	cpu, err := cpuTime()
	if err != nil {
		return err
	}
	s.startCPU = cpu
	s.startWall = time.Now()
	s.running = true
	return nil
}

// Stop ends the current interval and adds it to the accumulated totals.
// Stopping a stopped stopwatch is a no-op.
func (s *Stopwatch) Stop() error {
	if !s.running {
		return nil
	}
	cpu, err := cpuTime()
	if err != nil {
		return err
	}
	s.elapsedCPU += cpu - s.startCPU
	s.elapsedWall += time.Since(s.startWall)
	s.running = false
	return nil
}

// Reset discards all accumulated time and stops the stopwatch.
func (s *Stopwatch) Reset() { *s = Stopwatch{} }

// Restart resets the stopwatch and immediately starts a new interval.
func (s *Stopwatch) Restart() error {
	s.Reset()
	return s.Start()
}

// Running reports whether an interval is in progress.
func (s *Stopwatch) Running() bool { return s.running }

// ElapsedWall returns the total wall-clock time across all intervals,
// including the current one if the stopwatch is running. Wall time comes
// from the monotonic clock.
func (s *Stopwatch) ElapsedWall() time.Duration {
	if !s.running {
		return s.elapsedWall
	}
	return s.elapsedWall + time.Since(s.startWall)
}

// ElapsedCPU returns the total process CPU time (user plus system) across
// all intervals, including the current one if the stopwatch is running. On
// platforms without CPU time accounting it reports zero.
func (s *Stopwatch) ElapsedCPU() (time.Duration, error) {
	if !s.running {
		return s.elapsedCPU, nil
	}
	cpu, err := cpuTime()
	if err != nil {
		return 0, err
	}
	return s.elapsedCPU + (cpu - s.startCPU), nil
}
