package core

import "time"

// Stopwatch measures the duration of a round.
type Stopwatch struct {
	now     func() time.Time
	start   time.Time
	stopped time.Duration
	running bool
}

// NewStopwatch constructs a stopped Stopwatch. A nil clock uses time.Now.
func NewStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now}
}

// Start restarts the stopwatch from zero.
func (s *Stopwatch) Start() {
	s.start = s.now()
	s.stopped = 0
	s.running = true
}

// Stop freezes the elapsed time. Stopping twice keeps the first reading.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.stopped = s.now().Sub(s.start)
	s.running = false
}

// Elapsed returns the time since Start, or the frozen reading after Stop.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.now().Sub(s.start)
	}
	return s.stopped
}
