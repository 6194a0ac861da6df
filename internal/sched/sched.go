// Package sched runs deferred callbacks on simulated time.
// Timers belong to a generation; bumping the generation cancels every timer
// created before it, so a new game start cannot race a pending continuation.
package sched

// Timer is a pending or repeating callback.
type Timer struct {
	due        float64
	interval   float64 // > 0 for repeating timers
	fn         func()
	generation uint64
	cancelled  bool
	fired      bool
}

// Cancel stops the timer. Cancelling twice is harmless.
func (t *Timer) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Active reports whether the timer can still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.cancelled && !(t.fired && t.interval == 0)
}

// Scheduler owns a clock advanced by Advance.
type Scheduler struct {
	now        float64
	generation uint64
	timers     []*Timer
}

// New creates a scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulated time in seconds.
func (s *Scheduler) Now() float64 { return s.now }

// Generation returns the current generation token.
func (s *Scheduler) Generation() uint64 { return s.generation }

// NextGeneration cancels every existing timer and returns the new token.
func (s *Scheduler) NextGeneration() uint64 {
	s.generation++
	s.CancelAll()
	return s.generation
}

// After schedules fn once, delay seconds from now.
func (s *Scheduler) After(delay float64, fn func()) *Timer {
	t := &Timer{due: s.now + delay, fn: fn, generation: s.generation}
	s.timers = append(s.timers, t)
	return t
}

// Every schedules fn every interval seconds, first after one interval.
func (s *Scheduler) Every(interval float64, fn func()) *Timer {
	if interval <= 0 {
		interval = 1
	}
	t := &Timer{due: s.now + interval, interval: interval, fn: fn, generation: s.generation}
	s.timers = append(s.timers, t)
	return t
}

// CancelAll cancels every pending timer.
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.cancelled = true
	}
	s.timers = nil
}

// Pending returns the number of active timers.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if t.Active() && t.generation == s.generation {
			n++
		}
	}
	return n
}

// Advance moves the clock by dt and fires due timers in due order.
// Callbacks may schedule or cancel timers; new timers due within this
// advance fire in the same call.
func (s *Scheduler) Advance(dt float64) {
	target := s.now + dt
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		if t.due > s.now {
			s.now = t.due
		}
		if t.interval > 0 {
			t.due += t.interval
		} else {
			t.fired = true
		}
		t.fn()
	}
	s.now = target
	s.compact()
}

func (s *Scheduler) nextDue(limit float64) *Timer {
	var best *Timer
	for _, t := range s.timers {
		if !t.Active() || t.generation != s.generation || t.due > limit {
			continue
		}
		if best == nil || t.due < best.due {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	kept := s.timers[:0]
	for _, t := range s.timers {
		if t.Active() && t.generation == s.generation {
			kept = append(kept, t)
		}
	}
	s.timers = kept
}
