package core

import (
	"math"
	"sort"
	"time"
)

// Timer is a continuation scheduled on a Scheduler.
type Timer struct {
	due       time.Duration
	seq       uint64
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel prevents the continuation from running. Cancelling a timer that
// already fired is a no-op.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Pending reports whether the timer is still waiting to fire.
func (t *Timer) Pending() bool {
	return t != nil && !t.cancelled && !t.fired
}

// Scheduler runs continuations after a span of simulated time. It never
// blocks: the tick driver advances it and due timers fire inline, in due
// order, during Advance.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []*Timer
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's simulated clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d of simulated time has passed.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{due: s.now + d, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d and runs every timer that became due.
// Timers scheduled by a firing continuation run in the same call if they are
// already due.
func (s *Scheduler) Advance(d time.Duration) {
	if d > 0 {
		s.now += d
	}
	for {
		t := s.nextDue()
		if t == nil {
			break
		}
		t.fired = true
		t.fn()
	}
	s.compact()
}

// Pending returns the number of timers still waiting.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if t.Pending() {
			n++
		}
	}
	return n
}

// Reset cancels every timer and rewinds the clock.
func (s *Scheduler) Reset() {
	for _, t := range s.timers {
		t.cancelled = true
	}
	s.timers = s.timers[:0]
	s.now = 0
}

func (s *Scheduler) nextDue() *Timer {
	var next *Timer
	for _, t := range s.timers {
		if !t.Pending() || t.due > s.now {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if t.Pending() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
	sort.SliceStable(s.timers, func(i, j int) bool {
		return s.timers[i].due < s.timers[j].due
	})
}

// Seconds converts a float number of seconds to a time.Duration.
func Seconds(sec float64) time.Duration {
	return time.Duration(math.Round(sec * float64(time.Second)))
}
