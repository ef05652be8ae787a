// Package timer provides interval timers advanced by a host clock.
//
// Nothing here starts goroutines: the owner calls Advance once per frame and
// every due callback runs synchronously on that goroutine, in the order the
// timers came due. That keeps timer side effects serialized with the frame
// update that owns the same state.
package timer

import (
	"sort"
	"time"
)

// MaxLag bounds catch-up. A timer overdue by more than this (the host was
// suspended, a debugger was attached) is re-phased to now instead of firing
// once for every missed interval.
const MaxLag = 5 * time.Second

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock moved explicitly; used by tests and replays.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time { return c.now }

// Add moves the clock forward by d.
func (c *ManualClock) Add(d time.Duration) {
	c.now = c.now.Add(d)
}

// Timer is a handle to a scheduled interval callback.
type Timer struct {
	next     time.Time
	interval func() time.Duration
	fn       func()
	stopped  bool
	seq      uint64
}

// Stop cancels the timer. It returns false if the timer was already stopped.
func (t *Timer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Scheduler owns a set of interval timers.
type Scheduler struct {
	timers []*Timer
	seq    uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every schedules fn every interval, first firing at now+interval.
func (s *Scheduler) Every(now time.Time, interval time.Duration, fn func()) *Timer {
	return s.EveryFunc(now, func() time.Duration { return interval }, fn)
}

// EveryFunc schedules fn with an interval re-read after every firing, so a
// cadence that depends on changing state takes effect on the next cycle.
func (s *Scheduler) EveryFunc(now time.Time, interval func() time.Duration, fn func()) *Timer {
	s.seq++
	t := &Timer{
		next:     now.Add(positive(interval())),
		interval: interval,
		fn:       fn,
		seq:      s.seq,
	}
	s.timers = append(s.timers, t)
	return t
}

// Len returns the number of live timers.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance fires every callback due at or before now, earliest first. Ties
// fire in scheduling order. Callbacks may stop any timer, including their own;
// stopped timers are skipped and dropped.
func (s *Scheduler) Advance(now time.Time) {
	for {
		s.compact()
		t := s.earliest()
		if t == nil || t.next.After(now) {
			return
		}

		due := t.next
		if now.Sub(due) > MaxLag {
			due = now
		}
		t.fn()
		t.next = due.Add(positive(t.interval()))
	}
}

// StopAll cancels every timer and returns how many were still live.
func (s *Scheduler) StopAll() int {
	n := 0
	for _, t := range s.timers {
		if t.Stop() {
			n++
		}
	}
	s.timers = s.timers[:0]
	return n
}

func (s *Scheduler) earliest() *Timer {
	if len(s.timers) == 0 {
		return nil
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		a, b := s.timers[i], s.timers[j]
		if a.next.Equal(b.next) {
			return a.seq < b.seq
		}
		return a.next.Before(b.next)
	})
	return s.timers[0]
}

func (s *Scheduler) compact() {
	kept := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			kept = append(kept, t)
		}
	}
	clear(s.timers[len(kept):])
	s.timers = kept
}

// positive guards against zero or negative intervals spinning Advance.
func positive(d time.Duration) time.Duration {
	if d < time.Millisecond {
		return time.Millisecond
	}
	return d
}
