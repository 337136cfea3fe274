// Package anim holds the time source shared by the timer-driven page effects.
package anim

import "time"

// Clock is the time source used by self-rescheduling effects.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

// Real returns the wall clock.
func Real() Clock { return realClock{} }

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Manual is a Clock that fires immediately and records the requested delays.
// The reported time advances by each requested delay.
type Manual struct {
	now    time.Time
	Delays []time.Duration
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) After(d time.Duration) <-chan time.Time {
	m.Delays = append(m.Delays, d)
	m.now = m.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- m.now
	return ch
}

// Advance moves the clock forward without recording a delay.
func (m *Manual) Advance(d time.Duration) { m.now = m.now.Add(d) }
