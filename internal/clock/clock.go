// Package clock provides the time source used for ledger timestamps and
// calendar-day rollover.
package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock reports the current instant. Implementations decide the location in
// which calendar days are evaluated. Every clockwork.Clock satisfies it.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock and converts it to loc.
type System struct {
	real clockwork.Clock
	loc  *time.Location
}

// NewSystem returns a wall clock in loc. A nil loc means UTC.
func NewSystem(loc *time.Location) System {
	if loc == nil {
		loc = time.UTC
	}
	return System{real: clockwork.NewRealClock(), loc: loc}
}

// Now returns the wall-clock time in the configured location.
func (s System) Now() time.Time {
	if s.real == nil {
		return time.Now().UTC()
	}
	return s.real.Now().In(s.loc)
}

// fakeClock is the part of clockwork's fake clock Manual relies on.
type fakeClock interface {
	Now() time.Time
	Advance(d time.Duration)
}

// Manual only moves when told to. It drives tests and scripted simulations.
type Manual struct {
	fake fakeClock
}

// NewManual starts a manual clock at t. The location of t is kept.
func NewManual(t time.Time) *Manual {
	return &Manual{fake: clockwork.NewFakeClockAt(t)}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time {
	return m.fake.Now()
}

// Advance moves the clock forward by d and returns the new time.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.fake.Advance(d)
	return m.fake.Now()
}

// DayBefore reports whether a's calendar date is strictly before b's,
// evaluated in b's location.
func DayBefore(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
