package engine

import "time"

// Clock supplies the host's current instant. "Today" is its local calendar date.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// Today returns the local calendar date of the clock.
func Today(c Clock) CalendarDate {
	return DateOf(c.Now())
}
