package app

import "time"

// Clock measures frame deltas and time since it started.
type Clock struct {
	now     func() time.Time
	start   time.Time
	last    time.Time
	elapsed float64
}

func NewClock() *Clock {
	return newClockAt(time.Now)
}

func newClockAt(now func() time.Time) *Clock {
	t := now()
	return &Clock{now: now, start: t, last: t}
}

// Delta returns the seconds since the previous Delta call, or since the
// clock started on the first call. It also advances Elapsed.
func (c *Clock) Delta() float64 {
	t := c.now()
	d := t.Sub(c.last).Seconds()
	c.last = t
	c.elapsed = t.Sub(c.start).Seconds()
	return d
}

// Elapsed returns the seconds between the start and the last Delta call.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}
