package system

import "time"

// Clock computes the wall-clock delta between frames.
type Clock struct {
	last time.Time
}

// NewClock creates a clock seeded at the given instant.
func NewClock(now time.Time) *Clock {
	return &Clock{last: now}
}

// Tick returns the elapsed seconds since the previous tick and advances
// the clock. The first tick after a Seed measures from the seed instant.
func (c *Clock) Tick(now time.Time) float64 {
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

// Seed re-anchors the clock. Called on session start and reset so the
// time spent idling on an overlay does not arrive as one huge delta.
func (c *Clock) Seed(now time.Time) {
	c.last = now
}
