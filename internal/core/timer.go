package core

import "time"

// FrameClock measures wall-clock time between frames. Animation code uses the
// returned delta rather than a frame count so motion speed does not depend on
// the display refresh rate.
type FrameClock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
}

// NewFrameClock constructs a clock reading time.Now.
func NewFrameClock() *FrameClock {
	return NewFrameClockWith(time.Now)
}

// NewFrameClockWith constructs a clock reading the provided time source.
func NewFrameClockWith(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now}
}

// Tick returns the seconds elapsed since the first tick and the seconds since
// the previous tick. The first call reports a zero delta.
func (c *FrameClock) Tick() (elapsed, dt float64) {
	t := c.now()
	if c.start.IsZero() {
		c.start = t
		c.last = t
	}
	dt = t.Sub(c.last).Seconds()
	if dt < 0 {
		dt = 0
	}
	c.last = t
	return t.Sub(c.start).Seconds(), dt
}

// Skip discards the time since the previous tick, e.g. after a pause, so the
// next Tick does not report one huge delta.
func (c *FrameClock) Skip() {
	if c.start.IsZero() {
		return
	}
	c.last = c.now()
}
