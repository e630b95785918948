package render

import "time"

// Clock reports how much time passed since the previous tick.
type Clock interface {
	Tick() time.Duration
}

// WallClock measures real time between ticks.
type WallClock struct {
	now  func() time.Time
	last time.Time
}

// NewWallClock returns a clock backed by time.Now.
func NewWallClock() *WallClock {
	return &WallClock{now: time.Now}
}

// Tick returns the time since the previous Tick. The first call returns 0.
func (c *WallClock) Tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}
