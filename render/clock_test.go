package render

import (
	"testing"
	"time"
)

func TestWallClockTick(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{
		base,
		base.Add(16 * time.Millisecond),
		base.Add(50 * time.Millisecond),
		base.Add(40 * time.Millisecond),
	}
	want := []time.Duration{0, 16 * time.Millisecond, 34 * time.Millisecond, 0}

	i := 0
	c := &WallClock{now: func() time.Time {
		tm := times[i]
		i++
		return tm
	}}

	for j, w := range want {
		if got := c.Tick(); got != w {
			t.Fatalf("tick %d: expected %v, got %v", j, w, got)
		}
	}
}
