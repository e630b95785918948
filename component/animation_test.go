package component

import (
	"image"
	"testing"
	"time"
)

func TestNewAnimationDefaults(t *testing.T) {
	cases := []struct {
		name          string
		frameCount    int
		frameDuration time.Duration
		wantCount     int
		wantDuration  time.Duration
	}{
		{"walk", 4, 200 * time.Millisecond, 4, 200 * time.Millisecond},
		{"zero_frames", 0, time.Second, 1, time.Second},
		{"zero_duration", 4, 0, 4, DefaultFrameDuration},
		{"negative_duration", 4, -time.Second, 4, DefaultFrameDuration},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAnimation(c.frameCount, c.frameDuration, true)
			if a.FrameCount != c.wantCount {
				t.Fatalf("expected %d frames, got %d", c.wantCount, a.FrameCount)
			}
			if a.FrameDuration != c.wantDuration {
				t.Fatalf("expected duration %v, got %v", c.wantDuration, a.FrameDuration)
			}
			if a.Frame() != 0 {
				t.Fatalf("expected initial frame 0, got %d", a.Frame())
			}
		})
	}
}

func TestAnimationSubThresholdIncrements(t *testing.T) {
	cases := []struct {
		name  string
		steps []time.Duration
	}{
		{"single", []time.Duration{200 * time.Millisecond}},
		{"four_quarters", []time.Duration{50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond}},
		{"sixtieths_short", repeat(time.Second/60, 12)},
		{"tenths", repeat(20*time.Millisecond, 10)},
		{"thousand_steps", repeat(200*time.Microsecond, 1000)},
		{"uneven", []time.Duration{1 * time.Millisecond, 99 * time.Millisecond, 33 * time.Millisecond, 67 * time.Millisecond}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAnimation(4, 200*time.Millisecond, true)
			advances := 0
			var total time.Duration
			for _, dt := range c.steps {
				total += dt
				if a.Update(dt) {
					advances++
				}
			}
			if total < 200*time.Millisecond {
				if advances != 0 {
					t.Fatalf("expected no advance before a full frame duration, got %d", advances)
				}
				return
			}
			if advances != 1 {
				t.Fatalf("expected exactly one advance, got %d", advances)
			}
			if a.Frame() != 1 {
				t.Fatalf("expected frame 1, got %d", a.Frame())
			}
		})
	}
}

func repeat(d time.Duration, n int) []time.Duration {
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = d
	}
	return out
}

func TestAnimationResetsAccumulator(t *testing.T) {
	a := NewAnimation(4, 200*time.Millisecond, true)

	if !a.Update(350 * time.Millisecond) {
		t.Fatalf("expected advance")
	}
	if a.Elapsed() != 0 {
		t.Fatalf("expected accumulator reset to 0, got %v", a.Elapsed())
	}
	if a.Update(100 * time.Millisecond) {
		t.Fatalf("overflow should not carry into the next frame")
	}
}

func TestAnimationCycles(t *testing.T) {
	a := NewAnimation(4, 200*time.Millisecond, true)

	for start := 0; start < 4; start++ {
		a.SetFrame(start)
		for i := 0; i < 4; i++ {
			a.Update(200 * time.Millisecond)
			if f := a.Frame(); f < 0 || f >= 4 {
				t.Fatalf("frame %d out of range", f)
			}
		}
		if a.Frame() != start {
			t.Fatalf("expected to return to frame %d after 4 advances, got %d", start, a.Frame())
		}
	}
}

func TestAnimationNoLoopHoldsLastFrame(t *testing.T) {
	a := NewAnimation(3, 100*time.Millisecond, false)
	for i := 0; i < 10; i++ {
		a.Update(100 * time.Millisecond)
	}
	if a.Frame() != 2 {
		t.Fatalf("expected last frame 2, got %d", a.Frame())
	}
}

func TestAnimationSetFrameClamps(t *testing.T) {
	a := NewAnimation(4, 200*time.Millisecond, true)

	a.SetFrame(-3)
	if a.Frame() != 0 {
		t.Fatalf("expected clamp to 0, got %d", a.Frame())
	}
	a.SetFrame(9)
	if a.Frame() != 3 {
		t.Fatalf("expected clamp to 3, got %d", a.Frame())
	}

	a.Update(50 * time.Millisecond)
	a.Reset()
	if a.Frame() != 0 || a.Elapsed() != 0 {
		t.Fatalf("expected reset state, got frame=%d elapsed=%v", a.Frame(), a.Elapsed())
	}
}

func TestAnimationSetFrameDuration(t *testing.T) {
	a := NewAnimation(4, 200*time.Millisecond, true)
	a.Update(100 * time.Millisecond)

	a.SetFrameDuration(0)
	if a.FrameDuration != 200*time.Millisecond {
		t.Fatalf("non-positive duration should be ignored, got %v", a.FrameDuration)
	}

	a.SetFrameDuration(100 * time.Millisecond)
	if !a.Update(time.Nanosecond) {
		t.Fatalf("expected advance once accumulated time exceeds the new duration")
	}
}

func TestAnimationSourceRect(t *testing.T) {
	a := NewAnimation(4, 200*time.Millisecond, true)

	for i := 0; i < 4; i++ {
		want := image.Rect(i*64, 0, i*64+64, 64)
		if got := a.SourceRect(64, 64); got != want {
			t.Fatalf("frame %d: expected %v, got %v", i, want, got)
		}
		a.Update(200 * time.Millisecond)
	}
}

func TestAnimationNilSafe(t *testing.T) {
	var a *Animation
	if a.Update(time.Second) {
		t.Fatalf("nil animation should not advance")
	}
	a.Reset()
	a.SetFrame(2)
	if a.Frame() != 0 {
		t.Fatalf("expected frame 0 on nil animation")
	}
}
