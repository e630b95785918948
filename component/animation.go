package component

import (
	"image"
	"time"
)

// DefaultFrameDuration is used when an Animation is built without one.
const DefaultFrameDuration = 200 * time.Millisecond

// Animation steps through the frames of a horizontal spritesheet on a fixed
// wall-clock interval, independent of how often Update is called.
type Animation struct {
	FrameCount    int
	FrameDuration time.Duration
	Loop          bool

	current int
	elapsed time.Duration
}

// NewAnimation creates an Animation starting at frame 0. `frameCount` below 1
// is treated as a single frame and a non-positive `frameDuration` falls back
// to DefaultFrameDuration. `loop` controls whether the last frame wraps.
func NewAnimation(frameCount int, frameDuration time.Duration, loop bool) *Animation {
	if frameCount < 1 {
		frameCount = 1
	}
	if frameDuration <= 0 {
		frameDuration = DefaultFrameDuration
	}
	return &Animation{
		FrameCount:    frameCount,
		FrameDuration: frameDuration,
		Loop:          loop,
	}
}

// Update adds dt to the accumulator and advances one frame once a full frame
// duration has built up. The accumulator restarts from zero on every advance,
// so a long stall moves the animation forward by a single frame. Reports
// whether the frame changed.
func (a *Animation) Update(dt time.Duration) bool {
	if a == nil || a.FrameCount <= 1 || dt <= 0 {
		return false
	}
	a.elapsed += dt
	if a.elapsed < a.FrameDuration {
		return false
	}
	a.elapsed = 0

	next := a.current + 1
	if next >= a.FrameCount {
		if !a.Loop {
			return false
		}
		next = 0
	}
	a.current = next
	return true
}

// Frame returns the current frame index.
func (a *Animation) Frame() int {
	if a == nil {
		return 0
	}
	return a.current
}

// Elapsed returns the time accumulated toward the next frame.
func (a *Animation) Elapsed() time.Duration {
	if a == nil {
		return 0
	}
	return a.elapsed
}

// Reset sets the animation back to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.current = 0
	a.elapsed = 0
}

// SetFrame jumps to a specific frame index.
func (a *Animation) SetFrame(i int) {
	if a == nil || a.FrameCount == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= a.FrameCount {
		i = a.FrameCount - 1
	}
	a.current = i
	a.elapsed = 0
}

// SetFrameDuration changes the interval between frames. Time already
// accumulated is kept.
func (a *Animation) SetFrameDuration(d time.Duration) {
	if a == nil || d <= 0 {
		return
	}
	a.FrameDuration = d
}

// SourceRect returns the sheet region of the current frame for frames laid
// out left to right in a single row.
func (a *Animation) SourceRect(frameW, frameH int) image.Rectangle {
	x := a.Frame() * frameW
	return image.Rect(x, 0, x+frameW, frameH)
}
