package render

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/spritewalk/component"
)

// DefaultScale is the on-screen magnification of a frame.
const DefaultScale = 2.0

// Player draws the current frame of an animated spritesheet centered on a
// Surface.
type Player struct {
	Sheet      Texture
	Anim       *component.Animation
	FrameW     int
	FrameH     int
	Scale      float64
	Filter     Filter
	Background color.Color
}

// NewPlayer creates a Player for a single-row sheet of frameW x frameH frames
// drawn at DefaultScale on a white background.
func NewPlayer(sheet Texture, frameW, frameH int, anim *component.Animation) *Player {
	return &Player{
		Sheet:      sheet,
		Anim:       anim,
		FrameW:     frameW,
		FrameH:     frameH,
		Scale:      DefaultScale,
		Filter:     FilterNearest,
		Background: color.White,
	}
}

// Settings are the presentation values of a Player that may change while the
// loop runs.
type Settings struct {
	FrameDuration time.Duration
	Scale         float64
	Filter        Filter
	Background    color.Color
}

// NewSheetPlayer creates a Player over a single-row sheet of frameCount
// frames. The animation always loops.
func NewSheetPlayer(sheet Texture, frameW, frameH, frameCount int, s Settings) *Player {
	anim := component.NewAnimation(frameCount, s.FrameDuration, true)
	p := NewPlayer(sheet, frameW, frameH, anim)
	p.Apply(s)
	return p
}

// Apply copies s onto the player. Zero or negative durations and scales and a
// nil background leave the current value in place. The current frame and
// the time accumulated toward the next one are kept.
func (p *Player) Apply(s Settings) {
	if p == nil {
		return
	}
	p.Anim.SetFrameDuration(s.FrameDuration)
	if s.Scale > 0 {
		p.Scale = s.Scale
	}
	p.Filter = s.Filter
	if s.Background != nil {
		p.Background = s.Background
	}
}

// Update advances the animation by dt. Reports whether the frame changed.
func (p *Player) Update(dt time.Duration) bool {
	if p == nil {
		return false
	}
	return p.Anim.Update(dt)
}

// Step advances the animation by the time elapsed on clock.
func (p *Player) Step(clock Clock) bool {
	return p.Update(clock.Tick())
}

// DrawOptions returns the quad for the current frame on a w x h viewport.
func (p *Player) DrawOptions(w, h int) DrawOptions {
	scale := p.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	size := mgl64.Vec2{float64(p.FrameW) * scale, float64(p.FrameH) * scale}
	center := mgl64.Vec2{float64(w) / 2, float64(h) / 2}
	return DrawOptions{
		Dest:   center.Sub(size.Mul(0.5)),
		Size:   size,
		Source: p.Anim.SourceRect(p.FrameW, p.FrameH),
		Tint:   color.White,
		Filter: p.Filter,
	}
}

// Draw clears s to the background and draws the current frame. The viewport
// size is read from s on every call.
func (p *Player) Draw(s Surface) {
	if p == nil || s == nil {
		return
	}
	if p.Background != nil {
		s.Clear(p.Background)
	}
	if p.Sheet == nil {
		return
	}
	w, h := s.Size()
	s.DrawTexture(p.Sheet, p.DrawOptions(w, h))
}
