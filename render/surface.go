package render

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Filter selects how a texture is sampled when scaled.
type Filter int

const (
	// FilterNearest maps every destination pixel to the closest source pixel.
	FilterNearest Filter = iota
	// FilterLinear blends neighbouring source pixels.
	FilterLinear
)

// ParseFilter converts a config name into a Filter.
func ParseFilter(name string) (Filter, bool) {
	switch name {
	case "", "nearest":
		return FilterNearest, true
	case "linear":
		return FilterLinear, true
	}
	return FilterNearest, false
}

func (f Filter) String() string {
	if f == FilterLinear {
		return "linear"
	}
	return "nearest"
}

// Texture is anything a Surface knows how to sample from.
type Texture interface {
	Bounds() image.Rectangle
}

// DrawOptions describes one textured quad.
type DrawOptions struct {
	Dest   mgl64.Vec2
	Size   mgl64.Vec2
	Source image.Rectangle
	Tint   color.Color
	Filter Filter
}

// Surface is the display the player renders into. The window backend and the
// headless ImageSurface both implement it.
type Surface interface {
	Size() (w, h int)
	Clear(c color.Color)
	DrawTexture(tex Texture, op DrawOptions)
}
