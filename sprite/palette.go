package sprite

import "image/color"

// Palette holds the fixed colors used to paint the walker.
type Palette struct {
	Skin     color.RGBA
	Hair     color.RGBA
	Shirt    color.RGBA
	Pants    color.RGBA
	ShoeTop  color.RGBA
	ShoeSole color.RGBA
	EyeWhite color.RGBA
	Pupil    color.RGBA
	Mouth    color.RGBA
	Nose     color.RGBA
}

// DefaultPalette is the only palette the generator uses.
var DefaultPalette = Palette{
	Skin:     color.RGBA{R: 220, G: 180, B: 140, A: 255},
	Hair:     color.RGBA{R: 60, G: 30, B: 20, A: 255},
	Shirt:    color.RGBA{R: 50, G: 120, B: 200, A: 255},
	Pants:    color.RGBA{R: 40, G: 40, B: 40, A: 255},
	ShoeTop:  color.RGBA{R: 20, G: 20, B: 20, A: 255},
	ShoeSole: color.RGBA{R: 10, G: 10, B: 10, A: 255},
	EyeWhite: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Pupil:    color.RGBA{R: 0, G: 0, B: 0, A: 255},
	Mouth:    color.RGBA{R: 150, G: 0, B: 0, A: 255},
	Nose:     color.RGBA{R: 180, G: 140, B: 120, A: 255},
}
