package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// ImageSurface is a Surface backed by an in-memory RGBA image. It needs no
// window or GPU and is used to render frames headlessly.
type ImageSurface struct {
	Target *image.RGBA
}

// NewImageSurface creates a transparent w x h surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{Target: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (s *ImageSurface) Size() (int, int) {
	b := s.Target.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ImageSurface) Clear(c color.Color) {
	draw.Draw(s.Target, s.Target.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// DrawTexture scales the source region of tex into the destination quad and
// composites it over the surface. Textures that are not image.Image are
// ignored.
func (s *ImageSurface) DrawTexture(tex Texture, op DrawOptions) {
	src, ok := tex.(image.Image)
	if !ok {
		return
	}
	sr := op.Source
	if sr.Empty() {
		sr = src.Bounds()
	}

	x0 := int(math.Round(op.Dest.X()))
	y0 := int(math.Round(op.Dest.Y()))
	w := int(math.Round(op.Size.X()))
	h := int(math.Round(op.Size.Y()))
	if w <= 0 || h <= 0 {
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	scalerFor(op.Filter).Scale(scaled, scaled.Bounds(), src, sr, draw.Src, nil)
	if op.Tint != nil {
		modulate(scaled, op.Tint)
	}

	dr := image.Rect(x0, y0, x0+w, y0+h)
	draw.Draw(s.Target, dr, scaled, image.Point{}, draw.Over)
}

func scalerFor(f Filter) draw.Scaler {
	if f == FilterLinear {
		return draw.ApproxBiLinear
	}
	return draw.NearestNeighbor
}

// modulate multiplies every channel of img by c. Both sides are
// alpha-premultiplied, so channels never exceed alpha. Opaque white is a no-op.
func modulate(img *image.RGBA, c color.Color) {
	r, g, b, a := c.RGBA()
	if r == 0xffff && g == 0xffff && b == 0xffff && a == 0xffff {
		return
	}
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i+0] = uint8(uint32(img.Pix[i+0]) * r / 0xffff)
		img.Pix[i+1] = uint8(uint32(img.Pix[i+1]) * g / 0xffff)
		img.Pix[i+2] = uint8(uint32(img.Pix[i+2]) * b / 0xffff)
		img.Pix[i+3] = uint8(uint32(img.Pix[i+3]) * a / 0xffff)
	}
}
