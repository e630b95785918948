package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritewalk/render"
)

// ebitenSurface adapts the frame's screen image to render.Surface.
type ebitenSurface struct {
	screen *ebiten.Image
}

func (s ebitenSurface) Size() (int, int) {
	b := s.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (s ebitenSurface) Clear(c color.Color) {
	s.screen.Fill(c)
}

func (s ebitenSurface) DrawTexture(tex render.Texture, op render.DrawOptions) {
	img, ok := tex.(*ebiten.Image)
	if !ok {
		return
	}

	src := img
	if !op.Source.Empty() {
		if sub, ok := img.SubImage(op.Source).(*ebiten.Image); ok {
			src = sub
		}
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	dop := &ebiten.DrawImageOptions{}
	dop.GeoM.Scale(op.Size.X()/float64(b.Dx()), op.Size.Y()/float64(b.Dy()))
	dop.GeoM.Translate(op.Dest.X(), op.Dest.Y())
	if op.Tint != nil {
		dop.ColorScale.ScaleWithColor(op.Tint)
	}
	dop.Filter = ebiten.FilterNearest
	if op.Filter == render.FilterLinear {
		dop.Filter = ebiten.FilterLinear
	}
	s.screen.DrawImage(src, dop)
}
