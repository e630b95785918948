package sprite

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
)

// SheetPath is where the generated sheet is written and read back from.
const SheetPath = "sprite_sheet_walk.png"

// GenerateSheet lays out every walk frame left to right in one image.
func GenerateSheet() *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, FrameSize*FrameCount, FrameSize))
	for i := 0; i < FrameCount; i++ {
		draw.Draw(sheet, FrameRect(i), GenerateFrame(i), image.Point{}, draw.Src)
	}
	return sheet
}

// FrameRect returns the bounds of frame i inside the sheet.
func FrameRect(i int) image.Rectangle {
	return image.Rect(i*FrameSize, 0, (i+1)*FrameSize, FrameSize)
}

// WriteSheet encodes img as PNG at path, replacing any existing file.
func WriteSheet(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sprite: write %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := png.Encode(w, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("sprite: encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sprite: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("sprite: write %s: %w", path, err)
	}
	return nil
}

// ReadSheet decodes the PNG at path into an RGBA image.
func ReadSheet(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: read %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("sprite: decode %s: %w", path, err)
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}

	// PNGs with transparency decode as NRGBA.
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba, nil
}

// Generate builds the walk sheet and writes it to path.
func Generate(path string) (*image.RGBA, error) {
	sheet := GenerateSheet()
	if err := WriteSheet(path, sheet); err != nil {
		return nil, err
	}
	log.Printf("sprite: wrote sheet %s (%dx%d)", path, sheet.Bounds().Dx(), sheet.Bounds().Dy())
	return sheet, nil
}
