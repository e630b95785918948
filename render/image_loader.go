package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
)

// LoadImage decodes the image file at key and caches it by key.
func LoadImage(key string) (image.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	b, err := os.ReadFile(key)
	if err != nil {
		return nil, fmt.Errorf("render: load %s: %w", key, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", key, err)
	}
	RegisterImage(key, img)
	return img, nil
}
