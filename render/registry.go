package render

import (
	"image"
	"sync"
)

var (
	imagesMu sync.Mutex
	images   = map[string]image.Image{}
)

// RegisterImage stores an image by key.
func RegisterImage(key string, img image.Image) {
	if key == "" || img == nil {
		return
	}
	imagesMu.Lock()
	defer imagesMu.Unlock()
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) image.Image {
	if key == "" {
		return nil
	}
	imagesMu.Lock()
	defer imagesMu.Unlock()
	return images[key]
}

// ForgetImage drops a cached image so the next LoadImage reads it again.
func ForgetImage(key string) {
	imagesMu.Lock()
	defer imagesMu.Unlock()
	delete(images, key)
}
