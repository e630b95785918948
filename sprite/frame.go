package sprite

import (
	"image"
	"image/color"
	"image/draw"
)

const (
	// FrameSize is the width and height of a single frame in pixels.
	FrameSize = 64
	// FrameCount is the number of frames in the walk cycle.
	FrameCount = 4
)

// Base x coordinates of the limbs before the pose offset is applied.
const (
	leftArmX  = 18
	rightArmX = 40
	leftLegX  = 26
	rightLegX = 34
)

// FillRect overwrites every pixel of the w*h box at (x, y) with c. Nothing is
// blended; pixels outside img are clipped.
func FillRect(img draw.Image, x, y, w, h int, c color.Color) {
	r := image.Rect(x, y, x+w, y+h)
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// GenerateFrame paints walk frame i into a new FrameSize x FrameSize image.
// Later shapes overwrite earlier ones; untouched pixels stay transparent.
func GenerateFrame(i int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FrameSize, FrameSize))
	p := DefaultPalette
	la, ra, ll, rl := LimbPositions(i)

	// head and hair
	FillRect(img, 26, 4, 12, 12, p.Skin)
	for dx := 0; dx < 12; dx++ {
		img.SetRGBA(26+dx, 3, p.Hair)
		if dx%2 == 0 {
			img.SetRGBA(26+dx, 4, p.Hair)
		}
	}

	// face
	FillRect(img, 28, 9, 2, 2, p.EyeWhite)
	FillRect(img, 34, 9, 2, 2, p.EyeWhite)
	img.SetRGBA(29, 10, p.Pupil)
	img.SetRGBA(35, 10, p.Pupil)
	FillRect(img, 31, 11, 2, 2, p.Nose)
	FillRect(img, 29, 14, 6, 1, p.Mouth)
	FillRect(img, 30, 15, 4, 1, p.Mouth)

	// torso
	FillRect(img, 24, 16, 16, 18, p.Shirt)

	// arms and hands
	FillRect(img, la, 16, 6, 18, p.Shirt)
	FillRect(img, ra, 16, 6, 18, p.Shirt)
	FillRect(img, la+1, 34, 4, 4, p.Skin)
	FillRect(img, ra+1, 34, 4, 4, p.Skin)

	// legs and shoes
	FillRect(img, ll, 34, 6, 20, p.Pants)
	FillRect(img, rl, 34, 6, 20, p.Pants)
	for _, x := range []int{ll, rl} {
		FillRect(img, x, 54, 6, 3, p.ShoeTop)
		FillRect(img, x, 57, 6, 1, p.ShoeSole)
	}

	return img
}

// LimbPositions reports the left edge of each limb rectangle for frame i.
func LimbPositions(i int) (leftArm, rightArm, leftLeg, rightLeg int) {
	pose := PoseFor(i)
	return leftArmX + pose.LeftArm, rightArmX + pose.RightArm, leftLegX + pose.LeftLeg, rightLegX + pose.RightLeg
}
