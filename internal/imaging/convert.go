package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
)

// ToGray converts an image to 8-bit grayscale using luminance
// weighting. A *image.Gray input is returned as-is.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}

	// effect.Grayscale writes the luminance into every channel; one of
	// them is enough.
	rgba := effect.Grayscale(img)
	b := rgba.Bounds()
	gray := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.SetGray(x, y, color.Gray{Y: rgba.RGBAAt(x, y).R})
		}
	}
	return gray
}
