package threshold

import (
	"fmt"
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Binarize maps pixels above the threshold to white (255) and the rest
// to black (0).
func Binarize(img *image.Gray, threshold uint8) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y > threshold {
				out.SetGray(x, y, color.Gray{Y: 255})
			} else {
				out.SetGray(x, y, color.Gray{Y: 0})
			}
		}
	}
	return out
}

// Preview renders the two threshold classes with tint colors instead of
// plain black and white, for visual inspection of a chosen cutoff.
// Tints are hex strings like "#1B263B"; an unparseable tint fails with
// ErrInvalidInput.
func Preview(img *image.Gray, threshold uint8, lowHex, highHex string) (*image.NRGBA, error) {
	low, err := colorful.Hex(lowHex)
	if err != nil {
		return nil, fmt.Errorf("%w: low tint %q: %v", ErrInvalidInput, lowHex, err)
	}
	high, err := colorful.Hex(highHex)
	if err != nil {
		return nil, fmt.Errorf("%w: high tint %q: %v", ErrInvalidInput, highHex, err)
	}

	lr, lg, lb := low.RGB255()
	hr, hg, hb := high.RGB255()
	lowC := color.NRGBA{R: lr, G: lg, B: lb, A: 255}
	highC := color.NRGBA{R: hr, G: hg, B: hb, A: 255}

	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y > threshold {
				out.SetNRGBA(x, y, highC)
			} else {
				out.SetNRGBA(x, y, lowC)
			}
		}
	}
	return out, nil
}
