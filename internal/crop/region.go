package crop

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// extract copies the w×h region whose top-left corner is at (x, y) in
// 0-based image coordinates. Callers guarantee the rectangle is in
// bounds.
func extract(img image.Image, x, y, w, h int) *image.NRGBA {
	min := img.Bounds().Min
	return imaging.Crop(img, image.Rect(min.X+x, min.Y+y, min.X+x+w, min.Y+y+h))
}

// padToSize pastes a region at (0,0) onto a black canvas of exactly the
// given size.
func padToSize(region image.Image, size Size) *image.NRGBA {
	canvas := imaging.New(size.Width, size.Height, color.NRGBA{A: 255})
	return imaging.Paste(canvas, region, image.Pt(0, 0))
}
