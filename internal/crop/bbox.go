package crop

import (
	"fmt"
	"image"
	"math/rand"
	"time"
)

// RandomCropWithBox extracts a crop of exactly the given size whose
// rectangle fully contains box and lies fully within the image. The
// top-left corner is chosen uniformly at random among all valid
// positions using rng, so a seeded source makes the selection
// reproducible. A nil rng falls back to a time-seeded source.
//
// Returns the crop and its chosen top-left offset. Fails with
// ErrInvalidParameter for non-positive sizes, ErrOutOfBounds if box
// exceeds the image, ErrCropTooSmall if box cannot fit inside size, and
// ErrNoValidRegion if the image is smaller than the requested crop.
func RandomCropWithBox(img image.Image, box BoundingBox, size Size, rng *rand.Rand) (*image.NRGBA, image.Point, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, image.Point{}, fmt.Errorf("%w: crop size %dx%d must be positive", ErrInvalidParameter, size.Width, size.Height)
	}
	if box.Width <= 0 || box.Height <= 0 {
		return nil, image.Point{}, fmt.Errorf("%w: bounding box %dx%d must be positive", ErrInvalidParameter, box.Width, box.Height)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if box.X < 0 || box.Y < 0 || box.X+box.Width > w || box.Y+box.Height > h {
		return nil, image.Point{}, fmt.Errorf("%w: box (%d,%d) %dx%d vs image %dx%d",
			ErrOutOfBounds, box.X, box.Y, box.Width, box.Height, w, h)
	}
	if box.Width > size.Width || box.Height > size.Height {
		return nil, image.Point{}, fmt.Errorf("%w: box %dx%d exceeds crop %dx%d",
			ErrCropTooSmall, box.Width, box.Height, size.Width, size.Height)
	}

	// Valid interval for the crop corner: far enough right/down to reach
	// the box's far edge, but not past the box's near edge or the image
	// edge.
	minX := max(0, box.X+box.Width-size.Width)
	maxX := min(w-size.Width, box.X)
	minY := max(0, box.Y+box.Height-size.Height)
	maxY := min(h-size.Height, box.Y)
	if minX > maxX || minY > maxY {
		return nil, image.Point{}, fmt.Errorf("%w: image %dx%d cannot hold a %dx%d crop around the box",
			ErrNoValidRegion, w, h, size.Width, size.Height)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	x := minX
	if maxX > minX {
		x += rng.Intn(maxX - minX + 1)
	}
	y := minY
	if maxY > minY {
		y += rng.Intn(maxY - minY + 1)
	}

	return extract(img, x, y, size.Width, size.Height), image.Pt(x, y), nil
}
