package crop

import "errors"

// Sentinel errors for the validation failures a crop can hit. Returned
// errors wrap these with the offending values; test with errors.Is.
var (
	// ErrInvalidParameter reports a non-positive size or negative offset.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrOutOfBounds reports a bounding box that lies partially or fully
	// outside the image.
	ErrOutOfBounds = errors.New("bounding box out of image bounds")

	// ErrCropTooSmall reports a crop size that cannot contain the
	// bounding box.
	ErrCropTooSmall = errors.New("crop size too small for bounding box")

	// ErrNoValidRegion reports an image too small for any crop position
	// to satisfy the containment constraint.
	ErrNoValidRegion = errors.New("no valid crop region")
)

// BoundingBox is an axis-aligned rectangle in image coordinates,
// in (x, y, width, height) form.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Size is the width and height of a crop or tile.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Offset shifts the usable extent for offset tiling.
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}
