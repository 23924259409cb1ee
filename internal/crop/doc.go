// Package crop derives rectangular sub-regions from images: a random
// crop constrained to contain a bounding box, and regular grid tiling
// with or without an offset.
//
// All operations are pure functions over their inputs. Coordinates are
// 0-based with the origin at the top-left corner; rectangles are
// half-open, so a crop at (x, y) with size w×h covers pixels
// [x, x+w) × [y, y+h).
//
// Region extraction and canvas padding are delegated to
// github.com/disintegration/imaging, so the arithmetic here never
// touches pixel buffers directly.
//
// # Error Handling
//
// Every operation validates its parameters before producing output and
// wraps one of the package sentinels (ErrInvalidParameter,
// ErrOutOfBounds, ErrCropTooSmall, ErrNoValidRegion) with the values
// that failed; test with errors.Is.
package crop
