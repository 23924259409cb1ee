package threshold

import "image"

// Levels is the number of distinct intensities in an 8-bit image.
const Levels = 256

// Histogram holds per-intensity pixel counts. Index i is the number of
// pixels with intensity exactly i.
type Histogram [Levels]int

// Total returns the number of pixels counted, i.e. the sum of all bins.
func (h *Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// ComputeHistogram counts pixel intensities in a single pass.
func ComputeHistogram(img *image.Gray) Histogram {
	var h Histogram
	b := img.Bounds()
	// Y-outer iteration matches the row-major pixel layout.
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		for _, v := range img.Pix[off : off+b.Dx()] {
			h[v]++
		}
	}
	return h
}
