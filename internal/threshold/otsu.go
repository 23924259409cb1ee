package threshold

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidInput reports an image whose samples are not 8-bit grayscale.
var ErrInvalidInput = errors.New("invalid input image")

// Analysis is the result of histogram and threshold computation.
type Analysis struct {
	// Histogram contains per-intensity pixel counts.
	Histogram Histogram `json:"histogram"`

	// Threshold is the Otsu cutoff in [0, 254]. Pixels at or below it
	// form the low class, pixels above it the high class.
	Threshold uint8 `json:"threshold"`

	// Variance is the between-class variance achieved at Threshold.
	Variance float64 `json:"variance"`

	// WeightLow and WeightHigh are the pixel counts of the two classes.
	WeightLow  int `json:"weight_low"`
	WeightHigh int `json:"weight_high"`

	// MeanLow and MeanHigh are the mean intensities of the two classes.
	// A class with zero pixels has mean 0.
	MeanLow  float64 `json:"mean_low"`
	MeanHigh float64 `json:"mean_high"`
}

// Analyze computes the intensity histogram of an 8-bit grayscale image
// and the threshold that maximizes between-class variance (Otsu's
// method).
//
// Only *image.Gray is accepted; deeper or color images fail with
// ErrInvalidInput, as does an image with no pixels. When several
// cutoffs achieve the maximal variance, the smallest one is returned.
// An image with a single intensity has no meaningful split and yields
// threshold 0 with variance 0.
func Analyze(img image.Image) (*Analysis, error) {
	gray, ok := img.(*image.Gray)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not 8-bit grayscale", ErrInvalidInput, img)
	}
	if gray.Bounds().Empty() {
		return nil, fmt.Errorf("%w: image has no pixels", ErrInvalidInput)
	}

	h := ComputeHistogram(gray)
	a := otsu(&h)
	return a, nil
}

// otsu selects the cutoff maximizing wLow * wHigh * (meanLow - meanHigh)^2
// over all splits t in [0, 254], where the low class is intensities <= t.
func otsu(h *Histogram) *Analysis {
	total := h.Total()

	var sumAll float64
	for i, c := range h {
		sumAll += float64(i) * float64(c)
	}

	var (
		weightLow float64 // running pixel count of the low class
		sumLow    float64 // running weighted intensity sum of the low class
		best      = -1
		bestVar   float64
	)
	for t := 0; t < Levels-1; t++ {
		weightLow += float64(h[t])
		sumLow += float64(t) * float64(h[t])

		weightHigh := float64(total) - weightLow
		// A split with an empty class separates nothing; skip it so the
		// division below never sees a zero weight.
		if weightLow == 0 || weightHigh == 0 {
			continue
		}

		meanLow := sumLow / weightLow
		meanHigh := (sumAll - sumLow) / weightHigh
		diff := meanLow - meanHigh
		v := weightLow * weightHigh * diff * diff

		// Strict comparison keeps the smallest cutoff on ties.
		if best < 0 || v > bestVar {
			best = t
			bestVar = v
		}
	}
	if best < 0 {
		// Single-intensity image: every candidate has an empty class.
		best = 0
		bestVar = 0
	}

	a := &Analysis{
		Histogram: *h,
		Threshold: uint8(best),
		Variance:  bestVar,
	}
	var wLow, sLow float64
	for i := 0; i <= best; i++ {
		wLow += float64(h[i])
		sLow += float64(i) * float64(h[i])
	}
	wHigh := float64(total) - wLow
	a.WeightLow = int(wLow)
	a.WeightHigh = int(wHigh)
	if wLow > 0 {
		a.MeanLow = sLow / wLow
	}
	if wHigh > 0 {
		a.MeanHigh = (sumAll - sLow) / wHigh
	}
	return a
}
