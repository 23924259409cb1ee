// Package threshold computes intensity histograms and global binarization
// thresholds for 8-bit grayscale images.
//
// The threshold selection implements Otsu's method: the returned cutoff
// maximizes the between-class variance of the two intensity classes it
// induces (pixels at or below the cutoff vs. pixels above it). All
// functions are pure; the same image always yields the same histogram
// and threshold.
//
// # Input Model
//
// The package operates on *image.Gray. Images with deeper samples
// (such as *image.Gray16) or color images are rejected with
// ErrInvalidInput; convert them first, for example with the imaging
// package's ToGray.
//
// # Error Handling
//
// All validation happens before any computation. Errors wrap the
// sentinel ErrInvalidInput so callers can test with errors.Is.
package threshold
