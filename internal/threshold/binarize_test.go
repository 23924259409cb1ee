package threshold

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestBinarize(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 1))
	for x, v := range []uint8{0, 100, 101, 255} {
		img.SetGray(x, 0, color.Gray{Y: v})
	}

	out := Binarize(img, 100)

	want := []uint8{0, 0, 255, 255}
	for x := 0; x < 4; x++ {
		if got := out.GrayAt(x, 0).Y; got != want[x] {
			t.Errorf("pixel %d: got %d, want %d", x, got, want[x])
		}
	}
}

func TestBinarize_ThresholdBoundary(t *testing.T) {
	// Pixels exactly at the threshold belong to the low class.
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: 128})

	if got := Binarize(img, 128).GrayAt(0, 0).Y; got != 0 {
		t.Errorf("pixel at threshold: got %d, want 0", got)
	}
	if got := Binarize(img, 127).GrayAt(0, 0).Y; got != 255 {
		t.Errorf("pixel above threshold: got %d, want 255", got)
	}
}

func TestPreview(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 10})
	img.SetGray(1, 0, color.Gray{Y: 200})

	out, err := Preview(img, 100, "#FF0000", "#00FF00")
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}

	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("low pixel: got %v, want red", got)
	}
	if got := out.NRGBAAt(1, 0); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("high pixel: got %v, want green", got)
	}
}

func TestPreview_BadTint(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))

	tests := []struct {
		name         string
		low, high    string
	}{
		{"bad low", "nope", "#00FF00"},
		{"bad high", "#FF0000", "zzz"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Preview(img, 100, tt.low, tt.high)
			if err == nil {
				t.Fatal("Preview should fail for unparseable tint")
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error %v is not ErrInvalidInput", err)
			}
		})
	}
}
