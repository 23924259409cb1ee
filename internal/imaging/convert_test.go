package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestToGray_PassThrough(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 10, 10))
	if got := ToGray(gray); got != gray {
		t.Error("ToGray should return a *image.Gray input unchanged")
	}
}

func TestToGray_Color(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		img.Set(0, y, color.RGBA{0, 0, 0, 255})       // black
		img.Set(1, y, color.RGBA{255, 255, 255, 255}) // white
		img.Set(2, y, color.RGBA{255, 0, 0, 255})     // red
		img.Set(3, y, color.RGBA{0, 255, 0, 255})     // green
	}

	gray := ToGray(img)

	if gray.Bounds() != img.Bounds() {
		t.Fatalf("bounds: got %v, want %v", gray.Bounds(), img.Bounds())
	}
	if got := gray.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("black pixel: got %d, want 0", got)
	}
	if got := gray.GrayAt(1, 0).Y; got != 255 {
		t.Errorf("white pixel: got %d, want 255", got)
	}

	// Luminance weighting: green contributes more than red.
	red := gray.GrayAt(2, 0).Y
	green := gray.GrayAt(3, 0).Y
	if green <= red {
		t.Errorf("green luminance %d should exceed red %d", green, red)
	}
}

func TestToGray_Deterministic(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 30), uint8(y * 30), 100, 255})
		}
	}

	a := ToGray(img)
	b := ToGray(img)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if a.GrayAt(x, y) != b.GrayAt(x, y) {
				t.Fatalf("pixel (%d,%d) differs between conversions", x, y)
			}
		}
	}
}
