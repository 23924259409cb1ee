package crop

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

// gradientImage encodes each pixel's coordinates in its channels so
// tests can verify where a crop was taken from.
func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x % 256),
				G: uint8(y % 256),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func TestRandomCropWithBox_Containment(t *testing.T) {
	img := gradientImage(200, 150)
	box := BoundingBox{X: 60, Y: 40, Width: 30, Height: 20}
	size := Size{Width: 100, Height: 80}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		cropped, origin, err := RandomCropWithBox(img, box, size, rng)
		if err != nil {
			t.Fatalf("iteration %d: RandomCropWithBox failed: %v", i, err)
		}

		if cropped.Bounds().Dx() != size.Width || cropped.Bounds().Dy() != size.Height {
			t.Fatalf("crop dimensions: got %dx%d, want %dx%d",
				cropped.Bounds().Dx(), cropped.Bounds().Dy(), size.Width, size.Height)
		}
		if origin.X < 0 || origin.Y < 0 || origin.X+size.Width > 200 || origin.Y+size.Height > 150 {
			t.Fatalf("crop at (%d,%d) exceeds image bounds", origin.X, origin.Y)
		}
		if origin.X > box.X || origin.Y > box.Y ||
			origin.X+size.Width < box.X+box.Width || origin.Y+size.Height < box.Y+box.Height {
			t.Fatalf("crop at (%d,%d) does not contain box %+v", origin.X, origin.Y, box)
		}
	}
}

func TestRandomCropWithBox_Reproducible(t *testing.T) {
	img := gradientImage(200, 150)
	box := BoundingBox{X: 60, Y: 40, Width: 30, Height: 20}
	size := Size{Width: 100, Height: 80}

	_, first, err := RandomCropWithBox(img, box, size, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("RandomCropWithBox failed: %v", err)
	}
	_, second, err := RandomCropWithBox(img, box, size, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("RandomCropWithBox failed: %v", err)
	}

	if first != second {
		t.Errorf("same seed gave different origins: %v vs %v", first, second)
	}
}

func TestRandomCropWithBox_Content(t *testing.T) {
	img := gradientImage(200, 150)
	box := BoundingBox{X: 60, Y: 40, Width: 30, Height: 20}
	size := Size{Width: 100, Height: 80}

	cropped, origin, err := RandomCropWithBox(img, box, size, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("RandomCropWithBox failed: %v", err)
	}

	for _, p := range []image.Point{{X: 0, Y: 0}, {X: 50, Y: 40}, {X: 99, Y: 79}} {
		got := cropped.NRGBAAt(p.X, p.Y)
		want := img.NRGBAAt(origin.X+p.X, origin.Y+p.Y)
		if got != want {
			t.Errorf("pixel (%d,%d): got %v, want %v", p.X, p.Y, got, want)
		}
	}
}

func TestRandomCropWithBox_Degenerate(t *testing.T) {
	// Image exactly the crop size: the only valid corner is (0,0).
	img := gradientImage(100, 80)
	box := BoundingBox{X: 10, Y: 10, Width: 30, Height: 20}
	size := Size{Width: 100, Height: 80}

	_, origin, err := RandomCropWithBox(img, box, size, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("RandomCropWithBox failed: %v", err)
	}
	if origin != image.Pt(0, 0) {
		t.Errorf("origin: got %v, want (0,0)", origin)
	}
}

func TestRandomCropWithBox_Errors(t *testing.T) {
	img := gradientImage(200, 150)

	tests := []struct {
		name string
		box  BoundingBox
		size Size
		want error
	}{
		{
			"zero crop width",
			BoundingBox{X: 10, Y: 10, Width: 5, Height: 5},
			Size{Width: 0, Height: 50},
			ErrInvalidParameter,
		},
		{
			"negative crop height",
			BoundingBox{X: 10, Y: 10, Width: 5, Height: 5},
			Size{Width: 50, Height: -1},
			ErrInvalidParameter,
		},
		{
			"zero box size",
			BoundingBox{X: 10, Y: 10, Width: 0, Height: 5},
			Size{Width: 50, Height: 50},
			ErrInvalidParameter,
		},
		{
			"box negative origin",
			BoundingBox{X: -1, Y: 10, Width: 5, Height: 5},
			Size{Width: 50, Height: 50},
			ErrOutOfBounds,
		},
		{
			"box past right edge",
			BoundingBox{X: 198, Y: 10, Width: 5, Height: 5},
			Size{Width: 50, Height: 50},
			ErrOutOfBounds,
		},
		{
			"box past bottom edge",
			BoundingBox{X: 10, Y: 148, Width: 5, Height: 5},
			Size{Width: 50, Height: 50},
			ErrOutOfBounds,
		},
		{
			"box wider than crop",
			BoundingBox{X: 10, Y: 10, Width: 60, Height: 5},
			Size{Width: 50, Height: 50},
			ErrCropTooSmall,
		},
		{
			"box taller than crop",
			BoundingBox{X: 10, Y: 10, Width: 5, Height: 60},
			Size{Width: 50, Height: 50},
			ErrCropTooSmall,
		},
		{
			"crop wider than image",
			BoundingBox{X: 10, Y: 10, Width: 5, Height: 5},
			Size{Width: 300, Height: 50},
			ErrNoValidRegion,
		},
		{
			"crop taller than image",
			BoundingBox{X: 10, Y: 10, Width: 5, Height: 5},
			Size{Width: 50, Height: 300},
			ErrNoValidRegion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := RandomCropWithBox(img, tt.box, tt.size, rand.New(rand.NewSource(1)))
			if err == nil {
				t.Fatal("RandomCropWithBox should fail")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error %v is not %v", err, tt.want)
			}
		})
	}
}

func TestRandomCropWithBox_NilRand(t *testing.T) {
	img := gradientImage(200, 150)
	box := BoundingBox{X: 60, Y: 40, Width: 30, Height: 20}

	cropped, _, err := RandomCropWithBox(img, box, Size{Width: 100, Height: 80}, nil)
	if err != nil {
		t.Fatalf("RandomCropWithBox with nil rng failed: %v", err)
	}
	if cropped.Bounds().Dx() != 100 || cropped.Bounds().Dy() != 80 {
		t.Errorf("crop dimensions: got %dx%d, want 100x80",
			cropped.Bounds().Dx(), cropped.Bounds().Dy())
	}
}
