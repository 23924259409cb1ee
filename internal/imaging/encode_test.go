package imaging

import (
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, A: 255})
		}
	}

	encoded, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}

	roundTrip, err := png.Decode(strings.NewReader(string(decoded)))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if roundTrip.Bounds().Dx() != 20 || roundTrip.Bounds().Dy() != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10",
			roundTrip.Bounds().Dx(), roundTrip.Bounds().Dy())
	}
}

func TestSavePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	path := filepath.Join(t.TempDir(), "out.png")

	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("saved file is not a valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 8 {
		t.Errorf("width: got %d, want 8", decoded.Bounds().Dx())
	}
}

func TestSavePNG_BadDir(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	if err := SavePNG(img, "/nonexistent-dir/out.png"); err == nil {
		t.Error("SavePNG should fail for a missing directory")
	}
}
