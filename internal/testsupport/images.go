package testsupport

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// WriteJPEG writes a width x height JPEG test image to path.
func WriteJPEG(t testing.TB, path string, width, height int) {
	t.Helper()
	writeImage(t, path, width, height, func(f *os.File, img image.Image) error {
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 85})
	})
}

// WritePNG writes a width x height PNG test image to path.
func WritePNG(t testing.TB, path string, width, height int) {
	t.Helper()
	writeImage(t, path, width, height, func(f *os.File, img image.Image) error {
		return png.Encode(f, img)
	})
}

func writeImage(t testing.TB, path string, width, height int, encode func(*os.File, image.Image) error) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create image dir: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create image file: %v", err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatalf("encode image: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close image file: %v", err)
	}
}

// WriteCorruptImage writes a file that no image decoder will accept.
func WriteCorruptImage(t testing.TB, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create image dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("not an image at all"), 0o644); err != nil {
		t.Fatalf("write corrupt image: %v", err)
	}
}
