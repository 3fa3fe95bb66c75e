package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/blurhash-mcp/internal/blurhash"
)

// sampleRGBA is the 4x4 image with a well-known 3x3 blurhash.
func sampleRGBA() *image.RGBA {
	const (
		k = 0
		w = 255
	)
	rows := [4][4]color.RGBA{
		{{w, k, k, w}, {k, k, k, w}, {w, w, w, w}, {k, k, k, w}},
		{{k, k, k, w}, {k, k, k, w}, {w, w, w, w}, {k, k, k, w}},
		{{w, w, w, w}, {w, w, w, w}, {k, w, k, w}, {w, w, w, w}},
		{{k, k, k, w}, {k, k, k, w}, {w, w, w, w}, {k, k, k, w}},
	}

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y, row := range rows {
		for x, c := range row {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestEncodeImage_KnownHash(t *testing.T) {
	result, err := EncodeImage(sampleRGBA(), EncodeOptions{XComponents: 3, YComponents: 3})
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	if result.Blurhash != "KzKUZY=|HZ=|$5e9HZe9IS" {
		t.Errorf("Blurhash: got %q", result.Blurhash)
	}
	if result.XComponents != 3 || result.YComponents != 3 {
		t.Errorf("components: got %dx%d, want 3x3", result.XComponents, result.YComponents)
	}
	if result.EncodedWidth != 4 || result.EncodedHeight != 4 {
		t.Errorf("encoded size: got %dx%d, want 4x4", result.EncodedWidth, result.EncodedHeight)
	}
}

func TestEncodeImage_Workers(t *testing.T) {
	img := quadrantImage(8, 8)

	serial, err := EncodeImage(img, EncodeOptions{XComponents: 4, YComponents: 3})
	if err != nil {
		t.Fatalf("serial EncodeImage failed: %v", err)
	}
	parallel, err := EncodeImage(img, EncodeOptions{XComponents: 4, YComponents: 3, Workers: 4})
	if err != nil {
		t.Fatalf("parallel EncodeImage failed: %v", err)
	}

	if len(parallel.Blurhash) != len(serial.Blurhash) {
		t.Errorf("length: got %d, want %d", len(parallel.Blurhash), len(serial.Blurhash))
	}
	// Each quadrant is half on in every channel, so the average is exactly
	// 0.5 in linear light whatever the summation order.
	if serial.AverageColor.Hex != "#BCBCBC" || parallel.AverageColor.Hex != "#BCBCBC" {
		t.Errorf("average: serial %s, parallel %s, want #BCBCBC",
			serial.AverageColor.Hex, parallel.AverageColor.Hex)
	}
}

func TestEncodeImage_Region(t *testing.T) {
	img := quadrantImage(40, 40)
	region := Region{0, 0, 20, 20}

	result, err := EncodeImage(img, EncodeOptions{XComponents: 4, YComponents: 4, Region: &region})
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	if result.SourceWidth != 40 || result.SourceHeight != 40 {
		t.Errorf("source size: got %dx%d, want 40x40", result.SourceWidth, result.SourceHeight)
	}
	if result.EncodedWidth != 20 || result.EncodedHeight != 20 {
		t.Errorf("encoded size: got %dx%d, want 20x20", result.EncodedWidth, result.EncodedHeight)
	}
	if result.AverageColor.Hex != "#FF0000" {
		t.Errorf("average: got %s, want #FF0000", result.AverageColor.Hex)
	}
}

func TestEncodeImage_MaxDimension(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))

	result, err := EncodeImage(img, EncodeOptions{XComponents: 4, YComponents: 3, MaxDimension: 10})
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}
	if result.EncodedWidth != 10 || result.EncodedHeight != 5 {
		t.Errorf("encoded size: got %dx%d, want 10x5", result.EncodedWidth, result.EncodedHeight)
	}
	if len(result.Blurhash) != blurhash.EncodedLen(4, 3) {
		t.Errorf("length: got %d", len(result.Blurhash))
	}

	// Small images are left alone.
	result, err = EncodeImage(img, EncodeOptions{XComponents: 4, YComponents: 3, MaxDimension: 200})
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}
	if result.EncodedWidth != 100 || result.EncodedHeight != 50 {
		t.Errorf("encoded size: got %dx%d, want 100x50", result.EncodedWidth, result.EncodedHeight)
	}
}

func TestEncodeImage_Errors(t *testing.T) {
	img := quadrantImage(10, 10)

	if _, err := EncodeImage(img, EncodeOptions{XComponents: 0, YComponents: 3}); !errors.Is(err, blurhash.ErrInvalidComponents) {
		t.Errorf("zero components: got %v, want ErrInvalidComponents", err)
	}
	if _, err := EncodeImage(img, EncodeOptions{XComponents: 4, YComponents: 10, Workers: 2}); !errors.Is(err, blurhash.ErrInvalidComponents) {
		t.Errorf("ten components: got %v, want ErrInvalidComponents", err)
	}

	region := Region{5, 5, 20, 20}
	if _, err := EncodeImage(img, EncodeOptions{XComponents: 4, YComponents: 3, Region: &region}); err == nil {
		t.Error("out-of-bounds region should fail")
	}
}
