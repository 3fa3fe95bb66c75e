package imaging

import (
	"image"
	"image/color"
	"iter"

	"github.com/anthonynsimon/bild/clone"
	"github.com/ironsheep/blurhash-mcp/internal/blurhash"
)

// PixelBuffer is an image flattened to row-major 8-bit sRGB pixels.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []blurhash.RGB
}

// ToPixels copies img into a PixelBuffer.
//
// Any image type is first normalized to *image.RGBA, so paletted, gray and
// YCbCr images are handled alike. Alpha is dropped after premultiplication.
func ToPixels(img image.Image) *PixelBuffer {
	rgba := clone.AsRGBA(img)
	bounds := rgba.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	pix := make([]blurhash.RGB, 0, w*h)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		off := rgba.PixOffset(bounds.Min.X, y)
		row := rgba.Pix[off : off+w*4]
		for i := 0; i < len(row); i += 4 {
			pix = append(pix, blurhash.RGB{row[i], row[i+1], row[i+2]})
		}
	}

	return &PixelBuffer{Width: w, Height: h, Pix: pix}
}

// PixelSeq walks img row by row without copying it.
func PixelSeq(img image.Image) iter.Seq[blurhash.RGB] {
	at := fastAccessor(img)
	bounds := img.Bounds()

	return func(yield func(blurhash.RGB) bool) {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if !yield(at(x, y)) {
					return
				}
			}
		}
	}
}

// fastAccessor avoids the color.Color interface allocation of img.At for
// the image types decoders usually return.
func fastAccessor(img image.Image) func(x, y int) blurhash.RGB {
	switch img := img.(type) {
	case *image.RGBA:
		return func(x, y int) blurhash.RGB {
			c := img.RGBAAt(x, y)
			return blurhash.RGB{c.R, c.G, c.B}
		}
	case *image.NRGBA:
		return func(x, y int) blurhash.RGB {
			return rgbOf(img.NRGBAAt(x, y))
		}
	case *image.YCbCr:
		return func(x, y int) blurhash.RGB {
			return rgbOf(img.YCbCrAt(x, y))
		}
	default:
		return func(x, y int) blurhash.RGB {
			return rgbOf(img.At(x, y))
		}
	}
}

func rgbOf(c color.Color) blurhash.RGB {
	r, g, b, _ := c.RGBA()
	return blurhash.RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}
