package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
	"github.com/ironsheep/blurhash-mcp/internal/blurhash"
)

// MaxRenderDimension bounds each side of a rendered placeholder, after
// scaling.
const MaxRenderDimension = 2048

// Output formats for rendered placeholders.
const (
	FormatPNG  = "png"
	FormatWebP = "webp" // lossless
)

// RenderResult contains a decoded placeholder as an encoded image.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Render evaluates r at width x height pixels into an opaque image.
func Render(r *blurhash.DCTResult, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, p := range r.ToRGBA8(width, height) {
		copy(img.Pix[i*4:i*4+4], p[:])
	}
	return img
}

// RenderScaled renders r at width x height and enlarges it by scale with
// linear filtering, which is much cheaper than evaluating every pixel of a
// large placeholder and looks the same. A scale below 1 counts as 1.
//
// Returns an error if the size is not positive or the scaled size exceeds
// MaxRenderDimension on either side.
func RenderScaled(r *blurhash.DCTResult, width, height, scale int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid render size %dx%d", width, height)
	}
	if scale < 1 {
		scale = 1
	}
	// Compare by division so huge arguments cannot wrap around.
	if width > MaxRenderDimension/scale || height > MaxRenderDimension/scale {
		return nil, fmt.Errorf("render size %dx%d at scale %d exceeds %d pixels per side",
			width, height, scale, MaxRenderDimension)
	}

	var out image.Image = Render(r, width, height)
	if scale > 1 {
		out = imaging.Resize(out, width*scale, height*scale, imaging.Linear)
	}
	return out, nil
}

// RenderPNG renders r like RenderScaled and encodes it as a base64 PNG.
func RenderPNG(r *blurhash.DCTResult, width, height, scale int) (*RenderResult, error) {
	return RenderEncoded(r, width, height, scale, FormatPNG)
}

// RenderEncoded renders r like RenderScaled and encodes it as base64 in
// the given format ("png" or "webp"; empty means png).
func RenderEncoded(r *blurhash.DCTResult, width, height, scale int, format string) (*RenderResult, error) {
	out, err := RenderScaled(r, width, height, scale)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	mimeType, err := WriteImage(&buf, out, format)
	if err != nil {
		return nil, err
	}

	return &RenderResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    mimeType,
	}, nil
}

// WriteImage encodes img to w as PNG or lossless WebP and returns the MIME
// type written. An empty format means PNG.
func WriteImage(w io.Writer, img image.Image, format string) (string, error) {
	switch format {
	case "", FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return "", fmt.Errorf("failed to encode placeholder: %w", err)
		}
		return "image/png", nil
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return "", fmt.Errorf("failed to encode placeholder: %w", err)
		}
		return "image/webp", nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
