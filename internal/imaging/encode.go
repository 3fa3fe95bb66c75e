package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/blurhash-mcp/internal/blurhash"
)

// EncodeOptions controls how an image is turned into a blurhash.
type EncodeOptions struct {
	// XComponents and YComponents set the component grid, each in 1..9.
	XComponents int
	YComponents int

	// Region restricts encoding to part of the image. Nil encodes it all.
	Region *Region

	// MaxDimension downsamples the (cropped) image so neither side exceeds
	// it before the transform runs. 0 disables downsampling.
	MaxDimension int

	// Workers splits the transform by row bands. Values <= 1 stream pixels
	// straight from the image without copying it.
	Workers int
}

// EncodeResult is the outcome of EncodeImage.
type EncodeResult struct {
	Blurhash      string      `json:"blurhash"`
	XComponents   int         `json:"x_components"`
	YComponents   int         `json:"y_components"`
	SourceWidth   int         `json:"source_width"`
	SourceHeight  int         `json:"source_height"`
	EncodedWidth  int         `json:"encoded_width"`
	EncodedHeight int         `json:"encoded_height"`
	AverageColor  ColorResult `json:"average_color"`
}

// EncodeImage computes the blurhash of img.
//
// The optional region is cropped first, then the image is box-filtered down
// to MaxDimension. Downsampling changes the hash only slightly because the
// transform keeps at most 9 frequencies per axis.
//
// # Errors
//
//   - Returns error if the region is empty or outside the image
//   - Returns blurhash.ErrInvalidComponents for a grid outside 1..9
func EncodeImage(img image.Image, opts EncodeOptions) (*EncodeResult, error) {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	if opts.Region != nil {
		cropped, err := CropRegion(img, *opts.Region)
		if err != nil {
			return nil, err
		}
		img = cropped
	}

	if opts.MaxDimension > 0 {
		b := img.Bounds()
		if b.Dx() > opts.MaxDimension || b.Dy() > opts.MaxDimension {
			img = imaging.Fit(img, opts.MaxDimension, opts.MaxDimension, imaging.Box)
		}
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var (
		r   *blurhash.DCTResult
		err error
	)
	if opts.Workers > 1 {
		buf := ToPixels(img)
		r, err = blurhash.ComputeDCTParallel(buf.Pix, w, h, opts.XComponents, opts.YComponents, opts.Workers)
	} else {
		r, err = blurhash.ComputeDCTSeq(PixelSeq(img), w, h, opts.XComponents, opts.YComponents)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodeResult{
		Blurhash:      r.Blurhash(),
		XComponents:   r.XComponents(),
		YComponents:   r.YComponents(),
		SourceWidth:   srcW,
		SourceHeight:  srcH,
		EncodedWidth:  w,
		EncodedHeight: h,
		AverageColor:  ColorFromLinear(blurhash.LinearColor(r.DC())),
	}, nil
}
