package blurhash

import (
	"errors"
	"fmt"
)

// DCTResult holds the factors of a forward transform, or of a decoded
// blurhash, for a grid of XComponents x YComponents basis functions.
//
// Factors are stored row-major with the x component varying fastest, so the
// factor for (cx, cy) is at index cy*XComponents()+cx. Index 0 is the DC
// term (average color); the rest are AC terms.
//
// A DCTResult is immutable; accessors return copies.
type DCTResult struct {
	acMax       float32
	factors     []Factor
	xComponents int
	yComponents int
}

// NewDCTResult builds a DCTResult from raw factors. The factors are copied.
//
// It fails with ErrInvalidComponents if either count is outside 1..9, and
// with an error if len(factors) != xComponents*yComponents or acMax is 0.
func NewDCTResult(acMax float32, factors []Factor, xComponents, yComponents int) (*DCTResult, error) {
	if err := checkComponents(xComponents, yComponents); err != nil {
		return nil, err
	}
	if len(factors) != xComponents*yComponents {
		return nil, fmt.Errorf("blurhash: %d factors for a %dx%d grid", len(factors), xComponents, yComponents)
	}
	if acMax == 0 {
		return nil, errors.New("blurhash: ac max must not be zero")
	}

	return &DCTResult{
		acMax:       acMax,
		factors:     append([]Factor(nil), factors...),
		xComponents: xComponents,
		yComponents: yComponents,
	}, nil
}

// XComponents returns the number of basis functions along x.
func (r *DCTResult) XComponents() int { return r.xComponents }

// YComponents returns the number of basis functions along y.
func (r *DCTResult) YComponents() int { return r.yComponents }

// Dim returns (XComponents, YComponents).
func (r *DCTResult) Dim() (int, int) { return r.xComponents, r.yComponents }

// ACMax returns the largest absolute AC channel value. A computed result
// with no AC terms reports 1. A computed result whose AC terms are all zero
// reports math.SmallestNonzeroFloat32, not 0, so NewDCTResult and the AC
// quantizer never see a zero maximum. For a decoded blurhash it is the
// quantized maximum scaled by the punch.
func (r *DCTResult) ACMax() float32 { return r.acMax }

// Factors returns a copy of every factor, DC first.
func (r *DCTResult) Factors() []Factor {
	return append([]Factor(nil), r.factors...)
}

// DC returns the zero-frequency factor, the average color in linear light.
func (r *DCTResult) DC() Factor {
	return r.factors[0]
}

// ACs returns a copy of the AC factors (every factor but the DC term).
func (r *DCTResult) ACs() []Factor {
	return append([]Factor(nil), r.factors[1:]...)
}

// At returns the factor for component (cx, cy).
func (r *DCTResult) At(cx, cy int) Factor {
	return r.factors[cy*r.xComponents+cx]
}

// Blurhash encodes the result as a blurhash string.
func (r *DCTResult) Blurhash() string {
	return Encode(r)
}

// ColorAt evaluates the inverse transform at normalized coordinates x and y
// in [0, 1). Each channel is clamped to [0, 1].
func (r *DCTResult) ColorAt(x, y float32) LinearColor {
	col := inverseBasis(r.xComponents, r.yComponents, x, y, r.factors)
	col[0] = clamp01(col[0])
	col[1] = clamp01(col[1])
	col[2] = clamp01(col[2])
	return col
}

// Reconstruct renders r at width x height pixels, row-major, passing every
// clamped linear color through convert.
func Reconstruct[T any](r *DCTResult, width, height int, convert func(LinearColor) T) []T {
	if width <= 0 || height <= 0 {
		return nil
	}

	pixels := make([]T, 0, width*height)
	fw, fh := float32(width), float32(height)
	for y := 0; y < height; y++ {
		py := float32(y) / fh
		for x := 0; x < width; x++ {
			pixels = append(pixels, convert(r.ColorAt(float32(x)/fw, py)))
		}
	}
	return pixels
}

// ToLinear renders r in linear light.
func (r *DCTResult) ToLinear(width, height int) []LinearColor {
	return Reconstruct(r, width, height, func(c LinearColor) LinearColor { return c })
}

// ToRGB8 renders r as 8-bit sRGB pixels.
func (r *DCTResult) ToRGB8(width, height int) []RGB {
	return Reconstruct(r, width, height, func(c LinearColor) RGB {
		return RGB{LinearToSRGB(c[0]), LinearToSRGB(c[1]), LinearToSRGB(c[2])}
	})
}

// ToRGBA8 renders r as 8-bit sRGB pixels with alpha fixed at 255.
func (r *DCTResult) ToRGBA8(width, height int) []RGBA {
	return Reconstruct(r, width, height, func(c LinearColor) RGBA {
		return RGBA{LinearToSRGB(c[0]), LinearToSRGB(c[1]), LinearToSRGB(c[2]), 255}
	})
}

// ToPacked renders r as 0xAARRGGBB pixels with alpha fixed at 0xFF.
func (r *DCTResult) ToPacked(width, height int) []Packed {
	return Reconstruct(r, width, height, func(c LinearColor) Packed {
		return Packed(0xFF<<24 |
			uint32(LinearToSRGB(c[0]))<<16 |
			uint32(LinearToSRGB(c[1]))<<8 |
			uint32(LinearToSRGB(c[2])))
	})
}
