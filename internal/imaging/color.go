package imaging

import (
	"strings"

	"github.com/ironsheep/blurhash-mcp/internal/blurhash"
	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit sRGB components (0-255).
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult describes one color in the forms clients usually want.
//
// Linear keeps the channel values the blurhash math works with; the other
// fields are derived from the 8-bit sRGB conversion of those values, so Hex
// and RGB always agree with what a blurhash DC field stores.
type ColorResult struct {
	Hex    string     `json:"hex"` // "#RRGGBB"
	RGB    RGBColor   `json:"rgb"`
	HSL    HSLColor   `json:"hsl"`
	Linear [3]float32 `json:"linear"`
}

// ColorFromLinear converts a linear-light color (such as a DC factor) into
// a ColorResult. Channels are clamped to [0, 1].
func ColorFromLinear(c blurhash.LinearColor) ColorResult {
	rgb := RGBColor{
		R: blurhash.LinearToSRGB(c[0]),
		G: blurhash.LinearToSRGB(c[1]),
		B: blurhash.LinearToSRGB(c[2]),
	}

	cf := colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}
	h, s, l := cf.Hsl()

	return ColorResult{
		Hex:    strings.ToUpper(cf.Hex()),
		RGB:    rgb,
		HSL:    HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
		Linear: [3]float32(c),
	}
}
