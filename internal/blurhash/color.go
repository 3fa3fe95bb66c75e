package blurhash

import "math"

// LinearColor is a color in linear light, one channel per R, G and B,
// each nominally in [0, 1].
type LinearColor [3]float32

// Factor is the weight of one basis function per channel. Factors are not
// clamped: AC factors are routinely negative.
type Factor [3]float32

// Pixel is a color value that can be converted to linear light.
//
// The DCT entry points are generic over Pixel so the conversion is bound to
// the concrete pixel type at compile time rather than through an interface
// value in the per-pixel loop.
type Pixel interface {
	Linear() LinearColor
}

// RGB is an 8-bit sRGB pixel.
type RGB [3]uint8

// Linear implements Pixel.
func (p RGB) Linear() LinearColor {
	return LinearColor{SRGBToLinear(p[0]), SRGBToLinear(p[1]), SRGBToLinear(p[2])}
}

// RGBA is an 8-bit sRGB pixel with alpha. Alpha does not take part in the
// transform.
type RGBA [4]uint8

// Linear implements Pixel.
func (p RGBA) Linear() LinearColor {
	return LinearColor{SRGBToLinear(p[0]), SRGBToLinear(p[1]), SRGBToLinear(p[2])}
}

// Packed is an sRGB pixel packed as 0xAARRGGBB. Alpha is ignored.
type Packed uint32

// Linear implements Pixel.
func (p Packed) Linear() LinearColor {
	return LinearColor{
		SRGBToLinear(uint8(p >> 16)),
		SRGBToLinear(uint8(p >> 8)),
		SRGBToLinear(uint8(p)),
	}
}

// Linear implements Pixel; a LinearColor is already linear.
func (c LinearColor) Linear() LinearColor {
	return c
}

// toLinear caches SRGBToLinear for every byte value.
var toLinear = func() (t [256]float32) {
	for i := range t {
		v := float32(i) / 255
		if v <= 0.04045 {
			t[i] = v / 12.92
		} else {
			t[i] = float32(math.Pow(float64((v+0.055)/1.055), 2.4))
		}
	}
	return t
}()

// SRGBToLinear converts one 8-bit sRGB channel to linear light.
func SRGBToLinear(b uint8) float32 {
	return toLinear[b]
}

const invGamma float32 = 1 / 2.4

// LinearToSRGB converts one linear channel to 8-bit sRGB. The input is
// clamped to [0, 1] first.
func LinearToSRGB(l float32) uint8 {
	l = clamp01(l)
	if l <= 0.0031308 {
		return uint8(floor32(float32(l*12.92*255) + 0.5))
	}
	p := float32(math.Pow(float64(l), float64(invGamma)))
	return uint8(floor32(float32((float32(1.055*p)-0.055)*255) + 0.5))
}

// SignPow raises |x| to exp and restores the sign of x.
func SignPow(x, exp float32) float32 {
	return float32(math.Copysign(math.Pow(math.Abs(float64(x)), float64(exp)), float64(x)))
}

// EncodeDC packs the sRGB form of a DC factor as 0xRRGGBB.
func EncodeDC(dc Factor) uint32 {
	r := uint32(LinearToSRGB(dc[0]))
	g := uint32(LinearToSRGB(dc[1]))
	b := uint32(LinearToSRGB(dc[2]))
	return r<<16 | g<<8 | b
}

// DecodeDC unpacks a 0xRRGGBB value into a linear DC factor.
func DecodeDC(n uint32) Factor {
	return Factor{
		SRGBToLinear(uint8(n >> 16)),
		SRGBToLinear(uint8(n >> 8)),
		SRGBToLinear(uint8(n)),
	}
}

// EncodeAC quantizes each channel of ac/acMax to 0..18 on a square-root
// scale and packs the three quanta as r*19*19 + g*19 + b (0..6858).
func EncodeAC(ac Factor, acMax float32) uint32 {
	return quantAC(ac[0], acMax)*19*19 + quantAC(ac[1], acMax)*19 + quantAC(ac[2], acMax)
}

func quantAC(v, acMax float32) uint32 {
	q := floor32(float32(SignPow(v/acMax, 0.5)*9) + 9.5)
	return uint32(clamp(q, 0, 18))
}

// DecodeAC reverses EncodeAC, scaling the result by acMax.
func DecodeAC(n uint32, acMax float32) Factor {
	qr := (n / (19 * 19)) % 19
	qg := (n / 19) % 19
	qb := n % 19

	return Factor{
		dequantAC(qr, acMax),
		dequantAC(qg, acMax),
		dequantAC(qb, acMax),
	}
}

func dequantAC(q uint32, acMax float32) float32 {
	return SignPow((float32(q)-9)/9, 2) * acMax
}

func floor32(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float32) float32 {
	return clamp(v, 0, 1)
}
