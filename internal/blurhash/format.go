package blurhash

import (
	"fmt"

	"github.com/ironsheep/blurhash-mcp/internal/base83"
)

// Field layout of a blurhash string.
const (
	headerOffset = 0
	maxACOffset  = 1
	dcOffset     = 2
	acOffset     = 6

	dcWidth = 4
	acWidth = 2
)

// EncodedLen returns the length of a blurhash for the given grid:
// 1 header + 1 max-AC + 4 DC + 2 per AC term.
func EncodedLen(xComponents, yComponents int) int {
	return acOffset + acWidth*(xComponents*yComponents-1)
}

// Encode writes r as a blurhash string.
//
// The max-AC digit is quantized first and every AC term is then encoded
// against the quantized maximum, which is the value Decode recovers.
func Encode(r *DCTResult) string {
	buf := make([]byte, 0, EncodedLen(r.xComponents, r.yComponents))
	return string(AppendEncode(buf, r))
}

// AppendEncode appends the blurhash of r to dst.
func AppendEncode(dst []byte, r *DCTResult) []byte {
	header := (r.xComponents - 1) + (r.yComponents-1)*9
	dst = base83.AppendFixed(dst, uint32(header), 1)

	acMax := r.acMax
	if len(r.factors) > 1 {
		q := clamp(floor32(float32(acMax*166)-0.5), 0, 82)
		dst = base83.AppendFixed(dst, uint32(q), 1)
		acMax = (q + 1) / 166
	} else {
		dst = base83.AppendFixed(dst, 0, 1)
	}

	dst = base83.AppendFixed(dst, EncodeDC(r.factors[0]), dcWidth)
	for _, ac := range r.factors[1:] {
		dst = base83.AppendFixed(dst, EncodeAC(ac, acMax), acWidth)
	}
	return dst
}

// EncodePixels transforms a row-major pixel slice and encodes it in one step.
func EncodePixels[P Pixel](pixels []P, width, height, xComponents, yComponents int) (string, error) {
	r, err := ComputeDCT(pixels, width, height, xComponents, yComponents)
	if err != nil {
		return "", err
	}
	return Encode(r), nil
}

// Components parses only the header of hash and returns its grid size.
//
// Errors:
//   - ErrInvalidLength if hash is empty
//   - *FormatError if the header is not a base83 digit
//   - ErrUnsupportedMode if the header describes more than 9 y components
func Components(hash string) (xComponents, yComponents int, err error) {
	if len(hash) == 0 {
		return 0, 0, ErrInvalidLength
	}

	total, err := decodeField(hash, "header", headerOffset, 1)
	if err != nil {
		return 0, 0, err
	}

	xComponents = int(total%9) + 1
	yComponents = int(total/9) + 1
	if xComponents > MaxComponents || yComponents > MaxComponents {
		return 0, 0, fmt.Errorf("%w: header %d gives %dx%d", ErrUnsupportedMode, total, xComponents, yComponents)
	}
	return xComponents, yComponents, nil
}

// Decode parses a blurhash into its factors.
//
// Parameters:
//   - hash: the blurhash string.
//   - punch: multiplier for the AC magnitude, must be > 0. Values above 1
//     increase the contrast of the reconstruction; 1 reproduces the encoder.
//
// Errors are checked in this order: ErrInvalidPunch, ErrInvalidLength for
// an empty string, header errors (see Components), ErrInvalidLength when
// the length does not match the header, then a *FormatError for the first
// field that is not valid base83.
func Decode(hash string, punch float32) (*DCTResult, error) {
	if !(punch > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidPunch, punch)
	}

	xComponents, yComponents, err := Components(hash)
	if err != nil {
		return nil, err
	}
	if want := EncodedLen(xComponents, yComponents); len(hash) != want {
		return nil, fmt.Errorf("%w: got %d, header needs %d", ErrInvalidLength, len(hash), want)
	}

	quantMax, err := decodeField(hash, "max_ac", maxACOffset, 1)
	if err != nil {
		return nil, err
	}
	acMax := float32(quantMax+1) / 166 * punch

	n := xComponents * yComponents
	factors := make([]Factor, n)

	dc, err := decodeField(hash, "dc", dcOffset, dcWidth)
	if err != nil {
		return nil, err
	}
	factors[0] = DecodeDC(dc)

	for i := 1; i < n; i++ {
		off := acOffset + (i-1)*acWidth
		ac, err := decodeField(hash, "ac", off, acWidth)
		if err != nil {
			return nil, err
		}
		factors[i] = DecodeAC(ac, acMax)
	}

	return &DCTResult{
		acMax:       acMax,
		factors:     factors,
		xComponents: xComponents,
		yComponents: yComponents,
	}, nil
}

func decodeField(hash, field string, offset, width int) (uint32, error) {
	v, err := base83.Decode(hash[offset : offset+width])
	if err != nil {
		return 0, &FormatError{Field: field, Offset: offset, Err: err}
	}
	return v, nil
}
