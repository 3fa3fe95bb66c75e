package blurhash

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a blurhash is empty or its length
	// does not match the component grid announced by its header.
	ErrInvalidLength = errors.New("blurhash: length does not match header")

	// ErrInvalidPunch is returned when the punch passed to Decode is not
	// strictly positive.
	ErrInvalidPunch = errors.New("blurhash: punch must be greater than zero")

	// ErrUnsupportedMode is returned when a decoded header describes a grid
	// larger than 9x9.
	ErrUnsupportedMode = errors.New("blurhash: component grid larger than 9x9")

	// ErrBadFormat is matched by every *FormatError.
	ErrBadFormat = errors.New("blurhash: bad base83 field")

	// ErrInvalidComponents is returned when a component count is outside 1..9.
	ErrInvalidComponents = errors.New("blurhash: components must be between 1 and 9")

	// ErrInvalidDimensions is returned when an image width or height is not positive.
	ErrInvalidDimensions = errors.New("blurhash: image dimensions must be positive")

	// ErrShortPixels is returned when a pixel slice holds fewer than
	// width*height pixels.
	ErrShortPixels = errors.New("blurhash: fewer pixels than width*height")
)

// FormatError reports a base83 failure inside one field of a blurhash.
//
// It unwraps to the base83 error (base83.ErrInvalidChar or base83.ErrOverflow)
// and also matches ErrBadFormat.
type FormatError struct {
	Field  string // "header", "max_ac", "dc" or "ac"
	Offset int    // byte offset of the field in the blurhash
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("blurhash: bad %s field at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrBadFormat) hold for any FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrBadFormat
}

func checkComponents(xComponents, yComponents int) error {
	if xComponents < 1 || xComponents > MaxComponents || yComponents < 1 || yComponents > MaxComponents {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidComponents, xComponents, yComponents)
	}
	return nil
}
