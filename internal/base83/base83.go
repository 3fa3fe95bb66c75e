package base83

import (
	"errors"
	"math"
)

// Alphabet is the ordered set of digits: index i is the symbol for value i.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz#$%*+,-.:;=?@[]^_{|}~"

// MaxWidth is the number of digits needed for any uint32 (83^5 < 2^32 <= 83^6).
const MaxWidth = 6

var (
	// ErrInvalidChar is returned when a byte outside the alphabet is decoded.
	ErrInvalidChar = errors.New("base83: invalid character")

	// ErrOverflow is returned when the decoded value does not fit in a uint32.
	ErrOverflow = errors.New("base83: value overflows uint32")
)

// digits maps a byte to its digit value. Bytes outside the alphabet map to 0;
// use Valid to tell them apart from '0'.
var digits = func() (t [256]uint8) {
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = uint8(i)
	}
	return t
}()

// Valid reports whether c is one of the 83 alphabet symbols.
func Valid(c byte) bool {
	return c == Alphabet[0] || digits[c] != 0
}

// Encode returns the shortest base83 representation of n, most significant
// digit first. Zero encodes to "0".
func Encode(n uint32) string {
	var buf [MaxWidth]byte
	return string(AppendEncode(buf[:0], n))
}

// AppendEncode appends the shortest base83 representation of n to dst.
func AppendEncode(dst []byte, n uint32) []byte {
	if n == 0 {
		return append(dst, Alphabet[0])
	}

	var stack [MaxWidth]byte
	i := 0
	for n > 0 {
		stack[i] = Alphabet[n%83]
		n /= 83
		i++
	}
	for i > 0 {
		i--
		dst = append(dst, stack[i])
	}
	return dst
}

// EncodeFixed returns exactly width digits of n. Higher digits that do not
// fit are dropped. It panics if width is outside 0..MaxWidth.
func EncodeFixed(n uint32, width int) string {
	var buf [MaxWidth]byte
	return string(AppendFixed(buf[:0], n, width))
}

// AppendFixed appends exactly width digits of n to dst.
// It panics if width is outside 0..MaxWidth.
func AppendFixed(dst []byte, n uint32, width int) []byte {
	if width < 0 || width > MaxWidth {
		panic("base83: fixed width out of range")
	}

	var stack [MaxWidth]byte
	for i := 0; i < width; i++ {
		stack[i] = Alphabet[n%83]
		n /= 83
	}
	for i := width - 1; i >= 0; i-- {
		dst = append(dst, stack[i])
	}
	return dst
}

// Decode parses s as a base83 number, most significant digit first.
//
// Returns ErrInvalidChar if any byte is outside the alphabet and ErrOverflow
// if the value exceeds math.MaxUint32. The first five digits can never
// overflow, so only later digits pay for the checked arithmetic.
// Leading zeros are accepted. The empty string decodes to 0.
func Decode(s string) (uint32, error) {
	var n uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !Valid(c) {
			return 0, ErrInvalidChar
		}
		d := uint32(digits[c])
		if i < MaxWidth-1 {
			n = n*83 + d
			continue
		}
		if n > (math.MaxUint32-d)/83 {
			return 0, ErrOverflow
		}
		n = n*83 + d
	}
	return n, nil
}

// DecodeASCII is Decode without validation. The caller must have checked that
// every byte of s belongs to the alphabet; otherwise the result is
// meaningless, but it never panics.
func DecodeASCII(s string) uint32 {
	var n uint32
	for i := 0; i < len(s); i++ {
		n = n*83 + uint32(digits[s[i]])
	}
	return n
}
