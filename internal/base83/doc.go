// Package base83 implements the positional numeral system used by blurhash
// strings.
//
// Values are unsigned 32-bit integers written most significant digit first
// over an alphabet of 83 printable ASCII symbols:
//
//	0-9 A-Z a-z # $ % * + , - . : ; = ? @ [ ] ^ _ { | } ~
//
// Six digits are enough for any uint32, so Decode only checks for overflow
// once the sixth digit is reached.
//
// # Fixed Width
//
// Blurhash fields have fixed widths (1, 2 and 4 digits). EncodeFixed and
// AppendFixed write exactly the requested number of digits, padding with
// leading '0' symbols and dropping digits that do not fit.
package base83
