// Package blurhash encodes images into blurhash strings and decodes them back
// into approximate images.
//
// A blurhash captures the low-frequency content of an image: a forward
// Discrete Cosine Transform projects the pixels onto a small grid of cosine
// basis functions (1x1 up to 9x9), and the resulting factors are quantized
// and written with the base83 alphabet.
//
// # Pipeline
//
//	pixels --ComputeDCT--> *DCTResult --Encode--> "LlMF%n00%#MwS|WCWEM{R*bbWBbH"
//	"LlMF..." --Decode--> *DCTResult --Reconstruct/ToRGB8--> pixels
//
// # Pixel Types
//
// Any type with a Linear() LinearColor method can be transformed. RGB, RGBA
// and Packed cover the common 8-bit sRGB layouts; LinearColor itself is
// accepted for callers that already work in linear light. The transform
// functions are generic over the pixel type.
//
// # String Layout
//
//	offset  length   content
//	0       1        (x-1) + (y-1)*9
//	1       1        quantized maximum AC magnitude
//	2       4        DC color as 0xRRGGBB
//	6       2*(n-1)  AC factors, 19 levels per channel
//
// # Precision
//
// All arithmetic is single precision. Encoded strings match the reference
// blurhash encoders for the published test images.
//
// # Thread Safety
//
// Every function is pure apart from allocating its result, and a DCTResult
// is never modified after construction, so everything here is safe for
// concurrent use.
package blurhash
