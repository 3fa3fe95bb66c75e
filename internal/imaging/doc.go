// Package imaging connects decoded images to the blurhash transform.
//
// It loads and caches source images, selects a region of them, downsamples
// large inputs, feeds their pixels to package blurhash, and renders decoded
// placeholders back to PNG or lossless WebP. Colors that leave this package (such as the
// average color of an encoded image) are reported as hex, 8-bit RGB, HSL and
// linear-light triples.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner. For
// regions, (x1,y1) is inclusive and (x2,y2) is exclusive.
//
// # Pixel Order
//
// Pixels are always handed to the transform row by row, with x varying
// fastest. PixelSeq streams them straight from the image; ToPixels copies
// them into a flat buffer for the parallel transform.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Everything else is stateless and
// may be called concurrently as long as the images passed in are not being
// modified.
package imaging
