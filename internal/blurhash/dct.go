package blurhash

import (
	"fmt"
	"iter"
	"math"
	"sync"
)

// MaxComponents is the largest number of components per axis a blurhash
// header can describe.
const MaxComponents = 9

const pi32 float32 = math.Pi

// ComputeDCT runs the forward transform over a row-major pixel slice.
//
// Parameters:
//   - pixels: at least width*height pixels, row by row. Extra pixels are ignored.
//   - width, height: image dimensions in pixels, both positive.
//   - xComponents, yComponents: basis functions per axis, each in 1..9.
//
// Returns:
//   - *DCTResult: normalized factors, index 0 is the DC term, then row-major
//     with the x component varying fastest.
//   - error: ErrInvalidComponents, ErrInvalidDimensions or ErrShortPixels.
//     Nothing is computed when the input is rejected.
func ComputeDCT[P Pixel](pixels []P, width, height, xComponents, yComponents int) (*DCTResult, error) {
	if err := checkInput(width, height, xComponents, yComponents); err != nil {
		return nil, err
	}
	total := width * height
	if len(pixels) < total {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrShortPixels, len(pixels), total)
	}

	factors := make([]Factor, xComponents*yComponents)
	accumulateRows(pixels, width, height, 0, height, xComponents, yComponents, factors)
	return newNormalized(factors, total, xComponents, yComponents), nil
}

// ComputeDCTSeq runs the forward transform over a one-shot pixel sequence in
// row-major order.
//
// The sequence is consumed for exactly width*height pixels and stopped
// afterwards. A sequence that ends early is not detected: the missing pixels
// count as black and the result comes out under-normalized.
func ComputeDCTSeq[P Pixel](pixels iter.Seq[P], width, height, xComponents, yComponents int) (*DCTResult, error) {
	if err := checkInput(width, height, xComponents, yComponents); err != nil {
		return nil, err
	}
	total := width * height

	factors := make([]Factor, xComponents*yComponents)
	fw, fh := float32(width), float32(height)
	i := 0
	for p := range pixels {
		x, y := i%width, i/width
		multiplyBasis(xComponents, yComponents, float32(x)/fw, float32(y)/fh, p.Linear(), factors)
		i++
		if i == total {
			break
		}
	}
	return newNormalized(factors, total, xComponents, yComponents), nil
}

// ComputeDCTParallel is ComputeDCT split across workers by bands of rows.
//
// Each worker sums into its own factors; the partial sums are added together
// and normalized once. Results match ComputeDCT up to float32 summation
// order. workers <= 1 runs ComputeDCT directly.
func ComputeDCTParallel[P Pixel](pixels []P, width, height, xComponents, yComponents, workers int) (*DCTResult, error) {
	if workers > height {
		workers = height
	}
	if workers <= 1 {
		return ComputeDCT(pixels, width, height, xComponents, yComponents)
	}
	if err := checkInput(width, height, xComponents, yComponents); err != nil {
		return nil, err
	}
	total := width * height
	if len(pixels) < total {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrShortPixels, len(pixels), total)
	}

	n := xComponents * yComponents
	band := (height + workers - 1) / workers
	partials := make([][]Factor, 0, workers)

	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += band {
		y1 := min(y0+band, height)
		part := make([]Factor, n)
		partials = append(partials, part)

		wg.Add(1)
		go func() {
			defer wg.Done()
			accumulateRows(pixels, width, height, y0, y1, xComponents, yComponents, part)
		}()
	}
	wg.Wait()

	factors := make([]Factor, n)
	for _, part := range partials {
		for i := range part {
			factors[i][0] += part[i][0]
			factors[i][1] += part[i][1]
			factors[i][2] += part[i][2]
		}
	}
	return newNormalized(factors, total, xComponents, yComponents), nil
}

func checkInput(width, height, xComponents, yComponents int) error {
	if err := checkComponents(xComponents, yComponents); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// accumulateRows adds rows [y0, y1) of the image into factors.
func accumulateRows[P Pixel](pixels []P, width, height, y0, y1, xComponents, yComponents int, factors []Factor) {
	fw, fh := float32(width), float32(height)
	for y := y0; y < y1; y++ {
		py := float32(y) / fh
		row := pixels[y*width : y*width+width]
		for x, p := range row {
			multiplyBasis(xComponents, yComponents, float32(x)/fw, py, p.Linear(), factors)
		}
	}
}

// multiplyBasis adds the contribution of one pixel at normalized position
// (x, y) to every factor.
func multiplyBasis(xComponents, yComponents int, x, y float32, col LinearColor, factors []Factor) {
	var cosX [MaxComponents]float32
	for cx := 0; cx < xComponents; cx++ {
		cosX[cx] = cosBasis(cx, x)
	}

	for cy := 0; cy < yComponents; cy++ {
		baseY := cosBasis(cy, y)
		row := factors[cy*xComponents : cy*xComponents+xComponents]
		for cx := range row {
			basis := float32(baseY * cosX[cx])
			f := &row[cx]
			f[0] += float32(basis * col[0])
			f[1] += float32(basis * col[1])
			f[2] += float32(basis * col[2])
		}
	}
}

// inverseBasis evaluates the inverse transform at normalized position (x, y).
// The result is not clamped.
func inverseBasis(xComponents, yComponents int, x, y float32, factors []Factor) LinearColor {
	var cosX [MaxComponents]float32
	for cx := 0; cx < xComponents; cx++ {
		cosX[cx] = cosBasis(cx, x)
	}

	var col LinearColor
	for cy := 0; cy < yComponents; cy++ {
		baseY := cosBasis(cy, y)
		row := factors[cy*xComponents : cy*xComponents+xComponents]
		for cx, f := range row {
			basis := float32(baseY * cosX[cx])
			col[0] += float32(basis * f[0])
			col[1] += float32(basis * f[1])
			col[2] += float32(basis * f[2])
		}
	}
	return col
}

func cosBasis(component int, p float32) float32 {
	return float32(math.Cos(float64(pi32 * float32(component) * p)))
}

// normalizeAndMax scales the DC term by 1/pixelCount and every AC term by
// 2/pixelCount in place, and returns the largest absolute AC channel.
// With no AC terms it returns 1. An all-zero AC set returns the smallest
// positive float32 so the result never divides by zero; it still quantizes
// to a max-AC digit of 0.
func normalizeAndMax(factors []Factor, pixelCount int) float32 {
	n := float32(pixelCount)
	scale(&factors[0], 1/n)

	if len(factors) == 1 {
		return 1
	}

	norm := 2 / n
	var acMax float32
	for i := 1; i < len(factors); i++ {
		scale(&factors[i], norm)
		for _, v := range factors[i] {
			acMax = max(acMax, abs32(v))
		}
	}
	if acMax == 0 {
		return math.SmallestNonzeroFloat32
	}
	return acMax
}

func newNormalized(factors []Factor, pixelCount, xComponents, yComponents int) *DCTResult {
	acMax := normalizeAndMax(factors, pixelCount)
	return &DCTResult{
		acMax:       acMax,
		factors:     factors,
		xComponents: xComponents,
		yComponents: yComponents,
	}
}

func scale(f *Factor, v float32) {
	f[0] *= v
	f[1] *= v
	f[2] *= v
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
