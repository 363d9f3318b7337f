package imgproc

import "math"

// PassKind selects how premultiplied-alpha handling is applied across a
// convolution pipeline. A self-contained convolution uses PassSingle; a
// separable convolution splits the work into a PassFirst stage writing a
// premultiplied intermediate and a PassSecond stage consuming it.
type PassKind uint8

const (
	// PassSingle premultiplies each fetched sample and unpremultiplies
	// the accumulated sum before writing.
	PassSingle PassKind = iota

	// PassFirst premultiplies each fetched sample and writes the
	// accumulated sum verbatim, still premultiplied. The output is an
	// intermediate buffer consumed by a subsequent PassSecond stage.
	PassFirst

	// PassSecond reads samples as-is (they were premultiplied by the
	// PassFirst stage) and unpremultiplies the accumulated sum before
	// writing.
	PassSecond
)

// ConvolveSample computes one convolved output sample and writes it to dst
// at (x, y).
//
// Sampling is clamp-to-edge: for out-of-range kernel taps the nearest valid
// sample is replicated instead of wrapping or zero-padding. Row taps clamp
// to [0, maxY]; column taps clamp to [offsetX, maxX], where offsetX is the
// left edge of the working area and maxY/maxX are the inclusive maxima.
// The sampled column for kernel tap kx is x + offsetX + kx - radiusX; the
// destination column stays x.
//
// For PassSingle and PassSecond the written sample keeps the alpha already
// present at the destination slot: convolution never alters alpha, only the
// color channels. PassFirst writes the raw premultiplied accumulation,
// alpha included.
//
// Clamping makes every index valid by construction, so ConvolveSample has
// no failure modes for well-formed inputs.
func ConvolveSample(kernel *DenseMatrix, src, dst Buffer, y, x, maxY, maxX, offsetX int, pass PassKind) {
	rows := kernel.Rows()
	cols := kernel.Columns()
	radiusY := rows >> 1
	radiusX := cols >> 1

	var sum ColorF32
	for ky := 0; ky < rows; ky++ {
		sy := clampIndex(y+ky-radiusY, 0, maxY)
		for kx := 0; kx < cols; kx++ {
			sx := clampIndex(x+offsetX+kx-radiusX, offsetX, maxX)
			c := src.ColorAt(sx, sy)
			if pass != PassSecond {
				c.Premultiply()
			}
			w := kernel.At(ky, kx)
			sum.R += c.R * w
			sum.G += c.G * w
			sum.B += c.B * w
			sum.A += c.A * w
		}
	}

	if pass == PassFirst {
		dst.SetColorAt(x, y, sum)
		return
	}

	a := dst.ColorAt(x, y).A
	sum.UnPremultiply()
	sum.A = a
	dst.SetColorAt(x, y, sum)
}

// ConvolveSample2 computes one gradient-magnitude output sample from two
// oriented kernels (e.g. Sobel X/Y) and writes it to dst at (x, y).
//
// Both kernels must have identical dimensions. The sampling loop runs once:
// each fetched sample is premultiplied and feeds both accumulations, since
// premultiplication is destructive and the sample cannot be re-fetched per
// kernel. The two sums combine component-wise as sqrt(x²+y²); the result is
// unpremultiplied and written with the destination's pre-existing alpha.
func ConvolveSample2(kernelX, kernelY *DenseMatrix, src, dst Buffer, y, x, maxY, maxX, offsetX int) {
	rows := kernelX.Rows()
	cols := kernelX.Columns()
	radiusY := rows >> 1
	radiusX := cols >> 1

	var sumX, sumY ColorF32
	for ky := 0; ky < rows; ky++ {
		sy := clampIndex(y+ky-radiusY, 0, maxY)
		for kx := 0; kx < cols; kx++ {
			sx := clampIndex(x+offsetX+kx-radiusX, offsetX, maxX)
			c := src.ColorAt(sx, sy)
			c.Premultiply()

			wx := kernelX.At(ky, kx)
			sumX.R += c.R * wx
			sumX.G += c.G * wx
			sumX.B += c.B * wx
			sumX.A += c.A * wx

			wy := kernelY.At(ky, kx)
			sumY.R += c.R * wy
			sumY.G += c.G * wy
			sumY.B += c.B * wy
			sumY.A += c.A * wy
		}
	}

	mag := ColorF32{
		R: hypot32(sumX.R, sumY.R),
		G: hypot32(sumX.G, sumY.G),
		B: hypot32(sumX.B, sumY.B),
		A: hypot32(sumX.A, sumY.A),
	}

	a := dst.ColorAt(x, y).A
	mag.UnPremultiply()
	mag.A = a
	dst.SetColorAt(x, y, mag)
}

// clampIndex clamps v to the inclusive range [lo, hi].
func clampIndex(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// hypot32 returns sqrt(a²+b²) in float32.
func hypot32(a, b float32) float32 {
	return float32(math.Sqrt(float64(a)*float64(a) + float64(b)*float64(b)))
}
