package imgproc

// ColorF32 represents a color with float32 components.
// Components are nominally in [0,1], but convolution sums may transiently
// exceed that range; nothing here clamps.
// Alpha is always linear (never gamma-encoded).
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 represents a color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}

// zeroAlpha is the threshold below which an alpha value is treated as
// fully transparent by UnPremultiply.
const zeroAlpha = 1e-6

// Premultiply scales the RGB components by alpha, in place.
// Premultiplied colors blend and filter linearly without separate alpha
// weighting, which is why the convolution engine applies it around every
// weighted accumulation.
func (c *ColorF32) Premultiply() {
	c.R *= c.A
	c.G *= c.A
	c.B *= c.A
}

// UnPremultiply divides the RGB components by alpha, in place, reversing
// Premultiply. When alpha is effectively zero (< 1e-6) the divisor is
// treated as 1.0 and RGB is left unchanged; a fully transparent sample has
// no meaningful straight-alpha color, and leaving RGB as-is keeps
// Premultiply/UnPremultiply an exact inverse pair for all alpha > 0.
func (c *ColorF32) UnPremultiply() {
	a := c.A
	if a < zeroAlpha {
		return
	}
	c.R /= a
	c.G /= a
	c.B /= a
}

// U8ToF32 converts ColorU8 to ColorF32.
// Each uint8 component [0,255] is mapped to float32 [0,1].
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// F32ToU8 converts ColorF32 to ColorU8.
// Each float32 component [0,1] is mapped to uint8 [0,255] with rounding;
// values outside [0,1] clamp. The round trip U8→F32→U8 is exact.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: clampAndRound(c.R),
		G: clampAndRound(c.G),
		B: clampAndRound(c.B),
		A: clampAndRound(c.A),
	}
}

// clampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
