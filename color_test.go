package imgproc

import (
	"math"
	"testing"
)

const colorEps = 1e-5

func colorNear(a, b ColorF32, eps float64) bool {
	return math.Abs(float64(a.R-b.R)) <= eps &&
		math.Abs(float64(a.G-b.G)) <= eps &&
		math.Abs(float64(a.B-b.B)) <= eps &&
		math.Abs(float64(a.A-b.A)) <= eps
}

func TestPremultiplyUnPremultiplyRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    ColorF32
	}{
		{"opaque", ColorF32{R: 0.8, G: 0.4, B: 0.2, A: 1.0}},
		{"half alpha", ColorF32{R: 1.0, G: 0.5, B: 0.25, A: 0.5}},
		{"low alpha", ColorF32{R: 0.9, G: 0.1, B: 0.7, A: 0.004}},
		{"black", ColorF32{A: 0.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.c
			c.Premultiply()
			c.UnPremultiply()

			if !colorNear(c, tt.c, colorEps) {
				t.Errorf("round trip = %+v, want %+v", c, tt.c)
			}
		})
	}
}

func TestPremultiplyScalesRGBOnly(t *testing.T) {
	c := ColorF32{R: 1.0, G: 0.5, B: 0.25, A: 0.5}
	c.Premultiply()

	want := ColorF32{R: 0.5, G: 0.25, B: 0.125, A: 0.5}
	if c != want {
		t.Errorf("Premultiply = %+v, want %+v", c, want)
	}
}

func TestUnPremultiplyZeroAlpha(t *testing.T) {
	// Policy: alpha below the threshold leaves RGB unchanged.
	c := ColorF32{R: 0.5, G: 0.25, B: 0.125, A: 0}
	c.UnPremultiply()

	want := ColorF32{R: 0.5, G: 0.25, B: 0.125, A: 0}
	if c != want {
		t.Errorf("UnPremultiply zero alpha = %+v, want %+v", c, want)
	}
}

func TestU8F32RoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 63, 127, 128, 200, 254, 255} {
		c := ColorU8{R: v, G: v, B: v, A: v}
		got := F32ToU8(U8ToF32(c))
		if got != c {
			t.Errorf("round trip of %d = %+v, want %+v", v, got, c)
		}
	}
}

func TestF32ToU8Clamps(t *testing.T) {
	got := F32ToU8(ColorF32{R: -0.5, G: 1.5, B: 0.5, A: 2})
	want := ColorU8{R: 0, G: 255, B: 128, A: 255}
	if got != want {
		t.Errorf("F32ToU8 = %+v, want %+v", got, want)
	}
}
