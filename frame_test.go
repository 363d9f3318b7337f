package imgproc

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewFrameInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFrame(tt.w, tt.h); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("NewFrame(%d, %d) error = %v, want ErrInvalidDimensions", tt.w, tt.h, err)
			}
		})
	}
}

func TestFrameRowBounds(t *testing.T) {
	f, err := NewFrame(4, 3)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}

	for _, y := range []int{0, 1, 2} {
		row, err := f.Row(y)
		if err != nil {
			t.Fatalf("Row(%d) error = %v", y, err)
		}
		if len(row) != 4*4 {
			t.Errorf("len(Row(%d)) = %d, want 16", y, len(row))
		}
	}

	for _, y := range []int{-1, 3, 100} {
		if _, err := f.Row(y); !errors.Is(err, ErrRowOutOfRange) {
			t.Errorf("Row(%d) error = %v, want ErrRowOutOfRange", y, err)
		}
	}
}

func TestFrameRowIsMutableView(t *testing.T) {
	f, _ := NewFrame(2, 2)
	row, err := f.Row(1)
	if err != nil {
		t.Fatalf("Row(1): %v", err)
	}

	row[0] = 200 // R of pixel (0,1)
	row[3] = 255 // A of pixel (0,1)

	got := f.ColorAt(0, 1)
	want := U8ToF32(ColorU8{R: 200, A: 255})
	if got != want {
		t.Errorf("ColorAt(0,1) = %+v, want %+v", got, want)
	}
}

func TestFrameColorRoundTrip(t *testing.T) {
	f, _ := NewFrame(3, 3)
	want := U8ToF32(ColorU8{R: 10, G: 20, B: 30, A: 255})
	f.SetColorAt(1, 2, want)

	if got := f.ColorAt(1, 2); got != want {
		t.Errorf("ColorAt(1,2) = %+v, want %+v", got, want)
	}

	// Out of bounds reads are transparent, writes are ignored.
	if got := f.ColorAt(-1, 0); got != (ColorF32{}) {
		t.Errorf("ColorAt(-1,0) = %+v, want zero", got)
	}
	f.SetColorAt(5, 5, want)
}

func TestFrameCloneIndependence(t *testing.T) {
	f, _ := NewFrame(2, 2)
	f.SetMetadata(&Metadata{
		DPIX:       72,
		DPIY:       72,
		Properties: map[string]string{"source": "test"},
	})
	f.SetColorAt(0, 0, ColorF32{R: 1, A: 1})

	c := f.Clone()
	c.SetColorAt(0, 0, ColorF32{G: 1, A: 1})
	c.Metadata().Properties["source"] = "clone"

	if got := f.ColorAt(0, 0); got != (ColorF32{R: 1, A: 1}) {
		t.Errorf("source pixel mutated through clone: %+v", got)
	}
	if f.Metadata().Properties["source"] != "test" {
		t.Errorf("source metadata mutated through clone: %q", f.Metadata().Properties["source"])
	}
}

func TestMetadataCloneNil(t *testing.T) {
	var m *Metadata
	if m.Clone() != nil {
		t.Error("Clone of nil metadata should be nil")
	}
}

func TestFromImageToImageRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(y*4 + x), G: uint8(x), B: uint8(y), A: 255,
			})
		}
	}

	f := FromImage(img)
	if f.Width() != 4 || f.Height() != 3 {
		t.Fatalf("FromImage dimensions = %dx%d, want 4x3", f.Width(), f.Height())
	}

	out := f.ToImage()
	for i := range img.Pix {
		if img.Pix[i] != out.Pix[i] {
			t.Fatalf("pixel store differs at byte %d: %d != %d", i, img.Pix[i], out.Pix[i])
		}
	}
}

func TestFrameImplementsImage(t *testing.T) {
	f, _ := NewFrame(2, 2)
	f.SetColorAt(1, 0, U8ToF32(ColorU8{R: 9, A: 255}))

	var img image.Image = f
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds = %v", img.Bounds())
	}
	if got := img.At(1, 0); got != (color.NRGBA{R: 9, A: 255}) {
		t.Errorf("At(1,0) = %v, want NRGBA{R:9, A:255}", got)
	}
	if img.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel should be NRGBAModel")
	}
}

func TestFrameF32Store(t *testing.T) {
	f, err := NewFrameF32(2, 2)
	if err != nil {
		t.Fatalf("NewFrameF32: %v", err)
	}

	// Values outside [0,1] must survive: the first convolution pass
	// stores unquantized premultiplied sums.
	want := ColorF32{R: 1.75, G: -0.25, B: 0.5, A: 0.5}
	f.SetColorAt(1, 1, want)
	if got := f.ColorAt(1, 1); got != want {
		t.Errorf("ColorAt(1,1) = %+v, want %+v", got, want)
	}

	if _, err := NewFrameF32(0, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewFrameF32(0,2) error = %v, want ErrInvalidDimensions", err)
	}
}
