package imgproc

import (
	"errors"
	"testing"
)

func TestNewCropInvalidRectangle(t *testing.T) {
	if _, err := NewCrop(Rect(0, 0, 0, 5)); !errors.Is(err, ErrInvalidRectangle) {
		t.Errorf("NewCrop zero width error = %v, want ErrInvalidRectangle", err)
	}
	if _, err := NewCrop(Rect(-1, 0, 5, 5)); !errors.Is(err, ErrInvalidRectangle) {
		t.Errorf("NewCrop negative left error = %v, want ErrInvalidRectangle", err)
	}
}

func TestCropIdentityFastPath(t *testing.T) {
	src := gradientFrame(t, 8, 10)
	src.SetMetadata(&Metadata{DPIX: 96, DPIY: 96})

	c, err := NewCrop(Rect(0, 0, 8, 10))
	if err != nil {
		t.Fatalf("NewCrop: %v", err)
	}

	dst, err := Run(c, src)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Full-rectangle crop takes the bulk-copy path and must be
	// pixel-for-pixel identical to the source.
	framesEqual(t, dst, src, 0)
	if dst.Metadata() == nil || dst.Metadata().DPIX != 96 {
		t.Error("metadata not cloned to destination")
	}
	if dst.Metadata() == src.Metadata() {
		t.Error("destination shares metadata with source")
	}
}

func TestCropSubRectangle(t *testing.T) {
	const w, h = 8, 10
	src := gradientFrame(t, w, h)
	rect := Rect(2, 3, 4, 5)

	// Force the general path into multiple chunks.
	c, err := NewCrop(rect, WithWorkers(4), WithMinPixelsPerTask(1))
	if err != nil {
		t.Fatalf("NewCrop: %v", err)
	}

	dst, err := Run(c, src)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if dst.Width() != 4 || dst.Height() != 5 {
		t.Fatalf("destination = %dx%d, want 4x5", dst.Width(), dst.Height())
	}

	for r := 0; r < rect.Height; r++ {
		for col := 0; col < rect.Width; col++ {
			got := dst.ColorAt(col, r)
			want := src.ColorAt(rect.Left+col, rect.Top+r)
			if got != want {
				t.Fatalf("dst(%d,%d) = %+v, want src(%d,%d) = %+v",
					col, r, got, rect.Left+col, rect.Top+r, want)
			}
		}
	}
}

func TestCropSourceUnchanged(t *testing.T) {
	src := gradientFrame(t, 6, 6)
	before := src.Clone()

	c, _ := NewCrop(Rect(1, 1, 3, 3))
	if _, err := Run(c, src); err != nil {
		t.Fatalf("Run: %v", err)
	}

	framesEqual(t, src, before, 0)
}

func TestCropRectOutOfBounds(t *testing.T) {
	src := gradientFrame(t, 8, 10)

	tests := []struct {
		name string
		rect Rectangle
	}{
		{"overflows right", Rect(5, 0, 4, 4)},
		{"overflows bottom", Rect(0, 8, 4, 4)},
		{"larger than source", Rect(0, 0, 9, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCrop(tt.rect)
			if err != nil {
				t.Fatalf("NewCrop: %v", err)
			}
			if _, err := Run(c, src); !errors.Is(err, ErrRectOutOfBounds) {
				t.Errorf("Run error = %v, want ErrRectOutOfBounds", err)
			}
		})
	}
}

func TestCropApplyDimensionMismatch(t *testing.T) {
	src := gradientFrame(t, 8, 8)
	wrong, _ := NewFrame(2, 2)

	c, _ := NewCrop(Rect(0, 0, 4, 4))
	if err := c.Apply(src, wrong); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Apply error = %v, want ErrInvalidDimensions", err)
	}
}
