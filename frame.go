package imgproc

import (
	"errors"
	"image"
	"image/color"
	"maps"
)

// Common errors for frame and transform operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("imgproc: invalid dimensions")

	// ErrRowOutOfRange is returned when a row index is outside [0, height).
	ErrRowOutOfRange = errors.New("imgproc: row index out of range")

	// ErrInvalidRectangle is returned when a rectangle has negative origin
	// or non-positive extent.
	ErrInvalidRectangle = errors.New("imgproc: invalid rectangle")

	// ErrRectOutOfBounds is returned when a working rectangle is not fully
	// contained within the frame it addresses.
	ErrRectOutOfBounds = errors.New("imgproc: rectangle outside frame bounds")
)

// Buffer is the pixel-format capability required by the convolution engine:
// fixed dimensions plus lossless conversion between stored samples and
// 4-component float colors. The engine depends on nothing else, so any
// pixel encoding that can round-trip through ColorF32 can be convolved.
type Buffer interface {
	Width() int
	Height() int

	// ColorAt returns the sample at (x, y) as a float color.
	ColorAt(x, y int) ColorF32

	// SetColorAt stores a float color as the sample at (x, y).
	SetColorAt(x, y int, c ColorF32)
}

// Metadata carries per-frame metadata that survives transforms.
// Destination frames receive a deep clone, so mutating one frame's
// metadata never leaks into another.
type Metadata struct {
	// DPIX and DPIY are the horizontal and vertical resolution in dots
	// per inch. Zero means unknown.
	DPIX float64
	DPIY float64

	// Properties holds free-form key/value pairs (e.g. source format hints).
	Properties map[string]string
}

// Clone returns a deep copy of the metadata. Clone of nil is nil.
func (m *Metadata) Clone() *Metadata {
	if m == nil {
		return nil
	}
	c := &Metadata{DPIX: m.DPIX, DPIY: m.DPIY}
	if m.Properties != nil {
		c.Properties = maps.Clone(m.Properties)
	}
	return c
}

// Frame is a rectangular pixel buffer with fixed dimensions for its
// lifetime. Samples are stored as non-premultiplied RGBA, 4 bytes per
// pixel, in a single contiguous slice owned by the frame.
//
// Thread safety: a Frame is safe for concurrent reads. Concurrent writers
// must address disjoint rows; the row partitioner guarantees this for
// transform processors.
type Frame struct {
	width  int
	height int
	pix    []uint8 // RGBA format, 4 bytes per pixel
	meta   *Metadata
}

// NewFrame creates a frame with the given dimensions.
// All samples start fully transparent.
func NewFrame(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the frame in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Pix returns the raw pixel store (RGBA format).
func (f *Frame) Pix() []uint8 {
	return f.pix
}

// Metadata returns the frame's metadata, which may be nil.
func (f *Frame) Metadata() *Metadata {
	return f.meta
}

// SetMetadata replaces the frame's metadata. The frame takes ownership.
func (f *Frame) SetMetadata(m *Metadata) {
	f.meta = m
}

// Rect returns the full-frame working rectangle (0, 0, width, height).
func (f *Frame) Rect() Rectangle {
	return Rectangle{Width: f.width, Height: f.height}
}

// Row returns the mutable pixel slice for row y (4 bytes per pixel).
// It returns ErrRowOutOfRange when y is outside [0, height).
func (f *Frame) Row(y int) ([]uint8, error) {
	if y < 0 || y >= f.height {
		return nil, ErrRowOutOfRange
	}
	i := y * f.width * 4
	return f.pix[i : i+f.width*4 : i+f.width*4], nil
}

// ColorAt returns the sample at (x, y) as a float color.
// Out-of-bounds coordinates return the zero (transparent) color.
func (f *Frame) ColorAt(x, y int) ColorF32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return ColorF32{}
	}
	i := (y*f.width + x) * 4
	return U8ToF32(ColorU8{
		R: f.pix[i+0],
		G: f.pix[i+1],
		B: f.pix[i+2],
		A: f.pix[i+3],
	})
}

// SetColorAt stores a float color as the sample at (x, y).
// Out-of-bounds coordinates are ignored.
func (f *Frame) SetColorAt(x, y int, c ColorF32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	u := F32ToU8(c)
	i := (y*f.width + x) * 4
	f.pix[i+0] = u.R
	f.pix[i+1] = u.G
	f.pix[i+2] = u.B
	f.pix[i+3] = u.A
}

// Clone returns a deep copy of the frame, pixel store and metadata included.
func (f *Frame) Clone() *Frame {
	c := &Frame{
		width:  f.width,
		height: f.height,
		pix:    make([]uint8, len(f.pix)),
		meta:   f.meta.Clone(),
	}
	copy(c.pix, f.pix)
	return c
}

// ToImage converts the frame to an image.NRGBA.
func (f *Frame) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.pix)
	return img
}

// FromImage creates a frame from an image.
func FromImage(img image.Image) *Frame {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil
	}

	f, _ := NewFrame(width, height)
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == width*4 {
		copy(f.pix, nrgba.Pix)
		return f
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*width + x) * 4
			f.pix[i+0] = c.R
			f.pix[i+1] = c.G
			f.pix[i+2] = c.B
			f.pix[i+3] = c.A
		}
	}
	return f
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.NRGBA{}
	}
	i := (y*f.width + x) * 4
	return color.NRGBA{R: f.pix[i+0], G: f.pix[i+1], B: f.pix[i+2], A: f.pix[i+3]}
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.NRGBAModel
}

// FrameF32 is a rectangular pixel buffer with float32 RGBA samples.
// It is the intermediate of separable (first/second pass) convolution:
// the first pass stores premultiplied sums here without quantizing, so the
// second pass consumes them verbatim. Samples may exceed [0,1].
type FrameF32 struct {
	width  int
	height int
	pix    []float32 // RGBA format, 4 floats per pixel
}

// NewFrameF32 creates a float frame with the given dimensions.
func NewFrameF32(width, height int) (*FrameF32, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &FrameF32{
		width:  width,
		height: height,
		pix:    make([]float32, width*height*4),
	}, nil
}

// Width returns the width of the frame in pixels.
func (f *FrameF32) Width() int {
	return f.width
}

// Height returns the height of the frame in pixels.
func (f *FrameF32) Height() int {
	return f.height
}

// ColorAt returns the sample at (x, y).
// Out-of-bounds coordinates return the zero color.
func (f *FrameF32) ColorAt(x, y int) ColorF32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return ColorF32{}
	}
	i := (y*f.width + x) * 4
	return ColorF32{R: f.pix[i+0], G: f.pix[i+1], B: f.pix[i+2], A: f.pix[i+3]}
}

// SetColorAt stores the sample at (x, y) without clamping or quantizing.
// Out-of-bounds coordinates are ignored.
func (f *FrameF32) SetColorAt(x, y int, c ColorF32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.pix[i+0] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
	f.pix[i+3] = c.A
}
