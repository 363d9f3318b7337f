package imgproc

import (
	"sync"

	"github.com/gogpu/imgproc/internal/parallel"
)

// bulkCopyScale raises the per-task pixel minimum for copy-style work:
// the per-pixel cost is a plain slice copy, so larger chunks amortize
// scheduling overhead better than extra parallelism would help.
const bulkCopyScale = 4

// Crop extracts a rectangular region of the source frame. The crop
// rectangle is expressed in source coordinates; destination row r is
// source row Top+r, columns [Left, Left+Width), copied verbatim. Crop
// never resamples.
type Crop struct {
	rect Rectangle
	opts procOptions
}

// NewCrop creates a crop processor for the given source-space rectangle.
// The rectangle must have non-negative origin and positive extent;
// containment in the source is checked by CreateDestination, when the
// source is known.
func NewCrop(rect Rectangle, opts ...Option) (*Crop, error) {
	if err := rect.Validate(); err != nil {
		return nil, err
	}
	c := &Crop{rect: rect}
	for _, o := range opts {
		o(&c.opts)
	}
	return c, nil
}

// Rect returns the crop rectangle.
func (c *Crop) Rect() Rectangle {
	return c.rect
}

// CreateDestination allocates a Width×Height frame with a clone of the
// source metadata. Returns ErrRectOutOfBounds when the crop rectangle is
// not fully contained in the source.
func (c *Crop) CreateDestination(src *Frame) (*Frame, error) {
	if !c.rect.In(src.Width(), src.Height()) {
		return nil, ErrRectOutOfBounds
	}
	dst, err := NewFrame(c.rect.Width, c.rect.Height)
	if err != nil {
		return nil, err
	}
	dst.SetMetadata(src.Metadata().Clone())
	return dst, nil
}

// Apply fills dst with the cropped region of src.
//
// When the crop rectangle equals the full source rectangle the whole pixel
// store is copied in one bulk operation. Otherwise the destination rows are
// partitioned into chunks and each chunk copies its rows from the
// corresponding source region.
func (c *Crop) Apply(src, dst *Frame) error {
	r := c.rect
	if dst.Width() != r.Width || dst.Height() != r.Height {
		return ErrInvalidDimensions
	}

	// Fast path: identity crop is a single bulk copy.
	if r == src.Rect() {
		copy(dst.Pix(), src.Pix())
		return nil
	}

	var (
		once     sync.Once
		applyErr error
	)
	record := func(err error) {
		once.Do(func() { applyErr = err })
	}

	settings := c.opts.settings().ScaleMinPixels(bulkCopyScale)
	parallel.ForEachRowChunk(r.Width, r.Height, settings, func(ch parallel.RowChunk) {
		for y := ch.Min; y < ch.Max; y++ {
			srcRow, err := src.Row(r.Top + y)
			if err != nil {
				record(err)
				return
			}
			dstRow, err := dst.Row(y)
			if err != nil {
				record(err)
				return
			}
			copy(dstRow, srcRow[r.Left*4:r.Right()*4])
		}
	})
	return applyErr
}
