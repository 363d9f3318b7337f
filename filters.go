package imgproc

import (
	"errors"

	"github.com/gogpu/imgproc/internal/parallel"
)

// ErrKernelMismatch is returned when a dual-kernel operator is built from
// kernels with different dimensions.
var ErrKernelMismatch = errors.New("imgproc: kernel dimensions mismatch")

// Convolution applies a single 2D kernel over the full frame via
// ConvolveSample with PassSingle.
type Convolution struct {
	kernel *DenseMatrix
	opts   procOptions
}

// NewConvolution creates a convolution processor for the given kernel.
func NewConvolution(kernel *DenseMatrix, opts ...Option) (*Convolution, error) {
	if kernel == nil {
		return nil, ErrInvalidKernel
	}
	p := &Convolution{kernel: kernel}
	for _, o := range opts {
		o(&p.opts)
	}
	return p, nil
}

// CreateDestination clones the source. The engine preserves each
// destination sample's pre-existing alpha, so starting from a clone means
// the output keeps the source's alpha channel untouched.
func (p *Convolution) CreateDestination(src *Frame) (*Frame, error) {
	return src.Clone(), nil
}

// Apply convolves src into dst row-chunk by row-chunk.
// The 1×1 identity kernel takes the bulk-copy fast path.
func (p *Convolution) Apply(src, dst *Frame) error {
	w, h := src.Width(), src.Height()
	if dst.Width() != w || dst.Height() != h {
		return ErrInvalidDimensions
	}

	if p.kernel.IsIdentity() {
		copy(dst.Pix(), src.Pix())
		return nil
	}

	maxY, maxX := h-1, w-1
	parallel.ForEachRowChunk(w, h, p.opts.settings(), func(ch parallel.RowChunk) {
		for y := ch.Min; y < ch.Max; y++ {
			for x := 0; x < w; x++ {
				ConvolveSample(p.kernel, src, dst, y, x, maxY, maxX, 0, PassSingle)
			}
		}
	})
	return nil
}

// SeparableConvolution applies a 1×n horizontal kernel and an n×1 vertical
// kernel in two passes. The first pass writes premultiplied sums into a
// float intermediate; the second pass consumes that intermediate verbatim
// and unpremultiplies on the way out. Complexity is O(w*h*(nx+ny)) instead
// of O(w*h*nx*ny) for the equivalent 2D kernel.
type SeparableConvolution struct {
	kernelX *DenseMatrix // 1×n
	kernelY *DenseMatrix // n×1
	opts    procOptions
}

// NewSeparableConvolution creates a two-pass processor from a horizontal
// (single-row) and a vertical (single-column) kernel.
func NewSeparableConvolution(kernelX, kernelY *DenseMatrix, opts ...Option) (*SeparableConvolution, error) {
	if kernelX == nil || kernelY == nil {
		return nil, ErrInvalidKernel
	}
	if kernelX.Rows() != 1 || kernelY.Columns() != 1 {
		return nil, ErrInvalidKernel
	}
	p := &SeparableConvolution{kernelX: kernelX, kernelY: kernelY}
	for _, o := range opts {
		o(&p.opts)
	}
	return p, nil
}

// NewGaussianBlur creates a separable Gaussian blur for the given radius.
// Radius <= 0 yields the identity.
func NewGaussianBlur(radius float64, opts ...Option) *SeparableConvolution {
	p, err := NewSeparableConvolution(GaussianKernelX(radius), GaussianKernelY(radius), opts...)
	if err != nil {
		// Generated kernels are always well-formed.
		panic(err)
	}
	return p
}

// CreateDestination clones the source, so the preserved destination alpha
// equals the source alpha.
func (p *SeparableConvolution) CreateDestination(src *Frame) (*Frame, error) {
	return src.Clone(), nil
}

// Apply runs the horizontal pass into a float intermediate, then the
// vertical pass into dst. Each pass is row-parallel on its own; the second
// pass starts only after the first has fully completed.
func (p *SeparableConvolution) Apply(src, dst *Frame) error {
	w, h := src.Width(), src.Height()
	if dst.Width() != w || dst.Height() != h {
		return ErrInvalidDimensions
	}

	mid, err := NewFrameF32(w, h)
	if err != nil {
		return err
	}

	maxY, maxX := h-1, w-1
	settings := p.opts.settings()

	parallel.ForEachRowChunk(w, h, settings, func(ch parallel.RowChunk) {
		for y := ch.Min; y < ch.Max; y++ {
			for x := 0; x < w; x++ {
				ConvolveSample(p.kernelX, src, mid, y, x, maxY, maxX, 0, PassFirst)
			}
		}
	})

	parallel.ForEachRowChunk(w, h, settings, func(ch parallel.RowChunk) {
		for y := ch.Min; y < ch.Max; y++ {
			for x := 0; x < w; x++ {
				ConvolveSample(p.kernelY, mid, dst, y, x, maxY, maxX, 0, PassSecond)
			}
		}
	})
	return nil
}

// EdgeDetector applies two oriented kernels in one pass and writes the
// per-channel gradient magnitude, Sobel-style.
type EdgeDetector struct {
	kernelX *DenseMatrix
	kernelY *DenseMatrix
	opts    procOptions
}

// NewEdgeDetector creates a dual-kernel gradient processor. The kernels
// must share dimensions; ErrKernelMismatch otherwise.
func NewEdgeDetector(kernelX, kernelY *DenseMatrix, opts ...Option) (*EdgeDetector, error) {
	if kernelX == nil || kernelY == nil {
		return nil, ErrInvalidKernel
	}
	if kernelX.Rows() != kernelY.Rows() || kernelX.Columns() != kernelY.Columns() {
		return nil, ErrKernelMismatch
	}
	p := &EdgeDetector{kernelX: kernelX, kernelY: kernelY}
	for _, o := range opts {
		o(&p.opts)
	}
	return p, nil
}

// NewSobel creates an edge detector with the standard Sobel kernel pair.
func NewSobel(opts ...Option) *EdgeDetector {
	p, err := NewEdgeDetector(SobelKernelX(), SobelKernelY(), opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// CreateDestination clones the source, so the preserved destination alpha
// equals the source alpha.
func (p *EdgeDetector) CreateDestination(src *Frame) (*Frame, error) {
	return src.Clone(), nil
}

// Apply computes the gradient magnitude for every sample of the frame.
func (p *EdgeDetector) Apply(src, dst *Frame) error {
	w, h := src.Width(), src.Height()
	if dst.Width() != w || dst.Height() != h {
		return ErrInvalidDimensions
	}

	maxY, maxX := h-1, w-1
	parallel.ForEachRowChunk(w, h, p.opts.settings(), func(ch parallel.RowChunk) {
		for y := ch.Min; y < ch.Max; y++ {
			for x := 0; x < w; x++ {
				ConvolveSample2(p.kernelX, p.kernelY, src, dst, y, x, maxY, maxX, 0)
			}
		}
	})
	return nil
}
