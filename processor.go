package imgproc

import (
	"errors"

	"github.com/gogpu/imgproc/internal/parallel"
)

// ErrNilFrame is returned when a transform is driven with a nil frame.
var ErrNilFrame = errors.New("imgproc: nil frame")

// Processor transforms a source frame into a destination frame in two
// phases: CreateDestination allocates the target shape, Apply fills it.
// For a given frame the phases run exactly once, in that order; neither is
// retried or re-entered. Run drives the contract.
//
// Concrete processors in this package: Crop, Convolution,
// SeparableConvolution, EdgeDetector. The interface is the extension point
// for any new transform; implementations are expected to support a fast
// bulk-copy path when the transform degenerates to an identity copy, and to
// partition their working rectangle into row chunks otherwise.
type Processor interface {
	// CreateDestination allocates the destination frame for src: the
	// processor-specific target shape with a deep clone of src's
	// metadata. It must not mutate src.
	CreateDestination(src *Frame) (*Frame, error)

	// Apply fills dst from src. Called once per frame, after
	// CreateDestination. The source is read-only for the duration of
	// the call.
	Apply(src, dst *Frame) error
}

// Run executes a processor against a source frame and returns the filled
// destination. An error from either phase aborts the frame's transform;
// there is no retry and no partial result.
func Run(p Processor, src *Frame) (*Frame, error) {
	if src == nil {
		return nil, ErrNilFrame
	}

	dst, err := p.CreateDestination(src)
	if err != nil {
		return nil, err
	}
	Logger().Debug("destination created",
		"src_width", src.Width(), "src_height", src.Height(),
		"dst_width", dst.Width(), "dst_height", dst.Height())

	if err := p.Apply(src, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// procOptions holds the parallel tuning shared by the concrete processors.
type procOptions struct {
	workers          int
	minPixelsPerTask int
}

// settings converts the options to partitioner settings; zero values defer
// to the partitioner's defaults.
func (o procOptions) settings() parallel.Settings {
	return parallel.Settings{
		Workers:          o.workers,
		MinPixelsPerTask: o.minPixelsPerTask,
	}
}

// Option tunes a concrete processor's parallel execution.
type Option func(*procOptions)

// WithWorkers caps the number of row chunks processed concurrently.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *procOptions) { o.workers = n }
}

// WithMinPixelsPerTask sets the minimum number of pixels a single row
// chunk should process. Zero or negative means the partitioner default.
func WithMinPixelsPerTask(n int) Option {
	return func(o *procOptions) { o.minPixelsPerTask = n }
}
