// Package imgproc provides pixel-buffer convolution and parallel frame
// transforms for Go.
//
// # Overview
//
// imgproc is a pure Go image-processing engine designed to integrate with
// the GoGPU ecosystem. It applies 2D convolution kernels (including
// paired-kernel gradient operators) over rectangular pixel buffers and
// hosts a two-phase transform pipeline of which cropping is one concrete
// instance.
//
// # Quick Start
//
//	import "github.com/gogpu/imgproc"
//
//	src := imgproc.FromImage(img)
//
//	blur := imgproc.NewGaussianBlur(2.5)
//	dst, err := imgproc.Run(blur, src)
//	if err != nil {
//		// ...
//	}
//
//	out := dst.ToImage()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Frame, ColorF32, DenseMatrix, Processor, Crop, filters
//   - Internal: parallel (row partitioning, worker pool)
//   - Executables: cmd/imgfilter (TOML-configured filter pipeline)
//
// # Processors
//
// A Processor fills a destination frame from a source frame in two phases:
// CreateDestination allocates the target shape, Apply fills it. Apply may
// partition its working rectangle into row chunks and fill them on a worker
// pool; chunks are disjoint and covering, so workers never contend.
//
// # Coordinate System
//
// Uses standard image coordinates: origin (0,0) at top-left, X increases
// right, Y increases down. Convolution sampling outside a buffer clamps to
// the nearest edge pixel.
package imgproc

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
