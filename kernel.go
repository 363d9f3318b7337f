package imgproc

import (
	"errors"
	"math"
)

// ErrInvalidKernel is returned when kernel dimensions are non-positive or
// the weight count does not match rows*columns.
var ErrInvalidKernel = errors.New("imgproc: invalid kernel")

// DenseMatrix is an immutable rows×columns grid of float32 convolution
// weights. It is constructed once per convolution configuration and reused
// for every output sample of a frame; it is never mutated after
// construction, so it is safe to share across concurrent workers.
//
// Dimensions are typically odd so the kernel has a center element and a
// symmetric radius (radius = dimension >> 1).
type DenseMatrix struct {
	rows    int
	cols    int
	weights []float32
}

// NewDenseMatrix creates a kernel matrix from explicit dimensions and
// row-major weights. The weights are copied. Returns ErrInvalidKernel when
// rows or cols is non-positive or len(weights) != rows*cols.
func NewDenseMatrix(rows, cols int, weights []float32) (*DenseMatrix, error) {
	if rows <= 0 || cols <= 0 || len(weights) != rows*cols {
		return nil, ErrInvalidKernel
	}
	w := make([]float32, len(weights))
	copy(w, weights)
	return &DenseMatrix{rows: rows, cols: cols, weights: w}, nil
}

// mustMatrix builds a matrix from weights known to be well-formed.
func mustMatrix(rows, cols int, weights []float32) *DenseMatrix {
	m, err := NewDenseMatrix(rows, cols, weights)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of kernel rows.
func (m *DenseMatrix) Rows() int {
	return m.rows
}

// Columns returns the number of kernel columns.
func (m *DenseMatrix) Columns() int {
	return m.cols
}

// At returns the weight at (row, col). It panics when an index is out of
// range; the convolution engine derives indices from the matrix's own
// dimensions, so well-formed callers never hit this.
func (m *DenseMatrix) At(row, col int) float32 {
	if uint(row) >= uint(m.rows) || uint(col) >= uint(m.cols) {
		panic("imgproc: kernel index out of range")
	}
	return m.weights[row*m.cols+col]
}

// IsIdentity reports whether the matrix is the 1×1 kernel with weight 1,
// which convolves to an exact copy of the source.
func (m *DenseMatrix) IsIdentity() bool {
	return m.rows == 1 && m.cols == 1 && m.weights[0] == 1
}

// IdentityKernel returns the 1×1 kernel with weight 1.
func IdentityKernel() *DenseMatrix {
	return mustMatrix(1, 1, []float32{1})
}

// gaussian1D generates normalized 1D Gaussian weights for the given radius
// (used as sigma). The kernel size is 2*ceil(3*sigma)+1, covering 99.7% of
// the distribution. Radius <= 0 yields the single-element identity [1].
func gaussian1D(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1}
	}

	sigma := radius
	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1

	weights := make([]float32, size)
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		v := math.Exp(-(x * x) / twoSigmaSq)
		weights[i] = float32(v)
		sum += v
	}

	// Normalize so the weights sum to 1.0.
	inv := float32(1.0 / sum)
	for i := range weights {
		weights[i] *= inv
	}
	return weights
}

// GaussianKernelX returns a normalized horizontal (1×n) Gaussian kernel
// for the given radius, used as the first pass of a separable blur.
func GaussianKernelX(radius float64) *DenseMatrix {
	w := gaussian1D(radius)
	return mustMatrix(1, len(w), w)
}

// GaussianKernelY returns a normalized vertical (n×1) Gaussian kernel
// for the given radius, used as the second pass of a separable blur.
func GaussianKernelY(radius float64) *DenseMatrix {
	w := gaussian1D(radius)
	return mustMatrix(len(w), 1, w)
}

// BoxKernel returns a normalized (2r+1)×(2r+1) uniform kernel.
// Box blur is faster than Gaussian but produces blockier results.
func BoxKernel(radius int) *DenseMatrix {
	if radius < 0 {
		radius = 0
	}
	size := radius*2 + 1
	weights := make([]float32, size*size)
	v := float32(1) / float32(size*size)
	for i := range weights {
		weights[i] = v
	}
	return mustMatrix(size, size, weights)
}

// SobelKernelX returns the horizontal Sobel gradient kernel.
func SobelKernelX() *DenseMatrix {
	return mustMatrix(3, 3, []float32{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	})
}

// SobelKernelY returns the vertical Sobel gradient kernel.
func SobelKernelY() *DenseMatrix {
	return mustMatrix(3, 3, []float32{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	})
}

// PrewittKernelX returns the horizontal Prewitt gradient kernel.
func PrewittKernelX() *DenseMatrix {
	return mustMatrix(3, 3, []float32{
		-1, 0, 1,
		-1, 0, 1,
		-1, 0, 1,
	})
}

// PrewittKernelY returns the vertical Prewitt gradient kernel.
func PrewittKernelY() *DenseMatrix {
	return mustMatrix(3, 3, []float32{
		-1, -1, -1,
		0, 0, 0,
		1, 1, 1,
	})
}

// LaplacianKernel returns the 4-connected Laplacian kernel.
func LaplacianKernel() *DenseMatrix {
	return mustMatrix(3, 3, []float32{
		0, -1, 0,
		-1, 4, -1,
		0, -1, 0,
	})
}

// SharpenKernel returns a mild 3×3 sharpening kernel.
func SharpenKernel() *DenseMatrix {
	return mustMatrix(3, 3, []float32{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	})
}
