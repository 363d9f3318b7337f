// Package parallel partitions rectangular working areas into row chunks and
// executes per-chunk computations on a shared worker pool.
//
// Chunks covering the same working area are disjoint and their union equals
// the full row range, so each destination row is written by exactly one
// chunk. Workers therefore never contend and no locking is required between
// them; disjointness is enforced by construction of the partition, not by
// runtime arbitration.
//
// Thread safety: Partition and ForEachRowChunk are safe for concurrent use.
package parallel

import (
	"runtime"
	"sync"
)

// DefaultMinPixelsPerTask is the minimum number of pixels a single chunk
// should process. It balances per-task scheduling overhead against
// parallelism; callers doing cheap bulk-copy work raise it (see
// Settings.ScaleMinPixels).
const DefaultMinPixelsPerTask = 4096

// RowChunk is a contiguous half-open range [Min, Max) of row indices
// assigned to one unit of parallel work.
type RowChunk struct {
	Min int
	Max int
}

// Rows returns the number of rows in the chunk.
func (c RowChunk) Rows() int {
	return c.Max - c.Min
}

// Settings tunes how a working area is split into chunks.
type Settings struct {
	// Workers caps the number of chunks (and thus concurrent tasks).
	// Zero or negative means GOMAXPROCS.
	Workers int

	// MinPixelsPerTask is the minimum pixel count per chunk.
	// Zero or negative means DefaultMinPixelsPerTask.
	MinPixelsPerTask int
}

// DefaultSettings returns settings sized for the current process.
func DefaultSettings() Settings {
	return Settings{
		Workers:          runtime.GOMAXPROCS(0),
		MinPixelsPerTask: DefaultMinPixelsPerTask,
	}
}

// ScaleMinPixels returns a copy of the settings with MinPixelsPerTask
// multiplied by factor. Work with trivial per-pixel cost (bulk copies)
// favors larger chunks.
func (s Settings) ScaleMinPixels(factor int) Settings {
	s = s.normalized()
	s.MinPixelsPerTask *= factor
	return s
}

func (s Settings) normalized() Settings {
	if s.Workers <= 0 {
		s.Workers = runtime.GOMAXPROCS(0)
	}
	if s.MinPixelsPerTask <= 0 {
		s.MinPixelsPerTask = DefaultMinPixelsPerTask
	}
	return s
}

// Partition splits a width×height working area into row chunks.
//
// The chunk count is min(Workers, width*height/MinPixelsPerTask), at least
// one, at most height. The returned chunks are pairwise disjoint, ordered,
// and cover [0, height) exactly. A degenerate area yields no chunks.
func Partition(width, height int, s Settings) []RowChunk {
	if width <= 0 || height <= 0 {
		return nil
	}
	s = s.normalized()

	n := (width * height) / s.MinPixelsPerTask
	if n > s.Workers {
		n = s.Workers
	}
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}

	per := (height + n - 1) / n // ceil
	chunks := make([]RowChunk, 0, n)
	for lo := 0; lo < height; lo += per {
		hi := lo + per
		if hi > height {
			hi = height
		}
		chunks = append(chunks, RowChunk{Min: lo, Max: hi})
	}
	return chunks
}

// ForEachRowChunk partitions a width×height working area and invokes fn
// once per chunk. Multi-chunk partitions run concurrently on the shared
// worker pool; a single chunk runs inline on the caller's goroutine.
// ForEachRowChunk returns only after every chunk has completed.
//
// A started chunk always runs to completion; there is no mid-row
// cancellation point.
func ForEachRowChunk(width, height int, s Settings, fn func(RowChunk)) {
	chunks := Partition(width, height, s)
	switch len(chunks) {
	case 0:
		return
	case 1:
		fn(chunks[0])
		return
	}

	work := make([]func(), len(chunks))
	for i, ch := range chunks {
		ch := ch
		work[i] = func() { fn(ch) }
	}
	defaultPool().ExecuteAll(work)
}

var (
	poolOnce sync.Once
	pool     *WorkerPool
)

// defaultPool returns the lazily initialized process-wide pool.
func defaultPool() *WorkerPool {
	poolOnce.Do(func() {
		pool = NewWorkerPool(0)
	})
	return pool
}
