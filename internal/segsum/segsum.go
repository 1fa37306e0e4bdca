// Package segsum implements the segmented-reduction ("bag sum") kernel
// consumed by the bagged coalescing strategy.
package segsum

import (
	"golang.org/x/sync/errgroup"

	"github.com/VIA-Research/LazyDP/internal/math32"
)

// Sum computes, for every segment g, the element-wise sum of the value rows
// named by idx over the segment's sorted positions:
//
//	out[g] = Σ values[idx[j]] for j in [offsets[g], offsets[g+1])
//
// with the last segment extending to len(idx). values is row-major with
// `dim` columns; the result has len(offsets) rows.
//
// idx must be a permutation of [0, len(idx)); offsets must be non-decreasing
// with offsets[0] == 0, and an empty segment yields a zero row. The
// mark/scan/scatter grouping pass only ever produces non-empty segments.
// Segments are partitioned across workers; rows within a segment accumulate
// serially into the segment's output row, in ascending j order, so the
// result is bit-identical across worker counts.
func Sum(values []float32, dim int, idx, offsets []int64, workers int) []float32 {
	out := make([]float32, len(offsets)*dim)
	nSeg := len(offsets)
	if nSeg == 0 {
		return out
	}
	if workers < 1 {
		workers = 1
	}
	if workers > nSeg {
		workers = nSeg
	}

	unit := nSeg / workers
	var g errgroup.Group
	for w := range workers {
		start, end := w*unit, (w+1)*unit
		if w == workers-1 {
			end = nSeg
		}
		g.Go(func() error {
			for s := start; s < end; s++ {
				lo := offsets[s]
				hi := int64(len(idx))
				if s+1 < nSeg {
					hi = offsets[s+1]
				}
				if lo >= hi {
					continue
				}
				dst := out[s*dim : (s+1)*dim]
				copy(dst, row(values, dim, idx[lo]))
				for j := lo + 1; j < hi; j++ {
					math32.AddInPlace(dst, row(values, dim, idx[j]))
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func row(values []float32, dim int, i int64) []float32 {
	start := i * int64(dim)
	return values[start : start+int64(dim)]
}
