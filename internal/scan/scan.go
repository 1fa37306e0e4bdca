// Package scan provides a parallel exclusive prefix sum over int64 slices.
// It is the backbone of the mark / scan / scatter grouping passes used by
// key deduplication and bagged coalescing.
package scan

import "golang.org/x/sync/errgroup"

// minParallel is the smallest input worth forking for.
const minParallel = 4096

// Exclusive returns the exclusive prefix sum of v: out[0] == 0 and
// out[i] == v[0] + ... + v[i-1]. The input is split into contiguous chunks;
// per-chunk totals are combined sequentially so each worker can then scan
// its chunk independently with the correct base offset.
func Exclusive(v []int64, workers int) []int64 {
	out := make([]int64, len(v))
	if len(v) == 0 {
		return out
	}
	if workers <= 1 || len(v) < minParallel {
		var acc int64
		for i, x := range v {
			out[i] = acc
			acc += x
		}
		return out
	}
	if workers > len(v) {
		workers = len(v)
	}

	unit := len(v) / workers
	bounds := make([][2]int, workers)
	for i := range workers {
		bounds[i] = [2]int{i * unit, (i + 1) * unit}
	}
	bounds[workers-1][1] = len(v)

	// Pass 1: per-chunk totals.
	totals := make([]int64, workers)
	var g errgroup.Group
	for i, b := range bounds {
		g.Go(func() error {
			var sum int64
			for _, x := range v[b[0]:b[1]] {
				sum += x
			}
			totals[i] = sum
			return nil
		})
	}
	_ = g.Wait()

	// Pass 2: exclusive scan of the chunk totals (one entry per worker).
	var acc int64
	for i, t := range totals {
		totals[i] = acc
		acc += t
	}

	// Pass 3: per-chunk exclusive scan with the chunk's base offset.
	for i, b := range bounds {
		g.Go(func() error {
			acc := totals[i]
			for j := b[0]; j < b[1]; j++ {
				out[j] = acc
				acc += v[j]
			}
			return nil
		})
	}
	_ = g.Wait()

	return out
}
