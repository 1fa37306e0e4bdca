// Package psort implements a parallel unstable sort: independently sorted
// chunks followed by rounds of pairwise merging.
package psort

import (
	"cmp"
	"slices"

	"golang.org/x/sync/errgroup"
)

// minParallel is the smallest slice length worth forking for. Below this the
// chunk bookkeeping and merge copies cost more than a single sort call.
const minParallel = 4096

// SortFunc sorts v ascending according to cmpFn using up to `workers`
// concurrent goroutines. The sort promises only global ascending order, not
// preservation of input order among equal elements.
func SortFunc[T any](v []T, workers int, cmpFn func(a, b T) int) {
	n := len(v)
	if workers <= 1 || n < minParallel {
		slices.SortFunc(v, cmpFn)
		return
	}
	if workers > n {
		workers = n
	}

	// Sort each chunk independently.
	runs := chunkBounds(n, workers)
	var g errgroup.Group
	for _, r := range runs {
		g.Go(func() error {
			slices.SortFunc(v[r[0]:r[1]], cmpFn)
			return nil
		})
	}
	_ = g.Wait()

	mergeRuns(v, runs, cmpFn)
}

// Int64s sorts v ascending using up to `workers` concurrent goroutines.
func Int64s(v []int64, workers int) {
	n := len(v)
	if workers <= 1 || n < minParallel {
		slices.Sort(v)
		return
	}
	if workers > n {
		workers = n
	}

	runs := chunkBounds(n, workers)
	var g errgroup.Group
	for _, r := range runs {
		g.Go(func() error {
			slices.Sort(v[r[0]:r[1]])
			return nil
		})
	}
	_ = g.Wait()

	mergeRuns(v, runs, cmp.Compare[int64])
}

// chunkBounds splits [0, n) into `workers` contiguous non-empty chunks.
// Precondition: 1 <= workers <= n.
func chunkBounds(n, workers int) [][2]int {
	unit := n / workers
	bounds := make([][2]int, workers)
	for i := range workers {
		bounds[i] = [2]int{i * unit, (i + 1) * unit}
	}
	bounds[workers-1][1] = n
	return bounds
}

// mergeRuns merges adjacent sorted runs pairwise until a single run remains.
// Each round halves the run count; merges within a round write disjoint
// regions of the destination buffer, so they proceed concurrently.
func mergeRuns[T any](v []T, runs [][2]int, cmpFn func(a, b T) int) {
	n := len(v)
	src, dst := v, make([]T, n)
	for len(runs) > 1 {
		next := make([][2]int, 0, (len(runs)+1)/2)
		var g errgroup.Group
		for i := 0; i < len(runs); i += 2 {
			if i+1 == len(runs) {
				// Odd run out: carry it into the next round unchanged.
				last := runs[i]
				g.Go(func() error {
					copy(dst[last[0]:last[1]], src[last[0]:last[1]])
					return nil
				})
				next = append(next, last)
				break
			}
			a, b := runs[i], runs[i+1]
			g.Go(func() error {
				merge(dst[a[0]:b[1]], src[a[0]:a[1]], src[b[0]:b[1]], cmpFn)
				return nil
			})
			next = append(next, [2]int{a[0], b[1]})
		}
		_ = g.Wait()
		src, dst = dst, src
		runs = next
	}
	if &src[0] != &v[0] {
		copy(v, src)
	}
}

// merge merges two sorted slices into dst. len(dst) == len(a) + len(b).
func merge[T any](dst, a, b []T, cmpFn func(x, y T) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmpFn(a[i], b[j]) <= 0 {
			dst[k] = a[i]
			i++
		} else {
			dst[k] = b[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}
