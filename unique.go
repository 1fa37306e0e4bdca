package lazydp

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	lazydperrors "github.com/VIA-Research/LazyDP/errors"
	"github.com/VIA-Research/LazyDP/internal/psort"
	"github.com/VIA-Research/LazyDP/internal/scan"
)

// DedupAlgorithmID identifies the deduplication algorithm used by Unique.
type DedupAlgorithmID uint16

const (
	// AlgoSort sorts the keys in parallel and removes adjacent duplicates.
	AlgoSort DedupAlgorithmID = 0

	// AlgoBitmap inserts the keys into a 64-bit roaring bitmap and reads
	// them back in ascending order. Single-threaded, but competitive when
	// keys are drawn from dense ranges where containers stay compact.
	AlgoBitmap DedupAlgorithmID = 1
)

// String returns the algorithm name.
func (a DedupAlgorithmID) String() string {
	switch a {
	case AlgoSort:
		return "sort"
	case AlgoBitmap:
		return "bitmap"
	default:
		return "unknown"
	}
}

// Unique returns a new ascending slice containing each distinct key exactly
// once. The input slice is never modified. Order-of-appearance information
// is lost: the only ordering guarantee on the output is ascending.
func Unique(keys []int64, workers int, opts ...UniqueOption) ([]int64, error) {
	if workers < 1 {
		return nil, lazydperrors.ErrInvalidWorkers
	}
	cfg := &uniqueConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch cfg.algorithm {
	case AlgoSort:
		return uniqueSort(keys, workers), nil
	case AlgoBitmap:
		return uniqueBitmap(keys), nil
	}
	return nil, fmt.Errorf("%w: %d", lazydperrors.ErrUnknownAlgorithm, cfg.algorithm)
}

// uniqueSort sorts a copy of the keys, then removes adjacent duplicates with
// a mark / exclusive-scan / scatter pass over partitions. Duplicate removal
// relies strictly on the prior full sort: equal keys are only detected when
// adjacent.
func uniqueSort(keys []int64, workers int) []int64 {
	sorted := slices.Clone(keys)
	psort.Int64s(sorted, workers)
	if len(sorted) < 2 {
		return sorted
	}

	// Mark the first occurrence of every distinct value. Reading the
	// predecessor across a partition boundary is safe: marks and sorted
	// are written and read in disjoint phases.
	marks := make([]int64, len(sorted))
	plan, _ := Plan(len(sorted), workers) // workers validated by caller
	_ = run(plan, func(_ int, r Range) error {
		for i := r.Start; i < r.End; i++ {
			if i == 0 || sorted[i] != sorted[i-1] {
				marks[i] = 1
			}
		}
		return nil
	})

	// An exclusive prefix sum over the marks gives each marked position its
	// output rank; scatter the values into place.
	ranks := scan.Exclusive(marks, workers)
	nUnique := ranks[len(ranks)-1] + marks[len(marks)-1]
	out := make([]int64, nUnique)
	_ = run(plan, func(_ int, r Range) error {
		for i := r.Start; i < r.End; i++ {
			if marks[i] == 1 {
				out[ranks[i]] = sorted[i]
			}
		}
		return nil
	})
	return out
}

// signBias flips the sign bit so that the unsigned bitmap order matches the
// signed int64 order, keeping the ascending-output contract for negative
// keys.
const signBias = uint64(1) << 63

func uniqueBitmap(keys []int64) []int64 {
	bm := roaring64.NewBitmap()
	for _, k := range keys {
		bm.Add(uint64(k) ^ signBias)
	}

	out := make([]int64, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, int64(it.Next()^signBias))
	}
	return out
}
