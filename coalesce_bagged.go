package lazydp

import (
	"github.com/VIA-Research/LazyDP/internal/scan"
	"github.com/VIA-Research/LazyDP/internal/segsum"
)

// coalesceBagged reframes the grouping as an index-list/offset-list pair and
// delegates the per-group sums to the segmented bag-sum kernel.
//
// embeddingIdx[j] is the original position of the j-th sorted pair (a
// permutation of [0, nRows)); embeddingOffset[g] is the sorted position at
// which group g begins. The offsets are derived with a mark /
// exclusive-scan / scatter pass over the sorted pairs rather than read off
// the walked groups: position 0 and every position whose index differs from
// its predecessor get a mark, the exclusive prefix sum of the marks assigns
// each marked position its group number, and a scatter writes the position
// into that slot. Iteration is index-enumerated throughout.
func coalesceBagged(values *Dense, pairs []indexPos, groups []group, workers int) *Dense {
	n := len(pairs)
	embeddingIdx := make([]int64, n)
	marks := make([]int64, n)
	plan, _ := Plan(n, workers) // workers validated by caller
	_ = run(plan, func(_ int, r Range) error {
		for i := r.Start; i < r.End; i++ {
			embeddingIdx[i] = pairs[i].pos
			if i == 0 || pairs[i].index != pairs[i-1].index {
				marks[i] = 1
			}
		}
		return nil
	})

	ranks := scan.Exclusive(marks, workers)
	embeddingOffset := make([]int64, len(groups))
	_ = run(plan, func(_ int, r Range) error {
		for i := r.Start; i < r.End; i++ {
			if marks[i] == 1 {
				embeddingOffset[ranks[i]] = int64(i)
			}
		}
		return nil
	})

	return &Dense{
		Rows: len(groups),
		Cols: values.Cols,
		Data: segsum.Sum(values.Data, values.Cols, embeddingIdx, embeddingOffset, workers),
	}
}
