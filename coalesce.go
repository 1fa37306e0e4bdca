package lazydp

import (
	"cmp"
	"fmt"

	lazydperrors "github.com/VIA-Research/LazyDP/errors"
	"github.com/VIA-Research/LazyDP/internal/psort"
)

// CoalesceStrategyID identifies the reduction strategy used to sum the value
// rows of duplicate indices.
type CoalesceStrategyID uint16

const (
	// StrategyDirect partitions the duplicate groups across workers; each
	// worker accumulates its groups with a linear per-group scan. Total
	// work is O(nRows * dim) regardless of the duplicate distribution.
	StrategyDirect CoalesceStrategyID = 0

	// StrategyBagged regroups the rows into an index-list/offset-list pair
	// and hands them to the segmented bag-sum kernel. Preferred when dim is
	// small and group counts are large.
	StrategyBagged CoalesceStrategyID = 1
)

// String returns the strategy name.
func (s CoalesceStrategyID) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyBagged:
		return "bagged"
	default:
		return "unknown"
	}
}

// indexPos pairs a sparse row index with the original position of its value
// row in the un-coalesced matrix.
type indexPos struct {
	index int64
	pos   int64
}

// group describes one run of equal indices in the sorted pair array:
// sorted positions [start, end) all carry index `index`.
type group struct {
	index int64
	start int
	end   int
}

// Coalesce returns the unique, sorted, coalesced equivalent of m: duplicate
// indices are merged and their value rows summed. The input matrix is not
// modified; a new matrix is returned. If m is already coalesced, m itself is
// returned unchanged.
//
// Both strategies accumulate each group's rows in ascending sorted-position
// order, so for identical inputs they produce bit-identical results for any
// worker count.
func Coalesce(m *COO, workers int, opts ...CoalesceOption) (*COO, error) {
	if workers < 1 {
		return nil, lazydperrors.ErrInvalidWorkers
	}
	cfg := &coalesceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.strategy != StrategyDirect && cfg.strategy != StrategyBagged {
		return nil, fmt.Errorf("%w: %d", lazydperrors.ErrUnknownStrategy, cfg.strategy)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	if m.coalesced {
		return m, nil
	}

	pairs, groups := groupRows(m.Indices, workers)

	var values *Dense
	switch cfg.strategy {
	case StrategyDirect:
		values = coalesceDirect(m.Values, pairs, groups, workers)
	case StrategyBagged:
		values = coalesceBagged(m.Values, pairs, groups, workers)
	}

	indices := make([]int64, len(groups))
	for g, gr := range groups {
		indices[g] = gr.index
	}
	return &COO{
		NumEmbeddings: m.NumEmbeddings,
		Dim:           m.Dim,
		Indices:       indices,
		Values:        values,
		coalesced:     true,
	}, nil
}

// groupRows builds (index, originalPosition) pairs, sorts them by index in
// parallel, and walks the sorted array once to find the contiguous run of
// every distinct index. The tie-break on original position is irrelevant to
// the sums themselves (row addition is commutative) but makes the sorted
// order, and with it the float32 accumulation order, unique. Results are
// therefore bit-identical across worker counts and strategies.
func groupRows(indices []int64, workers int) ([]indexPos, []group) {
	pairs := make([]indexPos, len(indices))
	plan, _ := Plan(len(indices), workers) // workers validated by caller
	_ = run(plan, func(_ int, r Range) error {
		for i := r.Start; i < r.End; i++ {
			pairs[i] = indexPos{index: indices[i], pos: int64(i)}
		}
		return nil
	})

	psort.SortFunc(pairs, workers, func(a, b indexPos) int {
		if c := cmp.Compare(a.index, b.index); c != 0 {
			return c
		}
		return cmp.Compare(a.pos, b.pos)
	})

	var groups []group
	for i, p := range pairs {
		if i == 0 || p.index != pairs[i-1].index {
			if i != 0 {
				groups[len(groups)-1].end = i
			}
			groups = append(groups, group{index: p.index, start: i})
		}
	}
	if len(groups) > 0 {
		groups[len(groups)-1].end = len(pairs)
	}
	return pairs, groups
}
