package lazydp

import "github.com/VIA-Research/LazyDP/internal/math32"

// coalesceDirect sums every group with a linear scan over its members. The
// groups, not the raw rows, are partitioned across workers, so no two
// workers ever write the same output slot; rows within a group must
// accumulate serially because they target the same slot.
func coalesceDirect(values *Dense, pairs []indexPos, groups []group, workers int) *Dense {
	out := NewDense(len(groups), values.Cols)
	plan, _ := Plan(len(groups), workers) // workers validated by caller
	_ = run(plan, func(_ int, r Range) error {
		for g := r.Start; g < r.End; g++ {
			gr := groups[g]
			dst := out.Row(g)
			copy(dst, values.Row(int(pairs[gr.start].pos)))
			for j := gr.start + 1; j < gr.end; j++ {
				math32.AddInPlace(dst, values.Row(int(pairs[j].pos)))
			}
		}
		return nil
	})
	return out
}
