package lazydp

import (
	"golang.org/x/sync/errgroup"

	lazydperrors "github.com/VIA-Research/LazyDP/errors"
)

// Range is a half-open [Start, End) slice of work items owned by exactly one
// worker for the duration of one call.
type Range struct {
	Start int
	End   int
}

// Len returns the number of items in the range.
func (r Range) Len() int { return r.End - r.Start }

// PartitionPlan is an ordered sequence of disjoint ranges whose union is
// exactly [0, nItems). Ranges may be empty when nItems < workers; empty
// ranges are legal no-ops and are skipped by the fork-join runner rather
// than handed to workers.
type PartitionPlan []Range

// Plan splits nItems work items into exactly `workers` contiguous ranges.
// Each range holds nItems/workers items; the last range also absorbs the
// remainder. The division is unconditional, so workers > nItems yields
// zero-sized leading ranges with all items in the final range. Deterministic;
// no side effects.
func Plan(nItems, workers int) (PartitionPlan, error) {
	if workers < 1 {
		return nil, lazydperrors.ErrInvalidWorkers
	}
	if nItems < 0 {
		return nil, lazydperrors.ErrNegativeRows
	}

	unit := nItems / workers
	plan := make(PartitionPlan, workers)
	for i := range workers {
		plan[i] = Range{Start: i * unit, End: (i + 1) * unit}
	}
	plan[workers-1].End = nItems
	return plan, nil
}

// run executes fn over every non-empty range of the plan, one goroutine per
// range, and returns only after all workers complete. part is the range's
// position in the plan, stable across calls with the same plan, so callers
// can derive per-partition state (e.g. random streams) from it.
func run(plan PartitionPlan, fn func(part int, r Range) error) error {
	var g errgroup.Group
	for i, r := range plan {
		if r.Len() == 0 {
			continue
		}
		g.Go(func() error {
			return fn(i, r)
		})
	}
	return g.Wait()
}
