package lazydp

import (
	lazydperrors "github.com/VIA-Research/LazyDP/errors"
	"github.com/VIA-Research/LazyDP/internal/math32"
	"github.com/VIA-Research/LazyDP/internal/randstream"
)

// Normal returns a freshly allocated nEmb x dim matrix whose entries are
// independent draws from Normal(mean=0, std=std). The row range is
// partitioned across workers; each partition owns one generator and writes a
// disjoint row range, so the fill needs no synchronization beyond the final
// join.
//
// The call is deterministic when WithSeed is supplied: the same seed, shape
// and worker count reproduce the same matrix bit for bit.
func Normal(std float32, nEmb, dim, workers int, opts ...SampleOption) (*Dense, error) {
	if nEmb < 0 {
		return nil, lazydperrors.ErrNegativeRows
	}
	if dim < 1 {
		return nil, lazydperrors.ErrInvalidDim
	}
	plan, err := Plan(nEmb, workers)
	if err != nil {
		return nil, err
	}
	cfg := newSampleConfig(opts)
	seed := cfg.callSeed()

	out := NewDense(nEmb, dim)
	err = run(plan, func(part int, r Range) error {
		rng := randstream.New(seed, part)
		rows := out.Data[r.Start*dim : r.End*dim]
		for i := range rows {
			rows[i] = float32(rng.NormFloat64() * float64(std))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// NormalWithExtra returns a freshly allocated (len(perRowStd)+extra) x dim
// matrix. Rows [0, len(perRowStd)) are drawn from Normal(0, 1) and scaled
// row-wise by perRowStd[i], equivalent to drawing from Normal(0,
// perRowStd[i]) but implemented as draw-then-scale. Rows beyond that are
// drawn from Normal(0, 1) and left unscaled; they are caller-reserved
// padding, typically holding gradients produced later in the pipeline.
func NormalWithExtra(perRowStd []float32, dim, extra, workers int, opts ...SampleOption) (*Dense, error) {
	if len(perRowStd) == 0 {
		return nil, lazydperrors.ErrEmptyStd
	}
	if dim < 1 {
		return nil, lazydperrors.ErrInvalidDim
	}
	if extra < 0 {
		return nil, lazydperrors.ErrNegativeExtra
	}
	nEmb := len(perRowStd)
	plan, err := Plan(nEmb+extra, workers)
	if err != nil {
		return nil, err
	}
	cfg := newSampleConfig(opts)
	seed := cfg.callSeed()

	out := NewDense(nEmb+extra, dim)
	err = run(plan, func(part int, r Range) error {
		rng := randstream.New(seed, part)
		for i := r.Start; i < r.End; i++ {
			row := out.Row(i)
			for j := range row {
				row[j] = float32(rng.NormFloat64())
			}
			if i < nEmb {
				math32.ScaleInPlace(row, perRowStd[i])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
