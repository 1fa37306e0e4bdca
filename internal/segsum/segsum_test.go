package segsum

import (
	"math"
	"math/rand/v2"
	"testing"
)

func sequentialSum(values []float32, dim int, idx, offsets []int64) []float32 {
	out := make([]float32, len(offsets)*dim)
	for s := range offsets {
		lo := offsets[s]
		hi := int64(len(idx))
		if s+1 < len(offsets) {
			hi = offsets[s+1]
		}
		for j := lo; j < hi; j++ {
			row := values[idx[j]*int64(dim) : (idx[j]+1)*int64(dim)]
			for d := 0; d < dim; d++ {
				out[s*dim+d] += row[d]
			}
		}
	}
	return out
}

func TestSumKnownAnswer(t *testing.T) {
	// Two segments over scalar rows: {10, 30} and {20, 40, 50}.
	values := []float32{10, 20, 30, 40, 50}
	idx := []int64{0, 2, 1, 3, 4}
	offsets := []int64{0, 2}

	got := Sum(values, 1, idx, offsets, 2)
	want := []float32{40, 110}
	if len(got) != len(want) {
		t.Fatalf("got %d outputs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("segment %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSumMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewPCG(0x736567, 0x1))

	cases := []struct {
		nRows, dim, nSegs int
	}{
		{1, 1, 1},
		{10, 4, 3},
		{1000, 16, 37},
		{5000, 8, 1},
		{5000, 8, 5000},
	}
	for _, tc := range cases {
		values := make([]float32, tc.nRows*tc.dim)
		for i := range values {
			values[i] = float32(rng.IntN(100))
		}
		idx := make([]int64, tc.nRows)
		for i := range idx {
			idx[i] = int64(i)
		}
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

		// Sorted segment starts, first always zero.
		offsets := make([]int64, tc.nSegs)
		for i := 1; i < tc.nSegs; i++ {
			offsets[i] = rng.Int64N(int64(tc.nRows))
		}
		for i := 1; i < tc.nSegs; i++ {
			if offsets[i] < offsets[i-1] {
				offsets[i] = offsets[i-1]
			}
		}

		want := sequentialSum(values, tc.dim, idx, offsets)
		for _, workers := range []int{1, 2, 4, 13} {
			got := Sum(values, tc.dim, idx, offsets, workers)
			for i := range want {
				if math.Abs(float64(got[i]-want[i])) > 1e-3 {
					t.Fatalf("rows=%d dim=%d segs=%d workers=%d: output %d is %v, want %v",
						tc.nRows, tc.dim, tc.nSegs, workers, i, got[i], want[i])
				}
			}
		}
	}
}

func TestSumWorkerCountInvariant(t *testing.T) {
	// Integer-valued rows accumulate exactly in float32, so outputs must be
	// bit-identical no matter how the segments were partitioned.
	rng := rand.New(rand.NewPCG(0x736567, 0x2))

	const nRows, dim, nSegs = 2000, 8, 101
	values := make([]float32, nRows*dim)
	for i := range values {
		values[i] = float32(rng.IntN(7)) - 3
	}
	idx := make([]int64, nRows)
	for i := range idx {
		idx[i] = int64(i)
	}
	offsets := make([]int64, nSegs)
	for i := 1; i < nSegs; i++ {
		offsets[i] = offsets[i-1] + rng.Int64N(nRows/nSegs)
	}

	base := Sum(values, dim, idx, offsets, 1)
	for _, workers := range []int{2, 3, 8, 32} {
		got := Sum(values, dim, idx, offsets, workers)
		for i := range base {
			if got[i] != base[i] {
				t.Fatalf("workers=%d: output %d differs from single worker", workers, i)
			}
		}
	}
}

func TestSumEmptySegments(t *testing.T) {
	values := []float32{1, 2}
	idx := []int64{0, 1}
	// Segment 1 is empty: offsets[1] == offsets[2].
	offsets := []int64{0, 1, 1}

	got := Sum(values, 1, idx, offsets, 4)
	want := []float32{1, 0, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("segment %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSumNoSegments(t *testing.T) {
	got := Sum(nil, 4, nil, nil, 2)
	if len(got) != 0 {
		t.Fatalf("expected empty output, got %d values", len(got))
	}
}
