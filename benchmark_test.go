package lazydp

import (
	"fmt"
	"runtime"
	"testing"
)

func benchmarkNormal(b *testing.B, rows, dim, workers int) {
	b.ReportAllocs()
	for range b.N {
		if _, err := Normal(1.0, rows, dim, workers, WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
	b.SetBytes(int64(rows) * int64(dim) * 4)
}

func BenchmarkNormal(b *testing.B) {
	for _, rows := range []int{10_000, 1_000_000} {
		for _, workers := range []int{1, runtime.GOMAXPROCS(0)} {
			b.Run(fmt.Sprintf("rows=%d/workers=%d", rows, workers), func(b *testing.B) {
				benchmarkNormal(b, rows, 64, workers)
			})
		}
	}
}

func benchmarkUnique(b *testing.B, n int, universe int64, algo DedupAlgorithmID, workers int) {
	rng := newTestRNG(b)
	keys := generateKeys(rng, n, universe)

	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		if _, err := Unique(keys, workers, WithDedupAlgorithm(algo)); err != nil {
			b.Fatal(err)
		}
	}
	b.SetBytes(int64(n) * 8)
}

func BenchmarkUnique(b *testing.B) {
	for _, n := range []int{100_000, 1_000_000} {
		for _, algo := range []DedupAlgorithmID{AlgoSort, AlgoBitmap} {
			for _, workers := range []int{1, runtime.GOMAXPROCS(0)} {
				b.Run(fmt.Sprintf("n=%d/%v/workers=%d", n, algo, workers), func(b *testing.B) {
					benchmarkUnique(b, n, int64(n)/4, algo, workers)
				})
			}
		}
	}
}

func benchmarkCoalesce(b *testing.B, nRows, dim int, strategy CoalesceStrategyID, workers int) {
	rng := newTestRNG(b)
	m := randomCOO(b, rng, nRows/4, nRows, dim)

	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		if _, err := Coalesce(m, workers, WithStrategy(strategy)); err != nil {
			b.Fatal(err)
		}
	}
	b.SetBytes(int64(nRows) * int64(dim) * 4)
}

func BenchmarkCoalesce(b *testing.B) {
	for _, nRows := range []int{100_000, 500_000} {
		for _, strategy := range []CoalesceStrategyID{StrategyDirect, StrategyBagged} {
			for _, workers := range []int{1, runtime.GOMAXPROCS(0)} {
				b.Run(fmt.Sprintf("rows=%d/%v/workers=%d", nRows, strategy, workers), func(b *testing.B) {
					benchmarkCoalesce(b, nRows, 64, strategy, workers)
				})
			}
		}
	}
}
