// Package lazydp implements multi-threaded numeric kernels for
// embedding-table training pipelines: batch Gaussian noise sampling,
// integer key deduplication, and sparse gradient coalescing.
//
// Every entry point is a pure function from input arrays plus per-call
// configuration to a newly allocated result. No call retains state, no call
// mutates its sparse-matrix input, and the degree of parallelism is an
// explicit per-call argument.
//
// # Basic Usage
//
// Sampling a noise matrix:
//
//	noise, err := lazydp.Normal(2.0, nEmb, dim, workers)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Deduplicating embedding row indices:
//
//	rows, err := lazydp.Unique(accessed, workers)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Coalescing a sparse gradient:
//
//	grad, err := lazydp.NewCOO(nEmb, dim, indices, values)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	grad, err = lazydp.Coalesce(grad, workers, lazydp.WithStrategy(lazydp.StrategyBagged))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Public API: sampler.go (Normal, NormalWithExtra), unique.go (Unique),
//     coalesce.go (Coalesce), partition.go (Plan)
//   - Configuration: options.go (per-call functional options), seed.go
//   - Data model: dense.go (Dense), coo.go (COO)
//   - Kernels: internal/psort (parallel sort), internal/scan (prefix sums),
//     internal/segsum (bag sum), internal/randstream (per-partition streams)
//   - Tooling: internal/trace (access-trace files), cmd/gentrace, cmd/bench
package lazydp
