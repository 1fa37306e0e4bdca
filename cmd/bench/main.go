// Bench is a benchmarking tool for measuring lazydp kernel throughput and
// memory usage: Gaussian sampling, key deduplication, and sparse coalescing.
//
// Usage:
//
//	go run ./cmd/bench -op coalesce -rows 10000000 -dim 64 -workers 8
//	go run ./cmd/bench -op unique -trace traces/table_00.trace -workers 8
//
// Flags:
//
//	-op          Operation: normal, unique, or coalesce (default: coalesce)
//	-rows        Number of input rows/keys when no trace is given
//	-dim         Value row width for normal/coalesce (default: 64)
//	-embeddings  Logical table size; indices are drawn from [0, embeddings)
//	-std         Standard deviation for -op normal (default: 1.0)
//	-workers     Degree of parallelism (default: GOMAXPROCS)
//	-trace       Trace file to load keys from (overrides -rows/-embeddings)
//	-seed        Call seed; 0 means nondeterministic
//	-runs        Timed repetitions per variant (default: 5)
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/VIA-Research/LazyDP"
	"github.com/VIA-Research/LazyDP/internal/randstream"
	"github.com/VIA-Research/LazyDP/internal/trace"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024
	}
	return maxRSS
}

func main() {
	opFlag := flag.String("op", "coalesce", "operation: normal, unique, or coalesce")
	rowsFlag := flag.Int("rows", 10_000_000, "number of input rows/keys")
	dimFlag := flag.Int("dim", 64, "value row width")
	embFlag := flag.Int("embeddings", 1_000_000, "logical table size")
	stdFlag := flag.Float64("std", 1.0, "standard deviation for -op normal")
	workersFlag := flag.Int("workers", runtime.GOMAXPROCS(0), "degree of parallelism")
	traceFlag := flag.String("trace", "", "trace file to load keys from")
	seedFlag := flag.Uint64("seed", 0, "call seed (0 = nondeterministic)")
	runsFlag := flag.Int("runs", 5, "timed repetitions per variant")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	flag.Parse()

	workers := *workersFlag
	var opts []lazydp.SampleOption
	if *seedFlag != 0 {
		opts = append(opts, lazydp.WithSeed(*seedFlag))
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("Create cpu profile: %v\n", err)
			return
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("Start cpu profile: %v\n", err)
			return
		}
		defer pprof.StopCPUProfile()
	}

	switch *opFlag {
	case "normal":
		benchNormal(float32(*stdFlag), *rowsFlag, *dimFlag, workers, *runsFlag, opts)
	case "unique":
		benchUnique(loadKeys(*traceFlag, *rowsFlag, *embFlag), workers, *runsFlag)
	case "coalesce":
		benchCoalesce(loadKeys(*traceFlag, *rowsFlag, *embFlag), *embFlag, *dimFlag, workers, *runsFlag, opts)
	default:
		fmt.Printf("Unknown -op %q\n", *opFlag)
		os.Exit(1)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			fmt.Printf("Create mem profile: %v\n", err)
			return
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Printf("Write mem profile: %v\n", err)
		}
	}

	fmt.Printf("Peak RSS: %.1f MiB\n", float64(getMaxRSS())/(1<<20))
}

// loadKeys reads keys from a trace file, or synthesizes a uniform workload.
func loadKeys(path string, rows, embeddings int) []int64 {
	if path != "" {
		fmt.Printf("Loading trace %s...\n", path)
		keys, err := trace.Read(path)
		if err != nil {
			fmt.Printf("Read trace: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Loaded %d keys\n", len(keys))
		return keys
	}

	fmt.Printf("Generating %d uniform keys over [0, %d)...\n", rows, embeddings)
	rng := randstream.New(0x6c617a796470, 0)
	keys := make([]int64, rows)
	for i := range keys {
		keys[i] = rng.Int64N(int64(embeddings))
	}
	return keys
}

func benchNormal(std float32, rows, dim, workers, runs int, opts []lazydp.SampleOption) {
	fmt.Printf("Normal: %dx%d, std=%.2f, workers=%d\n", rows, dim, std, workers)
	for r := range runs {
		start := time.Now()
		out, err := lazydp.Normal(std, rows, dim, workers, opts...)
		if err != nil {
			fmt.Printf("Normal: %v\n", err)
			os.Exit(1)
		}
		elapsed := time.Since(start)
		fmt.Printf("  run %d: %v (%.1f M elems/s)  checksum=%016x\n",
			r, elapsed, float64(rows*dim)/elapsed.Seconds()/1e6, out.Checksum())
	}
}

func benchUnique(keys []int64, workers, runs int) {
	algos := []lazydp.DedupAlgorithmID{lazydp.AlgoSort, lazydp.AlgoBitmap}
	for _, algo := range algos {
		fmt.Printf("Unique/%s: %d keys, workers=%d\n", algo, len(keys), workers)
		for r := range runs {
			start := time.Now()
			out, err := lazydp.Unique(keys, workers, lazydp.WithDedupAlgorithm(algo))
			if err != nil {
				fmt.Printf("Unique: %v\n", err)
				os.Exit(1)
			}
			elapsed := time.Since(start)
			fmt.Printf("  run %d: %v (%.1f M keys/s)  unique=%d\n",
				r, elapsed, float64(len(keys))/elapsed.Seconds()/1e6, len(out))
		}
	}
}

func benchCoalesce(keys []int64, embeddings, dim, workers, runs int, opts []lazydp.SampleOption) {
	fmt.Printf("Generating %dx%d value rows...\n", len(keys), dim)
	values, err := lazydp.Normal(1.0, len(keys), dim, workers, opts...)
	if err != nil {
		fmt.Printf("Normal: %v\n", err)
		os.Exit(1)
	}
	m, err := lazydp.NewCOO(embeddings, dim, keys, values)
	if err != nil {
		fmt.Printf("NewCOO: %v\n", err)
		os.Exit(1)
	}

	checksums := make(map[lazydp.CoalesceStrategyID]uint64)
	for _, strategy := range []lazydp.CoalesceStrategyID{lazydp.StrategyDirect, lazydp.StrategyBagged} {
		fmt.Printf("Coalesce/%s: %d rows, dim=%d, workers=%d\n", strategy, len(keys), dim, workers)
		for r := range runs {
			start := time.Now()
			out, err := lazydp.Coalesce(m, workers, lazydp.WithStrategy(strategy))
			if err != nil {
				fmt.Printf("Coalesce: %v\n", err)
				os.Exit(1)
			}
			elapsed := time.Since(start)
			fmt.Printf("  run %d: %v (%.1f M rows/s)  coalesced=%d\n",
				r, elapsed, float64(len(keys))/elapsed.Seconds()/1e6, out.NumRows())
			checksums[strategy] = out.Values.Checksum()
		}
	}
	if checksums[lazydp.StrategyDirect] != checksums[lazydp.StrategyBagged] {
		fmt.Println("WARNING: strategies disagree on coalesced values")
	} else {
		fmt.Printf("Strategies agree: checksum=%016x\n", checksums[lazydp.StrategyDirect])
	}
}
