// Gentrace generates synthetic embedding access traces: one trace file per
// table, holding batch*pooling int64 row indices drawn uniformly from the
// table's cardinality. The default table-size list matches the Criteo/DLRM
// configuration, so the generated workload has the same skew between tiny
// and huge tables as the real pipeline.
//
// Usage:
//
//	go run ./cmd/gentrace -out traces/ -batch 4096 -pooling 60
//
// Flags:
//
//	-tables    Dash-separated table cardinalities (default: DLRM Criteo)
//	-batch     Examples per batch (default: 4096)
//	-pooling   Lookups per example, clamped to the table size (default: 60)
//	-seed      Base seed; table i derives its stream from (seed, i)
//	-out       Output directory (created if missing)
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/VIA-Research/LazyDP/internal/randstream"
	"github.com/VIA-Research/LazyDP/internal/trace"
)

// defaultTables is the Criteo Kaggle embedding-table size list used by DLRM.
const defaultTables = "39884406-39043-17289-7420-20263-3-7120-1543-63-38532951-" +
	"2953546-403346-10-2208-11938-155-4-976-14-39979771-25641295-39664984-" +
	"585935-12972-108-36"

func main() {
	tablesFlag := flag.String("tables", defaultTables, "dash-separated table cardinalities")
	batchFlag := flag.Int("batch", 4096, "examples per batch")
	poolingFlag := flag.Int("pooling", 60, "lookups per example (clamped to table size)")
	seedFlag := flag.Uint64("seed", 0x1234567890abcdef, "base seed")
	outFlag := flag.String("out", "traces", "output directory")
	flag.Parse()

	sizes, err := parseTables(*tablesFlag)
	if err != nil {
		fmt.Printf("Bad -tables: %v\n", err)
		os.Exit(1)
	}
	if *batchFlag < 1 || *poolingFlag < 1 {
		fmt.Println("-batch and -pooling must be at least 1")
		os.Exit(1)
	}
	if err := os.MkdirAll(*outFlag, 0o755); err != nil {
		fmt.Printf("Create output directory: %v\n", err)
		os.Exit(1)
	}

	for ti, size := range sizes {
		gathers := int64(*poolingFlag)
		if size < gathers {
			gathers = size
		}

		rng := randstream.New(*seedFlag, ti)
		keys := make([]int64, int64(*batchFlag)*gathers)
		for i := range keys {
			keys[i] = rng.Int64N(size)
		}

		path := filepath.Join(*outFlag, fmt.Sprintf("table_%02d.trace", ti))
		if err := trace.Write(path, keys); err != nil {
			fmt.Printf("Write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("table %2d: cardinality %-9d lookups %-8d -> %s\n", ti, size, len(keys), path)
	}
}

func parseTables(s string) ([]int64, error) {
	parts := strings.Split(s, "-")
	sizes := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, fmt.Errorf("table size %d is not positive", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
