// test_helpers_test.go provides shared test utilities: deterministic RNG
// derivation from the test name, workload generators, and reference
// implementations used as oracles by the property tests.
package lazydp

import (
	"encoding/binary"
	"hash/fnv"
	randv2 "math/rand/v2"
	"slices"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *randv2.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return randv2.New(randv2.NewPCG(testSeed1^s1, testSeed2^s2))
}

// generateKeys returns n keys drawn uniformly from [0, universe).
func generateKeys(rng *randv2.Rand, n int, universe int64) []int64 {
	keys := make([]int64, n)
	for i := range keys {
		keys[i] = rng.Int64N(universe)
	}
	return keys
}

// referenceUnique is the sequential oracle for Unique.
func referenceUnique(keys []int64) []int64 {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}

// randomCOO builds an uncoalesced matrix with nRows value rows over a table
// of numEmbeddings logical rows.
func randomCOO(t testing.TB, rng *randv2.Rand, numEmbeddings, nRows, dim int) *COO {
	t.Helper()
	indices := generateKeys(rng, nRows, int64(numEmbeddings))
	values := NewDense(nRows, dim)
	for i := range values.Data {
		values.Data[i] = float32(rng.NormFloat64())
	}
	m, err := NewCOO(numEmbeddings, dim, indices, values)
	if err != nil {
		t.Fatalf("NewCOO: %v", err)
	}
	return m
}

// referenceCoalesce is the sequential oracle for Coalesce: a map-based
// accumulation with float64 tolerance left to the caller.
func referenceCoalesce(m *COO) (indices []int64, rows map[int64][]float64) {
	rows = make(map[int64][]float64)
	for i, ix := range m.Indices {
		acc, ok := rows[ix]
		if !ok {
			acc = make([]float64, m.Dim)
			rows[ix] = acc
			indices = append(indices, ix)
		}
		row := m.Values.Row(i)
		for j, v := range row {
			acc[j] += float64(v)
		}
	}
	slices.Sort(indices)
	return indices, rows
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
