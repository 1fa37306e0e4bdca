package lazydp

import "github.com/zeebo/xxh3"

// SeedFromLabel derives a stable call seed from an arbitrary label using
// xxHash3. Callers that need reproducible yet distinct noise streams per
// logical unit of work (per embedding table, per training step) can build a
// label once and pass the result through WithSeed:
//
//	seed := lazydp.SeedFromLabel(fmt.Sprintf("emb-table-%d/step-%d", table, step))
//	noise, err := lazydp.Normal(std, nEmb, dim, workers, lazydp.WithSeed(seed))
//
// Equal labels always map to the same seed; unrelated labels map to
// unrelated seeds.
func SeedFromLabel(label string) uint64 {
	return xxh3.HashString(label)
}
