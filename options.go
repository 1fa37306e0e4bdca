package lazydp

import "github.com/VIA-Research/LazyDP/internal/randstream"

// SampleOption is a functional option for configuring a sampling call.
type SampleOption func(*sampleConfig)

type sampleConfig struct {
	seed   uint64
	seeded bool
}

// callSeed returns the configured seed, or draws a fresh one. The draw
// happens before the parallel region starts, so workers never touch a shared
// entropy source.
func (c *sampleConfig) callSeed() uint64 {
	if c.seeded {
		return c.seed
	}
	return randstream.CallSeed()
}

func newSampleConfig(opts []SampleOption) *sampleConfig {
	cfg := &sampleConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed fixes the call-level seed, making the call deterministic.
// Partitions still receive independent streams derived from the seed and
// their partition index. Use SeedFromLabel to derive stable seeds from
// caller-meaningful names.
func WithSeed(seed uint64) SampleOption {
	return func(c *sampleConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// UniqueOption is a functional option for configuring a Unique call.
type UniqueOption func(*uniqueConfig)

type uniqueConfig struct {
	algorithm DedupAlgorithmID
}

// WithDedupAlgorithm selects the deduplication algorithm.
// Default is AlgoSort.
func WithDedupAlgorithm(algo DedupAlgorithmID) UniqueOption {
	return func(c *uniqueConfig) {
		c.algorithm = algo
	}
}

// CoalesceOption is a functional option for configuring a Coalesce call.
type CoalesceOption func(*coalesceConfig)

type coalesceConfig struct {
	strategy CoalesceStrategyID
}

// WithStrategy selects the reduction strategy used to sum duplicate rows.
// Default is StrategyDirect.
func WithStrategy(s CoalesceStrategyID) CoalesceOption {
	return func(c *coalesceConfig) {
		c.strategy = s
	}
}
