package gemmbench

import (
	"github.com/pkg/errors"
)

// Tuning defaults.
const (
	// DefaultTileSize is the edge of the cubic blocks used by the tiled
	// kernels. 64 float32s per edge keeps three blocks (48KB) within a
	// typical L2.
	DefaultTileSize = 64

	// DefaultNumRuns is the number of timed repetitions averaged per kernel.
	DefaultNumRuns = 2

	// DefaultWarmupRuns untimed runs precede the timed ones.
	DefaultWarmupRuns = 1

	// DefaultSeed seeds the benchmark inputs.
	DefaultSeed uint64 = 0x5eed
)

// Config holds the benchmark parameters.
type Config struct {
	// TileSize is the block edge for GEMMTiled and GEMMParallel. Any value
	// >= 1 is correct; the best one depends on the cache hierarchy.
	TileSize int

	NumRuns    int
	WarmupRuns int
	Seed       uint64

	// Tolerance is used by the reference check.
	Tolerance ToleranceConfig
}

// DefaultConfig returns the configuration used by the gemmbench command.
func DefaultConfig() Config {
	return Config{
		TileSize:   DefaultTileSize,
		NumRuns:    DefaultNumRuns,
		WarmupRuns: DefaultWarmupRuns,
		Seed:       DefaultSeed,
		Tolerance:  RelaxedTolerance(),
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.TileSize < 1:
		return NewConfigError("TileSize", errors.Errorf("must be >= 1, got %d", c.TileSize))
	case c.NumRuns < 1:
		return NewConfigError("NumRuns", errors.Errorf("must be >= 1, got %d", c.NumRuns))
	case c.WarmupRuns < 0:
		return NewConfigError("WarmupRuns", errors.Errorf("must be >= 0, got %d", c.WarmupRuns))
	}
	return nil
}
