package config

import (
	"fmt"

	"github.com/lgbarn/hotseat-chess/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 7

// PerftConfig holds settings for the move-path enumeration mode.
// A zero Depth means the interactive game runs instead.
type PerftConfig struct {
	Depth int

	// Workers is the number of goroutines splitting the root moves.
	// 0 means one per CPU.
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
// All fields use Go zero values: perft is off by default.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{}
}

// Enabled reports whether perft mode was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w",
			p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("perft workers (%d) < 0: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
