// Package config provides configuration for hotseat-chess.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/hotseat-chess/internal/errors"
)

// Verbosity levels for LogFile output.
const (
	Silent     = 0 // nothing
	Results    = 1 // game results
	Commentary = 2 // running commentary, one line per move
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // Silent, Results or Commentary

	// StartFEN, when set, replaces the standard starting position.
	StartFEN string

	Display DisplayConfig
	Perft   PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Results,
		Display:    *NewDisplayConfig(),
		Perft:      *NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the whole configuration and each of its sections.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d outside %d..%d: %w",
			c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	return c.Perft.Validate()
}

// Logf writes a line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the log writer.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}
