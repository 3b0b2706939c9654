package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithASCII selects letter glyphs.
func (b *ConfigBuilder) WithASCII(enabled bool) *ConfigBuilder {
	b.cfg.Display.ASCII = enabled
	return b
}

// WithFlip draws the board from Black's side.
func (b *ConfigBuilder) WithFlip(enabled bool) *ConfigBuilder {
	b.cfg.Display.Flip = enabled
	return b
}

// WithPerft enables perft mode.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Workers = workers
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
