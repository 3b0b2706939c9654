// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/hotseat-chess/internal/config"
)

var (
	// Position
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the standard one")

	// Display options
	asciiPieces = flag.Bool("ascii", false, "Draw pieces as letters (KQRBNP/kqrbnp)")
	flipBoard   = flag.Bool("flip", false, "Draw the board from Black's side")
	noCoords    = flag.Bool("nocoords", false, "Don't label files and ranks")

	// Perft
	perftDepth   = flag.Int("perft", 0, "Print the move-path count of each root move to depth N, then exit")
	perftWorkers = flag.Int("workers", 0, "Goroutines used by -perft (0 = one per CPU)")

	// Logging
	logFile   = flag.String("l", "", "Write game log to file")
	appendLog = flag.String("L", "", "Append game log to file")
	verbose   = flag.Bool("v", false, "Log every move (running commentary)")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no result line)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyDisplayFlags(cfg)
	applyPerftFlags(cfg)

	cfg.StartFEN = *startFEN

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Commentary
	}
}

// applyDisplayFlags configures how the board is drawn.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.ASCII = *asciiPieces
	cfg.Display.Flip = *flipBoard
	cfg.Display.ShowCoordinates = !*noCoords
}

// applyPerftFlags configures perft mode.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Workers = *perftWorkers
}
