// hotseat is a two-player chess game for one terminal.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/hotseat-chess/internal/config"
	"github.com/lgbarn/hotseat-chess/internal/game"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("hotseat version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(run())
}

// run plays or counts according to the flags and returns the exit code.
func run() int {
	cfg := config.NewConfig()
	applyFlags(cfg)

	file, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if file != nil {
		defer file.Close()
		cfg.LogFile = file
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if cfg.Perft.Enabled() {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runPerft(ctx, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	g, err := game.NewFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if err := play(cfg, g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// openLogFile opens the file named by -L (append) or -l (truncate), -L
// taking precedence. It returns nil when neither is set; the caller closes
// the file.
func openLogFile() (*os.File, error) {
	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", *appendLog, err)
		}
		return file, nil
	}

	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			return nil, fmt.Errorf("creating log file %s: %w", *logFile, err)
		}
		return file, nil
	}
	return nil, nil
}

// play runs the interactive game on the terminal. Log lines meant for
// stderr are held back while the screen is active and written afterwards.
func play(cfg *config.Config, g *game.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	var held *bytes.Buffer
	if cfg.LogFile == os.Stderr {
		held = &bytes.Buffer{}
		cfg.LogFile = held
	}

	newUI(screen, cfg, g).run()
	screen.Fini()

	if held != nil {
		_, err = io.Copy(os.Stderr, held)
	}
	return err
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: hotseat [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two players, one terminal. Click a piece, then click where it goes.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nKeys:\n")
	fmt.Fprintf(os.Stderr, "  arrows        move the cursor\n")
	fmt.Fprintf(os.Stderr, "  enter, space  click the square under the cursor\n")
	fmt.Fprintf(os.Stderr, "  f             flip the board\n")
	fmt.Fprintf(os.Stderr, "  n             new game\n")
	fmt.Fprintf(os.Stderr, "  q, esc        quit\n")
}
