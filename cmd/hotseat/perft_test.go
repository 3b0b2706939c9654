package main

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/hotseat-chess/internal/config"
	"github.com/lgbarn/hotseat-chess/internal/errors"
	"github.com/lgbarn/hotseat-chess/internal/testutil"
)

func TestRunPerft(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		depth     int
		wantLines int
		wantTotal string
	}{
		{"initial depth 1", "", 1, 20, "Nodes searched: 20"},
		{"initial depth 2", "", 2, 20, "Nodes searched: 400"},
		{"kiwipete depth 1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48, "Nodes searched: 48"},
		{"stalemate", "k7/8/1QK5/8/8/8/8/8 b - - 0 1", 2, 0, "Nodes searched: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, log := &bytes.Buffer{}, &bytes.Buffer{}
			cfg := config.NewConfigBuilder().
				WithStartFEN(tt.fen).
				WithPerft(tt.depth, 2).
				WithOutput(out).
				WithLogFile(log).
				Build()

			testutil.AssertNoError(t, runPerft(context.Background(), cfg))

			text := strings.TrimSpace(out.String())
			lines := strings.Split(text, "\n")
			testutil.AssertEqual(t, lines[len(lines)-1], tt.wantTotal)

			moveLines := 0
			for _, line := range lines {
				if strings.Contains(line, ": ") && !strings.HasPrefix(line, "Nodes") {
					moveLines++
				}
			}
			testutil.AssertEqual(t, moveLines, tt.wantLines)
			testutil.AssertTrue(t, strings.Contains(log.String(), "perft"), "log: %q", log.String())
		})
	}
}

func TestRunPerft_DivideFormat(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithVerbosity(config.Silent).
		WithPerft(2, 1).
		WithOutput(out).
		Build()

	testutil.AssertNoError(t, runPerft(context.Background(), cfg))

	testutil.AssertTrue(t, strings.Contains(out.String(), "e2e4: 20\n"), "output:\n%s", out.String())
	testutil.AssertTrue(t, strings.Contains(out.String(), "g1f3: 20\n"), "output:\n%s", out.String())
}

func TestRunPerft_BadFEN(t *testing.T) {
	cfg := config.NewConfigBuilder().
		WithStartFEN("nonsense").
		WithPerft(1, 1).
		WithOutput(&bytes.Buffer{}).
		Build()

	err := runPerft(context.Background(), cfg)
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrInvalidFEN), "got %v", err)
}
