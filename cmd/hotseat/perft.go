package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lgbarn/hotseat-chess/internal/chess"
	"github.com/lgbarn/hotseat-chess/internal/config"
	"github.com/lgbarn/hotseat-chess/internal/engine"
	"github.com/lgbarn/hotseat-chess/internal/worker"
)

// runPerft prints the node count below each root move and the total, in
// the "move: nodes" layout other engines use for divide output.
func runPerft(ctx context.Context, cfg *config.Config) error {
	board, toMove, err := perftBoard(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := worker.Divide(ctx, board, toMove, cfg.Perft.Depth, cfg.Perft.Workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for _, e := range result.Entries {
		fmt.Fprintf(cfg.OutputFile, "%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Fprintf(cfg.OutputFile, "\nNodes searched: %d\n", result.Total)

	cfg.Logf(config.Results, "perft %d of %s: %d nodes in %v",
		cfg.Perft.Depth, engine.BoardToFEN(board, toMove), result.Total, elapsed.Round(time.Millisecond))
	return nil
}

func perftBoard(cfg *config.Config) (*chess.Board, chess.Colour, error) {
	if cfg.StartFEN == "" {
		return engine.NewInitialBoard(), chess.White, nil
	}
	return engine.NewBoardFromFEN(cfg.StartFEN)
}
