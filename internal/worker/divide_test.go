package worker

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/lgbarn/hotseat-chess/internal/chess"
	"github.com/lgbarn/hotseat-chess/internal/engine"
	"github.com/lgbarn/hotseat-chess/internal/errors"
	"github.com/lgbarn/hotseat-chess/internal/testutil"
)

func TestDivide_InitialPosition(t *testing.T) {
	tests := []struct {
		depth   int
		workers int
		want    uint64
	}{
		{1, 1, 20},
		{2, 4, 400},
		{3, 0, 8902},
	}

	for _, tt := range tests {
		board := engine.NewInitialBoard()
		before := board.Copy()

		got, err := Divide(context.Background(), board, chess.White, tt.depth, tt.workers)

		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got.Total, tt.want, "depth %d", tt.depth)
		testutil.AssertEqual(t, len(got.Entries), 20)
		testutil.AssertBoardUnchanged(t, before, board)
	}
}

func TestDivide_MatchesSerialPerft(t *testing.T) {
	board, toMove, err := engine.NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err)

	got, err := Divide(context.Background(), board, toMove, 2, 3)
	testutil.AssertNoError(t, err)

	moves := engine.AllLegalMoves(board, toMove)
	testutil.AssertEqual(t, len(got.Entries), len(moves))
	for i, entry := range got.Entries {
		testutil.AssertEqual(t, entry.Move, moves[i], "entry %d out of order", i)

		after := board.Copy()
		engine.ApplyMove(after, entry.Move.From, entry.Move.To)
		testutil.AssertEqual(t, entry.Nodes, engine.Perft(after, toMove.Opposite(), 1), "nodes below %v", entry.Move)
	}
	testutil.AssertEqual(t, got.Total, engine.Perft(board, toMove, 2))
}

func TestDivide_NoMoves(t *testing.T) {
	board, toMove, err := engine.NewBoardFromFEN("k7/8/1QK5/8/8/8/8/8 b - - 0 1")
	testutil.AssertNoError(t, err)

	got, err := Divide(context.Background(), board, toMove, 3, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Total, uint64(0))
	testutil.AssertTrue(t, len(got.Entries) == 0)
}

func TestDivide_InvalidDepth(t *testing.T) {
	_, err := Divide(context.Background(), engine.NewInitialBoard(), chess.White, 0, 1)
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrInvalidConfig), "got %v", err)
}

func TestDivide_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Divide(ctx, engine.NewInitialBoard(), chess.White, 3, 2)
	testutil.AssertTrue(t, stderrors.Is(err, context.Canceled), "got %v", err)
}

func TestCountSubtree_EmptyOrigin(t *testing.T) {
	result := CountSubtree(WorkItem{
		Index: 3,
		Board: chess.NewBoard(),
		Move:  chess.Move{From: chess.Sq(6, 4), To: chess.Sq(4, 4)},
		Depth: 2,
	})

	testutil.AssertEqual(t, result.Index, 3)
	testutil.AssertTrue(t, stderrors.Is(result.Error, errors.ErrNoPiece), "got %v", result.Error)
}

func TestDivide_CancelInterruptsRunningItems(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep divide in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := Divide(ctx, engine.NewInitialBoard(), chess.White, 7, 2)

	testutil.AssertTrue(t, stderrors.Is(err, context.DeadlineExceeded), "got %v", err)
	testutil.AssertTrue(t, time.Since(start) < 10*time.Second, "divide ran on for %v after cancel", time.Since(start))
}

func TestCountSubtree_Stopped(t *testing.T) {
	board := engine.NewInitialBoard()
	result := CountSubtree(WorkItem{
		Index:  1,
		Board:  board,
		ToMove: chess.White,
		Move:   chess.Move{From: chess.Sq(6, 4), To: chess.Sq(4, 4)},
		Depth:  4,
		Stop:   func() bool { return true },
	})

	testutil.AssertEqual(t, result.Index, 1)
	testutil.AssertEqual(t, result.Nodes, uint64(0))
	testutil.AssertTrue(t, stderrors.Is(result.Error, errors.ErrStopped), "got %v", result.Error)
}
