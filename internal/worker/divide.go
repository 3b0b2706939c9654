package worker

import (
	"context"
	"fmt"
	"runtime"

	"github.com/lgbarn/hotseat-chess/internal/chess"
	"github.com/lgbarn/hotseat-chess/internal/engine"
	"github.com/lgbarn/hotseat-chess/internal/errors"
)

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// DivideResult is a perft count split by root move.
type DivideResult struct {
	Entries []DivideEntry // In AllLegalMoves order
	Total   uint64
}

// Divide counts the leaf nodes of the legal move tree of depth plies below
// board, one root move per work item. workers <= 0 uses one per CPU. The
// board itself is not modified. Cancelling ctx stops queued items and
// interrupts running ones, and Divide returns ctx.Err().
func Divide(ctx context.Context, board *chess.Board, toMove chess.Colour, depth, workers int) (DivideResult, error) {
	if depth < 1 {
		return DivideResult{}, fmt.Errorf("divide depth %d: %w", depth, errors.ErrInvalidConfig)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	moves := engine.AllLegalMoves(board, toMove)
	if len(moves) == 0 {
		return DivideResult{}, nil
	}

	pool := NewPool(CountSubtree, WithWorkers(workers), WithBufferSize(len(moves)))
	pool.Start()
	for i, m := range moves {
		pool.Submit(WorkItem{
			Index:  i,
			Board:  board.Copy(),
			ToMove: toMove,
			Move:   m,
			Depth:  depth,
			Stop:   pool.IsStopped,
		})
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-done:
		}
	}()

	go pool.Close()

	entries := make([]DivideEntry, len(moves))
	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		entries[result.Index] = DivideEntry{Move: result.Move, Nodes: result.Nodes}
	}

	if err := ctx.Err(); err != nil {
		return DivideResult{}, err
	}
	if firstErr != nil {
		return DivideResult{}, firstErr
	}

	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return DivideResult{Entries: entries, Total: total}, nil
}

// CountSubtree plays the item's move on its board and counts the nodes
// below it. A count cut short by item.Stop reports ErrStopped.
func CountSubtree(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, Move: item.Move}
	if !engine.ApplyMove(item.Board, item.Move.From, item.Move.To) {
		result.Error = errors.Wrapf(errors.ErrNoPiece, "divide %v", item.Move)
		return result
	}
	nodes, ok := engine.PerftUntil(item.Board, item.ToMove.Opposite(), item.Depth-1, item.Stop)
	if !ok {
		result.Error = errors.Wrapf(errors.ErrStopped, "divide %v", item.Move)
		return result
	}
	result.Nodes = nodes
	return result
}
