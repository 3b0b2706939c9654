package engine

import "github.com/lgbarn/hotseat-chess/internal/chess"

// Perft counts the leaf nodes of the legal move tree of the given depth,
// with colour to move first. The board is restored before returning.
func Perft(board *chess.Board, colour chess.Colour, depth int) uint64 {
	nodes, _ := PerftUntil(board, colour, depth, nil)
	return nodes
}

// PerftUntil is Perft that gives up once stop reports true. stop is polled
// before every move played inside the tree; a nil stop never fires. It
// returns false with a partial count when the search was abandoned. The
// board is restored either way.
func PerftUntil(board *chess.Board, colour chess.Colour, depth int, stop func() bool) (uint64, bool) {
	if depth <= 0 {
		return 1, true
	}

	moves := AllLegalMoves(board, colour)
	if depth == 1 {
		return uint64(len(moves)), true
	}

	var nodes uint64
	for _, m := range moves {
		if stop != nil && stop() {
			return nodes, false
		}
		state := board.SaveState()
		ApplyMove(board, m.From, m.To)
		n, ok := PerftUntil(board, colour.Opposite(), depth-1, stop)
		board.RestoreState(state)
		nodes += n
		if !ok {
			return nodes, false
		}
	}
	return nodes, true
}
