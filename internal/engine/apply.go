package engine

import "github.com/lgbarn/hotseat-chess/internal/chess"

// ApplyMove moves the occupant of from to to, capturing whatever stands
// there, and marks it as moved. A king moving two columns castles and
// brings the corner rook across. No legality is checked.
// Returns false, leaving the board unchanged, if from is empty.
func ApplyMove(board *chess.Board, from, to chess.Square) bool {
	piece, ok := board.OccupantAt(from)
	if !ok {
		return false
	}

	if piece.Kind == chess.King && abs(to.Col-from.Col) == 2 {
		applyCastleRook(board, to)
	}

	piece.Moved = true
	board.Clear(from)
	board.Set(to, piece)
	return true
}

// applyCastleRook moves the rook that belongs to a castling king arriving on
// kingTo. The rook is found by square, not by reference.
func applyCastleRook(board *chess.Board, kingTo chess.Square) {
	rookFrom, rookTo, ok := castleRookSquares(kingTo)
	if !ok {
		return
	}
	rook, ok := board.OccupantAt(rookFrom)
	if !ok {
		return
	}
	rook.Moved = true
	board.Clear(rookFrom)
	board.Set(rookTo, rook)
}
