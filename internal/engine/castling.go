package engine

import "github.com/lgbarn/hotseat-chess/internal/chess"

const (
	kingStartCol     = 4
	kingsideRookCol  = 7
	queensideRookCol = 0
	kingsideKingCol  = 6
	queensideKingCol = 2
)

// castlingCandidates returns the castling destinations of an unmoved king.
// Only occupancy is checked here; IsValidCastling tests the king's path.
func castlingCandidates(board *chess.Board, king chess.Piece) []chess.Square {
	if king.Pos.Col != kingStartCol {
		return nil
	}

	var moves []chess.Square
	row := king.Pos.Row

	// Kingside castling (O-O)
	if hasUnmovedRook(board, chess.Sq(row, kingsideRookCol), king.Colour) &&
		isRowClear(board, row, kingStartCol+1, kingsideRookCol-1) {
		moves = append(moves, chess.Sq(row, kingsideKingCol))
	}

	// Queenside castling (O-O-O)
	if hasUnmovedRook(board, chess.Sq(row, queensideRookCol), king.Colour) &&
		isRowClear(board, row, queensideRookCol+1, kingStartCol-1) {
		moves = append(moves, chess.Sq(row, queensideKingCol))
	}

	return moves
}

// hasUnmovedRook reports whether sq holds a never-moved rook of colour.
func hasUnmovedRook(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	rook, ok := board.OccupantAt(sq)
	return ok && rook.Kind == chess.Rook && rook.Colour == colour && !rook.Moved
}

// isRowClear reports whether columns fromCol..toCol (inclusive) of row are
// empty.
func isRowClear(board *chess.Board, row, fromCol, toCol int) bool {
	for col := fromCol; col <= toCol; col++ {
		if !board.IsEmpty(chess.Sq(row, col)) {
			return false
		}
	}
	return true
}

// castleRookSquares returns where the castling rook starts and lands for a
// king arriving on kingTo. ok is false when kingTo is not a castling
// destination column.
func castleRookSquares(kingTo chess.Square) (rookFrom, rookTo chess.Square, ok bool) {
	switch kingTo.Col {
	case kingsideKingCol:
		return chess.Sq(kingTo.Row, kingsideRookCol), chess.Sq(kingTo.Row, kingsideKingCol-1), true
	case queensideKingCol:
		return chess.Sq(kingTo.Row, queensideRookCol), chess.Sq(kingTo.Row, queensideKingCol+1), true
	}
	return chess.Square{}, chess.Square{}, false
}

// IsCastlingMove returns true if the occupant of from is a king moving
// exactly two columns.
func IsCastlingMove(board *chess.Board, from, to chess.Square) bool {
	piece, ok := board.OccupantAt(from)
	return ok && piece.Kind == chess.King && abs(to.Col-from.Col) == 2
}

// IsValidCastling returns false if a castling king starts on, crosses or
// lands on a square attacked by the opposite colour. Any other move passes.
func IsValidCastling(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	if !IsCastlingMove(board, from, to) {
		return true
	}

	enemy := colour.Opposite()
	if IsSquareAttacked(board, from, enemy) {
		return false
	}

	step := sign(to.Col - from.Col)
	for col := from.Col + step; ; col += step {
		if IsSquareAttacked(board, chess.Sq(from.Row, col), enemy) {
			return false
		}
		if col == to.Col {
			break
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
