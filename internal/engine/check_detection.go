package engine

import "github.com/lgbarn/hotseat-chess/internal/chess"

// IsInCheck returns true if the given colour's king is attacked. A board
// without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := KingSquare(board, colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// KingSquare finds the king of the given colour on the board.
func KingSquare(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.Kind == chess.King && p.Colour == colour {
				return chess.Sq(row, col), true
			}
		}
	}
	return chess.Square{}, false
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
// Attacks are not the pseudo-legal move set: a pawn attacks both forward
// diagonals even when empty but never the square it pushes to, and a king
// never attacks through castling.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for _, piece := range board.Pieces(byColour) {
		for _, target := range attacks(board, piece) {
			if target == sq {
				return true
			}
		}
	}
	return false
}

// attacks returns the squares a piece could capture on. For occupied
// squares this is exactly the capturing part of its pseudo-legal moves.
// Pawns also cover empty forward diagonals and never their push squares;
// castling never attacks.
func attacks(board *chess.Board, piece chess.Piece) []chess.Square {
	switch piece.Kind {
	case chess.Pawn:
		var targets []chess.Square
		for dc := -1; dc <= 1; dc += 2 {
			if to := piece.Pos.Offset(piece.Colour.Forward(), dc); to.Valid() {
				targets = append(targets, to)
			}
		}
		return targets
	case chess.King:
		return stepMoves(board, piece, kingOffsets)
	case chess.None, chess.Rook, chess.Knight, chess.Bishop, chess.Queen:
		return pieceMoves(board, piece)
	}
	return nil
}
