package engine

import "github.com/lgbarn/hotseat-chess/internal/chess"

// WouldBeInCheckAfter plays from-to on the board, castling rook included,
// reports whether colour's king is then in check, and puts the board back
// exactly as it was, Moved flags included.
//
// The board passes through the simulated position during the call; it must
// not be read concurrently.
func WouldBeInCheckAfter(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	state := board.SaveState()
	defer board.RestoreState(state)

	ApplyMove(board, from, to)
	return IsInCheck(board, colour)
}

// LegalMoves returns the destinations of the piece on from that neither
// castle through an attacked square nor leave its own king in check, in
// generation order.
func LegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	piece, ok := board.OccupantAt(from)
	if !ok {
		return nil
	}

	var legal []chess.Square
	for _, to := range pieceMoves(board, piece) {
		if isLegal(board, from, to, piece.Colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// isLegal applies the castling path filter, then the check filter.
func isLegal(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	if IsCastlingMove(board, from, to) && !IsValidCastling(board, from, to, colour) {
		return false
	}
	return !WouldBeInCheckAfter(board, from, to, colour)
}

// IsLegalMove reports whether from-to is a legal move for the piece on from.
func IsLegalMove(board *chess.Board, from, to chess.Square) bool {
	for _, sq := range LegalMoves(board, from) {
		if sq == to {
			return true
		}
	}
	return false
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, piece := range board.Pieces(colour) {
		for _, to := range pieceMoves(board, piece) {
			if isLegal(board, piece.Pos, to, colour) {
				return true
			}
		}
	}
	return false
}

// AllLegalMoves returns every legal move of colour, ordered by origin square
// (row-major) and then by generation order.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, piece := range board.Pieces(colour) {
		for _, to := range LegalMoves(board, piece.Pos) {
			moves = append(moves, chess.Move{From: piece.Pos, To: to})
		}
	}
	return moves
}

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
