// Package engine provides chess move generation, validation and board
// manipulation over a *chess.Board.
package engine

import "github.com/lgbarn/hotseat-chess/internal/chess"

var (
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// PossibleMoves returns the pseudo-legal destinations of the piece on from:
// moves that follow the piece's pattern and the occupancy rules, without
// regard to the safety of the mover's own king. An empty square has none.
func PossibleMoves(board *chess.Board, from chess.Square) []chess.Square {
	piece, ok := board.OccupantAt(from)
	if !ok {
		return nil
	}
	return pieceMoves(board, piece)
}

// pieceMoves dispatches on the piece kind. Every kind is listed; a new kind
// must be added here.
func pieceMoves(board *chess.Board, piece chess.Piece) []chess.Square {
	switch piece.Kind {
	case chess.None:
		return nil
	case chess.Pawn:
		return pawnMoves(board, piece)
	case chess.Rook:
		return slidingMoves(board, piece, straightDirs)
	case chess.Bishop:
		return slidingMoves(board, piece, diagonalDirs)
	case chess.Queen:
		moves := slidingMoves(board, piece, straightDirs)
		return append(moves, slidingMoves(board, piece, diagonalDirs)...)
	case chess.Knight:
		return stepMoves(board, piece, knightOffsets)
	case chess.King:
		moves := stepMoves(board, piece, kingOffsets)
		if !piece.Moved {
			moves = append(moves, castlingCandidates(board, piece)...)
		}
		return moves
	}
	return nil
}

// pawnMoves generates single and double pushes and diagonal captures.
func pawnMoves(board *chess.Board, pawn chess.Piece) []chess.Square {
	var moves []chess.Square
	dir := pawn.Colour.Forward()

	// Forward move
	one := pawn.Pos.Offset(dir, 0)
	if one.Valid() && board.IsEmpty(one) {
		moves = append(moves, one)

		// Double push from starting rank
		if pawn.Pos.Row == pawn.Colour.PawnRow() {
			two := pawn.Pos.Offset(2*dir, 0)
			if board.IsEmpty(two) {
				moves = append(moves, two)
			}
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		target := pawn.Pos.Offset(dir, dc)
		if !target.Valid() {
			continue
		}
		if occupant, ok := board.OccupantAt(target); ok && occupant.Colour != pawn.Colour {
			moves = append(moves, target)
		}
	}
	return moves
}

// slidingMoves scans outward along each direction until the edge or the
// first occupied square, which is included only when it holds an enemy.
func slidingMoves(board *chess.Board, piece chess.Piece, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		to := piece.Pos.Offset(dir[0], dir[1])
		for to.Valid() {
			occupant, ok := board.OccupantAt(to)
			if ok {
				if occupant.Colour != piece.Colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// stepMoves generates single-step targets for knights and kings.
func stepMoves(board *chess.Board, piece chess.Piece, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, offset := range offsets {
		to := piece.Pos.Offset(offset[0], offset[1])
		if !to.Valid() {
			continue
		}
		if occupant, ok := board.OccupantAt(to); !ok || occupant.Colour != piece.Colour {
			moves = append(moves, to)
		}
	}
	return moves
}
