package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/hotseat-chess/internal/errors"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Board is an 8x8 grid of cells. Each cell is the sole owner of the piece
// standing on it; a zero Piece (Kind None) is an empty cell.
type Board struct {
	// Squares[row][col]; row 0 is Black's back rank.
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		for _, colour := range []Colour{White, Black} {
			b.Place(Sq(colour.HomeRow(), col), colour, backRank[col])
			b.Place(Sq(colour.PawnRow(), col), colour, Pawn)
		}
	}
}

// mustBeOnBoard panics when sq lies outside the grid. Callers translate
// coordinates within the board, so this is a programming error.
func mustBeOnBoard(sq Square) {
	if !sq.Valid() {
		panic(fmt.Errorf("square %v: %w", sq, errors.ErrOffBoard))
	}
}

// OccupantAt returns the piece on sq and whether there is one.
func (b *Board) OccupantAt(sq Square) (Piece, bool) {
	mustBeOnBoard(sq)
	p := b.Squares[sq.Row][sq.Col]
	return p, !p.IsEmpty()
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	mustBeOnBoard(sq)
	return b.Squares[sq.Row][sq.Col].IsEmpty()
}

// Place puts a new, unmoved piece on sq, replacing any occupant.
func (b *Board) Place(sq Square, colour Colour, kind Kind) {
	b.Set(sq, Piece{Colour: colour, Kind: kind})
}

// Set stores p on sq and keeps its Pos in step with the cell.
func (b *Board) Set(sq Square, p Piece) {
	mustBeOnBoard(sq)
	if p.IsEmpty() {
		p = Piece{}
	} else {
		p.Pos = sq
	}
	b.Squares[sq.Row][sq.Col] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	mustBeOnBoard(sq)
	b.Squares[sq.Row][sq.Col] = Piece{}
}

// Pieces returns the pieces of the given colour in row-major order.
func (b *Board) Pieces(colour Colour) []Piece {
	var pieces []Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// BoardState captures all mutable board state for save/restore operations.
// This is cheaper than Copy() when the board is modified temporarily and
// then put back, as the legality oracle does for every candidate move.
type BoardState struct {
	Squares [BoardSize][BoardSize]Piece
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{Squares: b.Squares}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.Squares = s.Squares
}

// String draws the board as eight lines of FEN letters, '.' for empty
// cells, row 0 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.Letter())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
