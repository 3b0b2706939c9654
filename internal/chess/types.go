// Package chess provides core chess types and the board grid.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a single pawn step: White moves toward
// row 0, Black toward row 7.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the row holding the colour's back rank.
func (c Colour) HomeRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row the colour's pawns start on.
func (c Colour) PawnRow() int {
	return c.HomeRow() + c.Forward()
}

// Kind represents a chess piece type. None marks an empty cell.
type Kind int

const (
	None Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'R', 'N', 'B', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Square is a board coordinate. Row 0 is Black's back rank, row 7 White's.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away. The result may be
// off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String renders the square in file/rank form ("e2"), or as a raw pair when
// it is off the board.
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

// Piece is the occupant of a board cell. Pos always matches the cell that
// holds it.
type Piece struct {
	Colour Colour
	Kind   Kind
	Pos    Square
	Moved  bool
}

// IsEmpty reports whether the value stands for an empty cell.
func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// Glyph returns the Unicode chess symbol of the piece.
func (p Piece) Glyph() rune {
	white := []rune{' ', '♙', '♖', '♘', '♗', '♕', '♔'}
	black := []rune{' ', '♟', '♜', '♞', '♝', '♛', '♚'}
	if p.Kind < 0 || int(p.Kind) >= len(white) {
		return '?'
	}
	if p.Colour == White {
		return white[p.Kind]
	}
	return black[p.Kind]
}

// String returns e.g. "White Knight on g1".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s %s on %s", p.Colour, p.Kind, p.Pos)
}
