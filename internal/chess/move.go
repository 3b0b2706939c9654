package chess

// Move is a source-destination square pair. Castling is expressed as the
// king's two-column move; the rook follows implicitly.
type Move struct {
	From Square
	To   Square
}

// String returns the move in coordinate form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
