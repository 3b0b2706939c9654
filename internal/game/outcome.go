package game

import "github.com/lgbarn/hotseat-chess/internal/chess"

// Outcome is the result of a game. A game in progress is Undecided.
type Outcome int

const (
	Undecided Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "White wins"
	case BlackWins:
		return "Black wins"
	case Draw:
		return "Draw"
	default:
		return "Undecided"
	}
}

// Result returns the PGN result token: 1-0, 0-1, 1/2-1/2 or *.
func (o Outcome) Result() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Winner returns the winning colour, or false when nobody has won.
func (o Outcome) Winner() (chess.Colour, bool) {
	switch o {
	case WhiteWins:
		return chess.White, true
	case BlackWins:
		return chess.Black, true
	}
	return chess.White, false
}

// winFor returns the outcome in which colour wins.
func winFor(colour chess.Colour) Outcome {
	if colour == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// Method is how a finished game ended.
type Method int

const (
	NoMethod Method = iota
	Checkmate
	Stalemate
)

func (m Method) String() string {
	switch m {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "none"
	}
}
