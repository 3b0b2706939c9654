package testutil

import (
	"fmt"

	"github.com/lgbarn/hotseat-chess/internal/chess"
)

// Sq converts a file/rank name such as "e4" to a board square. It panics on
// malformed names; it is meant for literal test fixtures only.
func Sq(name string) chess.Square {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		panic(fmt.Sprintf("testutil.Sq: bad square name %q", name))
	}
	return chess.Sq(int('8'-name[1]), int(name[0]-'a'))
}

// Squares converts several square names at once.
func Squares(names ...string) []chess.Square {
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		squares = append(squares, Sq(name))
	}
	return squares
}
