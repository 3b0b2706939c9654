package engine

import (
	"strings"
	"unicode"

	"github.com/lgbarn/hotseat-chess/internal/chess"
	"github.com/lgbarn/hotseat-chess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var backRank = [chess.BoardSize]chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c rune) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.None
	}
}

// castlingRights records which KQkq letters a FEN string carried.
type castlingRights struct {
	whiteKing, whiteQueen, blackKing, blackQueen bool
}

// NewBoardFromFEN creates a board from a FEN string and returns it with the
// side to move. Castling rights become Moved flags on kings and corner
// rooks; the en passant and clock fields are accepted and ignored.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Expected: "piece placement"}
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	rights, err := parseCastlingRights(parts)
	if err != nil {
		return nil, chess.White, err
	}
	markMovedPieces(board, rights)

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	row, col := 0, 0
	kings := map[chess.Colour]int{}

	bad := func(got string) error {
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Expected: "8 ranks of 8 squares", Got: got}
	}

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return bad(positions)
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			kind := ConvertFENCharToKind(c)
			if kind == chess.None {
				return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Expected: "piece letter", Got: string(c)}
			}
			if col >= chess.BoardSize || row >= chess.BoardSize {
				return bad(positions)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			if kind == chess.King {
				kings[colour]++
				if kings[colour] > 1 {
					return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Expected: "one king per side", Got: positions}
				}
			}

			board.Place(chess.Sq(row, col), colour, kind)
			col++
		}
		if col > chess.BoardSize {
			return bad(positions)
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return bad(positions)
	}
	return nil
}

// parseSideToMove parses the side to move field. White moves when the
// field is absent.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "side to move", Expected: "w or b", Got: parts[1]}
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) (castlingRights, error) {
	var rights castlingRights
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.whiteKing = true
		case 'Q':
			rights.whiteQueen = true
		case 'k':
			rights.blackKing = true
		case 'q':
			rights.blackQueen = true
		default:
			return rights, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "castling", Expected: "KQkq or -", Got: parts[2]}
		}
	}
	return rights, nil
}

// markMovedPieces sets Moved on every piece away from its starting square,
// and on kings and corner rooks whose castling right is absent.
func markMovedPieces(board *chess.Board, rights castlingRights) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			p, ok := board.OccupantAt(sq)
			if !ok {
				continue
			}
			p.Moved = !onStartSquare(p)
			if !p.Moved {
				switch p.Kind {
				case chess.King:
					if p.Colour == chess.White {
						p.Moved = !rights.whiteKing && !rights.whiteQueen
					} else {
						p.Moved = !rights.blackKing && !rights.blackQueen
					}
				case chess.Rook:
					p.Moved = !rookRight(rights, p.Colour, col)
				}
			}
			board.Set(sq, p)
		}
	}
}

// onStartSquare reports whether p stands where the standard setup puts a
// piece of its colour and kind.
func onStartSquare(p chess.Piece) bool {
	switch p.Pos.Row {
	case p.Colour.HomeRow():
		return backRank[p.Pos.Col] == p.Kind
	case p.Colour.PawnRow():
		return p.Kind == chess.Pawn
	}
	return false
}

func rookRight(rights castlingRights, colour chess.Colour, col int) bool {
	switch {
	case colour == chess.White && col == kingsideRookCol:
		return rights.whiteKing
	case colour == chess.White && col == queensideRookCol:
		return rights.whiteQueen
	case colour == chess.Black && col == kingsideRookCol:
		return rights.blackKing
	case colour == chess.Black && col == queensideRookCol:
		return rights.blackQueen
	}
	return false
}

// BoardToFEN converts a board and side to move to a FEN string. Castling
// rights are derived from the Moved flags; en passant is always "-".
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := board.OccupantAt(chess.Sq(row, col))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		row := colour.HomeRow()
		king, ok := board.OccupantAt(chess.Sq(row, kingStartCol))
		if !ok || king.Kind != chess.King || king.Colour != colour || king.Moved {
			continue
		}
		letters := []byte{'K', 'Q'}
		if colour == chess.Black {
			letters = []byte{'k', 'q'}
		}
		if hasUnmovedRook(board, chess.Sq(row, kingsideRookCol), colour) {
			sb.WriteByte(letters[0])
			hasCastling = true
		}
		if hasUnmovedRook(board, chess.Sq(row, queensideRookCol), colour) {
			sb.WriteByte(letters[1])
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _, _ := NewBoardFromFEN(InitialFEN)
	return board
}
