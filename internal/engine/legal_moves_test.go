package engine

import (
	"testing"

	"github.com/lgbarn/hotseat-chess/internal/chess"
	"github.com/lgbarn/hotseat-chess/internal/testutil"
)

func TestWouldBeInCheckAfter(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		colour   chess.Colour
		want     bool
	}{
		{"quiet pawn push", InitialFEN, "e2", "e4", chess.White, false},
		{"pinned bishop steps off file", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2", "d3", chess.White, true},
		{"king stays on rook rank", "4k3/8/8/8/8/8/8/3rK3 w - - 0 1", "e1", "f1", chess.White, true},
		{"king steps off rook rank", "4k3/8/8/8/8/8/8/3rK3 w - - 0 1", "e1", "e2", chess.White, false},
		{"king captures undefended rook", "4k3/8/8/8/8/8/8/3rK3 w - - 0 1", "e1", "d1", chess.White, false},
		{"king captures defended rook", "3qk3/8/8/8/8/8/8/3rK3 w - - 0 1", "e1", "d1", chess.White, true},
		{"block the check", "4k3/4r3/8/8/8/8/8/3BK3 w - - 0 1", "d1", "e2", chess.White, false},
		{"castle into check", "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1", "e1", "g1", chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := mustFEN(t, tt.fen)
			before := board.Copy()

			got := WouldBeInCheckAfter(board, testutil.Sq(tt.from), testutil.Sq(tt.to), tt.colour)
			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertBoardUnchanged(t, before, board)
		})
	}
}

func TestWouldBeInCheckAfter_RestoresMovedFlags(t *testing.T) {
	board, _ := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	before := board.Copy()

	WouldBeInCheckAfter(board, testutil.Sq("e1"), testutil.Sq("g1"), chess.White)
	WouldBeInCheckAfter(board, testutil.Sq("a1"), testutil.Sq("a8"), chess.White)

	king, _ := board.OccupantAt(testutil.Sq("e1"))
	testutil.AssertFalse(t, king.Moved, "king Moved flag survived simulation")
	rook, _ := board.OccupantAt(testutil.Sq("h1"))
	testutil.AssertFalse(t, rook.Moved, "rook Moved flag survived simulation")
	testutil.AssertBoardUnchanged(t, before, board)
}

func TestLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "pinned bishop",
			fen:  "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
			from: "e2",
			want: nil,
		},
		{
			name: "king beside pinned bishop",
			fen:  "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
			from: "e1",
			want: []string{"d1", "d2", "f1", "f2"},
		},
		{
			name: "pinned rook slides along the pin",
			fen:  "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e3", "e4", "e5", "e6", "e7"},
		},
		{
			name: "only moves that answer check",
			fen:  "4k3/4r3/8/8/8/8/8/1N2K3 w - - 0 1",
			from: "b1",
			want: nil,
		},
		{
			name: "knight blocks check",
			fen:  "4k3/4r3/8/8/8/2N5/8/4K3 w - - 0 1",
			from: "c3",
			want: []string{"e2", "e4"},
		},
		{
			name: "empty square",
			fen:  InitialFEN,
			from: "e5",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := mustFEN(t, tt.fen)
			got := LegalMoves(board, testutil.Sq(tt.from))
			testutil.AssertSameSquares(t, got, testutil.Squares(tt.want...))
		})
	}
}

func TestLegalMoves_SubsetOfPossibleMoves(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
	}

	for _, fen := range fens {
		board, toMove := mustFEN(t, fen)
		for _, p := range board.Pieces(toMove) {
			possible := map[chess.Square]bool{}
			for _, sq := range PossibleMoves(board, p.Pos) {
				possible[sq] = true
			}
			for _, to := range LegalMoves(board, p.Pos) {
				testutil.AssertTrue(t, possible[to], "%s: %v->%v legal but not possible", fen, p.Pos, to)
			}
		}
	}
}

func TestLegalMoves_NeverLeaveKingInCheck(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4",
		"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
	}

	for _, fen := range fens {
		board, toMove := mustFEN(t, fen)
		for _, m := range AllLegalMoves(board, toMove) {
			after := board.Copy()
			ApplyMove(after, m.From, m.To)
			testutil.AssertFalse(t, IsInCheck(after, toMove), "%s: %v leaves king in check", fen, m)
		}
	}
}

func TestGameEndDetection(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		checked   bool
		checkmate bool
		stalemate bool
	}{
		{"initial", InitialFEN, false, false, false},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true, true, false},
		{"back-rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", true, true, false},
		{"stalemate", "k7/8/1QK5/8/8/8/8/8 b - - 0 1", false, false, true},
		{"check with escape", "4k3/8/8/8/8/8/8/4K2r w - - 0 1", true, false, false},
		{"scholar's mate", "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4", true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove := mustFEN(t, tt.fen)
			before := board.Copy()

			testutil.AssertEqual(t, IsInCheck(board, toMove), tt.checked, "IsInCheck")
			testutil.AssertEqual(t, IsCheckmate(board, toMove), tt.checkmate, "IsCheckmate")
			testutil.AssertEqual(t, IsStalemate(board, toMove), tt.stalemate, "IsStalemate")
			testutil.AssertEqual(t, HasLegalMoves(board, toMove), !tt.checkmate && !tt.stalemate, "HasLegalMoves")
			testutil.AssertBoardUnchanged(t, before, board)
		})
	}
}

func TestHasLegalMoves_AgreesWithAllLegalMoves(t *testing.T) {
	fens := []string{
		InitialFEN,
		"k7/8/1QK5/8/8/8/8/8 b - - 0 1",
		"4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1",
		"R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
	}

	for _, fen := range fens {
		board, toMove := mustFEN(t, fen)
		testutil.AssertEqual(t, HasLegalMoves(board, toMove), len(AllLegalMoves(board, toMove)) > 0, fen)
	}
}

func TestIsInCheck_NoKing(t *testing.T) {
	board := chess.NewBoard()
	board.Place(chess.Sq(0, 0), chess.Black, chess.Rook)

	testutil.AssertFalse(t, IsInCheck(board, chess.White))
	_, ok := KingSquare(board, chess.White)
	testutil.AssertFalse(t, ok)
}

func TestIsSquareAttacked(t *testing.T) {
	board, _ := mustFEN(t, "4k3/8/8/3p4/8/8/8/R3K3 w - - 0 1")

	tests := []struct {
		sq   string
		by   chess.Colour
		want bool
	}{
		{"a8", chess.White, true},
		{"h1", chess.White, false},
		{"d1", chess.White, true},
		{"e4", chess.Black, true},
		{"c4", chess.Black, true},
		{"d4", chess.Black, false},
		{"d7", chess.Black, true},
		{"e2", chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.sq+"_"+tt.by.String(), func(t *testing.T) {
			got := IsSquareAttacked(board, testutil.Sq(tt.sq), tt.by)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestAllLegalMoves_OrderedByOrigin(t *testing.T) {
	board := NewInitialBoard()
	moves := AllLegalMoves(board, chess.White)

	testutil.AssertEqual(t, len(moves), 20)
	for i := 1; i < len(moves); i++ {
		prev, cur := moves[i-1].From, moves[i].From
		ordered := prev.Row < cur.Row || (prev.Row == cur.Row && prev.Col <= cur.Col)
		testutil.AssertTrue(t, ordered, "move %d (%v) before %v", i, moves[i], moves[i-1])
	}
}
