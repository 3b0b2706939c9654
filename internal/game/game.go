// Package game holds the turn state of a two-player game on one device and
// the two-click selection protocol that drives it.
package game

import (
	"slices"

	"github.com/lgbarn/hotseat-chess/internal/chess"
	"github.com/lgbarn/hotseat-chess/internal/config"
	"github.com/lgbarn/hotseat-chess/internal/engine"
	"github.com/lgbarn/hotseat-chess/internal/errors"
)

// Game is a game in progress or finished. Once the outcome is decided the
// game accepts no further moves.
//
// A Game is not safe for concurrent use.
type Game struct {
	cfg   *config.Config
	board *chess.Board

	selected     bool
	selection    chess.Square
	destinations []chess.Square

	toMove  chess.Colour
	inCheck bool
	outcome Outcome
	method  Method
	ply     int
}

// New starts a game from the standard position with White to move.
// A nil cfg uses the defaults.
func New(cfg *config.Config) *Game {
	g := &Game{
		cfg:    withDefaults(cfg),
		board:  engine.NewInitialBoard(),
		toMove: chess.White,
	}
	g.evaluate()
	return g
}

// NewFromFEN starts a game from a FEN position. A position that is already
// checkmate or stalemate yields a finished game.
func NewFromFEN(cfg *config.Config, fen string) (*Game, error) {
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:    withDefaults(cfg),
		board:  board,
		toMove: toMove,
	}
	g.evaluate()
	return g, nil
}

// NewFromConfig starts from cfg.StartFEN when it is set, and from the
// standard position otherwise.
func NewFromConfig(cfg *config.Config) (*Game, error) {
	if cfg != nil && cfg.StartFEN != "" {
		return NewFromFEN(cfg, cfg.StartFEN)
	}
	return New(cfg), nil
}

func withDefaults(cfg *config.Config) *config.Config {
	if cfg == nil {
		return config.NewConfig()
	}
	return cfg
}

// SelectOrMove handles a click on sq.
//
// With nothing selected, a piece of the side to move becomes the selection
// and its legal destinations are computed; any other square is ignored.
// With a selection, a legal destination plays the move and passes the turn;
// any other square, the selected one included, drops the selection.
// Finished games and off-board squares are ignored.
func (g *Game) SelectOrMove(sq chess.Square) {
	if g.IsGameOver() || !sq.Valid() {
		return
	}

	if !g.selected {
		g.trySelect(sq)
		return
	}

	from := g.selection
	if slices.Contains(g.destinations, sq) {
		g.play(from, sq)
		return
	}

	g.cfg.Logf(config.Commentary, "%s deselects %v", g.toMove, from)
	g.clearSelection()
}

func (g *Game) trySelect(sq chess.Square) {
	piece, ok := g.board.OccupantAt(sq)
	if !ok || piece.Colour != g.toMove {
		return
	}
	g.selected = true
	g.selection = sq
	g.destinations = engine.LegalMoves(g.board, sq)
	g.cfg.Logf(config.Commentary, "%s selects %v (%d moves)", g.toMove, sq, len(g.destinations))
}

func (g *Game) clearSelection() {
	g.selected = false
	g.selection = chess.Square{}
	g.destinations = nil
}

// Move plays from-to in one call, as two clicks would. It returns a
// *errors.MoveError and leaves the game untouched when the game is over, from
// is empty or belongs to the side not to move, or the move is not legal.
func (g *Game) Move(from, to chess.Square) error {
	moveErr := func(err error) error {
		return &errors.MoveError{
			Err:  err,
			Ply:  g.ply + 1,
			Side: g.toMove.String(),
			Move: chess.Move{From: from, To: to}.String(),
		}
	}

	if g.IsGameOver() {
		return moveErr(errors.ErrGameOver)
	}
	if !from.Valid() || !to.Valid() {
		return moveErr(errors.ErrOffBoard)
	}

	piece, ok := g.board.OccupantAt(from)
	if !ok {
		return moveErr(errors.ErrNoPiece)
	}
	if piece.Colour != g.toMove {
		return moveErr(errors.ErrNotYourTurn)
	}
	if !engine.IsLegalMove(g.board, from, to) {
		return moveErr(errors.ErrIllegalMove)
	}

	g.play(from, to)
	return nil
}

// play applies a legal move and passes the turn.
func (g *Game) play(from, to chess.Square) {
	castle := engine.IsCastlingMove(g.board, from, to)
	engine.ApplyMove(g.board, from, to)
	g.ply++

	if castle {
		g.cfg.Logf(config.Commentary, "ply %d: %s castles %v-%v", g.ply, g.toMove, from, to)
	} else {
		g.cfg.Logf(config.Commentary, "ply %d: %s %v-%v", g.ply, g.toMove, from, to)
	}

	g.toMove = g.toMove.Opposite()
	g.clearSelection()
	g.evaluate()
}

// evaluate refreshes the check flag and decides the outcome for the side to
// move.
func (g *Game) evaluate() {
	g.inCheck = engine.IsInCheck(g.board, g.toMove)
	if engine.HasLegalMoves(g.board, g.toMove) {
		if g.inCheck {
			g.cfg.Logf(config.Commentary, "%s is in check", g.toMove)
		}
		return
	}

	if g.inCheck {
		g.outcome = winFor(g.toMove.Opposite())
		g.method = Checkmate
	} else {
		g.outcome = Draw
		g.method = Stalemate
	}
	g.cfg.Logf(config.Results, "%s by %s after %d plies (%s)", g.outcome, g.method, g.ply, g.outcome.Result())
}

// OccupantAt returns the piece on sq. Off-board squares are empty.
func (g *Game) OccupantAt(sq chess.Square) (chess.Piece, bool) {
	if !sq.Valid() {
		return chess.Piece{}, false
	}
	return g.board.OccupantAt(sq)
}

// Board returns a copy of the board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Selection returns the selected square, if any.
func (g *Game) Selection() (chess.Square, bool) {
	return g.selection, g.selected
}

// LegalDestinations returns the legal destinations of the selection in
// generation order, or nil when nothing is selected.
func (g *Game) LegalDestinations() []chess.Square {
	return slices.Clone(g.destinations)
}

// IsDestination reports whether sq is a legal destination of the selection.
func (g *Game) IsDestination(sq chess.Square) bool {
	return slices.Contains(g.destinations, sq)
}

// ToMove returns the side to move. After the game ends it is the side that
// could not move.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.inCheck
}

// CheckedKing returns the square of the king in check, if any.
func (g *Game) CheckedKing() (chess.Square, bool) {
	if !g.inCheck {
		return chess.Square{}, false
	}
	return engine.KingSquare(g.board, g.toMove)
}

func (g *Game) IsGameOver() bool {
	return g.outcome != Undecided
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Winner returns the winning colour, or false for a draw or a game in
// progress.
func (g *Game) Winner() (chess.Colour, bool) {
	return g.outcome.Winner()
}

func (g *Game) Method() Method {
	return g.method
}

// Ply returns the number of moves played so far.
func (g *Game) Ply() int {
	return g.ply
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board, g.toMove)
}
