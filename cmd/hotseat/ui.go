package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/hotseat-chess/internal/chess"
	"github.com/lgbarn/hotseat-chess/internal/config"
	"github.com/lgbarn/hotseat-chess/internal/game"
)

// Board layout on screen: each square is squareWidth cells wide and one row
// tall; the top-left square starts at (boardLeft, boardTop).
const (
	squareWidth = 3
	boardLeft   = 2
	boardTop    = 1
)

var (
	styleDefault     = tcell.StyleDefault
	lightSquare      = tcell.NewRGBColor(0xee, 0xd6, 0xb0)
	darkSquare       = tcell.NewRGBColor(0xb5, 0x88, 0x63)
	selectedSquare   = tcell.NewRGBColor(0xf6, 0xf6, 0x69)
	destinationLight = tcell.NewRGBColor(0xa9, 0xd1, 0x8e)
	destinationDark  = tcell.NewRGBColor(0x6f, 0x9f, 0x58)
	checkedSquare    = tcell.NewRGBColor(0xe0, 0x4f, 0x4f)
)

// ui draws a game on a tcell screen and turns input into clicks.
type ui struct {
	screen tcell.Screen
	cfg    *config.Config
	game   *game.Game

	flip    bool
	cursor  chess.Square
	buttons tcell.ButtonMask // Held at the last mouse event
}

func newUI(screen tcell.Screen, cfg *config.Config, g *game.Game) *ui {
	screen.EnableMouse()
	screen.SetStyle(styleDefault)
	return &ui{
		screen: screen,
		cfg:    cfg,
		game:   g,
		flip:   cfg.Display.Flip,
		cursor: chess.Sq(chess.White.PawnRow(), 4),
	}
}

// run draws and handles events until the player quits.
func (u *ui) run() {
	for {
		u.draw()
		if u.handleEvent(u.screen.PollEvent()) {
			return
		}
	}
}

// handleEvent applies one input event and reports whether to quit.
func (u *ui) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		return u.handleKey(ev)
	case *tcell.EventMouse:
		// Only a fresh press of the left button clicks; drag and release
		// events repeat the held mask.
		pressed := ev.Buttons()&tcell.Button1 != 0 && u.buttons&tcell.Button1 == 0
		u.buttons = ev.Buttons()
		if !pressed {
			return false
		}
		if sq, ok := u.squareAt(ev.Position()); ok {
			u.cursor = sq
			u.game.SelectOrMove(sq)
		}
	case nil:
		// Screen finalized.
		return true
	}
	return false
}

func (u *ui) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		u.moveCursor(-1, 0)
	case tcell.KeyDown:
		u.moveCursor(1, 0)
	case tcell.KeyLeft:
		u.moveCursor(0, -1)
	case tcell.KeyRight:
		u.moveCursor(0, 1)
	case tcell.KeyEnter:
		u.game.SelectOrMove(u.cursor)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			u.game.SelectOrMove(u.cursor)
		case 'f', 'F':
			u.flip = !u.flip
		case 'n', 'N':
			u.restart()
		}
	}
	return false
}

// moveCursor moves the cursor in screen directions, clamped to the board.
func (u *ui) moveCursor(dy, dx int) {
	if u.flip {
		dy, dx = -dy, -dx
	}
	next := u.cursor.Offset(dy, dx)
	if next.Valid() {
		u.cursor = next
	}
}

func (u *ui) restart() {
	g, err := game.NewFromConfig(u.cfg)
	if err != nil {
		// The start position was accepted once already.
		return
	}
	u.cfg.Logf(config.Commentary, "new game")
	u.game = g
}

// squareAt maps a screen cell to the board square drawn there.
func (u *ui) squareAt(x, y int) (chess.Square, bool) {
	if x < boardLeft || y < boardTop {
		return chess.Square{}, false
	}
	dc, dr := (x-boardLeft)/squareWidth, y-boardTop
	if dc >= chess.BoardSize || dr >= chess.BoardSize {
		return chess.Square{}, false
	}
	return u.boardSquare(dr, dc), true
}

// boardSquare converts display row and column to a board square.
func (u *ui) boardSquare(dr, dc int) chess.Square {
	if u.flip {
		return chess.Sq(chess.BoardSize-1-dr, chess.BoardSize-1-dc)
	}
	return chess.Sq(dr, dc)
}

// screenPos returns the left cell of sq on screen.
func (u *ui) screenPos(sq chess.Square) (x, y int) {
	dr, dc := sq.Row, sq.Col
	if u.flip {
		dr, dc = chess.BoardSize-1-dr, chess.BoardSize-1-dc
	}
	return boardLeft + dc*squareWidth, boardTop + dr
}

func (u *ui) draw() {
	u.screen.Clear()

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			u.drawSquare(chess.Sq(row, col))
		}
	}
	if u.cfg.Display.ShowCoordinates {
		u.drawCoordinates()
	}

	statusY := boardTop + chess.BoardSize + 1
	u.drawText(0, statusY, styleDefault.Bold(true), u.status())
	u.drawText(0, statusY+1, styleDefault.Dim(true), "click or arrows+enter: move   f: flip   n: new   q: quit")

	u.screen.Show()
}

func (u *ui) drawSquare(sq chess.Square) {
	x, y := u.screenPos(sq)
	style := styleDefault.Background(u.squareColour(sq))
	if sq == u.cursor {
		style = style.Underline(true)
	}

	glyph := ' '
	if p, ok := u.game.OccupantAt(sq); ok {
		glyph = u.glyph(p)
		if p.Colour == chess.White {
			style = style.Foreground(tcell.ColorWhite).Bold(true)
		} else {
			style = style.Foreground(tcell.ColorBlack)
		}
	} else if u.game.IsDestination(sq) {
		glyph = '·'
		if u.cfg.Display.ASCII {
			glyph = '.'
		}
	}

	u.screen.SetContent(x, y, ' ', nil, style)
	u.screen.SetContent(x+1, y, glyph, nil, style)
	u.screen.SetContent(x+2, y, ' ', nil, style)
}

func (u *ui) squareColour(sq chess.Square) tcell.Color {
	light := (sq.Row+sq.Col)%2 == 0

	if king, ok := u.game.CheckedKing(); ok && king == sq {
		return checkedSquare
	}
	if sel, ok := u.game.Selection(); ok && sel == sq {
		return selectedSquare
	}
	if u.game.IsDestination(sq) {
		if light {
			return destinationLight
		}
		return destinationDark
	}
	if light {
		return lightSquare
	}
	return darkSquare
}

func (u *ui) glyph(p chess.Piece) rune {
	if u.cfg.Display.ASCII {
		return rune(p.Letter())
	}
	return p.Glyph()
}

func (u *ui) drawCoordinates() {
	for i := 0; i < chess.BoardSize; i++ {
		sq := u.boardSquare(i, i)
		rank := rune('8' - sq.Row)
		file := rune('a' + sq.Col)
		u.screen.SetContent(0, boardTop+i, rank, nil, styleDefault)
		u.screen.SetContent(boardLeft+i*squareWidth+1, boardTop+chess.BoardSize, file, nil, styleDefault)
	}
}

// status describes the side to move or the result.
func (u *ui) status() string {
	g := u.game
	switch g.Method() {
	case game.Checkmate:
		return fmt.Sprintf("Checkmate. %s (%s)", g.Outcome(), g.Outcome().Result())
	case game.Stalemate:
		return fmt.Sprintf("Stalemate. %s (%s)", g.Outcome(), g.Outcome().Result())
	}
	if g.InCheck() {
		return fmt.Sprintf("%s to move - CHECK", g.ToMove())
	}
	return fmt.Sprintf("%s to move", g.ToMove())
}

func (u *ui) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
