package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"game2048/internal/board"
)

// CellWidth and CellHeight are the size of one tile on screen, in
// terminal columns and rows.
const (
	CellWidth  = 6
	CellHeight = 3
)

// Renderer draws a board onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CellOrigin returns the top-left screen cell of grid cell (x, y) on a
// board of the given size.
func CellOrigin(size, x, y int) (sx, sy int) {
	return 1 + x*(CellWidth+1), 1 + (size-1-y)*(CellHeight+1)
}

// DrawBoard clears the screen and draws every cell of b, then shows it.
func (r *Renderer) DrawBoard(b *board.Board) {
	r.screen.Clear()
	frame := tcell.StyleDefault.Background(tcell.NewHexColor(0xbbada0))
	fw := 1 + b.Size*(CellWidth+1)
	fh := 1 + b.Size*(CellHeight+1)
	for y := range fh {
		for x := range fw {
			r.screen.SetContent(x, y, ' ', nil, frame)
		}
	}

	for y := range b.Size {
		for x := range b.Size {
			r.drawCell(b, x, y)
		}
	}
	r.screen.Show()
}

func (r *Renderer) drawCell(b *board.Board, x, y int) {
	v := b.At(x, y)
	c := ColorsFor(v)
	style := tcell.StyleDefault.Background(c.BG).Foreground(c.FG).Bold(true)
	sx, sy := CellOrigin(b.Size, x, y)
	for dy := range CellHeight {
		for dx := range CellWidth {
			r.screen.SetContent(sx+dx, sy+dy, ' ', nil, style)
		}
	}
	if v == board.Empty {
		return
	}
	label := cellLabel(v)
	lw := runewidth.StringWidth(label)
	r.putString(sx+max(0, (CellWidth-lw)/2), sy+CellHeight/2, label, style)
}

// putString writes s starting at (x, y), advancing by each rune's width.
func (r *Renderer) putString(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
