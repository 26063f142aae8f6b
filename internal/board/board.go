// Package board builds read-only grid snapshots of the tiles in a world.
package board

import (
	"game2048/internal/component"
	"game2048/internal/ecs"
)

// Empty marks a cell without a tile.
const Empty = -1

// Board is a size×size snapshot of tile values indexed as Cells[y][x].
type Board struct {
	Size  int
	Cells [][]int
}

// New creates an empty Board.
func New(size int) *Board {
	cells := make([][]int, size)
	for y := range cells {
		cells[y] = make([]int, size)
		for x := range cells[y] {
			cells[y][x] = Empty
		}
	}
	return &Board{Size: size, Cells: cells}
}

// FromWorld snapshots every tile entity of w. Tiles placed off the grid
// are skipped.
func FromWorld(w *ecs.World, size int) *Board {
	b := New(size)
	for _, id := range w.Query(component.CPosition, component.CTile) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !b.InBounds(pos.X, pos.Y) {
			continue
		}
		b.Set(pos.X, pos.Y, w.Get(id, component.CTile).(component.Tile).Value)
	}
	return b
}

// InBounds reports whether (x, y) is on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Size && y >= 0 && y < b.Size
}

// At returns the tile value at (x, y), or Empty. Panics if out of bounds.
func (b *Board) At(x, y int) int {
	return b.Cells[y][x]
}

// Set replaces the value at (x, y).
func (b *Board) Set(x, y, value int) {
	b.Cells[y][x] = value
}

// Occupied returns the positions holding a tile, row by row.
func (b *Board) Occupied() []component.Position {
	var ps []component.Position
	for y := range b.Size {
		for x := range b.Size {
			if b.Cells[y][x] != Empty {
				ps = append(ps, component.Position{X: x, Y: y})
			}
		}
	}
	return ps
}

// Free returns the number of empty cells.
func (b *Board) Free() int {
	return b.Size*b.Size - len(b.Occupied())
}
