package component

import (
	"errors"
	"fmt"
	"iter"

	"game2048/internal/ecs"
	"game2048/internal/rng"
)

const CPosition ecs.ComponentType = 1

// DefaultGridSize is the side length of the classic 2048 board.
const DefaultGridSize = 4

// MaxGridSize bounds the side length so that size² candidates always fit
// in memory.
const MaxGridSize = 1024

var (
	// ErrGridFull is returned when every cell of the grid is already taken.
	ErrGridFull = errors.New("grid full: no unoccupied cell")
	// ErrGridTooLarge is returned for a side length above MaxGridSize.
	ErrGridTooLarge = errors.New("grid too large")
)

// Position is a logic coordinate on the grid; (0,0) is the bottom-left cell.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// NewPosition builds a Position without bounds checks.
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// InBounds reports whether p lies on a size×size grid.
func (p Position) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// NewRandomPosition picks a cell uniformly among those of a size×size grid
// that are not in occupied. Candidates are ordered row by row (y, then x)
// before the draw, so a given seed always maps to the same cell.
// It makes exactly one draw from r, or none when the grid is full.
func NewRandomPosition(size int, occupied iter.Seq[Position], r rng.Source) (Position, error) {
	if size > MaxGridSize {
		return Position{}, fmt.Errorf("%w: side %d exceeds %d", ErrGridTooLarge, size, MaxGridSize)
	}
	taken := make(map[Position]bool)
	if occupied != nil {
		for p := range occupied {
			taken[p] = true
		}
	}

	free := make([]Position, 0, max(size, 0)*max(size, 0))
	for y := range size {
		for x := range size {
			if p := (Position{X: x, Y: y}); !taken[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Position{}, ErrGridFull
	}
	return free[r.Intn(len(free))], nil
}
