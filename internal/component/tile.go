package component

import (
	"game2048/internal/ecs"
	"game2048/internal/rng"
)

const CTile ecs.ComponentType = 2

// MaxValue is the largest exponent whose number fits in an int.
const MaxValue = 61

// Tile holds the value of a tile as a power of two: the number shown on
// the tile is 2^(Value+1), so 0 is a 2, 1 is a 4 and 10 is 2048.
// Value doubles as a sprite or palette index.
type Tile struct {
	Value int
}

func (Tile) Type() ecs.ComponentType { return CTile }

// NewTile returns a tile showing 2.
func NewTile() Tile { return Tile{} }

// NewRandomTile returns a 2 or a 4 with equal odds, using one draw from r.
func NewRandomTile(r rng.Source) Tile {
	return Tile{Value: r.Intn(2)}
}

// Number returns the number displayed on the tile. Values above MaxValue
// are clamped to it.
func (t Tile) Number() int {
	return 1 << (min(t.Value, MaxValue) + 1)
}
