package factory

import (
	"iter"

	"game2048/internal/component"
	"game2048/internal/ecs"
	"game2048/internal/rng"
)

// NewRandomTile creates a tile entity with a random value on a random cell
// of a size×size grid that is not in occupied.
//
// The position is drawn before the value. When the grid is full the world
// is left untouched and component.ErrGridFull is returned as is.
func NewRandomTile(w *ecs.World, size int, occupied iter.Seq[component.Position], r rng.Source) (ecs.EntityID, error) {
	pos, err := component.NewRandomPosition(size, occupied, r)
	if err != nil {
		return ecs.NilEntity, err
	}
	tile := component.NewRandomTile(r)
	return w.Spawn(pos, tile), nil
}

// NewTile creates a tile entity at (x, y) with the given value.
func NewTile(w *ecs.World, x, y, value int) ecs.EntityID {
	return w.Spawn(component.NewPosition(x, y), component.Tile{Value: value})
}

// OccupiedPositions yields the position of every live tile entity.
func OccupiedPositions(w *ecs.World) iter.Seq[component.Position] {
	return func(yield func(component.Position) bool) {
		for id, c := range w.Each(component.CPosition) {
			if !w.Has(id, component.CTile) {
				continue
			}
			if !yield(c.(component.Position)) {
				return
			}
		}
	}
}
