package factory

import (
	"log/slog"
	"sync"

	"game2048/internal/component"
	"game2048/internal/ecs"
	"game2048/internal/rng"
)

// Spawner places random tiles on a shared world. Spawn may be called from
// several goroutines (a game loop and a timer, say): reading the occupied
// cells and creating the entity happen under one lock, so two callers can
// never claim the same cell.
type Spawner struct {
	mu     sync.Mutex
	world  *ecs.World
	size   int
	rand   rng.Source
	logger *slog.Logger
}

// NewSpawner returns a Spawner for a size×size grid backed by w.
// A nil logger falls back to slog.Default().
func NewSpawner(w *ecs.World, size int, r rng.Source, logger *slog.Logger) *Spawner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Spawner{world: w, size: size, rand: r, logger: logger}
}

// Spawn adds one random tile. It returns component.ErrGridFull when no
// cell is free.
func (s *Spawner) Spawn() (ecs.EntityID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spawnLocked()
}

// Fill spawns up to n tiles and stops at the first error. It returns the
// entities created so far along with that error.
func (s *Spawner) Fill(n int) ([]ecs.EntityID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []ecs.EntityID
	for range n {
		id, err := s.spawnLocked()
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Spawner) spawnLocked() (ecs.EntityID, error) {
	id, err := NewRandomTile(s.world, s.size, OccupiedPositions(s.world), s.rand)
	if err != nil {
		s.logger.Info("no free cell for new tile", "grid_size", s.size, "tiles", s.world.Len())
		return id, err
	}
	pos := s.world.Get(id, component.CPosition).(component.Position)
	tile := s.world.Get(id, component.CTile).(component.Tile)
	s.logger.Debug("tile spawned", "entity", id, "x", pos.X, "y", pos.Y, "value", tile.Value)
	return id, nil
}
