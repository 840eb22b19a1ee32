// Package scene mirrors a game snapshot into an ECS world that renderers
// query layer by layer.
package scene

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/snake"
)

// Layers lists kinds in draw order, back to front.
var Layers = []components.Kind{
	components.KindObstacle,
	components.KindFood,
	components.KindBody,
	components.KindHead,
}

// Scene holds one entity per occupied cell of the last synced snapshot.
type Scene struct {
	world  *ecs.World
	mapper *ecs.Map2[components.Cell, components.Sprite]
	filter *ecs.Filter2[components.Cell, components.Sprite]

	entities []ecs.Entity
	counts   [components.NumKinds]int

	snap snake.Snapshot
}

// New creates an empty scene.
func New() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:  world,
		mapper: ecs.NewMap2[components.Cell, components.Sprite](world),
		filter: ecs.NewFilter2[components.Cell, components.Sprite](world),
	}
}

// Sync replaces the scene contents with the snapshot's occupied cells. Cells
// off the board, such as the head after a wall collision, are left out.
func (s *Scene) Sync(snap snake.Snapshot) {
	for _, e := range s.entities {
		s.world.RemoveEntity(e)
	}
	s.entities = s.entities[:0]
	s.counts = [components.NumKinds]int{}
	s.snap = snap

	for _, t := range snap.Obstacles {
		s.add(components.Cell{X: t.X, Y: t.Y}, components.Sprite{Kind: components.KindObstacle})
	}
	s.add(components.Cell{X: snap.Food.X, Y: snap.Food.Y}, components.Sprite{Kind: components.KindFood})
	for i, t := range snap.Body {
		s.add(components.Cell{X: t.X, Y: t.Y}, components.Sprite{Kind: components.KindBody, Segment: i + 1})
	}
	s.add(components.Cell{X: snap.Head.X, Y: snap.Head.Y}, components.Sprite{Kind: components.KindHead})
}

func (s *Scene) add(cell components.Cell, sprite components.Sprite) {
	if cell.X < 0 || cell.Y < 0 || cell.X >= s.snap.CellsWide || cell.Y >= s.snap.CellsHigh {
		return
	}
	e := s.mapper.NewEntity(&cell, &sprite)
	s.entities = append(s.entities, e)
	s.counts[sprite.Kind]++
}

// Each calls fn for every cell of the given kind.
func (s *Scene) Each(kind components.Kind, fn func(components.Cell, components.Sprite)) {
	if s.counts[kind] == 0 {
		return
	}
	query := s.filter.Query()
	for query.Next() {
		cell, sprite := query.Get()
		if sprite.Kind == kind {
			fn(*cell, *sprite)
		}
	}
}

// Count returns the number of cells of the given kind.
func (s *Scene) Count(kind components.Kind) int { return s.counts[kind] }

// Len returns the number of entities in the scene.
func (s *Scene) Len() int { return len(s.entities) }

// Snapshot returns the snapshot last passed to Sync.
func (s *Scene) Snapshot() snake.Snapshot { return s.snap }
