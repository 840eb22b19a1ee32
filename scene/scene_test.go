package scene

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/snake/board"
	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/snake"
)

// alive reports whether e belongs to the current scene.
func (s *Scene) alive(e ecs.Entity) bool { return s.world.Alive(e) }

func testSnapshot() snake.Snapshot {
	return snake.Snapshot{
		CellsWide: 20,
		CellsHigh: 20,
		Head:      board.Tile{X: 5, Y: 5},
		Body:      []board.Tile{{X: 4, Y: 5}, {X: 3, Y: 5}},
		Food:      board.Tile{X: 10, Y: 10},
		Obstacles: []board.Tile{{X: 1, Y: 1}, {X: 2, Y: 2}},
	}
}

func TestSyncCounts(t *testing.T) {
	s := New()
	s.Sync(testSnapshot())

	tests := []struct {
		kind components.Kind
		want int
	}{
		{components.KindObstacle, 2},
		{components.KindFood, 1},
		{components.KindBody, 2},
		{components.KindHead, 1},
	}
	for _, tt := range tests {
		if got := s.Count(tt.kind); got != tt.want {
			t.Errorf("Count(%v) = %d, want %d", tt.kind, got, tt.want)
		}
	}
	if s.Len() != 6 {
		t.Errorf("expected 6 entities, got %d", s.Len())
	}
}

func TestEachVisitsKind(t *testing.T) {
	s := New()
	s.Sync(testSnapshot())

	segments := map[components.Cell]int{}
	s.Each(components.KindBody, func(c components.Cell, sp components.Sprite) {
		segments[c] = sp.Segment
	})
	if segments[components.Cell{X: 4, Y: 5}] != 1 || segments[components.Cell{X: 3, Y: 5}] != 2 {
		t.Errorf("unexpected body segments %v", segments)
	}

	var head []components.Cell
	s.Each(components.KindHead, func(c components.Cell, _ components.Sprite) {
		head = append(head, c)
	})
	if len(head) != 1 || head[0] != (components.Cell{X: 5, Y: 5}) {
		t.Errorf("unexpected head cells %v", head)
	}
}

func TestSyncReplacesEntities(t *testing.T) {
	s := New()
	s.Sync(testSnapshot())
	old := append([]ecs.Entity(nil), s.entities...)

	next := testSnapshot()
	next.Body = nil
	next.Obstacles = nil
	s.Sync(next)

	if s.Len() != 2 {
		t.Errorf("expected head and food only, got %d entities", s.Len())
	}
	if s.Count(components.KindBody) != 0 {
		t.Errorf("stale body entities remain")
	}
	for _, e := range old {
		if s.alive(e) {
			t.Errorf("entity %v from previous sync still alive", e)
		}
	}
	visited := 0
	for _, kind := range Layers {
		s.Each(kind, func(components.Cell, components.Sprite) { visited++ })
	}
	if visited != 2 {
		t.Errorf("queries visited %d entities, want 2", visited)
	}
}

func TestSyncSkipsCellsOffTheBoard(t *testing.T) {
	s := New()
	snap := testSnapshot()
	snap.Head = board.Tile{X: 20, Y: 5}
	snap.Body = []board.Tile{{X: 19, Y: 5}}
	snap.Status = snake.StatusGameOver
	s.Sync(snap)

	if s.Count(components.KindHead) != 0 {
		t.Error("head past the right wall should not be in the scene")
	}
	if s.Count(components.KindBody) != 1 {
		t.Errorf("expected 1 body cell, got %d", s.Count(components.KindBody))
	}
	s.Each(components.KindHead, func(c components.Cell, _ components.Sprite) {
		t.Errorf("visited off-board head %v", c)
	})

	snap.Head = board.Tile{X: 5, Y: -1}
	s.Sync(snap)
	if s.Count(components.KindHead) != 0 {
		t.Error("head above the top wall should not be in the scene")
	}
}
