package snake

import (
	"fmt"
	"time"

	"github.com/pthm-cable/snake/board"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	CellsWide int
	CellsHigh int

	Head      board.Tile
	Body      []board.Tile
	Food      board.Tile
	Obstacles []board.Tile

	Score    int
	Level    int
	Status   Status
	Cause    Cause
	Velocity board.Direction
	Interval time.Duration
	Ticks    int
}

// Snapshot copies the current state. The returned slices are not shared
// with the game.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		CellsWide: s.board.CellsWide(),
		CellsHigh: s.board.CellsHigh(),
		Head:      s.head,
		Body:      append([]board.Tile(nil), s.body...),
		Food:      s.food,
		Obstacles: append([]board.Tile(nil), s.obstacles...),
		Score:     s.score,
		Level:     s.level,
		Status:    s.status,
		Cause:     s.cause,
		Velocity:  s.velocity,
		Interval:  s.interval,
		Ticks:     s.ticks,
	}
}

// StatusLine returns the HUD text for the snapshot's status.
func (s Snapshot) StatusLine() string {
	switch s.Status {
	case StatusGameOver:
		return fmt.Sprintf("Game Over - Score: %d - Level: %d", s.Score, s.Level)
	case StatusPaused:
		return fmt.Sprintf("Paused - Score: %d - Level: %d", s.Score, s.Level)
	}
	return fmt.Sprintf("Score: %d - Level: %d", s.Score, s.Level)
}
