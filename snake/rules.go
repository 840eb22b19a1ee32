package snake

import (
	"fmt"
	"time"

	"github.com/pthm-cable/snake/board"
)

// Rules holds the scoring, leveling and timing constants of a game.
type Rules struct {
	Start             board.Tile
	FoodScore         int // points per food eaten
	LevelScore        int // a level is gained each time the score reaches a multiple of this
	ObstaclesPerLevel int
	BaseInterval      time.Duration
	IntervalStep      time.Duration // interval reduction per level gained
	MinInterval       time.Duration
}

// DefaultRules returns the reference rules: start at (5,5), 10 points per
// food, a level every 50 points, 2 obstacles per level and a tick interval
// of 100ms shrinking by 10ms per level down to 50ms.
func DefaultRules() Rules {
	return Rules{
		Start:             board.Tile{X: 5, Y: 5},
		FoodScore:         10,
		LevelScore:        50,
		ObstaclesPerLevel: 2,
		BaseInterval:      100 * time.Millisecond,
		IntervalStep:      10 * time.Millisecond,
		MinInterval:       50 * time.Millisecond,
	}
}

// Validate checks the rules against a board.
func (r Rules) Validate(b board.Board) error {
	if !b.Contains(r.Start) {
		return fmt.Errorf("start tile %v outside %dx%d board", r.Start, b.CellsWide(), b.CellsHigh())
	}
	if r.FoodScore <= 0 {
		return fmt.Errorf("food score must be positive, got %d", r.FoodScore)
	}
	if r.LevelScore <= 0 {
		return fmt.Errorf("level score must be positive, got %d", r.LevelScore)
	}
	if r.ObstaclesPerLevel < 0 {
		return fmt.Errorf("obstacles per level must not be negative, got %d", r.ObstaclesPerLevel)
	}
	if r.MinInterval <= 0 || r.BaseInterval < r.MinInterval {
		return fmt.Errorf("intervals must satisfy 0 < min (%s) <= base (%s)", r.MinInterval, r.BaseInterval)
	}
	if r.IntervalStep < 0 {
		return fmt.Errorf("interval step must not be negative, got %s", r.IntervalStep)
	}
	return nil
}

// IntervalForLevel returns the tick interval at the given level.
func (r Rules) IntervalForLevel(level int) time.Duration {
	iv := r.BaseInterval - time.Duration(level-1)*r.IntervalStep
	return max(iv, r.MinInterval)
}

// ObstacleCount returns how many obstacles a level has on board b.
// The count is capped so that twice the obstacle count stays below the
// board area.
func (r Rules) ObstacleCount(level int, b board.Board) int {
	return min(level*r.ObstaclesPerLevel, (b.Area()-1)/2)
}
