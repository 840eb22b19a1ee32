package telemetry

import (
	"time"

	"github.com/google/uuid"

	"github.com/pthm-cable/snake/snake"
)

// Collector turns game events into records for one play session.
type Collector struct {
	session uuid.UUID
	game    int // 1-based index of the current game
	started time.Time
	games   []GameRecord
	levels  int
}

// NewCollector creates a collector with a fresh session ID.
func NewCollector() *Collector {
	return &Collector{session: uuid.New()}
}

// Session returns the session ID stamped on every record.
func (c *Collector) Session() uuid.UUID { return c.session }

// Game returns the index of the current game, 0 before the first StartGame.
func (c *Collector) Game() int { return c.game }

// StartGame begins a new game at now.
func (c *Collector) StartGame(now time.Time) {
	c.game++
	c.started = now
}

// LevelUp records a level gained in the current game.
func (c *Collector) LevelUp(now time.Time, snap snake.Snapshot) LevelRecord {
	c.levels++
	return LevelRecord{
		Session:    c.session.String(),
		Game:       c.game,
		Level:      snap.Level,
		Tick:       snap.Ticks,
		Score:      snap.Score,
		IntervalMS: snap.Interval.Milliseconds(),
		Obstacles:  len(snap.Obstacles),
		ElapsedMS:  now.Sub(c.started).Milliseconds(),
	}
}

// EndGame records the final state of the current game.
func (c *Collector) EndGame(now time.Time, snap snake.Snapshot) GameRecord {
	r := GameRecord{
		Session:    c.session.String(),
		Game:       c.game,
		Score:      snap.Score,
		Level:      snap.Level,
		Food:       len(snap.Body),
		Length:     1 + len(snap.Body),
		Ticks:      snap.Ticks,
		DurationMS: now.Sub(c.started).Milliseconds(),
		Cause:      string(snap.Cause),
	}
	c.games = append(c.games, r)
	return r
}

// Games returns the records of all finished games.
func (c *Collector) Games() []GameRecord { return c.games }

// LevelUps returns the number of level-ups across the session.
func (c *Collector) LevelUps() int { return c.levels }

// Summary aggregates the finished games.
func (c *Collector) Summary() Summary {
	s := Summarize(c.games)
	s.Session = c.session
	s.LevelUps = c.levels
	return s
}
