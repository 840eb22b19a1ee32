// Package snake implements the game state and its per-tick update rules.
package snake

import (
	"fmt"
	"time"

	"github.com/pthm-cable/snake/board"
)

// Status is the game's run state.
type Status uint8

const (
	StatusRunning Status = iota
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	}
	return "unknown"
}

// Cause identifies what ended a game.
type Cause string

const (
	CauseNone      Cause = ""
	CauseWall      Cause = "wall"
	CauseSelf      Cause = "self"
	CauseObstacle  Cause = "obstacle"
	CauseBoardFull Cause = "board_full"
)

// TickResult describes what a single Tick did.
type TickResult struct {
	Advanced  bool // false when the tick was a no-op (paused or over)
	Ate       bool
	LeveledUp bool
	GameOver  bool
	Cause     Cause
	Interval  time.Duration // tick interval after this tick
}

// State owns the snake, food, obstacles, score, level and status.
// It is not safe for concurrent use; a single driver owns it.
type State struct {
	rules  Rules
	board  board.Board
	placer *board.Placer

	head board.Tile
	body []board.Tile // nearest-to-head first

	food            board.Tile
	obstacles       []board.Tile
	obstacleSet     map[board.Tile]struct{}
	obstaclesCapped bool // last placement could not reach the requested count

	score     int
	level     int
	foodEaten int
	ticks     int
	interval  time.Duration

	velocity board.Direction
	pending  board.Direction

	status Status
	cause  Cause
}

// New creates a game on the placer's board and performs the initial reset.
func New(rules Rules, placer *board.Placer) (*State, error) {
	b := placer.Board()
	if err := rules.Validate(b); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	s := &State{
		rules:       rules,
		board:       b,
		placer:      placer,
		obstacleSet: make(map[board.Tile]struct{}),
	}
	s.Reset()
	return s, nil
}

// Reset restores the initial game: head at the start tile, empty body,
// score 0, level 1, base interval, moving right, running; then food and
// level 1 obstacles are placed. Reset is legal from any status.
func (s *State) Reset() {
	s.head = s.rules.Start
	s.body = s.body[:0]
	s.score = 0
	s.level = 1
	s.foodEaten = 0
	s.ticks = 0
	s.interval = s.rules.BaseInterval
	s.velocity = board.Right
	s.pending = board.Right
	s.status = StatusRunning
	s.cause = CauseNone

	s.clearObstacles()
	if err := s.placeFood(); err != nil {
		s.end(CauseBoardFull)
		return
	}
	s.placeObstacles()
}

// SetDirection queues a direction change for the next tick. A direction that
// reverses the current velocity is ignored, as is any input while the game
// is paused or over.
func (s *State) SetDirection(d board.Direction) {
	if s.status != StatusRunning || !d.Valid() {
		return
	}
	if d.IsReverse(s.velocity) {
		return
	}
	s.pending = d
}

// TogglePause flips between running and paused. It has no effect once the
// game is over.
func (s *State) TogglePause() {
	switch s.status {
	case StatusRunning:
		s.status = StatusPaused
	case StatusPaused:
		s.status = StatusRunning
	}
}

// Tick advances the game by one step. It is a no-op unless running.
func (s *State) Tick() TickResult {
	if s.status != StatusRunning {
		return TickResult{Interval: s.interval}
	}
	res := TickResult{Advanced: true}
	s.ticks++
	s.velocity = s.pending

	if s.head == s.food {
		res.Ate = true
		res.LeveledUp = s.eat()
		if err := s.placeFood(); err != nil {
			s.end(CauseBoardFull)
			return s.finish(res)
		}
	}

	// Each segment takes the position of the one ahead of it; iterating from
	// the tail means no segment reads an already-moved neighbour.
	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	if len(s.body) > 0 {
		s.body[0] = s.head
	}

	s.head = s.head.Add(s.velocity)

	if c := s.collision(); c != CauseNone {
		s.end(c)
	}
	return s.finish(res)
}

// eat grows the snake at the food tile and applies scoring. It reports
// whether a level was gained.
func (s *State) eat() bool {
	s.body = append(s.body, s.food)
	s.foodEaten++
	s.score += s.rules.FoodScore
	if s.score%s.rules.LevelScore != 0 {
		return false
	}
	s.level++
	s.interval = s.rules.IntervalForLevel(s.level)
	s.placeObstacles()
	return true
}

func (s *State) finish(res TickResult) TickResult {
	res.Interval = s.interval
	if s.status == StatusGameOver {
		res.GameOver = true
		res.Cause = s.cause
	}
	return res
}

func (s *State) end(c Cause) {
	s.status = StatusGameOver
	s.cause = c
}

// collision checks the head against walls, body and obstacles, in that order.
func (s *State) collision() Cause {
	if !s.board.Contains(s.head) {
		return CauseWall
	}
	for _, seg := range s.body {
		if seg == s.head {
			return CauseSelf
		}
	}
	if _, ok := s.obstacleSet[s.head]; ok {
		return CauseObstacle
	}
	return CauseNone
}

func (s *State) onSnake(t board.Tile) bool {
	if t == s.head {
		return true
	}
	for _, seg := range s.body {
		if seg == t {
			return true
		}
	}
	return false
}

func (s *State) onObstacle(t board.Tile) bool {
	_, ok := s.obstacleSet[t]
	return ok
}

func (s *State) placeFood() error {
	t, err := s.placer.Place(func(t board.Tile) bool {
		return s.onSnake(t) || s.onObstacle(t)
	})
	if err != nil {
		return err
	}
	s.food = t
	return nil
}

func (s *State) clearObstacles() {
	s.obstacles = s.obstacles[:0]
	clear(s.obstacleSet)
	s.obstaclesCapped = false
}

// placeObstacles replaces the obstacle set with a fresh one for the current
// level, disjoint from the snake, the food tile and each other.
func (s *State) placeObstacles() {
	s.clearObstacles()
	want := s.rules.ObstacleCount(s.level, s.board)
	excluded := func(t board.Tile) bool {
		return s.onSnake(t) || t == s.food || s.onObstacle(t)
	}
	for len(s.obstacles) < want {
		t, err := s.placer.Place(excluded)
		if err != nil {
			s.obstaclesCapped = true
			return
		}
		s.obstacles = append(s.obstacles, t)
		s.obstacleSet[t] = struct{}{}
	}
}

// Status returns the current run state.
func (s *State) Status() Status { return s.status }

// Cause returns what ended the game, or CauseNone while it is still on.
func (s *State) Cause() Cause { return s.cause }

// Interval returns the current tick interval. Drivers re-read it after
// every tick.
func (s *State) Interval() time.Duration { return s.interval }

// Velocity returns the direction applied on the last tick.
func (s *State) Velocity() board.Direction { return s.velocity }

// Pending returns the direction the next tick will apply.
func (s *State) Pending() board.Direction { return s.pending }

func (s *State) Head() board.Tile   { return s.head }
func (s *State) Food() board.Tile   { return s.food }
func (s *State) Score() int         { return s.score }
func (s *State) Level() int         { return s.level }
func (s *State) FoodEaten() int     { return s.foodEaten }
func (s *State) Ticks() int         { return s.ticks }
func (s *State) Board() board.Board { return s.board }

// Len returns the snake length including the head.
func (s *State) Len() int { return 1 + len(s.body) }

// ObstaclesCapped reports whether the last obstacle placement ran out of
// free tiles before reaching the level's count.
func (s *State) ObstaclesCapped() bool { return s.obstaclesCapped }
