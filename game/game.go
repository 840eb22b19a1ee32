// Package game drives a snake.State in real time: it applies queued commands
// between ticks, schedules ticks from the state's interval and records
// telemetry.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/snake/board"
	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/input"
	"github.com/pthm-cable/snake/snake"
	"github.com/pthm-cable/snake/telemetry"
)

// Options configures a Game.
type Options struct {
	Seed     int64
	LogStats bool
	Queue    *input.Queue             // nil creates one sized from config
	Output   *telemetry.OutputManager // nil disables CSV output
	Perf     *telemetry.PerfCollector // nil creates one sized from config
}

// Game owns the state and the command queue feeding it.
type Game struct {
	state *snake.State
	queue *input.Queue
	cmds  []input.Command

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	perf      *telemetry.PerfCollector
	logStats  bool

	started    bool
	lastTick   time.Time
	totalTicks int
	quit       bool
}

// New creates a game from configuration. The first game starts on the first
// call to Advance.
func New(cfg *config.Config, opts Options) (*Game, error) {
	b, err := BoardFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	placer := board.NewPlacer(b, board.NewSource(opts.Seed), cfg.Game.PlacementAttempts)
	state, err := snake.New(RulesFromConfig(cfg), placer)
	if err != nil {
		return nil, fmt.Errorf("creating game state: %w", err)
	}

	g := &Game{
		state:     state,
		queue:     opts.Queue,
		collector: telemetry.NewCollector(),
		output:    opts.Output,
		perf:      opts.Perf,
		logStats:  opts.LogStats || cfg.Telemetry.LogStats,
	}
	if g.queue == nil {
		g.queue = input.NewQueue(cfg.Input.QueueSize)
	}
	if g.perf == nil {
		g.perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)
	}
	return g, nil
}

// Queue returns the queue input sources push commands into.
func (g *Game) Queue() *input.Queue { return g.queue }

// State returns the game state. Callers must stay on the driver goroutine.
func (g *Game) State() *snake.State { return g.state }

// Snapshot returns a render copy of the current state.
func (g *Game) Snapshot() snake.Snapshot { return g.state.Snapshot() }

// Collector returns the session telemetry collector.
func (g *Game) Collector() *telemetry.Collector { return g.collector }

// Done reports whether a Quit command has been applied.
func (g *Game) Done() bool { return g.quit }

// TotalTicks returns the ticks advanced across all games of the session.
func (g *Game) TotalTicks() int { return g.totalTicks }

// Advance applies pending commands and runs at most one tick if the state's
// interval has elapsed since the previous one.
func (g *Game) Advance(now time.Time) snake.TickResult {
	if !g.started {
		g.start(now)
	}

	g.perf.StartPhase(telemetry.PhaseInput)
	g.cmds = g.queue.Drain(g.cmds[:0])
	for _, c := range g.cmds {
		g.apply(now, c)
	}
	return g.tick(now)
}

// tick runs one tick if the game is running and the interval has elapsed.
func (g *Game) tick(now time.Time) snake.TickResult {
	g.perf.StartPhase(telemetry.PhaseTick)
	if g.quit {
		return snake.TickResult{Interval: g.state.Interval()}
	}
	if g.state.Status() != snake.StatusRunning {
		// Paused time does not count toward the next tick.
		g.lastTick = now
		return snake.TickResult{Interval: g.state.Interval()}
	}
	if now.Sub(g.lastTick) < g.state.Interval() {
		return snake.TickResult{Interval: g.state.Interval()}
	}

	res := g.state.Tick()
	g.lastTick = now
	if res.Advanced {
		g.totalTicks++
	}
	if res.LeveledUp {
		g.onLevelUp(now)
	}
	if res.GameOver {
		g.onGameOver(now)
	}
	return res
}

// Until returns how long after now the next tick is due. It is zero when a
// tick is due and the full interval while the game is not running.
func (g *Game) Until(now time.Time) time.Duration {
	if !g.started || g.state.Status() != snake.StatusRunning {
		return g.state.Interval()
	}
	d := g.lastTick.Add(g.state.Interval()).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// TicksReached reports whether maxTicks ticks have run. Zero means no limit.
func (g *Game) TicksReached(maxTicks int) bool {
	if maxTicks > 0 && g.totalTicks >= maxTicks {
		slog.Info("max ticks reached", "ticks", g.totalTicks)
		return true
	}
	return false
}

func (g *Game) start(now time.Time) {
	g.started = true
	g.lastTick = now
	g.collector.StartGame(now)
	slog.Info("game started",
		"session", g.collector.Session().String(),
		"game", g.collector.Game(),
		"board", fmt.Sprintf("%dx%d", g.state.Board().CellsWide(), g.state.Board().CellsHigh()),
	)
	if g.state.Status() == snake.StatusGameOver {
		// A board too small to hold food ends the game before the first tick.
		g.onGameOver(now)
	}
}

// apply handles one command between ticks.
func (g *Game) apply(now time.Time, c input.Command) {
	switch c {
	case input.Up, input.Down, input.Left, input.Right:
		d, _ := c.Direction()
		g.state.SetDirection(d)
	case input.TogglePause:
		g.state.TogglePause()
		slog.Debug("pause toggled", "status", g.state.Status().String())
	case input.Reset:
		if g.state.Status() != snake.StatusGameOver {
			return
		}
		g.state.Reset()
		g.lastTick = now
		g.collector.StartGame(now)
		slog.Info("game reset", "game", g.collector.Game())
		if g.state.Status() == snake.StatusGameOver {
			g.onGameOver(now)
		}
	case input.Quit:
		g.quit = true
	}
}

// Close writes the session summary and returns it.
func (g *Game) Close() telemetry.Summary {
	s := g.collector.Summary()
	slog.Info("session summary", "summary", s)
	if g.logStats {
		slog.Info("perf", "stats", g.perf.Stats())
	}
	return s
}
