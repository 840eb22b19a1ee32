package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/snake/telemetry"
)

func (g *Game) onLevelUp(now time.Time) {
	rec := g.collector.LevelUp(now, g.state.Snapshot())
	slog.Info("level up", "level", rec)
	if g.state.ObstaclesCapped() {
		slog.Warn("obstacle count capped by free space", "level", rec.Level, "obstacles", rec.Obstacles)
	}
	if err := g.output.WriteLevel(rec); err != nil {
		slog.Error("failed to write level", "error", err)
	}
}

func (g *Game) onGameOver(now time.Time) {
	rec := g.collector.EndGame(now, g.state.Snapshot())
	slog.Info("game over", "game", rec)
	if err := g.output.WriteGame(rec); err != nil {
		slog.Error("failed to write game", "error", err)
	}
}

// BeginFrame starts perf timing for one driver iteration.
func (g *Game) BeginFrame() { g.perf.StartFrame() }

// BeginDraw marks the start of the render phase.
func (g *Game) BeginDraw() { g.perf.StartPhase(telemetry.PhaseDraw) }

// EndFrame closes the frame and flushes perf stats once per window.
func (g *Game) EndFrame() {
	g.perf.EndFrame()
	if !g.perf.Full() {
		return
	}
	stats := g.perf.Stats()
	if g.logStats {
		slog.Info("perf", "stats", stats)
	}
	if err := g.output.WritePerf(stats, g.perf.Frames()); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// Perf returns the frame timing collector.
func (g *Game) Perf() *telemetry.PerfCollector { return g.perf }
