// Package telemetry records game results and frame timing and writes them
// as CSV.
package telemetry

import "log/slog"

// GameRecord summarizes one finished game.
type GameRecord struct {
	Session    string `csv:"session"`
	Game       int    `csv:"game"`
	Score      int    `csv:"score"`
	Level      int    `csv:"level"`
	Food       int    `csv:"food"`
	Length     int    `csv:"length"`
	Ticks      int    `csv:"ticks"`
	DurationMS int64  `csv:"duration_ms"`
	Cause      string `csv:"cause"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r GameRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("session", r.Session),
		slog.Int("game", r.Game),
		slog.Int("score", r.Score),
		slog.Int("level", r.Level),
		slog.Int("food", r.Food),
		slog.Int("length", r.Length),
		slog.Int("ticks", r.Ticks),
		slog.Int64("duration_ms", r.DurationMS),
		slog.String("cause", r.Cause),
	)
}

// LevelRecord is written each time a game gains a level.
type LevelRecord struct {
	Session    string `csv:"session"`
	Game       int    `csv:"game"`
	Level      int    `csv:"level"`
	Tick       int    `csv:"tick"`
	Score      int    `csv:"score"`
	IntervalMS int64  `csv:"interval_ms"`
	Obstacles  int    `csv:"obstacles"`
	ElapsedMS  int64  `csv:"elapsed_ms"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r LevelRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("game", r.Game),
		slog.Int("level", r.Level),
		slog.Int("tick", r.Tick),
		slog.Int("score", r.Score),
		slog.Int64("interval_ms", r.IntervalMS),
		slog.Int("obstacles", r.Obstacles),
		slog.Int64("elapsed_ms", r.ElapsedMS),
	)
}
