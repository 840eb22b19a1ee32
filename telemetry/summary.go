package telemetry

import (
	"log/slog"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds session-level statistics over finished games.
type Summary struct {
	Session   uuid.UUID
	Games     int
	LevelUps  int
	MeanScore float64
	StdScore  float64
	MaxScore  float64
	MeanLevel float64
	MeanTicks float64
	Causes    map[string]int
}

// Summarize computes statistics over the given games.
func Summarize(games []GameRecord) Summary {
	s := Summary{Games: len(games), Causes: make(map[string]int)}
	if len(games) == 0 {
		return s
	}

	scores := make([]float64, len(games))
	levels := make([]float64, len(games))
	ticks := make([]float64, len(games))
	for i, g := range games {
		scores[i] = float64(g.Score)
		levels[i] = float64(g.Level)
		ticks[i] = float64(g.Ticks)
		s.Causes[g.Cause]++
	}

	s.MaxScore = floats.Max(scores)
	s.MeanLevel = stat.Mean(levels, nil)
	s.MeanTicks = stat.Mean(ticks, nil)
	if len(games) > 1 {
		s.MeanScore, s.StdScore = stat.MeanStdDev(scores, nil)
	} else {
		s.MeanScore = scores[0]
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("session", s.Session.String()),
		slog.Int("games", s.Games),
		slog.Int("level_ups", s.LevelUps),
		slog.Float64("mean_score", s.MeanScore),
		slog.Float64("std_score", s.StdScore),
		slog.Float64("max_score", s.MaxScore),
		slog.Float64("mean_level", s.MeanLevel),
		slog.Float64("mean_ticks", s.MeanTicks),
	}
	for cause, n := range s.Causes {
		attrs = append(attrs, slog.Int("cause_"+cause, n))
	}
	return slog.GroupValue(attrs...)
}
