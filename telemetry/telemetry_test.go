package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/snake/board"
	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/snake"
)

func TestCollectorRecords(t *testing.T) {
	c := NewCollector()
	start := time.Unix(100, 0)
	c.StartGame(start)

	snap := snake.Snapshot{
		Level:     2,
		Score:     50,
		Ticks:     40,
		Interval:  90 * time.Millisecond,
		Obstacles: make([]board.Tile, 4),
		Body:      make([]board.Tile, 5),
	}
	lr := c.LevelUp(start.Add(2*time.Second), snap)
	if lr.Game != 1 || lr.Level != 2 || lr.Obstacles != 4 || lr.IntervalMS != 90 || lr.ElapsedMS != 2000 {
		t.Errorf("unexpected level record %+v", lr)
	}

	snap.Cause = snake.CauseWall
	gr := c.EndGame(start.Add(3*time.Second), snap)
	if gr.Food != 5 || gr.Length != 6 || gr.Cause != "wall" || gr.DurationMS != 3000 {
		t.Errorf("unexpected game record %+v", gr)
	}
	if gr.Session != c.Session().String() || lr.Session != gr.Session {
		t.Error("records must carry the session ID")
	}

	c.StartGame(start.Add(4 * time.Second))
	if c.Game() != 2 {
		t.Errorf("expected game 2, got %d", c.Game())
	}
	if len(c.Games()) != 1 || c.LevelUps() != 1 {
		t.Errorf("expected 1 game and 1 level up, got %d/%d", len(c.Games()), c.LevelUps())
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		games     []GameRecord
		wantMean  float64
		wantStd   float64
		wantMax   float64
		wantLevel float64
	}{
		{"empty", nil, 0, 0, 0, 0},
		{"single", []GameRecord{{Score: 30, Level: 1, Cause: "wall"}}, 30, 0, 30, 1},
		{
			"several",
			[]GameRecord{
				{Score: 10, Level: 1, Cause: "wall"},
				{Score: 50, Level: 2, Cause: "self"},
				{Score: 90, Level: 3, Cause: "wall"},
			},
			50, 40, 90, 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.games)
			if s.Games != len(tt.games) {
				t.Errorf("games = %d, want %d", s.Games, len(tt.games))
			}
			if math.Abs(s.MeanScore-tt.wantMean) > 1e-9 {
				t.Errorf("mean = %v, want %v", s.MeanScore, tt.wantMean)
			}
			if math.Abs(s.StdScore-tt.wantStd) > 1e-9 {
				t.Errorf("std = %v, want %v", s.StdScore, tt.wantStd)
			}
			if s.MaxScore != tt.wantMax {
				t.Errorf("max = %v, want %v", s.MaxScore, tt.wantMax)
			}
			if math.Abs(s.MeanLevel-tt.wantLevel) > 1e-9 {
				t.Errorf("mean level = %v, want %v", s.MeanLevel, tt.wantLevel)
			}
		})
	}

	s := Summarize([]GameRecord{{Cause: "wall"}, {Cause: "wall"}, {Cause: "obstacle"}})
	if s.Causes["wall"] != 2 || s.Causes["obstacle"] != 1 {
		t.Errorf("unexpected cause counts %v", s.Causes)
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := om.WriteGame(GameRecord{Session: "s", Game: i, Score: i * 10, Cause: "wall"}); err != nil {
			t.Fatalf("WriteGame failed: %v", err)
		}
	}
	if err := om.WriteLevel(LevelRecord{Session: "s", Game: 1, Level: 2}); err != nil {
		t.Fatalf("WriteLevel failed: %v", err)
	}
	if err := om.WritePerf(PerfStats{AvgFrame: time.Millisecond}, 120); err != nil {
		t.Fatalf("WritePerf failed: %v", err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "games.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "session,game,score") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Count(string(data), "session,") != 1 {
		t.Error("header written more than once")
	}

	for _, name := range []string{"levels.csv", "perf.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot does not load: %v", err)
	}

	games, err := ReadGames(filepath.Join(dir, "games.csv"))
	if err != nil {
		t.Fatalf("ReadGames failed: %v", err)
	}
	if len(games) != 3 || games[2].Score != 30 || games[0].Cause != "wall" {
		t.Errorf("unexpected games read back: %+v", games)
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("expected nil manager without error, got %v, %v", om, err)
	}
	if err := om.WriteGame(GameRecord{}); err != nil {
		t.Errorf("nil manager should discard writes: %v", err)
	}
	if om.Dir() != "" || om.Close() != nil {
		t.Error("nil manager should report no dir and close cleanly")
	}
}
