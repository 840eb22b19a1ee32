package telemetry

import (
	"testing"
	"time"
)

// fakeClock advances by step on every call.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestPerfCollector_PhaseTiming(t *testing.T) {
	pc := NewPerfCollector(10)
	clock := &fakeClock{t: time.Unix(0, 0), step: time.Millisecond}
	pc.now = clock.now

	for i := 0; i < 5; i++ {
		pc.StartFrame()           // t+1
		pc.StartPhase(PhaseInput) // t+2
		pc.StartPhase(PhaseTick)  // t+3, input 1ms
		pc.StartPhase(PhaseDraw)  // t+4, tick 1ms
		pc.EndFrame()             // t+5, draw 1ms, frame 4ms
	}

	stats := pc.Stats()
	if stats.AvgFrame != 4*time.Millisecond {
		t.Errorf("expected 4ms average frame, got %s", stats.AvgFrame)
	}
	for _, phase := range []string{PhaseInput, PhaseTick, PhaseDraw} {
		if stats.PhaseAvg[phase] != time.Millisecond {
			t.Errorf("expected 1ms for %s, got %s", phase, stats.PhaseAvg[phase])
		}
		if pct := stats.PhasePct[phase]; pct != 25 {
			t.Errorf("expected 25%% for %s, got %.2f", phase, pct)
		}
	}
	if stats.FramesPerSecond != 250 {
		t.Errorf("expected 250 fps, got %.2f", stats.FramesPerSecond)
	}
	if stats.StdFrame != 0 {
		t.Errorf("expected zero deviation for constant frames, got %s", stats.StdFrame)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseTick)
		time.Sleep(50 * time.Microsecond)
		pc.EndFrame()
		if i == 4 && !pc.Full() {
			t.Error("expected full window after 5 frames")
		}
	}

	if pc.Frames() != 10 {
		t.Errorf("expected 10 frames, got %d", pc.Frames())
	}
	stats := pc.Stats()
	if stats.AvgFrame <= 0 {
		t.Error("expected positive average frame duration after window filled")
	}
	if stats.MinFrame > stats.MaxFrame {
		t.Errorf("min %s above max %s", stats.MinFrame, stats.MaxFrame)
	}
}

func TestPerfCollector_Empty(t *testing.T) {
	stats := NewPerfCollector(3).Stats()
	if stats.AvgFrame != 0 || stats.FramesPerSecond != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}

	var nilCollector *PerfCollector
	nilCollector.StartFrame()
	nilCollector.StartPhase(PhaseDraw)
	nilCollector.EndFrame()
	if nilCollector.Full() || nilCollector.Frames() != 0 {
		t.Error("nil collector should record nothing")
	}
}
