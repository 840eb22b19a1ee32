package telemetry

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names for one driver frame.
const (
	PhaseInput = "input"
	PhaseTick  = "tick"
	PhaseDraw  = "draw"
)

var phases = []string{PhaseInput, PhaseTick, PhaseDraw}

// PerfSample holds timing data for a single frame.
type PerfSample struct {
	Frame  time.Duration
	Phases map[string]time.Duration
}

// PerfCollector tracks frame timing over a rolling window.
type PerfCollector struct {
	window  []PerfSample
	next    int
	filled  int
	frames  int64
	current map[string]time.Duration

	frameStart time.Time
	phaseStart time.Time
	phase      string

	now func() time.Time
}

// NewPerfCollector creates a collector averaging over windowSize frames.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		window:  make([]PerfSample, windowSize),
		current: make(map[string]time.Duration),
		now:     time.Now,
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	if p == nil {
		return
	}
	p.frameStart = p.now()
	p.current = make(map[string]time.Duration, len(phases))
	p.phase = ""
}

// StartPhase ends the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	if p == nil {
		return
	}
	now := p.now()
	if p.phase != "" {
		p.current[p.phase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.phase = phase
}

// EndFrame closes the running phase and stores the frame sample.
func (p *PerfCollector) EndFrame() {
	if p == nil {
		return
	}
	now := p.now()
	if p.phase != "" {
		p.current[p.phase] += now.Sub(p.phaseStart)
		p.phase = ""
	}
	p.window[p.next] = PerfSample{Frame: now.Sub(p.frameStart), Phases: p.current}
	p.next = (p.next + 1) % len(p.window)
	if p.filled < len(p.window) {
		p.filled++
	}
	p.frames++
}

// Frames returns the total number of frames recorded.
func (p *PerfCollector) Frames() int64 {
	if p == nil {
		return 0
	}
	return p.frames
}

// Full reports whether a whole window has been recorded since the last
// multiple of the window size.
func (p *PerfCollector) Full() bool {
	return p != nil && p.frames > 0 && p.frames%int64(len(p.window)) == 0
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgFrame time.Duration
	MinFrame time.Duration
	MaxFrame time.Duration
	StdFrame time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // share of the average frame

	FramesPerSecond float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
	}
	if p == nil || p.filled == 0 {
		return s
	}

	frames := make([]float64, p.filled)
	phaseSum := make(map[string]time.Duration)
	for i := 0; i < p.filled; i++ {
		sample := p.window[i]
		frames[i] = float64(sample.Frame)
		if i == 0 || sample.Frame < s.MinFrame {
			s.MinFrame = sample.Frame
		}
		if sample.Frame > s.MaxFrame {
			s.MaxFrame = sample.Frame
		}
		for phase, d := range sample.Phases {
			phaseSum[phase] += d
		}
	}

	mean, std := stat.MeanStdDev(frames, nil)
	s.AvgFrame = time.Duration(mean)
	if p.filled > 1 {
		s.StdFrame = time.Duration(std)
	}
	for phase, sum := range phaseSum {
		avg := sum / time.Duration(p.filled)
		s.PhaseAvg[phase] = avg
		if s.AvgFrame > 0 {
			s.PhasePct[phase] = float64(avg) / float64(s.AvgFrame) * 100
		}
	}
	if s.AvgFrame > 0 {
		s.FramesPerSecond = float64(time.Second) / float64(s.AvgFrame)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Int64("std_frame_us", s.StdFrame.Microseconds()),
		slog.Float64("fps", s.FramesPerSecond),
	}
	for _, phase := range phases {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	Frame      int64   `csv:"frame"`
	AvgFrameUS int64   `csv:"avg_frame_us"`
	MinFrameUS int64   `csv:"min_frame_us"`
	MaxFrameUS int64   `csv:"max_frame_us"`
	StdFrameUS int64   `csv:"std_frame_us"`
	FPS        float64 `csv:"fps"`
	InputPct   float64 `csv:"input_pct"`
	TickPct    float64 `csv:"tick_pct"`
	DrawPct    float64 `csv:"draw_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(frame int64) PerfStatsCSV {
	return PerfStatsCSV{
		Frame:      frame,
		AvgFrameUS: s.AvgFrame.Microseconds(),
		MinFrameUS: s.MinFrame.Microseconds(),
		MaxFrameUS: s.MaxFrame.Microseconds(),
		StdFrameUS: s.StdFrame.Microseconds(),
		FPS:        s.FramesPerSecond,
		InputPct:   s.PhasePct[PhaseInput],
		TickPct:    s.PhasePct[PhaseTick],
		DrawPct:    s.PhasePct[PhaseDraw],
	}
}
