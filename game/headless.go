package game

import (
	"io"
	"log/slog"
	"time"

	"github.com/pthm-cable/snake/input"
	"github.com/pthm-cable/snake/snake"
	"github.com/pthm-cable/snake/telemetry"
)

// HeadlessOptions configures RunHeadless.
type HeadlessOptions struct {
	MaxTicks int // 0 = unlimited

	// Fast runs in lock step on a virtual clock. Each command is applied
	// before the next tick, and while the game is not running the driver
	// waits for the next command. Once input ends the game runs to its end.
	Fast bool

	// Start is the virtual clock origin in fast mode. Zero uses time.Now.
	Start time.Time
}

// RunHeadless drives the game from commands read from r, one per line. It
// returns on quit, on max ticks, or once r is exhausted and the game is not
// running.
func (g *Game) RunHeadless(r io.Reader, opts HeadlessOptions) error {
	stop := make(chan struct{})
	defer close(stop)

	send := func(c input.Command) bool {
		g.queue.Push(c)
		return true
	}
	if opts.Fast {
		send = func(c input.Command) bool { return g.queue.Send(c, stop) }
	}

	eof := make(chan struct{})
	var readErr error
	go func() {
		defer close(eof)
		readErr = input.ReadCommands(r, send)
	}()

	if opts.Fast {
		g.runLockStep(eof, opts)
	} else {
		g.runRealTime(eof, opts.MaxTicks)
	}

	select {
	case <-eof:
		return readErr
	default:
		return nil
	}
}

func (g *Game) runLockStep(eof <-chan struct{}, opts HeadlessOptions) {
	now := opts.Start
	if now.IsZero() {
		now = time.Now()
	}
	if !g.started {
		g.start(now)
	}

	open := true
	for !g.Done() && !g.TicksReached(opts.MaxTicks) {
		if open {
			c, ok := g.nextCommand(eof)
			g.perf.StartFrame()
			g.perf.StartPhase(telemetry.PhaseInput)
			if ok {
				g.apply(now, c)
			} else {
				open = false
			}
		} else {
			g.perf.StartFrame()
		}

		if !g.quit && g.state.Status() == snake.StatusRunning {
			now = now.Add(g.Until(now))
			g.tick(now)
		}
		g.EndFrame()

		if !open && g.state.Status() != snake.StatusRunning {
			slog.Info("input closed", "status", g.state.Status().String())
			return
		}
	}
}

// nextCommand waits for the next queued command. It reports false once the
// reader has finished and nothing is left in the queue.
func (g *Game) nextCommand(eof <-chan struct{}) (input.Command, bool) {
	select {
	case c := <-g.queue.C():
		return c, true
	case <-eof:
	}
	select {
	case c := <-g.queue.C():
		return c, true
	default:
		return input.None, false
	}
}

func (g *Game) runRealTime(eof <-chan struct{}, maxTicks int) {
	for !g.Done() {
		now := time.Now()
		g.BeginFrame()
		g.Advance(now)
		g.EndFrame()

		if g.TicksReached(maxTicks) {
			return
		}
		if g.state.Status() == snake.StatusGameOver {
			select {
			case <-eof:
				// Apply anything pushed just before the input closed.
				g.Advance(now)
				if g.state.Status() == snake.StatusGameOver {
					slog.Info("input closed")
					return
				}
			case <-time.After(5 * time.Millisecond):
			}
			continue
		}
		time.Sleep(min(g.Until(now), 5*time.Millisecond))
	}
}
