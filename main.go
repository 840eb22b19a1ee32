package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/game"
	"github.com/pthm-cable/snake/input"
	"github.com/pthm-cable/snake/renderer"
	"github.com/pthm-cable/snake/scene"
	"github.com/pthm-cable/snake/telemetry"
	"github.com/pthm-cable/snake/term"
	"github.com/pthm-cable/snake/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	mode := flag.String("mode", "window", "Frontend: window, term or headless")
	logStats := flag.Bool("log-stats", false, "Output perf stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	fast := flag.Bool("fast", false, "Headless only: apply stdin commands in lock step with ticks on a virtual clock")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// The terminal frontend owns stdout, so logs go to stderr there.
	logOut := io.Writer(os.Stdout)
	if *mode == "term" {
		logOut = os.Stderr
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	g, err := game.New(cfg, game.Options{
		Seed:     rngSeed,
		LogStats: *logStats,
		Output:   output,
	})
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	slog.Info("starting",
		"mode", *mode,
		"seed", rngSeed,
		"max_ticks", *maxTicks,
		"output_dir", output.Dir(),
	)

	switch *mode {
	case "window":
		err = runWindow(cfg, g, *maxTicks)
	case "term":
		err = runTerm(cfg, g, *maxTicks)
	case "headless":
		err = g.RunHeadless(os.Stdin, game.HeadlessOptions{MaxTicks: *maxTicks, Fast: *fast})
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		g.Close()
		output.Close()
		os.Exit(1)
	}
}

// runWindow drives the game in a raylib window.
func runWindow(cfg *config.Config, g *game.Game, maxTicks int) error {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Snake")
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return errors.New("opening window")
	}
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	// Escape is bound to Quit like Q.
	rl.SetExitKey(rl.KeyNull)

	sc := scene.New()
	board := renderer.NewBoardRenderer(cfg.Screen.CellSize, cfg.Derived.CellsWide, cfg.Derived.CellsHigh)
	theme := ui.DefaultTheme(cfg.Screen.HUDFontSize)
	hud := ui.NewHUD(theme, cfg.Screen.CellSize)
	overlay := ui.NewOverlay(theme, cfg.Screen.Width, cfg.Screen.Height)

	for !rl.WindowShouldClose() && !g.Done() {
		g.BeginFrame()
		ui.PollKeys(g.Queue())
		g.Advance(time.Now())

		g.BeginDraw()
		snap := g.Snapshot()
		sc.Sync(snap)
		rl.BeginDrawing()
		board.Draw(sc)
		hud.Draw(snap)
		if overlay.Draw(snap) {
			g.Queue().Push(input.Reset)
		}
		rl.EndDrawing()
		g.EndFrame()

		if g.TicksReached(maxTicks) {
			break
		}
	}
	return nil
}

// runTerm drives the game in the terminal.
func runTerm(cfg *config.Config, g *game.Game, maxTicks int) error {
	screen, err := term.New()
	if err != nil {
		return err
	}
	defer screen.Close()
	go screen.ReadKeys(g.Queue())

	frame := time.Second / time.Duration(max(cfg.Screen.TargetFPS, 1))
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	sc := scene.New()
	for !g.Done() {
		g.BeginFrame()
		g.Advance(time.Now())
		g.BeginDraw()
		sc.Sync(g.Snapshot())
		screen.Draw(sc)
		g.EndFrame()

		if g.TicksReached(maxTicks) {
			break
		}
		<-ticker.C
	}
	return nil
}
