package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/asteroids/config"
	"github.com/pthm-cable/asteroids/game"
	"github.com/pthm-cable/asteroids/input"
)

func main() {
	// Environment supplies the flag defaults; flags win
	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("failed to read environment", "error", err)
		os.Exit(1)
	}

	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", env.Headless, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", env.OutputDir, "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", env.Seed, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", env.MaxTicks, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")
	demo := flag.Bool("demo", false, "Fly the ship with the built-in autopilot")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: env.SlogLevel()}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
	}
	if *demo {
		opts.Input = input.NewDemo()
	}

	if *headless && !*demo {
		slog.Warn("headless run without -demo: the ship receives no input")
	}

	run := runWindowed
	if *headless {
		run = runHeadless
	}
	if err := run(cfg, opts, *maxTicks); err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
}

// runHeadless steps the simulation as fast as possible, no raylib needed.
func runHeadless(cfg *config.Config, opts game.Options, maxTicks int) error {
	g, err := game.NewGame(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
		"steps_per_update", opts.StepsPerUpdate,
	)

	start := time.Now()
	for {
		g.UpdateHeadless()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			elapsed := time.Since(start)
			slog.Info("max ticks reached",
				"tick", g.Tick(),
				"elapsed", elapsed.String(),
				"ticks_per_sec", float64(g.Tick())/elapsed.Seconds(),
			)
			return nil
		}
	}
}

// runWindowed opens the raylib window and runs the frame loop.
func runWindowed(cfg *config.Config, opts game.Options, maxTicks int) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	// Escape clears the selection instead of closing the window
	rl.SetExitKey(0)

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			break
		}
	}
	return nil
}
