// Package game owns the simulation state and runs the tick pipeline.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/asteroids/camera"
	"github.com/pthm-cable/asteroids/components"
	"github.com/pthm-cable/asteroids/config"
	"github.com/pthm-cable/asteroids/input"
	"github.com/pthm-cable/asteroids/inspector"
	"github.com/pthm-cable/asteroids/renderer"
	"github.com/pthm-cable/asteroids/systems"
	"github.com/pthm-cable/asteroids/telemetry"
	"github.com/pthm-cable/asteroids/ui"
)

// Options configures a game instance beyond the loaded config.
type Options struct {
	Seed           int64
	LogStats       bool    // Log window and perf stats via slog
	StatsWindowSec float64 // 0 = use config
	OutputDir      string  // Empty disables CSV output
	Headless       bool    // Skip all rendering state
	StepsPerUpdate int     // Ticks per Update call (speed multiplier)
	Input          input.Source
}

// Counts holds the live entity counts.
type Counts struct {
	Ships, Asteroids, Lasers int
}

// Game holds the complete simulation state.
type Game struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand

	// Entity archetypes
	shipMap *ecs.Map7[
		components.Position,
		components.Velocity,
		components.Direction,
		components.Health,
		components.Human,
		components.Body,
		components.Weapon,
	]
	asteroidMap *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Health,
		components.Body,
	]
	laserMap *ecs.Map6[
		components.Position,
		components.Velocity,
		components.Health,
		components.Damage,
		components.Lifetime,
		components.Body,
	]

	// Individual component mappers for lookups
	posMap      *ecs.Map[components.Position]
	velMap      *ecs.Map[components.Velocity]
	dirMap      *ecs.Map[components.Direction]
	bodyMap     *ecs.Map[components.Body]
	healthMap   *ecs.Map[components.Health]
	humanMap    *ecs.Map[components.Human]
	damageMap   *ecs.Map[components.Damage]
	lifetimeMap *ecs.Map[components.Lifetime]
	weaponMap   *ecs.Map[components.Weapon]

	bodyFilter   *ecs.Filter2[components.Position, components.Body]
	movingFilter *ecs.Filter2[components.Position, components.Velocity]

	// Systems, run in pipeline order
	pipeline       *Pipeline
	controlSystem  *systems.ControlSystem
	movementSystem *systems.MovementSystem
	wrapSystem     *systems.WrapSystem
	lifetimeSystem *systems.LifetimeSystem
	weaponSystem   *systems.WeaponSystem
	bounds         systems.Bounds
	dt             float64

	// Input
	input    input.Source
	controls input.Controls

	// State
	ship           ecs.Entity
	counts         Counts
	tick           int32
	paused         bool
	stepOnce       bool
	stepsPerUpdate int
	accumulator    float64

	// Telemetry
	collector       *telemetry.Collector
	perfCollector   *telemetry.PerfCollector
	lifetimeTracker *telemetry.LifetimeTracker
	outputManager   *telemetry.OutputManager
	logStats        bool
	speedBuf        []float64

	// Rendering (nil when headless)
	headless     bool
	camera       *camera.Camera
	sprites      *renderer.SpriteRenderer
	styles       map[components.Kind]style
	inspector    *inspector.Inspector
	overlays     *ui.OverlayRegistry
	hud          *ui.HUD
	perfPanel    *ui.PerfPanel
	diagnostics  *ui.DiagnosticsPanel
	screenWidth  float32
	screenHeight float32
}

// NewGame creates a game, spawns the initial entities and opens output files.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	world := ecs.NewWorld()

	g := &Game{
		cfg:   cfg,
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		shipMap: ecs.NewMap7[
			components.Position,
			components.Velocity,
			components.Direction,
			components.Health,
			components.Human,
			components.Body,
			components.Weapon,
		](world),
		asteroidMap: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Health,
			components.Body,
		](world),
		laserMap: ecs.NewMap6[
			components.Position,
			components.Velocity,
			components.Health,
			components.Damage,
			components.Lifetime,
			components.Body,
		](world),
		posMap:       ecs.NewMap[components.Position](world),
		velMap:       ecs.NewMap[components.Velocity](world),
		dirMap:       ecs.NewMap[components.Direction](world),
		bodyMap:      ecs.NewMap[components.Body](world),
		healthMap:    ecs.NewMap[components.Health](world),
		humanMap:     ecs.NewMap[components.Human](world),
		damageMap:    ecs.NewMap[components.Damage](world),
		lifetimeMap:  ecs.NewMap[components.Lifetime](world),
		weaponMap:    ecs.NewMap[components.Weapon](world),
		bodyFilter:   ecs.NewFilter2[components.Position, components.Body](world),
		movingFilter: ecs.NewFilter2[components.Position, components.Velocity](world),
		bounds: systems.Bounds{
			Width:  cfg.Derived.WindowW,
			Height: cfg.Derived.WindowH,
			Buffer: cfg.World.EdgeBuffer,
		},
		dt:             cfg.Physics.DT,
		input:          opts.Input,
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
	}

	g.controlSystem = systems.NewControlSystem(world, systems.Tuning{
		TurnStep:   cfg.Derived.TurnStep,
		ThrustStep: cfg.Derived.ThrustStep,
		MaxSpeed:   cfg.Ship.MaxSpeed,
	})
	g.movementSystem = systems.NewMovementSystem(world, cfg.Derived.StepScale)
	g.wrapSystem = systems.NewWrapSystem(world, g.bounds)
	g.lifetimeSystem = systems.NewLifetimeSystem(world)
	g.weaponSystem = systems.NewWeaponSystem(world, cfg.Laser.Speed, cfg.Laser.FireCooldown)

	// Telemetry
	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}
	g.collector = telemetry.NewCollector(statsWindow, g.dt)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	g.lifetimeTracker = telemetry.NewLifetimeTracker()

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g.pipeline = g.buildPipeline()

	if g.input == nil {
		if g.headless {
			g.input = input.Idle{}
		} else {
			g.input = NewKeyboard()
		}
	}

	if !g.headless {
		g.initRendering()
	}

	g.spawnInitialEntities()

	slog.Info("game created",
		"seed", opts.Seed,
		"ships", g.counts.Ships,
		"asteroids", g.counts.Asteroids,
		"stages", g.pipeline.Names(),
		"output_dir", om.Dir(),
	)

	return g, nil
}

// buildPipeline wires the systems into the per-tick stage order.
func (g *Game) buildPipeline() *Pipeline {
	p := NewPipeline(g.perfCollector)

	p.Add(telemetry.PhaseInput, func() {
		g.controlSystem.Update(g.controls)
	})
	p.Add(telemetry.PhaseIntegrate, func() {
		g.movementSystem.Update()
	})
	p.Add(telemetry.PhaseWrap, func() {
		g.collector.RecordWraps(g.wrapSystem.Update())
	})
	p.Add(telemetry.PhaseLifetime, func() {
		for _, e := range g.lifetimeSystem.Update(g.dt) {
			g.despawnLaser(e)
		}
	})
	p.Add(telemetry.PhaseFire, func() {
		for _, shot := range g.weaponSystem.Update(g.controls, g.dt) {
			g.spawnLaser(shot)
		}
	})
	p.Add(telemetry.PhaseTelemetry, g.flushTelemetry)

	return p
}

// Step runs one tick of the pipeline with the given controls.
func (g *Game) Step(c input.Controls) {
	g.controls = c
	g.pipeline.Run()
	g.tick++
}

// UpdateHeadless runs StepsPerUpdate ticks back to back, polling the input source.
func (g *Game) UpdateHeadless() {
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step(g.input.Poll(g.tick))
	}
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int32 {
	return g.tick
}

// Counts returns the live entity counts.
func (g *Game) Counts() Counts {
	return g.counts
}

// Ship returns the player ship entity.
func (g *Game) Ship() ecs.Entity {
	return g.ship
}

// ShipState returns copies of the ship's position, velocity and heading.
func (g *Game) ShipState() (components.Position, components.Velocity, components.Direction) {
	return *g.posMap.Get(g.ship), *g.velMap.Get(g.ship), *g.dirMap.Get(g.ship)
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused pauses or resumes the simulation.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
	g.accumulator = 0
}

// StepsPerUpdate returns the speed multiplier.
func (g *Game) StepsPerUpdate() int {
	return g.stepsPerUpdate
}

// SetStepsPerUpdate sets the speed multiplier, clamped to [1, maxStepsPerUpdate].
func (g *Game) SetStepsPerUpdate(n int) {
	g.stepsPerUpdate = min(max(n, 1), maxStepsPerUpdate)
}

// Unload flushes output files and logs a final summary.
func (g *Game) Unload() {
	slog.Info("game finished",
		"tick", g.tick,
		"sim_time", float64(g.tick)*g.dt,
		"lasers_live", g.counts.Lasers,
	)
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output files", "error", err)
	}
}
