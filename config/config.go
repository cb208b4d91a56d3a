// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Ship      ShipConfig      `yaml:"ship"`
	Asteroid  AsteroidConfig  `yaml:"asteroid"`
	Laser     LaserConfig     `yaml:"laser"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// WorldConfig holds playfield settings.
// The playfield is centered on the origin with y pointing up.
type WorldConfig struct {
	EdgeBuffer float64 `yaml:"edge_buffer"` // Inset from each window edge where wrap-around triggers
	Background Color   `yaml:"background"`
}

// PhysicsConfig holds tick and integration parameters.
type PhysicsConfig struct {
	DT               float64 `yaml:"dt"`                  // Seconds per tick
	VelocityScale    float64 `yaml:"velocity_scale"`      // Position units per velocity unit per second
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"` // Catch-up cap for the graphical loop
}

// ShipConfig holds player ship parameters.
type ShipConfig struct {
	MaxSpeed       float64 `yaml:"max_speed"`
	ThrustAccel    float64 `yaml:"thrust_accel"`    // Velocity added per second of thrust
	TurnRate       float64 `yaml:"turn_rate"`       // Radians per second
	InitialHeading float64 `yaml:"initial_heading"` // Radians
	Health         int     `yaml:"health"`
	Size           float64 `yaml:"size"`
	Color          Color   `yaml:"color"`
}

// AsteroidConfig holds asteroid spawn parameters.
type AsteroidConfig struct {
	Count    int     `yaml:"count"`
	MaxSpeed float64 `yaml:"max_speed"` // 0 = ship max speed
	Health   int     `yaml:"health"`
	Size     float64 `yaml:"size"`
	Color    Color   `yaml:"color"`
}

// LaserConfig holds projectile parameters.
type LaserConfig struct {
	Speed        float64 `yaml:"speed"`
	Lifetime     float64 `yaml:"lifetime"` // Seconds before despawn
	Damage       int     `yaml:"damage"`
	Health       int     `yaml:"health"`
	Size         float64 `yaml:"size"`
	FireCooldown float64 `yaml:"fire_cooldown"` // Seconds between shots (0 = every tick while held)
	Color        Color   `yaml:"color"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Seconds of simulation per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Ticks averaged by the perf collector
}

// Color is an RGB color with channels in [0, 1].
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WindowW       float64 // Screen.Width as float64
	WindowH       float64 // Screen.Height as float64
	TurnStep      float64 // Ship.TurnRate * DT
	ThrustStep    float64 // Ship.ThrustAccel * DT
	StepScale     float64 // Physics.VelocityScale * DT
	AsteroidSpeed float64 // Asteroid.MaxSpeed, or Ship.MaxSpeed when unset
	TicksPerSec   float64 // 1 / DT
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate reports parameter combinations the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.World.EdgeBuffer < 0 {
		errs = append(errs, fmt.Errorf("world.edge_buffer must not be negative, got %v", c.World.EdgeBuffer))
	}
	minHalf := float64(min(c.Screen.Width, c.Screen.Height)) / 2
	if c.World.EdgeBuffer >= minHalf && minHalf > 0 {
		errs = append(errs, fmt.Errorf("world.edge_buffer %v leaves no playfield (half extent %v)", c.World.EdgeBuffer, minHalf))
	}
	if c.Physics.DT <= 0 {
		errs = append(errs, fmt.Errorf("physics.dt must be positive, got %v", c.Physics.DT))
	}
	if c.Ship.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("ship.max_speed must be positive, got %v", c.Ship.MaxSpeed))
	}
	if c.Asteroid.Count < 0 {
		errs = append(errs, fmt.Errorf("asteroid.count must not be negative, got %d", c.Asteroid.Count))
	}
	if c.Laser.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("laser.lifetime must be positive, got %v", c.Laser.Lifetime))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.WindowW = float64(c.Screen.Width)
	c.Derived.WindowH = float64(c.Screen.Height)
	c.Derived.TurnStep = c.Ship.TurnRate * c.Physics.DT
	c.Derived.ThrustStep = c.Ship.ThrustAccel * c.Physics.DT
	c.Derived.StepScale = c.Physics.VelocityScale * c.Physics.DT
	c.Derived.TicksPerSec = 1 / c.Physics.DT

	c.Derived.AsteroidSpeed = c.Asteroid.MaxSpeed
	if c.Derived.AsteroidSpeed == 0 {
		c.Derived.AsteroidSpeed = c.Ship.MaxSpeed
	}

	if c.Physics.MaxStepsPerFrame < 1 {
		c.Physics.MaxStepsPerFrame = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
