package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Env holds runtime overrides read from the environment.
// CLI flags take precedence; these only replace the flag defaults.
type Env struct {
	Seed      int64  `env:"ASTEROIDS_SEED" envDefault:"0"`
	Headless  bool   `env:"ASTEROIDS_HEADLESS" envDefault:"false"`
	OutputDir string `env:"ASTEROIDS_OUTPUT_DIR"`
	MaxTicks  int    `env:"ASTEROIDS_MAX_TICKS" envDefault:"0"`
	LogLevel  string `env:"ASTEROIDS_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads environment overrides into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses the ASTEROIDS_* variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}

// SlogLevel maps LogLevel to a slog level. Unknown names fall back to info.
func (e Env) SlogLevel() slog.Level {
	switch strings.ToLower(e.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
