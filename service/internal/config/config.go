// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every validation failure returned by Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names recognised by Load.
const (
	EnvGames       = "BELOT_SIM_GAMES"
	EnvParallelism = "BELOT_SIM_PARALLELISM"
	EnvWarmupGames = "BELOT_SIM_WARMUP_GAMES"
	EnvDetailedLog = "BELOT_SIM_DETAILED_LOG"
	EnvLogLevel    = "BELOT_LOG_LEVEL"
	EnvLogFormat   = "BELOT_LOG_FORMAT"
)

// Simulation holds the tunables of a simulation run.
type Simulation struct {
	Games       int    // Games per simulation.
	Parallelism int    // Upper bound on concurrently running games.
	WarmupGames int    // Untimed games played before each simulation.
	DetailedLog bool   // Log every game result.
	LogLevel    string // logrus level name.
	LogFormat   string // "text" or "json".
}

// Default returns the configuration used when no variable is set.
func Default() Simulation {
	return Simulation{
		Games:       200000,
		Parallelism: runtime.NumCPU(),
		WarmupGames: 10,
		DetailedLog: false,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads envFile (when non-empty and present) into the process
// environment without overriding variables that are already set, then builds
// the configuration from the environment on top of Default.
func Load(envFile string) (Simulation, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Simulation{}, fmt.Errorf("config: loading %s: %w", envFile, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds the configuration using lookup for variable access.
func FromEnv(lookup func(string) (string, bool)) (Simulation, error) {
	cfg := Default()
	var err error

	if cfg.Games, err = intVar(lookup, EnvGames, cfg.Games, 1); err != nil {
		return Simulation{}, err
	}
	if cfg.Parallelism, err = intVar(lookup, EnvParallelism, cfg.Parallelism, 1); err != nil {
		return Simulation{}, err
	}
	if cfg.WarmupGames, err = intVar(lookup, EnvWarmupGames, cfg.WarmupGames, 0); err != nil {
		return Simulation{}, err
	}
	if v, ok := lookup(EnvDetailedLog); ok && strings.TrimSpace(v) != "" {
		b, perr := strconv.ParseBool(strings.TrimSpace(v))
		if perr != nil {
			return Simulation{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvDetailedLog, v, perr)
		}
		cfg.DetailedLog = b
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogFormat); ok && strings.TrimSpace(v) != "" {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges. Level names are validated by the logging
// package when the logger is built.
func (c Simulation) Validate() error {
	switch {
	case c.Games < 1:
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	case c.Parallelism < 1:
		return fmt.Errorf("%w: parallelism must be positive, got %d", ErrInvalidConfig, c.Parallelism)
	case c.WarmupGames < 0:
		return fmt.Errorf("%w: warmup games must not be negative, got %d", ErrInvalidConfig, c.WarmupGames)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: log format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

func intVar(lookup func(string) (string, bool), name string, def, floor int) (int, error) {
	v, ok := lookup(name)
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, name, v)
	}
	if n < floor {
		return 0, fmt.Errorf("%w: %s=%d is below %d", ErrInvalidConfig, name, n, floor)
	}
	return n, nil
}
