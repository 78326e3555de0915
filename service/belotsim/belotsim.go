// Package belotsim is the entry point for game engines that want to rate
// strategy line-ups. It loads the BELOT_* configuration, builds the logger
// and hands back a ready simulator.
package belotsim

import (
	"github.com/sainbayarbattur/BelotGameEngine/service/internal/config"
	"github.com/sainbayarbattur/BelotGameEngine/service/internal/sim"
)

type (
	Config            = config.Simulation
	Simulator         = sim.Simulator
	Simulation        = sim.Simulation
	Game              = sim.Game
	GameFactory       = sim.GameFactory
	GameResult        = sim.GameResult
	GameFaultError    = sim.GameFaultError
	Report            = sim.Report
	Seating           = sim.Seating
	SeatedGameFactory = sim.SeatedGameFactory
)

var (
	ErrGameFault       = sim.ErrGameFault
	ErrRatingUndefined = sim.ErrRatingUndefined
	ErrInvalidConfig   = config.ErrInvalidConfig
)

// Open reads envFile (optional) and the process environment, then returns a
// simulator logging to stderr.
func Open(envFile string) (*Simulator, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	return sim.NewFromConfig(cfg)
}

// New returns a simulator for an explicit configuration.
func New(cfg Config) (*Simulator, error) { return sim.NewFromConfig(cfg) }

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config { return config.Default() }

// Rating converts a win/loss record into a rating difference.
func Rating(wins, losses int) (float64, error) { return sim.Rating(wins, losses) }
