// internal/sim/detailed.go
package sim

import (
	"github.com/sirupsen/logrus"

	engine "github.com/sainbayarbattur/BelotGameEngine/engine"
	"github.com/sainbayarbattur/BelotGameEngine/engine/agent"
)

// Seating holds one player per seat, indexed like engine.DealOrder.
type Seating [engine.NumPlayers]*agent.Player

// SeatedGameFactory builds a game around the given seating.
type SeatedGameFactory func(players Seating) Game

// LoggedPlayer returns a player with the strategies of p, each wrapped in a
// LoggingStrategy writing to log. p is left untouched.
func LoggedPlayer(p *agent.Player, log logrus.FieldLogger) *agent.Player {
	logged := agent.NewPlayer()
	for _, k := range agent.AllContractKinds {
		logged.WithStrategy(k, NewLoggingStrategy(p.Strategy(k), log))
	}
	return logged
}

// RunDetailed plays games games of players on a single worker, logging every
// card decision at debug level and every game result at info level.
func (s *Simulator) RunDetailed(name string, players Seating, newGame SeatedGameFactory, games int) (Report, error) {
	log := s.log.WithField("simulation", name)

	var logged Seating
	for i, p := range players {
		logged[i] = LoggedPlayer(p, log)
	}

	detailed := &Simulator{cfg: s.cfg, log: s.log}
	detailed.cfg.Parallelism = 1
	detailed.cfg.DetailedLog = true
	return detailed.Simulate(Simulation{Name: name, NewGame: func() Game { return newGame(logged) }}, games)
}
