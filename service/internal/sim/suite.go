// internal/sim/suite.go
package sim

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// RunSuite runs every simulation with the configured game count. Warm-up
// games are played sequentially on a separate instance before each timed
// run. The total rating sums only defined ratings. On the first fault the
// reports gathered so far are returned with the error.
func (s *Simulator) RunSuite(sims []Simulation) ([]Report, error) {
	reports := make([]Report, 0, len(sims))
	total := 0.0
	for _, sim := range sims {
		if err := s.warmup(sim); err != nil {
			return reports, err
		}
		r, err := s.Simulate(sim, s.cfg.Games)
		if err != nil {
			return reports, err
		}
		reports = append(reports, r)
		if r.RatingDefined {
			total += r.Rating
		}
	}

	s.log.WithFields(logrus.Fields{
		"simulations":  len(reports),
		"games_each":   humanize.Comma(int64(s.cfg.Games)),
		"total_rating": fmt.Sprintf("%+.2f", total),
	}).Info("suite finished")
	return reports, nil
}

func (s *Simulator) warmup(sim Simulation) error {
	if s.cfg.WarmupGames == 0 {
		return nil
	}
	game := sim.NewGame()
	for i := 0; i < s.cfg.WarmupGames; i++ {
		if _, err := playOne(sim.Name, game, i); err != nil {
			return fmt.Errorf("sim: warm-up: %w", err)
		}
	}
	s.log.WithFields(logrus.Fields{
		"simulation": sim.Name,
		"games":      s.cfg.WarmupGames,
	}).Debug("warm-up finished")
	return nil
}
