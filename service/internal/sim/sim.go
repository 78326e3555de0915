// internal/sim/sim.go
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	engine "github.com/sainbayarbattur/BelotGameEngine/engine"
	"github.com/sainbayarbattur/BelotGameEngine/service/internal/config"
	"github.com/sainbayarbattur/BelotGameEngine/service/internal/logging"
)

// ErrGameFault is wrapped by every GameFaultError.
var ErrGameFault = errors.New("sim: game fault")

// GameResult is the outcome of one full game.
type GameResult struct {
	Winner           engine.PlayerPosition // SouthNorthTeam, EastWestTeam, or 0 for a draw.
	SouthNorthPoints int
	EastWestPoints   int
	RoundsPlayed     int
}

// Game plays complete games. An instance is used by one worker at a time.
type Game interface {
	PlayGame(firstToPlay engine.PlayerPosition) GameResult
}

// GameFactory builds a fresh game instance.
type GameFactory func() Game

// Simulation names a player line-up through the games it produces.
type Simulation struct {
	Name    string
	NewGame GameFactory
}

// GameFaultError reports a game that panicked, usually because a strategy
// broke its contract.
type GameFaultError struct {
	Simulation string
	Iteration  int
	Seat       engine.PlayerPosition
	Cause      any // recovered panic value
}

func (e *GameFaultError) Error() string {
	return fmt.Sprintf("sim: %s: game %d (first %v) faulted: %v", e.Simulation, e.Iteration, e.Seat, e.Cause)
}

// Unwrap exposes ErrGameFault and, when the panic value was an error, the
// cause itself.
func (e *GameFaultError) Unwrap() []error {
	if err, ok := e.Cause.(error); ok {
		return []error{ErrGameFault, err}
	}
	return []error{ErrGameFault}
}

// Report summarises one simulation from the South/North point of view.
type Report struct {
	ID               uuid.UUID
	Simulation       string
	Games            int
	Wins             int
	Losses           int // Games - Wins; draws count as losses.
	Delta            int
	Rounds           int
	SouthNorthPoints int
	EastWestPoints   int
	Elapsed          time.Duration
	PerRound         time.Duration
	Rating           float64
	RatingDefined    bool
}

// ---------------------------------------------------------------------------
// Tally
// ---------------------------------------------------------------------------

// tally is the only state shared between workers.
type tally struct {
	mu     sync.Mutex
	games  int
	wins   int
	rounds int
	snPts  int
	ewPts  int
}

func (t *tally) record(r GameResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.games++
	if r.Winner == engine.SouthNorthTeam {
		t.wins++
	}
	t.rounds += r.RoundsPlayed
	t.snPts += r.SouthNorthPoints
	t.ewPts += r.EastWestPoints
}

// ---------------------------------------------------------------------------
// Simulator
// ---------------------------------------------------------------------------

// Simulator runs simulations with the configured degree of parallelism.
type Simulator struct {
	cfg config.Simulation
	log logrus.FieldLogger
}

// NewSimulator returns a simulator. A nil logger discards output.
func NewSimulator(cfg config.Simulation, log logrus.FieldLogger) *Simulator {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}
	return &Simulator{cfg: cfg, log: log}
}

// NewFromConfig validates cfg and returns a simulator logging to stderr with
// the configured level and format.
func NewFromConfig(cfg config.Simulation) (*Simulator, error) {
	return newFromConfig(cfg, os.Stderr)
}

func newFromConfig(cfg config.Simulation, out io.Writer) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := logging.NewWithOutput(out, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	return NewSimulator(cfg, log), nil
}

// Simulate plays games games of sim. Each worker builds one game instance and
// reuses it for every iteration it receives. Iteration i starts with seat
// engine.SeatForIteration(i). The first fault stops dispatching and is
// returned together with the partial report.
func (s *Simulator) Simulate(sim Simulation, games int) (Report, error) {
	if games < 0 {
		return Report{}, fmt.Errorf("sim: negative game count %d", games)
	}

	id := uuid.New()
	log := s.log.WithFields(logrus.Fields{
		"run_id":     id.String(),
		"simulation": sim.Name,
	})
	log.WithField("games", humanize.Comma(int64(games))).Info("simulation started")

	var t tally
	start := time.Now()
	err := s.run(sim, games, &t, log)
	elapsed := time.Since(start)

	report := s.report(id, sim.Name, &t, elapsed)
	if err != nil {
		log.WithError(err).Error("simulation aborted")
		return report, err
	}
	s.logReport(log, report)
	return report, nil
}

func (s *Simulator) run(sim Simulation, games int, t *tally, log logrus.FieldLogger) error {
	workers := min(s.cfg.Parallelism, games)
	if workers == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < games; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return nil
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			game := sim.NewGame()
			for i := range jobs {
				res, err := playOne(sim.Name, game, i)
				if err != nil {
					return err
				}
				t.record(res)
				if s.cfg.DetailedLog {
					log.WithFields(logrus.Fields{
						"iteration": i,
						"first":     engine.SeatForIteration(i).String(),
						"winner":    res.Winner.String(),
						"sn_points": res.SouthNorthPoints,
						"ew_points": res.EastWestPoints,
						"rounds":    res.RoundsPlayed,
					}).Info("game finished")
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// playOne plays iteration i, turning a panic into a GameFaultError.
func playOne(name string, game Game, i int) (res GameResult, err error) {
	seat := engine.SeatForIteration(i)
	defer func() {
		if r := recover(); r != nil {
			err = &GameFaultError{Simulation: name, Iteration: i, Seat: seat, Cause: r}
		}
	}()
	return game.PlayGame(seat), nil
}

func (s *Simulator) report(id uuid.UUID, name string, t *tally, elapsed time.Duration) Report {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := Report{
		ID:               id,
		Simulation:       name,
		Games:            t.games,
		Wins:             t.wins,
		Losses:           t.games - t.wins,
		Rounds:           t.rounds,
		SouthNorthPoints: t.snPts,
		EastWestPoints:   t.ewPts,
		Elapsed:          elapsed,
	}
	r.Delta = r.Wins - r.Losses
	if r.Rounds > 0 {
		r.PerRound = elapsed / time.Duration(r.Rounds)
	}
	rating, err := Rating(r.Wins, r.Losses)
	r.Rating = rating
	r.RatingDefined = err == nil
	return r
}

func (s *Simulator) logReport(log logrus.FieldLogger, r Report) {
	fields := logrus.Fields{
		"games":     humanize.Comma(int64(r.Games)),
		"wins":      humanize.Comma(int64(r.Wins)),
		"losses":    humanize.Comma(int64(r.Losses)),
		"delta":     humanize.Comma(int64(r.Delta)),
		"rounds":    humanize.Comma(int64(r.Rounds)),
		"elapsed":   r.Elapsed.String(),
		"per_round": r.PerRound.String(),
	}
	if secs := r.Elapsed.Seconds(); secs > 0 {
		fields["games_per_sec"] = humanize.CommafWithDigits(float64(r.Games)/secs, 1)
	}
	if r.RatingDefined {
		fields["rating"] = fmt.Sprintf("%+.2f", r.Rating)
	} else {
		fields["rating"] = "undefined"
	}
	log.WithFields(fields).Info("simulation finished")
}
