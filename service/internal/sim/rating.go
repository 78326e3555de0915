// internal/sim/rating.go
package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrRatingUndefined is returned when the win ratio is 0 or 1, or no games
// were played.
var ErrRatingUndefined = errors.New("sim: rating undefined")

// Rating converts a win/loss record into an Elo-style difference:
// -400 * log10(1/p - 1) with p = wins / (wins + losses). Positive values favour
// the side whose wins are counted. At p = 1 it returns +Inf, at p = 0 -Inf,
// and with no games NaN; all three come with ErrRatingUndefined.
func Rating(wins, losses int) (float64, error) {
	total := wins + losses
	switch {
	case wins < 0 || losses < 0 || total == 0:
		return math.NaN(), fmt.Errorf("%w: %d wins, %d losses", ErrRatingUndefined, wins, losses)
	case losses == 0:
		return math.Inf(1), fmt.Errorf("%w: no losses", ErrRatingUndefined)
	case wins == 0:
		return math.Inf(-1), fmt.Errorf("%w: no wins", ErrRatingUndefined)
	}
	p := float64(wins) / float64(total)
	return -400 * math.Log10(1/p-1), nil
}
