package engine

import (
	"errors"
	"math"

	"github.com/Manishrdy/SimCricketX-sub000/internal/player"
)

// Bowling quota rules for a 20-over innings.
const (
	MaxOversPerBowler = 4
	BallsPerOver      = 6
	MaxBallsPerBowler = MaxOversPerBowler * BallsPerOver
)

// BowlerSpell is the per-innings record for one bowler of the fielding side.
type BowlerSpell struct {
	LegalBalls     int `json:"legal_balls"`
	RunsConceded   int `json:"runs_conceded"`
	WicketsTaken   int `json:"wickets_taken"`
	Maidens        int `json:"maidens"`
	OversCompleted int `json:"overs_completed"`

	// runs conceded in the over currently in progress, for maiden tracking
	CurrentOverRuns int `json:"-"`
}

// OversDisplay renders the spell in cricket notation, e.g. 3.4 overs.
func (s BowlerSpell) OversDisplay() float64 {
	return float64(s.OversCompleted) + float64(s.LegalBalls%BallsPerOver)/10
}

// Economy is runs conceded per over. Zero balls bowled yields zero.
func (s BowlerSpell) Economy() float64 {
	if s.LegalBalls == 0 {
		return 0
	}
	return float64(s.RunsConceded) * BallsPerOver / float64(s.LegalBalls)
}

// FatiguePenalty is the rating handicap a bowler carries into the next over.
// It grows with overs bowled but with diminishing returns, so a fourth over
// costs only slightly more than a third.
func FatiguePenalty(spell BowlerSpell) float64 {
	return 6 * (1 - math.Pow(0.7, float64(spell.OversCompleted)))
}

// EffectiveBowlingRating is the raw rating minus accumulated fatigue.
func EffectiveBowlingRating(rating int, spell BowlerSpell) float64 {
	return float64(rating) - FatiguePenalty(spell)
}

var ErrNoEligibleBowler = errors.New("no eligible bowler available")

// EligibleBowlers returns the XI indices allowed to bowl the next over: bowling
// capable, under the 24-ball quota for the given overs limit, and not the
// bowler of the previous over. An empty result is a fatal precondition failure
// upstream (malformed roster); callers must treat it as such.
func EligibleBowlers(xi []player.Player, spells []BowlerSpell, lastBowler int, oversLimit int) []int {
	quota := MaxBallsPerBowler
	if oversLimit < 20 {
		// Shortened innings: pro-rate the quota, minimum one over.
		quota = (oversLimit*MaxOversPerBowler + 19) / 20 * BallsPerOver
		if quota < BallsPerOver {
			quota = BallsPerOver
		}
	}
	var eligible []int
	for i, p := range xi {
		if !p.CanBowl() {
			continue
		}
		if i == lastBowler {
			continue
		}
		if spells[i].LegalBalls >= quota {
			continue
		}
		eligible = append(eligible, i)
	}
	return eligible
}

// SelectBowler picks the next over's bowler among the eligible, weighted by
// effective (fatigue-adjusted) rating so the better bowlers get more overs
// without the selection becoming deterministic.
func SelectBowler(rng RandomSource, xi []player.Player, spells []BowlerSpell, lastBowler int, oversLimit int) (int, error) {
	eligible := EligibleBowlers(xi, spells, lastBowler, oversLimit)
	if len(eligible) == 0 {
		return -1, ErrNoEligibleBowler
	}
	total := 0.0
	weights := make([]float64, len(eligible))
	for i, idx := range eligible {
		w := EffectiveBowlingRating(xi[idx].BowlingRating, spells[idx])
		if w < 1 {
			w = 1
		}
		// Square the weight to concentrate overs on the frontline bowlers.
		w = w * w
		weights[i] = w
		total += w
	}
	u := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if u < acc {
			return eligible[i], nil
		}
	}
	return eligible[len(eligible)-1], nil
}
