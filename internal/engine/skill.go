package engine

import (
	"errors"
	"fmt"
)

// Skill factor bounds. Clamping keeps a lopsided rating gap from producing a
// degenerate distribution.
const (
	MinSkillFactor = 0.4
	MaxSkillFactor = 2.2
)

// Modifiers are the situational inputs blended into the raw rating difference.
type Modifiers struct {
	// FatiguePenalty is subtracted from the bowler's effective rating.
	FatiguePenalty float64
	// PressureBonus is added to the batter's side of the difference when the
	// chase demands a high required rate.
	PressureBonus float64
}

var ErrDegenerateDistribution = errors.New("distribution failed to renormalize")

// SkillFactor collapses batter vs bowler ratings and situational modifiers into
// the single continuous control parameter of the model.
func SkillFactor(battingRating, bowlingRating int, mods Modifiers) float64 {
	diff := float64(battingRating) + mods.PressureBonus - (float64(bowlingRating) - mods.FatiguePenalty)
	f := 1 + diff/100
	if f < MinSkillFactor {
		f = MinSkillFactor
	}
	if f > MaxSkillFactor {
		f = MaxSkillFactor
	}
	return f
}

// Adjust reshapes a base pitch distribution for the current batter/bowler pair:
// every non-wicket probability is multiplied by the skill factor, the wicket
// probability is divided by it, and the result is renormalized to sum to 100.
// A distribution that cannot renormalize is an invariant violation upstream.
func Adjust(base Distribution, battingRating, bowlingRating int, mods Modifiers) (Distribution, error) {
	f := SkillFactor(battingRating, bowlingRating, mods)
	adjusted := Distribution{
		Dot:    base.Dot * f,
		Single: base.Single * f,
		Two:    base.Two * f,
		Three:  base.Three * f,
		Four:   base.Four * f,
		Six:    base.Six * f,
		Wicket: base.Wicket / f,
	}
	total := adjusted.Total()
	if total <= 0 {
		return Distribution{}, fmt.Errorf("%w: total %f after factor %f", ErrDegenerateDistribution, total, f)
	}
	scale := 100 / total
	adjusted.Dot *= scale
	adjusted.Single *= scale
	adjusted.Two *= scale
	adjusted.Three *= scale
	adjusted.Four *= scale
	adjusted.Six *= scale
	adjusted.Wicket *= scale
	return adjusted, nil
}
