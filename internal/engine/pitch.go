package engine

import (
	"errors"
	"fmt"
	"math"
)

// PitchType categorizes the surface a match is played on.
type PitchType string

const (
	PitchGreen PitchType = "green"
	PitchFlat  PitchType = "flat"
	PitchDusty PitchType = "dusty"
	PitchHard  PitchType = "hard"
	PitchDead  PitchType = "dead"
)

// PitchTypes lists every supported surface.
var PitchTypes = []PitchType{PitchGreen, PitchFlat, PitchDusty, PitchHard, PitchDead}

var ErrUnknownPitch = errors.New("unknown pitch type")

func (p PitchType) Validate() error {
	for _, known := range PitchTypes {
		if p == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownPitch, p)
}

// Distribution holds per-delivery outcome percentages over the primary classes.
// A valid distribution sums to 100.
type Distribution struct {
	Dot    float64 `yaml:"dot" json:"dot"`
	Single float64 `yaml:"single" json:"single"`
	Two    float64 `yaml:"two" json:"two"`
	Three  float64 `yaml:"three" json:"three"`
	Four   float64 `yaml:"four" json:"four"`
	Six    float64 `yaml:"six" json:"six"`
	Wicket float64 `yaml:"wicket" json:"wicket"`
}

// Total returns the sum of all outcome percentages.
func (d Distribution) Total() float64 {
	return d.Dot + d.Single + d.Two + d.Three + d.Four + d.Six + d.Wicket
}

// entries returns the percentages in sampling order. The order is fixed so a
// seeded draw sequence is reproducible.
func (d Distribution) entries() [7]float64 {
	return [7]float64{d.Dot, d.Single, d.Two, d.Three, d.Four, d.Six, d.Wicket}
}

// runsForClass maps a sampling-order index to runs off the bat. Index 6 is the
// wicket class.
var runsForClass = [7]int{0, 1, 2, 3, 4, 6, 0}

const distTolerance = 1e-6

// Validate checks non-negativity and that the percentages sum to 100.
func (d Distribution) Validate() error {
	for i, v := range d.entries() {
		if v < 0 {
			return fmt.Errorf("distribution entry %d is negative: %f", i, v)
		}
	}
	if math.Abs(d.Total()-100) > distTolerance {
		return fmt.Errorf("distribution must sum to 100, got %f", d.Total())
	}
	return nil
}

// PitchProfile is the static base table for one surface: the outcome
// distribution plus the share of deliveries that become extras. The numbers are
// configuration data, not derived.
type PitchProfile struct {
	Outcomes  Distribution `yaml:"outcomes" json:"outcomes"`
	ExtrasPct float64      `yaml:"extras_pct" json:"extras_pct"`
}

func (p PitchProfile) Validate() error {
	if err := p.Outcomes.Validate(); err != nil {
		return err
	}
	if p.ExtrasPct < 0 || p.ExtrasPct > 25 {
		return fmt.Errorf("extras_pct must be in [0, 25], got %f", p.ExtrasPct)
	}
	return nil
}

// defaultPitchProfiles is the compiled-in base table. Green favors the bowlers,
// dusty rewards working singles with moderate wicket risk, hard and dead
// surfaces favor boundary hitting.
func defaultPitchProfiles() map[PitchType]PitchProfile {
	return map[PitchType]PitchProfile{
		PitchGreen: {
			Outcomes:  Distribution{Dot: 33, Single: 25, Two: 9, Three: 2, Four: 13, Six: 6, Wicket: 12},
			ExtrasPct: 7,
		},
		PitchFlat: {
			Outcomes:  Distribution{Dot: 28, Single: 30, Two: 10, Three: 2, Four: 16, Six: 9, Wicket: 5},
			ExtrasPct: 5,
		},
		PitchDusty: {
			Outcomes:  Distribution{Dot: 30, Single: 34, Two: 11, Three: 2, Four: 10, Six: 5, Wicket: 8},
			ExtrasPct: 6,
		},
		PitchHard: {
			Outcomes:  Distribution{Dot: 24, Single: 26, Two: 9, Three: 2, Four: 20, Six: 14, Wicket: 5},
			ExtrasPct: 5,
		},
		PitchDead: {
			Outcomes:  Distribution{Dot: 22, Single: 27, Two: 10, Three: 2, Four: 21, Six: 14, Wicket: 4},
			ExtrasPct: 4,
		},
	}
}
