package team

import (
	"errors"
	"fmt"

	"github.com/Manishrdy/SimCricketX-sub000/internal/engine"
	"github.com/Manishrdy/SimCricketX-sub000/internal/player"
)

// Team is a published squad handed to the simulation: an ordered playing XI that
// owns the batting order, a bench of substitutes, and captain/keeper assignments
// given as indices into the XI.
type Team struct {
	Name            string           `json:"name" binding:"required"`
	ShortCode       string           `json:"short_code" binding:"required"`
	PitchPreference engine.PitchType `json:"pitch_preference,omitempty"`
	PlayingXI       []player.Player  `json:"playing_xi" binding:"required"`
	Substitutes     []player.Player  `json:"substitutes"`
	Captain         int              `json:"captain"`
	Wicketkeeper    int              `json:"wicketkeeper"`
}

const (
	XISize     = 11
	MinSquad   = 12
	MaxSquad   = 25
	MinBowlers = 6
)

var ErrInvalidTeam = errors.New("invalid team")

// Validate enforces the published-squad invariants: 12-25 players overall, a full
// XI, at least one wicketkeeper, at least six bowling-capable players, and captain
// and keeper assigned within the XI.
func (t Team) Validate() error {
	if t.Name == "" || t.ShortCode == "" {
		return fmt.Errorf("%w: name and short code are required", ErrInvalidTeam)
	}
	if len(t.ShortCode) > 5 {
		return fmt.Errorf("%w: short code %q exceeds 5 characters", ErrInvalidTeam, t.ShortCode)
	}
	if len(t.PlayingXI) != XISize {
		return fmt.Errorf("%w: playing XI must have %d players, got %d", ErrInvalidTeam, XISize, len(t.PlayingXI))
	}
	squad := len(t.PlayingXI) + len(t.Substitutes)
	if squad < MinSquad || squad > MaxSquad {
		return fmt.Errorf("%w: squad must have %d-%d players, got %d", ErrInvalidTeam, MinSquad, MaxSquad, squad)
	}
	keepers := 0
	bowlers := 0
	for i, p := range t.PlayingXI {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("playing XI slot %d: %w", i, err)
		}
		if p.Role == player.RoleWicketkeeper {
			keepers++
		}
		if p.CanBowl() {
			bowlers++
		}
	}
	for i, p := range t.Substitutes {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("substitute slot %d: %w", i, err)
		}
	}
	if keepers < 1 {
		return fmt.Errorf("%w: at least one wicketkeeper required in the XI", ErrInvalidTeam)
	}
	if bowlers < MinBowlers {
		return fmt.Errorf("%w: at least %d bowling-capable players required, got %d", ErrInvalidTeam, MinBowlers, bowlers)
	}
	if t.Captain < 0 || t.Captain >= len(t.PlayingXI) {
		return fmt.Errorf("%w: captain index %d outside the XI", ErrInvalidTeam, t.Captain)
	}
	if t.Wicketkeeper < 0 || t.Wicketkeeper >= len(t.PlayingXI) {
		return fmt.Errorf("%w: wicketkeeper index %d outside the XI", ErrInvalidTeam, t.Wicketkeeper)
	}
	if t.PlayingXI[t.Wicketkeeper].Role != player.RoleWicketkeeper {
		return fmt.Errorf("%w: designated keeper %s does not have the wicketkeeper role", ErrInvalidTeam, t.PlayingXI[t.Wicketkeeper].Name)
	}
	if t.PitchPreference != "" {
		if err := t.PitchPreference.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTeam, err)
		}
	}
	return nil
}
