package player

import (
	"errors"
	"fmt"
)

// PlayerRole describes a player's primary job in the XI.
type PlayerRole string

const (
	RoleBatsman      PlayerRole = "batsman"
	RoleBowler       PlayerRole = "bowler"
	RoleAllRounder   PlayerRole = "all_rounder"
	RoleWicketkeeper PlayerRole = "wicketkeeper"
)

// Hand for batting or bowling.
type Hand string

const (
	HandRight Hand = "right"
	HandLeft  Hand = "left"
)

// BowlingType is the style of a bowling-capable player.
type BowlingType string

const (
	BowlingFast       BowlingType = "fast"
	BowlingMediumFast BowlingType = "medium_fast"
	BowlingMedium     BowlingType = "medium"
	BowlingOffSpin    BowlingType = "off_spin"
	BowlingLegSpin    BowlingType = "leg_spin"
	BowlingLeftSpin   BowlingType = "left_arm_spin"
)

// Player is a static profile fed into the simulation. Ratings are 0-100 and
// immutable for the duration of a match; per-match stats accumulate elsewhere.
type Player struct {
	Name           string      `json:"name" binding:"required"`
	Role           PlayerRole  `json:"role" binding:"required"`
	BattingHand    Hand        `json:"batting_hand"`
	BowlingHand    Hand        `json:"bowling_hand,omitempty"`
	BowlingType    BowlingType `json:"bowling_type,omitempty"`
	BattingRating  int         `json:"batting_rating"`
	BowlingRating  int         `json:"bowling_rating"`
	FieldingRating int         `json:"fielding_rating"`
}

var ErrInvalidPlayer = errors.New("invalid player")

// CanBowl reports whether the player may be handed the ball.
func (p Player) CanBowl() bool {
	return p.Role == RoleBowler || p.Role == RoleAllRounder
}

// IsSpinner reports whether the player bowls spin. Stumpings are only in play
// against spinners.
func (p Player) IsSpinner() bool {
	switch p.BowlingType {
	case BowlingOffSpin, BowlingLegSpin, BowlingLeftSpin:
		return true
	}
	return false
}

// Validate checks the static profile: ratings in range, role recognized, and
// bowling type present iff a bowling hand is present.
func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPlayer)
	}
	switch p.Role {
	case RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketkeeper:
	default:
		return fmt.Errorf("%w: unknown role %q for %s", ErrInvalidPlayer, p.Role, p.Name)
	}
	if p.BattingHand != HandRight && p.BattingHand != HandLeft {
		return fmt.Errorf("%w: batting hand must be left or right for %s", ErrInvalidPlayer, p.Name)
	}
	if (p.BowlingHand == "") != (p.BowlingType == "") {
		return fmt.Errorf("%w: bowling type and bowling hand must be set together for %s", ErrInvalidPlayer, p.Name)
	}
	if p.BowlingHand != "" && p.BowlingHand != HandRight && p.BowlingHand != HandLeft {
		return fmt.Errorf("%w: bowling hand must be left or right for %s", ErrInvalidPlayer, p.Name)
	}
	if p.BowlingType != "" {
		switch p.BowlingType {
		case BowlingFast, BowlingMediumFast, BowlingMedium, BowlingOffSpin, BowlingLegSpin, BowlingLeftSpin:
		default:
			return fmt.Errorf("%w: unknown bowling type %q for %s", ErrInvalidPlayer, p.BowlingType, p.Name)
		}
	}
	if p.CanBowl() && p.BowlingType == "" {
		return fmt.Errorf("%w: %s is bowling-capable but has no bowling type", ErrInvalidPlayer, p.Name)
	}
	for _, r := range []struct {
		label string
		value int
	}{
		{"batting_rating", p.BattingRating},
		{"bowling_rating", p.BowlingRating},
		{"fielding_rating", p.FieldingRating},
	} {
		if r.value < 0 || r.value > 100 {
			return fmt.Errorf("%w: %s must be 0-100 for %s, got %d", ErrInvalidPlayer, r.label, p.Name, r.value)
		}
	}
	return nil
}
