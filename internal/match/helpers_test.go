package match

import (
	"fmt"
	"testing"

	"github.com/Manishrdy/SimCricketX-sub000/internal/engine"
	"github.com/Manishrdy/SimCricketX-sub000/internal/player"
	"github.com/Manishrdy/SimCricketX-sub000/internal/team"
)

// testTeam builds a valid squad: a top order, a keeper at 2, all-rounders, and
// a six-strong bowling attack, plus two bench players.
func testTeam(name, code string) team.Team {
	xi := make([]player.Player, 11)
	for i := range xi {
		xi[i] = player.Player{
			Name:           fmt.Sprintf("%s %d", name, i+1),
			Role:           player.RoleBatsman,
			BattingHand:    player.HandRight,
			BattingRating:  80 - i*5,
			BowlingRating:  20,
			FieldingRating: 55,
		}
	}
	xi[2].Role = player.RoleWicketkeeper
	for i := 5; i < 11; i++ {
		xi[i].Role = player.RoleBowler
		xi[i].BowlingHand = player.HandRight
		xi[i].BowlingType = player.BowlingFast
		xi[i].BowlingRating = 85 - (i-5)*4
	}
	xi[5].Role = player.RoleAllRounder
	xi[5].BattingRating = 65
	xi[7].BowlingType = player.BowlingLegSpin
	xi[9].BowlingType = player.BowlingOffSpin

	subs := []player.Player{
		{
			Name: name + " Sub 1", Role: player.RoleBatsman,
			BattingHand: player.HandLeft, BattingRating: 72, BowlingRating: 15, FieldingRating: 60,
		},
		{
			Name: name + " Sub 2", Role: player.RoleBowler,
			BattingHand: player.HandRight, BowlingHand: player.HandLeft,
			BowlingType: player.BowlingLeftSpin,
			BattingRating: 25, BowlingRating: 78, FieldingRating: 58,
		},
	}

	return team.Team{
		Name:         name,
		ShortCode:    code,
		PlayingXI:    xi,
		Substitutes:  subs,
		Captain:      0,
		Wicketkeeper: 2,
	}
}

// newTestMatch builds a tossed match with a deterministic source.
func newTestMatch(t *testing.T, seed uint64) (*MatchState, engine.RandomSource, *engine.OutcomeGenerator, *engine.Tables) {
	t.Helper()
	m, err := NewMatch("test-match", testTeam("Alpha XI", "ALP"), testTeam("Bravo XI", "BRV"), engine.PitchFlat)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.ApplyToss(0, DecisionBat); err != nil {
		t.Fatal(err)
	}
	rng := engine.NewSeededRNG(seed)
	return m, rng, engine.NewOutcomeGenerator(rng), engine.DefaultTables()
}

// playToCompletion advances until the match completes, starting a super over
// whenever the scores finish level. The cap guards against a runaway loop.
func playToCompletion(t *testing.T, m *MatchState, rng engine.RandomSource, gen *engine.OutcomeGenerator, tables *engine.Tables) {
	t.Helper()
	for i := 0; i < 2000; i++ {
		if m.Phase == PhaseCompleted {
			return
		}
		if m.Phase == PhaseTied {
			if err := m.StartSuperOver(m.BattingFirst); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if _, err := m.AdvanceBall(rng, gen, tables); err != nil {
			t.Fatalf("ball %d: %v", i+1, err)
		}
	}
	t.Fatalf("match did not complete within 2000 balls (phase %q)", m.Phase)
}
