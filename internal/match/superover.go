package match

import (
	"fmt"
	"sort"

	"github.com/Manishrdy/SimCricketX-sub000/internal/engine"
)

// StartSuperOver opens a one-over tie-break pair. Valid only from a tied
// match; a super over tied again re-arms automatically, so this is called at
// most once per match.
func (m *MatchState) StartSuperOver(firstBattingTeam int) error {
	if m.Phase != PhaseTied {
		return ErrNotTied
	}
	if firstBattingTeam != 0 && firstBattingTeam != 1 {
		return fmt.Errorf("first batting team must be 0 or 1, got %d", firstBattingTeam)
	}
	m.armSuperOverPair(firstBattingTeam)
	m.Phase = PhaseSuperOver
	return nil
}

// armSuperOverPair appends the two innings of one super-over round.
func (m *MatchState) armSuperOverPair(firstBattingTeam int) {
	round := len(m.SuperOvers) / 2
	first := m.newSuperOverInnings(round*2+1, firstBattingTeam, 0)
	m.SuperOvers = append(m.SuperOvers, first)
}

// newSuperOverInnings builds a one-over innings: the side's top three batters
// by rating, a two-wicket cap, and a fresh spell sheet.
func (m *MatchState) newSuperOverInnings(number, battingTeam, target int) *Innings {
	battingXI := m.effectiveXI(battingTeam)
	bowlingXI := m.effectiveXI(1 - battingTeam)

	order := make([]int, len(battingXI))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return battingXI[order[a]].BattingRating > battingXI[order[b]].BattingRating
	})
	order = order[:SuperOverBatters]

	inn := &Innings{
		Number:        number,
		IsSuperOver:   true,
		BattingTeam:   battingTeam,
		BowlingTeam:   1 - battingTeam,
		BattingXI:     battingXI,
		BowlingXI:     bowlingXI,
		OversLimit:    SuperOverOvers,
		MaxWickets:    SuperOverWickets,
		Target:        target,
		Order:         order,
		Batting:       make([]BatterStat, len(order)),
		Spells:        make([]engine.BowlerSpell, len(bowlingXI)),
		CurrentBowler: -1,
		LastBowler:    -1,
	}
	for pos, xiIdx := range order {
		inn.Batting[pos] = BatterStat{PlayerIdx: xiIdx, Name: battingXI[xiIdx].Name}
	}
	inn.Striker = 0
	inn.NonStriker = 1
	inn.Batting[0].Batted = true
	inn.Batting[1].Batted = true
	inn.NextBatter = 2
	return inn
}

// closeSuperOverInnings routes a finished super-over innings: open the reply,
// decide the match, or re-arm another round if still level.
func (m *MatchState) closeSuperOverInnings(inn *Innings, ev *BallEvent) {
	if inn.Target == 0 {
		// First of the pair: the chase starts at score + 1.
		reply := m.newSuperOverInnings(inn.Number+1, inn.BowlingTeam, inn.Score+1)
		m.SuperOvers = append(m.SuperOvers, reply)
		return
	}

	chasing := inn.BattingTeam
	defending := inn.BowlingTeam
	switch {
	case inn.Score >= inn.Target:
		m.Winner = chasing
		m.ResultSummary = fmt.Sprintf("%s won the super over", m.Teams[chasing].Name)
		m.Phase = PhaseCompleted
		ev.SuperOverComplete = true
		ev.MatchOver = true
	case inn.Score == inn.Target-1:
		// Still level: another super over, batting order of the sides flips.
		ev.SuperOverTiedAgain = true
		m.armSuperOverPair(defending)
	default:
		m.Winner = defending
		m.ResultSummary = fmt.Sprintf("%s won the super over", m.Teams[defending].Name)
		m.Phase = PhaseCompleted
		ev.SuperOverComplete = true
		ev.MatchOver = true
	}
}
