package match

import (
	"fmt"

	"github.com/Manishrdy/SimCricketX-sub000/internal/engine"
	"github.com/Manishrdy/SimCricketX-sub000/internal/player"
	"github.com/Manishrdy/SimCricketX-sub000/internal/team"
)

// NewMatch validates both squads and builds the initial state. The match sits
// in TossPending until ApplyToss.
func NewMatch(id string, teamA, teamB team.Team, pitch engine.PitchType) (*MatchState, error) {
	if err := teamA.Validate(); err != nil {
		return nil, fmt.Errorf("team A: %w", err)
	}
	if err := teamB.Validate(); err != nil {
		return nil, fmt.Errorf("team B: %w", err)
	}
	if pitch == "" {
		pitch = engine.PitchFlat
	}
	if err := pitch.Validate(); err != nil {
		return nil, err
	}
	m := &MatchState{
		ID:           id,
		Teams:        [2]team.Team{teamA, teamB},
		Pitch:        pitch,
		Phase:        PhaseTossPending,
		TossWinner:   -1,
		BattingFirst: -1,
		Winner:       -1,
	}
	m.Impact[0] = newImpactState()
	m.Impact[1] = newImpactState()
	m.lastSuperOverBowler = [2]int{-1, -1}
	return m, nil
}

// ApplyToss records the toss and opens the first innings.
func (m *MatchState) ApplyToss(winner int, decision TossDecision) error {
	if m.Phase != PhaseTossPending {
		return ErrTossAlreadyDone
	}
	if winner != 0 && winner != 1 {
		return fmt.Errorf("toss winner must be team 0 or 1, got %d", winner)
	}
	if decision != DecisionBat && decision != DecisionBowl {
		return fmt.Errorf("toss decision must be %q or %q, got %q", DecisionBat, DecisionBowl, decision)
	}
	m.TossWinner = winner
	m.TossDecision = decision
	if decision == DecisionBat {
		m.BattingFirst = winner
	} else {
		m.BattingFirst = 1 - winner
	}
	m.Innings = append(m.Innings, m.newRegulationInnings(1, m.BattingFirst, 0))
	m.Phase = PhaseInnings1
	return nil
}

// newRegulationInnings snapshots both effective XIs and seeds the opening pair.
func (m *MatchState) newRegulationInnings(number, battingTeam, target int) *Innings {
	battingXI := m.effectiveXI(battingTeam)
	bowlingXI := m.effectiveXI(1 - battingTeam)
	order := m.battingOrder(battingTeam, len(battingXI))
	inn := &Innings{
		Number:        number,
		BattingTeam:   battingTeam,
		BowlingTeam:   1 - battingTeam,
		BattingXI:     battingXI,
		BowlingXI:     bowlingXI,
		OversLimit:    RegulationOvers,
		MaxWickets:    RegulationWickets,
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

// currentInnings returns the innings in progress for the active phase.
func (m *MatchState) currentInnings() *Innings {
	switch m.Phase {
	case PhaseInnings1:
		return m.Innings[0]
	case PhaseInnings2:
		return m.Innings[1]
	case PhaseSuperOver:
		for _, inn := range m.SuperOvers {
			if !inn.Closed {
				return inn
			}
		}
	}
	return nil
}

// AdvanceBall simulates exactly one delivery and applies it. After the match
// has completed it is a no-op reported as an error.
func (m *MatchState) AdvanceBall(rng engine.RandomSource, gen *engine.OutcomeGenerator, tables *engine.Tables) (*BallEvent, error) {
	switch m.Phase {
	case PhaseCompleted:
		return nil, ErrMatchComplete
	case PhaseTossPending:
		return nil, ErrTossPending
	case PhaseTied:
		return nil, ErrAwaitingSuperOver
	case PhaseInningsBreak:
		m.beginSecondInnings()
	}
	inn := m.currentInnings()
	if inn == nil {
		return nil, fmt.Errorf("no innings in progress in phase %q", m.Phase)
	}
	ev, err := m.playBall(inn, rng, gen, tables)
	if err != nil {
		return nil, err
	}
	if m.inningsFinished(inn) {
		m.closeInnings(inn, ev)
	}
	ev.Sequence = len(m.History) + 1
	m.History = append(m.History, *ev)
	return ev, nil
}

// playBall runs the probability pipeline for one delivery and mutates the
// innings accordingly.
func (m *MatchState) playBall(inn *Innings, rng engine.RandomSource, gen *engine.OutcomeGenerator, tables *engine.Tables) (*BallEvent, error) {
	if inn.CurrentBowler < 0 {
		bowler, err := m.selectBowler(inn, rng)
		if err != nil {
			return nil, err
		}
		inn.CurrentBowler = bowler
	}

	striker := &inn.Batting[inn.Striker]
	strikerPlayer := inn.BattingXI[striker.PlayerIdx]
	bowlerPlayer := inn.BowlingXI[inn.CurrentBowler]
	spell := &inn.Spells[inn.CurrentBowler]

	profile, err := tables.Pitch(m.Pitch)
	if err != nil {
		return nil, err
	}
	mods := engine.Modifiers{
		FatiguePenalty: engine.FatiguePenalty(*spell),
		PressureBonus:  chasePressureBonus(inn),
	}
	dist, err := engine.Adjust(profile.Outcomes, strikerPlayer.BattingRating, bowlerPlayer.BowlingRating, mods)
	if err != nil {
		return nil, err
	}
	ctx := engine.BallContext{
		FreeHit:        inn.FreeHit,
		BatterRating:   strikerPlayer.BattingRating,
		BowlerIsSpin:   bowlerPlayer.IsSpinner(),
		FieldingRating: teamFieldingRating(inn.BowlingXI),
	}
	res, err := gen.NextBall(dist, profile.ExtrasPct, ctx)
	if err != nil {
		return nil, err
	}

	ev := &BallEvent{
		Innings:    inn.Number,
		SuperOver:  inn.IsSuperOver,
		Over:       inn.LegalBalls/engine.BallsPerOver + 1,
		Ball:       inn.LegalBalls%engine.BallsPerOver + 1,
		Striker:    striker.Name,
		NonStriker: inn.Batting[inn.NonStriker].Name,
		Bowler:     bowlerPlayer.Name,
		RunsOffBat: res.RunsOffBat,
		Extra:      res.Extra,
		ExtraRuns:  res.ExtraRuns,
		LegalBall:  res.LegalBall,
		FreeHit:    inn.FreeHit,
		Commentary: res.Commentary,
	}

	m.applyResult(inn, striker, spell, res, ev)

	ev.Score = inn.Score
	ev.Wickets = inn.Wickets
	ev.Target = inn.Target
	return ev, nil
}

// applyResult folds one sampled delivery into score, stats, partnership,
// strike rotation, free-hit and over bookkeeping.
func (m *MatchState) applyResult(inn *Innings, striker *BatterStat, spell *engine.BowlerSpell, res engine.BallResult, ev *BallEvent) {
	inn.Score += res.TotalRuns()

	// Bowler is charged for runs off the bat plus wide/no-ball penalties, but
	// not byes or leg byes.
	charged := res.RunsOffBat
	switch res.Extra {
	case engine.ExtraWide:
		charged += res.ExtraRuns
		inn.Wides += res.ExtraRuns
	case engine.ExtraNoBall:
		charged += res.ExtraRuns
		inn.NoBalls += res.ExtraRuns
	case engine.ExtraBye:
		inn.Byes += res.ExtraRuns
	case engine.ExtraLegBye:
		inn.LegByes += res.ExtraRuns
	}
	spell.RunsConceded += charged
	spell.CurrentOverRuns += charged

	// Batter bookkeeping: a wide is not a ball faced.
	if res.Extra != engine.ExtraWide && res.Extra != engine.ExtraNoBall {
		striker.Balls++
	}
	striker.Runs += res.RunsOffBat
	switch res.RunsOffBat {
	case 4:
		striker.Fours++
	case 6:
		striker.Sixes++
	}

	inn.PartnershipRuns += res.TotalRuns()
	if res.LegalBall {
		inn.PartnershipBalls++
		inn.LegalBalls++
		spell.LegalBalls++
	}

	// Free hit arms on a no-ball and disarms after the next legal delivery.
	if res.FreeHitNext {
		inn.FreeHit = true
	} else if res.LegalBall {
		inn.FreeHit = false
	}

	// Strike rotates on odd completed runs. Wide and no-ball penalty runs do
	// not rotate strike in this model.
	rotating := res.RunsOffBat
	if res.Extra == engine.ExtraBye || res.Extra == engine.ExtraLegBye {
		rotating = res.ExtraRuns
	}
	if rotating%2 == 1 {
		inn.Striker, inn.NonStriker = inn.NonStriker, inn.Striker
	}

	if res.Wicket {
		m.applyWicket(inn, res, ev)
	}

	// End of over: swap strike regardless of runs and release the bowler.
	if res.LegalBall && inn.LegalBalls%engine.BallsPerOver == 0 {
		spell.OversCompleted++
		if spell.CurrentOverRuns == 0 {
			spell.Maidens++
		}
		spell.CurrentOverRuns = 0
		inn.LastBowler = inn.CurrentBowler
		inn.CurrentBowler = -1
		if !m.inningsFinished(inn) {
			inn.Striker, inn.NonStriker = inn.NonStriker, inn.Striker
		}
	}
}

// applyWicket dismisses the current striker (rotation for completed runs has
// already been applied, so a run-out falls on the batter caught short).
func (m *MatchState) applyWicket(inn *Innings, res engine.BallResult, ev *BallEvent) {
	out := &inn.Batting[inn.Striker]
	out.Out = true
	out.HowOut = res.WicketType
	inn.Wickets++
	if res.WicketType != engine.WicketRunOut {
		inn.Spells[inn.CurrentBowler].WicketsTaken++
	}

	ev.Wicket = true
	ev.WicketType = res.WicketType
	ev.PlayerOut = out.Name

	inn.FallOfWickets = append(inn.FallOfWickets, FallOfWicket{
		Wicket:    inn.Wickets,
		Score:     inn.Score,
		PlayerOut: out.Name,
		How:       res.WicketType,
		Over:      inn.OversDisplay(),
	})

	inn.PartnershipRuns = 0
	inn.PartnershipBalls = 0

	if inn.NextBatter < len(inn.Order) && inn.Wickets < inn.MaxWickets {
		inn.Batting[inn.NextBatter].Batted = true
		inn.Striker = inn.NextBatter
		inn.NextBatter++
	}
}

// selectBowler delegates to the rotation policy. An empty eligible set is a
// roster invariant violation and surfaces as a fatal error.
func (m *MatchState) selectBowler(inn *Innings, rng engine.RandomSource) (int, error) {
	last := inn.LastBowler
	if inn.IsSuperOver {
		last = m.lastSuperOverBowler[inn.BowlingTeam]
	}
	idx, err := engine.SelectBowler(rng, inn.BowlingXI, inn.Spells, last, inn.OversLimit)
	if err != nil {
		return -1, fmt.Errorf("innings %d: %w", inn.Number, err)
	}
	if inn.IsSuperOver {
		m.lastSuperOverBowler[inn.BowlingTeam] = idx
	}
	return idx, nil
}

// chasePressureBonus rewards the batter when the required rate climbs above a
// comfortable T20 tempo.
func chasePressureBonus(inn *Innings) float64 {
	if inn.Target == 0 {
		return 0
	}
	ballsLeft := inn.OversLimit*engine.BallsPerOver - inn.LegalBalls
	if ballsLeft <= 0 {
		return 0
	}
	needed := inn.Target - inn.Score
	rrr := float64(needed) * engine.BallsPerOver / float64(ballsLeft)
	bonus := (rrr - 6) * 1.25
	if bonus < 0 {
		return 0
	}
	if bonus > 10 {
		return 10
	}
	return bonus
}

// teamFieldingRating is the fielding strength fed into run-out and catch
// weighting, an average over the fielding XI.
func teamFieldingRating(xi []player.Player) int {
	if len(xi) == 0 {
		return 50
	}
	sum := 0
	for _, p := range xi {
		sum += p.FieldingRating
	}
	return sum / len(xi)
}

// inningsFinished reports whether a boundary condition has been crossed:
// overs exhausted, wickets exhausted, or target reached.
func (m *MatchState) inningsFinished(inn *Innings) bool {
	if inn.LegalBalls >= inn.OversLimit*engine.BallsPerOver {
		return true
	}
	if inn.Wickets >= inn.MaxWickets {
		return true
	}
	if inn.Target > 0 && inn.Score >= inn.Target {
		return true
	}
	return false
}

// closeInnings seals an innings and routes the match to its next phase.
func (m *MatchState) closeInnings(inn *Innings, ev *BallEvent) {
	inn.Closed = true
	ev.InningsEnd = true

	if inn.IsSuperOver {
		m.closeSuperOverInnings(inn, ev)
		return
	}

	if inn.Number == 1 {
		m.Phase = PhaseInningsBreak
		return
	}

	// Second innings: the match is decided or tied.
	chasing := inn.BattingTeam
	defending := inn.BowlingTeam
	switch {
	case inn.Score >= inn.Target:
		m.Winner = chasing
		m.ResultSummary = fmt.Sprintf("%s won by %d wickets",
			m.Teams[chasing].Name, inn.MaxWickets-inn.Wickets)
		m.Phase = PhaseCompleted
		ev.MatchOver = true
	case inn.Score == inn.Target-1:
		m.Phase = PhaseTied
		ev.MatchTied = true
	default:
		m.Winner = defending
		m.ResultSummary = fmt.Sprintf("%s won by %d runs",
			m.Teams[defending].Name, inn.Target-1-inn.Score)
		m.Phase = PhaseCompleted
		ev.MatchOver = true
	}
}

// beginSecondInnings locks both impact sub-machines and opens the chase.
func (m *MatchState) beginSecondInnings() {
	m.Impact[0].lock()
	m.Impact[1].lock()
	target := m.Innings[0].Score + 1
	m.Innings = append(m.Innings, m.newRegulationInnings(2, 1-m.BattingFirst, target))
	m.Phase = PhaseInnings2
}

// ApplyRainInterruption removes overs from the chase and recomputes the target
// through the resource table. Only the second innings has a revision window.
func (m *MatchState) ApplyRainInterruption(oversLost int, tables *engine.Tables) error {
	if m.Phase != PhaseInnings2 {
		return ErrNoRainWindow
	}
	inn := m.Innings[1]
	oversBowled := float64(inn.LegalBalls) / engine.BallsPerOver
	remainingBefore := float64(inn.OversLimit) - oversBowled
	remainingAfter := remainingBefore - float64(oversLost)
	if oversLost < 1 || remainingAfter <= 0 {
		return ErrOversLostInvalid
	}
	revised, err := tables.DLS.RevisedTarget(inn.Target, RegulationOvers, remainingBefore, remainingAfter, inn.Wickets)
	if err != nil {
		return err
	}
	inn.OversLimit -= oversLost
	inn.Target = revised
	m.RainApplied = true
	return nil
}
