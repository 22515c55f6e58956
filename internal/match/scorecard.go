package match

import (
	"fmt"
	"math"
)

// BattingLine is one batter's scorecard row.
type BattingLine struct {
	Name       string  `json:"name"`
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strike_rate"`
	Dismissal  string  `json:"dismissal"` // "not out", "did not bat", or the mode
}

// BowlingLine is one bowler's scorecard row.
type BowlingLine struct {
	Name    string  `json:"name"`
	Overs   float64 `json:"overs"`
	Maidens int     `json:"maidens"`
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Economy float64 `json:"economy"`
}

// InningsCard is a structured innings summary sufficient to reconstruct a
// scorecard without re-deriving it from raw ball history.
type InningsCard struct {
	Number        int            `json:"number"`
	SuperOver     bool           `json:"super_over,omitempty"`
	TeamName      string         `json:"team_name"`
	Score         int            `json:"score"`
	Wickets       int            `json:"wickets"`
	Overs         string         `json:"overs"`
	Target        int            `json:"target,omitempty"`
	Extras        int            `json:"extras"`
	Wides         int            `json:"wides"`
	NoBalls       int            `json:"no_balls"`
	Byes          int            `json:"byes"`
	LegByes       int            `json:"leg_byes"`
	Batting       []BattingLine  `json:"batting"`
	Bowling       []BowlingLine  `json:"bowling"`
	FallOfWickets []FallOfWicket `json:"fall_of_wickets"`
}

// Scorecard is the full match summary.
type Scorecard struct {
	MatchID       string        `json:"match_id"`
	Phase         Phase         `json:"phase"`
	Innings       []InningsCard `json:"innings"`
	SuperOvers    []InningsCard `json:"super_overs,omitempty"`
	ResultSummary string        `json:"result_summary,omitempty"`
}

// BuildScorecard summarizes all innings played so far.
func (m *MatchState) BuildScorecard() Scorecard {
	card := Scorecard{
		MatchID:       m.ID,
		Phase:         m.Phase,
		ResultSummary: m.ResultSummary,
	}
	for _, inn := range m.Innings {
		card.Innings = append(card.Innings, m.buildInningsCard(inn))
	}
	for _, inn := range m.SuperOvers {
		card.SuperOvers = append(card.SuperOvers, m.buildInningsCard(inn))
	}
	return card
}

func (m *MatchState) buildInningsCard(inn *Innings) InningsCard {
	card := InningsCard{
		Number:        inn.Number,
		SuperOver:     inn.IsSuperOver,
		TeamName:      m.Teams[inn.BattingTeam].Name,
		Score:         inn.Score,
		Wickets:       inn.Wickets,
		Overs:         inn.OversDisplay(),
		Target:        inn.Target,
		Extras:        inn.Extras(),
		Wides:         inn.Wides,
		NoBalls:       inn.NoBalls,
		Byes:          inn.Byes,
		LegByes:       inn.LegByes,
		FallOfWickets: append([]FallOfWicket(nil), inn.FallOfWickets...),
	}
	for _, b := range inn.Batting {
		line := BattingLine{
			Name:       b.Name,
			Runs:       b.Runs,
			Balls:      b.Balls,
			Fours:      b.Fours,
			Sixes:      b.Sixes,
			StrikeRate: round1(b.StrikeRate()),
		}
		switch {
		case b.Out:
			line.Dismissal = string(b.HowOut)
		case b.Batted:
			line.Dismissal = "not out"
		default:
			line.Dismissal = "did not bat"
		}
		card.Batting = append(card.Batting, line)
	}
	for xiIdx, spell := range inn.Spells {
		if spell.LegalBalls == 0 {
			continue
		}
		card.Bowling = append(card.Bowling, BowlingLine{
			Name:    inn.BowlingXI[xiIdx].Name,
			Overs:   spell.OversDisplay(),
			Maidens: spell.Maidens,
			Runs:    spell.RunsConceded,
			Wickets: spell.WicketsTaken,
			Economy: round1(spell.Economy()),
		})
	}
	return card
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ScoreSummary is the compact line callers show between deliveries.
func (m *MatchState) ScoreSummary() string {
	inn := m.currentInnings()
	if inn == nil {
		if len(m.Innings) == 0 {
			return "match not started"
		}
		inn = m.Innings[len(m.Innings)-1]
	}
	return fmt.Sprintf("%s %d/%d (%s ov)",
		m.Teams[inn.BattingTeam].ShortCode, inn.Score, inn.Wickets, inn.OversDisplay())
}
