package match

import (
	"errors"
	"fmt"

	"github.com/Manishrdy/SimCricketX-sub000/internal/engine"
	"github.com/Manishrdy/SimCricketX-sub000/internal/player"
	"github.com/Manishrdy/SimCricketX-sub000/internal/team"
)

// Phase is the authoritative state of a match.
type Phase string

const (
	PhaseTossPending  Phase = "toss_pending"
	PhaseInnings1     Phase = "first_innings"
	PhaseInningsBreak Phase = "innings_break"
	PhaseInnings2     Phase = "second_innings"
	PhaseTied         Phase = "tied" // scores level, awaiting a super over
	PhaseSuperOver    Phase = "super_over"
	PhaseCompleted    Phase = "completed"
)

// TossDecision is what the toss winner chose to do first.
type TossDecision string

const (
	DecisionBat  TossDecision = "bat"
	DecisionBowl TossDecision = "bowl"
)

// Regulation T20 limits.
const (
	RegulationOvers   = 20
	RegulationWickets = 10
	SuperOverOvers    = 1
	SuperOverWickets  = 2
	SuperOverBatters  = 3
)

// Validation errors, reported to the caller without mutating state.
var (
	ErrMatchComplete     = errors.New("match already complete")
	ErrTossPending       = errors.New("toss has not been applied")
	ErrTossAlreadyDone   = errors.New("toss already applied")
	ErrAwaitingSuperOver = errors.New("match is tied, start a super over to continue")
	ErrNotSuperOver      = errors.New("match is not in a super over")
	ErrNotTied           = errors.New("super over can only start from a tied match")
	ErrNoRainWindow      = errors.New("rain interruption only applies during the second innings")
	ErrOversLostInvalid  = errors.New("overs lost must be positive and leave the innings in progress")
)

// BatterStat is one batting-order entry's accumulating line.
type BatterStat struct {
	PlayerIdx int               `json:"player_idx"` // index into the innings' batting XI
	Name      string            `json:"name"`
	Runs      int               `json:"runs"`
	Balls     int               `json:"balls"`
	Fours     int               `json:"fours"`
	Sixes     int               `json:"sixes"`
	Batted    bool              `json:"batted"`
	Out       bool              `json:"out"`
	HowOut    engine.WicketType `json:"how_out,omitempty"`
}

// StrikeRate is runs per 100 balls faced.
func (b BatterStat) StrikeRate() float64 {
	if b.Balls == 0 {
		return 0
	}
	return float64(b.Runs) * 100 / float64(b.Balls)
}

// FallOfWicket records when and how a wicket fell.
type FallOfWicket struct {
	Wicket    int               `json:"wicket"` // 1st, 2nd, ...
	Score     int               `json:"score"`
	PlayerOut string            `json:"player_out"`
	How       engine.WicketType `json:"how"`
	Over      string            `json:"over"` // e.g. "12.3"
}

// Innings is one side's batting session, regulation or super over. The XI
// snapshots are frozen at innings creation so an impact swap cannot disturb a
// session already in progress.
type Innings struct {
	Number      int  `json:"number"`
	IsSuperOver bool `json:"is_super_over"`

	BattingTeam int `json:"batting_team"` // index into MatchState.Teams
	BowlingTeam int `json:"bowling_team"`

	BattingXI []player.Player `json:"-"`
	BowlingXI []player.Player `json:"-"`

	OversLimit int `json:"overs_limit"`
	MaxWickets int `json:"max_wickets"`

	Score      int `json:"score"`
	Wickets    int `json:"wickets"`
	LegalBalls int `json:"legal_balls"`
	Target     int `json:"target"` // 0 while setting the pace

	Order      []int        `json:"order"` // batting order as BattingXI indices
	Batting    []BatterStat `json:"batting"`
	NextBatter int          `json:"next_batter"` // next order position to come in
	Striker    int          `json:"striker"`     // order position
	NonStriker int          `json:"non_striker"`

	Spells        []engine.BowlerSpell `json:"spells"` // indexed by BowlingXI index
	CurrentBowler int                  `json:"current_bowler"` // BowlingXI index, -1 between overs
	LastBowler    int                  `json:"last_bowler"`

	PartnershipRuns  int  `json:"partnership_runs"`
	PartnershipBalls int  `json:"partnership_balls"`
	FreeHit          bool `json:"free_hit"`

	Wides   int `json:"wides"`
	NoBalls int `json:"no_balls"`
	Byes    int `json:"byes"`
	LegByes int `json:"leg_byes"`

	FallOfWickets []FallOfWicket `json:"fall_of_wickets"`
	Closed        bool           `json:"closed"`
}

// OversDisplay renders progress in cricket notation, e.g. "14.2".
func (inn *Innings) OversDisplay() string {
	return fmt.Sprintf("%d.%d", inn.LegalBalls/engine.BallsPerOver, inn.LegalBalls%engine.BallsPerOver)
}

// Extras is the total of runs not scored off the bat.
func (inn *Innings) Extras() int {
	return inn.Wides + inn.NoBalls + inn.Byes + inn.LegByes
}

// BallEvent is the immutable record of one delivery, appended to history.
type BallEvent struct {
	Sequence   int  `json:"sequence"`
	Innings    int  `json:"innings"`
	SuperOver  bool `json:"super_over,omitempty"`
	Over       int  `json:"over"` // 1-indexed
	Ball       int  `json:"ball"` // 1-indexed position within the over

	Striker    string `json:"striker"`
	NonStriker string `json:"non_striker"`
	Bowler     string `json:"bowler"`

	RunsOffBat int               `json:"runs_off_bat"`
	Extra      engine.ExtraType  `json:"extra,omitempty"`
	ExtraRuns  int               `json:"extra_runs,omitempty"`
	LegalBall  bool              `json:"legal_ball"`
	FreeHit    bool              `json:"free_hit,omitempty"` // delivery bowled as a free hit
	Wicket     bool              `json:"wicket"`
	WicketType engine.WicketType `json:"wicket_type,omitempty"`
	PlayerOut  string            `json:"player_out,omitempty"`

	Score   int `json:"score"` // resulting
	Wickets int `json:"wickets"`
	Target  int `json:"target,omitempty"`

	Commentary string `json:"commentary"`

	// Boundary-condition signals crossed by this delivery.
	InningsEnd         bool `json:"innings_end,omitempty"`
	MatchTied          bool `json:"match_tied,omitempty"`
	MatchOver          bool `json:"match_over,omitempty"`
	SuperOverComplete  bool `json:"super_over_complete,omitempty"`
	SuperOverTiedAgain bool `json:"super_over_tied_again,omitempty"`
}

// MatchState is the authoritative per-match state, owned by exactly one
// session for the lifetime of the match.
type MatchState struct {
	ID    string       `json:"id"`
	Teams [2]team.Team `json:"teams"`
	Pitch engine.PitchType `json:"pitch"`
	Phase Phase        `json:"phase"`

	TossWinner   int          `json:"toss_winner"` // index into Teams, -1 before the toss
	TossDecision TossDecision `json:"toss_decision,omitempty"`
	BattingFirst int          `json:"batting_first"`

	Innings    []*Innings `json:"innings"`
	SuperOvers []*Innings `json:"super_overs,omitempty"`

	Impact [2]*ImpactState `json:"impact"`

	// lastSuperOverBowler[team] keeps a bowler from repeating across
	// consecutive super overs.
	lastSuperOverBowler [2]int

	History []BallEvent `json:"history"`

	RainApplied   bool   `json:"rain_applied,omitempty"`
	Winner        int    `json:"winner"` // index into Teams, -1 until decided
	ResultSummary string `json:"result_summary,omitempty"`
}
