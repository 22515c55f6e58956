package match

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Manishrdy/SimCricketX-sub000/internal/engine"
	"github.com/Manishrdy/SimCricketX-sub000/internal/live"
	"github.com/Manishrdy/SimCricketX-sub000/internal/team"
	"github.com/Manishrdy/SimCricketX-sub000/pkg/responses"
)

// MatchController handles the simulation API: starting matches, advancing
// deliveries, the impact window, rain revisions, and super overs.
type MatchController struct {
	manager *Manager
	hub     *live.Hub
}

// NewMatchController creates a new match controller.
func NewMatchController(manager *Manager, hub *live.Hub) *MatchController {
	return &MatchController{manager: manager, hub: hub}
}

// --- DTOs for requests ---

// StartMatchRequest defines the payload for creating a simulated match.
type StartMatchRequest struct {
	TeamA        team.Team        `json:"team_a" binding:"required"`
	TeamB        team.Team        `json:"team_b" binding:"required"`
	TossWinner   string           `json:"toss_winner" binding:"required,oneof=team_a team_b"`
	TossDecision TossDecision     `json:"toss_decision" binding:"required,oneof=bat bowl"`
	Pitch        engine.PitchType `json:"pitch,omitempty"`
	Seed         *uint64          `json:"seed,omitempty"`
}

// ImpactSwapRequest defines the payload for the one-time substitution.
type ImpactSwapRequest struct {
	Team     string `json:"team" binding:"required,oneof=team_a team_b"`
	OutIndex *int   `json:"out_index" binding:"required"`
	InIndex  *int   `json:"in_index" binding:"required"`
}

// BattingOrderRequest defines the payload for locking a batting order.
type BattingOrderRequest struct {
	Team  string `json:"team" binding:"required,oneof=team_a team_b"`
	Order []int  `json:"order" binding:"required"`
}

// RainRequest defines the payload for declaring an interruption.
type RainRequest struct {
	OversLost int `json:"overs_lost" binding:"required,min=1,max=19"`
}

// SuperOverRequest defines the payload for starting the tie-break.
type SuperOverRequest struct {
	FirstBattingTeam string `json:"first_batting_team" binding:"required,oneof=team_a team_b"`
}

func teamIndex(label string) int {
	if label == "team_b" {
		return 1
	}
	return 0
}

// ballResponse is the shape every delivery-producing endpoint returns.
type ballResponse struct {
	Event     *BallEvent `json:"event"`
	Phase     Phase      `json:"phase"`
	Score     string     `json:"score"`
	Scorecard *Scorecard `json:"scorecard,omitempty"`
}

// StartMatch validates both squads, applies the toss, and registers a session.
func (mc *MatchController) StartMatch(c *gin.Context) {
	var req StartMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	pitch := req.Pitch
	if pitch == "" {
		// Default surface: the toss winner's preference, else a flat deck.
		winner := req.TeamA
		if req.TossWinner == "team_b" {
			winner = req.TeamB
		}
		pitch = winner.PitchPreference
	}
	session, err := mc.manager.StartMatch(req.TeamA, req.TeamB, pitch, teamIndex(req.TossWinner), req.TossDecision, req.Seed)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	state := session.State
	responses.SendSuccess(c, http.StatusCreated, "Match started", gin.H{
		"match_id":      state.ID,
		"phase":         state.Phase,
		"pitch":         state.Pitch,
		"toss_winner":   state.Teams[state.TossWinner].Name,
		"toss_decision": state.TossDecision,
		"batting_first": state.Teams[state.BattingFirst].Name,
	})
}

// NextBall advances the match by one delivery.
func (mc *MatchController) NextBall(c *gin.Context) {
	mc.advance(c, false)
}

// NextSuperOverBall advances the tie-break by one delivery.
func (mc *MatchController) NextSuperOverBall(c *gin.Context) {
	mc.advance(c, true)
}

func (mc *MatchController) advance(c *gin.Context, superOver bool) {
	session, ok := mc.session(c)
	if !ok {
		return
	}
	if superOver {
		phase := sessionPhase(session)
		if phase != PhaseSuperOver {
			responses.SendError(c, http.StatusConflict, ErrNotSuperOver.Error())
			return
		}
	}
	ev, err := session.Advance(mc.manager.Tables())
	if err != nil {
		mc.advanceError(c, err)
		return
	}

	resp := ballResponse{Event: ev, Score: scoreLine(session)}
	session.Do(func(state *MatchState) error {
		resp.Phase = state.Phase
		if ev.InningsEnd || ev.MatchTied || ev.MatchOver || ev.SuperOverComplete || ev.SuperOverTiedAgain {
			card := state.BuildScorecard()
			resp.Scorecard = &card
		}
		return nil
	})
	mc.hub.Broadcast(c.Param("id"), ev)
	responses.SendSuccess(c, http.StatusOK, "", resp)
}

// advanceError maps the state machine's error taxonomy onto HTTP statuses:
// validation errors are 409s against the current phase, invariant violations
// are 500s.
func (mc *MatchController) advanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMatchComplete),
		errors.Is(err, ErrAwaitingSuperOver),
		errors.Is(err, ErrTossPending),
		errors.Is(err, ErrNotSuperOver):
		responses.SendError(c, http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrNoEligibleBowler),
		errors.Is(err, engine.ErrDegenerateDistribution):
		responses.InternalServerError(c, err.Error())
	default:
		responses.BadRequest(c, err.Error())
	}
}

// GetMatch returns the current state and scorecard.
func (mc *MatchController) GetMatch(c *gin.Context) {
	session, ok := mc.session(c)
	if !ok {
		return
	}
	var card Scorecard
	var phase Phase
	var result string
	session.Do(func(state *MatchState) error {
		card = state.BuildScorecard()
		phase = state.Phase
		result = state.ResultSummary
		return nil
	})
	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"phase":          phase,
		"score":          scoreLine(session),
		"scorecard":      card,
		"result_summary": result,
	})
}

// GetHistory returns the append-only ball history, paginated.
func (mc *MatchController) GetHistory(c *gin.Context) {
	session, ok := mc.session(c)
	if !ok {
		return
	}
	page, pageSize := responses.PageParams(c)
	var events []BallEvent
	var total int
	session.Do(func(state *MatchState) error {
		total = len(state.History)
		start := (page - 1) * pageSize
		if start > total {
			start = total
		}
		end := start + pageSize
		if end > total {
			end = total
		}
		events = append(events, state.History[start:end]...)
		return nil
	})
	responses.SendPaginated(c, http.StatusOK, "", events, int64(total), page, pageSize)
}

// ImpactSwap applies the one-time substitution during the innings break.
func (mc *MatchController) ImpactSwap(c *gin.Context) {
	var req ImpactSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	session, ok := mc.session(c)
	if !ok {
		return
	}
	err := session.Do(func(state *MatchState) error {
		return state.ApplyImpactSwap(teamIndex(req.Team), *req.OutIndex, *req.InIndex)
	})
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Impact player swapped", gin.H{
		"team": req.Team,
	})
}

// BattingOrder locks a team's second-innings batting order.
func (mc *MatchController) BattingOrder(c *gin.Context) {
	var req BattingOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	session, ok := mc.session(c)
	if !ok {
		return
	}
	err := session.Do(func(state *MatchState) error {
		return state.FinalizeBattingOrder(teamIndex(req.Team), req.Order)
	})
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Batting order locked", gin.H{
		"team":  req.Team,
		"order": req.Order,
	})
}

// Rain declares an interruption and revises the chase through the resource
// table.
func (mc *MatchController) Rain(c *gin.Context) {
	var req RainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	session, ok := mc.session(c)
	if !ok {
		return
	}
	var oversLimit, target int
	err := session.Do(func(state *MatchState) error {
		if err := state.ApplyRainInterruption(req.OversLost, mc.manager.Tables()); err != nil {
			return err
		}
		inn := state.Innings[1]
		oversLimit = inn.OversLimit
		target = inn.Target
		return nil
	})
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Target revised for rain", gin.H{
		"overs_limit":    oversLimit,
		"revised_target": target,
	})
}

// StartSuperOver arms the tie-break.
func (mc *MatchController) StartSuperOver(c *gin.Context) {
	var req SuperOverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}
	session, ok := mc.session(c)
	if !ok {
		return
	}
	err := session.Do(func(state *MatchState) error {
		return state.StartSuperOver(teamIndex(req.FirstBattingTeam))
	})
	if err != nil {
		if errors.Is(err, ErrNotTied) {
			responses.SendError(c, http.StatusConflict, err.Error())
			return
		}
		responses.BadRequest(c, err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Super over started", gin.H{
		"first_batting_team": req.FirstBattingTeam,
	})
}

// Stream upgrades to a websocket feed of this match's ball events.
func (mc *MatchController) Stream(c *gin.Context) {
	session, ok := mc.session(c)
	if !ok {
		return
	}
	_ = session
	mc.hub.Serve(c.Writer, c.Request, c.Param("id"))
}

func (mc *MatchController) session(c *gin.Context) (*Session, bool) {
	session, err := mc.manager.Get(c.Param("id"))
	if err != nil {
		responses.NotFound(c, "Match")
		return nil, false
	}
	return session, true
}

func sessionPhase(s *Session) Phase {
	var phase Phase
	s.Do(func(state *MatchState) error {
		phase = state.Phase
		return nil
	})
	return phase
}

func scoreLine(s *Session) string {
	var line string
	s.Do(func(state *MatchState) error {
		line = state.ScoreSummary()
		return nil
	})
	return line
}
