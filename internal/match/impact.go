package match

import (
	"errors"
	"fmt"

	"github.com/Manishrdy/SimCricketX-sub000/internal/player"
)

// ImpactPhase is the per-team sub-machine gating the one-time substitution and
// the one-time batting-order rewrite between innings. The progression
// SwapPending → OrderPending → Locked makes illegal sequences (a second swap, a
// reorder after lock) unrepresentable.
type ImpactPhase string

const (
	ImpactSwapPending  ImpactPhase = "swap_pending"
	ImpactOrderPending ImpactPhase = "order_pending"
	ImpactLocked       ImpactPhase = "locked"
)

// ImpactSwap records a substitution: indices are always resolved against the
// original, pre-swap roster so a prior swap cannot shift their meaning.
type ImpactSwap struct {
	OutIndex int `json:"out_index"` // position in the original playing XI
	InIndex  int `json:"in_index"`  // position in the substitutes list
}

// ImpactState is one team's sub-machine.
type ImpactState struct {
	Phase ImpactPhase `json:"phase"`
	Swap  *ImpactSwap `json:"swap,omitempty"`
	Order []int       `json:"order,omitempty"` // finalized batting order over the effective XI
}

var (
	ErrSwapAlreadyUsed   = errors.New("impact swap already used")
	ErrSwapLocked        = errors.New("impact window is closed")
	ErrNoSwapAvailable   = errors.New("no substitutes available for an impact swap")
	ErrOrderLocked       = errors.New("batting order already locked")
	ErrSwapWindowClosed  = errors.New("impact swap only allowed during the innings break")
	ErrOrderWindowClosed = errors.New("batting order can only change during the innings break")
)

func newImpactState() *ImpactState {
	return &ImpactState{Phase: ImpactSwapPending}
}

// lock freezes the sub-machine when the second innings begins, whatever stage
// it reached.
func (s *ImpactState) lock() {
	s.Phase = ImpactLocked
}

// ApplyImpactSwap substitutes one bench player into a team's XI. Valid only
// during the innings break, at most once per team.
func (m *MatchState) ApplyImpactSwap(teamIdx, outIndex, inIndex int) error {
	if err := m.checkImpactWindow(teamIdx, ErrSwapWindowClosed); err != nil {
		return err
	}
	state := m.Impact[teamIdx]
	switch state.Phase {
	case ImpactLocked:
		return ErrSwapLocked
	case ImpactOrderPending:
		return ErrSwapAlreadyUsed
	}
	t := m.Teams[teamIdx]
	if len(t.Substitutes) == 0 {
		return ErrNoSwapAvailable
	}
	if outIndex < 0 || outIndex >= len(t.PlayingXI) {
		return fmt.Errorf("out index %d outside the original XI", outIndex)
	}
	if inIndex < 0 || inIndex >= len(t.Substitutes) {
		return fmt.Errorf("in index %d outside the substitutes list", inIndex)
	}
	state.Swap = &ImpactSwap{OutIndex: outIndex, InIndex: inIndex}
	state.Phase = ImpactOrderPending
	return nil
}

// FinalizeBattingOrder locks a team's batting sequence for the second innings.
// Calling it from SwapPending declines the swap; either way the sub-machine
// ends Locked and further changes are rejected.
func (m *MatchState) FinalizeBattingOrder(teamIdx int, order []int) error {
	if err := m.checkImpactWindow(teamIdx, ErrOrderWindowClosed); err != nil {
		return err
	}
	state := m.Impact[teamIdx]
	if state.Phase == ImpactLocked {
		return ErrOrderLocked
	}
	xi := m.effectiveXI(teamIdx)
	if len(order) != len(xi) {
		return fmt.Errorf("batting order must list all %d players, got %d", len(xi), len(order))
	}
	seen := make([]bool, len(xi))
	for _, idx := range order {
		if idx < 0 || idx >= len(xi) {
			return fmt.Errorf("batting order index %d outside the XI", idx)
		}
		if seen[idx] {
			return fmt.Errorf("batting order repeats index %d", idx)
		}
		seen[idx] = true
	}
	state.Order = append([]int(nil), order...)
	state.Phase = ImpactLocked
	return nil
}

func (m *MatchState) checkImpactWindow(teamIdx int, closedErr error) error {
	if teamIdx != 0 && teamIdx != 1 {
		return fmt.Errorf("team index must be 0 or 1, got %d", teamIdx)
	}
	switch m.Phase {
	case PhaseInningsBreak:
		return nil
	case PhaseCompleted:
		return ErrMatchComplete
	default:
		return closedErr
	}
}

// effectiveXI is the team's XI with any confirmed impact swap applied. Before
// the innings break this is always the original XI.
func (m *MatchState) effectiveXI(teamIdx int) []player.Player {
	t := m.Teams[teamIdx]
	xi := append([]player.Player(nil), t.PlayingXI...)
	state := m.Impact[teamIdx]
	if state != nil && state.Swap != nil {
		xi[state.Swap.OutIndex] = t.Substitutes[state.Swap.InIndex]
	}
	return xi
}

// battingOrder is the finalized order if a team locked one, else positional.
func (m *MatchState) battingOrder(teamIdx, size int) []int {
	state := m.Impact[teamIdx]
	if state != nil && len(state.Order) == size {
		return append([]int(nil), state.Order...)
	}
	order := make([]int, size)
	for i := range order {
		order[i] = i
	}
	return order
}
