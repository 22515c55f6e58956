package engine

import (
	"errors"
	"fmt"
	"math"
)

// ResourceTable is a coarse approximation of the standard rain-rule resource
// percentages for a 20-over innings, indexed by overs remaining and wickets
// lost. Rows are anchored at fixed overs-remaining marks and linearly
// interpolated between them. The numbers are configuration data; the production
// method's full two-dimensional table is deliberately not reproduced here.
type ResourceTable struct {
	// OverMarks are the overs-remaining anchors, ascending.
	OverMarks []float64 `yaml:"over_marks" json:"over_marks"`
	// Rows[i][w] is the resource percentage with OverMarks[i] overs remaining
	// and w wickets lost (w in 0..9).
	Rows [][]float64 `yaml:"rows" json:"rows"`
}

const maxWicketIndex = 9

var ErrInvalidResourceTable = errors.New("invalid resource table")

// DefaultResourceTable returns the compiled-in coarse table.
func DefaultResourceTable() ResourceTable {
	return ResourceTable{
		OverMarks: []float64{0, 5, 10, 15, 20},
		Rows: [][]float64{
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{34.0, 33.5, 32.5, 31.0, 29.0, 26.5, 23.0, 19.0, 14.0, 6.0},
			{61.5, 59.5, 57.5, 54.5, 50.0, 44.5, 37.5, 28.0, 17.5, 7.0},
			{83.5, 80.5, 77.0, 72.0, 65.0, 56.0, 45.0, 32.0, 19.0, 7.5},
			{100.0, 96.5, 92.0, 85.0, 76.0, 64.0, 50.0, 34.5, 20.0, 8.0},
		},
	}
}

// Validate checks shape and monotonicity: resources shrink as overs run out and
// as wickets fall.
func (t ResourceTable) Validate() error {
	if len(t.OverMarks) < 2 || len(t.Rows) != len(t.OverMarks) {
		return fmt.Errorf("%w: need matching over marks and rows", ErrInvalidResourceTable)
	}
	for i, row := range t.Rows {
		if len(row) != maxWicketIndex+1 {
			return fmt.Errorf("%w: row %d must have %d wicket columns", ErrInvalidResourceTable, i, maxWicketIndex+1)
		}
		if i > 0 && t.OverMarks[i] <= t.OverMarks[i-1] {
			return fmt.Errorf("%w: over marks must be strictly ascending", ErrInvalidResourceTable)
		}
		for w := 0; w <= maxWicketIndex; w++ {
			if row[w] < 0 || row[w] > 100 {
				return fmt.Errorf("%w: resource out of [0,100] at row %d wickets %d", ErrInvalidResourceTable, i, w)
			}
			if w > 0 && row[w] > row[w-1] {
				return fmt.Errorf("%w: resources must not grow with wickets lost (row %d)", ErrInvalidResourceTable, i)
			}
			if i > 0 && row[w] < t.Rows[i-1][w] {
				return fmt.Errorf("%w: resources must not shrink with more overs remaining (row %d wickets %d)", ErrInvalidResourceTable, i, w)
			}
		}
	}
	return nil
}

// Resource returns the percentage of a full innings' scoring resources left
// with the given overs remaining and wickets lost.
func (t ResourceTable) Resource(oversRemaining float64, wicketsLost int) float64 {
	if wicketsLost < 0 {
		wicketsLost = 0
	}
	if wicketsLost > maxWicketIndex {
		return 0
	}
	marks := t.OverMarks
	if oversRemaining <= marks[0] {
		return t.Rows[0][wicketsLost]
	}
	last := len(marks) - 1
	if oversRemaining >= marks[last] {
		return t.Rows[last][wicketsLost]
	}
	for i := 1; i <= last; i++ {
		if oversRemaining <= marks[i] {
			span := marks[i] - marks[i-1]
			frac := (oversRemaining - marks[i-1]) / span
			lo := t.Rows[i-1][wicketsLost]
			hi := t.Rows[i][wicketsLost]
			return lo + (hi-lo)*frac
		}
	}
	return t.Rows[last][wicketsLost]
}

// RevisedTarget scales the chasing side's target to the resources it still has
// after an interruption removes overs. oversRemainingBefore/After bracket the
// interruption at the point wicketsLost wickets were down; oversAvailable is
// the chase's original allocation. The revised target is strictly below the
// original whenever overs are actually lost, and never below 1.
func (t ResourceTable) RevisedTarget(originalTarget int, oversAvailable, oversRemainingBefore, oversRemainingAfter float64, wicketsLost int) (int, error) {
	if originalTarget < 1 {
		return 0, fmt.Errorf("%w: original target %d", ErrInvalidResourceTable, originalTarget)
	}
	if oversRemainingAfter > oversRemainingBefore {
		return 0, fmt.Errorf("%w: overs remaining cannot grow across an interruption", ErrInvalidResourceTable)
	}
	startResources := t.Resource(oversAvailable, 0)
	if startResources <= 0 {
		return 0, fmt.Errorf("%w: zero resources for %f overs", ErrInvalidResourceTable, oversAvailable)
	}
	lost := t.Resource(oversRemainingBefore, wicketsLost) - t.Resource(oversRemainingAfter, wicketsLost)
	if lost < 0 {
		lost = 0
	}
	ratio := (startResources - lost) / startResources
	revised := int(math.Floor(float64(originalTarget) * ratio))
	if lost > 0 && revised >= originalTarget {
		revised = originalTarget - 1
	}
	if revised < 1 {
		revised = 1
	}
	return revised, nil
}
