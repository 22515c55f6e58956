package engine

import "fmt"

// ExtraType labels runs not scored off the bat.
type ExtraType string

const (
	ExtraNone   ExtraType = ""
	ExtraWide   ExtraType = "wide"
	ExtraNoBall ExtraType = "no_ball"
	ExtraBye    ExtraType = "bye"
	ExtraLegBye ExtraType = "leg_bye"
)

// WicketType labels how a batter was dismissed.
type WicketType string

const (
	WicketBowled  WicketType = "bowled"
	WicketCaught  WicketType = "caught"
	WicketLBW     WicketType = "lbw"
	WicketStumped WicketType = "stumped"
	WicketRunOut  WicketType = "run_out"
)

// BallContext carries the situational inputs one delivery needs beyond the
// adjusted distribution.
type BallContext struct {
	FreeHit        bool // dismissal suppressed except run-out
	BatterRating   int  // striker's batting rating, biases stumping odds
	BowlerIsSpin   bool // stumpings only happen against spin
	FieldingRating int  // fielding side's relevant rating, biases run-out/caught
}

// BallResult is one sampled delivery. A delivery is either a scoring outcome or
// a wicket outcome, never both; the run-out is the single exception and carries
// the runs completed before the dismissal.
type BallResult struct {
	RunsOffBat  int
	Extra       ExtraType
	ExtraRuns   int
	LegalBall   bool // wides and no-balls do not consume one of the over's six
	Wicket      bool
	WicketType  WicketType
	FreeHitNext bool // set by a no-ball
	Commentary  string
}

// TotalRuns is the score increment this delivery produces.
func (r BallResult) TotalRuns() int {
	return r.RunsOffBat + r.ExtraRuns
}

// OutcomeGenerator samples deliveries from adjusted distributions. It is
// stateless apart from its random source.
type OutcomeGenerator struct {
	rng RandomSource
}

// NewOutcomeGenerator builds a generator around the given source. A nil source
// falls back to the default crypto-backed one.
func NewOutcomeGenerator(rng RandomSource) *OutcomeGenerator {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &OutcomeGenerator{rng: rng}
}

// Extra sub-type split, percent of the extras share. Configuration constants of
// the model, pitch-independent.
const (
	wideShare   = 45
	noBallShare = 25
	byeShare    = 15 // leg bye takes the remainder
)

// Run-out pressure on an attempted run. The base chance is small and scales
// with the fielding side's rating.
const (
	runOutBase         = 0.014
	runOutFieldingStep = 0.00025 // per rating point away from 50
)

// NextBall samples one delivery. dist must already be skill-adjusted and
// normalized; extrasPct is the pitch's extras share.
func (g *OutcomeGenerator) NextBall(dist Distribution, extrasPct float64, ctx BallContext) (BallResult, error) {
	if err := dist.Validate(); err != nil {
		return BallResult{}, fmt.Errorf("outcome generator: %w", err)
	}

	// Extras are resolved first, in place of a legal ball.
	if g.rng.Float64()*100 < extrasPct {
		return g.resolveExtra(ctx), nil
	}

	class := g.sampleClass(dist)
	if class == 6 { // wicket class
		if ctx.FreeHit {
			// Dismissal suppressed: re-resolve within the scoring classes.
			class = g.sampleScoringClass(dist)
		} else {
			wt := g.resolveWicketType(ctx)
			return BallResult{
				LegalBall:  true,
				Wicket:     true,
				WicketType: wt,
				Commentary: wicketCommentary(g.rng, wt),
			}, nil
		}
	}

	runs := runsForClass[class]
	res := BallResult{RunsOffBat: runs, LegalBall: true}

	// A run actually attempted (not a boundary) can end in a run-out. The
	// dismissed batter keeps the runs completed before the attempt failed.
	if runs >= 1 && runs <= 3 {
		p := runOutBase + float64(ctx.FieldingRating-50)*runOutFieldingStep
		if p > 0 && g.rng.Float64() < p {
			res.RunsOffBat = runs - 1
			res.Wicket = true
			res.WicketType = WicketRunOut
			res.Commentary = wicketCommentary(g.rng, WicketRunOut)
			return res, nil
		}
	}

	res.Commentary = runsCommentary(g.rng, runs)
	return res, nil
}

// sampleClass maps a uniform draw into the cumulative distribution and returns
// the sampling-order index of the selected class.
func (g *OutcomeGenerator) sampleClass(dist Distribution) int {
	u := g.rng.Float64() * dist.Total()
	acc := 0.0
	entries := dist.entries()
	for i, v := range entries {
		acc += v
		if u < acc {
			return i
		}
	}
	return len(entries) - 1
}

// sampleScoringClass draws from the non-wicket portion of the distribution.
func (g *OutcomeGenerator) sampleScoringClass(dist Distribution) int {
	scoring := dist
	scoring.Wicket = 0
	if scoring.Total() <= 0 {
		return 0
	}
	return g.sampleClass(scoring)
}

func (g *OutcomeGenerator) resolveExtra(ctx BallContext) BallResult {
	u := g.rng.Float64() * 100
	switch {
	case u < wideShare:
		return BallResult{
			Extra:      ExtraWide,
			ExtraRuns:  1,
			Commentary: extraCommentary(g.rng, ExtraWide),
		}
	case u < wideShare+noBallShare:
		return BallResult{
			Extra:       ExtraNoBall,
			ExtraRuns:   1,
			FreeHitNext: true,
			Commentary:  extraCommentary(g.rng, ExtraNoBall),
		}
	case u < wideShare+noBallShare+byeShare:
		return BallResult{
			Extra:      ExtraBye,
			ExtraRuns:  g.byeRuns(),
			LegalBall:  true,
			Commentary: extraCommentary(g.rng, ExtraBye),
		}
	default:
		return BallResult{
			Extra:      ExtraLegBye,
			ExtraRuns:  g.byeRuns(),
			LegalBall:  true,
			Commentary: extraCommentary(g.rng, ExtraLegBye),
		}
	}
}

func (g *OutcomeGenerator) byeRuns() int {
	if g.rng.Float64() < 0.8 {
		return 1
	}
	return 2
}

// resolveWicketType picks the dismissal mode for a wicket-class outcome.
// Stumpings only occur against spin and are biased toward weaker batting
// technique; the caught weight leans slightly on the fielding rating.
func (g *OutcomeGenerator) resolveWicketType(ctx BallContext) WicketType {
	wBowled := 28.0
	wLBW := 20.0
	wCaught := 36.0 + float64(ctx.FieldingRating)/10
	wStumped := 0.0
	if ctx.BowlerIsSpin {
		wStumped = 8 + float64(60-ctx.BatterRating)/6
		if wStumped < 4 {
			wStumped = 4
		}
	}
	total := wBowled + wLBW + wCaught + wStumped
	u := g.rng.Float64() * total
	switch {
	case u < wBowled:
		return WicketBowled
	case u < wBowled+wLBW:
		return WicketLBW
	case u < wBowled+wLBW+wCaught:
		return WicketCaught
	default:
		return WicketStumped
	}
}
