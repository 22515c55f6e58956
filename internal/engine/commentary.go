package engine

import "fmt"

// Commentary lines are flavor text only; nothing downstream parses them.

var dotLines = []string{
	"Tight line, defended back to the bowler. No run.",
	"Beaten outside off! A loud sigh from the striker.",
	"Pushed to cover, no run there.",
	"Dot ball, the pressure keeps building.",
}

var singleLines = []string{
	"Worked off the pads into the leg side for a single.",
	"Soft hands, quick single to mid-on.",
	"Nudged behind square, they cross for one.",
}

var twoLines = []string{
	"Driven into the gap at extra cover, they come back for two.",
	"Good running! Two more added to the total.",
}

var threeLines = []string{
	"Threaded wide of deep cover, three runs as the fielder chases.",
	"Excellent placement, they run three hard.",
}

var fourLines = []string{
	"Cracked through the covers, races away for FOUR!",
	"Short and punished! Pulled to the fence for four.",
	"Edged... and past the keeper for a streaky boundary.",
}

var sixLines = []string{
	"Launched over long-on, that is a huge SIX!",
	"Picked up off the hips and deposited over fine leg for six!",
	"Slog sweep connects, sails over the rope!",
}

var wicketLines = map[WicketType][]string{
	WicketBowled: {
		"Cleaned him up! The stumps are rearranged.",
		"Through the gate, timber! Bowled him.",
	},
	WicketCaught: {
		"Skied and taken! Simple catch in the deep.",
		"Edged and snapped up, the fielder makes no mistake.",
	},
	WicketLBW: {
		"Struck on the pad, huge appeal... given! LBW.",
		"Trapped in front, the finger goes up.",
	},
	WicketStumped: {
		"Dragged out of the crease and the bails are off in a flash. Stumped!",
		"Beaten in the flight, lightning work from the keeper. Stumped.",
	},
	WicketRunOut: {
		"Direct hit! They gambled on the run and lost. Run out!",
		"Terrible mix-up, both batters at the same end! Run out.",
		"Sent back too late, the throw beats the dive. Run out.",
	},
}

var extraLines = map[ExtraType][]string{
	ExtraWide:   {"Sprayed down the leg side, called wide.", "Too wide outside off, the umpire stretches his arms."},
	ExtraNoBall: {"Overstepped! No ball, and a free hit coming up.", "The front foot is over the line. No ball."},
	ExtraBye:    {"Beats everyone, they sneak a bye.", "Through to the keeper... fumbled, bye taken."},
	ExtraLegBye: {"Off the pad and into the gap, leg bye.", "Deflected off the thigh, they scamper a leg bye."},
}

func pick(rng RandomSource, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[rng.IntN(len(lines))]
}

func runsCommentary(rng RandomSource, runs int) string {
	switch runs {
	case 0:
		return pick(rng, dotLines)
	case 1:
		return pick(rng, singleLines)
	case 2:
		return pick(rng, twoLines)
	case 3:
		return pick(rng, threeLines)
	case 4:
		return pick(rng, fourLines)
	case 6:
		return pick(rng, sixLines)
	default:
		return fmt.Sprintf("%d runs added.", runs)
	}
}

func wicketCommentary(rng RandomSource, wt WicketType) string {
	return pick(rng, wicketLines[wt])
}

func extraCommentary(rng RandomSource, et ExtraType) string {
	return pick(rng, extraLines[et])
}
