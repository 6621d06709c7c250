// Package blockers measures how hero's hole cards cut down the premium
// holdings an opponent can still have. A held ace halves the weight of
// pocket aces in their range; holding ace-king removes their ace-king
// combos almost entirely. The weights here are heuristic, tuned for
// preflop decision nudges rather than exact combinatorics.
package blockers

import (
	"github.com/holdemtools/preflop-advisor/internal/card"
)

// Effect categorizes the overall blocking strength of a hand.
type Effect string

const (
	EffectNone     Effect = "none"
	EffectWeak     Effect = "weak"
	EffectModerate Effect = "moderate"
	EffectStrong   Effect = "strong"
)

// ActionKind selects which adjustment table applies.
type ActionKind string

const (
	ActionRaise ActionKind = "raise"
	ActionBluff ActionKind = "bluff"
	ActionCall  ActionKind = "call"
)

// Target is one watched premium class and how much of it survives hero's
// hole cards. Remaining is in [0,1]; each matching card hero holds removes
// half the class weight.
type Target struct {
	Class     string
	High      card.Rank
	Low       card.Rank
	Remaining float64
}

// Report is the outcome of blocker analysis for a single hand.
type Report struct {
	Effect  Effect
	Score   int
	Targets []Target
}

// watched lists the premium classes worth blocking, with the score weight
// per matching held card. Ace-king gets a flat bonus when hero holds both
// ranks; a single ace or king only chips in a little.
var watched = []struct {
	class string
	high  card.Rank
	low   card.Rank
}{
	{class: "AA", high: card.Ace, low: card.Ace},
	{class: "KK", high: card.King, low: card.King},
	{class: "QQ", high: card.Queen, low: card.Queen},
	{class: "AK", high: card.Ace, low: card.King},
	{class: "AQ", high: card.Ace, low: card.Queen},
}

// Analyze reports which premium classes hero's hole cards block and how
// strongly. The effect score accumulates per class: 15 per held ace against
// AA, 12 per king against KK, 10 per queen against QQ, 20 for holding both
// ranks of AK (5 for one of them), and 15 for both ranks of AQ.
func Analyze(hole card.Hand) Report {
	r1, r2 := hole.First.Rank, hole.Second.Rank

	count := func(r card.Rank) int {
		n := 0
		if r1 == r {
			n++
		}
		if r2 == r {
			n++
		}
		return n
	}

	var (
		targets []Target
		score   int
	)
	for _, w := range watched {
		var held int
		if w.high == w.low {
			held = count(w.high)
		} else {
			held = min(count(w.high), 1) + min(count(w.low), 1)
		}
		if held == 0 {
			continue
		}

		remaining := 1 - float64(held)/2
		if remaining < 0 {
			remaining = 0
		}
		targets = append(targets, Target{
			Class:     w.class,
			High:      w.high,
			Low:       w.low,
			Remaining: remaining,
		})

		switch w.class {
		case "AA":
			score += held * 15
		case "KK":
			score += held * 12
		case "QQ":
			score += held * 10
		case "AK":
			if held == 2 {
				score += 20
			} else {
				score += 5
			}
		case "AQ":
			if held == 2 {
				score += 15
			}
		}
	}

	return Report{
		Effect:  effectFor(score),
		Score:   score,
		Targets: targets,
	}
}

func effectFor(score int) Effect {
	switch {
	case score >= 30:
		return EffectStrong
	case score >= 15:
		return EffectModerate
	case score > 0:
		return EffectWeak
	default:
		return EffectNone
	}
}

// adjustments maps (action, score band) to a percentage nudge applied to
// hero's effective hand strength. Blockers matter most when bluffing,
// less when raising for value, and barely at all when calling.
var adjustments = map[ActionKind][]struct {
	minScore int
	nudge    float64
}{
	ActionRaise: {
		{minScore: 30, nudge: 10},
		{minScore: 15, nudge: 5},
	},
	ActionBluff: {
		{minScore: 30, nudge: 15},
		{minScore: 15, nudge: 8},
		{minScore: 1, nudge: 0},
		{minScore: 0, nudge: -10},
	},
	ActionCall: {
		{minScore: 30, nudge: 5},
	},
}

// AdjustmentFor converts a hand's blocker score into a bounded percentage
// nudge for the given action kind. Unlisted bands nudge by zero.
func AdjustmentFor(hole card.Hand, action ActionKind) float64 {
	score := Analyze(hole).Score
	for _, band := range adjustments[action] {
		if score >= band.minScore {
			return band.nudge
		}
	}
	return 0
}

// FoldEquityAdjustment estimates how many extra percentage points of fold
// equity hero's blockers buy, scaled by an opponent-dependent multiplier
// (thinking opponents respect blocker-heavy lines more than oblivious ones).
func FoldEquityAdjustment(hole card.Hand, multiplier float64) float64 {
	return float64(Analyze(hole).Score) / 5 * multiplier
}
