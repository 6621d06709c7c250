// Package engine turns hole cards plus table context into a structured
// preflop recommendation: a raise/call/fold frequency split, a confidence
// score, and the equity, pot-odds and EV numbers behind it.
package engine

import (
	"errors"
	"fmt"

	"github.com/holdemtools/preflop-advisor/internal/blockers"
	"github.com/holdemtools/preflop-advisor/internal/card"
	"github.com/holdemtools/preflop-advisor/internal/equity"
	"github.com/holdemtools/preflop-advisor/internal/handrank"
	"github.com/holdemtools/preflop-advisor/internal/ranges"
)

// ErrInvalidLine reports a line outside the four supported spots.
var ErrInvalidLine = errors.New("unknown line")

// Action is hero's primary move.
type Action string

const (
	ActionRaise Action = "raise"
	ActionCall  Action = "call"
	ActionFold  Action = "fold"
)

// defaultStackBB is assumed when the caller gives no stack size.
const defaultStackBB = 100

// Input is one recommendation request. Position and Opponent fall back to
// documented defaults when unknown; Line must be one of the four spots.
type Input struct {
	Hole      card.Hand
	Position  ranges.Position
	StackBB   float64
	Line      Line
	Opponent  string
	FacingBet float64
	// Aggressor is the seat of the opener/re-raiser on facing lines.
	// Empty means the default seat.
	Aggressor ranges.Position

	// Equity controls the simulator on facing lines. The zero value uses
	// production defaults with seed 0; tests pass explicit seeds.
	Equity equity.Options
}

// Recommendation is the engine's full answer for one spot.
type Recommendation struct {
	Notation    string
	HandLabel   string
	Percentile  float64
	Primary     Action
	Frequencies Frequencies
	Confidence  float64
	Equity      float64
	PotOdds     float64
	SPR         float64
	EV          float64
	Blockers    blockers.Report
}

// Engine computes recommendations. It holds no mutable state; every Decide
// call is a pure function of its input plus the equity seed.
type Engine struct {
	ranker *handrank.Ranker
	sim    *equity.Simulator
}

// New builds an engine around a hand ranker. The ranker's external evaluator
// is exercised whenever a facing line runs the simulator.
func New(r *handrank.Ranker) *Engine {
	return &Engine{ranker: r, sim: equity.NewSimulator(r)}
}

// Decide produces a recommendation for the given spot.
func (e *Engine) Decide(in Input) (Recommendation, error) {
	if in.Hole.First == in.Hole.Second {
		return Recommendation{}, fmt.Errorf("%w: hole cards missing", card.ErrInvalidCard)
	}
	if !ValidLine(in.Line) {
		return Recommendation{}, fmt.Errorf("%w: %q", ErrInvalidLine, in.Line)
	}
	if in.StackBB <= 0 {
		in.StackBB = defaultStackBB
	}

	percentile := handrank.Percentile(in.Hole)
	rank, err := e.ranker.Rank(in.Hole, nil)
	if err != nil {
		return Recommendation{}, err
	}

	report := blockers.Analyze(in.Hole)
	profile := ProfileFor(in.Opponent)

	bet := in.FacingBet
	if bet <= 0 {
		bet = defaultBets[in.Line]
	}
	pot := blindsPot + bet
	spr := in.StackBB / pot

	potOdds := 0.0
	if bet > 0 {
		potOdds = bet / (pot + bet) * 100
	}

	eq, err := e.equityFor(in, percentile)
	if err != nil {
		return Recommendation{}, err
	}

	freq := e.frequenciesFor(in, percentile, profile)
	primary := primaryAction(freq)
	conf := confidence(in.Line, percentile, profile)
	ev := expectedValue(in, profile, pot, bet, eq)

	return Recommendation{
		Notation:    in.Hole.Notation(),
		HandLabel:   rank.Label,
		Percentile:  percentile,
		Primary:     primary,
		Frequencies: freq,
		Confidence:  conf,
		Equity:      eq,
		PotOdds:     potOdds,
		SPR:         spr,
		EV:          ev,
		Blockers:    report,
	}, nil
}

// equityFor follows the line: opening hero has no concrete range to beat
// yet, so the starting-hand percentile stands in for equity; on facing
// lines hero simulates against the aggressor's modeled range.
func (e *Engine) equityFor(in Input, percentile float64) (float64, error) {
	if in.Line == LineOpen {
		return percentile, nil
	}

	aggressor := in.Aggressor
	if !ranges.ValidPosition(aggressor) {
		aggressor = ranges.DefaultPosition
	}
	opp := ranges.RangeFor(aggressor, aggressorAction[in.Line])
	return e.sim.Estimate(in.Hole, nil, opp, in.Equity)
}

// frequenciesFor resolves the line table row for hero's effective
// percentile: the raw chart value shifted by position, the opponent's fold
// tendency, and hero's blockers.
func (e *Engine) frequenciesFor(in Input, percentile float64, profile OpponentProfile) Frequencies {
	kind := blockers.ActionRaise
	if percentile < 40 {
		kind = blockers.ActionBluff
	}
	adj := blockers.AdjustmentFor(in.Hole, kind)

	effective := percentile + foldTendencyOffset(profile) + adj
	if in.Line == LineOpen {
		return openFrequencies(in.Position, effective)
	}

	pos := in.Position
	if !ranges.ValidPosition(pos) {
		pos = ranges.DefaultPosition
	}
	effective += facingPositionOffsets[pos]
	return facingFrequencies(in.Line, effective)
}

// primaryAction picks the highest frequency, raise beating call beating
// fold on ties.
func primaryAction(f Frequencies) Action {
	switch {
	case f.Raise >= f.Call && f.Raise >= f.Fold:
		return ActionRaise
	case f.Call >= f.Fold:
		return ActionCall
	default:
		return ActionFold
	}
}

// confidence scores how much to trust the recommendation: stronger hands
// and simpler lines read cleaner, an unidentified opponent on a facing
// line muddies it.
func confidence(line Line, percentile float64, profile OpponentProfile) float64 {
	conf := 0.5
	switch {
	case percentile >= 90:
		conf += 0.25
	case percentile >= 75:
		conf += 0.15
	case percentile >= 60:
		conf += 0.05
	}
	switch line {
	case LineOpen:
		conf += 0.15
	case LineFacingOpen:
		conf += 0.05
	}
	if line != LineOpen && profile.Name == DefaultProfile {
		conf -= 0.1
	}
	return clamp(conf, 0.3, 0.95)
}

// expectedValue is the simplified two-term estimate: the pot hero takes
// down when the opponent folds, plus the showdown term when they don't.
func expectedValue(in Input, profile OpponentProfile, pot, bet, eqPercent float64) float64 {
	risk := bet
	if in.Line == LineOpen {
		risk = defaultBets[LineFacingOpen]
	}

	fe := (profile.FoldTo3Bet + blockers.FoldEquityAdjustment(in.Hole, profile.BlockerFoldMult)) / 100
	fe = clamp(fe, 0, 0.95)

	eq := eqPercent / 100
	return fe*pot + (1-fe)*(eq*(pot+risk)-(1-eq)*risk)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
