package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holdemtools/preflop-advisor/internal/card"
	"github.com/holdemtools/preflop-advisor/internal/equity"
	"github.com/holdemtools/preflop-advisor/internal/handrank"
	"github.com/holdemtools/preflop-advisor/internal/ranges"
)

func newEngine() *Engine {
	return New(handrank.New(handrank.PaulHankinRanker{}))
}

func mustHand(t *testing.T, s string) card.Hand {
	t.Helper()
	h, err := card.ParseHand(s)
	require.NoError(t, err)
	return h
}

func TestDecideOpenPocketAcesButton(t *testing.T) {
	rec, err := newEngine().Decide(Input{
		Hole:     mustHand(t, "AsAh"),
		Position: ranges.BTN,
		StackBB:  100,
		Line:     LineOpen,
	})
	require.NoError(t, err)

	assert.Equal(t, ActionRaise, rec.Primary)
	assert.Equal(t, Frequencies{Raise: 100, Call: 0, Fold: 0}, rec.Frequencies)
	assert.GreaterOrEqual(t, rec.Confidence, 0.85)
	assert.Equal(t, 100.0, rec.Equity, "open-line equity is the raw percentile")
	assert.Equal(t, "AA", rec.Notation)
}

func TestDecideOpenTrashUnderTheGun(t *testing.T) {
	rec, err := newEngine().Decide(Input{
		Hole:     mustHand(t, "7d2c"),
		Position: ranges.UTG,
		StackBB:  100,
		Line:     LineOpen,
	})
	require.NoError(t, err)

	assert.Equal(t, ActionFold, rec.Primary)
	assert.Equal(t, Frequencies{Raise: 0, Call: 0, Fold: 100}, rec.Frequencies)
}

func TestDecideFacingOpenSimulatesEquity(t *testing.T) {
	e := newEngine()
	in := Input{
		Hole:      mustHand(t, "AsKs"),
		Position:  ranges.BTN,
		StackBB:   100,
		Line:      LineFacingOpen,
		Opponent:  "nit",
		FacingBet: 3,
		Aggressor: ranges.UTG,
		Equity:    equity.Options{Trials: 500, Seed: 11},
	}

	rec, err := e.Decide(in)
	require.NoError(t, err)

	assert.NotEqual(t, rec.Percentile, rec.Equity, "facing a raise runs the simulator, not the chart")
	assert.Greater(t, rec.Equity, 30.0)
	assert.Less(t, rec.Equity, 90.0)

	// More trials must stay within Monte-Carlo noise of the small run.
	in.Equity = equity.Options{Trials: 5000, Seed: 11}
	big, err := e.Decide(in)
	require.NoError(t, err)
	assert.LessOrEqual(t, math.Abs(big.Equity-rec.Equity), 8.0)
}

func TestDecideFacingBetDerivedNumbers(t *testing.T) {
	rec, err := newEngine().Decide(Input{
		Hole:     mustHand(t, "QsQh"),
		Position: ranges.CO,
		StackBB:  100,
		Line:     LineFacingOpen,
		Opponent: "reg",
		Equity:   equity.Options{Trials: 500, Seed: 5},
	})
	require.NoError(t, err)

	// Default open size is 2.5bb on a 1.5bb pot.
	assert.InDelta(t, 25.0, rec.SPR, 0.001)
	assert.InDelta(t, 2.5/6.5*100, rec.PotOdds, 0.001)
}

func TestDecideDefaultsStack(t *testing.T) {
	rec, err := newEngine().Decide(Input{
		Hole:     mustHand(t, "AsAh"),
		Position: ranges.BTN,
		Line:     LineOpen,
	})
	require.NoError(t, err)
	assert.InDelta(t, 100.0/1.5, rec.SPR, 0.001)
	assert.Zero(t, rec.PotOdds, "nothing to call when opening")
}

func TestDecideUnknownFallbacks(t *testing.T) {
	rec, err := newEngine().Decide(Input{
		Hole:     mustHand(t, "KsQs"),
		Position: ranges.Position("HJ"),
		StackBB:  60,
		Line:     LineFacingOpen,
		Opponent: "wizard",
		Equity:   equity.Options{Trials: 500, Seed: 9},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, rec.Frequencies.Raise+rec.Frequencies.Call+rec.Frequencies.Fold)
}

func TestDecideRejectsBadInput(t *testing.T) {
	e := newEngine()

	_, err := e.Decide(Input{Line: LineOpen})
	require.Error(t, err)
	assert.ErrorIs(t, err, card.ErrInvalidCard)

	_, err = e.Decide(Input{Hole: mustHand(t, "AsAh"), Line: Line("limp")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLine)
}

func TestConfidenceUnknownOpponentPenalty(t *testing.T) {
	known := confidence(LineFacing3Bet, 96, ProfileFor("reg"))
	unknown := confidence(LineFacing3Bet, 96, ProfileFor("unknown"))
	assert.InDelta(t, 0.1, known-unknown, 0.001)

	// The open line never charges the penalty.
	assert.Equal(t,
		confidence(LineOpen, 100, ProfileFor("reg")),
		confidence(LineOpen, 100, ProfileFor("unknown")))
}

func TestConfidenceClamped(t *testing.T) {
	for _, line := range Lines() {
		for _, name := range Profiles() {
			for _, pct := range []float64{0, 40, 65, 80, 95, 100} {
				c := confidence(line, pct, ProfileFor(name))
				assert.GreaterOrEqual(t, c, 0.3)
				assert.LessOrEqual(t, c, 0.95)
			}
		}
	}
}

func TestPrimaryActionTieBreak(t *testing.T) {
	assert.Equal(t, ActionRaise, primaryAction(Frequencies{Raise: 50, Call: 50, Fold: 0}))
	assert.Equal(t, ActionCall, primaryAction(Frequencies{Raise: 0, Call: 50, Fold: 50}))
	assert.Equal(t, ActionFold, primaryAction(Frequencies{Raise: 10, Call: 20, Fold: 70}))
}

func TestAllTableRowsSumToOneHundred(t *testing.T) {
	for _, row := range openRows {
		assert.Equal(t, 100, row.freq.sum())
	}
	assert.Equal(t, 100, openFoldRow.sum())
	for line, rows := range facingRows {
		for _, row := range rows {
			assert.Equal(t, 100, row.freq.sum(), "%s row at %.0f", line, row.minPercentile)
		}
	}
}

func TestProfileForFallsBack(t *testing.T) {
	assert.Equal(t, "unknown", ProfileFor("no-such-player").Name)
	assert.Equal(t, "nit", ProfileFor("nit").Name)
}

func TestExpectedValueRespondsToFoldEquity(t *testing.T) {
	in := Input{Hole: mustHand(t, "AsKs"), Line: LineFacingOpen}

	vsNit := expectedValue(in, ProfileFor("nit"), 4, 2.5, 50)
	vsStation := expectedValue(in, ProfileFor("station"), 4, 2.5, 50)
	assert.Greater(t, vsNit, vsStation, "folding opponents hand over the pot more often")
}
