package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holdemtools/preflop-advisor/internal/card"
	"github.com/holdemtools/preflop-advisor/internal/handrank"
	"github.com/holdemtools/preflop-advisor/internal/ranges"
)

func newSim() *Simulator {
	return NewSimulator(handrank.New(handrank.PaulHankinRanker{}))
}

func mustHand(t *testing.T, s string) card.Hand {
	t.Helper()
	h, err := card.ParseHand(s)
	require.NoError(t, err)
	return h
}

func mustCards(t *testing.T, s string) []card.Card {
	t.Helper()
	cs, err := card.ParseCards(s)
	require.NoError(t, err)
	return cs
}

func mustRange(t *testing.T, notations ...string) ranges.Range {
	t.Helper()
	classes := make([]ranges.HandClass, 0, len(notations))
	for _, n := range notations {
		hc, err := ranges.ParseClass(n)
		require.NoError(t, err)
		classes = append(classes, hc)
	}
	return ranges.FromClasses(classes)
}

func TestEstimateDeterministicWithSeed(t *testing.T) {
	sim := newSim()
	hole := mustHand(t, "AsKs")
	opp := mustRange(t, "QQ", "JJ", "AKo")

	opts := Options{Trials: 2000, Seed: 42, ExactCeiling: 1}

	a, err := sim.Estimate(hole, nil, opp, opts)
	require.NoError(t, err)
	b, err := sim.Estimate(hole, nil, opp, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce bit-identical equity")
}

func TestEstimateIndependentOfWorkerCount(t *testing.T) {
	sim := newSim()
	hole := mustHand(t, "AsKs")
	opp := mustRange(t, "QQ", "TT", "AQs")

	base := Options{Trials: 3000, Seed: 7, ExactCeiling: 1}

	one := base
	one.Workers = 1
	four := base
	four.Workers = 4

	a, err := sim.Estimate(hole, nil, opp, one)
	require.NoError(t, err)
	b, err := sim.Estimate(hole, nil, opp, four)
	require.NoError(t, err)
	assert.Equal(t, a, b, "worker count must not change a seeded result")
}

func TestEstimateEmptyRangeNeutral(t *testing.T) {
	sim := newSim()
	hole := mustHand(t, "AsAh")

	// Every AA combo shares a card with hero, so the filtered range is empty.
	eq, err := sim.Estimate(hole, nil, mustRange(t, "AA"), Options{Trials: 100, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, 50.0, eq)
}

func TestEstimateDominatedSpot(t *testing.T) {
	sim := newSim()
	hole := mustHand(t, "AsAh")

	eq, err := sim.Estimate(hole, nil, mustRange(t, "72o"), Options{Trials: 4000, Seed: 3, ExactCeiling: 1})
	require.NoError(t, err)
	assert.Greater(t, eq, 75.0, "aces crush seven-deuce")
	assert.LessOrEqual(t, eq, 100.0)
}

func TestEstimateExactOnFullBoard(t *testing.T) {
	sim := newSim()

	// Board is complete, so one comparison per opponent combo; the spot is
	// enumerated exactly and hero's set beats every surviving KK combo.
	hole := mustHand(t, "AsAh")
	board := mustCards(t, "Ad7s2c9h3d")

	eq, err := sim.Estimate(hole, board, mustRange(t, "KK"), Options{Trials: 10, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, 100.0, eq)
}

func TestEstimateExactLocked(t *testing.T) {
	sim := newSim()

	// Royal flush on board-complete spot never loses or ties vs QQ.
	hole := mustHand(t, "AsKs")
	board := mustCards(t, "QsJsTs2h3d")

	eq, err := sim.Estimate(hole, board, mustRange(t, "QQ"), Options{})
	require.NoError(t, err)
	assert.Equal(t, 100.0, eq)
}

func TestEstimateRejectsBoardOverlap(t *testing.T) {
	sim := newSim()
	hole := mustHand(t, "AsKs")

	_, err := sim.Estimate(hole, mustCards(t, "As7h2c"), mustRange(t, "QQ"), Options{Trials: 10, Seed: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, handrank.ErrInvalidHand)
}

func TestEstimateRejectsOversizedBoard(t *testing.T) {
	sim := newSim()
	hole := mustHand(t, "AsKs")

	_, err := sim.Estimate(hole, mustCards(t, "2c3c4c5c6c7h"), mustRange(t, "QQ"), Options{Trials: 10, Seed: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, handrank.ErrInvalidHand)
}

func TestTallyEquity(t *testing.T) {
	assert.Equal(t, 50.0, tally{}.equity())
	assert.InDelta(t, 62.5, tally{wins: 5, ties: 5, completed: 10}.equity(), 0.001)
	assert.InDelta(t, 0.0, tally{completed: 4}.equity(), 0.001)
}
