package handrank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holdemtools/preflop-advisor/internal/card"
)

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

func TestPreflopRankMonotonic(t *testing.T) {
	r := New(nil)

	// Strongest to weakest; every score must strictly increase.
	ladder := []string{
		"AsAh", // AA
		"KsKh", // KK
		"QsQh", // QQ
		"JsJh", // JJ
		"AsKs", // AKs
		"TsTh", // TT
		"9s9h", // 99
		"AsKh", // AKo
		"8s8h", // 88
		"9s8s", // suited connector
		"As5s", // suited ace
		"As5h", // offsuit ace
		"Ks5s", // other suited
		"7d2c", // trash
	}

	prev := -1
	for _, s := range ladder {
		res, err := r.Rank(mustHand(t, s), nil)
		require.NoError(t, err)
		assert.Greater(t, res.Score, prev, "%s must rank strictly below its predecessor", s)
		prev = res.Score
	}
}

func TestPreflopRankClasses(t *testing.T) {
	r := New(nil)

	tests := []struct {
		hand      string
		wantClass int
	}{
		{hand: "AsAh", wantClass: 1},
		{hand: "KsKh", wantClass: 1},
		{hand: "QsQh", wantClass: 2},
		{hand: "AsKs", wantClass: 2},
		{hand: "AsKh", wantClass: 3},
		{hand: "TsTh", wantClass: 3},
		{hand: "5s5h", wantClass: 4},
		{hand: "8s7s", wantClass: 4},
		{hand: "As4s", wantClass: 5},
		{hand: "As4h", wantClass: 6},
		{hand: "Ks4s", wantClass: 7},
		{hand: "7d2c", wantClass: 8},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			res, err := r.Rank(mustHand(t, tt.hand), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantClass, res.Class)
			assert.NotEmpty(t, res.Label)
		})
	}
}

func TestRankRejectsOverlap(t *testing.T) {
	r := New(PaulHankinRanker{})

	_, err := r.Rank(mustHand(t, "AsKd"), mustCards(t, "As7h2c"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHand)
}

func TestRankRejectsOversizedBoard(t *testing.T) {
	r := New(nil)

	_, err := r.Rank(mustHand(t, "AsKd"), mustCards(t, "2c3c4c5c6c7h"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHand)
}

func TestExternalRankTranslation(t *testing.T) {
	r := New(PaulHankinRanker{})

	tests := []struct {
		name      string
		hole      string
		board     string
		wantClass int
		wantLabel string
	}{
		{
			name:      "royal flush",
			hole:      "AsKs",
			board:     "QsJsTs",
			wantClass: 1,
			wantLabel: "Royal Flush",
		},
		{
			name:      "quads",
			hole:      "7s7h",
			board:     "7d7c2s",
			wantClass: 3,
			wantLabel: "Four of a Kind",
		},
		{
			name:      "top pair",
			hole:      "AsKd",
			board:     "Ah7s2c",
			wantClass: 9,
			wantLabel: "Pair",
		},
		{
			name:      "high card",
			hole:      "AsKd",
			board:     "9h7s2c",
			wantClass: 10,
			wantLabel: "High Card",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Rank(mustHand(t, tt.hole), mustCards(t, tt.board))
			require.NoError(t, err)
			assert.Equal(t, tt.wantClass, res.Class)
			assert.Equal(t, tt.wantLabel, res.Label)
			assert.GreaterOrEqual(t, res.Score, 1)
			assert.LessOrEqual(t, res.Score, externalWorstScore)
		})
	}
}

func TestCompareOnBoard(t *testing.T) {
	r := New(PaulHankinRanker{})
	board := mustCards(t, "Ah7s2c9d3h")

	out, err := r.Compare(mustHand(t, "AsKd"), mustHand(t, "QsQh"), board)
	require.NoError(t, err)
	assert.Equal(t, AWins, out, "top pair aces beats queens on this board")

	out, err = r.Compare(mustHand(t, "KsQd"), mustHand(t, "KdQs"), board)
	require.NoError(t, err)
	assert.Equal(t, Tie, out, "identical ranks play the board equally")
}

func TestComparePreflop(t *testing.T) {
	r := New(nil)

	out, err := r.Compare(mustHand(t, "AsAh"), mustHand(t, "KsKh"), nil)
	require.NoError(t, err)
	assert.Equal(t, AWins, out)
}

func TestPercentile(t *testing.T) {
	assert.InDelta(t, 100, Percentile(mustHand(t, "AsAh")), 0.001)
	assert.InDelta(t, 97, Percentile(mustHand(t, "AsKs")), 0.001)
	assert.InDelta(t, float64(defaultPercentile), Percentile(mustHand(t, "7d2c")), 0.001)
}
