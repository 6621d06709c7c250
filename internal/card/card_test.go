package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Card
		wantErr bool
	}{
		{in: "As", want: Card{Rank: Ace, Suit: Spades}},
		{in: "kh", want: Card{Rank: King, Suit: Hearts}},
		{in: "Td", want: Card{Rank: Ten, Suit: Diamonds}},
		{in: "2c", want: Card{Rank: Two, Suit: Clubs}},
		{in: "1s", wantErr: true},
		{in: "Ax", wantErr: true},
		{in: "A", wantErr: true},
		{in: "", wantErr: true},
		{in: "AsK", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("As Kd 7h")
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "As", cards[0].String())
	assert.Equal(t, "7h", cards[2].String())

	packed, err := ParseCards("AsKd7h")
	require.NoError(t, err)
	assert.Equal(t, cards, packed)

	_, err = ParseCards("AsAs")
	require.Error(t, err, "duplicates must be rejected")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestNewHandRejectsDuplicates(t *testing.T) {
	as := Card{Rank: Ace, Suit: Spades}
	_, err := NewHand(as, as)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestHandNotation(t *testing.T) {
	tests := []struct {
		hand string
		want string
	}{
		{hand: "AsAh", want: "AA"},
		{hand: "AsKs", want: "AKs"},
		{hand: "KdAh", want: "AKo"},
		{hand: "2c7d", want: "72o"},
		{hand: "Th9h", want: "T9s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			h, err := ParseHand(tt.hand)
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.Notation())
		})
	}
}

func TestHandOverlaps(t *testing.T) {
	h, err := ParseHand("AsKd")
	require.NoError(t, err)

	board, err := ParseCards("Kd7h2c")
	require.NoError(t, err)
	assert.True(t, h.Overlaps(board))

	clean, err := ParseCards("Qh7h2c")
	require.NoError(t, err)
	assert.False(t, h.Overlaps(clean))
}

func TestHandHighLow(t *testing.T) {
	h, err := ParseHand("7dAc")
	require.NoError(t, err)
	assert.Equal(t, Ace, h.High().Rank)
	assert.Equal(t, Seven, h.Low().Rank)
	assert.Equal(t, "Ac7d", h.String())
}
