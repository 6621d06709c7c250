package handrank

import (
	"fmt"

	ph "github.com/paulhankin/poker"

	"github.com/holdemtools/preflop-advisor/internal/card"
)

// ExternalRanker scores two hole cards plus a 3-5 card board. Scores are
// lower-is-better over the 7,462 distinct 5-card hand classes.
type ExternalRanker interface {
	Rank(hole []card.Card, board []card.Card) (int, error)
}

// PaulHankinRanker adapts github.com/paulhankin/poker. That library scores
// hands higher-is-better on a dense 0..7461 scale, so the adapter inverts the
// value into the 1..7462 lower-is-better scale the taxonomy translation
// expects.
type PaulHankinRanker struct{}

// Rank evaluates the best 5-card hand from the hole cards and board.
func (PaulHankinRanker) Rank(hole []card.Card, board []card.Card) (int, error) {
	if len(hole) != 2 {
		return 0, fmt.Errorf("%w: need exactly 2 hole cards, got %d", ErrInvalidHand, len(hole))
	}
	if len(board) < 3 || len(board) > 5 {
		return 0, fmt.Errorf("%w: board needs 3-5 cards, got %d", ErrInvalidHand, len(board))
	}

	cards := make([]ph.Card, 0, 7)
	for _, c := range hole {
		pc, err := toLibrary(c)
		if err != nil {
			return 0, err
		}
		cards = append(cards, pc)
	}
	for _, c := range board {
		pc, err := toLibrary(c)
		if err != nil {
			return 0, err
		}
		cards = append(cards, pc)
	}

	var score int16
	switch len(cards) {
	case 7:
		var a7 [7]ph.Card
		copy(a7[:], cards)
		score = ph.Eval7(&a7)
	case 5:
		var a5 [5]ph.Card
		copy(a5[:], cards)
		score = ph.Eval5(&a5)
	default:
		score = bestFiveOfSix(cards)
	}

	// Dense 0..7461, bigger is better -> 1..7462, smaller is better.
	return externalWorstScore - int(score), nil
}

// bestFiveOfSix evaluates all C(6,5) subsets and keeps the strongest.
func bestFiveOfSix(cards []ph.Card) int16 {
	best := int16(-1)
	var five [5]ph.Card
	for skip := 0; skip < len(cards); skip++ {
		n := 0
		for i, c := range cards {
			if i == skip {
				continue
			}
			five[n] = c
			n++
		}
		if s := ph.Eval5(&five); s > best {
			best = s
		}
	}
	return best
}

// toLibrary converts a card to the library representation. The library counts
// aces low (Ace = 1).
func toLibrary(c card.Card) (ph.Card, error) {
	var zero ph.Card

	var s ph.Suit
	switch c.Suit {
	case card.Clubs:
		s = ph.Club
	case card.Diamonds:
		s = ph.Diamond
	case card.Hearts:
		s = ph.Heart
	case card.Spades:
		s = ph.Spade
	default:
		return zero, fmt.Errorf("%w: suit of %s", ErrInvalidHand, c)
	}

	var r ph.Rank
	if c.Rank == card.Ace {
		r = ph.Rank(1)
	} else {
		r = ph.Rank(c.Rank)
	}

	pc, err := ph.MakeCard(s, r)
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %v", ErrInvalidHand, c, err)
	}
	return pc, nil
}
