// Package ranges models symbolic starting-hand classes and the fixed
// position/action range tables used to approximate an opponent's holdings
// preflop.
package ranges

import (
	"fmt"

	"github.com/holdemtools/preflop-advisor/internal/card"
)

// Shape is the suitedness of a starting-hand class.
type Shape int

const (
	Paired Shape = iota
	Suited
	Offsuit
)

func (s Shape) String() string {
	switch s {
	case Paired:
		return "paired"
	case Suited:
		return "suited"
	default:
		return "offsuit"
	}
}

// HandClass is a starting-hand class in standard notation: a pair ("QQ"),
// suited ("AKs") or offsuit ("AKo") combination of two ranks. High >= Low,
// and Paired implies High == Low. 169 distinct classes exist.
type HandClass struct {
	High  card.Rank
	Low   card.Rank
	Shape Shape
}

// String returns the class notation ("AA", "AKs", "T9o").
func (hc HandClass) String() string {
	switch hc.Shape {
	case Paired:
		return hc.High.String() + hc.Low.String()
	case Suited:
		return hc.High.String() + hc.Low.String() + "s"
	default:
		return hc.High.String() + hc.Low.String() + "o"
	}
}

// ParseClass parses starting-hand notation such as "AA", "AKs" or "T9o".
func ParseClass(notation string) (HandClass, error) {
	if len(notation) < 2 || len(notation) > 3 {
		return HandClass{}, fmt.Errorf("invalid hand class %q", notation)
	}

	hi, err := parseRank(notation[0])
	if err != nil {
		return HandClass{}, fmt.Errorf("invalid hand class %q: %w", notation, err)
	}
	lo, err := parseRank(notation[1])
	if err != nil {
		return HandClass{}, fmt.Errorf("invalid hand class %q: %w", notation, err)
	}
	if lo > hi {
		hi, lo = lo, hi
	}

	if hi == lo {
		if len(notation) == 3 {
			return HandClass{}, fmt.Errorf("invalid hand class %q: pairs take no suited modifier", notation)
		}
		return HandClass{High: hi, Low: lo, Shape: Paired}, nil
	}

	if len(notation) != 3 {
		return HandClass{}, fmt.Errorf("invalid hand class %q: unpaired classes need a suited modifier", notation)
	}
	switch notation[2] {
	case 's':
		return HandClass{High: hi, Low: lo, Shape: Suited}, nil
	case 'o':
		return HandClass{High: hi, Low: lo, Shape: Offsuit}, nil
	default:
		return HandClass{}, fmt.Errorf("invalid hand class %q: modifier must be 's' or 'o'", notation)
	}
}

// ClassOf returns the class a concrete hand belongs to.
func ClassOf(h card.Hand) HandClass {
	hi, lo := h.High().Rank, h.Low().Rank
	switch {
	case hi == lo:
		return HandClass{High: hi, Low: lo, Shape: Paired}
	case h.Suited():
		return HandClass{High: hi, Low: lo, Shape: Suited}
	default:
		return HandClass{High: hi, Low: lo, Shape: Offsuit}
	}
}

var suits = []card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs}

// ExpandClass expands a class into its concrete two-card combinations:
// exactly 6 for a pair, 4 suited, 12 offsuit.
func ExpandClass(hc HandClass) []card.Hand {
	var hands []card.Hand
	switch hc.Shape {
	case Paired:
		for i := 0; i < len(suits); i++ {
			for j := i + 1; j < len(suits); j++ {
				hands = append(hands, card.Hand{
					First:  card.Card{Rank: hc.High, Suit: suits[i]},
					Second: card.Card{Rank: hc.High, Suit: suits[j]},
				})
			}
		}
	case Suited:
		for _, s := range suits {
			hands = append(hands, card.Hand{
				First:  card.Card{Rank: hc.High, Suit: s},
				Second: card.Card{Rank: hc.Low, Suit: s},
			})
		}
	case Offsuit:
		for _, s1 := range suits {
			for _, s2 := range suits {
				if s1 == s2 {
					continue
				}
				hands = append(hands, card.Hand{
					First:  card.Card{Rank: hc.High, Suit: s1},
					Second: card.Card{Rank: hc.Low, Suit: s2},
				})
			}
		}
	}
	return hands
}

func parseRank(b byte) (card.Rank, error) {
	switch b {
	case '2':
		return card.Two, nil
	case '3':
		return card.Three, nil
	case '4':
		return card.Four, nil
	case '5':
		return card.Five, nil
	case '6':
		return card.Six, nil
	case '7':
		return card.Seven, nil
	case '8':
		return card.Eight, nil
	case '9':
		return card.Nine, nil
	case 'T':
		return card.Ten, nil
	case 'J':
		return card.Jack, nil
	case 'Q':
		return card.Queen, nil
	case 'K':
		return card.King, nil
	case 'A':
		return card.Ace, nil
	default:
		return 0, fmt.Errorf("bad rank %q", string(b))
	}
}
