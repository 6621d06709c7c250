// Package card defines the playing-card and hole-card value types shared by
// every analysis package. Cards are immutable values; a Hand is an unordered
// pair of distinct cards.
package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is the sentinel wrapped by every parse/validation failure.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the single-letter suit code used in text notation ("s", "h", ...)
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Rank represents a card rank, ace high
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the text notation of a card (e.g. "As", "Td")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Letter()
}

// Pretty returns the card with a suit symbol (e.g. "A♠")
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.String()
}

// Valid reports whether rank and suit are both in range.
func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit >= Spades && c.Suit <= Clubs
}

// Parse parses a two-character card token such as "As", "kh" or "Td".
func Parse(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank Rank
	switch strings.ToUpper(s[:1]) {
	case "2":
		rank = Two
	case "3":
		rank = Three
	case "4":
		rank = Four
	case "5":
		rank = Five
	case "6":
		rank = Six
	case "7":
		rank = Seven
	case "8":
		rank = Eight
	case "9":
		rank = Nine
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return Card{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidCard, s)
	}

	var suit Suit
	switch strings.ToLower(s[1:]) {
	case "s":
		suit = Spades
	case "h":
		suit = Hearts
	case "d":
		suit = Diamonds
	case "c":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: bad suit in %q", ErrInvalidCard, s)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a run of card tokens, either space separated ("As Kd")
// or packed ("AsKd"). Duplicate cards are rejected.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd-length card string %q", ErrInvalidCard, s)
	}

	cards := make([]Card, 0, len(s)/2)
	seen := make(map[Card]bool, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := Parse(s[i : i+2])
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrInvalidCard, c)
		}
		seen[c] = true
		cards = append(cards, c)
	}
	return cards, nil
}

// Hand is hero's two hole cards. The cards are always distinct.
type Hand struct {
	First  Card
	Second Card
}

// NewHand builds a Hand from two distinct cards.
func NewHand(a, b Card) (Hand, error) {
	if !a.Valid() || !b.Valid() {
		return Hand{}, fmt.Errorf("%w: %s %s", ErrInvalidCard, a, b)
	}
	if a == b {
		return Hand{}, fmt.Errorf("%w: duplicate card %s in hand", ErrInvalidCard, a)
	}
	return Hand{First: a, Second: b}, nil
}

// ParseHand parses exactly two cards ("AsKd" or "As Kd") into a Hand.
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	if len(cards) != 2 {
		return Hand{}, fmt.Errorf("%w: hand needs exactly 2 cards, got %d", ErrInvalidCard, len(cards))
	}
	return NewHand(cards[0], cards[1])
}

// Cards returns the hole cards as a slice.
func (h Hand) Cards() []Card {
	return []Card{h.First, h.Second}
}

// Contains reports whether the hand holds the given card.
func (h Hand) Contains(c Card) bool {
	return h.First == c || h.Second == c
}

// High returns the higher-ranked hole card, Low the other one. Rank ties keep
// the stored order.
func (h Hand) High() Card {
	if h.Second.Rank > h.First.Rank {
		return h.Second
	}
	return h.First
}

// Low returns the lower-ranked hole card.
func (h Hand) Low() Card {
	if h.Second.Rank > h.First.Rank {
		return h.First
	}
	return h.Second
}

// Suited reports whether both hole cards share a suit.
func (h Hand) Suited() bool {
	return h.First.Suit == h.Second.Suit
}

// Paired reports whether both hole cards share a rank.
func (h Hand) Paired() bool {
	return h.First.Rank == h.Second.Rank
}

// String returns the text notation, high card first (e.g. "AsKd").
func (h Hand) String() string {
	return h.High().String() + h.Low().String()
}

// Notation returns the starting-hand shorthand for the hole cards:
// "AA" for pairs, "AKs" suited, "AKo" offsuit.
func (h Hand) Notation() string {
	hi, lo := h.High().Rank, h.Low().Rank
	switch {
	case hi == lo:
		return hi.String() + lo.String()
	case h.Suited():
		return hi.String() + lo.String() + "s"
	default:
		return hi.String() + lo.String() + "o"
	}
}

// Overlaps reports whether the hand shares a card with any of the given cards.
func (h Hand) Overlaps(cards []Card) bool {
	for _, c := range cards {
		if h.Contains(c) {
			return true
		}
	}
	return false
}
