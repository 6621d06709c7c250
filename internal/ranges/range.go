package ranges

import (
	"sort"

	"github.com/holdemtools/preflop-advisor/internal/card"
)

// Range is a de-duplicated set of concrete opponent hands, kept in a
// deterministic order so seeded sampling is reproducible.
type Range struct {
	hands []card.Hand
}

// NewRange builds a range from concrete hands, de-duplicating unordered pairs.
func NewRange(hands []card.Hand) Range {
	seen := make(map[[2]card.Card]bool, len(hands))
	out := make([]card.Hand, 0, len(hands))
	for _, h := range hands {
		key := canonicalKey(h)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h)
	}
	sortHands(out)
	return Range{hands: out}
}

// FromClasses expands and unions the given classes.
func FromClasses(classes []HandClass) Range {
	var hands []card.Hand
	for _, hc := range classes {
		hands = append(hands, ExpandClass(hc)...)
	}
	return NewRange(hands)
}

// Size returns the number of combinations in the range.
func (r Range) Size() int {
	return len(r.hands)
}

// Empty reports whether the range holds no combinations.
func (r Range) Empty() bool {
	return len(r.hands) == 0
}

// Hands returns the combinations in deterministic order. Callers must not
// mutate the returned slice.
func (r Range) Hands() []card.Hand {
	return r.hands
}

// Hand returns the i-th combination.
func (r Range) Hand(i int) card.Hand {
	return r.hands[i]
}

// FilterDeadCards removes every hand containing any of the dead cards
// (hero's hole cards, known board). The result may be empty; equity
// estimation treats that as a neutral 50% spot rather than an error.
func FilterDeadCards(r Range, dead []card.Card) Range {
	out := make([]card.Hand, 0, len(r.hands))
	for _, h := range r.hands {
		if !h.Overlaps(dead) {
			out = append(out, h)
		}
	}
	return Range{hands: out}
}

// canonicalKey orders the two cards so AsKd and KdAs collapse to one entry.
func canonicalKey(h card.Hand) [2]card.Card {
	a, b := h.First, h.Second
	if less(b, a) {
		a, b = b, a
	}
	return [2]card.Card{a, b}
}

func less(a, b card.Card) bool {
	if a.Rank != b.Rank {
		return a.Rank > b.Rank
	}
	return a.Suit < b.Suit
}

func sortHands(hands []card.Hand) {
	sort.Slice(hands, func(i, j int) bool {
		ki, kj := canonicalKey(hands[i]), canonicalKey(hands[j])
		if ki[0] != kj[0] {
			return less(ki[0], kj[0])
		}
		return less(ki[1], kj[1])
	})
}
