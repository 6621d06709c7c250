// Package equity estimates hero's showdown win probability against an
// opponent range, by exact enumeration when the spot is small enough and
// by seeded Monte-Carlo sampling otherwise.
package equity

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/holdemtools/preflop-advisor/internal/card"
	"github.com/holdemtools/preflop-advisor/internal/handrank"
	"github.com/holdemtools/preflop-advisor/internal/randutil"
	"github.com/holdemtools/preflop-advisor/internal/ranges"
)

const (
	defaultTrials       = 10000
	defaultExactCeiling = 50000
	maxWorkers          = 8

	// blockTrials is the unit of work handed to a worker. Each block owns
	// an RNG substream derived from (seed, block index), so the tally is
	// bit-identical no matter how blocks land on workers.
	blockTrials = 1024
)

// neutralEquity is returned when no trial can complete, typically because
// dead-card filtering emptied the range.
const neutralEquity = 50.0

// Options controls an equity estimate. Zero values pick sensible defaults;
// Seed is used as given, so two calls with the same inputs and seed always
// agree exactly.
type Options struct {
	Trials       int
	Seed         int64
	Workers      int
	ExactCeiling int
}

func (o Options) withDefaults() Options {
	if o.Trials <= 0 {
		o.Trials = defaultTrials
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Workers > maxWorkers {
		o.Workers = maxWorkers
	}
	if o.ExactCeiling <= 0 {
		o.ExactCeiling = defaultExactCeiling
	}
	return o
}

// tally accumulates outcomes; merging tallies is a plain sum, so the
// reduction over workers is order-independent.
type tally struct {
	wins      int
	ties      int
	completed int
}

func (t *tally) add(o tally) {
	t.wins += o.wins
	t.ties += o.ties
	t.completed += o.completed
}

func (t tally) equity() float64 {
	if t.completed == 0 {
		return neutralEquity
	}
	return (float64(t.wins) + float64(t.ties)/2) / float64(t.completed) * 100
}

// Simulator runs equity estimates through a hand ranker.
type Simulator struct {
	ranker *handrank.Ranker
}

// NewSimulator returns a simulator backed by the given ranker. The ranker
// needs an external evaluator since completed boards always hold five cards.
func NewSimulator(r *handrank.Ranker) *Simulator {
	return &Simulator{ranker: r}
}

// Estimate returns hero's equity in [0,100] against the opponent range on
// the (possibly partial) board. Hands overlapping hero's cards or the board
// are filtered out first; an empty surviving range yields the neutral 50%.
func (s *Simulator) Estimate(hole card.Hand, board []card.Card, opp ranges.Range, opts Options) (float64, error) {
	if len(board) > 5 {
		return 0, fmt.Errorf("%w: board holds %d cards, at most 5 allowed", handrank.ErrInvalidHand, len(board))
	}
	if err := validateBoard(hole, board); err != nil {
		return 0, err
	}

	opts = opts.withDefaults()

	dead := append(hole.Cards(), board...)
	live := ranges.FilterDeadCards(opp, dead)
	if live.Empty() {
		return neutralEquity, nil
	}

	avail := availableCards(dead)
	need := 5 - len(board)

	if exactCost(live.Size(), len(avail)-2, need) <= int64(opts.ExactCeiling) {
		return s.enumerate(hole, board, live, need)
	}
	return s.simulate(hole, board, live, avail, need, opts)
}

// enumerate walks every (opponent hand, board completion) pair. Every hand
// sees the same number of completions, so no per-hand weighting is needed.
func (s *Simulator) enumerate(hole card.Hand, board []card.Card, live ranges.Range, need int) (float64, error) {
	var t tally
	full := make([]card.Card, 5)
	copy(full, board)

	for _, oppHand := range live.Hands() {
		dead := append(append(hole.Cards(), board...), oppHand.First, oppHand.Second)
		avail := availableCards(dead)

		err := forEachCombination(avail, need, func(combo []card.Card) error {
			copy(full[len(board):], combo)
			out, err := s.ranker.Compare(hole, oppHand, full)
			if err != nil {
				return err
			}
			t.completed++
			switch out {
			case handrank.AWins:
				t.wins++
			case handrank.Tie:
				t.ties++
			}
			return nil
		})
		if err != nil {
			return 0, err
		}
	}
	return t.equity(), nil
}

func (s *Simulator) simulate(hole card.Hand, board []card.Card, live ranges.Range, avail []card.Card, need int, opts Options) (float64, error) {
	blocks := (opts.Trials + blockTrials - 1) / blockTrials
	blockCh := make(chan int, blocks)
	for b := 0; b < blocks; b++ {
		blockCh <- b
	}
	close(blockCh)

	tallies := make([]tally, opts.Workers)
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < opts.Workers; w++ {
		w := w
		g.Go(func() error {
			scratch := make([]card.Card, len(avail))
			full := make([]card.Card, 5)
			copy(full, board)

			for b := range blockCh {
				trials := blockTrials
				if b == blocks-1 {
					if rem := opts.Trials - b*blockTrials; rem < trials {
						trials = rem
					}
				}
				rng := randutil.Substream(opts.Seed, b)
				t, err := s.runBlock(hole, board, live, avail, scratch, full, need, trials, rng)
				if err != nil {
					return err
				}
				tallies[w].add(t)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total tally
	for _, t := range tallies {
		total.add(t)
	}
	return total.equity(), nil
}

func (s *Simulator) runBlock(hole card.Hand, board []card.Card, live ranges.Range, avail, scratch, full []card.Card, need, trials int, rng *rand.Rand) (tally, error) {
	var t tally
	for i := 0; i < trials; i++ {
		oppHand := live.Hand(rng.IntN(live.Size()))
		if oppHand.Overlaps(hole.Cards()) || oppHand.Overlaps(board) {
			// Filtering makes this unreachable; skip rather than poison
			// the tally if a caller hands in a stale range.
			continue
		}

		// Partial Fisher-Yates over the cards still unseen, skipping the
		// opponent's two.
		n := 0
		for _, c := range avail {
			if c != oppHand.First && c != oppHand.Second {
				scratch[n] = c
				n++
			}
		}
		for j := 0; j < need; j++ {
			k := j + rng.IntN(n-j)
			scratch[j], scratch[k] = scratch[k], scratch[j]
			full[len(board)+j] = scratch[j]
		}

		out, err := s.ranker.Compare(hole, oppHand, full)
		if err != nil {
			return tally{}, err
		}
		t.completed++
		switch out {
		case handrank.AWins:
			t.wins++
		case handrank.Tie:
			t.ties++
		}
	}
	return t, nil
}

// exactCost is the number of comparisons exhaustive enumeration would take.
func exactCost(hands, avail, need int) int64 {
	combos := int64(1)
	for i := 0; i < need; i++ {
		combos = combos * int64(avail-i) / int64(i+1)
		if combos > 1<<40 {
			return 1 << 40
		}
	}
	return int64(hands) * combos
}

// forEachCombination visits every need-sized combination of cards in order.
func forEachCombination(cards []card.Card, need int, fn func([]card.Card) error) error {
	combo := make([]card.Card, need)
	var walk func(start, depth int) error
	walk = func(start, depth int) error {
		if depth == need {
			return fn(combo)
		}
		for i := start; i <= len(cards)-(need-depth); i++ {
			combo[depth] = cards[i]
			if err := walk(i+1, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(0, 0)
}

func availableCards(dead []card.Card) []card.Card {
	isDead := func(c card.Card) bool {
		for _, d := range dead {
			if c == d {
				return true
			}
		}
		return false
	}

	out := make([]card.Card, 0, 52-len(dead))
	for s := card.Spades; s <= card.Clubs; s++ {
		for r := card.Two; r <= card.Ace; r++ {
			c := card.Card{Rank: r, Suit: s}
			if !isDead(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

func validateBoard(hole card.Hand, board []card.Card) error {
	seen := map[card.Card]bool{hole.First: true, hole.Second: true}
	for _, c := range board {
		if seen[c] {
			return fmt.Errorf("%w: card %s appears twice", handrank.ErrInvalidHand, c)
		}
		seen[c] = true
	}
	return nil
}
