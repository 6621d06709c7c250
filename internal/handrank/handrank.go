// Package handrank ranks hold'em hands into a 1-10 class taxonomy with a
// comparable score, lower score = stronger hand. Preflop strength comes from
// a closed-form heuristic over starting-hand categories; once three or more
// board cards are known, ranking is delegated to an external 5-7 card
// evaluator through the ExternalRanker interface and translated back into the
// same taxonomy.
package handrank

import (
	"errors"
	"fmt"

	"github.com/holdemtools/preflop-advisor/internal/card"
)

// ErrInvalidHand is returned for malformed hole cards or hole/board overlap.
var ErrInvalidHand = errors.New("invalid hand")

// Result is a ranked hand. Class runs 1 (best) to 10; Score orders hands
// strictly, lower is better, across both the preflop heuristic and the
// board-present external scale.
type Result struct {
	Class int
	Score int
	Label string
}

// Outcome is the result of comparing two hands on the same board.
type Outcome int

const (
	AWins Outcome = iota
	BWins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case AWins:
		return "A wins"
	case BWins:
		return "B wins"
	default:
		return "tie"
	}
}

// Ranker ranks hands either preflop (heuristic) or on a board (external).
type Ranker struct {
	external ExternalRanker
}

// New returns a Ranker delegating board-present evaluation to ext. A nil ext
// is allowed as long as only preflop hands are ranked.
func New(ext ExternalRanker) *Ranker {
	return &Ranker{external: ext}
}

// Rank ranks hole cards, optionally with a board. With fewer than three board
// cards the preflop heuristic applies; otherwise the external evaluator's raw
// score is translated into the shared 1-10 taxonomy.
func (r *Ranker) Rank(hole card.Hand, board []card.Card) (Result, error) {
	if !hole.First.Valid() || !hole.Second.Valid() || hole.First == hole.Second {
		return Result{}, fmt.Errorf("%w: hole cards %s %s", ErrInvalidHand, hole.First, hole.Second)
	}
	seen := map[card.Card]bool{hole.First: true, hole.Second: true}
	for _, c := range board {
		if !c.Valid() {
			return Result{}, fmt.Errorf("%w: board card %s", ErrInvalidHand, c)
		}
		if seen[c] {
			return Result{}, fmt.Errorf("%w: card %s appears in both hole and board", ErrInvalidHand, c)
		}
		seen[c] = true
	}
	if len(board) > 5 {
		return Result{}, fmt.Errorf("%w: board has %d cards", ErrInvalidHand, len(board))
	}

	if len(board) < 3 {
		return rankPreflop(hole), nil
	}

	if r.external == nil {
		return Result{}, fmt.Errorf("%w: no external ranker configured for board evaluation", ErrInvalidHand)
	}
	score, err := r.external.Rank(hole.Cards(), board)
	if err != nil {
		return Result{}, fmt.Errorf("external rank: %w", err)
	}
	return translateExternal(score), nil
}

// Compare evaluates both hands against the same board and reports the winner.
func (r *Ranker) Compare(a, b card.Hand, board []card.Card) (Outcome, error) {
	ra, err := r.Rank(a, board)
	if err != nil {
		return Tie, err
	}
	rb, err := r.Rank(b, board)
	if err != nil {
		return Tie, err
	}
	switch {
	case ra.Score < rb.Score:
		return AWins, nil
	case ra.Score > rb.Score:
		return BWins, nil
	default:
		return Tie, nil
	}
}

// Preflop category score bases. Within a category the score is offset by the
// hole-card ranks, so the ordering is strict: AA beats KK beats AKs beats AKo.
const (
	baseMonsterPair     = 100  // AA, KK
	basePremiumPair     = 300  // QQ, JJ
	basePremiumSuited   = 400  // suited broadways
	baseStrongPair      = 600  // TT, 99
	baseBroadwayOffsuit = 700  // offsuit broadways
	baseMidPair         = 1000 // 88-22
	baseSuitedConnector = 1200 // suited, gap <= 2
	baseSuitedAce       = 1500
	baseOffsuitAce      = 2000
	baseSuitedOther     = 3000
	baseTrash           = 5000
)

// rankOffset breaks ties inside a category. High rank dominates, so for a
// fixed category a bigger high card always means a strictly lower score.
func rankOffset(hi, lo card.Rank) int {
	return int(card.Ace-hi)*13 + int(card.Ace-lo)
}

func rankPreflop(hole card.Hand) Result {
	hi, lo := hole.High().Rank, hole.Low().Rank
	suited := hole.Suited()
	notation := hole.Notation()

	if hole.Paired() {
		switch {
		case hi >= card.King:
			return Result{Class: 1, Score: baseMonsterPair + rankOffset(hi, lo), Label: fmt.Sprintf("pocket pair %s (monster)", notation)}
		case hi >= card.Jack:
			return Result{Class: 2, Score: basePremiumPair + rankOffset(hi, lo), Label: fmt.Sprintf("pocket pair %s (premium)", notation)}
		case hi >= card.Nine:
			return Result{Class: 3, Score: baseStrongPair + rankOffset(hi, lo), Label: fmt.Sprintf("pocket pair %s (strong)", notation)}
		default:
			return Result{Class: 4, Score: baseMidPair + rankOffset(hi, lo), Label: fmt.Sprintf("pocket pair %s", notation)}
		}
	}

	// Broadways: both cards T+ with the high card J+.
	if hi >= card.Jack && lo >= card.Ten {
		if suited {
			return Result{Class: 2, Score: basePremiumSuited + rankOffset(hi, lo), Label: fmt.Sprintf("%s (premium suited)", notation)}
		}
		return Result{Class: 3, Score: baseBroadwayOffsuit + rankOffset(hi, lo), Label: fmt.Sprintf("%s (broadway)", notation)}
	}

	if suited && int(hi-lo) <= 2 {
		return Result{Class: 4, Score: baseSuitedConnector + rankOffset(hi, lo), Label: fmt.Sprintf("%s (suited connector)", notation)}
	}

	if hi == card.Ace {
		if suited {
			return Result{Class: 5, Score: baseSuitedAce + rankOffset(hi, lo), Label: fmt.Sprintf("%s (suited ace)", notation)}
		}
		return Result{Class: 6, Score: baseOffsuitAce + rankOffset(hi, lo), Label: fmt.Sprintf("%s (offsuit ace)", notation)}
	}

	if suited {
		return Result{Class: 7, Score: baseSuitedOther + rankOffset(hi, lo), Label: fmt.Sprintf("%s (suited)", notation)}
	}

	return Result{Class: 8, Score: baseTrash + rankOffset(hi, lo), Label: fmt.Sprintf("%s (weak)", notation)}
}

// translateExternal maps a lower-is-better external score in 1..7462 onto the
// 1-10 class taxonomy. Boundaries follow the standard 5-card equivalence-class
// counts: 1 royal flush, 10 straight flushes, 166 quads, and so on up to 7462.
func translateExternal(score int) Result {
	if score < 1 {
		score = 1
	}
	if score > externalWorstScore {
		score = externalWorstScore
	}
	for _, b := range externalClassBounds {
		if score <= b.maxScore {
			return Result{Class: b.class, Score: score, Label: b.label}
		}
	}
	// Unreachable: the last bound covers externalWorstScore.
	return Result{Class: 10, Score: score, Label: "High Card"}
}

// externalWorstScore is the weakest of the 7,462 distinct 5-card hand classes.
const externalWorstScore = 7462

var externalClassBounds = []struct {
	maxScore int
	class    int
	label    string
}{
	{1, 1, "Royal Flush"},
	{10, 2, "Straight Flush"},
	{166, 3, "Four of a Kind"},
	{322, 4, "Full House"},
	{1599, 5, "Flush"},
	{1609, 6, "Straight"},
	{2467, 7, "Three of a Kind"},
	{3325, 8, "Two Pair"},
	{6185, 9, "Pair"},
	{externalWorstScore, 10, "High Card"},
}
