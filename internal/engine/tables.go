package engine

import (
	"fmt"

	"github.com/holdemtools/preflop-advisor/internal/ranges"
)

// Line is the preflop spot hero is deciding in.
type Line string

const (
	LineOpen       Line = "open"
	LineFacingOpen Line = "facing-open"
	LineFacing3Bet Line = "facing-3bet"
	LineFacing4Bet Line = "facing-4bet"
)

// Lines returns the four supported lines in escalation order.
func Lines() []Line {
	return []Line{LineOpen, LineFacingOpen, LineFacing3Bet, LineFacing4Bet}
}

// ValidLine reports whether l is one of the four supported lines.
func ValidLine(l Line) bool {
	switch l {
	case LineOpen, LineFacingOpen, LineFacing3Bet, LineFacing4Bet:
		return true
	}
	return false
}

// Frequencies is a raise/call/fold split in whole percent. Every table row
// sums to exactly 100; validateTables enforces that at startup.
type Frequencies struct {
	Raise int
	Call  int
	Fold  int
}

func (f Frequencies) sum() int {
	return f.Raise + f.Call + f.Fold
}

// freqRow maps an effective-percentile floor to a frequency split. Rows are
// ordered strongest first; lookup takes the first row whose floor the hand
// clears.
type freqRow struct {
	minPercentile float64
	freq          Frequencies
}

// openThresholds is the percentile a hand needs for a standard open from
// each seat. Early seats demand a far stronger hand than the button.
var openThresholds = map[ranges.Position]float64{
	ranges.UTG: 80,
	ranges.MP:  74,
	ranges.CO:  62,
	ranges.BTN: 50,
	ranges.SB:  55,
	ranges.BB:  60,
}

// openRows is keyed relative to the seat threshold: a hand well clear of it
// always opens, one just under it mixes in some opens, and the rest folds.
// There is no limping, so call frequency stays zero on the open line.
var openRows = []struct {
	offset float64
	freq   Frequencies
}{
	{offset: 15, freq: Frequencies{Raise: 100, Call: 0, Fold: 0}},
	{offset: 0, freq: Frequencies{Raise: 80, Call: 0, Fold: 20}},
	{offset: -8, freq: Frequencies{Raise: 35, Call: 0, Fold: 65}},
}

var openFoldRow = Frequencies{Raise: 0, Call: 0, Fold: 100}

// facingRows holds the frequency ladders for the three facing lines. The
// numeric values are hand-tuned chart constants; they are data, not derived.
var facingRows = map[Line][]freqRow{
	LineFacingOpen: {
		{minPercentile: 95, freq: Frequencies{Raise: 80, Call: 20, Fold: 0}},
		{minPercentile: 85, freq: Frequencies{Raise: 45, Call: 50, Fold: 5}},
		{minPercentile: 70, freq: Frequencies{Raise: 20, Call: 60, Fold: 20}},
		{minPercentile: 55, freq: Frequencies{Raise: 10, Call: 45, Fold: 45}},
		{minPercentile: 40, freq: Frequencies{Raise: 5, Call: 25, Fold: 70}},
		{minPercentile: 0, freq: Frequencies{Raise: 0, Call: 5, Fold: 95}},
	},
	LineFacing3Bet: {
		{minPercentile: 97, freq: Frequencies{Raise: 70, Call: 30, Fold: 0}},
		{minPercentile: 90, freq: Frequencies{Raise: 35, Call: 55, Fold: 10}},
		{minPercentile: 80, freq: Frequencies{Raise: 15, Call: 50, Fold: 35}},
		{minPercentile: 65, freq: Frequencies{Raise: 5, Call: 30, Fold: 65}},
		{minPercentile: 0, freq: Frequencies{Raise: 0, Call: 10, Fold: 90}},
	},
	LineFacing4Bet: {
		{minPercentile: 98, freq: Frequencies{Raise: 85, Call: 15, Fold: 0}},
		{minPercentile: 93, freq: Frequencies{Raise: 40, Call: 40, Fold: 20}},
		{minPercentile: 85, freq: Frequencies{Raise: 10, Call: 40, Fold: 50}},
		{minPercentile: 70, freq: Frequencies{Raise: 5, Call: 15, Fold: 80}},
		{minPercentile: 0, freq: Frequencies{Raise: 0, Call: 0, Fold: 100}},
	},
}

// facingPositionOffsets nudges the effective percentile on facing lines:
// out of position hero needs a bit more, the button and big blind can
// continue wider.
var facingPositionOffsets = map[ranges.Position]float64{
	ranges.UTG: -5,
	ranges.MP:  -3,
	ranges.CO:  0,
	ranges.BTN: 5,
	ranges.SB:  -2,
	ranges.BB:  3,
}

// defaultBets are the assumed sizes in big blinds when the caller didn't
// give one: a standard open, 3-bet and 4-bet.
var defaultBets = map[Line]float64{
	LineOpen:       0,
	LineFacingOpen: 2.5,
	LineFacing3Bet: 9,
	LineFacing4Bet: 22,
}

// blindsPot is the dead money before anyone acts.
const blindsPot = 1.5

// aggressorAction maps a facing line to the range the aggressor represents.
var aggressorAction = map[Line]ranges.Action{
	LineFacingOpen: ranges.ActionOpen,
	LineFacing3Bet: ranges.ActionThreeBet,
	LineFacing4Bet: ranges.ActionFourBet,
}

// openFrequencies resolves the open-line split for a seat and effective
// percentile.
func openFrequencies(pos ranges.Position, effective float64) Frequencies {
	thr, ok := openThresholds[pos]
	if !ok {
		thr = openThresholds[ranges.DefaultPosition]
	}
	for _, row := range openRows {
		if effective >= thr+row.offset {
			return row.freq
		}
	}
	return openFoldRow
}

// facingFrequencies resolves the split for a facing line.
func facingFrequencies(line Line, effective float64) Frequencies {
	for _, row := range facingRows[line] {
		if effective >= row.minPercentile {
			return row.freq
		}
	}
	// Rows end with a zero floor; negative effective percentiles take the
	// weakest row too.
	rows := facingRows[line]
	return rows[len(rows)-1].freq
}

func init() {
	validateTables()
}

// validateTables panics on malformed chart data. A row that doesn't sum to
// 100 is a build defect, not a runtime condition.
func validateTables() {
	for _, row := range openRows {
		if row.freq.sum() != 100 {
			panic(fmt.Sprintf("open row at offset %+.0f sums to %d, want 100", row.offset, row.freq.sum()))
		}
	}
	if openFoldRow.sum() != 100 {
		panic("open fold row does not sum to 100")
	}
	for line, rows := range facingRows {
		for _, row := range rows {
			if row.freq.sum() != 100 {
				panic(fmt.Sprintf("%s row at %.0f sums to %d, want 100", line, row.minPercentile, row.freq.sum()))
			}
		}
	}
}
