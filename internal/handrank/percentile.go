package handrank

import "github.com/holdemtools/preflop-advisor/internal/card"

// handPercentiles maps starting-hand notation to a 0-100 strength percentile
// (100 = AA). The values are hand-tuned chart constants carried over as-is;
// notations absent from the chart are playable-in-theory trash and share the
// default percentile below.
var handPercentiles = map[string]float64{
	// Top 1%
	"AA": 100, "KK": 99,
	// Top 2%
	"QQ": 98, "AKs": 97,
	// Top 3%
	"JJ": 96, "AKo": 95, "AQs": 94,
	// Top 5%
	"TT": 93, "AQo": 92, "AJs": 91, "KQs": 90,
	// Top 7%
	"99": 89, "ATs": 88, "AJo": 87, "KJs": 86, "KQo": 85,
	// Top 10%
	"88": 84, "KTs": 83, "ATo": 82, "QJs": 81, "KJo": 80,
	"QTs": 79, "JTs": 78,
	// Top 15%
	"77": 77, "A9s": 76, "KTo": 75, "A8s": 74, "Q9s": 73,
	"QJo": 72, "JTo": 71, "A7s": 70, "A5s": 69, "A6s": 68,
	// Top 20%
	"66": 67, "K9s": 66, "QTo": 65, "T9s": 64, "A4s": 63,
	"J9s": 62, "A3s": 61, "K8s": 60, "A2s": 59,
	// Top 25%
	"55": 58, "K7s": 57, "Q8s": 56, "K9o": 55, "T8s": 54,
	"K6s": 53, "J8s": 52, "98s": 51,
	// Top 30%
	"44": 50, "K5s": 49, "Q9o": 48, "T9o": 47, "J9o": 46,
	"K4s": 45, "Q7s": 44, "T7s": 43, "K3s": 42, "97s": 41,
	// Top 35%
	"33": 40, "K2s": 39, "Q6s": 38, "87s": 37, "J7s": 36,
	"Q5s": 35, "98o": 34, "T8o": 33, "96s": 32,
	// Top 40%
	"22": 31, "Q4s": 30, "J8o": 29, "76s": 28, "Q3s": 27,
	"86s": 26, "J6s": 25, "Q2s": 24, "T6s": 23,
	// Top 50%
	"87o": 22, "J5s": 21, "65s": 20, "97o": 19, "75s": 18,
	"J4s": 17, "95s": 16, "54s": 15, "J3s": 14, "T7o": 13,
	// The rest
	"J2s": 12, "64s": 11, "85s": 10, "76o": 9, "T5s": 8,
	"96o": 7, "86o": 6, "53s": 5, "T4s": 4, "74s": 3,
	"43s": 2, "T3s": 1,
}

// defaultPercentile covers unranked trash hands (72o territory).
const defaultPercentile = 5

// Percentile returns the starting-hand strength percentile for the hole
// cards, 0-100 with AA at 100.
func Percentile(hole card.Hand) float64 {
	if p, ok := handPercentiles[hole.Notation()]; ok {
		return p
	}
	return defaultPercentile
}
