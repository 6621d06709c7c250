package ranges

// Position is one of the six canonical preflop seats.
type Position string

const (
	UTG Position = "UTG"
	MP  Position = "MP"
	CO  Position = "CO"
	BTN Position = "BTN"
	SB  Position = "SB"
	BB  Position = "BB"
)

// DefaultPosition is used when a caller asks about a seat the tables don't
// know; CO sits in the middle of the width spectrum.
const DefaultPosition = CO

// Action is the preflop action a range is conditioned on.
type Action string

const (
	ActionOpen     Action = "open"
	ActionDefend   Action = "defend"
	ActionThreeBet Action = "threebet"
	ActionFourBet  Action = "fourbet"
)

// PositionProfile describes a seat's opening behavior. RangePercent is a
// descriptive share of all starting hands, not a simulation weight.
type PositionProfile struct {
	Position     Position
	Actions      map[Action][]string
	RangePercent int
}

// positionProfiles carries the hand-tuned range charts. The open/defend lists
// come from the original charts verbatim; threebet/fourbet are the narrow
// re-raise ranges used when hero faces a 3-bet or 4-bet.
var positionProfiles = map[Position]PositionProfile{
	UTG: {
		Position: UTG,
		Actions: map[Action][]string{
			ActionOpen: {
				"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77",
				"AKs", "AQs", "AJs", "ATs", "KQs", "KJs", "QJs",
				"AKo", "AQo", "AJo", "KQo",
			},
			ActionThreeBet: {"AA", "KK", "QQ", "JJ", "AKs", "AKo", "AQs"},
			ActionFourBet:  {"AA", "KK", "QQ", "AKs", "AKo"},
		},
		RangePercent: 15,
	},
	MP: {
		Position: MP,
		Actions: map[Action][]string{
			ActionOpen: {
				"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66",
				"AKs", "AQs", "AJs", "ATs", "A9s", "KQs", "KJs", "KTs", "QJs", "QTs", "JTs",
				"AKo", "AQo", "AJo", "ATo", "KQo", "KJo",
			},
			ActionThreeBet: {"AA", "KK", "QQ", "JJ", "TT", "AKs", "AKo", "AQs", "A5s"},
			ActionFourBet:  {"AA", "KK", "QQ", "AKs", "AKo"},
		},
		RangePercent: 18,
	},
	CO: {
		Position: CO,
		Actions: map[Action][]string{
			ActionOpen: {
				"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55",
				"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s",
				"KQs", "KJs", "KTs", "K9s", "QJs", "QTs", "Q9s", "JTs", "J9s", "T9s", "98s",
				"AKo", "AQo", "AJo", "ATo", "A9o", "KQo", "KJo", "KTo", "QJo", "QTo", "JTo",
			},
			ActionThreeBet: {"AA", "KK", "QQ", "JJ", "TT", "AKs", "AKo", "AQs", "AQo", "A5s", "A4s", "KQs"},
			ActionFourBet:  {"AA", "KK", "QQ", "JJ", "AKs", "AKo"},
		},
		RangePercent: 25,
	},
	BTN: {
		Position: BTN,
		Actions: map[Action][]string{
			ActionOpen: {
				"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
				"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
				"KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s",
				"QJs", "QTs", "Q9s", "Q8s", "JTs", "J9s", "J8s", "T9s", "T8s", "98s", "97s", "87s", "76s", "65s", "54s",
				"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "A7o", "A6o", "A5o",
				"KQo", "KJo", "KTo", "K9o", "QJo", "QTo", "Q9o", "JTo", "J9o", "T9o",
			},
			ActionThreeBet: {"AA", "KK", "QQ", "JJ", "TT", "99", "AKs", "AKo", "AQs", "AQo", "AJs", "A5s", "A4s", "A3s", "KQs", "76s", "65s"},
			ActionFourBet:  {"AA", "KK", "QQ", "JJ", "AKs", "AKo", "A5s"},
		},
		RangePercent: 35,
	},
	SB: {
		Position: SB,
		Actions: map[Action][]string{
			ActionOpen: {
				"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44",
				"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s",
				"KQs", "KJs", "KTs", "K9s", "K8s", "QJs", "QTs", "Q9s", "JTs", "J9s", "T9s", "98s", "87s",
				"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "KQo", "KJo", "KTo", "QJo", "QTo", "JTo",
			},
			ActionThreeBet: {"AA", "KK", "QQ", "JJ", "TT", "AKs", "AKo", "AQs", "AQo", "A5s", "A4s"},
			ActionFourBet:  {"AA", "KK", "QQ", "AKs", "AKo"},
		},
		RangePercent: 30,
	},
	BB: {
		Position: BB,
		Actions: map[Action][]string{
			ActionDefend: {
				"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22",
				"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
				"KQs", "KJs", "KTs", "K9s", "K8s", "K7s", "K6s", "K5s",
				"QJs", "QTs", "Q9s", "Q8s", "Q7s", "JTs", "J9s", "J8s", "T9s", "T8s", "98s", "97s", "87s", "86s", "76s", "75s", "65s", "64s", "54s", "53s", "43s",
				"AKo", "AQo", "AJo", "ATo", "A9o", "A8o", "A7o", "A6o", "A5o", "A4o", "A3o",
				"KQo", "KJo", "KTo", "K9o", "K8o", "QJo", "QTo", "Q9o", "JTo", "J9o", "T9o", "98o", "87o",
			},
			ActionThreeBet: {"AA", "KK", "QQ", "JJ", "TT", "AKs", "AKo", "AQs", "A5s", "A4s", "76s", "65s", "54s"},
			ActionFourBet:  {"AA", "KK", "QQ", "AKs", "AKo"},
		},
		RangePercent: 40,
	},
}

// Positions returns the canonical seats in table order.
func Positions() []Position {
	return []Position{UTG, MP, CO, BTN, SB, BB}
}

// ValidPosition reports whether p is one of the six canonical seats.
func ValidPosition(p Position) bool {
	_, ok := positionProfiles[p]
	return ok
}

// ProfileFor returns the position profile, falling back to the default seat
// for unknown positions.
func ProfileFor(p Position) PositionProfile {
	if prof, ok := positionProfiles[p]; ok {
		return prof
	}
	return positionProfiles[DefaultPosition]
}

// RangePercentFor returns the descriptive width of a seat's core range.
func RangePercentFor(p Position) int {
	return ProfileFor(p).RangePercent
}

// RangeFor looks up the class list for (position, action) and returns the
// union of all class expansions. Unknown positions fall back to the default
// seat; a missing action falls back to the seat's "open" list, which may be
// absent (the big blind never opens), yielding an empty range.
func RangeFor(p Position, a Action) Range {
	prof := ProfileFor(p)
	notations, ok := prof.Actions[a]
	if !ok {
		notations = prof.Actions[ActionOpen]
	}

	classes := make([]HandClass, 0, len(notations))
	for _, n := range notations {
		hc, err := ParseClass(n)
		if err != nil {
			// Chart entries are validated by tests; skip rather than
			// poison the range at runtime.
			continue
		}
		classes = append(classes, hc)
	}
	return FromClasses(classes)
}
