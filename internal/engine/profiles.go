package engine

// OpponentProfile carries the behavioral constants for one archetype.
// OpenWidth and FoldTo3Bet are percentages; BlockerFoldMult scales how much
// hero's blockers move this opponent's folding frequency.
type OpponentProfile struct {
	Name            string
	OpenWidth       float64
	FoldTo3Bet      float64
	FourBetFreq     float64
	BlockerFoldMult float64
}

// DefaultProfile is used when the caller has not identified the opponent.
const DefaultProfile = "unknown"

// opponentProfiles holds the six archetypes plus the unknown default.
// Thinking opponents (reg, nit) respect aggression and blockers; the
// oblivious ones (fish, maniac, station) barely fold at all.
var opponentProfiles = map[string]OpponentProfile{
	"unknown": {Name: "unknown", OpenWidth: 25, FoldTo3Bet: 55, FourBetFreq: 8, BlockerFoldMult: 1.0},
	"fish":    {Name: "fish", OpenWidth: 40, FoldTo3Bet: 40, FourBetFreq: 4, BlockerFoldMult: 0.3},
	"reg":     {Name: "reg", OpenWidth: 25, FoldTo3Bet: 55, FourBetFreq: 10, BlockerFoldMult: 1.2},
	"nit":     {Name: "nit", OpenWidth: 15, FoldTo3Bet: 70, FourBetFreq: 5, BlockerFoldMult: 1.5},
	"lag":     {Name: "lag", OpenWidth: 35, FoldTo3Bet: 45, FourBetFreq: 14, BlockerFoldMult: 0.8},
	"maniac":  {Name: "maniac", OpenWidth: 50, FoldTo3Bet: 30, FourBetFreq: 20, BlockerFoldMult: 0.2},
	"station": {Name: "station", OpenWidth: 45, FoldTo3Bet: 25, FourBetFreq: 3, BlockerFoldMult: 0.5},
}

// ProfileFor returns the archetype's parameters, falling back to the unknown
// default for names the table doesn't know.
func ProfileFor(name string) OpponentProfile {
	if p, ok := opponentProfiles[name]; ok {
		return p
	}
	return opponentProfiles[DefaultProfile]
}

// Profiles returns the known archetype names in a fixed order, the unknown
// default first.
func Profiles() []string {
	return []string{"unknown", "fish", "reg", "nit", "lag", "maniac", "station"}
}

// foldTendencyOffset converts an opponent's fold-to-3-bet frequency into a
// percentile nudge: hero can attack a folder with weaker hands and needs
// more substance against someone who never lets go.
func foldTendencyOffset(p OpponentProfile) float64 {
	return (p.FoldTo3Bet - 55) / 5
}
