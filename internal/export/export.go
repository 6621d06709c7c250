// Package export serializes recommendations to TOML so other tooling can
// archive or post-process them.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/holdemtools/preflop-advisor/internal/engine"
	"github.com/holdemtools/preflop-advisor/internal/ranges"
)

// Record is the on-disk shape of one recommendation, with enough request
// context to make the file self-describing.
type Record struct {
	ID        string    `toml:"id"`
	CreatedAt time.Time `toml:"created_at"`

	Hand      string  `toml:"hand"`
	Position  string  `toml:"position"`
	Line      string  `toml:"line"`
	Opponent  string  `toml:"opponent"`
	StackBB   float64 `toml:"stack_bb"`
	FacingBet float64 `toml:"facing_bet,omitempty"`

	Advice Advice `toml:"advice"`
}

// Advice holds the computed outputs.
type Advice struct {
	Primary    string   `toml:"primary"`
	RaisePct   int      `toml:"raise_pct"`
	CallPct    int      `toml:"call_pct"`
	FoldPct    int      `toml:"fold_pct"`
	Confidence float64  `toml:"confidence"`
	Equity     float64  `toml:"equity"`
	PotOdds    float64  `toml:"pot_odds"`
	SPR        float64  `toml:"spr"`
	EV         float64  `toml:"ev_bb"`
	Blockers   string   `toml:"blocker_effect"`
	Blocked    []string `toml:"blocked_classes,omitempty"`
}

// NewRecord snapshots a recommendation and its request into a Record with a
// fresh id and timestamp.
func NewRecord(in engine.Input, rec engine.Recommendation) Record {
	opponent := in.Opponent
	if opponent == "" {
		opponent = engine.DefaultProfile
	}
	position := in.Position
	if !ranges.ValidPosition(position) {
		position = ranges.DefaultPosition
	}

	blocked := make([]string, 0, len(rec.Blockers.Targets))
	for _, tg := range rec.Blockers.Targets {
		blocked = append(blocked, tg.Class)
	}

	return Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Hand:      rec.Notation,
		Position:  string(position),
		Line:      string(in.Line),
		Opponent:  opponent,
		StackBB:   in.StackBB,
		FacingBet: in.FacingBet,
		Advice: Advice{
			Primary:    string(rec.Primary),
			RaisePct:   rec.Frequencies.Raise,
			CallPct:    rec.Frequencies.Call,
			FoldPct:    rec.Frequencies.Fold,
			Confidence: rec.Confidence,
			Equity:     rec.Equity,
			PotOdds:    rec.PotOdds,
			SPR:        rec.SPR,
			EV:         rec.EV,
			Blockers:   string(rec.Blockers.Effect),
			Blocked:    blocked,
		},
	}
}

// Encode writes the record to the writer as TOML.
func Encode(w io.Writer, r Record) error {
	if r.Hand == "" {
		return fmt.Errorf("export: record has no hand")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(r)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(r Record) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, r); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
