// Package wizard is the interactive prompt that collects a spot one input
// at a time and hands it to the decision engine. It is a linear state
// machine: each step validates one field before the next unlocks, and the
// facing-bet step only appears on facing lines.
package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/holdemtools/preflop-advisor/internal/card"
	"github.com/holdemtools/preflop-advisor/internal/config"
	"github.com/holdemtools/preflop-advisor/internal/engine"
	"github.com/holdemtools/preflop-advisor/internal/equity"
	"github.com/holdemtools/preflop-advisor/internal/ranges"
)

// Step identifies which input the wizard is collecting.
type Step int

const (
	StepCards Step = iota
	StepPosition
	StepStack
	StepLine
	StepOpponent
	StepFacingBet
	StepDone
)

// recMsg carries the engine's answer back into the update loop.
type recMsg struct {
	rec engine.Recommendation
	err error
}

// Model is the bubbletea model for the advisor wizard.
type Model struct {
	logger    *log.Logger
	eng       *engine.Engine
	cfg       *config.Config
	sessionID string

	step   Step
	input  textinput.Model
	errMsg string

	in  engine.Input
	rec engine.Recommendation

	quitting bool
}

// New builds a wizard around the engine and configuration defaults.
func New(logger *log.Logger, eng *engine.Engine, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. AsKs"
	ti.Focus()
	ti.CharLimit = 8
	ti.Prompt = "> "

	return &Model{
		logger:    logger.WithPrefix("wizard"),
		eng:       eng,
		cfg:       cfg,
		sessionID: uuid.NewString(),
		step:      StepCards,
		input:     ti,
	}
}

// CurrentStep exposes the machine's position for tests.
func (m *Model) CurrentStep() Step {
	return m.step
}

// Recommendation returns the last computed answer.
func (m *Model) Recommendation() engine.Recommendation {
	return m.rec
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update drives the state machine.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.step = StepCards
			m.resetInput("e.g. AsKs")
			return m, nil
		}
		m.rec = msg.rec
		m.step = StepDone
		m.logger.Info("recommendation ready",
			"session", m.sessionID,
			"hand", m.rec.Notation,
			"primary", m.rec.Primary)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.step == StepDone {
				m.quitting = true
				return m, tea.Quit
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates the current field and advances the machine.
func (m *Model) submit() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())
	m.errMsg = ""

	switch m.step {
	case StepCards:
		hand, err := card.ParseHand(value)
		if err != nil {
			m.errMsg = fmt.Sprintf("can't read %q as two cards", value)
			return nil
		}
		m.in.Hole = hand
		m.step = StepPosition
		m.resetInput(m.cfg.Table.DefaultPosition)

	case StepPosition:
		if value == "" {
			value = m.cfg.Table.DefaultPosition
		}
		pos := ranges.Position(strings.ToUpper(value))
		if !ranges.ValidPosition(pos) {
			m.errMsg = fmt.Sprintf("unknown seat %q, use UTG/MP/CO/BTN/SB/BB", value)
			return nil
		}
		m.in.Position = pos
		m.step = StepStack
		m.resetInput(fmt.Sprintf("%.0f", m.cfg.Table.StackBB))

	case StepStack:
		stack := m.cfg.Table.StackBB
		if value != "" {
			v, err := strconv.ParseFloat(value, 64)
			if err != nil || v <= 0 {
				m.errMsg = fmt.Sprintf("stack %q must be a positive number of big blinds", value)
				return nil
			}
			stack = v
		}
		m.in.StackBB = stack
		m.step = StepLine
		m.resetInput("open")

	case StepLine:
		if value == "" {
			value = string(engine.LineOpen)
		}
		line := engine.Line(strings.ToLower(value))
		if !engine.ValidLine(line) {
			m.errMsg = fmt.Sprintf("unknown line %q, use open/facing-open/facing-3bet/facing-4bet", value)
			return nil
		}
		m.in.Line = line
		m.step = StepOpponent
		m.resetInput(m.cfg.Table.DefaultOpponent)

	case StepOpponent:
		if value == "" {
			value = m.cfg.Table.DefaultOpponent
		}
		m.in.Opponent = strings.ToLower(value)
		if m.in.Line == engine.LineOpen {
			return m.compute()
		}
		m.step = StepFacingBet
		m.resetInput("size in bb, empty for standard")

	case StepFacingBet:
		if value != "" {
			v, err := strconv.ParseFloat(value, 64)
			if err != nil || v < 0 {
				m.errMsg = fmt.Sprintf("bet %q must be a number of big blinds", value)
				return nil
			}
			m.in.FacingBet = v
		}
		return m.compute()
	}
	return nil
}

// compute runs the engine off the update loop.
func (m *Model) compute() tea.Cmd {
	in := m.in
	in.Aggressor = ranges.Position(m.cfg.Table.DefaultAggressor)
	in.Equity = equity.Options{
		Trials:       m.cfg.Simulator.Trials,
		Seed:         m.cfg.Simulator.Seed,
		Workers:      m.cfg.Simulator.Workers,
		ExactCeiling: m.cfg.Simulator.ExactCeiling,
	}

	m.logger.Debug("deciding", "session", m.sessionID, "hand", in.Hole, "line", in.Line)
	return func() tea.Msg {
		rec, err := m.eng.Decide(in)
		return recMsg{rec: rec, err: err}
	}
}

func (m *Model) resetInput(placeholder string) {
	m.input.SetValue("")
	m.input.Placeholder = placeholder
}

// View renders the current prompt or the final recommendation.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("preflop advisor"))
	b.WriteString("\n\n")

	if m.step == StepDone {
		b.WriteString(m.renderRecommendation())
		b.WriteString(hintStyle.Render("\nenter to quit"))
		return b.String()
	}

	b.WriteString(promptStyle.Render(m.prompt()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("esc to quit"))
	return b.String()
}

func (m *Model) prompt() string {
	switch m.step {
	case StepCards:
		return "Your hole cards?"
	case StepPosition:
		return "Your seat? (UTG/MP/CO/BTN/SB/BB)"
	case StepStack:
		return "Effective stack in big blinds?"
	case StepLine:
		return "The spot? (open/facing-open/facing-3bet/facing-4bet)"
	case StepOpponent:
		return "Opponent type? (unknown/fish/reg/nit/lag/maniac/station)"
	case StepFacingBet:
		return "Size of the bet you're facing, in big blinds?"
	default:
		return ""
	}
}

func (m *Model) renderRecommendation() string {
	rec := m.rec

	var action string
	switch rec.Primary {
	case engine.ActionRaise:
		action = raiseStyle.Render("RAISE")
	case engine.ActionCall:
		action = callStyle.Render("CALL")
	default:
		action = foldStyle.Render("FOLD")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", valueStyle.Render(rec.Notation), action)
	fmt.Fprintf(&b, "mix      raise %d%% / call %d%% / fold %d%%\n",
		rec.Frequencies.Raise, rec.Frequencies.Call, rec.Frequencies.Fold)
	fmt.Fprintf(&b, "equity   %.1f%%   pot odds %.1f%%   spr %.1f\n", rec.Equity, rec.PotOdds, rec.SPR)
	fmt.Fprintf(&b, "ev       %+.2f bb   confidence %.0f%%\n", rec.EV, rec.Confidence*100)
	if len(rec.Blockers.Targets) > 0 {
		classes := make([]string, 0, len(rec.Blockers.Targets))
		for _, tg := range rec.Blockers.Targets {
			classes = append(classes, tg.Class)
		}
		fmt.Fprintf(&b, "blockers %s (%s)\n", strings.Join(classes, " "), rec.Blockers.Effect)
	}
	return b.String()
}
