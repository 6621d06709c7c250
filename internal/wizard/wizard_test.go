package wizard

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holdemtools/preflop-advisor/internal/config"
	"github.com/holdemtools/preflop-advisor/internal/engine"
	"github.com/holdemtools/preflop-advisor/internal/handrank"
)

func newWizard() *Model {
	cfg := config.Default()
	cfg.Simulator.Trials = 500
	cfg.Simulator.Seed = 1
	logger := log.New(io.Discard)
	return New(logger, engine.New(handrank.New(handrank.PaulHankinRanker{})), cfg)
}

func enter(t *testing.T, m *Model, value string) tea.Cmd {
	t.Helper()
	m.input.SetValue(value)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestWizardOpenLineFlow(t *testing.T) {
	m := newWizard()
	require.Equal(t, StepCards, m.CurrentStep())

	enter(t, m, "AsAh")
	assert.Equal(t, StepPosition, m.CurrentStep())

	enter(t, m, "btn")
	assert.Equal(t, StepStack, m.CurrentStep())

	enter(t, m, "100")
	assert.Equal(t, StepLine, m.CurrentStep())

	enter(t, m, "open")
	assert.Equal(t, StepOpponent, m.CurrentStep())

	// Open line skips the facing-bet step and computes directly.
	cmd := enter(t, m, "reg")
	require.NotNil(t, cmd)
	m.Update(cmd())

	require.Equal(t, StepDone, m.CurrentStep())
	rec := m.Recommendation()
	assert.Equal(t, engine.ActionRaise, rec.Primary)
	assert.Equal(t, 100, rec.Frequencies.Raise)
	assert.Contains(t, m.View(), "RAISE")
}

func TestWizardFacingLineAsksForBet(t *testing.T) {
	m := newWizard()

	enter(t, m, "AsKs")
	enter(t, m, "BTN")
	enter(t, m, "80")
	enter(t, m, "facing-open")
	assert.Equal(t, StepOpponent, m.CurrentStep())

	enter(t, m, "nit")
	assert.Equal(t, StepFacingBet, m.CurrentStep())

	cmd := enter(t, m, "3")
	require.NotNil(t, cmd)
	m.Update(cmd())

	require.Equal(t, StepDone, m.CurrentStep())
	assert.Greater(t, m.Recommendation().Equity, 0.0)
}

func TestWizardRejectsInvalidInputAndStays(t *testing.T) {
	m := newWizard()

	enter(t, m, "not-cards")
	assert.Equal(t, StepCards, m.CurrentStep())
	assert.Contains(t, m.View(), "can't read")

	enter(t, m, "AsAh")
	require.Equal(t, StepPosition, m.CurrentStep())

	enter(t, m, "dealer")
	assert.Equal(t, StepPosition, m.CurrentStep(), "bad seat keeps the step")

	enter(t, m, "utg")
	assert.Equal(t, StepStack, m.CurrentStep())

	enter(t, m, "-5")
	assert.Equal(t, StepStack, m.CurrentStep(), "negative stack keeps the step")
}

func TestWizardDefaultsOnEmptyInput(t *testing.T) {
	m := newWizard()

	enter(t, m, "QdQc")
	enter(t, m, "") // default position
	enter(t, m, "") // default stack
	assert.Equal(t, StepLine, m.CurrentStep())

	enter(t, m, "") // default line is open
	assert.Equal(t, StepOpponent, m.CurrentStep())

	cmd := enter(t, m, "") // default opponent
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, StepDone, m.CurrentStep())
}

func TestWizardEscQuits(t *testing.T) {
	m := newWizard()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
