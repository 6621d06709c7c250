package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/holdemtools/preflop-advisor/internal/blockers"
	"github.com/holdemtools/preflop-advisor/internal/card"
	"github.com/holdemtools/preflop-advisor/internal/config"
	"github.com/holdemtools/preflop-advisor/internal/engine"
	"github.com/holdemtools/preflop-advisor/internal/equity"
	"github.com/holdemtools/preflop-advisor/internal/export"
	"github.com/holdemtools/preflop-advisor/internal/handrank"
	"github.com/holdemtools/preflop-advisor/internal/ranges"
	"github.com/holdemtools/preflop-advisor/internal/wizard"
)

type CLI struct {
	Config   string `help:"Path to HCL config file" default:"advisor.hcl"`
	LogLevel string `help:"Log level (debug, info, warn, error)" default:""`

	Advise   AdviseCmd   `cmd:"" help:"Recommend an action for a preflop spot"`
	Equity   EquityCmd   `cmd:"" help:"Estimate equity against a position's range"`
	Blockers BlockersCmd `cmd:"" help:"Show which premium hands your cards block"`
	Wizard   WizardCmd   `cmd:"" help:"Collect the spot interactively"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	raiseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	callStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	foldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

// app bundles what every subcommand needs.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	eng    *engine.Engine
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("preflop-advisor"),
		kong.Description("Preflop poker decision advisor"))

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		ctx.Exit(1)
	}
	if cli.LogLevel != "" {
		cfg.Advisor.LogLevel = cli.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		ctx.Exit(1)
	}

	logger := newLogger(cfg)
	a := &app{
		cfg:    cfg,
		logger: logger,
		eng:    engine.New(handrank.New(handrank.PaulHankinRanker{})),
	}

	if err := ctx.Run(a); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
}

func newLogger(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.Advisor.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	out := os.Stderr
	if cfg.Advisor.LogFile != "" {
		if f, err := os.OpenFile(cfg.Advisor.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			out = f
		}
	}
	return log.NewWithOptions(out, log.Options{Level: level, ReportTimestamp: true})
}

// AdviseCmd runs a single spot through the engine.
type AdviseCmd struct {
	Hand      string  `arg:"" help:"Hole cards, e.g. AsKs"`
	Position  string  `short:"p" help:"Your seat (UTG/MP/CO/BTN/SB/BB)"`
	Stack     float64 `short:"s" help:"Effective stack in big blinds"`
	Line      string  `short:"l" help:"Spot: open, facing-open, facing-3bet, facing-4bet" default:"open"`
	Opponent  string  `short:"o" help:"Opponent type (unknown/fish/reg/nit/lag/maniac/station)"`
	FacingBet float64 `short:"b" help:"Size of the bet you're facing, in big blinds"`
	Aggressor string  `short:"a" help:"Seat of the opener/re-raiser on facing lines"`
	Trials    int     `short:"i" help:"Monte Carlo trials for facing lines"`
	Seed      *int64  `help:"Random seed for reproducible results"`
	Export    string  `short:"e" help:"Write the recommendation as TOML to this file"`
}

func (c *AdviseCmd) Run(a *app) error {
	hole, err := card.ParseHand(c.Hand)
	if err != nil {
		return err
	}

	in := engine.Input{
		Hole:      hole,
		Position:  ranges.Position(strings.ToUpper(orDefault(c.Position, a.cfg.Table.DefaultPosition))),
		StackBB:   c.Stack,
		Line:      engine.Line(strings.ToLower(c.Line)),
		Opponent:  strings.ToLower(orDefault(c.Opponent, a.cfg.Table.DefaultOpponent)),
		FacingBet: c.FacingBet,
		Aggressor: ranges.Position(strings.ToUpper(orDefault(c.Aggressor, a.cfg.Table.DefaultAggressor))),
		Equity:    a.equityOptions(c.Trials, c.Seed),
	}
	if in.StackBB == 0 {
		in.StackBB = a.cfg.Table.StackBB
	}

	start := time.Now()
	rec, err := a.eng.Decide(in)
	if err != nil {
		return err
	}
	a.logger.Debug("decided", "hand", rec.Notation, "in", time.Since(start))

	printRecommendation(rec)

	if c.Export != "" {
		record := export.NewRecord(in, rec)
		data, err := export.EncodeToBytes(record)
		if err != nil {
			return err
		}
		path := c.Export
		if !filepath.IsAbs(path) {
			path = filepath.Join(a.cfg.Advisor.ExportDir, path)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		a.logger.Info("exported recommendation", "path", path, "id", record.ID)
	}
	return nil
}

// EquityCmd estimates equity against a seat's modeled range.
type EquityCmd struct {
	Hand   string `arg:"" help:"Hole cards, e.g. AsKs"`
	Vs     string `help:"Opposing seat whose range to simulate against" default:"CO"`
	Action string `help:"Range to use: open, defend, threebet, fourbet" default:"open"`
	Board  string `short:"b" help:"Known community cards, if any"`
	Trials int    `short:"i" help:"Monte Carlo trials"`
	Seed   *int64 `help:"Random seed for reproducible results"`
}

func (c *EquityCmd) Run(a *app) error {
	hole, err := card.ParseHand(c.Hand)
	if err != nil {
		return err
	}

	var board []card.Card
	if c.Board != "" {
		board, err = card.ParseCards(c.Board)
		if err != nil {
			return err
		}
	}

	opp := ranges.RangeFor(ranges.Position(strings.ToUpper(c.Vs)), ranges.Action(strings.ToLower(c.Action)))
	sim := equity.NewSimulator(handrank.New(handrank.PaulHankinRanker{}))

	start := time.Now()
	eq, err := sim.Estimate(hole, board, opp, a.equityOptions(c.Trials, c.Seed))
	if err != nil {
		return err
	}

	fmt.Printf("%s vs %s %s range (%d combos)\n",
		handStyle.Render(hole.String()),
		strings.ToUpper(c.Vs), strings.ToLower(c.Action), opp.Size())
	fmt.Printf("equity %s in %v\n",
		raiseStyle.Render(fmt.Sprintf("%.1f%%", eq)),
		time.Since(start).Truncate(time.Millisecond))
	return nil
}

// BlockersCmd prints the blocker report for a hand.
type BlockersCmd struct {
	Hand string `arg:"" help:"Hole cards, e.g. AsKs"`
}

func (c *BlockersCmd) Run(a *app) error {
	hole, err := card.ParseHand(c.Hand)
	if err != nil {
		return err
	}

	rep := blockers.Analyze(hole)
	fmt.Printf("%s  %s (score %d)\n\n",
		handStyle.Render(hole.String()),
		headerStyle.Render(string(rep.Effect)), rep.Score)

	if len(rep.Targets) == 0 {
		fmt.Println("no premium classes blocked")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("class"), labelStyle.Render("remaining"))
	for _, tg := range rep.Targets {
		fmt.Fprintf(w, "%s\t%.0f%%\n", tg.Class, tg.Remaining*100)
	}
	return w.Flush()
}

// WizardCmd starts the interactive flow.
type WizardCmd struct{}

func (c *WizardCmd) Run(a *app) error {
	m := wizard.New(a.logger, a.eng, a.cfg)
	_, err := tea.NewProgram(m).Run()
	return err
}

func (a *app) equityOptions(trials int, seed *int64) equity.Options {
	opts := equity.Options{
		Trials:       a.cfg.Simulator.Trials,
		Seed:         a.cfg.Simulator.Seed,
		Workers:      a.cfg.Simulator.Workers,
		ExactCeiling: a.cfg.Simulator.ExactCeiling,
	}
	if trials > 0 {
		opts.Trials = trials
	}
	if seed != nil {
		opts.Seed = *seed
	} else if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return opts
}

func printRecommendation(rec engine.Recommendation) {
	var action string
	switch rec.Primary {
	case engine.ActionRaise:
		action = raiseStyle.Render("RAISE")
	case engine.ActionCall:
		action = callStyle.Render("CALL")
	default:
		action = foldStyle.Render("FOLD")
	}

	fmt.Printf("%s %s  %s\n\n",
		handStyle.Render(rec.Notation),
		headerStyle.Render(fmt.Sprintf("(top %.0f%%)", 100-rec.Percentile+1)),
		action)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s / %s / %s\n", labelStyle.Render("mix"),
		raiseStyle.Render(fmt.Sprintf("raise %d%%", rec.Frequencies.Raise)),
		callStyle.Render(fmt.Sprintf("call %d%%", rec.Frequencies.Call)),
		foldStyle.Render(fmt.Sprintf("fold %d%%", rec.Frequencies.Fold)))
	fmt.Fprintf(w, "%s\t%.1f%%\n", labelStyle.Render("equity"), rec.Equity)
	if rec.PotOdds > 0 {
		fmt.Fprintf(w, "%s\t%.1f%%\n", labelStyle.Render("pot odds"), rec.PotOdds)
	}
	fmt.Fprintf(w, "%s\t%.1f\n", labelStyle.Render("spr"), rec.SPR)
	fmt.Fprintf(w, "%s\t%+.2f bb\n", labelStyle.Render("ev"), rec.EV)
	fmt.Fprintf(w, "%s\t%.0f%%\n", labelStyle.Render("confidence"), rec.Confidence*100)
	if len(rec.Blockers.Targets) > 0 {
		classes := make([]string, 0, len(rec.Blockers.Targets))
		for _, tg := range rec.Blockers.Targets {
			classes = append(classes, tg.Class)
		}
		fmt.Fprintf(w, "%s\t%s (%s)\n", labelStyle.Render("blockers"),
			strings.Join(classes, " "), rec.Blockers.Effect)
	}
	w.Flush()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
