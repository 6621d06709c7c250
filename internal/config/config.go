// Package config loads the advisor's settings from an HCL file. A missing
// file is not an error; callers get the defaults.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete advisor configuration.
type Config struct {
	Advisor   AdvisorSettings   `hcl:"advisor,block"`
	Simulator SimulatorSettings `hcl:"simulator,block"`
	Table     TableSettings     `hcl:"table,block"`
}

// AdvisorSettings covers logging and export behavior.
type AdvisorSettings struct {
	LogLevel   string `hcl:"log_level,optional"`
	LogFile    string `hcl:"log_file,optional"`
	ExportDir  string `hcl:"export_dir,optional"`
	ColorCards bool   `hcl:"color_cards,optional"`
}

// SimulatorSettings tunes the equity estimator.
type SimulatorSettings struct {
	Trials       int   `hcl:"trials,optional"`
	Workers      int   `hcl:"workers,optional"`
	ExactCeiling int   `hcl:"exact_ceiling,optional"`
	Seed         int64 `hcl:"seed,optional"`
}

// TableSettings describes the assumed game when the caller gives no detail.
type TableSettings struct {
	StackBB          float64 `hcl:"stack_bb,optional"`
	DefaultPosition  string  `hcl:"default_position,optional"`
	DefaultOpponent  string  `hcl:"default_opponent,optional"`
	DefaultAggressor string  `hcl:"default_aggressor,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Advisor: AdvisorSettings{
			LogLevel:   "info",
			LogFile:    "",
			ExportDir:  ".",
			ColorCards: true,
		},
		Simulator: SimulatorSettings{
			Trials:       10000,
			Workers:      0,
			ExactCeiling: 50000,
			Seed:         0,
		},
		Table: TableSettings{
			StackBB:          100,
			DefaultPosition:  "BTN",
			DefaultOpponent:  "unknown",
			DefaultAggressor: "CO",
		},
	}
}

// Load reads configuration from an HCL file, returning defaults when the
// file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Fill in anything the file left out.
	def := Default()
	if cfg.Advisor.LogLevel == "" {
		cfg.Advisor.LogLevel = def.Advisor.LogLevel
	}
	if cfg.Advisor.ExportDir == "" {
		cfg.Advisor.ExportDir = def.Advisor.ExportDir
	}
	if cfg.Simulator.Trials == 0 {
		cfg.Simulator.Trials = def.Simulator.Trials
	}
	if cfg.Simulator.ExactCeiling == 0 {
		cfg.Simulator.ExactCeiling = def.Simulator.ExactCeiling
	}
	if cfg.Table.StackBB == 0 {
		cfg.Table.StackBB = def.Table.StackBB
	}
	if cfg.Table.DefaultPosition == "" {
		cfg.Table.DefaultPosition = def.Table.DefaultPosition
	}
	if cfg.Table.DefaultOpponent == "" {
		cfg.Table.DefaultOpponent = def.Table.DefaultOpponent
	}
	if cfg.Table.DefaultAggressor == "" {
		cfg.Table.DefaultAggressor = def.Table.DefaultAggressor
	}

	return &cfg, nil
}

// Validate rejects settings the advisor cannot run with.
func (c *Config) Validate() error {
	switch c.Advisor.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Advisor.LogLevel)
	}

	if c.Simulator.Trials < 1 {
		return fmt.Errorf("simulator trials must be positive, got %d", c.Simulator.Trials)
	}
	if c.Simulator.Workers < 0 {
		return fmt.Errorf("simulator workers cannot be negative, got %d", c.Simulator.Workers)
	}
	if c.Simulator.ExactCeiling < 0 {
		return fmt.Errorf("exact ceiling cannot be negative, got %d", c.Simulator.ExactCeiling)
	}

	if c.Table.StackBB <= 0 {
		return fmt.Errorf("stack must be positive, got %.1f big blinds", c.Table.StackBB)
	}
	return nil
}
