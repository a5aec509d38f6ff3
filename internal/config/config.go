// Package config provides YAML-based configuration loading for LadderUp:
// the ladder growth rate and goal menu, the risk tier menu, poker buy-in
// bounds and UI timings.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/ladderup/internal/bankroll"
)

// Config is the complete application configuration.
type Config struct {
	Ladder LadderConfig        `yaml:"ladder"`
	Risk   RiskConfig          `yaml:"risk"`
	Poker  bankroll.PokerRules `yaml:"poker"`
	UI     UIConfig            `yaml:"ui"`

	// Source records where the config was loaded from. Not read from YAML.
	Source string `yaml:"-"`
}

// LadderConfig defines the ladder run parameters.
type LadderConfig struct {
	GrowthRate  float64   `yaml:"growth_rate"`  // Per-level compounding rate
	Goals       []float64 `yaml:"goals"`        // Goal multiplier menu
	DefaultGoal float64   `yaml:"default_goal"` // Preselected goal
}

// RiskConfig defines the tier menu and the starting tier of each mode.
type RiskConfig struct {
	Tiers    []bankroll.Tier           `yaml:"tiers"`
	Defaults map[bankroll.Mode]float64 `yaml:"defaults"`
}

// UIConfig defines presentation timings.
type UIConfig struct {
	Splash time.Duration `yaml:"splash"` // 0 disables the splash screen
}

// DefaultFor returns the starting risk fraction of mode.
func (r RiskConfig) DefaultFor(mode bankroll.Mode) float64 {
	if f, ok := r.Defaults[mode]; ok {
		return f
	}
	if len(r.Tiers) > 0 {
		return r.Tiers[0].Fraction
	}
	return 0
}

// Validate checks the constraints the calculators rely on.
func (c Config) Validate() error {
	if c.Ladder.GrowthRate <= 0 {
		return fmt.Errorf("ladder.growth_rate must be > 0, got %v", c.Ladder.GrowthRate)
	}
	if len(c.Ladder.Goals) == 0 {
		return fmt.Errorf("ladder.goals must not be empty")
	}
	for _, g := range c.Ladder.Goals {
		if g <= 1 {
			return fmt.Errorf("ladder.goals must all be > 1, got %v", g)
		}
	}
	if c.Ladder.DefaultGoal <= 1 {
		return fmt.Errorf("ladder.default_goal must be > 1, got %v", c.Ladder.DefaultGoal)
	}

	if len(c.Risk.Tiers) == 0 {
		return fmt.Errorf("risk.tiers must not be empty")
	}
	for _, t := range c.Risk.Tiers {
		if t.Name == "" {
			return fmt.Errorf("risk.tiers entries need a name")
		}
		if t.Fraction <= 0 || t.Fraction > 1 {
			return fmt.Errorf("risk.tiers %q fraction must be within (0,1], got %v", t.Name, t.Fraction)
		}
	}
	for mode, f := range c.Risk.Defaults {
		if _, err := bankroll.ParseMode(string(mode)); err != nil {
			return fmt.Errorf("risk.defaults: %w", err)
		}
		if f <= 0 || f > 1 {
			return fmt.Errorf("risk.defaults.%s must be within (0,1], got %v", mode, f)
		}
	}

	if c.Poker.TournamentMinFraction < 0 || c.Poker.TournamentMaxFraction < 0 || c.Poker.TournamentMinBuyIn < 0 {
		return fmt.Errorf("poker bounds must be >= 0")
	}
	if c.UI.Splash < 0 {
		return fmt.Errorf("ui.splash must be >= 0, got %v", c.UI.Splash)
	}
	return nil
}
