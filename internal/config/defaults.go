package config

import (
	_ "embed"
	"slices"
	"time"

	"github.com/vovakirdan/ladderup/internal/bankroll"
	"github.com/vovakirdan/ladderup/internal/ladder"
)

//go:embed defaults/ladderup.yaml
var defaultYAML []byte

// DefaultGoals is the built-in goal multiplier menu.
var DefaultGoals = []float64{5, 10, 20, 50, 100, 1000}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Ladder: LadderConfig{
			GrowthRate:  ladder.DefaultGrowthRate,
			Goals:       slices.Clone(DefaultGoals),
			DefaultGoal: 5,
		},
		Risk: RiskConfig{
			Tiers: slices.Clone(bankroll.DefaultTiers),
			Defaults: map[bankroll.Mode]float64{
				bankroll.ModeTrading: 0.01,
				bankroll.ModeSports:  0.01,
				bankroll.ModePoker:   0.01,
				bankroll.ModeLadder:  ladder.DefaultGrowthRate,
			},
		},
		Poker: bankroll.DefaultPokerRules(),
		UI: UIConfig{
			Splash: 2500 * time.Millisecond,
		},
		Source: SourceBuiltin,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return slices.Clone(defaultYAML)
}
