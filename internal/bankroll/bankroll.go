// Package bankroll computes position sizing for the balance-based modes:
// how much of a bankroll a risk tier allows per position and how many such
// positions the bankroll covers.
package bankroll

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Mode is one of the calculator tabs.
type Mode string

const (
	ModeLadder  Mode = "ladder"
	ModeTrading Mode = "trading"
	ModeSports  Mode = "sports"
	ModePoker   Mode = "poker"
)

// Modes lists every mode in tab order.
var Modes = []Mode{ModeLadder, ModeTrading, ModeSports, ModePoker}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("bankroll: unknown mode %q", s)
}

// Title returns the capitalised mode name.
func (m Mode) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

// Icon returns the tab icon for the mode.
func (m Mode) Icon() string {
	switch m {
	case ModeLadder:
		return "🪜"
	case ModeTrading:
		return "📈"
	case ModeSports:
		return "🏀"
	case ModePoker:
		return "♠️"
	default:
		return ""
	}
}

// RiskLabel is the caption of the max-risk figure for the mode.
func (m Mode) RiskLabel() string {
	if m == ModeSports {
		return "Max Bet"
	}
	return "Max Risk Allowed"
}

// Tier is a named fraction of the bankroll risked per position.
type Tier struct {
	Name     string  `yaml:"name"`
	Fraction float64 `yaml:"fraction"`
}

// DefaultTiers is the built-in tier menu, most cautious first.
var DefaultTiers = []Tier{
	{Name: "Super Conservative", Fraction: 0.01},
	{Name: "Conservative", Fraction: 0.02},
	{Name: "Balanced", Fraction: 0.04},
	{Name: "Aggressive", Fraction: 0.15},
}

// FindTier looks a tier up by case-insensitive name.
func FindTier(tiers []Tier, name string) (Tier, bool) {
	for _, t := range tiers {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			return t, true
		}
	}
	return Tier{}, false
}

// TierIndex returns the index of the tier with the given fraction, or -1.
func TierIndex(tiers []Tier, fraction float64) int {
	for i, t := range tiers {
		if t.Fraction == fraction {
			return i
		}
	}
	return -1
}

// PokerRules bound the tournament buy-in range as fractions of the bankroll.
type PokerRules struct {
	TournamentMinFraction float64 `yaml:"tournament_min_fraction"`
	TournamentMinBuyIn    float64 `yaml:"tournament_min_buy_in"`
	TournamentMaxFraction float64 `yaml:"tournament_max_fraction"`
}

// DefaultPokerRules returns the built-in tournament bounds.
func DefaultPokerRules() PokerRules {
	return PokerRules{
		TournamentMinFraction: 0.01,
		TournamentMinBuyIn:    1,
		TournamentMaxFraction: 0.024,
	}
}

// Sizing is the calculator output for one mode, balance and risk fraction.
// Values are unrounded; format them with the money package.
type Sizing struct {
	Mode     Mode    `yaml:"mode"`
	Balance  float64 `yaml:"balance"`
	Fraction float64 `yaml:"fraction"`
	MaxRisk  float64 `yaml:"max_risk"`
	Shots    int     `yaml:"shots"`

	// Poker only.
	CashBuyIn     float64 `yaml:"cash_buy_in,omitempty"`
	TournamentMin float64 `yaml:"tournament_min,omitempty"`
	TournamentMax float64 `yaml:"tournament_max,omitempty"`
}

// HasFigures reports whether there is anything to show; the calculator only
// produces figures for a positive balance.
func (s Sizing) HasFigures() bool {
	return s.Balance > 0
}

// MaxRisk returns balance times fraction.
func MaxRisk(balance, fraction float64) float64 {
	if !finite(balance) || !finite(fraction) {
		return balance * fraction
	}
	return decimal.NewFromFloat(balance).Mul(decimal.NewFromFloat(fraction)).InexactFloat64()
}

// Shots returns how many max-risk positions the balance covers. It is 0 for
// a non-positive or non-finite balance or fraction.
func Shots(balance, fraction float64) int {
	if !(balance > 0) || !(fraction > 0) || !finite(balance) || !finite(fraction) {
		return 0
	}
	b := decimal.NewFromFloat(balance)
	risk := b.Mul(decimal.NewFromFloat(fraction))
	return int(b.Div(risk).Floor().IntPart())
}

// Compute sizes a position for mode.
func Compute(mode Mode, balance, fraction float64, poker PokerRules) Sizing {
	s := Sizing{
		Mode:     mode,
		Balance:  balance,
		Fraction: fraction,
		MaxRisk:  MaxRisk(balance, fraction),
		Shots:    Shots(balance, fraction),
	}

	if mode == ModePoker {
		s.CashBuyIn = s.MaxRisk
		s.TournamentMin = max(MaxRisk(balance, poker.TournamentMinFraction), poker.TournamentMinBuyIn)
		s.TournamentMax = MaxRisk(balance, poker.TournamentMaxFraction)
	}
	return s
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
