package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ladderup/internal/bankroll"
	"github.com/vovakirdan/ladderup/internal/money"
)

// BalanceTab is the calculator shown on the trading, sports and poker tabs.
type BalanceTab struct {
	mode   bankroll.Mode
	tiers  []bankroll.Tier
	poker  bankroll.PokerRules
	cursor int // selected tier
	input  textinput.Model
	keys   BalanceKeyMap
}

// NewBalanceTab creates the tab for mode with the tier closest to the
// configured default preselected.
func NewBalanceTab(mode bankroll.Mode, tiers []bankroll.Tier, defaultFraction float64, poker bankroll.PokerRules) BalanceTab {
	cursor := bankroll.TierIndex(tiers, defaultFraction)
	if cursor < 0 {
		cursor = 0
	}
	return BalanceTab{
		mode:   mode,
		tiers:  tiers,
		poker:  poker,
		cursor: cursor,
		input:  newAmountInput("Enter Balance"),
		keys:   DefaultBalanceKeyMap(),
	}
}

// Mode returns the tab's mode.
func (t BalanceTab) Mode() bankroll.Mode {
	return t.mode
}

// Tier returns the selected risk tier.
func (t BalanceTab) Tier() bankroll.Tier {
	if len(t.tiers) == 0 {
		return bankroll.Tier{}
	}
	return t.tiers[t.cursor]
}

// Balance returns the entered balance.
func (t BalanceTab) Balance() float64 {
	return amountValue(t.input)
}

// Sizing computes the figures for the current balance and tier.
func (t BalanceTab) Sizing() bankroll.Sizing {
	return bankroll.Compute(t.mode, t.Balance(), t.Tier().Fraction, t.poker)
}

// Update handles a key press on this tab.
func (t BalanceTab) Update(msg tea.KeyMsg) (BalanceTab, tea.Cmd) {
	if isAmountKey(msg) {
		var cmd tea.Cmd
		t.input, cmd = updateAmount(t.input, msg)
		return t, cmd
	}

	switch {
	case key.Matches(msg, t.keys.PrevTier):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(msg, t.keys.NextTier):
		if t.cursor < len(t.tiers)-1 {
			t.cursor++
		}
	case key.Matches(msg, t.keys.ClearAmount):
		t.input.Reset()
	}
	return t, nil
}

// Bindings returns the tab's bindings for the help bar.
func (t BalanceTab) Bindings() []key.Binding {
	return []key.Binding{t.keys.PrevTier, t.keys.NextTier, t.keys.ClearAmount}
}

// View renders the tab.
func (t BalanceTab) View() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Enter your balance:"))
	b.WriteString("\n")
	b.WriteString(t.input.View())
	b.WriteString("\n\n")
	b.WriteString(renderTiers(t.tiers, t.cursor, false))
	b.WriteString("\n")

	s := t.Sizing()
	if !s.HasFigures() {
		return b.String()
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s: %s\n", t.mode.RiskLabel(), money.Format(s.MaxRisk))
	if t.mode == bankroll.ModePoker {
		fmt.Fprintf(&b, "Cash Game Buy-in: %s\n", money.Format(s.CashBuyIn))
		fmt.Fprintf(&b, "Tournament Buy-in Range: %s - %s\n", money.Format(s.TournamentMin), money.Format(s.TournamentMax))
	}
	fmt.Fprintf(&b, "Possible Shots: %d\n", s.Shots)
	return b.String()
}

// renderTiers draws the tier buttons on one line.
func renderTiers(tiers []bankroll.Tier, selected int, disabled bool) string {
	buttons := make([]string, len(tiers))
	for i, tier := range tiers {
		switch {
		case disabled:
			buttons[i] = disabledOptionStyle.Render(tier.Name)
		case i == selected:
			buttons[i] = activeOptionStyle.Render(tier.Name)
		default:
			buttons[i] = optionStyle.Render(tier.Name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
