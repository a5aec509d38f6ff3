package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// GlobalKeyMap defines the bindings active on every tab.
type GlobalKeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	JumpTab key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultGlobalKeyMap returns default global bindings.
func DefaultGlobalKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev tab"),
		),
		JumpTab: key.NewBinding(
			key.WithKeys("f1", "f2", "f3", "f4"),
			key.WithHelp("F1-F4", "jump to tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LadderKeyMap defines the ladder tab bindings.
type LadderKeyMap struct {
	PrevGoal    key.Binding
	NextGoal    key.Binding
	Start       key.Binding
	Win         key.Binding
	Loss        key.Binding
	History     key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	ClearAmount key.Binding
}

// DefaultLadderKeyMap returns default ladder bindings.
func DefaultLadderKeyMap() LadderKeyMap {
	return LadderKeyMap{
		PrevGoal: key.NewBinding(
			key.WithKeys("left", "<"),
			key.WithHelp("←", "lower goal"),
		),
		NextGoal: key.NewBinding(
			key.WithKeys("right", ">"),
			key.WithHelp("→", "higher goal"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start ladder"),
		),
		Win: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "win"),
		),
		Loss: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "loss"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll history"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll history"),
		),
		ClearAmount: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear balance"),
		),
	}
}

// BalanceKeyMap defines the bindings of the trading, sports and poker tabs.
type BalanceKeyMap struct {
	PrevTier    key.Binding
	NextTier    key.Binding
	ClearAmount key.Binding
}

// DefaultBalanceKeyMap returns default balance tab bindings.
func DefaultBalanceKeyMap() BalanceKeyMap {
	return BalanceKeyMap{
		PrevTier: key.NewBinding(
			key.WithKeys("left", "up", "k"),
			key.WithHelp("←/k", "safer tier"),
		),
		NextTier: key.NewBinding(
			key.WithKeys("right", "down", "j"),
			key.WithHelp("→/j", "riskier tier"),
		),
		ClearAmount: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear balance"),
		),
	}
}

// bindingHelp adapts a set of bindings to help.KeyMap.
type bindingHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (h bindingHelp) ShortHelp() []key.Binding {
	return h.short
}

// FullHelp returns key bindings for the full help view.
func (h bindingHelp) FullHelp() [][]key.Binding {
	return h.full
}

// isAmountKey reports whether msg edits a numeric amount field: digits, a
// decimal point or backspace. Everything else is a command.
func isAmountKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace:
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if (r < '0' || r > '9') && r != '.' {
				return false
			}
		}
		return true
	}
	return false
}
