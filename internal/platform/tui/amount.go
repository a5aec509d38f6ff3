package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ladderup/internal/money"
)

// newAmountInput creates a focused numeric input for a balance.
func newAmountInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "$ "
	ti.CharLimit = 16
	ti.Width = 18
	ti.Focus()
	return ti
}

// updateAmount feeds an amount-editing key into ti. A second decimal point
// is dropped.
func updateAmount(ti textinput.Model, msg tea.KeyMsg) (textinput.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if r == '.' && containsDot(ti.Value()) {
				return ti, nil
			}
		}
	}
	return ti.Update(msg)
}

func containsDot(s string) bool {
	for _, r := range s {
		if r == '.' {
			return true
		}
	}
	return false
}

// amountValue coerces the input text to a number (empty is 0).
func amountValue(ti textinput.Model) float64 {
	return money.Parse(ti.Value())
}

// setAmount writes v into ti without trailing zeros ("115", "132.25").
// The char limit grows to fit, since SetValue truncates silently.
func setAmount(ti *textinput.Model, v float64) {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if ti.CharLimit > 0 && len(s) > ti.CharLimit {
		ti.CharLimit = len(s)
	}
	ti.SetValue(s)
	ti.CursorEnd()
}
