package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ladderup/internal/bankroll"
)

// renderTabBar draws the bottom tab bar with the active tab highlighted.
func renderTabBar(modes []bankroll.Mode, active, width int) string {
	tabs := make([]string, len(modes))
	for i, m := range modes {
		label := m.Icon() + " " + m.Title()
		if i == active {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return centerBlock(bar, width)
}
