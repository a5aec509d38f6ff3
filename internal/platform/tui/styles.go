package tui

import "github.com/charmbracelet/lipgloss"

// Palette: indigo and emerald in 256 colours.
var (
	colorAccent  = lipgloss.Color("63")  // indigo
	colorSuccess = lipgloss.Color("42")  // emerald
	colorMuted   = lipgloss.Color("241") // gray
	colorBorder  = lipgloss.Color("240")
	colorLoss    = lipgloss.Color("203")
	colorGold    = lipgloss.Color("229")
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	goalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	completedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorGold)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorLoss)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2)

	// Option buttons (risk tiers, goal multipliers).
	optionStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
	activeOptionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorGold).
				Background(lipgloss.Color("57")).
				Padding(0, 1)
	disabledOptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238")).
				Strikethrough(true).
				Padding(0, 1)

	// Bottom tab bar.
	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGold).
			Background(lipgloss.Color("57")).
			Padding(0, 2)

	// Ladder strip nodes.
	nodeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Width(nodeInnerWidth).
			Align(lipgloss.Center)
	currentNodeStyle = nodeStyle.
				BorderForeground(colorSuccess).
				Foreground(colorSuccess).
				Bold(true)
	passedNodeStyle = nodeStyle.
			BorderForeground(colorAccent).
			Foreground(colorAccent)
	lostNodeStyle = nodeStyle.
			BorderForeground(colorLoss).
			Foreground(colorLoss).
			Faint(true)
)

// centerBlock centers every line of a multi-line block within width.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
