// Package tui provides the Bubble Tea front end for LadderUp: the splash
// screen, the tabbed calculator and the SSH server that serves it.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SplashDoneMsg is sent once the splash screen delay has elapsed.
type SplashDoneMsg time.Time

// splashCmd returns a one-shot command that dismisses the splash screen after d.
func splashCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return SplashDoneMsg(t)
	})
}

var splashLogo = []string{
	" _              _     _           _   _       ",
	"| |    __ _  __| | __| | ___ _ __| | | |_ __  ",
	"| |   / _` |/ _` |/ _` |/ _ \\ '__| | | | '_ \\ ",
	"| |__| (_| | (_| | (_| |  __/ |  | |_| | |_) |",
	"|_____\\__,_|\\__,_|\\__,_|\\___|_|   \\___/| .__/ ",
	"                                       |_|    ",
}

// renderSplash draws the logo centred in a width x height area.
func renderSplash(width, height int) string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent).
		Render(strings.Join(splashLogo, "\n"))
	tagline := mutedStyle.Render("bankroll risk, one rung at a time")

	block := lipgloss.JoinVertical(lipgloss.Center, logo, "", tagline)
	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
