package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ladderup/internal/ladder"
	"github.com/vovakirdan/ladderup/internal/money"
)

// maxHistoryRows caps the visible height of the history table.
const maxHistoryRows = 8

// HistoryTable renders a ladder run's outcomes.
type HistoryTable struct {
	table table.Model
	rows  int
}

// NewHistoryTable creates an empty history table.
func NewHistoryTable() HistoryTable {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Level", Width: 8},
		{Title: "Balance", Width: 14},
		{Title: "Result", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorGold).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return HistoryTable{table: t}
}

// SetEntries replaces the rows and scrolls to the newest entry.
func (h *HistoryTable) SetEntries(entries []ladder.Entry) {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = historyRow(i, e)
	}
	h.rows = len(rows)
	h.table.SetRows(rows)
	h.table.SetHeight(min(max(h.rows, 1), maxHistoryRows) + 1) // + header
	h.table.GotoBottom()
}

// Update passes scroll keys to the table.
func (h HistoryTable) Update(msg tea.Msg) (HistoryTable, tea.Cmd) {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

// View renders the table, or a hint while it is empty.
func (h HistoryTable) View() string {
	if h.rows == 0 {
		return mutedStyle.Italic(true).Render("No results recorded yet.")
	}
	return h.table.View()
}

// historyRow formats entry i as "Level n - $balance - RESULT" columns.
func historyRow(i int, e ladder.Entry) table.Row {
	return table.Row{
		fmt.Sprintf("%d", i+1),
		fmt.Sprintf("Level %d", e.Level+1),
		money.Format(e.Balance),
		strings.ToUpper(string(e.Result)),
	}
}
