package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ladderup/internal/bankroll"
	"github.com/vovakirdan/ladderup/internal/ladder"
	"github.com/vovakirdan/ladderup/internal/money"
)

// Ladder strip layout.
const (
	nodeInnerWidth = 9
	nodeWidth      = nodeInnerWidth + 2 // + border
	connector      = "──"
	progressWidth  = 40
)

// LadderTab drives a ladder.Ladder from the keyboard.
type LadderTab struct {
	ladder      *ladder.Ladder
	goals       []float64
	goalCursor  int
	risk        float64 // fraction of the balance shown as "Risk per Level"
	tiers       []bankroll.Tier
	input       textinput.Model
	history     HistoryTable
	showHistory bool
	status      string
	keys        LadderKeyMap
	logger      *log.Logger
}

// NewLadderTab creates the ladder tab. goals is the multiplier menu and
// defaultGoal the preselected entry; risk is the ladder's per-level risk.
func NewLadderTab(l *ladder.Ladder, goals []float64, defaultGoal, risk float64, tiers []bankroll.Tier, logger *log.Logger) LadderTab {
	cursor := 0
	for i, g := range goals {
		if g == defaultGoal {
			cursor = i
			break
		}
	}
	return LadderTab{
		ladder:     l,
		goals:      goals,
		goalCursor: cursor,
		risk:       risk,
		tiers:      tiers,
		input:      newAmountInput("Starting Balance"),
		history:    NewHistoryTable(),
		keys:       DefaultLadderKeyMap(),
		logger:     logger,
	}
}

// Ladder returns the engine driven by this tab.
func (t LadderTab) Ladder() *ladder.Ladder {
	return t.ladder
}

// Goal returns the selected goal multiplier.
func (t LadderTab) Goal() float64 {
	if len(t.goals) == 0 {
		return 0
	}
	return t.goals[t.goalCursor]
}

// Balance returns the amount in the balance field.
func (t LadderTab) Balance() float64 {
	return amountValue(t.input)
}

// Update handles a key press on this tab.
func (t LadderTab) Update(msg tea.KeyMsg) (LadderTab, tea.Cmd) {
	if isAmountKey(msg) {
		var cmd tea.Cmd
		t.input, cmd = updateAmount(t.input, msg)
		return t, cmd
	}

	switch {
	case key.Matches(msg, t.keys.PrevGoal):
		if t.goalCursor > 0 {
			t.goalCursor--
		}
	case key.Matches(msg, t.keys.NextGoal):
		if t.goalCursor < len(t.goals)-1 {
			t.goalCursor++
		}
	case key.Matches(msg, t.keys.Start):
		t = t.start()
	case key.Matches(msg, t.keys.Win):
		t = t.record(ladder.Win)
	case key.Matches(msg, t.keys.Loss):
		t = t.record(ladder.Loss)
	case key.Matches(msg, t.keys.History):
		t.showHistory = !t.showHistory
	case key.Matches(msg, t.keys.ClearAmount):
		t.input.Reset()
	case key.Matches(msg, t.keys.ScrollUp), key.Matches(msg, t.keys.ScrollDown):
		if t.showHistory {
			var cmd tea.Cmd
			t.history, cmd = t.history.Update(msg)
			return t, cmd
		}
	}
	return t, nil
}

// start begins a run from the balance field and the selected goal.
func (t LadderTab) start() LadderTab {
	balance, goal := t.Balance(), t.Goal()
	t.ladder.Start(balance, goal)
	t.history.SetEntries(nil)
	t.status = ""
	setAmount(&t.input, t.ladder.Balance())

	if !t.ladder.Started() {
		t.status = "Nothing to climb: pick a goal above 1x."
	}
	t.logger.Info("ladder started",
		"run", t.ladder.RunID(),
		"balance", balance,
		"goal", goal,
		"levels", len(t.ladder.Targets()),
	)
	return t
}

// record applies a result and mirrors the banked balance into the balance field.
func (t LadderTab) record(result ladder.Result) LadderTab {
	wasCompleted := t.ladder.Completed()
	if err := t.ladder.Record(result); err != nil {
		if errors.Is(err, ladder.ErrNotStarted) {
			t.status = "Start a ladder first (enter)."
		} else {
			t.status = err.Error()
		}
		t.logger.Warn("result rejected", "result", result, "error", err)
		return t
	}

	t.status = ""
	t.history.SetEntries(t.ladder.History())
	setAmount(&t.input, t.ladder.Balance())

	t.logger.Debug("result recorded",
		"run", t.ladder.RunID(),
		"result", result,
		"level", t.ladder.Level()+1,
		"balance", t.ladder.Balance(),
	)
	if t.ladder.Completed() && !wasCompleted {
		t.logger.Info("ladder completed",
			"run", t.ladder.RunID(),
			"final", t.ladder.FinalTarget(),
			"win_rate", t.ladder.WinRate(),
		)
	}
	return t
}

// Bindings returns the tab's bindings for the help bar.
func (t LadderTab) Bindings() []key.Binding {
	return []key.Binding{
		t.keys.Start, t.keys.Win, t.keys.Loss, t.keys.PrevGoal, t.keys.NextGoal,
		t.keys.History, t.keys.ScrollUp, t.keys.ClearAmount,
	}
}

// View renders the tab within width columns.
func (t LadderTab) View(width int) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Ladder Up Instructions:"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("1. Enter your starting balance.  2. Select target multiplier (←/→).\n3. Press enter to generate levels.  4. Track progress with w (win) / l (loss)."))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Enter your starting balance:"))
	b.WriteString("\n")
	b.WriteString(t.input.View())
	b.WriteString("\n\n")

	b.WriteString("Select target multiplier:\n")
	b.WriteString(t.renderGoals())
	b.WriteString("\n")
	b.WriteString(renderTiers(t.tiers, -1, true))
	b.WriteString("\n")

	if t.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(t.status))
		b.WriteString("\n")
	}

	if !t.ladder.Started() {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(goalStyle.Render("🎯 Target Goal: " + money.Format(t.ladder.FinalTarget())))
	b.WriteString("\n")

	if t.ladder.Completed() {
		b.WriteString(completedStyle.Render("🎉 Ladder Challenge Completed! 🎉"))
		b.WriteString("\n")
	}

	winRate := t.ladder.WinRate()
	fmt.Fprintf(&b, "Level %d of %d | Risk per Level: %s | Win Rate: %s\n",
		t.ladder.Level()+1,
		len(t.ladder.Targets()),
		money.Format(bankroll.MaxRisk(t.ladder.Balance(), t.risk)),
		money.Percent(winRate),
	)
	b.WriteString(renderProgress(winRate, min(progressWidth, max(width-4, 10))))
	b.WriteString("\n\n")
	b.WriteString(t.renderStrip(width))
	b.WriteString("\n")

	if t.showHistory {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("History:"))
		b.WriteString("\n")
		b.WriteString(t.history.View())
		b.WriteString("\n")
	}

	return b.String()
}

// renderGoals draws the goal multiplier buttons.
func (t LadderTab) renderGoals() string {
	buttons := make([]string, len(t.goals))
	for i, g := range t.goals {
		label := strconv.FormatFloat(g, 'f', -1, 64) + "x"
		if i == t.goalCursor {
			buttons[i] = activeOptionStyle.Render(label)
		} else {
			buttons[i] = optionStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// renderStrip draws the window of ladder nodes around the current level.
func (t LadderTab) renderStrip(width int) string {
	targets := t.ladder.Targets()
	visible := max((width+len(connector))/(nodeWidth+len(connector)), 1)
	from, to := stripWindow(len(targets), t.ladder.Level(), visible)

	parts := make([]string, 0, 2*(to-from))
	for i := from; i < to; i++ {
		if i > from {
			parts = append(parts, "\n"+mutedStyle.Render(connector))
		}
		parts = append(parts, t.renderNode(i, targets[i]))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if from > 0 || to < len(targets) {
		strip += "\n" + mutedStyle.Render(fmt.Sprintf("levels %d-%d of %d", from+1, to, len(targets)))
	}
	return strip
}

// renderNode draws level i: its number in a box and its target below.
func (t LadderTab) renderNode(i int, target float64) string {
	style := nodeStyle
	current := t.ladder.Level()
	outcome, visited := t.ladder.OutcomeAt(i)
	switch {
	case i == current:
		style = currentNodeStyle
	case visited && outcome.Result == ladder.Loss:
		style = lostNodeStyle
	case i < current:
		style = passedNodeStyle
	}

	label := strconv.Itoa(i + 1)
	if i == current {
		label = "▶ " + label
	}
	box := style.Render(label)
	return lipgloss.JoinVertical(lipgloss.Center, box, money.Format(target))
}

// stripWindow returns the [from, to) slice of n levels to show so that
// current stays in view, centred where possible.
func stripWindow(n, current, visible int) (from, to int) {
	if visible >= n {
		return 0, n
	}
	from = current - visible/2
	from = max(0, min(from, n-visible))
	return from, from + visible
}

// renderProgress draws a bar filled to pct percent.
func renderProgress(pct float64, width int) string {
	filled := int(math.Round(pct / 100 * float64(width)))
	filled = max(0, min(filled, width))
	bar := lipgloss.NewStyle().Foreground(colorSuccess).Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
	return bar
}
