package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ladderup/internal/bankroll"
	"github.com/vovakirdan/ladderup/internal/config"
	"github.com/vovakirdan/ladderup/internal/ladder"
)

// RuntimeConfig holds per-session runtime settings.
type RuntimeConfig struct {
	ScreenW int
	ScreenH int
}

// Model is the Bubble Tea model for one LadderUp session: a splash screen
// followed by the tabbed calculator.
type Model struct {
	config   config.Config
	runtime  RuntimeConfig
	logger   *log.Logger
	keys     GlobalKeyMap
	help     help.Model
	modes    []bankroll.Mode
	active   int
	ladder   LadderTab
	balances map[bankroll.Mode]BalanceTab
	splash   bool
	quitting bool
}

// NewModel creates a session model. A nil logger discards output.
func NewModel(cfg config.Config, rt RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engine := ladder.New(ladder.WithGrowthRate(cfg.Ladder.GrowthRate))

	balances := make(map[bankroll.Mode]BalanceTab, len(bankroll.Modes)-1)
	for _, mode := range bankroll.Modes {
		if mode == bankroll.ModeLadder {
			continue
		}
		balances[mode] = NewBalanceTab(mode, cfg.Risk.Tiers, cfg.Risk.DefaultFor(mode), cfg.Poker)
	}

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		config:  cfg,
		runtime: rt,
		logger:  logger,
		keys:    DefaultGlobalKeyMap(),
		help:    h,
		modes:   bankroll.Modes,
		ladder: NewLadderTab(engine, cfg.Ladder.Goals, cfg.Ladder.DefaultGoal,
			cfg.Risk.DefaultFor(bankroll.ModeLadder), cfg.Risk.Tiers, logger),
		balances: balances,
		splash:   cfg.UI.Splash > 0,
	}
}

// Init starts the splash timer.
func (m Model) Init() tea.Cmd {
	if m.splash {
		return splashCmd(m.config.UI.Splash)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case SplashDoneMsg:
		m.splash = false
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// Any key skips the splash screen
	if m.splash {
		m.splash = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.active = (m.active + 1) % len(m.modes)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.active = (m.active - 1 + len(m.modes)) % len(m.modes)
		return m, nil
	case key.Matches(msg, m.keys.JumpTab):
		if i := int(msg.String()[1] - '1'); i >= 0 && i < len(m.modes) {
			m.active = i
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Tab-specific keys
	var cmd tea.Cmd
	mode := m.ActiveMode()
	if mode == bankroll.ModeLadder {
		m.ladder, cmd = m.ladder.Update(msg)
		return m, cmd
	}
	if tab, ok := m.balances[mode]; ok {
		m.balances[mode], cmd = tab.Update(msg)
	}
	return m, cmd
}

// ActiveMode returns the mode of the selected tab.
func (m Model) ActiveMode() bankroll.Mode {
	return m.modes[m.active]
}

// InSplash reports whether the splash screen is showing.
func (m Model) InSplash() bool {
	return m.splash
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// LadderTab returns the ladder tab state.
func (m Model) LadderTab() LadderTab {
	return m.ladder
}

// BalanceTab returns the tab of a balance mode.
func (m Model) BalanceTab(mode bankroll.Mode) (BalanceTab, bool) {
	tab, ok := m.balances[mode]
	return tab, ok
}

// helpKeys combines the active tab's bindings with the global ones.
func (m Model) helpKeys() bindingHelp {
	var tabKeys []key.Binding
	if m.ActiveMode() == bankroll.ModeLadder {
		tabKeys = m.ladder.Bindings()
	} else if tab, ok := m.balances[m.ActiveMode()]; ok {
		tabKeys = tab.Bindings()
	}

	global := []key.Binding{m.keys.NextTab, m.keys.PrevTab, m.keys.JumpTab, m.keys.Help, m.keys.Quit}
	short := make([]key.Binding, 0, 6)
	short = append(short, tabKeys[:min(len(tabKeys), 3)]...)
	short = append(short, m.keys.NextTab, m.keys.Help, m.keys.Quit)
	return bindingHelp{
		short: short,
		full:  [][]key.Binding{tabKeys, global},
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.splash {
		return renderSplash(m.runtime.ScreenW, m.runtime.ScreenH)
	}

	width := m.runtime.ScreenW
	if width <= 0 {
		width = 80
	}
	cardWidth := max(width-4, 20)

	var body string
	mode := m.ActiveMode()
	if mode == bankroll.ModeLadder {
		body = m.ladder.View(cardWidth - 4) // card padding
	} else if tab, ok := m.balances[mode]; ok {
		body = tab.View()
	}

	var b strings.Builder
	b.WriteString(cardStyle.Width(cardWidth).Render(strings.TrimRight(body, "\n")))
	b.WriteString("\n")
	b.WriteString(renderTabBar(m.modes, m.active, width))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.helpKeys())))
	return b.String()
}

// Run starts the Bubble Tea program for a local session.
func Run(cfg config.Config, rt RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
