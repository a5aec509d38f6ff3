// ladderup is a terminal calculator for bankroll risk management: a staking
// ladder tracker plus position sizing for trading, sports betting and poker.
//
// Usage:
//
//	ladderup                      - Start the interactive calculator
//	ladderup ladder               - Print a ladder plan
//	ladderup size <mode>          - Print position sizing for a mode
//	ladderup tiers                - List risk tiers
//	ladderup serve                - Serve the calculator over SSH
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.ladderup/config.yaml, ./configs/ladderup.yaml)
//	--log-file <path>   - Write logs to a file (interactive mode logs nowhere otherwise)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ladderup/internal/config"
	"github.com/vovakirdan/ladderup/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ladderup",
	Short: "LadderUp - bankroll risk calculator in your terminal",
	Long: `LadderUp helps you size positions and climb a staking ladder.

Tabs:
  Ladder   - Grow a balance 15% per level towards a goal multiplier
  Trading  - Max risk per trade and possible shots for a risk tier
  Sports   - Max bet per wager and possible shots
  Poker    - Cash game buy-in and tournament buy-in range

Controls:
  Tab/Shift+Tab  - Switch tab
  0-9 .          - Edit balance
  Enter          - Start ladder
  W / L          - Record win / loss
  H              - Toggle history
  ?              - Show all keys
  Q/Ctrl+C       - Quit

Examples:
  ladderup
  ladderup ladder --balance 100 --goal 5
  ladderup size poker --balance 500 --tier balanced
  ladderup serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(ladderCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(serveCmd)
}

func runInteractive(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs only go to --log-file.
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		out = f
	}

	logger, err := newLogger(out, "ladderup")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		width = w
		height = h
	}

	return tui.Run(cfg, tui.RuntimeConfig{ScreenW: width, ScreenH: height}, logger)
}

// newLogger creates a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads the config from --config or the default search path.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", cfg.Source)
	return cfg, nil
}
