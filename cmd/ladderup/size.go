package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladderup/internal/bankroll"
	"github.com/vovakirdan/ladderup/internal/money"
)

var flagTier string

var sizeCmd = &cobra.Command{
	Use:   "size <trading|sports|poker>",
	Short: "Print position sizing for a balance",
	Long: `Show the max risk per position and the number of possible shots for
a balance at a risk tier. Poker also shows the cash game buy-in and the
tournament buy-in range.

Examples:
  ladderup size trading --balance 1000
  ladderup size sports --balance 250 --tier aggressive
  ladderup size poker --balance 500 --tier balanced -o yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSize,
}

func init() {
	sizeCmd.Flags().Float64Var(&flagBalance, "balance", 0, "Bankroll balance")
	sizeCmd.Flags().StringVar(&flagTier, "tier", "", "Risk tier name (default: the mode's configured tier)")
	sizeCmd.Flags().StringVarP(&flagOutput, "output", "o", "table", "Output format: table or yaml")
}

func runSize(cmd *cobra.Command, args []string) error {
	mode, err := bankroll.ParseMode(args[0])
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), "ladderup")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	fraction := cfg.Risk.DefaultFor(mode)
	tierName := tierLabel(cfg.Risk.Tiers, fraction)
	if flagTier != "" {
		tier, ok := bankroll.FindTier(cfg.Risk.Tiers, flagTier)
		if !ok {
			return fmt.Errorf("unknown tier %q (see 'ladderup tiers')", flagTier)
		}
		fraction, tierName = tier.Fraction, tier.Name
	}

	s := bankroll.Compute(mode, flagBalance, fraction, cfg.Poker)
	return writeOutput(cmd.OutOrStdout(), flagOutput, s, func(w io.Writer) {
		printSizing(w, s, tierName)
	})
}

// printSizing writes the sizing lines shown on the mode's tab.
func printSizing(w io.Writer, s bankroll.Sizing, tierName string) {
	fmt.Fprintf(w, "%s - %s balance at %s (%g%%)\n", s.Mode.Title(), money.Format(s.Balance), tierName, money.Round2(s.Fraction*100))
	fmt.Fprintln(w)

	if !s.HasFigures() {
		fmt.Fprintln(w, "Enter a balance above 0 to see sizing.")
		return
	}

	fmt.Fprintf(w, "%s: %s\n", s.Mode.RiskLabel(), money.Format(s.MaxRisk))
	if s.Mode == bankroll.ModePoker {
		fmt.Fprintf(w, "Cash Game Buy-in: %s\n", money.Format(s.CashBuyIn))
		fmt.Fprintf(w, "Tournament Buy-in Range: %s - %s\n", money.Format(s.TournamentMin), money.Format(s.TournamentMax))
	}
	fmt.Fprintf(w, "Possible Shots: %d\n", s.Shots)
}

// tierLabel names the tier with the given fraction, or formats the fraction.
func tierLabel(tiers []bankroll.Tier, fraction float64) string {
	if i := bankroll.TierIndex(tiers, fraction); i >= 0 {
		return tiers[i].Name
	}
	return fmt.Sprintf("%g%%", money.Round2(fraction*100))
}
