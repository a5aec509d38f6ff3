package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ladderup/internal/money"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List the configured risk tiers",
	Long:  `Shows the risk tier menu and the fraction of the bankroll each tier risks per position.`,
	Args:  cobra.NoArgs,
	RunE:  runTiers,
}

func runTiers(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), "ladderup")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Risk tiers:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, t := range cfg.Risk.Tiers {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	// Print header
	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "Name", "Risk")
	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "----", "----")

	// Print tiers
	for _, t := range cfg.Risk.Tiers {
		fmt.Fprintf(w, "  %-*s  %g%%\n", maxNameLen, t.Name, money.Round2(t.Fraction*100))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Ladder growth: %g%% per level (source: %s)\n", money.Round2(cfg.Ladder.GrowthRate*100), cfg.Source)
	return nil
}
