package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ladderup/internal/ladder"
	"github.com/vovakirdan/ladderup/internal/money"
)

var (
	flagBalance float64
	flagGoal    float64
	flagOutput  string
	flagRecord  []string
)

var ladderCmd = &cobra.Command{
	Use:   "ladder",
	Short: "Print the target plan of a ladder run",
	Long: `Compute the level targets for growing a starting balance to a goal
multiplier at the configured growth rate (15% per level by default).

Results passed with --record are replayed in order, so the output shows
where that sequence of wins and losses leaves the run.

Examples:
  ladderup ladder --balance 100 --goal 5
  ladderup ladder --balance 100 --goal 5 --record w,w,l,w
  ladderup ladder --balance 250 --goal 1000 --output yaml`,
	Args: cobra.NoArgs,
	RunE: runLadder,
}

func init() {
	ladderCmd.Flags().Float64Var(&flagBalance, "balance", 0, "Starting balance")
	ladderCmd.Flags().Float64Var(&flagGoal, "goal", 0, "Goal multiplier (default: config default_goal)")
	ladderCmd.Flags().StringVarP(&flagOutput, "output", "o", "table", "Output format: table or yaml")
	ladderCmd.Flags().StringSliceVar(&flagRecord, "record", nil, "Results to replay, comma separated (win/w, loss/l)")
}

func runLadder(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), "ladderup")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	goal := flagGoal
	if goal == 0 {
		goal = cfg.Ladder.DefaultGoal
	}

	l := ladder.New(ladder.WithGrowthRate(cfg.Ladder.GrowthRate))
	l.Start(flagBalance, goal)
	if err := replay(l, flagRecord); err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), flagOutput, l.Snapshot(), func(w io.Writer) {
		printLadderPlan(w, l.Snapshot())
	})
}

// replay records each textual result on l in order.
func replay(l *ladder.Ladder, results []string) error {
	for i, s := range results {
		result, err := ladder.ParseResult(s)
		if err != nil {
			return fmt.Errorf("result %d: %w", i+1, err)
		}
		if err := l.Record(result); err != nil {
			return fmt.Errorf("result %d: %w", i+1, err)
		}
	}
	return nil
}

// printLadderPlan writes the plan as a table, one row per level.
func printLadderPlan(w io.Writer, s ladder.Snapshot) {
	fmt.Fprintf(w, "Ladder: %s to %gx at %g%% per level\n", money.Format(s.StartingBalance), s.Goal, money.Round2(s.GrowthRate*100))
	fmt.Fprintln(w)

	if s.Levels == 0 {
		fmt.Fprintln(w, "No levels: the goal multiplier must be above 1 and the balance finite.")
		return
	}

	fmt.Fprintf(w, "  %-5s  %-12s  %s\n", "Level", "Target", "Multiple")
	fmt.Fprintf(w, "  %-5s  %-12s  %s\n", "-----", "------", "--------")
	for i, target := range s.Targets {
		multiple := 0.0
		if s.StartingBalance != 0 {
			multiple = target / s.StartingBalance
		}
		fmt.Fprintf(w, "  %-5d  %-12s  %.2fx\n", i+1, money.Format(target), multiple)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Target Goal: %s in %d levels\n", money.Format(s.FinalTarget), s.Levels)

	if len(s.History) == 0 {
		return
	}
	fmt.Fprintf(w, "Now: level %d of %d, balance %s, win rate %s\n",
		s.Level, s.Levels, money.Format(s.Balance), money.Percent(s.WinRate))
	if s.State == ladder.StateCompleted {
		fmt.Fprintln(w, "Ladder completed.")
	}
}

// writeOutput renders v as YAML or hands off to the table printer.
func writeOutput(w io.Writer, format string, v any, table func(io.Writer)) error {
	switch format {
	case "", "table":
		table(w)
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want table or yaml)", format)
	}
}
