package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sweepproject/sweep/internal/sweep"
	"github.com/sweepproject/sweep/internal/sweepctl"
)

func submitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a seed sweep to the batch scheduler.",
	}
	cmd.AddCommand(
		submitPortfolioCmd(),
		submitSeedsCmd(),
	)
	return cmd
}

func submitPortfolioCmd() *cobra.Command {
	a := sweepctl.New()
	cmd := &cobra.Command{
		Use:   "portfolio <loss> <sampling> <alpha> <num-samples> [-- scheduler args...]",
		Short: "Submit a portfolio sweep over the fixed seed set.",
		Long: `Submit one job per seed of the fixed seed set {6, 7, 8, 9}.

Arguments after -- are passed through to the scheduler invocation verbatim,
e.g. queue or resource hints.

Example:
  sweepctl submit portfolio mse gaussian 0.5 10 -- -p short
`,
		Args: cobra.MinimumNArgs(4),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fixed := sweep.FixedSweep{
				Loss:       args[0],
				Sampling:   args[1],
				Alpha:      args[2],
				NumSamples: args[3],
			}
			return a.SubmitFixedSweep(fixed, args[4:])
		},
	}
	return cmd
}

func submitSeedsCmd() *cobra.Command {
	a := sweepctl.New()
	cmd := &cobra.Command{
		Use:   "seeds <loss> <sampling> <problem> <start> <stop> [-- scheduler args...]",
		Short: "Submit a sweep over an index range, with seeds from the seed file.",
		Long: `Submit one job per index in the inclusive range [start, stop]. Each index
resolves to the seed on that line (1-indexed) of the seed file.

Example:
  sweepctl submit seeds mse gaussian budgetalloc 1 10 -- -p short
`,
		Args: cobra.MinimumNArgs(5),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.Atoi(args[3])
			if err != nil {
				return errors.Wrapf(err, "error reading start index %q", args[3])
			}
			stop, err := strconv.Atoi(args[4])
			if err != nil {
				return errors.Wrapf(err, "error reading stop index %q", args[4])
			}
			indexed := sweep.IndexedSweep{
				Loss:     args[0],
				Sampling: args[1],
				Problem:  args[2],
				Start:    start,
				Stop:     stop,
			}
			return a.SubmitIndexedSweep(indexed, args[5:])
		},
	}
	return cmd
}
