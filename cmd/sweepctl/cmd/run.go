package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sweepproject/sweep/internal/sweepctl"
)

func runCmd() *cobra.Command {
	a := sweepctl.New()
	cmd := &cobra.Command{
		Use:   "run ./path/to/sweeps.yaml",
		Short: "Dispatch every sweep listed in a specification file.",
		Long: `Dispatch every sweep listed in a specification file, in order.

Example sweeps.yaml:

sweeps:
  - fixed:
      loss: mse
      sampling: gaussian
      alpha: "0.5"
      numSamples: "10"
  - indexed:
      loss: mse
      sampling: gaussian
      problem: budgetalloc
      start: 1
      stop: 10
    passThrough: ["-p", "short"]
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(a)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.RunSpecification(args[0])
		},
	}
	return cmd
}
