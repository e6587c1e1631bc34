package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sweepproject/sweep/internal/sweepctl"
)

func versionCmd() *cobra.Command {
	a := sweepctl.New()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print client version information.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Version()
		},
	}
	return cmd
}
