package cmd

import (
	"time"

	"github.com/spf13/viper"

	"github.com/sweepproject/sweep/internal/scheduler"
	"github.com/sweepproject/sweep/internal/sweepctl"
)

const defaultDelay = 5 * time.Second

// initParams fills the app params from the resolved viper config. Called
// from each command's PreRun so flag and config file values are bound first.
func initParams(a *sweepctl.App) error {
	a.Params.Submitter = scheduler.NewExternalSubmitter(&scheduler.Details{
		Scheduler:     viper.GetString("scheduler"),
		SchedulerArgs: viper.GetString("schedulerArgs"),
		JobNameFlag:   viper.GetString("jobNameFlag"),
		OutputFlag:    viper.GetString("outputFlag"),
		Attempts:      viper.GetUint("attempts"),
	})
	a.Params.Dispatch.Launcher = viper.GetString("launcher")
	a.Params.Dispatch.Target = viper.GetString("target")
	a.Params.Dispatch.SeedFile = viper.GetString("seedFile")
	a.Params.Dispatch.OutputSuffix = viper.GetString("outputSuffix")
	a.Params.Dispatch.Delay = viper.GetDuration("delay")
	return nil
}
