package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweepctl",
		Short: "sweepctl dispatches experiment seed sweeps to a cluster batch scheduler.",
		Long: `
sweepctl dispatches experiment seed sweeps to a cluster batch scheduler.

Each sweep iteration builds a unique job name, prints it to stdout and submits
one scheduler job running the experiment target with that iteration's seed.
Submissions are fire-and-forget; sweepctl never waits for job completion.

Persistent config can be saved in a config file so it doesn't have to be
specified every command.

Example structure:

scheduler: sbatch
launcher: scripts/launch.sh
target: main.py
seedFile: seeds
delay: 5s

The location of this file can be passed in using --config argument or picked
from $HOME/.sweepctl.yaml.
`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sweepctl.yaml)")
	addSchedulerCommandlineArgs(cmd)

	cmd.AddCommand(
		submitCmd(),
		runCmd(),
		versionCmd(),
	)

	return cmd
}

func addSchedulerCommandlineArgs(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("scheduler", "sbatch", "batch scheduler submission binary")
	rootCmd.PersistentFlags().String("schedulerArgs", "", "extra arguments for every scheduler invocation")
	rootCmd.PersistentFlags().String("jobNameFlag", "--job-name", "scheduler flag carrying the job name")
	rootCmd.PersistentFlags().String("outputFlag", "--output", "scheduler flag carrying the output file template")
	rootCmd.PersistentFlags().String("outputSuffix", "-%j.out", "suffix appended to the job name to form the output file template")
	rootCmd.PersistentFlags().String("launcher", "scripts/launch.sh", "wrapper script interposed between the scheduler and the target")
	rootCmd.PersistentFlags().String("target", "main.py", "experiment entry point run by each job")
	rootCmd.PersistentFlags().String("seedFile", "seeds", "line-indexed seed file used by indexed sweeps")
	rootCmd.PersistentFlags().Duration("delay", defaultDelay, "pause between consecutive submissions")
	rootCmd.PersistentFlags().Uint("attempts", 1, "submission attempts per job before giving up")
	viper.BindPFlag("scheduler", rootCmd.PersistentFlags().Lookup("scheduler"))
	viper.BindPFlag("schedulerArgs", rootCmd.PersistentFlags().Lookup("schedulerArgs"))
	viper.BindPFlag("jobNameFlag", rootCmd.PersistentFlags().Lookup("jobNameFlag"))
	viper.BindPFlag("outputFlag", rootCmd.PersistentFlags().Lookup("outputFlag"))
	viper.BindPFlag("outputSuffix", rootCmd.PersistentFlags().Lookup("outputSuffix"))
	viper.BindPFlag("launcher", rootCmd.PersistentFlags().Lookup("launcher"))
	viper.BindPFlag("target", rootCmd.PersistentFlags().Lookup("target"))
	viper.BindPFlag("seedFile", rootCmd.PersistentFlags().Lookup("seedFile"))
	viper.BindPFlag("delay", rootCmd.PersistentFlags().Lookup("delay"))
	viper.BindPFlag("attempts", rootCmd.PersistentFlags().Lookup("attempts"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(initConfig)
	if err := RootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var cfgFile string

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".sweepctl")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
		default:
			fmt.Println("Can't read config:", err)
			os.Exit(1)
		}
	}
}
