package sweep

import (
	"fmt"
	"strconv"
)

// FixedSweep dispatches the portfolio problem over the literal seed set
// {6, 7, 8, 9}, sweeping the risk-aversion alpha and the sample count.
type FixedSweep struct {
	Loss       string
	Sampling   string
	Alpha      string
	NumSamples string
}

// FixedSweepSeeds is the seed set used by every fixed sweep, in submission order.
var FixedSweepSeeds = []int{6, 7, 8, 9}

// IndexedSweep dispatches a named problem over the inclusive index range
// [Start, Stop], resolving each index to a seed through the seed table.
type IndexedSweep struct {
	Loss     string
	Sampling string
	Problem  string
	Start    int
	Stop     int
}

// JobDescriptor is the name/command pair built for one submission. It is
// created fresh per iteration and handed straight to the submitter.
type JobDescriptor struct {
	Name    string
	Command []string
}

func (s FixedSweep) jobName(seed int) string {
	return fmt.Sprintf("portfolio_%s-%s_%s-%s(%d)", s.Alpha, s.Loss, s.NumSamples, s.Sampling, seed)
}

func (s IndexedSweep) jobName(index int) string {
	return fmt.Sprintf("%s-x2-%s-%s(%d)", s.Problem, s.Loss, s.Sampling, index)
}

// Flag values shared by every submission of a given variant: instance counts,
// split fraction and learning rate of the target program, plus the two-layer
// network the indexed job names advertise.
const (
	targetInstances     = "400"
	targetTestInstances = "400"
	targetValFrac       = "0.5"
	targetLearningRate  = "0.01"
	targetLayers        = "2"
)

func (s FixedSweep) jobCommand(config *Config, seed int) []string {
	return []string{
		config.Launcher, config.Target,
		"--problem", "portfolio",
		"--loss", s.Loss,
		"--sampling", s.Sampling,
		"--alpha", s.Alpha,
		"--numsamples", s.NumSamples,
		"--instances", targetInstances,
		"--testinstances", targetTestInstances,
		"--valfrac", targetValFrac,
		"--lr", targetLearningRate,
		"--seed", strconv.Itoa(seed),
	}
}

func (s IndexedSweep) jobCommand(config *Config, seed string) []string {
	return []string{
		config.Launcher, config.Target,
		"--problem", s.Problem,
		"--loss", s.Loss,
		"--sampling", s.Sampling,
		"--layers", targetLayers,
		"--instances", targetInstances,
		"--testinstances", targetTestInstances,
		"--valfrac", targetValFrac,
		"--lr", targetLearningRate,
		"--seed", seed,
	}
}
