package sweep

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/clock"

	"github.com/sweepproject/sweep/internal/scheduler"
)

// Config holds the dispatch parameters shared by every submission: the
// launcher and target the scheduler runs, where seeds are resolved from, how
// output files are named and how long to pause between submissions.
type Config struct {
	Launcher     string
	Target       string
	SeedFile     string
	OutputSuffix string
	Delay        time.Duration
}

// Dispatcher drives a bounded submission loop: one job per sweep iteration,
// submitted fire-and-forget, with a pause between consecutive submissions so
// the scheduler's submission endpoint is not hammered.
type Dispatcher struct {
	submitter scheduler.Submitter
	config    *Config
	clock     clock.Clock
	out       io.Writer
}

func NewDispatcher(submitter scheduler.Submitter, config *Config, clock clock.Clock, out io.Writer) *Dispatcher {
	return &Dispatcher{
		submitter: submitter,
		config:    config,
		clock:     clock,
		out:       out,
	}
}

// RunFixed submits one job per seed in FixedSweepSeeds, in order.
// Submission failures are logged and collected rather than aborting the
// sweep; the aggregate is returned once every iteration has been attempted.
func (d *Dispatcher) RunFixed(ctx context.Context, sweep FixedSweep, passThrough []string) error {
	runId := shortRunId()
	var result *multierror.Error
	for i, seed := range FixedSweepSeeds {
		if i > 0 {
			d.clock.Sleep(d.config.Delay)
		}
		job := &JobDescriptor{
			Name:    sweep.jobName(seed),
			Command: sweep.jobCommand(d.config, seed),
		}
		if err := d.submit(ctx, runId, job, passThrough); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// RunIndexed submits one job per index in [sweep.Start, sweep.Stop],
// resolving each index to a seed through the seed table. A failed seed
// lookup skips that iteration's submission but not the rest of the sweep.
func (d *Dispatcher) RunIndexed(ctx context.Context, sweep IndexedSweep, passThrough []string) error {
	if sweep.Start > sweep.Stop {
		return errors.Errorf("invalid index range [%d, %d]", sweep.Start, sweep.Stop)
	}

	runId := shortRunId()
	seeds := NewSeedTable(d.config.SeedFile)
	var result *multierror.Error
	for index := sweep.Start; index <= sweep.Stop; index++ {
		if index > sweep.Start {
			d.clock.Sleep(d.config.Delay)
		}
		seed, err := seeds.Lookup(index)
		if err != nil {
			log.WithFields(log.Fields{"run": runId, "index": index}).Warnf("skipping submission: %s", err)
			result = multierror.Append(result, err)
			continue
		}
		job := &JobDescriptor{
			Name:    sweep.jobName(index),
			Command: sweep.jobCommand(d.config, seed),
		}
		if err := d.submit(ctx, runId, job, passThrough); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func (d *Dispatcher) submit(ctx context.Context, runId string, job *JobDescriptor, passThrough []string) error {
	// The echoed job name is the operator's per-iteration feedback.
	fmt.Fprintln(d.out, job.Name)

	response, err := d.submitter.Submit(ctx, &scheduler.JobSubmitRequest{
		JobName:        job.Name,
		OutputTemplate: job.Name + d.config.OutputSuffix,
		PassThrough:    passThrough,
		Command:        job.Command,
	})
	if err != nil {
		log.WithFields(log.Fields{"run": runId, "job": job.Name}).Warnf("submission failed: %s", err)
		return errors.Wrapf(err, "error submitting job %s", job.Name)
	}

	log.WithFields(log.Fields{"run": runId, "job": job.Name}).Infof("submitted job id: %s", response.JobId)
	return nil
}

func shortRunId() string {
	return uuid.New().String()[:8]
}
