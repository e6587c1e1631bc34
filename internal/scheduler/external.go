package scheduler

import (
	"context"
	"os/exec"
	"strings"

	"github.com/avast/retry-go"
	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Details holds everything needed to invoke the external scheduler binary.
// The flag names are configurable so the same submitter covers sbatch
// (--job-name/--output) and qsub (-N/-o) style schedulers.
type Details struct {
	Scheduler     string
	SchedulerArgs string
	JobNameFlag   string
	OutputFlag    string
	Attempts      uint
}

type runFunc func(ctx context.Context, name string, args []string) ([]byte, error)

// ExternalSubmitter submits jobs by shelling out to the configured scheduler
// binary. The process runner is injectable so argv composition and failure
// handling can be tested without a real scheduler on the path.
type ExternalSubmitter struct {
	details *Details
	run     runFunc
}

func NewExternalSubmitter(details *Details) *ExternalSubmitter {
	return &ExternalSubmitter{details: details, run: runCommand}
}

func (s *ExternalSubmitter) Submit(ctx context.Context, req *JobSubmitRequest) (*JobSubmitResponse, error) {
	args, err := s.submissionArgs(req)
	if err != nil {
		return nil, err
	}

	attempts := s.details.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var out []byte
	err = retry.Do(
		func() error {
			var runErr error
			out, runErr = s.run(ctx, s.details.Scheduler, args)
			return runErr
		},
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warnf("retrying submission of job %s after attempt %d failed: %s", req.JobName, n+1, err)
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "error invoking scheduler %s for job %s", s.details.Scheduler, req.JobName)
	}

	return &JobSubmitResponse{JobId: parseJobId(out)}, nil
}

// submissionArgs composes the scheduler argv: configured extra args, then the
// caller's pass-through args, then the job-name and output-template flags,
// then the downstream command the scheduler is asked to run.
func (s *ExternalSubmitter) submissionArgs(req *JobSubmitRequest) ([]string, error) {
	extraArgs, err := shellquote.Split(s.details.SchedulerArgs)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing scheduler args %q", s.details.SchedulerArgs)
	}

	args := make([]string, 0, len(extraArgs)+len(req.PassThrough)+4+len(req.Command))
	args = append(args, extraArgs...)
	args = append(args, req.PassThrough...)
	args = append(args, s.details.JobNameFlag, req.JobName)
	args = append(args, s.details.OutputFlag, req.OutputTemplate)
	args = append(args, req.Command...)
	return args, nil
}

func runCommand(ctx context.Context, name string, args []string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
		return out, errors.Errorf("%s: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
	}
	return out, err
}

// parseJobId extracts the scheduler-assigned job id from the submission
// output. sbatch prints "Submitted batch job <id>" and qsub prints
// "<id>.<server>"; the last field of the first line covers both.
func parseJobId(out []byte) string {
	line := string(out)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
