package scheduler

import (
	"context"
)

// JobSubmitRequest describes one job handed to the external batch scheduler.
// PassThrough args are forwarded to the scheduler invocation verbatim and are
// never interpreted here. Command is the full downstream command line the
// scheduler runs (launcher, target program and its flags).
type JobSubmitRequest struct {
	JobName        string
	OutputTemplate string
	PassThrough    []string
	Command        []string
}

type JobSubmitResponse struct {
	// JobId is the scheduler-assigned id parsed from the submission output.
	JobId string
}

// Submitter is the single operation this tool needs from a batch scheduler.
// Submission is fire-and-forget: a nil error means the scheduler accepted the
// job, not that the job ran.
type Submitter interface {
	Submit(ctx context.Context, req *JobSubmitRequest) (*JobSubmitResponse, error)
}
