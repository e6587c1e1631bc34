package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() *JobSubmitRequest {
	return &JobSubmitRequest{
		JobName:        "budgetalloc-x2-mse-gaussian(1)",
		OutputTemplate: "budgetalloc-x2-mse-gaussian(1)-%j.out",
		PassThrough:    []string{"-p", "short"},
		Command:        []string{"scripts/launch.sh", "main.py", "--seed", "111"},
	}
}

func TestSubmitComposesSchedulerInvocation(t *testing.T) {
	var gotName string
	var gotArgs []string
	submitter := &ExternalSubmitter{
		details: &Details{
			Scheduler:     "sbatch",
			SchedulerArgs: "--qos normal",
			JobNameFlag:   "--job-name",
			OutputFlag:    "--output",
		},
		run: func(ctx context.Context, name string, args []string) ([]byte, error) {
			gotName = name
			gotArgs = args
			return []byte("Submitted batch job 12345\n"), nil
		},
	}

	response, err := submitter.Submit(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "sbatch", gotName)
	assert.Equal(t, []string{
		"--qos", "normal",
		"-p", "short",
		"--job-name", "budgetalloc-x2-mse-gaussian(1)",
		"--output", "budgetalloc-x2-mse-gaussian(1)-%j.out",
		"scripts/launch.sh", "main.py", "--seed", "111",
	}, gotArgs)
	assert.Equal(t, "12345", response.JobId)
}

func TestSubmitQsubStyleFlags(t *testing.T) {
	var gotArgs []string
	submitter := &ExternalSubmitter{
		details: &Details{
			Scheduler:   "qsub",
			JobNameFlag: "-N",
			OutputFlag:  "-o",
		},
		run: func(ctx context.Context, name string, args []string) ([]byte, error) {
			gotArgs = args
			return []byte("67890.pbsserver\n"), nil
		},
	}

	req := testRequest()
	req.PassThrough = nil
	response, err := submitter.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"-N", "budgetalloc-x2-mse-gaussian(1)",
		"-o", "budgetalloc-x2-mse-gaussian(1)-%j.out",
		"scripts/launch.sh", "main.py", "--seed", "111",
	}, gotArgs)
	assert.Equal(t, "67890.pbsserver", response.JobId)
}

func TestSubmitReturnsSchedulerError(t *testing.T) {
	calls := 0
	submitter := &ExternalSubmitter{
		details: &Details{Scheduler: "sbatch", JobNameFlag: "--job-name", OutputFlag: "--output"},
		run: func(ctx context.Context, name string, args []string) ([]byte, error) {
			calls++
			return nil, errors.New("connection refused")
		},
	}

	_, err := submitter.Submit(context.Background(), testRequest())

	assert.ErrorContains(t, err, "connection refused")
	assert.ErrorContains(t, err, "budgetalloc-x2-mse-gaussian(1)")
	assert.Equal(t, 1, calls, "a single attempt is the default")
}

func TestSubmitRetriesUpToConfiguredAttempts(t *testing.T) {
	calls := 0
	submitter := &ExternalSubmitter{
		details: &Details{Scheduler: "sbatch", JobNameFlag: "--job-name", OutputFlag: "--output", Attempts: 3},
		run: func(ctx context.Context, name string, args []string) ([]byte, error) {
			calls++
			if calls < 3 {
				return nil, errors.New("connection refused")
			}
			return []byte("Submitted batch job 7\n"), nil
		},
	}

	response, err := submitter.Submit(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, 3, calls)
	assert.Equal(t, "7", response.JobId)
}

func TestSubmitRejectsMalformedSchedulerArgs(t *testing.T) {
	submitter := &ExternalSubmitter{
		details: &Details{Scheduler: "sbatch", SchedulerArgs: "'unterminated", JobNameFlag: "--job-name", OutputFlag: "--output"},
		run: func(ctx context.Context, name string, args []string) ([]byte, error) {
			t.Fatal("scheduler should not be invoked")
			return nil, nil
		},
	}

	_, err := submitter.Submit(context.Background(), testRequest())
	assert.ErrorContains(t, err, "error parsing scheduler args")
}

func TestParseJobId(t *testing.T) {
	tests := map[string]struct {
		out      string
		expected string
	}{
		"sbatch":      {out: "Submitted batch job 12345\n", expected: "12345"},
		"qsub":        {out: "67890.pbsserver\n", expected: "67890.pbsserver"},
		"extra lines": {out: "Submitted batch job 1\nsome warning\n", expected: "1"},
		"empty":       {out: "", expected: ""},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseJobId([]byte(tc.out)))
		})
	}
}
