package scheduler

import (
	"context"
	"strconv"
)

// FakeSubmitter records every submission it receives. Fail, when set, is
// consulted per request so tests can make individual submissions fail.
type FakeSubmitter struct {
	Requests []*JobSubmitRequest
	Fail     func(req *JobSubmitRequest) error
}

func (f *FakeSubmitter) Submit(ctx context.Context, req *JobSubmitRequest) (*JobSubmitResponse, error) {
	f.Requests = append(f.Requests, req)
	if f.Fail != nil {
		if err := f.Fail(req); err != nil {
			return nil, err
		}
	}
	return &JobSubmitResponse{JobId: strconv.Itoa(len(f.Requests))}, nil
}
