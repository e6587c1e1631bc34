package sweepctl

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/sweepproject/sweep/internal/sweep"
	"github.com/sweepproject/sweep/internal/sweepctl/util"
)

// RunSpecification dispatches every sweep listed in a specification file, in
// order. A failed sweep does not stop the ones after it; the aggregate error
// is returned once all have been attempted.
func (a *App) RunSpecification(fileName string) error {
	spec := &sweep.Specification{}
	if err := util.BindJsonOrYaml(fileName, spec); err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return errors.Wrapf(err, "file %s error", fileName)
	}

	ctx := context.Background()
	dispatcher := a.dispatcher()

	var result *multierror.Error
	for _, entry := range spec.Sweeps {
		var err error
		switch {
		case entry.Fixed != nil:
			err = dispatcher.RunFixed(ctx, sweep.FixedSweep{
				Loss:       entry.Fixed.Loss,
				Sampling:   entry.Fixed.Sampling,
				Alpha:      entry.Fixed.Alpha,
				NumSamples: entry.Fixed.NumSamples,
			}, entry.PassThrough)
		case entry.Indexed != nil:
			err = dispatcher.RunIndexed(ctx, sweep.IndexedSweep{
				Loss:     entry.Indexed.Loss,
				Sampling: entry.Indexed.Sampling,
				Problem:  entry.Indexed.Problem,
				Start:    entry.Indexed.Start,
				Stop:     entry.Indexed.Stop,
			}, entry.PassThrough)
		}
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
