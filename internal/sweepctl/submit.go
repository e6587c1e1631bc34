package sweepctl

import (
	"context"

	"github.com/sweepproject/sweep/internal/sweep"
)

// SubmitFixedSweep dispatches one job per seed of the fixed seed set.
func (a *App) SubmitFixedSweep(fixed sweep.FixedSweep, passThrough []string) error {
	return a.dispatcher().RunFixed(context.Background(), fixed, passThrough)
}

// SubmitIndexedSweep dispatches one job per index in the sweep's inclusive
// range, resolving seeds from the configured seed file.
func (a *App) SubmitIndexedSweep(indexed sweep.IndexedSweep, passThrough []string) error {
	return a.dispatcher().RunIndexed(context.Background(), indexed, passThrough)
}
