package sweep

import (
	"github.com/pkg/errors"
)

// Specification is the file format consumed by `sweepctl run`: a list of
// sweeps dispatched in sequence, each either fixed-seed or index-ranged.
//
// Example sweeps.yaml:
//
//	sweeps:
//	  - fixed:
//	      loss: mse
//	      sampling: gaussian
//	      alpha: "0.5"
//	      numSamples: "10"
//	  - indexed:
//	      loss: mse
//	      sampling: gaussian
//	      problem: budgetalloc
//	      start: 1
//	      stop: 10
//	    passThrough: ["-p", "short"]
type Specification struct {
	Sweeps []SweepEntry `json:"sweeps"`
}

type SweepEntry struct {
	Fixed       *FixedSweepEntry   `json:"fixed,omitempty"`
	Indexed     *IndexedSweepEntry `json:"indexed,omitempty"`
	PassThrough []string           `json:"passThrough,omitempty"`
}

type FixedSweepEntry struct {
	Loss       string `json:"loss"`
	Sampling   string `json:"sampling"`
	Alpha      string `json:"alpha"`
	NumSamples string `json:"numSamples"`
}

type IndexedSweepEntry struct {
	Loss     string `json:"loss"`
	Sampling string `json:"sampling"`
	Problem  string `json:"problem"`
	Start    int    `json:"start"`
	Stop     int    `json:"stop"`
}

func (s *Specification) Validate() error {
	if len(s.Sweeps) == 0 {
		return errors.New("specification contains no sweeps")
	}
	for i, entry := range s.Sweeps {
		if entry.Fixed == nil && entry.Indexed == nil {
			return errors.Errorf("sweep %d: one of 'fixed' or 'indexed' must be set", i)
		}
		if entry.Fixed != nil && entry.Indexed != nil {
			return errors.Errorf("sweep %d: only one of 'fixed' or 'indexed' may be set", i)
		}
	}
	return nil
}
