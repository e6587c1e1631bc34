package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecificationValidate(t *testing.T) {
	tests := map[string]struct {
		spec          Specification
		errorExpected bool
	}{
		"empty": {
			spec:          Specification{},
			errorExpected: true,
		},
		"fixed only": {
			spec: Specification{Sweeps: []SweepEntry{
				{Fixed: &FixedSweepEntry{Loss: "mse", Sampling: "gaussian", Alpha: "0.5", NumSamples: "10"}},
			}},
			errorExpected: false,
		},
		"indexed only": {
			spec: Specification{Sweeps: []SweepEntry{
				{Indexed: &IndexedSweepEntry{Loss: "mse", Sampling: "gaussian", Problem: "budgetalloc", Start: 1, Stop: 3}},
			}},
			errorExpected: false,
		},
		"neither set": {
			spec:          Specification{Sweeps: []SweepEntry{{}}},
			errorExpected: true,
		},
		"both set": {
			spec: Specification{Sweeps: []SweepEntry{
				{
					Fixed:   &FixedSweepEntry{Loss: "mse"},
					Indexed: &IndexedSweepEntry{Loss: "mse"},
				},
			}},
			errorExpected: true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.spec.Validate()
			if tc.errorExpected {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
