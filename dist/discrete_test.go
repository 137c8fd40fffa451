package dist_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delta-quant/voltree/dist"
)

func TestDiscrete_Validate(t *testing.T) {
	cases := []struct {
		name    string
		d       dist.Discrete
		wantErr error
	}{
		{"valid", dist.Discrete{Values: []float64{1, -1}, Probs: []float64{0.5, 0.5}}, nil},
		{"length mismatch", dist.Discrete{Values: []float64{1, -1}, Probs: []float64{1}}, dist.ErrLengthMismatch},
		{"probs don't sum to 1", dist.Discrete{Values: []float64{1, -1}, Probs: []float64{0.4, 0.4}}, dist.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.d.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.wantErr))
		})
	}
}

func TestDiscrete_Len(t *testing.T) {
	d := dist.Discrete{Values: []float64{1, 2, 3}, Probs: []float64{0.2, 0.3, 0.5}}
	assert.Equal(t, 3, d.Len())
}
