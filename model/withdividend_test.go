package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delta-quant/voltree/dist"
	"github.com/delta-quant/voltree/model"
)

func TestWithDividend_SupportsSmoothing(t *testing.T) {
	m, err := model.NewWithDividend(model.WithDividendParams{
		BlackScholesParams: model.BlackScholesParams{DiscountRate: 0.05, Sigma: 0.2, S0: 100},
		DividendTime:       0.5,
		DividendAmount:     2,
	})
	require.NoError(t, err)

	assert.True(t, m.SupportsSmoothing(0.9, 1.0))  // dividend already behind the window
	assert.False(t, m.SupportsSmoothing(0.4, 0.6)) // dividend falls inside the window
}

func TestWithDividend_ConstructTree_DeductsValue(t *testing.T) {
	m, err := model.NewWithDividend(model.WithDividendParams{
		BlackScholesParams: model.BlackScholesParams{DiscountRate: 0.05, Sigma: 0.2, S0: 100},
		DividendTime:       0.05,
		DividendAmount:     2,
	})
	require.NoError(t, err)

	tr, err := m.ConstructTree(10, 1.0, dist.CRR, 6, -6)
	require.NoError(t, err)
	assert.Equal(t, 100.0, tr.Slices[0][0].Value) // root predates the dividend payment step
	// ceil(0.05/0.1) = 1: the up node of slice 1 carries the deduction.
	assert.InDelta(t, 100*math.Exp(0.2*math.Sqrt(0.1))-2, tr.Slices[1][0].Value, 1e-9)
}
