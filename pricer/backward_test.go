package pricer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delta-quant/voltree/dist"
	"github.com/delta-quant/voltree/model"
	"github.com/delta-quant/voltree/option"
	"github.com/delta-quant/voltree/pricer"
)

func bsModel(t *testing.T) model.BlackScholes {
	t.Helper()
	m, err := model.NewBlackScholes(model.BlackScholesParams{
		DiscountRate:   0.05,
		Sigma:          0.2,
		S0:             100,
		UnderlyingCode: "BHP",
	})
	require.NoError(t, err)
	return m
}

func TestPrice_EuropeanMatchesAnalyticRoughly(t *testing.T) {
	m := bsModel(t)
	o, err := option.New(100, 1, option.European, option.Call, "BHP")
	require.NoError(t, err)

	tr, err := m.ConstructTree(200, 1.0, dist.CRR, 6, -6)
	require.NoError(t, err)

	p, err := pricer.Price(tr, o, m, false)
	require.NoError(t, err)
	// Black-Scholes(100,100,1,0.05,0,0.2) call ~= 10.45
	assert.InDelta(t, 10.45, p, 0.1)
}

func TestPrice_AmericanAtLeastEuropean(t *testing.T) {
	m := bsModel(t)
	euro, err := option.New(100, 1, option.European, option.Put, "BHP")
	require.NoError(t, err)
	amer, err := option.New(100, 1, option.American, option.Put, "BHP")
	require.NoError(t, err)

	tr, err := m.ConstructTree(100, 1.0, dist.CRR, 6, -6)
	require.NoError(t, err)

	pe, err := pricer.Price(tr, euro, m, false)
	require.NoError(t, err)
	pa, err := pricer.Price(tr, amer, m, false)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pa, pe)
}

func TestPrice_RejectsExpiryMismatch(t *testing.T) {
	m := bsModel(t)
	tr, err := m.ConstructTree(10, 1.0, dist.CRR, 6, -6)
	require.NoError(t, err)
	o, err := option.New(100, 2.0, option.European, option.Call, "BHP")
	require.NoError(t, err)

	_, err = pricer.Price(tr, o, m, false)
	assert.True(t, errors.Is(err, pricer.ErrExpiryMismatch))
}

func TestPrice_SmoothingProducesAFinitePositivePrice(t *testing.T) {
	m := bsModel(t)
	o, err := option.New(100, 1, option.European, option.Call, "BHP")
	require.NoError(t, err)

	tr, err := m.ConstructTree(4, 1.0, dist.CRR, 6, -6)
	require.NoError(t, err)

	smoothed, err := pricer.Price(tr, o, m, true)
	require.NoError(t, err)
	assert.Greater(t, smoothed, 0.0)
	assert.Less(t, smoothed, 100.0)
}
