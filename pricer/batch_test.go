package pricer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delta-quant/voltree/dist"
	"github.com/delta-quant/voltree/option"
	"github.com/delta-quant/voltree/pricer"
)

func TestPriceBatch_SharesTreesByExpiry(t *testing.T) {
	m := bsModel(t)
	o1, err := option.New(90, 1, option.European, option.Call, "BHP")
	require.NoError(t, err)
	o2, err := option.New(110, 1, option.European, option.Put, "BHP")
	require.NoError(t, err)

	prices, err := pricer.PriceBatch(50, []option.VanillaOption{o1, o2}, m, false, dist.CRR, 6, -6)
	require.NoError(t, err)
	require.Len(t, prices, 2)
	assert.Greater(t, prices[0], 0.0)
	assert.Greater(t, prices[1], 0.0)
}

func TestPriceBatch_RejectsUnderlyingMismatch(t *testing.T) {
	m := bsModel(t)
	o, err := option.New(90, 1, option.European, option.Call, "OTHER")
	require.NoError(t, err)

	_, err = pricer.PriceBatch(50, []option.VanillaOption{o}, m, false, dist.CRR, 6, -6)
	assert.True(t, errors.Is(err, pricer.ErrUnderlyingMismatch))
}

func TestPriceWithRichardson_AveragesTwoStepCounts(t *testing.T) {
	m := bsModel(t)
	o, err := option.New(100, 1, option.European, option.Call, "BHP")
	require.NoError(t, err)

	prices, err := pricer.PriceWithRichardson(20, []option.VanillaOption{o}, m, false, dist.CRR, 6, -6)
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.InDelta(t, 10.45, prices[0], 0.2)
}
