package pricer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delta-quant/voltree/dist"
	"github.com/delta-quant/voltree/model"
	"github.com/delta-quant/voltree/option"
	"github.com/delta-quant/voltree/pricer"
)

func doubleJumpModel(t *testing.T, prob float64) model.DoubleJump {
	t.Helper()
	m, err := model.NewDoubleJump(model.DoubleJumpParams{
		SingleJumpParams: model.SingleJumpParams{
			WithDividendParams: model.WithDividendParams{
				BlackScholesParams: model.BlackScholesParams{
					DiscountRate: 0.06, CostOfCarry: 0.03, Sigma: 0.1, S0: 100, UnderlyingCode: "BHP",
				},
				DividendTime:   10,
				DividendAmount: 0,
			},
			JumpTime:       7.0 / 365.0,
			JumpMean:       -0.1,
			JumpVolatility: 0.3,
		},
		JumpMean2:            0.1,
		JumpVolatility2:      0.2,
		BernoulliProbability: prob,
	})
	require.NoError(t, err)
	return m
}

func TestPriceDoubleJumpBatch_MixesComponentsByBernoulliWeight(t *testing.T) {
	m := doubleJumpModel(t, 0.4)
	one, two, prob := m.Components()
	require.InDelta(t, 0.4, prob, 1e-12)

	o, err := option.New(90, 0.4, option.European, option.Call, "BHP")
	require.NoError(t, err)
	opts := []option.VanillaOption{o}

	mixed, err := pricer.PriceDoubleJumpBatch(10, opts, m, false, dist.CRR, 6, -6)
	require.NoError(t, err)
	require.Len(t, mixed, 1)

	pricesOne, err := pricer.PriceBatch(10, opts, one, false, dist.CRR, 6, -6)
	require.NoError(t, err)
	pricesTwo, err := pricer.PriceBatch(10, opts, two, false, dist.CRR, 6, -6)
	require.NoError(t, err)

	want := prob*pricesOne[0] + (1-prob)*pricesTwo[0]
	assert.InDelta(t, want, mixed[0], 1e-9)
}

func TestPriceDoubleJumpBatch_DegenerateProbabilityMatchesSingleComponent(t *testing.T) {
	m := doubleJumpModel(t, 1.0)
	one, _, _ := m.Components()

	o, err := option.New(90, 0.4, option.European, option.Call, "BHP")
	require.NoError(t, err)
	opts := []option.VanillaOption{o}

	mixed, err := pricer.PriceDoubleJumpBatch(10, opts, m, false, dist.CRR, 6, -6)
	require.NoError(t, err)

	pricesOne, err := pricer.PriceBatch(10, opts, one, false, dist.CRR, 6, -6)
	require.NoError(t, err)
	assert.InDelta(t, pricesOne[0], mixed[0], 1e-9)
}

func TestPriceDoubleJumpWithRichardson_MatchesManualMixOfExtrapolatedComponents(t *testing.T) {
	m := doubleJumpModel(t, 0.7)
	one, two, prob := m.Components()

	o, err := option.New(90, 0.4, option.European, option.Call, "BHP")
	require.NoError(t, err)
	opts := []option.VanillaOption{o}

	mixed, err := pricer.PriceDoubleJumpWithRichardson(10, opts, m, true, dist.CRR, 6, -6)
	require.NoError(t, err)

	pricesOne, err := pricer.PriceWithRichardson(10, opts, one, true, dist.CRR, 6, -6)
	require.NoError(t, err)
	pricesTwo, err := pricer.PriceWithRichardson(10, opts, two, true, dist.CRR, 6, -6)
	require.NoError(t, err)

	want := prob*pricesOne[0] + (1-prob)*pricesTwo[0]
	assert.InDelta(t, want, mixed[0], 1e-9)
}
