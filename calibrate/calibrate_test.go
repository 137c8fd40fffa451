package calibrate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delta-quant/voltree/calibrate"
	"github.com/delta-quant/voltree/model"
	"github.com/delta-quant/voltree/option"
	"github.com/delta-quant/voltree/optimize"
)

func sjParams() model.SingleJumpParams {
	return model.SingleJumpParams{
		WithDividendParams: model.WithDividendParams{
			BlackScholesParams: model.BlackScholesParams{
				CostOfCarry:    0.03,
				DiscountRate:   0.06,
				Sigma:          0.1,
				S0:             100,
				UnderlyingCode: "BHP",
			},
			DividendTime:   10, // beyond T, i.e. inert for this batch
			DividendAmount: 0,
		},
		JumpTime:       7.0 / 365.0,
		JumpMean:       -0.1,
		JumpVolatility: 0.2,
	}
}

func singleOptionBatch(t *testing.T) ([]option.VanillaOption, []float64) {
	t.Helper()
	o, err := option.New(90, 0.4, option.European, option.Call, "BHP")
	require.NoError(t, err)
	return []option.VanillaOption{o}, []float64{15.0}
}

func TestNewPartial_RejectsBatchSizeMismatch(t *testing.T) {
	opts, _ := singleOptionBatch(t)
	_, err := calibrate.NewPartial(sjParams(), 10, opts, []float64{1, 2})
	assert.True(t, errors.Is(err, option.ErrInvalidInput))
}

func TestPartial_ObjectiveIsNonNegativeAndZeroAtExactMatch(t *testing.T) {
	opts, observed := singleOptionBatch(t)
	p, err := calibrate.NewPartial(sjParams(), 10, opts, observed)
	require.NoError(t, err)

	obj := p.Objective()
	v := obj([]float64{0.1, 0.2})
	assert.GreaterOrEqual(t, v, 0.0)

	// Re-pricing the same vector reproduces the observed price exactly,
	// so the MSE against itself is zero.
	selfObserved, err := calibrate.NewPartial(sjParams(), 10, opts, []float64{priceAt(t, sjParams(), 10, opts)})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, selfObserved.Objective()([]float64{0.1, 0.2}), 1e-9)
}

func priceAt(t *testing.T, base model.SingleJumpParams, steps int, opts []option.VanillaOption) float64 {
	t.Helper()
	p, err := calibrate.NewPartial(base, steps, opts, []float64{0})
	require.NoError(t, err)
	// Objective at the base's own (sigma, jumpVol) prices the option and
	// squares the deviation from the single zero observed; since the
	// deviation is (price-0)^2/1 = price^2, recover price via sqrt.
	mse := p.Objective()([]float64{base.Sigma, base.JumpVolatility})
	return math.Sqrt(mse)
}

func TestPartial_ObjectiveReturnsInfOnInvalidVector(t *testing.T) {
	opts, observed := singleOptionBatch(t)
	p, err := calibrate.NewPartial(sjParams(), 10, opts, observed)
	require.NoError(t, err)

	v := p.Objective()([]float64{-0.1, 0.2})
	assert.True(t, math.IsInf(v, 1))
}

func TestNewFull_RejectsBatchSizeMismatch(t *testing.T) {
	opts, _ := singleOptionBatch(t)
	_, err := calibrate.NewFull(100, "BHP", 10, 7.0/365.0, -0.1, 10, opts, []float64{1, 2})
	assert.True(t, errors.Is(err, option.ErrInvalidInput))
}

func TestFull_ObjectiveIsNonNegative(t *testing.T) {
	opts, observed := singleOptionBatch(t)
	f, err := calibrate.NewFull(100, "BHP", 10, 7.0/365.0, -0.1, 10, opts, observed)
	require.NoError(t, err)

	v := f.Objective()([]float64{0.03, 0.06, 0.1, 0.0, 0.2})
	assert.GreaterOrEqual(t, v, 0.0)
}

func TestFull_ObjectiveReturnsInfOnInvalidVector(t *testing.T) {
	opts, observed := singleOptionBatch(t)
	f, err := calibrate.NewFull(100, "BHP", 10, 7.0/365.0, -0.1, 10, opts, observed)
	require.NoError(t, err)

	v := f.Objective()([]float64{0.03, 0.06, -1, 0.0, 0.2})
	assert.True(t, math.IsInf(v, 1))
}

// TestPartial_DrivesOptimizerDownward is a scaled-down analogue of spec.md's
// S6 scenario (partial calibration of a single-jump model against one
// observed price): a small DE population run to tolerance should return a
// vector whose MSE against the observed price is below 1.
func TestPartial_DrivesOptimizerDownward(t *testing.T) {
	opts, _ := singleOptionBatch(t)
	target := sjParams()
	observedPrice := priceAt(t, target, 10, opts)

	p, err := calibrate.NewPartial(target, 10, opts, []float64{observedPrice})
	require.NoError(t, err)

	opt, err := optimize.New(2, 8, 0.5, 0.9,
		[]float64{0.05, 0.05}, []float64{0.3, 0.5},
		p.Objective(), 1)
	require.NoError(t, err)

	best, err := opt.Solve(1e-6)
	require.NoError(t, err)
	require.Len(t, best, 2)

	finalMSE := p.Objective()(best)
	assert.Less(t, finalMSE, 1.0)
}
