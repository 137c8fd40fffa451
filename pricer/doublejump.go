package pricer

import (
	"gonum.org/v1/gonum/floats"

	"github.com/delta-quant/voltree/dist"
	"github.com/delta-quant/voltree/model"
	"github.com/delta-quant/voltree/option"
)

// PriceDoubleJumpBatch prices opts under a Bernoulli mixture of two
// single-jump models by pricing each component independently via
// PriceBatch and mixing the two price vectors by the mixture's weight:
// price = p*price1 + (1-p)*price2, per spec.md §3's "double-jump...
// Bernoulli mixing probability p".
func PriceDoubleJumpBatch(steps int, opts []option.VanillaOption, m model.DoubleJump, smoothing bool, impl dist.Implementation, upperSD, lowerSD float64) ([]float64, error) {
	one, two, probOne := m.Components()

	pricesOne, err := PriceBatch(steps, opts, one, smoothing, impl, upperSD, lowerSD)
	if err != nil {
		return nil, err
	}
	pricesTwo, err := PriceBatch(steps, opts, two, smoothing, impl, upperSD, lowerSD)
	if err != nil {
		return nil, err
	}

	return mixByBernoulli(pricesOne, pricesTwo, probOne), nil
}

// PriceDoubleJumpWithRichardson applies Richardson extrapolation to each
// component independently, then mixes the two extrapolated price vectors
// by the Bernoulli weight. Mixing and extrapolation commute here since both
// are linear combinations of per-component tree prices.
func PriceDoubleJumpWithRichardson(steps int, opts []option.VanillaOption, m model.DoubleJump, smoothing bool, impl dist.Implementation, upperSD, lowerSD float64) ([]float64, error) {
	one, two, probOne := m.Components()

	pricesOne, err := PriceWithRichardson(steps, opts, one, smoothing, impl, upperSD, lowerSD)
	if err != nil {
		return nil, err
	}
	pricesTwo, err := PriceWithRichardson(steps, opts, two, smoothing, impl, upperSD, lowerSD)
	if err != nil {
		return nil, err
	}

	return mixByBernoulli(pricesOne, pricesTwo, probOne), nil
}

// mixByBernoulli returns probOne*one + (1-probOne)*two, element-wise.
func mixByBernoulli(one, two []float64, probOne float64) []float64 {
	mixed := make([]float64, len(one))
	copy(mixed, one)
	floats.Scale(probOne, mixed)
	floats.AddScaled(mixed, 1-probOne, two)
	return mixed
}
