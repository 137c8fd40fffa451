package pricer

import (
	"gonum.org/v1/gonum/floats"

	"github.com/delta-quant/voltree/dist"
	"github.com/delta-quant/voltree/model"
	"github.com/delta-quant/voltree/option"
)

// PriceWithRichardson prices opts twice — once with steps discretisation
// steps, once with 2*steps — and returns the average of the two batches,
// cancelling the O(dt) bias a binomial tree carries at any fixed step
// count.
func PriceWithRichardson(steps int, opts []option.VanillaOption, m model.Model, smoothing bool, impl dist.Implementation, upperSD, lowerSD float64) ([]float64, error) {
	coarse, err := PriceBatch(steps, opts, m, smoothing, impl, upperSD, lowerSD)
	if err != nil {
		return nil, err
	}
	fine, err := PriceBatch(2*steps, opts, m, smoothing, impl, upperSD, lowerSD)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(coarse))
	floats.AddTo(out, coarse, fine)
	floats.Scale(0.5, out)
	return out, nil
}
