package pricer

import (
	"github.com/delta-quant/voltree/dist"
	"github.com/delta-quant/voltree/model"
	"github.com/delta-quant/voltree/option"
	"github.com/delta-quant/voltree/tree"
)

// PriceBatch prices every option in opts under m, discretising each
// distinct time to expiry into exactly one tree.Tree and reusing it across
// every option that shares that expiry.
func PriceBatch(steps int, opts []option.VanillaOption, m model.Model, smoothing bool, impl dist.Implementation, upperSD, lowerSD float64) ([]float64, error) {
	for _, o := range opts {
		if o.UnderlyingCode() != m.UnderlyingCode() {
			return nil, ErrUnderlyingMismatch
		}
	}

	trees := make(map[float64]tree.Tree, len(opts))
	for _, o := range opts {
		t := o.TimeToExpiry()
		if _, ok := trees[t]; ok {
			continue
		}
		built, err := m.ConstructTree(steps, t, impl, upperSD, lowerSD)
		if err != nil {
			return nil, err
		}
		trees[t] = built
	}

	prices := make([]float64, len(opts))
	for i, o := range opts {
		p, err := Price(trees[o.TimeToExpiry()], o, m, smoothing)
		if err != nil {
			return nil, err
		}
		prices[i] = p
	}
	return prices, nil
}
