package analytic

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/delta-quant/voltree/option"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// Price returns the Black-Scholes value of a European vanilla option on an
// underlying priced at s, with cost of carry q, discount rate r, implied
// volatility sigma, strike k, time to expiry t, and payoff right.
func Price(s, k, t, r, q, sigma float64, right option.Right) (float64, error) {
	if s <= 0 || k <= 0 || t <= 0 || sigma <= 0 {
		return 0, ErrInvalidInput
	}

	sqrtT := math.Sqrt(t)
	d1 := (math.Log(s/k) + (r-q+0.5*sigma*sigma)*t) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT

	carryFactor := s * math.Exp(-q*t)
	discountFactor := k * math.Exp(-r*t)

	switch right {
	case option.Call:
		return carryFactor*stdNormal.CDF(d1) - discountFactor*stdNormal.CDF(d2), nil
	case option.Put:
		return discountFactor*stdNormal.CDF(-d2) - carryFactor*stdNormal.CDF(-d1), nil
	default:
		return 0, ErrInvalidInput
	}
}
