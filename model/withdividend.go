package model

import (
	"github.com/delta-quant/voltree/analytic"
	"github.com/delta-quant/voltree/dist"
	"github.com/delta-quant/voltree/option"
	"github.com/delta-quant/voltree/tree"
)

// WithDividendParams adds a single discrete dividend to BlackScholesParams.
type WithDividendParams struct {
	BlackScholesParams
	DividendTime   float64
	DividendAmount float64
}

func (p WithDividendParams) validate() error {
	if err := p.BlackScholesParams.validate(); err != nil {
		return err
	}
	if p.DividendTime < 0 || p.DividendAmount < 0 {
		return ErrInvalidInput
	}
	return nil
}

// WithDividend is BlackScholes plus one known-time, known-amount cash
// dividend deducted from the tree after construction.
type WithDividend struct {
	params WithDividendParams
}

// NewWithDividend validates params and returns a ready-to-use model.
func NewWithDividend(params WithDividendParams) (WithDividend, error) {
	if err := params.validate(); err != nil {
		return WithDividend{}, err
	}
	return WithDividend{params: params}, nil
}

func (m WithDividend) ConstructTree(steps int, T float64, impl dist.Implementation, upperSD, lowerSD float64) (tree.Tree, error) {
	dt := T / float64(steps)
	diffusion, err := dist.Diffusion(dt, m.params.Sigma, m.params.DiscountRate, m.params.CostOfCarry, impl)
	if err != nil {
		return tree.Tree{}, err
	}
	return tree.Build(tree.BuildParams{
		S0:           m.params.S0,
		NumSteps:     steps,
		TimeToExpiry: T,
		Sigma:        m.params.Sigma,
		UpperSD:      upperSD,
		LowerSD:      lowerSD,
		DividendTime: m.params.DividendTime,
		Dividend:     m.params.DividendAmount,
		Diffusion:    diffusion,
	})
}

func (m WithDividend) SmoothedTerminalValue(s float64, o option.VanillaOption, dt float64) (float64, error) {
	return analytic.Price(s, o.Strike(), dt, m.params.DiscountRate, m.params.CostOfCarry, m.params.Sigma, o.Right())
}

// SupportsSmoothing is false whenever the dividend falls inside the
// terminal window: the analytic Black-Scholes formula doesn't know about
// the discrete cash payment, so smoothing would silently mis-price the
// last step.
func (m WithDividend) SupportsSmoothing(tStart, tEnd float64) bool {
	return m.params.DividendTime <= tStart || m.params.DividendTime > tEnd
}

func (m WithDividend) DiscountRate() float64  { return m.params.DiscountRate }
func (m WithDividend) UnderlyingCode() string { return m.params.UnderlyingCode }
