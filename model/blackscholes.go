package model

import (
	"github.com/delta-quant/voltree/analytic"
	"github.com/delta-quant/voltree/dist"
	"github.com/delta-quant/voltree/option"
	"github.com/delta-quant/voltree/tree"
)

// BlackScholesParams are the five fields every model variant ultimately
// carries: cost of carry, discount rate, flat implied volatility, the
// initial underlying price, and an identifier for the underlying.
type BlackScholesParams struct {
	CostOfCarry    float64
	DiscountRate   float64
	Sigma          float64
	S0             float64
	UnderlyingCode string
}

func (p BlackScholesParams) validate() error {
	if p.Sigma <= 0 || p.S0 < 0 {
		return ErrInvalidInput
	}
	return nil
}

// BlackScholes is the plain log-normal diffusion model: no dividend, no
// jump. Its fields are unexported — construct it with NewBlackScholes so
// every field is validated before it reaches a tree builder.
type BlackScholes struct {
	params BlackScholesParams
}

// NewBlackScholes validates params and returns a ready-to-use model.
func NewBlackScholes(params BlackScholesParams) (BlackScholes, error) {
	if err := params.validate(); err != nil {
		return BlackScholes{}, err
	}
	return BlackScholes{params: params}, nil
}

func (m BlackScholes) ConstructTree(steps int, T float64, impl dist.Implementation, upperSD, lowerSD float64) (tree.Tree, error) {
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
		DividendTime: T + 1, // no dividend: push it past expiry
		Diffusion:    diffusion,
	})
}

func (m BlackScholes) SmoothedTerminalValue(s float64, o option.VanillaOption, dt float64) (float64, error) {
	return analytic.Price(s, o.Strike(), dt, m.params.DiscountRate, m.params.CostOfCarry, m.params.Sigma, o.Right())
}

func (m BlackScholes) SupportsSmoothing(tStart, tEnd float64) bool {
	return true
}

func (m BlackScholes) DiscountRate() float64   { return m.params.DiscountRate }
func (m BlackScholes) UnderlyingCode() string  { return m.params.UnderlyingCode }
func (m BlackScholes) CostOfCarry() float64    { return m.params.CostOfCarry }
func (m BlackScholes) Sigma() float64          { return m.params.Sigma }
func (m BlackScholes) InitialUnderlying() float64 { return m.params.S0 }
