package model

import (
	"github.com/delta-quant/voltree/analytic"
	"github.com/delta-quant/voltree/dist"
	"github.com/delta-quant/voltree/option"
	"github.com/delta-quant/voltree/tree"
)

// SingleJumpParams adds one instantaneous log-normal jump, occurring at a
// known time with a known moment-matched distribution, to WithDividendParams.
type SingleJumpParams struct {
	WithDividendParams
	JumpTime       float64
	JumpMean       float64
	JumpVolatility float64
}

func (p SingleJumpParams) validate() error {
	if err := p.WithDividendParams.validate(); err != nil {
		return err
	}
	if p.JumpVolatility <= 0 || p.JumpTime < 0 {
		return ErrInvalidInput
	}
	return nil
}

// SingleJump is WithDividend plus one jump-diffusion event: the tree
// recombines up to JumpTime, fans out across the ten-atom jump-diffusion
// product for exactly the step spanning it, then branches without
// recombining for every later step.
type SingleJump struct {
	params SingleJumpParams
}

// NewSingleJump validates params and returns a ready-to-use model.
func NewSingleJump(params SingleJumpParams) (SingleJump, error) {
	if err := params.validate(); err != nil {
		return SingleJump{}, err
	}
	return SingleJump{params: params}, nil
}

func (m SingleJump) ConstructTree(steps int, T float64, impl dist.Implementation, upperSD, lowerSD float64) (tree.Tree, error) {
	dt := T / float64(steps)
	diffusion, err := dist.Diffusion(dt, m.params.Sigma, m.params.DiscountRate, m.params.CostOfCarry, impl)
	if err != nil {
		return tree.Tree{}, err
	}
	jump := dist.Jump(m.params.JumpMean, m.params.JumpVolatility)
	jumpDiffusion := dist.Product(jump, diffusion)

	return tree.Build(tree.BuildParams{
		S0:            m.params.S0,
		NumSteps:      steps,
		TimeToExpiry:  T,
		Sigma:         m.params.Sigma,
		UpperSD:       upperSD,
		LowerSD:       lowerSD,
		DividendTime:  m.params.DividendTime,
		Dividend:      m.params.DividendAmount,
		Diffusion:     diffusion,
		Jump:          &jump,
		JumpTime:      m.params.JumpTime,
		JumpDiffusion: jumpDiffusion,
	})
}

// SmoothedTerminalValue falls back to the pure-diffusion Black-Scholes
// formula: SupportsSmoothing returns false across any window containing the
// jump, so this is only ever called where the jump cannot have contributed.
func (m SingleJump) SmoothedTerminalValue(s float64, o option.VanillaOption, dt float64) (float64, error) {
	return analytic.Price(s, o.Strike(), dt, m.params.DiscountRate, m.params.CostOfCarry, m.params.Sigma, o.Right())
}

func (m SingleJump) SupportsSmoothing(tStart, tEnd float64) bool {
	dividendInWindow := m.params.DividendTime > tStart && m.params.DividendTime <= tEnd
	jumpInWindow := m.params.JumpTime > tStart && m.params.JumpTime <= tEnd
	return !dividendInWindow && !jumpInWindow
}

func (m SingleJump) DiscountRate() float64  { return m.params.DiscountRate }
func (m SingleJump) UnderlyingCode() string { return m.params.UnderlyingCode }
func (m SingleJump) JumpMean() float64      { return m.params.JumpMean }
func (m SingleJump) JumpVolatility() float64 { return m.params.JumpVolatility }
