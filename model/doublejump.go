package model

import (
	"github.com/delta-quant/voltree/analytic"
	"github.com/delta-quant/voltree/dist"
	"github.com/delta-quant/voltree/option"
	"github.com/delta-quant/voltree/tree"
)

// DoubleJumpParams describes a Bernoulli mixture of two single-jump
// components, both occurring at the same jump time and sharing the same
// market parameters, but with independently specified jump distributions.
// BernoulliProbability is the probability the first component's jump fires
// (the second fires with its complement).
type DoubleJumpParams struct {
	SingleJumpParams
	JumpMean2            float64
	JumpVolatility2      float64
	BernoulliProbability float64
}

func (p DoubleJumpParams) validate() error {
	if err := p.SingleJumpParams.validate(); err != nil {
		return err
	}
	if p.JumpVolatility2 <= 0 {
		return ErrInvalidInput
	}
	if p.BernoulliProbability < 0 || p.BernoulliProbability > 1 {
		return ErrInvalidInput
	}
	return nil
}

// DoubleJump is never priced by constructing a single tree: a mixture of
// two jump distributions is not itself a valid jump-diffusion tree, only a
// weighted average of two trees' prices. ConstructTree therefore always
// fails with ErrUnsupportedOperation — genuine pricing goes through
// Components, whose two single-jump models pricer.PriceDoubleJumpBatch /
// PriceDoubleJumpWithRichardson price independently and combine by the
// Bernoulli weight.
type DoubleJump struct {
	params DoubleJumpParams
}

// NewDoubleJump validates params and returns a ready-to-use model.
func NewDoubleJump(params DoubleJumpParams) (DoubleJump, error) {
	if err := params.validate(); err != nil {
		return DoubleJump{}, err
	}
	return DoubleJump{params: params}, nil
}

// Components returns the two single-jump models the mixture is built from,
// plus the probability weight on the first.
func (m DoubleJump) Components() (one, two SingleJump, probOne float64) {
	one = SingleJump{params: m.params.SingleJumpParams}

	twoParams := m.params.SingleJumpParams
	twoParams.JumpMean = m.params.JumpMean2
	twoParams.JumpVolatility = m.params.JumpVolatility2
	two = SingleJump{params: twoParams}

	return one, two, m.params.BernoulliProbability
}

// ConstructTree always returns ErrUnsupportedOperation: see the DoubleJump
// doc comment. Use pricer.PriceDoubleJumpBatch / PriceDoubleJumpWithRichardson
// instead, which price Components() independently and mix by the Bernoulli
// weight rather than collapsing to a single component's lattice.
func (m DoubleJump) ConstructTree(steps int, T float64, impl dist.Implementation, upperSD, lowerSD float64) (tree.Tree, error) {
	return tree.Tree{}, ErrUnsupportedOperation
}

func (m DoubleJump) SmoothedTerminalValue(s float64, o option.VanillaOption, dt float64) (float64, error) {
	return analytic.Price(s, o.Strike(), dt, m.params.DiscountRate, m.params.CostOfCarry, m.params.Sigma, o.Right())
}

func (m DoubleJump) SupportsSmoothing(tStart, tEnd float64) bool {
	one, _, _ := m.Components()
	return one.SupportsSmoothing(tStart, tEnd)
}

func (m DoubleJump) DiscountRate() float64  { return m.params.DiscountRate }
func (m DoubleJump) UnderlyingCode() string { return m.params.UnderlyingCode }
