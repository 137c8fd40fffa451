package calibrate

import (
	"github.com/delta-quant/voltree/model"
	"github.com/delta-quant/voltree/option"
	"github.com/delta-quant/voltree/optimize"
)

// Full binds the fixed single-jump model inputs (S0, dividend time, jump
// time, jump mean, underlying code) and an observed-price batch for the
// 5-free-parameter calibration (q, r, sigma, dividend amount, jump
// volatility) of spec.md §4.7.
type Full struct {
	S0             float64
	UnderlyingCode string
	DividendTime   float64
	JumpTime       float64
	JumpMean       float64
	Steps          int
	Options        []option.VanillaOption
	Observed       []float64
}

// NewFull validates that Options and Observed are aligned and returns a
// ready-to-use Full.
func NewFull(s0 float64, underlyingCode string, dividendTime, jumpTime, jumpMean float64, steps int, opts []option.VanillaOption, observed []float64) (*Full, error) {
	if len(opts) != len(observed) {
		return nil, option.ErrInvalidInput
	}
	return &Full{
		S0:             s0,
		UnderlyingCode: underlyingCode,
		DividendTime:   dividendTime,
		JumpTime:       jumpTime,
		JumpMean:       jumpMean,
		Steps:          steps,
		Options:        opts,
		Observed:       observed,
	}, nil
}

// Objective returns the optimize.Objective closing over this calibration:
// x = (cost of carry, discount rate, sigma, dividend amount, jump
// volatility), in that order.
func (f *Full) Objective() optimize.Objective {
	return func(x []float64) float64 {
		params := model.SingleJumpParams{
			WithDividendParams: model.WithDividendParams{
				BlackScholesParams: model.BlackScholesParams{
					CostOfCarry:    x[0],
					DiscountRate:   x[1],
					Sigma:          x[2],
					S0:             f.S0,
					UnderlyingCode: f.UnderlyingCode,
				},
				DividendTime:   f.DividendTime,
				DividendAmount: x[3],
			},
			JumpTime:       f.JumpTime,
			JumpMean:       f.JumpMean,
			JumpVolatility: x[4],
		}

		m, err := model.NewSingleJump(params)
		if err != nil {
			return positiveInf
		}
		return meanSquaredError(f.Steps, f.Options, f.Observed, m)
	}
}
