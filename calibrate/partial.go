package calibrate

import (
	"github.com/delta-quant/voltree/model"
	"github.com/delta-quant/voltree/option"
	"github.com/delta-quant/voltree/optimize"
)

// Partial binds a single-jump model template and an observed-price batch
// for the 2-free-parameter calibration (sigma, jump volatility) of
// spec.md §4.7. Every other model field, including jump mean and timing,
// the dividend, and the underlying, is held fixed at Base's values.
type Partial struct {
	Base     model.SingleJumpParams
	Steps    int
	Options  []option.VanillaOption
	Observed []float64
}

// NewPartial validates that Options and Observed are aligned and returns a
// ready-to-use Partial.
func NewPartial(base model.SingleJumpParams, steps int, opts []option.VanillaOption, observed []float64) (*Partial, error) {
	if len(opts) != len(observed) {
		return nil, option.ErrInvalidInput
	}
	return &Partial{Base: base, Steps: steps, Options: opts, Observed: observed}, nil
}

// Objective returns the optimize.Objective closing over this calibration:
// x[0] is sigma, x[1] is the jump volatility.
func (p *Partial) Objective() optimize.Objective {
	return func(x []float64) float64 {
		params := p.Base
		params.Sigma = x[0]
		params.JumpVolatility = x[1]

		m, err := model.NewSingleJump(params)
		if err != nil {
			return positiveInf
		}
		return meanSquaredError(p.Steps, p.Options, p.Observed, m)
	}
}
