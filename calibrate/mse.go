package calibrate

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/delta-quant/voltree/dist"
	"github.com/delta-quant/voltree/model"
	"github.com/delta-quant/voltree/option"
	"github.com/delta-quant/voltree/pricer"
)

// calibrationImpl, the +-6 sigma truncation, and smoothing below are the
// fixed pricing configuration both adapters use (the step count is each
// adapter's Steps field), matching
// original_source/API/OptimiserAPI.cpp's hardcoded
// Implementation::One, 6.0, -6.0, smoothing=true calls.
const (
	calibrationImpl            = dist.CRR
	calibrationUpperSD         = 6.0
	calibrationLowerSD         = -6.0
	calibrationSmoothing       = true
)

// positiveInf is the sentinel an Objective returns when the free-parameter
// vector it was handed cannot even build a valid model (e.g. a DE-proposed
// negative sigma), per spec.md §5's "objective signals failure via +inf".
var positiveInf = math.Inf(1)

// meanSquaredError prices every option in opts against m via Richardson
// extrapolation and returns the mean squared deviation from observed. A
// pricing failure (e.g. ErrInvalidDiscretisation at too few steps) reports
// the large positive sentinel per spec.md's "objective signals failure by
// producing +inf" contract, so the optimiser never prefers this vector.
func meanSquaredError(steps int, opts []option.VanillaOption, observed []float64, m model.Model) float64 {
	priced, err := pricer.PriceWithRichardson(steps, opts, m, calibrationSmoothing, calibrationImpl, calibrationUpperSD, calibrationLowerSD)
	if err != nil {
		return math.Inf(1)
	}

	diff := make([]float64, len(priced))
	floats.SubTo(diff, priced, observed)
	sumSq := floats.Dot(diff, diff)
	return sumSq / float64(len(diff))
}
