package optimize

import (
	"math"
	"math/rand"

	"github.com/delta-quant/voltree/internal/rng"
)

const boundTol = 1e-9

// Objective is a function to be minimised over a D-dimensional box.
type Objective func(x []float64) float64

// Optimizer holds a fixed DE/rand/1/bin configuration: dimension,
// population size, mutation scale F, crossover rate CR, per-dimension
// bounds, the objective, and the one *rand.Rand it owns for its lifetime.
type Optimizer struct {
	d, n        int
	f, cr       float64
	lower       []float64
	upper       []float64
	objective   Objective
	source      *rand.Rand
}

// New validates its arguments and returns a ready-to-run Optimizer. seed
// fixes the RNG for bit-reproducible runs; seed==-1 seeds from a
// nondeterministic source instead (rng.New), so two Optimizers built with
// seed==-1 draw independent sequences.
func New(d, n int, f, cr float64, lower, upper []float64, objective Objective, seed int64) (*Optimizer, error) {
	if d < 1 {
		return nil, ErrInvalidDimension
	}
	if n < 4 {
		return nil, ErrInvalidPopulationSize
	}
	if f < -boundTol || f > 2+boundTol {
		return nil, ErrInvalidScale
	}
	if cr < -boundTol || cr > 1+boundTol {
		return nil, ErrInvalidCrossoverRate
	}
	if len(lower) != d || len(upper) != d {
		return nil, ErrBoundsLengthMismatch
	}
	for j := 0; j < d; j++ {
		if lower[j] > upper[j] {
			return nil, ErrInvertedBounds
		}
	}
	if objective == nil {
		return nil, ErrNilObjective
	}

	lowerCopy := append([]float64(nil), lower...)
	upperCopy := append([]float64(nil), upper...)

	return &Optimizer{
		d:         d,
		n:         n,
		f:         f,
		cr:        cr,
		lower:     lowerCopy,
		upper:     upperCopy,
		objective: objective,
		source:    rng.New(seed),
	}, nil
}

// Solve runs generations of mutation, crossover, and selection until the
// best objective value in the population falls at or below tolerance,
// then returns that best vector.
//
// Unlike the reference implementation, which recomputes f(target) for
// every member on every generation even though only a strict-improving
// trial can have changed it, Solve caches each target's objective value
// and only re-evaluates it when the corresponding trial replaces it.
func (o *Optimizer) Solve(tolerance float64) ([]float64, error) {
	target := o.initialTargets()
	values := make([]float64, o.n)
	for i := range target {
		values[i] = o.objective(target[i])
	}

	bestIdx := argmin(values)
	for values[bestIdx] > tolerance {
		donor := o.constructDonors(target)
		trial := o.constructTrials(target, donor)

		for i := range trial {
			tv := o.objective(trial[i])
			if tv < values[i] {
				target[i] = trial[i]
				values[i] = tv
			}
		}
		bestIdx = argmin(values)
	}

	best := append([]float64(nil), target[bestIdx]...)
	return best, nil
}

func argmin(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] < values[best] {
			best = i
		}
	}
	return best
}

func clamp(v, lower, upper float64) float64 {
	return math.Min(upper, math.Max(v, lower))
}
