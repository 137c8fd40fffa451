package pricer

import (
	"math"

	"github.com/delta-quant/voltree/model"
	"github.com/delta-quant/voltree/option"
	"github.com/delta-quant/voltree/tree"
)

// expiryTol is the slack allowed when comparing a tree's time to expiry
// against the option being priced on it.
const expiryTol = 1e-7

// Price walks tr backward from its terminal slice, applying o's early-
// exercise rule at every node, and returns the value at the root.
//
// Two rolling buffers hold the option value at the current and next time
// slice; they are swapped by reference each iteration rather than
// reallocated, mirroring the two-row rolling memory mode used elsewhere in
// this module for bounded dynamic-programming sweeps.
func Price(tr tree.Tree, o option.VanillaOption, m model.Model, smoothing bool) (float64, error) {
	if math.Abs(tr.TimeToExpiry-o.TimeToExpiry()) > expiryTol {
		return 0, ErrExpiryMismatch
	}

	dt := tr.TimeStep()
	maxLen := 0
	for _, slice := range tr.Slices {
		if len(slice) > maxLen {
			maxLen = len(slice)
		}
	}
	bufA := make([]float64, maxLen)
	bufB := make([]float64, maxLen)
	future, current := bufA, bufB

	for i := tr.NumSteps - 1; i >= 0; i-- {
		currentNodes := tr.Slices[i]
		useSmoothing := smoothing && m.SupportsSmoothing(dt*float64(i), dt*float64(i+1))

		if i == tr.NumSteps-1 && !useSmoothing {
			futureNodes := tr.Slices[i+1]
			future = future[:len(futureNodes)]
			for j, n := range futureNodes {
				future[j] = o.IntrinsicValue(n.Value)
			}
		}

		current = current[:len(currentNodes)]
		if i == tr.NumSteps-1 && useSmoothing {
			for j, n := range currentNodes {
				smoothed, err := m.SmoothedTerminalValue(n.Value, o, dt)
				if err != nil {
					return 0, err
				}
				v, err := o.ValueAtNode(smoothed, n.Value)
				if err != nil {
					return 0, err
				}
				current[j] = v
			}
		} else {
			discount := math.Exp(-m.DiscountRate() * dt)
			for j, n := range currentNodes {
				continuation := 0.0
				for k, idx := range n.Forward {
					continuation += n.Prob[k] * future[idx]
				}
				continuation *= discount
				v, err := o.ValueAtNode(continuation, n.Value)
				if err != nil {
					return 0, err
				}
				current[j] = v
			}
		}

		future, current = current, future
	}

	return future[0], nil
}
