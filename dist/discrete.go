package dist

import "math"

// probSumTol is the slack allowed when checking that probabilities sum to 1.
const probSumTol = 1e-9

// Discrete is a pair of aligned sequences: Values[i] occurs with probability
// Probs[i]. It is immutable after construction and safe to share by
// reference across every time slice of a tree build.
type Discrete struct {
	Values []float64
	Probs  []float64
}

// Validate checks that Values and Probs are aligned and that Probs sums to 1
// within probSumTol.
func (d Discrete) Validate() error {
	if len(d.Values) != len(d.Probs) {
		return ErrLengthMismatch
	}
	sum := 0.0
	for _, p := range d.Probs {
		sum += p
	}
	if math.Abs(sum-1.0) > probSumTol {
		return ErrInvalidInput
	}
	return nil
}

// Len returns the number of atoms in the distribution.
func (d Discrete) Len() int { return len(d.Values) }
