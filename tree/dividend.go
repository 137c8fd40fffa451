package tree

import "math"

// deductDividend subtracts dividendAmount from every node's value at or
// after the time step the dividend is paid in, flooring at zero. It is the
// one place a single discrete dividend is actually applied to node values;
// the builders themselves only enforce the zero-absorbing boundary ahead of
// time so the lattice doesn't keep branching from an already-dead path.
func deductDividend(slices [][]Node, dividendTime, dividendAmount, timeToExpiry, dt float64, numSteps int) {
	if dividendTime > timeToExpiry+zeroFloor {
		return
	}
	paymentStep := int(math.Ceil(dividendTime / dt))
	for i := paymentStep; i <= numSteps; i++ {
		for j := range slices[i] {
			slices[i][j] = slices[i][j].SetValue(math.Max(0, slices[i][j].Value-dividendAmount))
		}
	}
}
