package dist

// jumpWeights are the moment-matched weights for the five-atom discrete
// approximation to a normal jump, reproducing the first four moments of
// N(mu, sigmaJ^2): {1/12, 1/6, 1/2, 1/6, 1/12} per spec.md §4.1.
var jumpWeights = [5]float64{1.0 / 12, 1.0 / 6, 1.0 / 2, 1.0 / 6, 1.0 / 12}

// Jump returns the five-atom distribution approximating a normal jump with
// mean mu and volatility sigmaJ. Atoms are ordered mu+2*sigmaJ, mu+sigmaJ,
// mu, mu-sigmaJ, mu-2*sigmaJ — the descending order the jump-diffusion
// Cartesian product in Product relies on.
func Jump(mu, sigmaJ float64) Discrete {
	values := make([]float64, 5)
	probs := make([]float64, 5)
	for i, j := 0, 2; j >= -2; i, j = i+1, j-1 {
		values[i] = mu + float64(j)*sigmaJ
		probs[i] = jumpWeights[i]
	}
	return Discrete{Values: values, Probs: probs}
}
