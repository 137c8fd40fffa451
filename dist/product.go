package dist

// Product forms the ten-atom jump-diffusion distribution as the Cartesian
// product of a five-atom Jump distribution and a two-atom Diffusion
// distribution. Atom log-multipliers add; probabilities multiply.
//
// Atoms are laid out with the jump index as the outer loop and the
// diffusion index as the inner loop, in the same order each input was
// constructed in (Jump descending mu+2*sigmaJ..mu-2*sigmaJ, Diffusion
// up-then-down). Index i of the result is therefore
// (i/diffusion.Len())-th jump atom combined with (i%diffusion.Len())-th
// diffusion atom. tree.Build relies on this ordering to align node
// successors; changing it is a breaking change to that contract.
func Product(jump, diffusion Discrete) Discrete {
	n := jump.Len() * diffusion.Len()
	values := make([]float64, 0, n)
	probs := make([]float64, 0, n)
	for j := 0; j < jump.Len(); j++ {
		for d := 0; d < diffusion.Len(); d++ {
			values = append(values, jump.Values[j]+diffusion.Values[d])
			probs = append(probs, jump.Probs[j]*diffusion.Probs[d])
		}
	}
	return Discrete{Values: values, Probs: probs}
}
