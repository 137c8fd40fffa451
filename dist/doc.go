// Package dist computes the discrete probability distributions that drive a
// single binomial time step: the two-atom log-normal diffusion step (CRR or
// Tian), the five-atom moment-matched normal jump, and their ten-atom
// Cartesian product.
//
// A Discrete value is immutable and safe to share by reference across every
// slice of a tree build — it is computed once per tree and never mutated.
// Consumers (tree.Build) index into Discrete.Values/Probs positionally, so
// the ordering documented on Product is part of this package's contract, not
// an implementation detail.
package dist
