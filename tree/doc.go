// Package tree stores and constructs the discrete-time lattice a pricer
// walks backward over: Node values plus the forward indices and
// probabilities connecting each node to its successors at the next time
// slice.
//
// Build produces a pure-diffusion recombining tree, truncated to
// [lowerLimit, upperLimit] standard deviations of the underlying's move and
// rewritten at the zero-absorbing boundary, or — when a jump distribution is
// supplied — a tree that stays recombining until the jump time, fans out to
// every jump-diffusion atom for exactly one step, and branches without
// recombining (two children per node) for the remaining diffusion-only
// steps. Both paths deduct a single discrete
// dividend in one final pass over every node at or after the dividend time.
package tree
