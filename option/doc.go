// Package option defines the immutable VanillaOption contract: strike, time
// to expiry, exercise style, right, and the underlying it is written on.
//
// A VanillaOption never mutates after construction — New validates every
// field eagerly and returns an error rather than a half-built value. The
// payoff convention is max(0, phi*(S-K)) with phi=+1 for a call, -1 for a
// put; early exercise (ValueAtNode) is the one piece of exercise-style logic
// a tree pricer needs from this package.
package option
