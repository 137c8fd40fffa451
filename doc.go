// Package voltree implements the computational core of a vanilla-option
// pricing and calibration engine: a recombining/non-recombining binomial
// tree over a family of log-normal diffusion models (plain, with a single
// discrete dividend, with a single log-normal jump, with a Bernoulli
// mixture of two jumps), a backward-induction pricer with early-exercise
// enforcement and terminal smoothing, Richardson extrapolation across two
// step-count granularities, and a differential-evolution calibrator.
//
// Everything under this root is organized by concern, one package per
// component:
//
//	option/     VanillaOption value type and payoff/exercise logic
//	analytic/   Black-Scholes closed form (the smoothing dependency)
//	dist/       diffusion/jump discretisation and their Cartesian product
//	tree/       time-sliced node store and the forward tree builder
//	model/      BlackScholes/WithDividend/SingleJump/DoubleJump variants
//	pricer/     backward induction, batch pricing, Richardson extrapolation
//	optimize/   DE/rand/1/bin differential evolution
//	calibrate/  partial (2-param) and full (5-param) calibration objectives
//
// The engine is single-threaded and synchronous throughout: no package
// spawns background work, and no state survives a call beyond the
// optimize.Optimizer population across generations of a single Solve and
// the random source each Optimizer owns across its Solve calls.
package voltree
