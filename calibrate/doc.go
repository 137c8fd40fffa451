// Package calibrate adapts a batch of (option, observed price) pairs and a
// fixed single-jump model configuration into an optimize.Objective: a
// mean-squared-error scalar over a free-parameter vector, suitable for
// driving optimize.Optimizer.Solve.
//
// Both adapters fix the pricing configuration to CRR, +-6 sigma truncation,
// Richardson extrapolation, and terminal smoothing — the adapter never
// exposes these as caller-supplied knobs, matching the reference
// implementation's hardcoded calibration-path configuration.
//
// Single-threaded like the rest of this module: an Objective closure reads
// its captured batch but allocates a fresh model and tree on every call.
package calibrate
