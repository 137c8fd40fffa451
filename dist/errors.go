package dist

import "errors"

// Sentinel errors for distribution construction.
var (
	// ErrInvalidInput indicates a non-positive volatility or time step, or
	// an unknown Implementation, was supplied to Diffusion, or that
	// Validate found probabilities not summing to 1.
	ErrInvalidInput = errors.New("dist: invalid input")

	// ErrInvalidDiscretisation indicates the diffusion up-probability fell
	// outside [0,1]; the caller should increase the number of time steps.
	ErrInvalidDiscretisation = errors.New("dist: up-probability outside [0,1], increase time steps")

	// ErrLengthMismatch indicates Values and Probs have different lengths.
	ErrLengthMismatch = errors.New("dist: values/probabilities length mismatch")
)
