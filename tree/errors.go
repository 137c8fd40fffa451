package tree

import "errors"

// Sentinel errors for node construction and tree building.
var (
	// ErrLengthMismatch indicates Forward and Prob have different lengths
	// when constructing an interior node.
	ErrLengthMismatch = errors.New("tree: forward/probability length mismatch")

	// ErrInvalidInput indicates a non-positive number of time steps, time
	// to expiry, or underlying price was supplied to Build.
	ErrInvalidInput = errors.New("tree: invalid input")
)
