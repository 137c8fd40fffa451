package model

import "errors"

// ErrInvalidInput indicates a non-positive sigma/sigmaJ, a negative
// S0/dividend/time field, or a Bernoulli probability outside [0,1] was
// supplied to a constructor.
var ErrInvalidInput = errors.New("model: invalid input")

// ErrUnsupportedOperation indicates an operation was invoked through a path
// that cannot honor it correctly. DoubleJump.ConstructTree returns this:
// a Bernoulli mixture of two jump distributions has no single lattice
// representation, only a weighted average of its two components' prices
// (see pricer.PriceDoubleJumpBatch / PriceDoubleJumpWithRichardson).
var ErrUnsupportedOperation = errors.New("model: unsupported operation")
