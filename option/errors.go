package option

import "errors"

// Sentinel errors for option construction and node-level valuation.
var (
	// ErrInvalidInput indicates a caller-visible precondition failure: a
	// negative strike or time to expiry, an unrecognised Right/Style, or a
	// negative forward/underlying value passed into ValueAtNode.
	ErrInvalidInput = errors.New("option: invalid input")
)
