package analytic

import "errors"

// ErrInvalidInput indicates a non-positive underlying price, strike,
// volatility, or time to expiry was supplied to Price.
var ErrInvalidInput = errors.New("analytic: invalid input")
