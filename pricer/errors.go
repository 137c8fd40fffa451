package pricer

import "errors"

var (
	// ErrExpiryMismatch indicates a tree's time to expiry does not match
	// the option being priced against it.
	ErrExpiryMismatch = errors.New("pricer: tree and option time to expiry do not match")

	// ErrUnderlyingMismatch indicates an option's underlying code does not
	// match the model it is being priced under.
	ErrUnderlyingMismatch = errors.New("pricer: option underlying does not match model")
)
