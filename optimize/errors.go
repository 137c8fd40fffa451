package optimize

import "errors"

var (
	// ErrInvalidDimension is returned when D < 1.
	ErrInvalidDimension = errors.New("optimize: dimension must be at least 1")
	// ErrInvalidPopulationSize is returned when N < 4 — donor construction
	// needs three distinct helper vectors besides the target itself.
	ErrInvalidPopulationSize = errors.New("optimize: population size must be at least 4")
	// ErrInvalidScale is returned when F is outside [0, 2].
	ErrInvalidScale = errors.New("optimize: scale factor F must be in [0, 2]")
	// ErrInvalidCrossoverRate is returned when CR is outside [0, 1].
	ErrInvalidCrossoverRate = errors.New("optimize: crossover rate CR must be in [0, 1]")
	// ErrBoundsLengthMismatch is returned when lower/upper bounds don't
	// each have exactly D entries.
	ErrBoundsLengthMismatch = errors.New("optimize: bounds length must equal dimension")
	// ErrInvertedBounds is returned when a lower bound exceeds its upper.
	ErrInvertedBounds = errors.New("optimize: lower bound exceeds upper bound")
	// ErrNilObjective is returned when no objective function is supplied.
	ErrNilObjective = errors.New("optimize: objective function must not be nil")
)
