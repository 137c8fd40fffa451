package option

import "math"

// nonNegativeTol is the slack allowed on non-negativity guards (prices,
// underlyings, strikes, times), matching the 1e-8 tolerance spec'd for the
// tree/pricer boundary checks.
const nonNegativeTol = -1e-8

// Right distinguishes a call from a put.
type Right int

const (
	// Call pays max(0, S-K).
	Call Right = iota
	// Put pays max(0, K-S).
	Put
)

// phi returns the payoff sign: +1 for Call, -1 for Put.
func (r Right) phi() float64 {
	if r == Put {
		return -1.0
	}
	return 1.0
}

// Style distinguishes European (no early exercise) from American.
type Style int

const (
	// European options may only be exercised at expiry.
	European Style = iota
	// American options may be exercised at any node.
	American
)

// VanillaOption is an immutable strike/expiry/style/right tuple on a named
// underlying. Construct via New; the zero value is not a valid option.
type VanillaOption struct {
	strike         float64
	timeToExpiry   float64
	style          Style
	right          Right
	underlyingCode string
}

// New validates its arguments and returns a VanillaOption, or ErrInvalidInput
// if the strike or time to expiry is negative (beyond nonNegativeTol) or the
// style/right enum value is out of range.
func New(strike, timeToExpiry float64, style Style, right Right, underlyingCode string) (VanillaOption, error) {
	if strike < nonNegativeTol {
		return VanillaOption{}, ErrInvalidInput
	}
	if timeToExpiry < nonNegativeTol {
		return VanillaOption{}, ErrInvalidInput
	}
	if style != European && style != American {
		return VanillaOption{}, ErrInvalidInput
	}
	if right != Call && right != Put {
		return VanillaOption{}, ErrInvalidInput
	}
	return VanillaOption{
		strike:         math.Max(0, strike),
		timeToExpiry:   math.Max(0, timeToExpiry),
		style:          style,
		right:          right,
		underlyingCode: underlyingCode,
	}, nil
}

// Strike returns the option's strike price.
func (o VanillaOption) Strike() float64 { return o.strike }

// TimeToExpiry returns the option's time to expiry, in years.
func (o VanillaOption) TimeToExpiry() float64 { return o.timeToExpiry }

// Style returns the exercise style (European or American).
func (o VanillaOption) Style() Style { return o.style }

// Right returns call or put.
func (o VanillaOption) Right() Right { return o.right }

// UnderlyingCode returns the opaque underlying label used only for
// consistency checks between an option and the model pricing it.
func (o VanillaOption) UnderlyingCode() string { return o.underlyingCode }

// IntrinsicValue returns max(0, phi*(s-K)) for the option's right.
func (o VanillaOption) IntrinsicValue(s float64) float64 {
	return math.Max(0, o.right.phi()*(s-o.strike))
}

// ValueAtNode applies the early-exercise map: for an American option it
// returns max(continuationValue, intrinsic(s)); for a European option it
// returns continuationValue unchanged. continuationValue and s must be
// non-negative (beyond nonNegativeTol), or ErrInvalidInput is returned.
func (o VanillaOption) ValueAtNode(continuationValue, s float64) (float64, error) {
	if continuationValue < nonNegativeTol || s < nonNegativeTol {
		return 0, ErrInvalidInput
	}
	if o.style == American {
		return math.Max(continuationValue, o.IntrinsicValue(s)), nil
	}
	return continuationValue, nil
}
