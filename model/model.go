package model

import (
	"github.com/delta-quant/voltree/dist"
	"github.com/delta-quant/voltree/option"
	"github.com/delta-quant/voltree/tree"
)

// Model is the contract a pricer needs from any market model: a way to
// build its pricing tree, a way to compute the analytic terminal value used
// for smoothing, and the handful of scalar facts (discount rate, underlying
// identity) the pricer reports alongside a price.
type Model interface {
	// ConstructTree builds the pricing lattice for steps discretisation
	// steps over [0, T]. upperSD/lowerSD bound the truncated recombining
	// tree in standard deviations of the underlying's move; models whose
	// tree does not truncate (the jump variants) ignore them.
	ConstructTree(steps int, T float64, impl dist.Implementation, upperSD, lowerSD float64) (tree.Tree, error)

	// SmoothedTerminalValue returns the analytic value of o at underlying
	// level s, one time step (of size dt) before expiry — used to replace
	// the usual discrete payoff at the next-to-last slice of the tree.
	SmoothedTerminalValue(s float64, o option.VanillaOption, dt float64) (float64, error)

	// SupportsSmoothing reports whether terminal smoothing is valid over
	// [tStart, tEnd] — false once a dividend or jump falls inside the
	// window, since the analytic formula assumes no discrete event there.
	SupportsSmoothing(tStart, tEnd float64) bool

	DiscountRate() float64
	UnderlyingCode() string
}
