package tree

import "github.com/delta-quant/voltree/dist"

// zeroFloor is the epsilon below which a node value or a bound check is
// treated as having hit zero or a limit, matching the absorbing-boundary
// tolerance used throughout tree construction.
const zeroFloor = 1e-8

// BuildParams configures Build. Diffusion is the two-atom per-step
// distribution every path uses; Jump, when non-nil, switches Build onto the
// jump-diffusion construction instead of the truncated pure-diffusion one.
type BuildParams struct {
	S0           float64
	NumSteps     int
	TimeToExpiry float64
	Sigma        float64
	UpperSD      float64
	LowerSD      float64
	DividendTime float64
	Dividend     float64

	Diffusion dist.Discrete

	// Jump, when set, is the five-atom jump distribution; Build only checks
	// whether it is nil to pick the jump-diffusion construction, whose
	// successors come from JumpDiffusion, the precomputed ten-atom Cartesian product
	// (dist.Product(dist.Jump(...), Diffusion)) applied for exactly the
	// step spanning JumpTime.
	Jump          *dist.Discrete
	JumpTime      float64
	JumpDiffusion dist.Discrete
}

// Build constructs a lattice of NumSteps+1 time slices rooted at S0. With
// Jump nil it builds a recombining tree truncated at [LowerSD, UpperSD]
// standard deviations of the underlying's move (the path used by
// diffusion-only and discrete-dividend models). With Jump set it builds a
// tree that recombines up to JumpTime, fans out for exactly the step
// spanning the jump, and is non-recombining (two children per node)
// afterward (the path used by the jump-diffusion models).
func Build(p BuildParams) (Tree, error) {
	if p.NumSteps <= 0 || p.TimeToExpiry <= 0 || p.S0 <= 0 {
		return Tree{}, ErrInvalidInput
	}
	if err := p.Diffusion.Validate(); err != nil {
		return Tree{}, err
	}

	var slices [][]Node
	if p.Jump == nil {
		slices = buildRecombining(p)
	} else {
		if err := p.JumpDiffusion.Validate(); err != nil {
			return Tree{}, err
		}
		slices = buildJumpDiffusion(p)
	}

	dt := p.TimeToExpiry / float64(p.NumSteps)
	deductDividend(slices, p.DividendTime, p.Dividend, p.TimeToExpiry, dt, p.NumSteps)

	return Tree{Slices: slices, TimeToExpiry: p.TimeToExpiry, NumSteps: p.NumSteps}, nil
}
