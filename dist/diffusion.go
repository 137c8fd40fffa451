package dist

import "math"

// Implementation selects the binomial-tree discretisation scheme for the
// diffusion leg of a time step.
type Implementation int

const (
	// CRR is the Cox-Ross-Rubinstein discretisation: up = sigma*sqrt(dt).
	CRR Implementation = iota
	// Tian is the Tian (1993) discretisation, matching the first four
	// moments of the log-normal distribution over one time step.
	Tian
)

// probTol is the tolerance band around [0,1] applied to the up-probability
// guard, matching the 1e-8 slack used throughout the tree-construction
// boundary checks.
const probTol = 1e-8

// Diffusion computes the two-atom diffusion Discrete (up, down log-
// multipliers and their probabilities) for a single time step of size dt,
// given implied volatility sigma, discount rate r, cost of carry q, and the
// chosen Implementation.
//
// Returns ErrInvalidInput if sigma or dt is non-positive, and
// ErrInvalidDiscretisation if the resulting up-probability falls outside
// [0,1] beyond probTol — the caller should retry with more time steps.
func Diffusion(dt, sigma, r, q float64, impl Implementation) (Discrete, error) {
	if sigma <= 0 || dt <= 0 {
		return Discrete{}, ErrInvalidInput
	}

	var up, down float64
	switch impl {
	case CRR:
		up = sigma * math.Sqrt(dt)
		down = -up
	case Tian:
		R := math.Exp((r - q) * dt)
		V := math.Exp(sigma * sigma * dt)
		inner := math.Sqrt(V*V + 2*V - 3)
		up = math.Log(0.5 * R * V * (V + 1 + inner))
		down = math.Log(0.5 * R * V * (V + 1 - inner))
	default:
		return Discrete{}, ErrInvalidInput
	}

	pUp := 0.5 * (1.0 + math.Sqrt(dt)*(r-q-0.5*sigma*sigma)/sigma)
	pDown := 1.0 - pUp

	if pUp > 1.0+probTol || pUp < -probTol {
		return Discrete{}, ErrInvalidDiscretisation
	}

	return Discrete{
		Values: []float64{up, down},
		Probs:  []float64{pUp, pDown},
	}, nil
}
