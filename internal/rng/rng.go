// Package rng centralizes deterministic random-source construction for the
// optimizer. math/rand.Rand is not goroutine-safe; every optimizer owns
// exactly one instance for its whole lifetime rather than reaching for a
// package-level source.
package rng

import (
	"math/rand"
	"time"
)

// defaultSeed is the fixed "zero" seed used when a caller passes seed==0,
// kept stable so seed==0 remains reproducible across runs.
const defaultSeed int64 = 1

// nondeterministicSeed is the sentinel spec.md §4.6/§5 reserves for
// "seed from a nondeterministic source" — mirroring
// DifferentialEvolution::setSeed's std::random_device branch.
const nondeterministicSeed int64 = -1

// New returns a *rand.Rand. seed==0 maps to defaultSeed (a fixed,
// reproducible value); seed==-1 is seeded from the wall clock, so two
// calls produce independent, non-reproducible sequences; every other
// value is used verbatim for bit-for-bit reproducibility.
func New(seed int64) *rand.Rand {
	switch seed {
	case 0:
		seed = defaultSeed
	case nondeterministicSeed:
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
