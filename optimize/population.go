package optimize

// initialTargets draws the N initial target vectors, one parameter at a
// time across the whole population (all N draws for dimension 0, then all
// N for dimension 1, ...) rather than one full vector at a time, matching
// the reference generator's draw order.
func (o *Optimizer) initialTargets() [][]float64 {
	target := make([][]float64, o.n)
	for i := range target {
		target[i] = make([]float64, o.d)
	}
	for j := 0; j < o.d; j++ {
		span := o.upper[j] - o.lower[j]
		for i := 0; i < o.n; i++ {
			target[i][j] = o.lower[j] + o.source.Float64()*span
		}
	}
	return target
}

// constructDonors builds one donor vector per target index i via
// DE/rand/1: donor = target[r1] + F*(target[r2] - target[r3]), with r1,
// r2, r3 distinct from i and from each other. The three indices are
// chosen with a partial Fisher-Yates shuffle of {0, ..., N-1} seeded at
// position i, reproducing the reference implementation's exact draw
// order and resulting index distribution.
func (o *Optimizer) constructDonors(target [][]float64) [][]float64 {
	donor := make([][]float64, o.n)
	for i := range donor {
		donor[i] = make([]float64, o.d)
	}

	idx := make([]int, o.n)
	for i := 0; i < o.n; i++ {
		for k := 0; k < o.n; k++ {
			idx[k] = k
		}

		r1 := 1 + o.source.Intn(o.n-1)
		r2 := 2 + o.source.Intn(o.n-2)
		r3 := 3 + o.source.Intn(o.n-3)

		idx[0], idx[i] = idx[i], idx[0]
		idx[1], idx[r1] = idx[r1], idx[1]
		idx[2], idx[r2] = idx[r2], idx[2]
		idx[3], idx[r3] = idx[r3], idx[3]

		a, b, c := target[idx[1]], target[idx[2]], target[idx[3]]
		for j := 0; j < o.d; j++ {
			v := a[j] + o.f*(b[j]-c[j])
			donor[i][j] = clamp(v, o.lower[j], o.upper[j])
		}
	}
	return donor
}

// constructTrials performs binomial crossover between each target and its
// donor: one dimension per target is forced to take the donor's value, and
// every other dimension takes the donor's value with probability CR.
func (o *Optimizer) constructTrials(target, donor [][]float64) [][]float64 {
	trial := make([][]float64, o.n)
	for i := range trial {
		trial[i] = make([]float64, o.d)
		forced := o.source.Intn(o.d)
		for j := 0; j < o.d; j++ {
			criterion := o.source.Float64()
			if criterion <= o.cr || j == forced {
				trial[i][j] = donor[i][j]
			} else {
				trial[i][j] = target[i][j]
			}
		}
	}
	return trial
}
