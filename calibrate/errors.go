package calibrate

// No package-local sentinels: batch-size mismatches reuse option.ErrInvalidInput
// per SPEC_FULL.md's "share sentinels across subsystems that strictly build on
// one another" convention, matching lvlath's tsp/matrix sentinel reuse.
