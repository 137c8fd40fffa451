package tree

// Tree is a sequence of time slices, Slices[0] holding the single root node
// and Slices[NumSteps] holding the terminal nodes a pricer starts backward
// induction from.
type Tree struct {
	Slices       [][]Node
	TimeToExpiry float64
	NumSteps     int
}

// TimeStep returns the size of one discretisation step.
func (t Tree) TimeStep() float64 {
	return t.TimeToExpiry / float64(t.NumSteps)
}
