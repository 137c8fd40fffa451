package tree

import (
	"math"

	"github.com/delta-quant/voltree/dist"
)

// buildRecombining constructs the truncated, purely recombining tree used
// by every model without a jump component.
func buildRecombining(p BuildParams) [][]Node {
	dt := p.TimeToExpiry / float64(p.NumSteps)
	slices := make([][]Node, p.NumSteps+1)

	root, _ := NewInteriorNode(p.S0, []int{0, 1}, p.Diffusion.Probs)
	slices[0] = []Node{root}

	oneSDMove := p.S0 * math.Exp(p.Sigma)
	for i := 1; i <= p.NumSteps; i++ {
		time := float64(i) * dt
		upperLimit := oneSDMove * math.Exp(p.UpperSD*math.Sqrt(time))
		lowerLimit := math.Max(zeroFloor, oneSDMove*math.Exp(p.LowerSD*math.Sqrt(time)))
		isDividendPaid := p.DividendTime < time+zeroFloor
		isLastTime := i == p.NumSteps
		slices[i] = recombiningStep(slices[i-1], upperLimit, lowerLimit, p.Diffusion, isDividendPaid, p.Dividend, isLastTime)
	}
	return slices
}

// recombiningStep constructs the nodes at the current time step from the
// previous slice, truncating moves that breach upperLimit/lowerLimit (or
// the zero-absorbing boundary once the dividend has been paid) by
// retroactively collapsing the offending previous node to its single
// surviving transition.
func recombiningStep(previous []Node, upperLimit, lowerLimit float64, diffusion dist.Discrete, isDividendPaid bool, dividendAmount float64, isLastTime bool) []Node {
	current := make([]Node, 0, len(previous)+1)
	nextIndex := 0

	upValue := previous[0].Value * math.Exp(diffusion.Values[0])
	if upValue < upperLimit {
		var node Node
		if isLastTime {
			node = NewTerminalNode(upValue)
		} else {
			node, _ = NewInteriorNode(upValue, []int{0, 1}, diffusion.Probs)
		}
		current = append(current, node)
		nextIndex++
	} else {
		previous[0] = previous[0].SetForward([]int{0}, []float64{1.0})
	}

	for j := range previous {
		downValue := previous[j].Value * math.Exp(diffusion.Values[1])
		if (isDividendPaid && downValue-dividendAmount < zeroFloor) || downValue < lowerLimit {
			upIndex := previous[j].Forward[0]
			previous[j] = previous[j].SetForward([]int{upIndex}, []float64{1.0})
			continue
		}
		upIndex := nextIndex
		nextIndex++
		downIndex := nextIndex
		var node Node
		if isLastTime {
			node = NewTerminalNode(downValue)
		} else {
			node, _ = NewInteriorNode(downValue, []int{upIndex, downIndex}, diffusion.Probs)
		}
		current = append(current, node)
	}
	return current
}
