package tree

import "math"

// buildJumpDiffusion constructs a tree that recombines until the step
// spanning JumpTime, fans out across every jump-diffusion atom for exactly
// that one step, and is non-recombining for every step after it: each node
// then branches into two new nodes of its own, so slice width doubles per
// step. Unlike buildRecombining it applies no upper/lower truncation.
func buildJumpDiffusion(p BuildParams) [][]Node {
	dt := p.TimeToExpiry / float64(p.NumSteps)
	slices := make([][]Node, p.NumSteps+1)

	nPrevTimeNodes := 0
	var nCurTimeNodes, nFuturePerCurrent, nCurPerPrev int
	currentRecombining, nextRecombining := true, true

	for i := 0; i <= p.NumSteps; i++ {
		time := float64(i) * dt

		switch {
		case p.JumpTime > time-dt+zeroFloor && p.JumpTime <= time+zeroFloor:
			nCurPerPrev = len(p.JumpDiffusion.Probs)
			nCurTimeNodes = nPrevTimeNodes * nCurPerPrev
			nFuturePerCurrent = 2
			currentRecombining, nextRecombining = false, false
		case p.JumpTime <= time-dt+zeroFloor:
			nCurPerPrev = 2
			nCurTimeNodes = nPrevTimeNodes * 2
			nFuturePerCurrent = 2
			currentRecombining, nextRecombining = false, false
		default:
			nCurTimeNodes = i + 1
			nCurPerPrev = 2
			currentRecombining = true
			if p.JumpTime <= time+dt+zeroFloor && p.JumpTime > time+zeroFloor {
				nFuturePerCurrent = len(p.JumpDiffusion.Probs)
				nextRecombining = false
			} else {
				nFuturePerCurrent = 2
				nextRecombining = true
			}
		}

		dividendDeduction := 0.0
		if p.DividendTime >= time-zeroFloor && p.DividendTime < time+dt-zeroFloor {
			dividendDeduction = p.Dividend
		}

		var current []Node
		switch {
		case i == 0:
			current = jumpDiffusionRoot(p, nextRecombining, nFuturePerCurrent)
		case i == p.NumSteps:
			current = jumpDiffusionTerminalStep(slices[i-1], p, currentRecombining, nCurTimeNodes, nPrevTimeNodes, nCurPerPrev, dividendDeduction)
		default:
			current = jumpDiffusionMiddleStep(slices[i-1], p, currentRecombining, nextRecombining, nCurTimeNodes, nPrevTimeNodes, nCurPerPrev, nFuturePerCurrent, dividendDeduction)
		}

		slices[i] = current
		nPrevTimeNodes = nCurTimeNodes
	}
	return slices
}

func jumpDiffusionRoot(p BuildParams, nextRecombining bool, nFuturePerCurrent int) []Node {
	if nextRecombining {
		node, _ := NewInteriorNode(p.S0, []int{0, 1}, p.Diffusion.Probs)
		return []Node{node}
	}
	forward := sequentialIndices(nFuturePerCurrent, 0)
	node, _ := NewInteriorNode(p.S0, forward, p.JumpDiffusion.Probs)
	return []Node{node}
}

func jumpDiffusionMiddleStep(previous []Node, p BuildParams, currentRecombining, nextRecombining bool, nCurTimeNodes, nPrevTimeNodes, nCurPerPrev, nFuturePerCurrent int, dividendDeduction float64) []Node {
	current := make([]Node, 0, nCurTimeNodes)

	switch {
	case currentRecombining && nextRecombining:
		upValue := previous[0].Value * math.Exp(p.Diffusion.Values[0])
		node, _ := NewInteriorNode(upValue, []int{0, 1}, p.Diffusion.Probs)
		current = append(current, node)
		for j := 1; j < nCurTimeNodes; j++ {
			downValue := math.Max(0, previous[j-1].Value*math.Exp(p.Diffusion.Values[1]))
			if downValue-dividendDeduction < zeroFloor {
				downValue = 0
			}
			node, _ := NewInteriorNode(downValue, []int{j, j + 1}, p.Diffusion.Probs)
			current = append(current, node)
		}

	case currentRecombining && !nextRecombining:
		index := 0
		upValue := previous[0].Value * math.Exp(p.Diffusion.Values[0])
		forward := sequentialIndices(nFuturePerCurrent, index)
		index += nFuturePerCurrent
		node, _ := NewInteriorNode(upValue, forward, p.JumpDiffusion.Probs)
		current = append(current, node)
		for j := 1; j < nCurTimeNodes; j++ {
			downValue := math.Max(0, previous[j-1].Value*math.Exp(p.Diffusion.Values[1]))
			if downValue-dividendDeduction < zeroFloor {
				downValue = 0
			}
			forward := sequentialIndices(nFuturePerCurrent, index)
			index += nFuturePerCurrent
			node, _ := NewInteriorNode(downValue, forward, p.JumpDiffusion.Probs)
			current = append(current, node)
		}

	default: // non-recombining
		states, probs := p.Diffusion.Values, p.Diffusion.Probs
		if nCurPerPrev != 2 {
			states = p.JumpDiffusion.Values
		}
		if nFuturePerCurrent != 2 {
			probs = p.JumpDiffusion.Probs
		}
		index := 0
		for j := 0; j < nPrevTimeNodes; j++ {
			for k := 0; k < len(states); k++ {
				value := math.Max(0, previous[j].Value*math.Exp(states[k]))
				if value-dividendDeduction < zeroFloor {
					value = 0
				}
				forward := sequentialIndices(nFuturePerCurrent, index)
				index += nFuturePerCurrent
				node, _ := NewInteriorNode(value, forward, probs)
				current = append(current, node)
			}
		}
	}
	return current
}

func jumpDiffusionTerminalStep(previous []Node, p BuildParams, currentRecombining bool, nCurTimeNodes, nPrevTimeNodes, nCurPerPrev int, dividendDeduction float64) []Node {
	current := make([]Node, 0, nCurTimeNodes)

	if currentRecombining {
		upValue := previous[0].Value * math.Exp(p.Diffusion.Values[0])
		current = append(current, NewTerminalNode(upValue))
		for j := 1; j < nCurTimeNodes; j++ {
			downValue := math.Max(0, previous[j-1].Value*math.Exp(p.Diffusion.Values[1]))
			if downValue-dividendDeduction < zeroFloor {
				downValue = 0
			}
			current = append(current, NewTerminalNode(downValue))
		}
		return current
	}

	states := p.Diffusion.Values
	if nCurPerPrev != 2 {
		states = p.JumpDiffusion.Values
	}
	for j := 0; j < nPrevTimeNodes; j++ {
		for k := 0; k < len(states); k++ {
			value := math.Max(0, previous[j].Value*math.Exp(states[k]))
			if value-dividendDeduction < zeroFloor {
				value = 0
			}
			current = append(current, NewTerminalNode(value))
		}
	}
	return current
}

func sequentialIndices(n, start int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = start + i
	}
	return idx
}
