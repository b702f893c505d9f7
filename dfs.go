package gridsearch

// depthFrame is one level of the explicit depth-first stack.
type depthFrame[StateType comparable, ActionType any] struct {
	node       *Node[StateType, ActionType]
	successors []Successor[StateType, ActionType]
	next       int
	best       *Node[StateType, ActionType]
}

// consider keeps the shallowest goal reported by a child; the first one wins ties.
func (frame *depthFrame[StateType, ActionType]) consider(candidate *Node[StateType, ActionType]) {
	if candidate == nil {
		return
	}
	if frame.best == nil || candidate.Depth < frame.best.Depth {
		frame.best = candidate
	}
}

// depthFirst explores every branch depth first and returns the shallowest goal
// among them, not the first one found. A state already on the current branch
// is a dead end; sibling branches do not see each other's states, so a state
// may be explored again from a different branch.
func depthFirst[StateType comparable, ActionType any](e *expansion[StateType, ActionType]) (*Node[StateType, ActionType], error) {
	onBranch := make(map[StateType]bool)
	var stack []*depthFrame[StateType, ActionType]

	// open either settles node immediately or pushes its frame.
	open := func(node *Node[StateType, ActionType]) (settled *Node[StateType, ActionType], done bool, err error) {
		if onBranch[node.State] {
			return nil, true, nil
		}
		if e.problem.IsGoal(node.State) {
			return node, true, nil
		}
		successors, err := e.successors(node.State)
		if err != nil {
			return nil, true, err
		}
		onBranch[node.State] = true
		stack = append(stack, &depthFrame[StateType, ActionType]{node: node, successors: successors})
		return nil, false, nil
	}

	if settled, done, err := open(NewRoot[StateType, ActionType](e.problem.StartState())); done {
		return settled, err
	}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]

		if frame.next == len(frame.successors) {
			stack = stack[:len(stack)-1]
			delete(onBranch, frame.node.State)
			if len(stack) == 0 {
				return frame.best, nil
			}
			stack[len(stack)-1].consider(frame.best)
			continue
		}

		successor := frame.successors[frame.next]
		frame.next++
		settled, done, err := open(frame.node.Child(successor))
		if err != nil {
			return nil, err
		}
		if done {
			frame.consider(settled)
		}
	}
	return nil, nil
}
