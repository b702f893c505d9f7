package gridsearch

// uniformCost pops nodes in order of accumulated cost and tests for the goal
// on pop. An entry is stale, and skipped, when its state was already popped at
// the same or a lower cost. Children are pushed unfiltered.
func uniformCost[StateType comparable, ActionType any](e *expansion[StateType, ActionType]) (*Node[StateType, ActionType], error) {
	var frontier priorityFrontier[StateType, ActionType]
	frontier.push(NewRoot[StateType, ActionType](e.problem.StartState()), 0)

	settled := make(map[StateType]float64)
	for frontier.Len() > 0 {
		node := frontier.pop().Node
		if best, ok := settled[node.State]; ok && best <= node.Cost {
			continue
		}
		settled[node.State] = node.Cost

		if e.problem.IsGoal(node.State) {
			return node, nil
		}

		successors, err := e.successors(node.State)
		if err != nil {
			return nil, err
		}
		for _, successor := range successors {
			child := node.Child(successor)
			frontier.push(child, child.Cost)
		}
	}
	return nil, nil
}
