package gridsearch

// aStar pops nodes by cost plus heuristic and tests for the goal on pop.
// Like breadthFirst it marks states visited when their node is created and
// never reopens them, so an inadmissible heuristic can yield a costlier path.
func aStar[StateType comparable, ActionType any](e *expansion[StateType, ActionType]) (*Node[StateType, ActionType], error) {
	root := NewRoot[StateType, ActionType](e.problem.StartState())
	visited := map[StateType]struct{}{root.State: {}}

	var frontier priorityFrontier[StateType, ActionType]
	frontier.push(root, e.heuristic(root.State, e.problem))

	for frontier.Len() > 0 {
		node := frontier.pop().Node
		if e.problem.IsGoal(node.State) {
			return node, nil
		}

		successors, err := e.successors(node.State)
		if err != nil {
			return nil, err
		}
		for _, successor := range successors {
			if _, seen := visited[successor.State]; seen {
				continue
			}
			visited[successor.State] = struct{}{}
			child := node.Child(successor)
			frontier.push(child, child.Cost+e.heuristic(child.State, e.problem))
		}
	}
	return nil, nil
}
