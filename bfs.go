package gridsearch

// breadthFirst expands level by level. States are marked visited as soon as a
// node is created for them and goals are detected at creation time, so the
// first goal generated is a shortest one in number of actions.
func breadthFirst[StateType comparable, ActionType any](e *expansion[StateType, ActionType]) (*Node[StateType, ActionType], error) {
	root := NewRoot[StateType, ActionType](e.problem.StartState())
	if e.problem.IsGoal(root.State) {
		return root, nil
	}

	visited := map[StateType]struct{}{root.State: {}}
	layer := []*Node[StateType, ActionType]{root}
	for len(layer) > 0 {
		var nextLayer []*Node[StateType, ActionType]
		for _, parent := range layer {
			successors, err := e.successors(parent.State)
			if err != nil {
				return nil, err
			}
			for _, successor := range successors {
				if _, seen := visited[successor.State]; seen {
					continue
				}
				visited[successor.State] = struct{}{}
				child := parent.Child(successor)
				if e.problem.IsGoal(child.State) {
					return child, nil
				}
				nextLayer = append(nextLayer, child)
			}
		}
		layer = nextLayer
	}
	return nil, nil
}
