package gridsearch

import "github.com/pdrpinto/gridsearch/internal"

// Node is an entry of the search tree. Nodes are never mutated after creation
// and only point upward; walking the parents reconstructs the solution.
type Node[StateType comparable, ActionType any] struct {
	State  StateType
	Action ActionType
	Parent *Node[StateType, ActionType]
	Cost   float64
	Depth  int
}

// NewRoot creates the node for the start state.
func NewRoot[StateType comparable, ActionType any](state StateType) *Node[StateType, ActionType] {
	return &Node[StateType, ActionType]{State: state}
}

// Child creates the node reached from n through successor.
func (n *Node[StateType, ActionType]) Child(successor Successor[StateType, ActionType]) *Node[StateType, ActionType] {
	return &Node[StateType, ActionType]{
		State:  successor.State,
		Action: successor.Action,
		Parent: n,
		Cost:   n.Cost + successor.Cost,
		Depth:  n.Depth + 1,
	}
}

// Actions returns the actions leading from the root to n.
func (n *Node[StateType, ActionType]) Actions() []ActionType {
	return internal.ReconstructPath(n, n.Depth, parentOf[StateType, ActionType],
		func(node *Node[StateType, ActionType]) (ActionType, bool) {
			return node.Action, node.Parent != nil
		})
}

// States returns the states from the root to n, both included.
func (n *Node[StateType, ActionType]) States() []StateType {
	return internal.ReconstructPath(n, n.Depth+1, parentOf[StateType, ActionType],
		func(node *Node[StateType, ActionType]) (StateType, bool) {
			return node.State, true
		})
}

func parentOf[StateType comparable, ActionType any](node *Node[StateType, ActionType]) (*Node[StateType, ActionType], bool) {
	return node.Parent, node.Parent != nil
}
