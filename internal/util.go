package internal

// ReconstructPath walks from current to the root through parent and returns the
// collected values in root-first order. value may skip a node by returning false.
func ReconstructPath[NodeType any, ValueType any](
	current NodeType,
	sizeHint int,
	parent func(NodeType) (NodeType, bool),
	value func(NodeType) (ValueType, bool),
) []ValueType {
	path := make([]ValueType, 0, sizeHint)
	for {
		if v, ok := value(current); ok {
			path = append(path, v)
		}
		previousNode, exists := parent(current)
		if !exists {
			break
		}
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
