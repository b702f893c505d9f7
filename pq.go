package gridsearch

import "container/heap"

// PriorityQueueItem is a frontier entry. Sequence records insertion order and
// breaks priority ties so results are deterministic.
type PriorityQueueItem[StateType comparable, ActionType any] struct {
	Node         *Node[StateType, ActionType]
	Priority     float64
	Sequence     uint64
	IndexInQueue int
}

type PriorityQueue[StateType comparable, ActionType any] []*PriorityQueueItem[StateType, ActionType]

func (queue PriorityQueue[StateType, ActionType]) Len() int { return len(queue) }
func (queue PriorityQueue[StateType, ActionType]) Less(i, j int) bool {
	if queue[i].Priority != queue[j].Priority {
		return queue[i].Priority < queue[j].Priority
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue[StateType, ActionType]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue[StateType, ActionType]) Push(x any) {
	item := x.(*PriorityQueueItem[StateType, ActionType])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue[StateType, ActionType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	item.IndexInQueue = -1
	return item
}

// priorityFrontier stamps every pushed node with the next insertion sequence.
type priorityFrontier[StateType comparable, ActionType any] struct {
	queue        PriorityQueue[StateType, ActionType]
	nextSequence uint64
}

func (frontier *priorityFrontier[StateType, ActionType]) Len() int { return frontier.queue.Len() }

func (frontier *priorityFrontier[StateType, ActionType]) push(node *Node[StateType, ActionType], priority float64) {
	heap.Push(&frontier.queue, &PriorityQueueItem[StateType, ActionType]{
		Node:     node,
		Priority: priority,
		Sequence: frontier.nextSequence,
	})
	frontier.nextSequence++
}

func (frontier *priorityFrontier[StateType, ActionType]) pop() *PriorityQueueItem[StateType, ActionType] {
	return heap.Pop(&frontier.queue).(*PriorityQueueItem[StateType, ActionType])
}
