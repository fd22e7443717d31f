package wallbreak

import "container/heap"

type priorityQueueItem struct {
	State        State
	Slot         int
	Distance     int
	IndexInQueue int
}

type priorityQueue []*priorityQueueItem

func (queue priorityQueue) Len() int           { return len(queue) }
func (queue priorityQueue) Less(i, j int) bool { return queue[i].Distance < queue[j].Distance }
func (queue priorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *priorityQueue) Push(x any) {
	item := x.(*priorityQueueItem)
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	item.IndexInQueue = -1
	return item
}

// heapFrontier is a binary-heap frontier with decrease-key. Every state has at
// most one live entry, found through openSetMap by its table slot.
type heapFrontier struct {
	openSet    priorityQueue
	openSetMap map[int]*priorityQueueItem
}

func newHeapFrontier() *heapFrontier {
	return &heapFrontier{openSetMap: make(map[int]*priorityQueueItem)}
}

func (f *heapFrontier) Len() int { return f.openSet.Len() }

func (f *heapFrontier) push(state State, slot int, distance int) {
	if item, inOpen := f.openSetMap[slot]; inOpen {
		if distance < item.Distance {
			item.Distance = distance
			heap.Fix(&f.openSet, item.IndexInQueue)
		}
		return
	}
	item := &priorityQueueItem{State: state, Slot: slot, Distance: distance}
	heap.Push(&f.openSet, item)
	f.openSetMap[slot] = item
}

func (f *heapFrontier) pop() (State, int) {
	item := heap.Pop(&f.openSet).(*priorityQueueItem)
	delete(f.openSetMap, item.Slot)
	return item.State, item.Distance
}

func (f *heapFrontier) peekDistance() int { return f.openSet[0].Distance }
