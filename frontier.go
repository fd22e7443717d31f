package wallbreak

import (
	"fmt"
	"strings"

	"github.com/gammazero/deque"
)

// Frontier selects the data structure that orders unsettled states.
type Frontier int

const (
	// FrontierQueue sweeps states in FIFO order. With unit edge weights FIFO
	// order is distance order, giving O(states) work.
	FrontierQueue Frontier = iota
	// FrontierHeap is a binary heap with decrease-key, O(states log states).
	FrontierHeap
)

func (f Frontier) String() string {
	switch f {
	case FrontierQueue:
		return "queue"
	case FrontierHeap:
		return "heap"
	default:
		return fmt.Sprintf("Frontier(%d)", int(f))
	}
}

// ParseFrontier maps "queue" or "heap" to a Frontier.
func ParseFrontier(name string) (Frontier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "queue", "bfs", "":
		return FrontierQueue, nil
	case "heap", "dijkstra":
		return FrontierHeap, nil
	default:
		return 0, fmt.Errorf("unknown frontier %q: must be 'queue' or 'heap'", name)
	}
}

type frontier interface {
	Len() int
	// push inserts state or lowers its queued distance.
	push(state State, slot int, distance int)
	pop() (State, int)
	// peekDistance is the smallest queued distance; Len must be > 0.
	peekDistance() int
}

func newFrontier(kind Frontier) frontier {
	if kind == FrontierHeap {
		return newHeapFrontier()
	}
	return &queueFrontier{}
}

type queuedState struct {
	state    State
	distance int
}

// queueFrontier relies on pushes arriving in non-decreasing distance order,
// which holds when every edge weighs 1. A state relaxed twice leaves a stale
// entry behind that the search skips once the state is settled.
type queueFrontier struct {
	queue deque.Deque[queuedState]
}

func (f *queueFrontier) Len() int { return f.queue.Len() }

func (f *queueFrontier) push(state State, _ int, distance int) {
	f.queue.PushBack(queuedState{state: state, distance: distance})
}

func (f *queueFrontier) pop() (State, int) {
	entry := f.queue.PopFront()
	return entry.state, entry.distance
}

func (f *queueFrontier) peekDistance() int { return f.queue.Front().distance }
