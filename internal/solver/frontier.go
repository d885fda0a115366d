package solver

import "github.com/amalg/lava-aqua/internal/game"

// frontierEntry is the element type of BFS's queue and DFS's stack.
type frontierEntry struct {
	state game.GameState
	node  int32 // Path arena index
	depth int
}

// heapNode is a frontier entry for the priority-ordered strategies.
type heapNode struct {
	state    game.GameState
	node     int32 // Path arena index
	g        int   // Accumulated cost from the root
	priority int   // Heap ordering value (g, g+h, or h)
	seq      int   // Insertion order, breaks priority ties FIFO
}

// nodeHeap is a min-heap over priority for use with container/heap.
type nodeHeap []heapNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(heapNode))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
