package astar

import "github.com/katalvlaran/gridpath/grid"

// openItem is one open cell in the priority queue.
type openItem struct {
	pos   grid.Position // cell identity
	f     float64       // priority G + H at the last relaxation
	seq   int           // insertion order, kept across decrease-key
	index int           // position in the heap, maintained by Swap
}

// openPQ is a min-heap of *openItem ordered by f, then by seq.
type openPQ []*openItem

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less orders by smaller f; equal f falls back to earlier insertion.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements and keeps their heap indices current.
func (pq openPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *openItem.
func (pq *openPQ) Push(x any) {
	item := x.(*openItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

// Pop removes and returns the last element.
// Called by heap.Pop after it moves the minimum to the end.
func (pq *openPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}
