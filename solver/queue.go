package solver

import (
	"container/heap"

	"github.com/beka-birhanu/maze-solver/maze"
)

type queueItem struct {
	square   maze.Square
	priority int
	cost     int
}

// frontier is a min-heap on priority. Equal priorities fall back to square
// order so every search pops squares in a reproducible order.
type frontier []queueItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].square.Less(f[j].square)
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(queueItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

func (f *frontier) push(sq maze.Square, priority, cost int) {
	heap.Push(f, queueItem{square: sq, priority: priority, cost: cost})
}

func (f *frontier) pop() queueItem {
	return heap.Pop(f).(queueItem)
}
