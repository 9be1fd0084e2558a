package gridsearch

import "container/heap"

type frontierItem struct {
	Path     Path
	Priority float64
	Seq      uint64
}

// frontierQueue is a min-heap on Priority. Seq breaks ties so that equal
// priorities pop in insertion order.
type frontierQueue []*frontierItem

func (queue frontierQueue) Len() int { return len(queue) }
func (queue frontierQueue) Less(i, j int) bool {
	if queue[i].Priority != queue[j].Priority {
		return queue[i].Priority < queue[j].Priority
	}
	return queue[i].Seq < queue[j].Seq
}
func (queue frontierQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *frontierQueue) Push(x any) {
	*queue = append(*queue, x.(*frontierItem))
}

func (queue *frontierQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}

// frontier wraps the heap with an insertion counter.
type frontier struct {
	queue frontierQueue
	seq   uint64
}

func (f *frontier) push(p Path, priority float64) {
	heap.Push(&f.queue, &frontierItem{Path: p, Priority: priority, Seq: f.seq})
	f.seq++
}

func (f *frontier) pop() *frontierItem {
	return heap.Pop(&f.queue).(*frontierItem)
}

func (f *frontier) len() int { return f.queue.Len() }
