package huffmantext

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Queue is a binary min-heap of tree nodes, ordered by Frequency.  Nodes of
// equal frequency leave the queue in the order they entered it.
type Queue struct {
	h       nodeHeap
	nextSeq uint64
}

// NewQueue returns an empty Queue with room for capacity nodes.  The Queue
// grows past capacity if needed.
func NewQueue(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue{h: nodeHeap{list: make([]queueItem, 0, capacity)}}
}

// Insert adds a node to the queue.  O(log n).
func (q *Queue) Insert(node *Node) {
	assert.Assertf(node != nil, "Queue.Insert: nil node")
	heap.Push(&q.h, queueItem{node: node, seq: q.nextSeq})
	q.nextSeq++
}

// ExtractMin removes and returns the node with the lowest frequency.  O(log n).
func (q *Queue) ExtractMin() (*Node, error) {
	if q.h.Len() == 0 {
		return nil, ErrEmptyQueue
	}
	item := heap.Pop(&q.h).(queueItem)
	return item.node, nil
}

// Peek returns the node ExtractMin would return, without removing it, or nil
// if the queue is empty.
func (q *Queue) Peek() *Node {
	if q.h.Len() == 0 {
		return nil
	}
	return q.h.list[0].node
}

// IsSingleton returns true iff exactly one node remains.
func (q *Queue) IsSingleton() bool {
	return q.h.Len() == 1
}

// Len returns the number of nodes in the queue.
func (q *Queue) Len() int {
	return q.h.Len()
}

// type queueItem + type nodeHeap {{{

type queueItem struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list []queueItem
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Frequency != b.node.Frequency {
		return a.node.Frequency < b.node.Frequency
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queueItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = queueItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
