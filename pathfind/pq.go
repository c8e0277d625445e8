// SPDX-License-Identifier: MIT

package pathfind

import (
	"cmp"
	"container/heap"

	"github.com/katalvlaran/parishroute/geograph"
)

// qItem is one open-set entry. index is maintained by the heap so that a
// live entry can be re-keyed in place with heap.Fix.
type qItem[K cmp.Ordered] struct {
	id    geograph.NodeID
	key   K
	index int
}

// minQueue is a min-heap of *qItem ordered by (key, id). Ordering by id on
// equal keys keeps pops deterministic.
type minQueue[K cmp.Ordered] []*qItem[K]

func (q minQueue[K]) Len() int { return len(q) }

func (q minQueue[K]) Less(i, j int) bool {
	if q[i].key != q[j].key {
		return q[i].key < q[j].key
	}
	return q[i].id < q[j].id
}

func (q minQueue[K]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push is called by heap.Push; x must be *qItem[K].
func (q *minQueue[K]) Push(x any) {
	it := x.(*qItem[K])
	it.index = len(*q)
	*q = append(*q, it)
}

// Pop is called by heap.Pop.
func (q *minQueue[K]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*q = old[:n-1]

	return it
}

// push inserts id with key and returns its handle.
func (q *minQueue[K]) push(id geograph.NodeID, key K) *qItem[K] {
	it := &qItem[K]{id: id, key: key}
	heap.Push(q, it)

	return it
}

// pop removes the minimum entry.
func (q *minQueue[K]) pop() *qItem[K] {
	return heap.Pop(q).(*qItem[K])
}

// decrease re-keys a live entry; equivalent to remove-and-reinsert.
func (q *minQueue[K]) decrease(it *qItem[K], key K) {
	it.key = key
	heap.Fix(q, it.index)
}
