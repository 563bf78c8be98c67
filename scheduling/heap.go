// SPDX-License-Identifier: MIT

package scheduling

// idleHeap implements heap.Interface for a min-heap of idle workers ordered by
// (fatigue key, id). The key is a snapshot taken when the worker is pushed, so
// ordering never races with fatigue updates. Guarded by Executor.mu.
type idleHeap []*worker

// Len returns the number of idle workers.
// Complexity: O(1).
func (h idleHeap) Len() int { return len(h) }

// Less orders by fatigue, then by id for a stable tie-break.
// Complexity: O(1).
func (h idleHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}

	return h[i].id < h[j].id
}

// Swap swaps elements i and j and keeps their indices current.
// Complexity: O(1).
func (h idleHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push appends a worker. Called by heap.Push.
func (h *idleHeap) Push(x interface{}) {
	w := x.(*worker)
	w.index = len(*h)
	*h = append(*h, w)
}

// Pop removes the last worker. Called by heap.Pop.
func (h *idleHeap) Pop() interface{} {
	old := *h
	n := len(old)
	w := old[n-1]
	old[n-1] = nil
	w.index = -1
	*h = old[:n-1]

	return w
}
