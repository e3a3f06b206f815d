package arborx

// HeapEntry is a single nearest-neighbor candidate: a leaf index and
// its distance to the query geometry.
type HeapEntry struct {
	LeafIndex int
	Distance  float64
}

// boundedHeap is a fixed-capacity max-heap (ordered by Distance,
// farthest candidate on top) backed by a caller-provided slice. It
// never reallocates: capacity is len(buf), fixed at construction.
// Used single-threadedly within one query.
type boundedHeap struct {
	buf []HeapEntry
	n   int
}

func newBoundedHeap(buf []HeapEntry) boundedHeap {
	return boundedHeap{buf: buf}
}

func (h *boundedHeap) Size() int      { return h.n }
func (h *boundedHeap) Top() HeapEntry { return h.buf[0] }

// Push inserts x. The caller must ensure Size() < len(buf).
func (h *boundedHeap) Push(x HeapEntry) {
	i := h.n
	h.buf[i] = x
	h.n++
	for i > 0 {
		parent := (i - 1) / 2
		if h.buf[parent].Distance >= h.buf[i].Distance {
			break
		}
		h.buf[parent], h.buf[i] = h.buf[i], h.buf[parent]
		i = parent
	}
}

// PopPush replaces the top (farthest) entry with x in one sift-down,
// cheaper than a Pop followed by a Push, and the only shape the
// nearest kernel ever needs once the heap is full.
func (h *boundedHeap) PopPush(x HeapEntry) {
	h.buf[0] = x
	h.siftDown(0, h.n)
}

// siftDown restores the max-heap property at i within buf[:size],
// the shared core of PopPush and the in-place heapsort SortAscending
// runs over a shrinking heap.
func (h *boundedHeap) siftDown(i, size int) {
	for {
		left := 2*i + 1
		right := 2*i + 2
		largest := i
		if left < size && h.buf[left].Distance > h.buf[largest].Distance {
			largest = left
		}
		if right < size && h.buf[right].Distance > h.buf[largest].Distance {
			largest = right
		}
		if largest == i {
			break
		}
		h.buf[i], h.buf[largest] = h.buf[largest], h.buf[i]
		i = largest
	}
}

// SortAscending sorts buf[:n] by ascending distance, destroying the
// heap invariant. Only call once all pushes for the query are done.
// Index-based heapsort over the max-heap already in buf: repeatedly
// swap the farthest candidate to the tail and re-sift the shrunken
// heap, in place, with no slice-of-interface boxing.
func (h *boundedHeap) SortAscending() {
	for end := h.n - 1; end > 0; end-- {
		h.buf[0], h.buf[end] = h.buf[end], h.buf[0]
		h.siftDown(0, end)
	}
}
