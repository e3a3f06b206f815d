package arborx

// Provision computes the exclusive prefix sum of each query's K over a
// nearest-predicate batch and allocates a single flat []HeapEntry
// buffer sized to the sum: one allocation feeding every query with
// exactly its own k-sized workspace, no per-query heap allocation.
// offsets has length predicates.Len()+1; query i's scratch is
// buffer[offsets[i]:offsets[i+1]], see Scratch.
func Provision[G any, B any](predicates NearestBatch[G, B]) (offsets []int, buffer []HeapEntry) {
	q := predicates.Len()
	offsets = make([]int, q+1)
	for i := 0; i < q; i++ {
		k := predicates.Get(i).K()
		if k < 0 {
			k = 0
		}
		offsets[i+1] = offsets[i] + k
	}
	buffer = make([]HeapEntry, offsets[q])
	return offsets, buffer
}

// Scratch returns query i's disjoint sub-range of buffer, as laid out
// by Provision. The range is exclusive to query i; concurrent queries
// never touch each other's sub-range.
func Scratch(offsets []int, buffer []HeapEntry, i int) []HeapEntry {
	return buffer[offsets[i]:offsets[i+1]]
}
