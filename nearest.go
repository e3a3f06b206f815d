package arborx

import "math"

// nearestTwoChildKernel runs a best-first descent for a single query
// against a two-child-encoded BVH. heapBuf is the
// caller-provisioned scratch for this query, exactly len(heapBuf) ==
// predicate.K() long.
func nearestTwoChildKernel[G any, B any](bvh TwoChildBVH[B], predicate NearestPredicate[G, B], callback NearestCallback[G, B], metric DistanceMetric[G, B], heapBuf []HeapEntry) {
	k := predicate.K()
	if k < 1 {
		return
	}
	geometry := predicate.Geometry()

	h := newBoundedHeap(heapBuf)
	radius := math.Inf(1)

	var stack [maxStackDepth]NodeID
	var stackDist [maxStackDepth]float64
	sp := 0
	stack[sp] = NoNode
	stackDist[sp] = 0
	sp++

	node := bvh.Root()
	distNode := 0.0

	for node != NoNode {
		var left, right NodeID
		var distLeft, distRight float64
		descendLeft, descendRight := false, false

		if distNode < radius {
			left = bvh.LeftChild(node)
			right = bvh.RightChild(node)
			distLeft = metric.Distance(geometry, bvh.BoundingVolume(left))
			distRight = metric.Distance(geometry, bvh.BoundingVolume(right))

			if distLeft < radius && bvh.IsLeaf(left) {
				entry := HeapEntry{LeafIndex: bvh.LeafIndex(left), Distance: distLeft}
				if h.Size() < k {
					h.Push(entry)
				} else {
					h.PopPush(entry)
				}
				if h.Size() == k {
					radius = h.Top().Distance
				}
			}
			// Re-read radius: the left update above may have already
			// tightened it before the right child is tested.
			if distRight < radius && bvh.IsLeaf(right) {
				entry := HeapEntry{LeafIndex: bvh.LeafIndex(right), Distance: distRight}
				if h.Size() < k {
					h.Push(entry)
				} else {
					h.PopPush(entry)
				}
				if h.Size() == k {
					radius = h.Top().Distance
				}
			}

			descendLeft = distLeft < radius && !bvh.IsLeaf(left)
			descendRight = distRight < radius && !bvh.IsLeaf(right)
		}

		switch {
		case !descendLeft && !descendRight:
			sp--
			node = stack[sp]
			distNode = stackDist[sp]
		case descendLeft && descendRight:
			if sp >= maxStackDepth {
				panic("arborx: nearest traversal stack overflow (tree deeper than 64 levels)")
			}
			if distLeft <= distRight {
				stack[sp] = right
				stackDist[sp] = distRight
				sp++
				node, distNode = left, distLeft
			} else {
				stack[sp] = left
				stackDist[sp] = distLeft
				sp++
				node, distNode = right, distRight
			}
		case descendLeft:
			node, distNode = left, distLeft
		default:
			node, distNode = right, distRight
		}
	}

	h.SortAscending()
	for i := 0; i < h.Size(); i++ {
		e := heapBuf[i]
		callback(predicate, e.LeafIndex, e.Distance)
	}
}

// nearestRopeKernel is nearestTwoChildKernel's rope-encoded twin: the
// only difference is how the "right child" of an internal node is
// obtained: Rope(LeftChild(node)) instead of a stored RightChild. Kept
// as a separate function rather than a shared helper so neither
// variant pays for a branch or an indirect call it doesn't need.
func nearestRopeKernel[G any, B any](bvh RopeBVH[B], predicate NearestPredicate[G, B], callback NearestCallback[G, B], metric DistanceMetric[G, B], heapBuf []HeapEntry) {
	k := predicate.K()
	if k < 1 {
		return
	}
	geometry := predicate.Geometry()

	h := newBoundedHeap(heapBuf)
	radius := math.Inf(1)

	var stack [maxStackDepth]NodeID
	var stackDist [maxStackDepth]float64
	sp := 0
	stack[sp] = NoNode
	stackDist[sp] = 0
	sp++

	node := bvh.Root()
	distNode := 0.0

	for node != NoNode {
		var left, right NodeID
		var distLeft, distRight float64
		descendLeft, descendRight := false, false

		if distNode < radius {
			left = bvh.LeftChild(node)
			right = bvh.Rope(left)
			distLeft = metric.Distance(geometry, bvh.BoundingVolume(left))
			distRight = metric.Distance(geometry, bvh.BoundingVolume(right))

			if distLeft < radius && bvh.IsLeaf(left) {
				entry := HeapEntry{LeafIndex: bvh.LeafIndex(left), Distance: distLeft}
				if h.Size() < k {
					h.Push(entry)
				} else {
					h.PopPush(entry)
				}
				if h.Size() == k {
					radius = h.Top().Distance
				}
			}
			if distRight < radius && bvh.IsLeaf(right) {
				entry := HeapEntry{LeafIndex: bvh.LeafIndex(right), Distance: distRight}
				if h.Size() < k {
					h.Push(entry)
				} else {
					h.PopPush(entry)
				}
				if h.Size() == k {
					radius = h.Top().Distance
				}
			}

			descendLeft = distLeft < radius && !bvh.IsLeaf(left)
			descendRight = distRight < radius && !bvh.IsLeaf(right)
		}

		switch {
		case !descendLeft && !descendRight:
			sp--
			node = stack[sp]
			distNode = stackDist[sp]
		case descendLeft && descendRight:
			if sp >= maxStackDepth {
				panic("arborx: nearest traversal stack overflow (tree deeper than 64 levels)")
			}
			if distLeft <= distRight {
				stack[sp] = right
				stackDist[sp] = distRight
				sp++
				node, distNode = left, distLeft
			} else {
				stack[sp] = left
				stackDist[sp] = distLeft
				sp++
				node, distNode = right, distRight
			}
		case descendLeft:
			node, distNode = left, distLeft
		default:
			node, distNode = right, distRight
		}
	}

	h.SortAscending()
	for i := 0; i < h.Size(); i++ {
		e := heapBuf[i]
		callback(predicate, e.LeafIndex, e.Distance)
	}
}
